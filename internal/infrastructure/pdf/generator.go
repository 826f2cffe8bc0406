package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/cobrify/docrender/internal/application/render"
	"github.com/cobrify/docrender/pkg/logger"
)

// Generator implementa render.DocumentRenderer sobre gofpdf: una página A4
// vertical en puntos, sin salto de página automático.
type Generator struct {
	m   Metrics
	log *logger.Logger
}

// NewGenerator construye el generador con las métricas estándar.
func NewGenerator(log *logger.Logger) *Generator {
	return &Generator{m: DefaultMetrics(), log: log}
}

// Render dibuja el comprobante completo y lo serializa a bytes PDF.
func (g *Generator) Render(ctx context.Context, in render.Input) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f := gofpdf.New("P", "pt", "A4", "")
	f.SetTitle(in.Invoice.Kind.Label()+" "+in.Invoice.Number(), true)
	f.SetAutoPageBreak(false, 0)
	f.AddPage()

	c := newCanvas(f)
	e := NewEngine(c, g.m, ParseAccentColor(in.Company.AccentColor))

	y := e.DrawHeader(in)
	y = e.DrawPartyBlock(y, in.Invoice)
	y = e.DrawItemsTable(y, in.Invoice)
	y = e.DrawAmountInWords(y, in.AmountInWords)
	leftY, rightY := e.DrawFooterStacks(y, in.Invoice, in.Company)

	qrPNG := EncodeQR(in.QRPayload)
	if qrPNG == nil && in.QRPayload != "" {
		g.log.Warn().Str("number", in.Invoice.Number()).Msg("no se pudo codificar el QR; se omite")
	}
	bottom := e.DrawValidationBox(max(leftY, rightY), in.Invoice, in.Company, qrPNG)
	e.DrawPageFooter(in.Company)

	if bottom > e.ContentBottom() {
		g.log.Warn().
			Str("number", in.Invoice.Number()).
			Float64("bottom", bottom).
			Msg("el contenido excede la página; el diseño es de página única")
	}

	var buf bytes.Buffer
	if err := f.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: serializar documento %s: %w", in.Invoice.Number(), err)
	}
	return buf.Bytes(), nil
}
