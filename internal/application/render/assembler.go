package render

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cobrify/docrender/internal/domain"
	"github.com/cobrify/docrender/internal/domain/document"
	"github.com/cobrify/docrender/internal/domain/entity"
	"github.com/cobrify/docrender/pkg/logger"
)

// Assembler compone el documento final: valida el comprobante, obtiene el
// logo (con degradación silenciosa), calcula las piezas puras y delega el
// dibujo al DocumentRenderer. Los efectos quedan confinados aquí.
type Assembler struct {
	renderer DocumentRenderer
	images   ImageLoader // opcional; nil = nunca hay logo
	log      *logger.Logger
}

// NewAssembler construye el ensamblador inyectando sus dependencias.
func NewAssembler(renderer DocumentRenderer, images ImageLoader, log *logger.Logger) *Assembler {
	return &Assembler{renderer: renderer, images: images, log: log}
}

// Result es el documento compuesto listo para almacenarse o adjuntarse.
type Result struct {
	Bytes    []byte
	Filename string
}

// Render produce el PDF del comprobante.
//
// Retorna:
//   - (*Result, nil) con los bytes y el nombre convencional del archivo.
//   - *entity.ValidationError (envuelto) si el comprobante viola el contrato
//     de entrada; se agregan todas las violaciones antes de fallar.
//   - error fatal si la serialización de la página falla.
//
// Un logo inaccesible o un QR que no codifica degradan el documento, nunca
// lo hacen fallar.
func (a *Assembler) Render(
	ctx context.Context,
	inv *entity.Invoice,
	company *entity.CompanySettings,
	branches []entity.Branch,
) (*Result, error) {
	if inv == nil || company == nil {
		return nil, fmt.Errorf("render: %w: se requieren comprobante y empresa", domain.ErrInvalidInput)
	}
	if err := inv.Validate(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	renderID := uuid.NewString()
	log := a.log.With().Str("render_id", renderID).Str("document", inv.Number()).Logger()

	var logo *Asset
	if company.LogoURL != "" && a.images != nil {
		asset, ok := a.images.Load(ctx, company.LogoURL)
		if ok {
			logo = asset
		} else {
			// Degradado: el encabezado se recentra con ancho de logo cero.
			log.Warn().Str("logo_url", company.LogoURL).Msg("logo no disponible, se renderiza sin imagen")
		}
	}

	words := document.ToWords(inv.Total) + " " + document.CurrencyWords(inv.Currency)
	payload := document.BuildQRPayload(inv, company)

	data, err := a.renderer.Render(ctx, Input{
		Invoice:       inv,
		Company:       company,
		Branches:      branches,
		Logo:          logo,
		AmountInWords: words,
		QRPayload:     payload,
	})
	if err != nil {
		return nil, fmt.Errorf("render: %w: %v", domain.ErrRenderFailed, err)
	}

	res := &Result{Bytes: data, Filename: document.Filename(inv)}
	log.Info().Int("bytes", len(data)).Str("filename", res.Filename).Msg("documento generado")
	return res, nil
}

// RenderAndSave genera el documento y lo entrega al FileSink. Retorna el
// resultado y la ubicación reportada por el sink.
func (a *Assembler) RenderAndSave(
	ctx context.Context,
	inv *entity.Invoice,
	company *entity.CompanySettings,
	branches []entity.Branch,
	sink FileSink,
) (*Result, string, error) {
	res, err := a.Render(ctx, inv, company, branches)
	if err != nil {
		return nil, "", err
	}
	location, err := sink.Save(ctx, res.Filename, res.Bytes)
	if err != nil {
		return nil, "", fmt.Errorf("render: guardar documento: %w", err)
	}
	return res, location, nil
}
