package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// RGB es un color de dibujo en el espacio del documento.
type RGB struct {
	R, G, B int
}

var (
	colorBlack     = RGB{0, 0, 0}
	colorDarkGray  = RGB{60, 60, 60}
	colorGray      = RGB{120, 120, 120}
	colorLightGray = RGB{200, 200, 200}
	colorShade     = RGB{248, 248, 248}
	colorWhite     = RGB{255, 255, 255}

	defaultAccent = RGB{70, 70, 70}
)

// ParseAccentColor interpreta un color hexadecimal "#RRGGBB" de la
// configuración de la empresa. Cualquier valor malformado cae al gris
// institucional en lugar de fallar el render.
func ParseAccentColor(hex string) RGB {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) != 6 {
		return defaultAccent
	}
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return defaultAccent
	}
	return RGB{r, g, b}
}

// Style describe la tipografía de un texto. El motor no guarda estado de
// fuente: cada operación lleva su estilo completo.
type Style struct {
	Size   float64
	Bold   bool
	Italic bool
	Color  RGB
}

// Align es la alineación horizontal respecto de la coordenada X dada.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Measurer mide texto sin dibujarlo. Separarlo de Canvas permite probar
// toda la geometría del layout con una regla sintética.
type Measurer interface {
	Width(txt string, s Style) float64
}

// Canvas es la superficie de dibujo del motor. Las coordenadas Y de Text
// son la línea base del texto.
type Canvas interface {
	Measurer
	Size() (w, h float64)
	Text(x, y float64, txt string, s Style, a Align)
	Line(x1, y1, x2, y2, width float64, c RGB)
	Rect(x, y, w, h float64, stroke *RGB, strokeWidth float64, fill *RGB)
	Image(data []byte, format string, x, y, w, h float64)
}

// pdfCanvas implementa Canvas sobre gofpdf. La traducción a cp1252 se
// aplica recién al dibujar; el resto del motor trabaja en UTF-8.
type pdfCanvas struct {
	f      *gofpdf.Fpdf
	tr     func(string) string
	images int
}

func newCanvas(f *gofpdf.Fpdf) *pdfCanvas {
	return &pdfCanvas{f: f, tr: f.UnicodeTranslatorFromDescriptor("")}
}

func fontStyle(s Style) string {
	var b strings.Builder
	if s.Bold {
		b.WriteByte('B')
	}
	if s.Italic {
		b.WriteByte('I')
	}
	return b.String()
}

func (c *pdfCanvas) Size() (float64, float64) {
	w, h := c.f.GetPageSize()
	return w, h
}

func (c *pdfCanvas) Width(txt string, s Style) float64 {
	c.f.SetFont("Helvetica", fontStyle(s), s.Size)
	return c.f.GetStringWidth(c.tr(txt))
}

func (c *pdfCanvas) Text(x, y float64, txt string, s Style, a Align) {
	c.f.SetFont("Helvetica", fontStyle(s), s.Size)
	c.f.SetTextColor(s.Color.R, s.Color.G, s.Color.B)
	t := c.tr(txt)
	switch a {
	case AlignCenter:
		x -= c.f.GetStringWidth(t) / 2
	case AlignRight:
		x -= c.f.GetStringWidth(t)
	}
	c.f.Text(x, y, t)
}

func (c *pdfCanvas) Line(x1, y1, x2, y2, width float64, col RGB) {
	c.f.SetDrawColor(col.R, col.G, col.B)
	c.f.SetLineWidth(width)
	c.f.Line(x1, y1, x2, y2)
}

func (c *pdfCanvas) Rect(x, y, w, h float64, stroke *RGB, strokeWidth float64, fill *RGB) {
	style := ""
	if fill != nil {
		c.f.SetFillColor(fill.R, fill.G, fill.B)
		style = "F"
	}
	if stroke != nil {
		c.f.SetDrawColor(stroke.R, stroke.G, stroke.B)
		c.f.SetLineWidth(strokeWidth)
		if style == "F" {
			style = "FD"
		} else {
			style = "D"
		}
	}
	c.f.Rect(x, y, w, h, style)
}

func (c *pdfCanvas) Image(data []byte, format string, x, y, w, h float64) {
	if len(data) == 0 {
		return
	}
	c.images++
	name := fmt.Sprintf("asset-%d", c.images)
	opts := gofpdf.ImageOptions{ImageType: format}
	c.f.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if c.f.Err() {
		// Imagen ilegible: se omite el elemento, nunca se aborta el documento.
		c.f.ClearError()
		return
	}
	c.f.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}
