// Package pdf implementa el motor de layout del comprobante sobre gofpdf:
// geometría absoluta en puntos sobre una página A4 vertical, con medición
// separada del dibujo para que la geometría sea verificable sin una
// superficie de render.
//
// Orden de bloques (sin retroceso):
//
//	ENCABEZADO → CLIENTE/METADATOS → TABLA DE ITEMS → MONTO EN LETRAS →
//	PILAS DEL PIE (izquierda/derecha) → CAJA DE VALIDACIÓN → PIE DE PÁGINA
package pdf

// Metrics reúne todas las constantes del layout en una sola tabla con
// nombre, visible para los tests y ajustable sin tocar el algoritmo.
// Las unidades son puntos tipográficos (página A4: 595.28 × 841.89).
type Metrics struct {
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64

	// ── Encabezado ──
	HeaderHeight    float64 // banda completa de 3 columnas
	DocBoxWidth     float64 // recuadro del documento (derecha)
	DocBoxStrip     float64 // franja superior con color de acento (R.U.C.)
	LogoColumnWidth float64 // ancho designado de la columna del logo
	HeaderGap       float64 // separación entre columnas
	SloganOffset    float64 // distancia del eslogan al borde inferior del encabezado

	// Umbrales de la relación de aspecto del logo (seis clases).
	AspectVeryWide float64 // >= muy horizontal
	AspectWide     float64
	AspectModWide  float64
	AspectMildWide float64
	AspectSquare   float64

	// Cotas por clase: cada clase tiene sus propios máximos para que una
	// relación extrema no invada la columna central.
	LogoInset          float64 // alto máximo = HeaderHeight - LogoInset
	VeryWideExtra      float64 // holgura de ancho sobre la columna del logo
	VeryWideHeight     float64
	VeryWideMinHeight  float64
	WideExtra          float64
	WideHeight         float64
	WideMinHeight      float64
	ModWideExtra       float64
	ModWideHeightFrac  float64 // fracción del alto máximo
	MildWideExtra      float64
	SquareHeightFrac   float64
	LineWidthThin      float64
	LineWidthThick     float64

	// ── Bloque cliente / metadatos ──
	PartyLineHeight float64
	PartyLabelPad   float64 // separación etiqueta → valor
	PartyWrapLines  int     // máximo de líneas por valor largo
	PartyColumnGap  float64

	// ── Tabla de items ──
	TableHeaderHeight float64
	MinRowHeight      float64
	RowLineHeight     float64
	RowPadding        float64
	CellPadX          float64
	ColQty            float64 // fracciones del ancho de contenido
	ColUnit           float64
	ColDesc           float64
	ColUnitPrice      float64
	ColTotal          float64

	// ── Pie ──
	WordsBoxHeight    float64
	SectionGap        float64 // separación vertical entre secciones apiladas
	TotalsWidth       float64
	TotalsRowHeight   float64
	TotalsGrandExtra  float64 // alto adicional de la fila TOTAL
	BankHeaderHeight  float64
	BankRowHeight     float64
	BoxPad            float64
	BoxLineHeight     float64
	QRSize            float64
	InstRowHeight     float64
	FooterRuleOffset  float64 // línea separadora sobre el margen inferior

	// ── Tipografía ──
	FontName   float64 // nombre comercial
	FontNumber float64 // número del documento
	FontBody   float64
	FontSmall  float64
	FontTiny   float64
}

// DefaultMetrics devuelve la tabla de constantes del diseño estándar.
func DefaultMetrics() Metrics {
	return Metrics{
		MarginLeft:   20,
		MarginRight:  20,
		MarginTop:    20,
		MarginBottom: 15,

		HeaderHeight:    100,
		DocBoxWidth:     145,
		DocBoxStrip:     26,
		LogoColumnWidth: 100,
		HeaderGap:       10,
		SloganOffset:    18,

		AspectVeryWide: 3.0,
		AspectWide:     2.5,
		AspectModWide:  2.0,
		AspectMildWide: 1.3,
		AspectSquare:   1.0,

		LogoInset:         15,
		VeryWideExtra:     35,
		VeryWideHeight:    35,
		VeryWideMinHeight: 30,
		WideExtra:         30,
		WideHeight:        40,
		WideMinHeight:     30,
		ModWideExtra:      25,
		ModWideHeightFrac: 0.6,
		MildWideExtra:     20,
		SquareHeightFrac:  0.8,
		LineWidthThin:     0.5,
		LineWidthThick:    1.5,

		PartyLineHeight: 12,
		PartyLabelPad:   8,
		PartyWrapLines:  2,
		PartyColumnGap:  10,

		TableHeaderHeight: 18,
		MinRowHeight:      15,
		RowLineHeight:     9,
		RowPadding:        6,
		CellPadX:          4,
		ColQty:            0.08,
		ColUnit:           0.08,
		ColDesc:           0.49,
		ColUnitPrice:      0.17,
		ColTotal:          0.18,

		WordsBoxHeight:   22,
		SectionGap:       8,
		TotalsWidth:      160,
		TotalsRowHeight:  15,
		TotalsGrandExtra: 6,
		BankHeaderHeight: 14,
		BankRowHeight:    12,
		BoxPad:           6,
		BoxLineHeight:    10,
		QRSize:           70,
		InstRowHeight:    11,
		FooterRuleOffset: 12,

		FontName:   11,
		FontNumber: 12,
		FontBody:   8,
		FontSmall:  7,
		FontTiny:   6,
	}
}

// ContentWidth devuelve el ancho útil de la página.
func (m Metrics) ContentWidth(pageWidth float64) float64 {
	return pageWidth - m.MarginLeft - m.MarginRight
}
