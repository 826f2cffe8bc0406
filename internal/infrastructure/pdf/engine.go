package pdf

import (
	"math"
	"strings"

	"github.com/cobrify/docrender/internal/application/render"
	"github.com/cobrify/docrender/internal/domain/entity"
)

// Engine dibuja los bloques del comprobante de arriba hacia abajo. Cada
// método recibe el cursor Y actual y devuelve el cursor para el bloque
// siguiente; el motor nunca retrocede salvo en las dos pilas del pie, que
// llevan cursores independientes.
type Engine struct {
	c      Canvas
	m      Metrics
	accent RGB
}

// NewEngine construye un motor sobre un canvas y una tabla de métricas.
func NewEngine(c Canvas, m Metrics, accent RGB) *Engine {
	return &Engine{c: c, m: m, accent: accent}
}

func (e *Engine) contentWidth() float64 {
	w, _ := e.c.Size()
	return e.m.ContentWidth(w)
}

func (e *Engine) rightEdge() float64 {
	w, _ := e.c.Size()
	return w - e.m.MarginRight
}

// ContentBottom devuelve el límite inferior utilizable antes del pie de
// página fijo.
func (e *Engine) ContentBottom() float64 {
	_, h := e.c.Size()
	return h - e.m.MarginBottom - e.m.FooterRuleOffset
}

// ── Encabezado ───────────────────────────────────────────────────────────────

// FitLogo resuelve el tamaño de dibujo del logo según su relación de
// aspecto. Seis clases con cotas propias: los logos muy horizontales ganan
// ancho a costa de alto y los verticales se limitan por alto.
func FitLogo(aspect float64, m Metrics) (w, h float64) {
	if aspect <= 0 {
		return 0, 0
	}
	maxH := m.HeaderHeight - m.LogoInset
	switch {
	case aspect >= m.AspectVeryWide:
		w = m.LogoColumnWidth + m.VeryWideExtra
		h = w / aspect
		if h > m.VeryWideHeight {
			h = m.VeryWideHeight
		}
		if h < m.VeryWideMinHeight {
			h = m.VeryWideMinHeight
			w = h * aspect
		}
	case aspect >= m.AspectWide:
		w = m.LogoColumnWidth + m.WideExtra
		h = w / aspect
		if h > m.WideHeight {
			h = m.WideHeight
		}
		if h < m.WideMinHeight {
			h = m.WideMinHeight
			w = h * aspect
		}
	case aspect >= m.AspectModWide:
		h = maxH * m.ModWideHeightFrac
		w = h * aspect
		if limit := m.LogoColumnWidth + m.ModWideExtra; w > limit {
			w = limit
			h = w / aspect
		}
	case aspect >= m.AspectMildWide:
		w = m.LogoColumnWidth + m.MildWideExtra
		h = w / aspect
		if h > maxH {
			h = maxH
			w = h * aspect
		}
	case aspect >= m.AspectSquare:
		h = maxH * m.SquareHeightFrac
		w = h * aspect
		if w > m.LogoColumnWidth {
			w = m.LogoColumnWidth
			h = w / aspect
		}
	default:
		// Logo vertical: manda el alto máximo.
		h = maxH
		w = h * aspect
		if w > m.LogoColumnWidth {
			w = m.LogoColumnWidth
			h = w / aspect
		}
	}
	return w, h
}

type headerLine struct {
	text  string
	style Style
	lh    float64
}

// DrawHeader dibuja la banda de tres columnas y devuelve el cursor bajo el
// encabezado. Sin logo, el bloque central se recentra con ancho de logo cero.
func (e *Engine) DrawHeader(in render.Input) float64 {
	m := e.m
	company := in.Company
	top := m.MarginTop

	logoW := 0.0
	if in.Logo != nil {
		lw, lh := FitLogo(in.Logo.AspectRatio(), m)
		if lw > 0 {
			e.c.Image(in.Logo.Data, in.Logo.Format, m.MarginLeft, top+(m.HeaderHeight-lh)/2, lw, lh)
			logoW = lw
		}
	}

	boxX := e.rightEdge() - m.DocBoxWidth
	centerX0 := m.MarginLeft + logoW + m.HeaderGap
	centerW := boxX - m.HeaderGap - centerX0
	centerMid := centerX0 + centerW/2

	// Primera pasada: medir el bloque central completo.
	lines := e.headerLines(company, in.Branches, centerW)
	total := 0.0
	for _, l := range lines {
		total += l.lh
	}
	y := top + (m.HeaderHeight-total)/2
	for _, l := range lines {
		y += l.lh
		e.c.Text(centerMid, y-2, l.text, l.style, AlignCenter)
	}

	if company.Slogan != "" {
		slogan := clampLines(wrapText(e.c, company.Slogan, e.sloganStyle(), centerW), 2)
		sy := top + m.HeaderHeight - m.SloganOffset
		for _, l := range slogan {
			e.c.Text(centerMid, sy, l, e.sloganStyle(), AlignCenter)
			sy += m.PartyLineHeight - 2
		}
	}

	e.drawDocBox(boxX, top, in.Invoice, company)

	return top + m.HeaderHeight + m.SectionGap
}

func (e *Engine) sloganStyle() Style {
	return Style{Size: e.m.FontBody, Bold: true, Italic: true, Color: e.accent}
}

func (e *Engine) headerLines(company *entity.CompanySettings, branches []entity.Branch, width float64) []headerLine {
	m := e.m
	nameStyle := Style{Size: m.FontName, Bold: true, Color: colorBlack}
	legalStyle := Style{Size: m.FontBody, Color: colorDarkGray}
	small := Style{Size: m.FontSmall, Color: colorGray}

	display := company.TradeName
	if display == "" {
		display = company.LegalName
	}
	var out []headerLine
	for _, l := range clampLines(wrapText(e.c, strings.ToUpper(display), nameStyle, width), 2) {
		out = append(out, headerLine{l, nameStyle, m.FontName + 3})
	}
	if company.TradeName != "" && !strings.EqualFold(company.TradeName, company.LegalName) {
		out = append(out, headerLine{company.LegalName, legalStyle, m.FontBody + 3})
	}
	for _, l := range clampLines(wrapText(e.c, company.Address, small, width), 2) {
		out = append(out, headerLine{l, small, m.FontSmall + 3})
	}
	for _, b := range branches {
		line := b.Address
		if b.Name != "" {
			line = b.Name + ": " + line
		}
		if b.Phone != "" {
			line += " - Tel: " + b.Phone
		}
		for _, l := range clampLines(wrapText(e.c, line, small, width), 1) {
			out = append(out, headerLine{l, small, m.FontSmall + 3})
		}
	}
	var contact []string
	if company.Phone != "" {
		contact = append(contact, "Tel: "+company.Phone)
	}
	if company.Email != "" {
		contact = append(contact, company.Email)
	}
	if company.Website != "" {
		contact = append(contact, company.Website)
	}
	if len(contact) > 0 {
		out = append(out, headerLine{strings.Join(contact, " | "), small, m.FontSmall + 3})
	}
	return out
}

func (e *Engine) drawDocBox(x, y float64, inv *entity.Invoice, company *entity.CompanySettings) {
	m := e.m
	e.c.Rect(x, y, m.DocBoxWidth, m.HeaderHeight, &colorBlack, m.LineWidthThick, nil)
	e.c.Rect(x, y, m.DocBoxWidth, m.DocBoxStrip, nil, 0, &e.accent)

	mid := x + m.DocBoxWidth/2
	rucStyle := Style{Size: m.FontBody + 1, Bold: true, Color: colorWhite}
	e.c.Text(mid, y+m.DocBoxStrip/2+3, "R.U.C. "+company.RUC, rucStyle, AlignCenter)

	labelStyle := Style{Size: m.FontBody + 1, Bold: true, Color: colorBlack}
	labelLines := clampLines(wrapText(e.c, inv.Kind.Label(), labelStyle, m.DocBoxWidth-2*m.BoxPad), 2)
	ly := y + m.DocBoxStrip + 16
	for _, l := range labelLines {
		e.c.Text(mid, ly, l, labelStyle, AlignCenter)
		ly += m.FontBody + 4
	}

	divY := ly + 2
	e.c.Line(x, divY, x+m.DocBoxWidth, divY, m.LineWidthThin, colorLightGray)

	numStyle := Style{Size: m.FontNumber, Bold: true, Color: colorBlack}
	e.c.Text(mid, divY+18, inv.Number(), numStyle, AlignCenter)
}

// ── Bloque cliente / metadatos ───────────────────────────────────────────────

type partyRow struct {
	label string
	value string
}

func customerDocLabel(docType string) string {
	switch docType {
	case "RUC":
		return "RUC:"
	case "DNI":
		return "DNI:"
	case "CE":
		return "C.E.:"
	case "PASSPORT":
		return "PASAPORTE:"
	default:
		return "DOC.:"
	}
}

func (e *Engine) leftPartyRows(inv *entity.Invoice) []partyRow {
	nameLabel := "SEÑOR(ES):"
	if inv.Customer.DocumentType == "RUC" {
		nameLabel = "CLIENTE:"
	}
	name := inv.Customer.Name
	if name == "" {
		name = "CLIENTE VARIOS"
	}
	number := inv.Customer.DocumentNumber
	if number == "" {
		number = "-"
	}
	rows := []partyRow{
		{nameLabel, name},
		{customerDocLabel(inv.Customer.DocumentType), number},
	}
	if inv.Customer.Address != "" {
		rows = append(rows, partyRow{"DIRECCIÓN:", inv.Customer.Address})
	}
	for _, f := range inv.Customer.CustomFields {
		if f.Label == "" || f.Value == "" {
			continue
		}
		rows = append(rows, partyRow{strings.ToUpper(f.Label) + ":", f.Value})
	}
	return rows
}

func (e *Engine) rightPartyRows(inv *entity.Invoice) []partyRow {
	rows := []partyRow{
		{"FECHA EMISIÓN:", formatDate(inv.Date)},
		{"MONEDA:", currencyName(inv.Currency)},
	}
	if render.HasNoteReference(inv) {
		refs := inv.References
		rows = append(rows, partyRow{"DOC. AFECTADO:", refs.DocumentNumber})
		if refs.DocumentKind.Valid() {
			rows = append(rows, partyRow{"TIPO DOC.:", refs.DocumentKind.Label()})
		}
		reason := refs.Reason
		if refs.ReasonCode != "" {
			reason = refs.ReasonCode + " - " + reason
		}
		if reason != "" {
			rows = append(rows, partyRow{"MOTIVO:", reason})
		}
	} else if inv.PaymentMethod != "" {
		rows = append(rows, partyRow{"CONDICIÓN:", inv.PaymentMethod})
	}
	if inv.References != nil {
		if inv.References.PurchaseOrder != "" {
			rows = append(rows, partyRow{"O. COMPRA:", inv.References.PurchaseOrder})
		}
		if inv.References.CarrierGuide != "" {
			rows = append(rows, partyRow{"GUÍA REMISIÓN:", inv.References.CarrierGuide})
		}
	}
	return rows
}

func currencyName(currency string) string {
	if currency == entity.CurrencyUSD {
		return "DÓLARES AMERICANOS"
	}
	return "SOLES"
}

// DrawPartyBlock dibuja las dos columnas de metadatos del adquiriente.
// Los valores de cada columna se alinean a la etiqueta más ancha de esa
// columna, no fila por fila.
func (e *Engine) DrawPartyBlock(y float64, inv *entity.Invoice) float64 {
	m := e.m
	e.c.Line(m.MarginLeft, y, e.rightEdge(), y, m.LineWidthThin, colorLightGray)
	y += m.SectionGap + 2

	colW := (e.contentWidth() - m.PartyColumnGap) / 2
	leftY := e.drawPartyColumn(m.MarginLeft, y, colW, e.leftPartyRows(inv))
	rightY := e.drawPartyColumn(m.MarginLeft+colW+m.PartyColumnGap, y, colW, e.rightPartyRows(inv))
	return math.Max(leftY, rightY) + m.SectionGap
}

func (e *Engine) drawPartyColumn(x, y, width float64, rows []partyRow) float64 {
	m := e.m
	labelStyle := Style{Size: m.FontSmall, Bold: true, Color: colorDarkGray}
	valueStyle := Style{Size: m.FontSmall, Color: colorBlack}

	maxLabel := 0.0
	for _, r := range rows {
		if w := e.c.Width(r.label, labelStyle); w > maxLabel {
			maxLabel = w
		}
	}
	valueX := x + maxLabel + m.PartyLabelPad
	valueW := x + width - valueX

	for _, r := range rows {
		lines := clampLines(wrapText(e.c, r.value, valueStyle, valueW), m.PartyWrapLines)
		if len(lines) == 0 {
			lines = []string{"-"}
		}
		e.c.Text(x, y+m.PartyLineHeight-3, r.label, labelStyle, AlignLeft)
		for _, l := range lines {
			e.c.Text(valueX, y+m.PartyLineHeight-3, l, valueStyle, AlignLeft)
			y += m.PartyLineHeight
		}
	}
	return y
}

// ── Tabla de items ───────────────────────────────────────────────────────────

// ItemText compone el texto de la celda de descripción: código válido como
// prefijo y anotación libre como sufijo. "CUSTOM" es un placeholder de
// catálogo, no un código real.
func ItemText(it entity.Item) string {
	text := it.Description
	if it.Code != "" && !strings.EqualFold(it.Code, "CUSTOM") {
		text = it.Code + " - " + text
	}
	if it.Note != "" {
		text += " - " + it.Note
	}
	return text
}

// ItemRowHeight devuelve el alto de una fila a partir de sus líneas de
// descripción envueltas: nunca menor al mínimo, y crece línea a línea.
func ItemRowHeight(lineCount int, m Metrics) float64 {
	if lineCount < 1 {
		lineCount = 1
	}
	h := float64(lineCount)*m.RowLineHeight + m.RowPadding
	if h < m.MinRowHeight {
		return m.MinRowHeight
	}
	return h
}

// DrawItemsTable dibuja el detalle con filas de alto dinámico y sombreado
// alternado, y devuelve el cursor bajo la tabla.
func (e *Engine) DrawItemsTable(y float64, inv *entity.Invoice) float64 {
	m := e.m
	cw := e.contentWidth()
	x0 := m.MarginLeft

	qtyW := cw * m.ColQty
	unitW := cw * m.ColUnit
	descW := cw * m.ColDesc
	priceW := cw * m.ColUnitPrice
	totalW := cw * m.ColTotal

	descX := x0 + qtyW + unitW
	priceX := descX + descW
	totalX := priceX + priceW

	headStyle := Style{Size: m.FontSmall, Bold: true, Color: colorWhite}
	e.c.Rect(x0, y, cw, m.TableHeaderHeight, nil, 0, &e.accent)
	hy := y + m.TableHeaderHeight/2 + 2.5
	e.c.Text(x0+qtyW/2, hy, "CANT.", headStyle, AlignCenter)
	e.c.Text(x0+qtyW+unitW/2, hy, "U.M.", headStyle, AlignCenter)
	e.c.Text(descX+m.CellPadX, hy, "DESCRIPCIÓN", headStyle, AlignLeft)
	e.c.Text(priceX+priceW-m.CellPadX, hy, "P. UNITARIO", headStyle, AlignRight)
	e.c.Text(totalX+totalW-m.CellPadX, hy, "IMPORTE", headStyle, AlignRight)
	y += m.TableHeaderHeight

	cellStyle := Style{Size: m.FontSmall, Color: colorBlack}
	for idx, it := range inv.Items {
		lines := wrapText(e.c, ItemText(it), cellStyle, descW-2*m.CellPadX)
		rowH := ItemRowHeight(len(lines), m)
		if idx%2 == 1 {
			e.c.Rect(x0, y, cw, rowH, nil, 0, &colorShade)
		}
		baseline := y + m.RowLineHeight + (m.RowPadding / 2)
		e.c.Text(x0+qtyW/2, baseline, formatAmount(it.Quantity), cellStyle, AlignCenter)
		e.c.Text(x0+qtyW+unitW/2, baseline, it.Unit, cellStyle, AlignCenter)
		ly := baseline
		for _, l := range lines {
			e.c.Text(descX+m.CellPadX, ly, l, cellStyle, AlignLeft)
			ly += m.RowLineHeight
		}
		e.c.Text(priceX+priceW-m.CellPadX, baseline, formatAmount(it.UnitPrice), cellStyle, AlignRight)
		e.c.Text(totalX+totalW-m.CellPadX, baseline, formatAmount(it.Subtotal), cellStyle, AlignRight)
		y += rowH
	}
	e.c.Line(x0, y, x0+cw, y, m.LineWidthThin, colorLightGray)
	return y + m.SectionGap
}

// ── Monto en letras ──────────────────────────────────────────────────────────

// DrawAmountInWords dibuja el recuadro "SON:" con el total en palabras.
func (e *Engine) DrawAmountInWords(y float64, words string) float64 {
	m := e.m
	cw := e.contentWidth()
	e.c.Rect(m.MarginLeft, y, cw, m.WordsBoxHeight, &colorLightGray, m.LineWidthThin, nil)

	labelStyle := Style{Size: m.FontBody, Bold: true, Color: colorBlack}
	textStyle := Style{Size: m.FontBody, Color: colorBlack}
	baseline := y + m.WordsBoxHeight/2 + 3
	e.c.Text(m.MarginLeft+m.BoxPad, baseline, "SON:", labelStyle, AlignLeft)
	labelW := e.c.Width("SON:", labelStyle)
	e.c.Text(m.MarginLeft+m.BoxPad+labelW+4, baseline, words, textStyle, AlignLeft)
	return y + m.WordsBoxHeight + m.SectionGap
}

// ── Pilas del pie ────────────────────────────────────────────────────────────

// TotalsRow es una fila de la caja de totales ya formateada.
type TotalsRow struct {
	Label string
	Value string
	Grand bool
}

// TotalsRows arma las filas de la caja de totales: 3 filas base, una más
// con descuento y dos más con detracción.
func TotalsRows(inv *entity.Invoice, company *entity.CompanySettings) []TotalsRow {
	cur := inv.Currency
	gravadaLabel := "OP. GRAVADA:"
	if render.IsExempt(company) {
		gravadaLabel = "OP. EXONERADA:"
	}
	rows := []TotalsRow{{gravadaLabel, formatMoney(inv.Subtotal, cur), false}}
	if render.HasDiscount(inv) {
		rows = append(rows, TotalsRow{"DESCUENTO:", "-" + formatMoney(inv.Discount, cur), false})
	}
	rows = append(rows,
		TotalsRow{"IGV (" + formatPercent(inv.TaxRate) + "):", formatMoney(inv.TaxAmount, cur), false},
		TotalsRow{"TOTAL:", formatMoney(inv.Total, cur), true},
	)
	if render.HasDetraction(inv) {
		d := inv.Detraction
		rows = append(rows,
			TotalsRow{"DETRACCIÓN (" + formatPercent(d.Rate) + "):", formatMoney(d.Amount, cur), false},
			TotalsRow{"NETO A PAGAR:", formatMoney(d.NetPayable, cur), true},
		)
	}
	return rows
}

// TotalsBoxHeight devuelve el alto total de la caja de totales.
func TotalsBoxHeight(rows []TotalsRow, m Metrics) float64 {
	h := 0.0
	for _, r := range rows {
		h += m.TotalsRowHeight
		if r.Grand {
			h += m.TotalsGrandExtra
		}
	}
	return h
}

// BankTableHeight devuelve el alto de la tabla de cuentas bancarias.
func BankTableHeight(accounts int, m Metrics) float64 {
	if accounts == 0 {
		return 0
	}
	return m.BankHeaderHeight + float64(accounts)*m.BankRowHeight
}

// DrawFooterStacks dibuja las dos pilas del pie con cursores Y
// independientes y devuelve ambos cursores finales.
func (e *Engine) DrawFooterStacks(y float64, inv *entity.Invoice, company *entity.CompanySettings) (leftY, rightY float64) {
	m := e.m
	leftW := e.contentWidth() - m.TotalsWidth - m.PartyColumnGap
	leftY, rightY = y, y

	if render.HasBankAccounts(company) {
		leftY = e.drawBankTable(m.MarginLeft, leftY, leftW, company.BankAccounts) + m.SectionGap
	}
	if render.HasDetraction(inv) {
		leftY = e.drawDetractionBox(m.MarginLeft, leftY, leftW, inv) + m.SectionGap
	}
	if render.HasTransport(inv) {
		leftY = e.drawTransportBox(m.MarginLeft, leftY, leftW, inv) + m.SectionGap
	}
	if render.HasPayments(inv) {
		leftY = e.drawPaymentsTable(m.MarginLeft, leftY, leftW, inv) + m.SectionGap
	}
	if render.IsExempt(company) {
		leftY = e.drawExemptNote(m.MarginLeft, leftY, leftW, company) + m.SectionGap
	}
	if inv.Notes != "" {
		leftY = e.drawNotesBox(m.MarginLeft, leftY, leftW, inv.Notes) + m.SectionGap
	}

	rightY = e.drawTotalsBox(e.rightEdge()-m.TotalsWidth, rightY, inv, company) + m.SectionGap
	return leftY, rightY
}

func (e *Engine) drawTotalsBox(x, y float64, inv *entity.Invoice, company *entity.CompanySettings) float64 {
	m := e.m
	labelStyle := Style{Size: m.FontBody, Bold: true, Color: colorDarkGray}
	valueStyle := Style{Size: m.FontBody, Color: colorBlack}
	grandStyle := Style{Size: m.FontBody + 1, Bold: true, Color: colorBlack}

	for _, r := range TotalsRows(inv, company) {
		rowH := m.TotalsRowHeight
		ls, vs := labelStyle, valueStyle
		if r.Grand {
			rowH += m.TotalsGrandExtra
			ls, vs = grandStyle, grandStyle
			e.c.Line(x, y+2, x+m.TotalsWidth, y+2, m.LineWidthThin, colorDarkGray)
		}
		baseline := y + rowH/2 + 3
		e.c.Text(x, baseline, r.Label, ls, AlignLeft)
		e.c.Text(x+m.TotalsWidth, baseline, r.Value, vs, AlignRight)
		y += rowH
	}
	return y
}

func (e *Engine) drawBankTable(x, y, width float64, accounts []entity.BankAccount) float64 {
	m := e.m
	headStyle := Style{Size: m.FontTiny, Bold: true, Color: colorWhite}
	cellStyle := Style{Size: m.FontTiny, Color: colorBlack}

	bankW := width * 0.26
	typeW := width * 0.18
	curW := width * 0.10
	numW := width * 0.23

	e.c.Rect(x, y, width, m.BankHeaderHeight, nil, 0, &e.accent)
	hy := y + m.BankHeaderHeight/2 + 2
	e.c.Text(x+2, hy, "BANCO", headStyle, AlignLeft)
	e.c.Text(x+bankW+2, hy, "TIPO", headStyle, AlignLeft)
	e.c.Text(x+bankW+typeW+2, hy, "MON.", headStyle, AlignLeft)
	e.c.Text(x+bankW+typeW+curW+2, hy, "CUENTA", headStyle, AlignLeft)
	e.c.Text(x+bankW+typeW+curW+numW+2, hy, "CCI", headStyle, AlignLeft)
	y += m.BankHeaderHeight

	for i, a := range accounts {
		if i%2 == 1 {
			e.c.Rect(x, y, width, m.BankRowHeight, nil, 0, &colorShade)
		}
		baseline := y + m.BankRowHeight/2 + 2
		e.c.Text(x+2, baseline, a.Bank, cellStyle, AlignLeft)
		e.c.Text(x+bankW+2, baseline, a.Type, cellStyle, AlignLeft)
		e.c.Text(x+bankW+typeW+2, baseline, a.Currency, cellStyle, AlignLeft)
		e.c.Text(x+bankW+typeW+curW+2, baseline, a.Number, cellStyle, AlignLeft)
		e.c.Text(x+bankW+typeW+curW+numW+2, baseline, a.CCI, cellStyle, AlignLeft)
		y += m.BankRowHeight
	}
	return y
}

func (e *Engine) drawTitledBox(x, y, width float64, title string, lines []string) float64 {
	m := e.m
	titleStyle := Style{Size: m.FontSmall, Bold: true, Color: colorDarkGray}
	bodyStyle := Style{Size: m.FontTiny, Color: colorDarkGray}

	var wrapped []string
	for _, l := range lines {
		wrapped = append(wrapped, wrapText(e.c, l, bodyStyle, width-2*m.BoxPad)...)
	}
	height := m.BoxPad + m.BoxLineHeight + float64(len(wrapped))*(m.BoxLineHeight-2) + m.BoxPad
	e.c.Rect(x, y, width, height, &colorLightGray, m.LineWidthThin, nil)

	ty := y + m.BoxPad + m.FontSmall
	e.c.Text(x+m.BoxPad, ty, title, titleStyle, AlignLeft)
	ty += m.BoxLineHeight - 2
	for _, l := range wrapped {
		e.c.Text(x+m.BoxPad, ty, l, bodyStyle, AlignLeft)
		ty += m.BoxLineHeight - 2
	}
	return y + height
}

func (e *Engine) drawDetractionBox(x, y, width float64, inv *entity.Invoice) float64 {
	d := inv.Detraction
	lines := []string{
		"Operación sujeta al Sistema de Pago de Obligaciones Tributarias.",
	}
	if d.Code != "" {
		lines = append(lines, "Código del bien o servicio: "+d.Code)
	}
	lines = append(lines, "Porcentaje: "+formatPercent(d.Rate)+" | Monto: "+formatMoney(d.Amount, inv.Currency))
	if d.BankAccount != "" {
		lines = append(lines, "Cuenta Banco de la Nación: "+d.BankAccount)
	}
	return e.drawTitledBox(x, y, width, "DETRACCIÓN", lines)
}

func (e *Engine) drawTransportBox(x, y, width float64, inv *entity.Invoice) float64 {
	var lines []string
	for _, f := range inv.Customer.CustomFields {
		if f.Label != "" && f.Value != "" {
			lines = append(lines, f.Label+": "+f.Value)
		}
	}
	if inv.References != nil && inv.References.CarrierGuide != "" {
		lines = append(lines, "Guía del transportista: "+inv.References.CarrierGuide)
	}
	return e.drawTitledBox(x, y, width, "DATOS DEL TRASLADO", lines)
}

func (e *Engine) drawPaymentsTable(x, y, width float64, inv *entity.Invoice) float64 {
	lines := make([]string, 0, len(inv.Payments))
	for _, p := range inv.Payments {
		lines = append(lines, formatDate(p.Date)+" | "+p.Method+" | "+formatMoney(p.Amount, inv.Currency))
	}
	return e.drawTitledBox(x, y, width, "PAGOS REGISTRADOS", lines)
}

func (e *Engine) drawExemptNote(x, y, width float64, company *entity.CompanySettings) float64 {
	line := "Operación exonerada del IGV."
	if company.Tax.ExemptionCode != "" {
		line += " Código de exoneración: " + company.Tax.ExemptionCode + "."
	}
	return e.drawTitledBox(x, y, width, "EXONERACIÓN", []string{line})
}

func (e *Engine) drawNotesBox(x, y, width float64, notes string) float64 {
	return e.drawTitledBox(x, y, width, "OBSERVACIONES", []string{notes})
}

// ── Caja de validación ───────────────────────────────────────────────────────

// DrawValidationBox dibuja el QR, la leyenda de validez y el cronograma de
// cuotas. Arranca en el mayor de los dos cursores del pie para no
// superponer ninguna pila.
func (e *Engine) DrawValidationBox(y float64, inv *entity.Invoice, company *entity.CompanySettings, qrPNG []byte) float64 {
	m := e.m
	e.c.Line(m.MarginLeft, y, e.rightEdge(), y, m.LineWidthThin, colorLightGray)
	y += m.SectionGap

	textX := m.MarginLeft
	qrBottom := y
	if len(qrPNG) > 0 {
		e.c.Image(qrPNG, "PNG", m.MarginLeft, y, m.QRSize, m.QRSize)
		textX = m.MarginLeft + m.QRSize + m.PartyColumnGap
		qrBottom = y + m.QRSize
	}

	legendStyle := Style{Size: m.FontTiny, Color: colorGray}
	legendW := e.contentWidth()/2 - (textX - m.MarginLeft)
	legend := "Representación impresa de la " + inv.Kind.Label() + "."
	if company.Website != "" {
		legend += " Consulte el documento en " + company.Website + "."
	}
	ly := y + m.BoxLineHeight
	for _, l := range clampLines(wrapText(e.c, legend, legendStyle, legendW), 4) {
		e.c.Text(textX, ly, l, legendStyle, AlignLeft)
		ly += m.BoxLineHeight - 2
	}

	instBottom := y
	if render.HasInstallments(inv) {
		instBottom = e.drawInstallments(m.MarginLeft+e.contentWidth()/2+m.PartyColumnGap, y, e.contentWidth()/2-m.PartyColumnGap, inv)
	}

	bottom := math.Max(qrBottom, math.Max(ly, instBottom))
	return bottom + m.SectionGap
}

func (e *Engine) drawInstallments(x, y, width float64, inv *entity.Invoice) float64 {
	m := e.m
	headStyle := Style{Size: m.FontTiny, Bold: true, Color: colorDarkGray}
	cellStyle := Style{Size: m.FontTiny, Color: colorBlack}

	e.c.Text(x, y+m.FontSmall, "CRONOGRAMA DE CUOTAS", headStyle, AlignLeft)
	y += m.InstRowHeight

	numW := width * 0.15
	dateW := width * 0.40
	for _, c := range inv.Installments {
		baseline := y + m.InstRowHeight/2 + 2
		e.c.Text(x, baseline, peruPrinter.Sprintf("Cuota %d", c.Sequence), cellStyle, AlignLeft)
		e.c.Text(x+numW+dateW, baseline, formatDate(c.DueDate), cellStyle, AlignRight)
		e.c.Text(x+width, baseline, formatMoney(c.Amount, inv.Currency), cellStyle, AlignRight)
		y += m.InstRowHeight
	}
	return y
}

// ── Pie de página ────────────────────────────────────────────────────────────

// DrawPageFooter dibuja la línea y la leyenda fija del borde inferior.
func (e *Engine) DrawPageFooter(company *entity.CompanySettings) {
	m := e.m
	w, h := e.c.Size()
	ruleY := h - m.MarginBottom - m.FooterRuleOffset
	e.c.Line(m.MarginLeft, ruleY, w-m.MarginRight, ruleY, m.LineWidthThin, colorLightGray)

	legend := "Generado por Cobrify - Facturación Electrónica"
	if company.Website != "" {
		legend += " | " + company.Website
	}
	style := Style{Size: m.FontTiny, Color: colorGray}
	e.c.Text(w/2, ruleY+m.FooterRuleOffset-3, legend, style, AlignCenter)
}
