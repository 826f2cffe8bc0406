package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Monedas aceptadas en los comprobantes.
const (
	CurrencyPEN = "PEN"
	CurrencyUSD = "USD"
)

// Invoice es el registro de entrada del motor de render. Lo produce la capa
// de persistencia (colaborador externo) con los montos ya calculados; este
// núcleo nunca lo muta.
type Invoice struct {
	Kind     Kind
	Series   string // Ej: F001
	Sequence string // Ej: 00000123
	Date     time.Time
	Currency string // PEN o USD

	Subtotal  decimal.Decimal // base gravada
	TaxRate   decimal.Decimal // porcentaje, ej. 18
	TaxAmount decimal.Decimal
	Discount  decimal.Decimal
	Total     decimal.Decimal

	// Detracción SUNAT, opcional; montos ya finalizados por el caller.
	Detraction *Detraction

	// Cronograma de cuotas para ventas al crédito, opcional.
	Installments []Installment

	Customer Customer
	Items    []Item

	// Referencias a otros documentos, opcional (notas, O/C, guía).
	References *References

	// Historial de pagos; solo se renderiza para notas de venta.
	Payments []Payment

	PaymentMethod string
	Notes         string
}

// Number devuelve el número legible SERIE-CORRELATIVO.
func (i *Invoice) Number() string {
	return i.Series + "-" + i.Sequence
}

// Detraction agrupa los campos de la detracción (retención parcial obligatoria).
type Detraction struct {
	Rate        decimal.Decimal // porcentaje
	Amount      decimal.Decimal
	NetPayable  decimal.Decimal
	BankAccount string // cuenta del Banco de la Nación
	Code        string // código del bien/servicio sujeto a detracción
}

// Installment es una cuota del cronograma de pago.
type Installment struct {
	Sequence int
	Amount   decimal.Decimal
	DueDate  time.Time
}

// Payment es un pago registrado sobre una nota de venta.
type Payment struct {
	Date   time.Time
	Amount decimal.Decimal
	Method string
}

// CustomField es un campo libre del cliente (ruta, placa, alumno, etc.).
type CustomField struct {
	Label string
	Value string
}

// Customer es el sub-registro del adquiriente.
type Customer struct {
	Name           string
	DocumentType   string // DNI, RUC, CE, PASSPORT o vacío
	DocumentNumber string
	Address        string
	Email          string
	Phone          string
	CustomFields   []CustomField
}

// Item es una línea del detalle.
type Item struct {
	Description string
	Code        string // opcional; "CUSTOM" se trata como vacío
	Quantity    decimal.Decimal
	Unit        string // UNIDAD, CAJA, KG, ...
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
	Note        string // anotación libre, opcional
}

// References agrupa los documentos relacionados.
type References struct {
	DocumentNumber string // número del documento afectado (notas)
	DocumentKind   Kind
	ReasonCode     string
	Reason         string
	PurchaseOrder  string
	CarrierGuide   string
}

// ── Validación estructural ────────────────────────────────────────────────────

var (
	seriesRe   = regexp.MustCompile(`^[A-Z][A-Z0-9]{0,3}$`)
	sequenceRe = regexp.MustCompile(`^[0-9]{1,8}$`)
)

// FieldError identifica un campo que viola el contrato de entrada.
type FieldError struct {
	Field  string
	Reason string
}

// ValidationError agrega todas las violaciones estructurales encontradas
// antes de iniciar el layout; una geometría parcial no es un artefacto útil.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Reason))
	}
	return "documento no renderizable: " + strings.Join(parts, "; ")
}

// Validate verifica los invariantes estructurales del comprobante y retorna
// un único *ValidationError con todos los campos ofensores, o nil si el
// documento es renderizable. Los campos opcionales ausentes no son errores.
func (i *Invoice) Validate() error {
	var fields []FieldError
	add := func(field, reason string) {
		fields = append(fields, FieldError{Field: field, Reason: reason})
	}

	if !i.Kind.Valid() {
		add("kind", fmt.Sprintf("tipo de comprobante desconocido %q", string(i.Kind)))
	}
	if !seriesRe.MatchString(i.Series) {
		add("series", fmt.Sprintf("serie %q no cumple el formato esperado", i.Series))
	}
	if !sequenceRe.MatchString(i.Sequence) {
		add("sequence", fmt.Sprintf("correlativo %q no es numérico", i.Sequence))
	}
	if len(i.Items) == 0 {
		add("items", "se requiere al menos una línea de detalle")
	}
	for idx, it := range i.Items {
		if it.Quantity.IsNegative() {
			add(fmt.Sprintf("items[%d].quantity", idx), "la cantidad no puede ser negativa")
		}
		if it.UnitPrice.IsNegative() {
			add(fmt.Sprintf("items[%d].unitPrice", idx), "el precio unitario no puede ser negativo")
		}
		if it.Subtotal.IsNegative() {
			add(fmt.Sprintf("items[%d].subtotal", idx), "el importe no puede ser negativo")
		}
	}
	// Orden fijo: el error agregado debe ser estable entre ejecuciones.
	amounts := []struct {
		name  string
		value decimal.Decimal
	}{
		{"subtotal", i.Subtotal},
		{"taxAmount", i.TaxAmount},
		{"discount", i.Discount},
		{"total", i.Total},
	}
	for _, a := range amounts {
		if a.value.IsNegative() {
			add(a.name, "el monto no puede ser negativo")
		}
	}
	if i.Detraction != nil && i.Detraction.Amount.IsNegative() {
		add("detraction.amount", "el monto no puede ser negativo")
	}

	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
