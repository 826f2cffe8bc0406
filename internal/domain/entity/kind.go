package entity

// Kind identifica el tipo de comprobante que se renderiza.
type Kind string

// Tipos de comprobante soportados por el motor de render.
const (
	KindFactura     Kind = "factura"
	KindBoleta      Kind = "boleta"
	KindNotaVenta   Kind = "nota_venta"
	KindNotaCredito Kind = "nota_credito"
	KindNotaDebito  Kind = "nota_debito"
)

// Code devuelve el código de dos dígitos del catálogo 01 de SUNAT.
// La nota de venta es un documento interno sin código oficial; se usa "00"
// para mantener estable el contrato de dos dígitos del payload del QR.
func (k Kind) Code() string {
	switch k {
	case KindFactura:
		return "01"
	case KindBoleta:
		return "03"
	case KindNotaCredito:
		return "07"
	case KindNotaDebito:
		return "08"
	case KindNotaVenta:
		return "00"
	default:
		return ""
	}
}

// Label devuelve el título que encabeza el recuadro del documento.
func (k Kind) Label() string {
	switch k {
	case KindFactura:
		return "FACTURA ELECTRÓNICA"
	case KindBoleta:
		return "BOLETA DE VENTA ELECTRÓNICA"
	case KindNotaVenta:
		return "NOTA DE VENTA"
	case KindNotaCredito:
		return "NOTA DE CRÉDITO ELECTRÓNICA"
	case KindNotaDebito:
		return "NOTA DE DÉBITO ELECTRÓNICA"
	default:
		return "COMPROBANTE"
	}
}

// FileLabel devuelve el prefijo del nombre de archivo del PDF generado.
func (k Kind) FileLabel() string {
	switch k {
	case KindFactura:
		return "Factura"
	case KindBoleta:
		return "Boleta"
	case KindNotaVenta:
		return "NotaVenta"
	case KindNotaCredito:
		return "NotaCredito"
	case KindNotaDebito:
		return "NotaDebito"
	default:
		return "Comprobante"
	}
}

// Valid indica si el tipo pertenece al catálogo soportado.
func (k Kind) Valid() bool {
	switch k {
	case KindFactura, KindBoleta, KindNotaVenta, KindNotaCredito, KindNotaDebito:
		return true
	}
	return false
}

// IsNote indica si el comprobante es una nota que referencia a otro documento.
func (k Kind) IsNote() bool {
	return k == KindNotaCredito || k == KindNotaDebito
}
