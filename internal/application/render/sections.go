package render

import "github.com/cobrify/docrender/internal/domain/entity"

// Predicados puros que deciden qué secciones opcionales del pie aplican a un
// comprobante. El motor de layout los consulta; una sección que no aplica
// aporta altura cero y ninguna primitiva de dibujo.

// HasDiscount indica si la caja de totales inserta la fila de descuento.
func HasDiscount(inv *entity.Invoice) bool {
	return inv.Discount.IsPositive()
}

// HasDetraction indica si se dibujan la fila de detracción, la de neto a
// pagar y la caja de divulgación de la detracción.
func HasDetraction(inv *entity.Invoice) bool {
	return inv.Detraction != nil && inv.Detraction.Amount.IsPositive()
}

// HasBankAccounts indica si se dibuja la tabla de cuentas bancarias.
func HasBankAccounts(company *entity.CompanySettings) bool {
	return len(company.BankAccounts) > 0
}

// HasInstallments indica si se dibuja el cronograma de cuotas junto al QR.
func HasInstallments(inv *entity.Invoice) bool {
	return len(inv.Installments) > 0
}

// HasPayments indica si se dibuja el historial de pagos; solo aplica a
// notas de venta.
func HasPayments(inv *entity.Invoice) bool {
	return inv.Kind == entity.KindNotaVenta && len(inv.Payments) > 0
}

// HasTransport indica si se dibuja la caja de datos de transporte (ruta,
// placa del vehículo o guía del transportista).
func HasTransport(inv *entity.Invoice) bool {
	for _, f := range inv.Customer.CustomFields {
		if f.Value != "" {
			return true
		}
	}
	return inv.References != nil && inv.References.CarrierGuide != ""
}

// HasNoteReference indica si el bloque de metadatos reemplaza las
// condiciones de pago por el documento afectado y el motivo (notas de
// crédito y débito con referencia).
func HasNoteReference(inv *entity.Invoice) bool {
	return inv.Kind.IsNote() && inv.References != nil && inv.References.DocumentNumber != ""
}

// IsExempt indica si se muestra la leyenda de operación exonerada.
func IsExempt(company *entity.CompanySettings) bool {
	return company.Tax.Exempt
}
