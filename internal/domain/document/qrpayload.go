package document

import (
	"strings"

	"github.com/cobrify/docrender/internal/domain/entity"
)

// qrFieldCount es parte del contrato de compatibilidad con las herramientas
// de verificación externas: el payload SIEMPRE tiene 10 campos separados por
// pipe, en este orden, con los ausentes como cadena vacía (nunca omitidos).
// El décimo campo está reservado y siempre viaja vacío.
const qrFieldCount = 10

// Códigos del catálogo 06 de SUNAT para el documento del adquiriente.
var customerDocCodes = map[string]string{
	"DNI":      "1",
	"CE":       "4",
	"RUC":      "6",
	"PASSPORT": "7",
}

// BuildQRPayload construye la cadena que codifica el QR de validación:
//
//	RUC|tipoDoc|serie|correlativo|IGV|total|DD/MM/YYYY|tipoDocCliente|numDocCliente|
//
// Montos con dos decimales sin separador de miles; fecha vacía si no se
// conoce; tipo de documento del cliente "0" y número "-" cuando no hay
// documento. La función es pura y nunca falla.
func BuildQRPayload(inv *entity.Invoice, company *entity.CompanySettings) string {
	date := ""
	if !inv.Date.IsZero() {
		date = inv.Date.Format("02/01/2006")
	}

	docType := "0"
	if code, ok := customerDocCodes[inv.Customer.DocumentType]; ok && inv.Customer.DocumentNumber != "" {
		docType = code
	}
	docNumber := inv.Customer.DocumentNumber
	if docNumber == "" {
		docNumber = "-"
	}

	fields := [qrFieldCount]string{
		company.RUC,
		inv.Kind.Code(),
		inv.Series,
		inv.Sequence,
		inv.TaxAmount.StringFixed(2),
		inv.Total.StringFixed(2),
		date,
		docType,
		docNumber,
		"", // reservado
	}
	return strings.Join(fields[:], "|")
}

// Filename devuelve el nombre de archivo convencional del PDF:
// {TipoDoc}_{Serie}-{Correlativo}.pdf, con "/" reemplazado por "-".
func Filename(inv *entity.Invoice) string {
	number := strings.ReplaceAll(inv.Number(), "/", "-")
	return inv.Kind.FileLabel() + "_" + number + ".pdf"
}
