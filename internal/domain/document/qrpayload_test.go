package document_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobrify/docrender/internal/domain/document"
	"github.com/cobrify/docrender/internal/domain/entity"
)

func baseInvoice() *entity.Invoice {
	return &entity.Invoice{
		Kind:      entity.KindFactura,
		Series:    "F001",
		Sequence:  "00000123",
		Date:      time.Date(2025, 12, 14, 0, 0, 0, 0, time.UTC),
		Currency:  entity.CurrencyPEN,
		Subtotal:  decimal.RequireFromString("100.00"),
		TaxRate:   decimal.NewFromInt(18),
		TaxAmount: decimal.RequireFromString("18.00"),
		Total:     decimal.RequireFromString("118.00"),
		Customer: entity.Customer{
			Name:           "COMERCIAL ANDINA SAC",
			DocumentType:   "RUC",
			DocumentNumber: "20601030013",
		},
		Items: []entity.Item{{
			Description: "Servicio de mantenimiento",
			Quantity:    decimal.NewFromInt(1),
			Unit:        "UNIDAD",
			UnitPrice:   decimal.RequireFromString("118.00"),
			Subtotal:    decimal.RequireFromString("118.00"),
		}},
	}
}

func baseCompany() *entity.CompanySettings {
	return &entity.CompanySettings{
		LegalName: "CORPORACION LIMA NORTE S.A.C.",
		RUC:       "20512345678",
	}
}

// Vector exacto del contrato de 10 campos.
func TestBuildQRPayload_VectorExacto(t *testing.T) {
	got := document.BuildQRPayload(baseInvoice(), baseCompany())
	assert.Equal(t,
		"20512345678|01|F001|00000123|18.00|118.00|14/12/2025|6|20601030013|",
		got)
}

// El conteo y el orden de los campos son parte del contrato: siempre 10,
// sin importar cuántos opcionales estén presentes.
func TestBuildQRPayload_SiempreDiezCampos(t *testing.T) {
	full := document.BuildQRPayload(baseInvoice(), baseCompany())
	require.Len(t, strings.Split(full, "|"), 10)

	empty := document.BuildQRPayload(&entity.Invoice{}, &entity.CompanySettings{})
	require.Len(t, strings.Split(empty, "|"), 10,
		"los campos ausentes viajan vacíos, nunca se omiten")
}

// Cliente sin documento: tipo "0" y número "-".
func TestBuildQRPayload_ClienteSinDocumento(t *testing.T) {
	inv := baseInvoice()
	inv.Customer.DocumentType = ""
	inv.Customer.DocumentNumber = ""

	fields := strings.Split(document.BuildQRPayload(inv, baseCompany()), "|")
	assert.Equal(t, "0", fields[7])
	assert.Equal(t, "-", fields[8])
}

// Últimos campos: el décimo queda reservado vacío.
func TestBuildQRPayload_CampoReservadoVacio(t *testing.T) {
	fields := strings.Split(document.BuildQRPayload(baseInvoice(), baseCompany()), "|")
	assert.Equal(t, "", fields[9])
}

// Códigos del catálogo 06 por tipo de documento del cliente.
func TestBuildQRPayload_CodigosCatalogo06(t *testing.T) {
	cases := map[string]string{"DNI": "1", "CE": "4", "RUC": "6", "PASSPORT": "7"}
	for docType, want := range cases {
		inv := baseInvoice()
		inv.Customer.DocumentType = docType
		inv.Customer.DocumentNumber = "12345678"
		fields := strings.Split(document.BuildQRPayload(inv, baseCompany()), "|")
		assert.Equal(t, want, fields[7], "tipo de documento %s", docType)
	}
}

// Boletas y notas llevan su código de dos dígitos propio.
func TestBuildQRPayload_CodigoPorTipoDeComprobante(t *testing.T) {
	cases := map[entity.Kind]string{
		entity.KindFactura:     "01",
		entity.KindBoleta:      "03",
		entity.KindNotaCredito: "07",
		entity.KindNotaDebito:  "08",
		entity.KindNotaVenta:   "00",
	}
	for kind, want := range cases {
		inv := baseInvoice()
		inv.Kind = kind
		fields := strings.Split(document.BuildQRPayload(inv, baseCompany()), "|")
		assert.Equal(t, want, fields[1], "tipo %s", kind)
	}
}

func TestFilename_Convencion(t *testing.T) {
	inv := baseInvoice()
	assert.Equal(t, "Factura_F001-00000123.pdf", document.Filename(inv))

	inv.Kind = entity.KindBoleta
	inv.Series = "B001"
	assert.Equal(t, "Boleta_B001-00000123.pdf", document.Filename(inv))
}

func TestFilename_ReemplazaSlashes(t *testing.T) {
	inv := baseInvoice()
	inv.Sequence = "0001/24"
	assert.NotContains(t, document.Filename(inv), "/")
}
