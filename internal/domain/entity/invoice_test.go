package entity_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobrify/docrender/internal/domain/entity"
)

func validInvoice() *entity.Invoice {
	return &entity.Invoice{
		Kind:      entity.KindFactura,
		Series:    "F001",
		Sequence:  "00000001",
		Currency:  entity.CurrencyPEN,
		Subtotal:  decimal.RequireFromString("100.00"),
		TaxAmount: decimal.RequireFromString("18.00"),
		Total:     decimal.RequireFromString("118.00"),
		Items: []entity.Item{{
			Description: "Producto",
			Quantity:    decimal.NewFromInt(2),
			UnitPrice:   decimal.RequireFromString("59.00"),
			Subtotal:    decimal.RequireFromString("118.00"),
		}},
	}
}

func TestValidate_DocumentoValido(t *testing.T) {
	require.NoError(t, validInvoice().Validate())
}

func TestValidate_SinItems(t *testing.T) {
	inv := validInvoice()
	inv.Items = nil

	err := inv.Validate()
	require.Error(t, err)

	var verr *entity.ValidationError
	require.True(t, errors.As(err, &verr), "debe ser un error tipado de validación")
	assert.Equal(t, "items", verr.Fields[0].Field)
}

// Todas las violaciones se agregan en un solo error, no se falla a mitad.
func TestValidate_AgregaTodasLasViolaciones(t *testing.T) {
	inv := validInvoice()
	inv.Series = "f-01"
	inv.Sequence = "ABC"
	inv.Items[0].Quantity = decimal.NewFromInt(-1)

	err := inv.Validate()
	require.Error(t, err)

	var verr *entity.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
}

func TestValidate_MontosNegativos(t *testing.T) {
	inv := validInvoice()
	inv.Discount = decimal.RequireFromString("-5.00")

	var verr *entity.ValidationError
	require.True(t, errors.As(inv.Validate(), &verr))
	assert.Equal(t, "discount", verr.Fields[0].Field)
}

// Con varios montos negativos los campos se reportan siempre en el mismo
// orden; el error agregado es estable entre ejecuciones.
func TestValidate_OrdenDeCamposEstable(t *testing.T) {
	build := func() *entity.Invoice {
		inv := validInvoice()
		inv.Subtotal = decimal.RequireFromString("-100.00")
		inv.TaxAmount = decimal.RequireFromString("-18.00")
		inv.Discount = decimal.RequireFromString("-5.00")
		inv.Total = decimal.RequireFromString("-118.00")
		return inv
	}

	var verr *entity.ValidationError
	require.True(t, errors.As(build().Validate(), &verr))
	require.Len(t, verr.Fields, 4)

	want := []string{"subtotal", "taxAmount", "discount", "total"}
	for i, f := range verr.Fields {
		assert.Equal(t, want[i], f.Field)
	}

	first := build().Validate().Error()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, build().Validate().Error())
	}
}

func TestValidate_SerieMalformada(t *testing.T) {
	for _, s := range []string{"", "f001", "F-001", "FACTURA1"} {
		inv := validInvoice()
		inv.Series = s
		assert.Error(t, inv.Validate(), "serie %q debe rechazarse", s)
	}
	for _, s := range []string{"F001", "B001", "NV01", "T1"} {
		inv := validInvoice()
		inv.Series = s
		assert.NoError(t, inv.Validate(), "serie %q debe aceptarse", s)
	}
}

func TestNumber(t *testing.T) {
	inv := validInvoice()
	assert.Equal(t, "F001-00000001", inv.Number())
}

func TestKind_Catalogo(t *testing.T) {
	assert.Equal(t, "01", entity.KindFactura.Code())
	assert.Equal(t, "FACTURA ELECTRÓNICA", entity.KindFactura.Label())
	assert.True(t, entity.KindNotaCredito.IsNote())
	assert.False(t, entity.KindBoleta.IsNote())
	assert.False(t, entity.Kind("recibo").Valid())
}
