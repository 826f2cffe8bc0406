package document_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cobrify/docrender/internal/domain/document"
)

// Vectores exactos: si alguien toca las tablas o la composición de grupos,
// estos casos fallan de inmediato.
func TestToWords_VectoresExactos(t *testing.T) {
	cases := []struct {
		amount   string
		expected string
	}{
		{"0.00", "CERO CON 00/100"},
		{"0.75", "CERO CON 75/100"},
		{"1.00", "UN CON 00/100"},
		{"9.99", "NUEVE CON 99/100"},
		{"10.00", "DIEZ CON 00/100"},
		{"15.50", "QUINCE CON 50/100"},
		{"21.00", "VEINTIUNO CON 00/100"},
		{"29.10", "VEINTINUEVE CON 10/100"},
		{"31.00", "TREINTA Y UN CON 00/100"},
		{"99.00", "NOVENTA Y NUEVE CON 00/100"},
		{"100.00", "CIEN CON 00/100"},
		{"118.00", "CIENTO DIECIOCHO CON 00/100"},
		{"215.00", "DOSCIENTOS QUINCE CON 00/100"},
		{"999.99", "NOVECIENTOS NOVENTA Y NUEVE CON 99/100"},
		{"1000.00", "MIL CON 00/100"},
		{"1001.00", "MIL UN CON 00/100"},
		{"21000.00", "VEINTIUNO MIL CON 00/100"},
		{"100000.00", "CIEN MIL CON 00/100"},
		{"1000000.50", "UN MILLON CON 50/100"},
		{"2000000.00", "DOS MILLONES CON 00/100"},
		{"1234567.89", "UN MILLON DOSCIENTOS TREINTA Y CUATRO MIL QUINIENTOS SESENTA Y SIETE CON 89/100"},
		{"999999999.99", "NOVECIENTOS NOVENTA Y NUEVE MILLONES NOVECIENTOS NOVENTA Y NUEVE MIL NOVECIENTOS NOVENTA Y NUEVE CON 99/100"},
	}

	for _, tc := range cases {
		amount := decimal.RequireFromString(tc.amount)
		assert.Equal(t, tc.expected, document.ToWords(amount),
			"monto %s debe convertirse exactamente", tc.amount)
	}
}

// El cero usa la forma irregular corta, no el algoritmo de grupos.
func TestToWords_CeroEsFormaIrregular(t *testing.T) {
	got := document.ToWords(decimal.Zero)
	require.Equal(t, "CERO CON 00/100", got)
}

// Un millón exacto usa la forma singular, nunca "UNO MILLONES".
func TestToWords_MillonSingular(t *testing.T) {
	got := document.ToWords(decimal.NewFromInt(1_000_000))
	assert.Contains(t, got, "UN MILLON")
	assert.NotContains(t, got, "MILLONES")
}

// La función es total y determinista en todo el dominio [0, 10^9).
func TestToWords_Determinista(t *testing.T) {
	samples := []float64{0, 0.01, 7, 77.77, 808, 16384.32, 999999.99, 123456789.01}
	for _, s := range samples {
		amount := decimal.NewFromFloat(s)
		first := document.ToWords(amount)
		second := document.ToWords(amount)
		require.Equal(t, first, second, "el mismo monto siempre produce el mismo texto")
		require.NotEmpty(t, first)
		require.Contains(t, first, "/100")
	}
}

func TestCurrencyWords(t *testing.T) {
	assert.Equal(t, "SOLES", document.CurrencyWords("PEN"))
	assert.Equal(t, "DÓLARES AMERICANOS", document.CurrencyWords("USD"))
	assert.Equal(t, "SOLES", document.CurrencyWords(""), "moneda desconocida cae a SOLES")
}
