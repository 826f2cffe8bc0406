package pdf

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/cobrify/docrender/internal/domain/entity"
)

// Impresión de montos con la agrupación de miles del locale peruano.
var peruPrinter = message.NewPrinter(language.MustParse("es-PE"))

func formatAmount(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return peruPrinter.Sprintf("%.2f", f)
}

func currencySymbol(currency string) string {
	if currency == entity.CurrencyUSD {
		return "$"
	}
	return "S/"
}

func formatMoney(d decimal.Decimal, currency string) string {
	return currencySymbol(currency) + " " + formatAmount(d)
}

// formatPercent muestra una tasa porcentual (18) como "18%", sin
// decimales de relleno.
func formatPercent(rate decimal.Decimal) string {
	return rate.Truncate(2).String() + "%"
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
