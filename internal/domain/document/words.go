// Package document contiene los algoritmos puros del comprobante: el monto
// en letras, el payload del código de validación y el nombre de archivo.
// Ningún símbolo de este paquete hace IO ni depende de la superficie de render.
package document

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Tablas en castellano; 10-19 y 20-29 son irregulares y se resuelven por
// búsqueda directa, el resto por composición decena × unidad.
var (
	unidades  = [...]string{"", "UN", "DOS", "TRES", "CUATRO", "CINCO", "SEIS", "SIETE", "OCHO", "NUEVE"}
	especiales = [...]string{"DIEZ", "ONCE", "DOCE", "TRECE", "CATORCE", "QUINCE", "DIECISEIS", "DIECISIETE", "DIECIOCHO", "DIECINUEVE"}
	decenas   = [...]string{"", "", "VEINTE", "TREINTA", "CUARENTA", "CINCUENTA", "SESENTA", "SETENTA", "OCHENTA", "NOVENTA"}
	veintis   = [...]string{"VEINTE", "VEINTIUNO", "VEINTIDOS", "VEINTITRES", "VEINTICUATRO", "VEINTICINCO", "VEINTISEIS", "VEINTISIETE", "VEINTIOCHO", "VEINTINUEVE"}
	centenas  = [...]string{"", "CIENTO", "DOSCIENTOS", "TRESCIENTOS", "CUATROCIENTOS", "QUINIENTOS", "SEISCIENTOS", "SETECIENTOS", "OCHOCIENTOS", "NOVECIENTOS"}
)

// convertGroup convierte un grupo 1-999 a letras. Retorna "" para 0.
func convertGroup(n int64) string {
	if n == 0 {
		return ""
	}
	if n == 100 {
		return "CIEN"
	}
	c := n / 100
	d := (n % 100) / 10
	u := n % 10

	var b strings.Builder
	if c > 0 {
		b.WriteString(centenas[c])
	}
	switch d {
	case 1:
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(especiales[u])
	case 2:
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(veintis[u])
	default:
		if d > 0 {
			if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(decenas[d])
		}
		if u > 0 {
			if d > 0 {
				b.WriteString(" Y ")
			} else if b.Len() > 0 {
				b.WriteString(" ")
			}
			b.WriteString(unidades[u])
		}
	}
	return b.String()
}

// ToWords convierte un monto en su texto en castellano en mayúsculas, con la
// parte decimal siempre como código de dos dígitos "CON NN/100". El dominio
// válido es [0, 10^9); el caller es responsable de acotarlo. La función es
// total y determinista: nunca falla.
//
//	ToWords(0)          => "CERO CON 00/100"
//	ToWords(1)          => "UN CON 00/100"
//	ToWords(1000000.50) => "UN MILLON CON 50/100"
func ToWords(amount decimal.Decimal) string {
	entero := amount.Floor().IntPart()
	cents := amount.Sub(amount.Floor()).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	suffix := fmt.Sprintf("CON %02d/100", cents)

	if entero == 0 {
		return "CERO " + suffix
	}

	millones := entero / 1_000_000
	restoMillones := entero % 1_000_000
	miles := restoMillones / 1000
	finales := restoMillones % 1000

	var b strings.Builder
	if millones > 0 {
		if millones == 1 {
			b.WriteString("UN MILLON")
		} else {
			b.WriteString(convertGroup(millones) + " MILLONES")
		}
	}
	if miles > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		if miles == 1 {
			b.WriteString("MIL")
		} else {
			b.WriteString(convertGroup(miles) + " MIL")
		}
	}
	if finales > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(convertGroup(finales))
	}

	b.WriteString(" " + suffix)
	return b.String()
}

// CurrencyWords devuelve la palabra de la moneda que acompaña al monto en
// letras. Monedas desconocidas caen a SOLES.
func CurrencyWords(currency string) string {
	if currency == "USD" {
		return "DÓLARES AMERICANOS"
	}
	return "SOLES"
}
