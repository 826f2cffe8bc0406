package entity

import "github.com/shopspring/decimal"

// CompanySettings es la configuración del emisor; registro de solo lectura
// producido por la capa de administración (colaborador externo).
type CompanySettings struct {
	LegalName   string // razón social
	TradeName   string // nombre comercial; si difiere se muestran ambos
	RUC         string
	Address     string // dirección fiscal
	Phone       string
	Email       string
	Website     string
	Slogan      string
	LogoURL     string // URL http(s) a PNG o JPEG; vacío = sin logo
	AccentColor string // color de acento "#rrggbb", opcional

	BankAccounts []BankAccount
	Tax          TaxConfig
}

// BankAccount es una cuenta bancaria mostrada en el pie del comprobante.
type BankAccount struct {
	Bank     string
	Type     string // ahorros, corriente, detracciones
	Currency string // PEN o USD
	Number   string
	CCI      string // código de cuenta interbancario
}

// TaxConfig agrupa la configuración tributaria del emisor.
type TaxConfig struct {
	Exempt        bool            // emisor exonerado del IGV
	Rate          decimal.Decimal // porcentaje, ej. 18
	ExemptionCode string          // código del motivo de exoneración
}

// Branch es una sede cuya dirección se enumera en el encabezado.
type Branch struct {
	Name    string
	Address string
	Phone   string
}
