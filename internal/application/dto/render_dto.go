// Package dto define los contratos JSON de la API y su mapeo hacia las
// entidades del dominio. Los montos aceptan número o cadena decimal.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/cobrify/docrender/internal/domain/entity"
)

// RenderRequest es el cuerpo de POST /api/v1/documents/render.
type RenderRequest struct {
	Invoice  InvoiceDTO  `json:"invoice"`
	Company  CompanyDTO  `json:"company"`
	Branches []BranchDTO `json:"branches,omitempty"`
}

// InvoiceDTO es el comprobante a renderizar.
type InvoiceDTO struct {
	Kind     string `json:"kind"`
	Series   string `json:"series"`
	Sequence string `json:"sequence"`
	Date     string `json:"date"` // YYYY-MM-DD
	Currency string `json:"currency"`

	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxRate   decimal.Decimal `json:"taxRate"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`

	Detraction   *DetractionDTO   `json:"detraction,omitempty"`
	Installments []InstallmentDTO `json:"installments,omitempty"`
	Customer     CustomerDTO      `json:"customer"`
	Items        []ItemDTO        `json:"items"`
	References   *ReferencesDTO   `json:"references,omitempty"`
	Payments     []PaymentDTO     `json:"payments,omitempty"`

	PaymentMethod string `json:"paymentMethod,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type DetractionDTO struct {
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
	NetPayable  decimal.Decimal `json:"netPayable"`
	BankAccount string          `json:"bankAccount,omitempty"`
	Code        string          `json:"code,omitempty"`
}

type InstallmentDTO struct {
	Sequence int             `json:"sequence"`
	Amount   decimal.Decimal `json:"amount"`
	DueDate  string          `json:"dueDate,omitempty"`
}

type CustomerDTO struct {
	Name           string           `json:"name"`
	DocumentType   string           `json:"documentType,omitempty"`
	DocumentNumber string           `json:"documentNumber,omitempty"`
	Address        string           `json:"address,omitempty"`
	Email          string           `json:"email,omitempty"`
	Phone          string           `json:"phone,omitempty"`
	CustomFields   []CustomFieldDTO `json:"customFields,omitempty"`
}

type CustomFieldDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ItemDTO struct {
	Description string          `json:"description"`
	Code        string          `json:"code,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit,omitempty"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Note        string          `json:"note,omitempty"`
}

type ReferencesDTO struct {
	DocumentNumber string `json:"documentNumber,omitempty"`
	DocumentKind   string `json:"documentKind,omitempty"`
	ReasonCode     string `json:"reasonCode,omitempty"`
	Reason         string `json:"reason,omitempty"`
	PurchaseOrder  string `json:"purchaseOrder,omitempty"`
	CarrierGuide   string `json:"carrierGuide,omitempty"`
}

type PaymentDTO struct {
	Date   string          `json:"date,omitempty"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method,omitempty"`
}

type CompanyDTO struct {
	LegalName   string `json:"legalName"`
	TradeName   string `json:"tradeName,omitempty"`
	RUC         string `json:"ruc"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
	Slogan      string `json:"slogan,omitempty"`
	LogoURL     string `json:"logoUrl,omitempty"`
	AccentColor string `json:"accentColor,omitempty"`

	BankAccounts []BankAccountDTO `json:"bankAccounts,omitempty"`
	Tax          TaxConfigDTO     `json:"tax"`
}

type BankAccountDTO struct {
	Bank     string `json:"bank"`
	Type     string `json:"type,omitempty"`
	Currency string `json:"currency,omitempty"`
	Number   string `json:"number"`
	CCI      string `json:"cci,omitempty"`
}

type TaxConfigDTO struct {
	Exempt        bool            `json:"exempt,omitempty"`
	Rate          decimal.Decimal `json:"rate"`
	ExemptionCode string          `json:"exemptionCode,omitempty"`
}

type BranchDTO struct {
	Name    string `json:"name,omitempty"`
	Address string `json:"address"`
	Phone   string `json:"phone,omitempty"`
}

func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

// ToEntity mapea el DTO al comprobante del dominio; la validación
// estructural ocurre después, sobre la entidad.
func (d InvoiceDTO) ToEntity() *entity.Invoice {
	inv := &entity.Invoice{
		Kind:          entity.Kind(d.Kind),
		Series:        d.Series,
		Sequence:      d.Sequence,
		Date:          parseDate(d.Date),
		Currency:      d.Currency,
		Subtotal:      d.Subtotal,
		TaxRate:       d.TaxRate,
		TaxAmount:     d.TaxAmount,
		Discount:      d.Discount,
		Total:         d.Total,
		PaymentMethod: d.PaymentMethod,
		Notes:         d.Notes,
		Customer: entity.Customer{
			Name:           d.Customer.Name,
			DocumentType:   d.Customer.DocumentType,
			DocumentNumber: d.Customer.DocumentNumber,
			Address:        d.Customer.Address,
			Email:          d.Customer.Email,
			Phone:          d.Customer.Phone,
		},
	}
	for _, f := range d.Customer.CustomFields {
		inv.Customer.CustomFields = append(inv.Customer.CustomFields, entity.CustomField{Label: f.Label, Value: f.Value})
	}
	if d.Detraction != nil {
		inv.Detraction = &entity.Detraction{
			Rate:        d.Detraction.Rate,
			Amount:      d.Detraction.Amount,
			NetPayable:  d.Detraction.NetPayable,
			BankAccount: d.Detraction.BankAccount,
			Code:        d.Detraction.Code,
		}
	}
	for _, c := range d.Installments {
		inv.Installments = append(inv.Installments, entity.Installment{
			Sequence: c.Sequence,
			Amount:   c.Amount,
			DueDate:  parseDate(c.DueDate),
		})
	}
	for _, it := range d.Items {
		inv.Items = append(inv.Items, entity.Item{
			Description: it.Description,
			Code:        it.Code,
			Quantity:    it.Quantity,
			Unit:        it.Unit,
			UnitPrice:   it.UnitPrice,
			Subtotal:    it.Subtotal,
			Note:        it.Note,
		})
	}
	if d.References != nil {
		inv.References = &entity.References{
			DocumentNumber: d.References.DocumentNumber,
			DocumentKind:   entity.Kind(d.References.DocumentKind),
			ReasonCode:     d.References.ReasonCode,
			Reason:         d.References.Reason,
			PurchaseOrder:  d.References.PurchaseOrder,
			CarrierGuide:   d.References.CarrierGuide,
		}
	}
	for _, p := range d.Payments {
		inv.Payments = append(inv.Payments, entity.Payment{
			Date:   parseDate(p.Date),
			Amount: p.Amount,
			Method: p.Method,
		})
	}
	return inv
}

// ToEntity mapea la configuración del emisor.
func (d CompanyDTO) ToEntity() *entity.CompanySettings {
	c := &entity.CompanySettings{
		LegalName:   d.LegalName,
		TradeName:   d.TradeName,
		RUC:         d.RUC,
		Address:     d.Address,
		Phone:       d.Phone,
		Email:       d.Email,
		Website:     d.Website,
		Slogan:      d.Slogan,
		LogoURL:     d.LogoURL,
		AccentColor: d.AccentColor,
		Tax: entity.TaxConfig{
			Exempt:        d.Tax.Exempt,
			Rate:          d.Tax.Rate,
			ExemptionCode: d.Tax.ExemptionCode,
		},
	}
	for _, b := range d.BankAccounts {
		c.BankAccounts = append(c.BankAccounts, entity.BankAccount{
			Bank:     b.Bank,
			Type:     b.Type,
			Currency: b.Currency,
			Number:   b.Number,
			CCI:      b.CCI,
		})
	}
	return c
}

// BranchesToEntity mapea la lista de sedes.
func BranchesToEntity(in []BranchDTO) []entity.Branch {
	out := make([]entity.Branch, 0, len(in))
	for _, b := range in {
		out = append(out, entity.Branch{Name: b.Name, Address: b.Address, Phone: b.Phone})
	}
	return out
}
