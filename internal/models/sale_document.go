package models

import "github.com/shopspring/decimal"

// OwnerInfo is the business header block printed on sale documents.
type OwnerInfo struct {
	Name     string
	Business string
	Phone    string
	Address  string
}

// DocumentLine is one resolved line item of a printable sale document.
type DocumentLine struct {
	Quantity    int64
	Description string
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// SaleDocument is the input contract of the document generator:
// (saleRecord, lineItems[]) → printable document.
type SaleDocument struct {
	SaleID         string
	Date           string
	ClientName     string
	ClientRUC      string
	ClientRef      string
	District       string
	PaymentMethod  string
	SaleType       string
	Total          decimal.Decimal
	InitialPayment decimal.Decimal
	Balance        decimal.Decimal
	Owner          OwnerInfo
	Lines          []DocumentLine
}
