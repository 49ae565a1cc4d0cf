package plantreceipt

import "gasdesk/infrastructure/erp"

// Line is one voucher row as entered, before totals are derived.
type Line struct {
	ProductID string
	Quantity  float64
	UnitPrice float64
	TaxRate   float64
}

// Totals are the derived voucher aggregates. GrandTotal is the rounded sum
// of SubTotal and TaxTotal; Rounding is the delta the rounding introduced.
type Totals struct {
	Items      []erp.VoucherItem
	SubTotal   float64
	TaxTotal   float64
	Rounding   float64
	GrandTotal float64
}

// PageData backs the voucher editor.
type PageData struct {
	Products     []erp.Product
	Suppliers    []erp.Supplier
	Nav          string
	Status       string
	ErrorMessage string
}
