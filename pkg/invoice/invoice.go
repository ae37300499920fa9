// Package invoice defines the structured data extracted from a scanned
// purchase invoice.
package invoice

import (
	"github.com/shopspring/decimal"
)

// InvoiceData holds the header fields and line items extracted from the raw
// OCR text of a purchase invoice.
//
// Header fields are pointers: nil means "not found in the text", which is an
// expected outcome of OCR extraction, not an error. A nil amount must never
// be conflated with a zero amount.
type InvoiceData struct {
	InvoiceID *string
	// Date is the invoice date as found in the text, dd/mm/yyyy.
	Date      *string
	TotalHT   *decimal.Decimal
	VATRate   *decimal.Decimal
	VATAmount *decimal.Decimal
	TotalTTC  *decimal.Decimal
	LineItems []LineItem
}

// LineItem is one row of the invoice's item table. Category is always
// populated; when no keyword matches, it falls back to the default category.
type LineItem struct {
	Description string
	Category    string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// ID returns the invoice identifier, or "" when it was not found.
func (d *InvoiceData) ID() string {
	if d.InvoiceID == nil {
		return ""
	}
	return *d.InvoiceID
}

// Amount returns a pointer to a copy of d, for building optional fields.
func Amount(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// String returns a pointer to a copy of s, for building optional fields.
func String(s string) *string {
	return &s
}
