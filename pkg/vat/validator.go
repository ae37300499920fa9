package vat

import (
	"github.com/shopspring/decimal"

	"github.com/adurand/ocr2fec/pkg/invoice"
)

// DefaultTolerance is the relative tolerance applied to totals checks. It
// absorbs OCR digit-misreads and rounding noise without masking genuine data
// corruption.
const DefaultTolerance = 0.01

// Validator cross-checks extracted invoice totals for arithmetic consistency.
type Validator struct {
	relTol decimal.Decimal
}

// NewValidator creates a Validator with the given relative tolerance.
// Non-positive values fall back to DefaultTolerance.
func NewValidator(relTol float64) *Validator {
	if relTol <= 0 {
		relTol = DefaultTolerance
	}
	return &Validator{relTol: decimal.NewFromFloat(relTol)}
}

// Validate answers two checks:
//
//  1. total_ht + vat_amount equals total_ttc within the tolerance, and
//  2. when a non-zero vat_rate is present, total_ht × (vat_rate ÷ 100)
//     equals vat_amount within the tolerance.
//
// An invoice missing any of the three required amounts cannot be validated
// and is reported invalid.
func (v *Validator) Validate(data invoice.InvoiceData) bool {
	if data.TotalHT == nil || data.VATAmount == nil || data.TotalTTC == nil {
		return false
	}

	if !v.isClose(data.TotalHT.Add(*data.VATAmount), *data.TotalTTC) {
		return false
	}

	if data.VATRate != nil && data.VATRate.IsPositive() {
		calculated := data.TotalHT.Mul(data.VATRate.Div(decimal.NewFromInt(100)))
		if !v.isClose(calculated, *data.VATAmount) {
			return false
		}
	}

	return true
}

// isClose reports |a-b| <= relTol * max(|a|, |b|).
func (v *Validator) isClose(a, b decimal.Decimal) bool {
	larger := decimal.Max(a.Abs(), b.Abs())
	return a.Sub(b).Abs().LessThanOrEqual(v.relTol.Mul(larger))
}
