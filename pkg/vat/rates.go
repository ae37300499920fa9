// Package vat holds the French TVA rates and the cross-field consistency
// check applied to extracted invoice totals.
package vat

import "github.com/shopspring/decimal"

// Standard French VAT rates, in percent.
var (
	RateNormal       = decimal.NewFromFloat(20.0)
	RateIntermediate = decimal.NewFromFloat(10.0)
	RateReduced      = decimal.NewFromFloat(5.5)
	RateSuperReduced = decimal.NewFromFloat(2.1)
)

// Rates indexes the standard rates by name.
var Rates = map[string]decimal.Decimal{
	"normal":        RateNormal,
	"intermediate":  RateIntermediate,
	"reduced":       RateReduced,
	"super_reduced": RateSuperReduced,
}
