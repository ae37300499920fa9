package accounting

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// MissingFieldError reports which required invoice fields were absent when
// journal generation was attempted.
type MissingFieldError struct {
	Fields []string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("invoice is missing required fields: %s", strings.Join(e.Fields, ", "))
}

// InvalidDateError reports an invoice date that does not parse as dd/mm/yyyy.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid invoice date %q: expected dd/mm/yyyy", e.Value)
}

// UnbalancedError reports a generated entry set whose debit and credit sums
// disagree. An unbalanced ledger must never reach export, so this error is
// always surfaced and never swallowed.
type UnbalancedError struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("debits and credits do not balance: debits=%s credits=%s",
		e.Debits.StringFixed(2), e.Credits.StringFixed(2))
}
