// Package accounting turns structured invoice data into balanced double-entry
// journal records, using the simplified Plan Comptable Général account tables.
package accounting

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Entry is a single journal line. Exactly one of Debit and Credit is set,
// and the set side is never negative. Use NewDebit and NewCredit to build
// entries that honor the invariant.
type Entry struct {
	Date          time.Time
	AccountNumber int
	AccountName   string
	Description   string
	Debit         *decimal.Decimal
	Credit        *decimal.Decimal
}

// NewDebit creates a debit entry.
func NewDebit(date time.Time, account int, accountName, description string, amount decimal.Decimal) (Entry, error) {
	if amount.IsNegative() {
		return Entry{}, errors.New("a debit amount cannot be negative")
	}
	return Entry{
		Date:          date,
		AccountNumber: account,
		AccountName:   accountName,
		Description:   description,
		Debit:         &amount,
	}, nil
}

// NewCredit creates a credit entry.
func NewCredit(date time.Time, account int, accountName, description string, amount decimal.Decimal) (Entry, error) {
	if amount.IsNegative() {
		return Entry{}, errors.New("a credit amount cannot be negative")
	}
	return Entry{
		Date:          date,
		AccountNumber: account,
		AccountName:   accountName,
		Description:   description,
		Credit:        &amount,
	}, nil
}

// IsDebit reports whether the entry carries a debit amount.
func (e Entry) IsDebit() bool {
	return e.Debit != nil
}

// Validate checks the debit/credit invariant on an entry built by hand.
func (e Entry) Validate() error {
	switch {
	case e.Debit == nil && e.Credit == nil:
		return errors.New("entry must have either a debit or a credit")
	case e.Debit != nil && e.Credit != nil:
		return errors.New("entry cannot have both a debit and a credit")
	case e.Debit != nil && e.Debit.IsNegative():
		return errors.New("debit amount cannot be negative")
	case e.Credit != nil && e.Credit.IsNegative():
		return errors.New("credit amount cannot be negative")
	}
	return nil
}
