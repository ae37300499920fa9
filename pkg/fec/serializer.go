// Package fec renders journal entries into the FEC compliance file format:
// 18 fixed columns, tab-delimited, UTF-8, bare newline terminators.
package fec

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adurand/ocr2fec/pkg/accounting"
)

// Header lists the 18 mandatory FEC columns, in order.
var Header = []string{
	"JournalCode", "JournalLib", "EcritureNum", "EcritureDate", "CompteNum",
	"CompteLib", "CompAuxNum", "CompAuxLib", "PieceRef", "PieceDate",
	"EcritureLib", "Debit", "Credit", "EcritureLet", "DateLet",
	"ValidDate", "Montantdevise", "Idevise",
}

// Default journal labels for the purchases journal.
const (
	DefaultJournalCode = "AC"
	DefaultJournalLib  = "ACHATS"
)

// Serializer renders entries under a fixed journal code and label.
type Serializer struct {
	JournalCode string
	JournalLib  string
}

// NewSerializer creates a Serializer. Empty labels default to the purchases
// journal pair.
func NewSerializer(journalCode, journalLib string) *Serializer {
	if journalCode == "" {
		journalCode = DefaultJournalCode
	}
	if journalLib == "" {
		journalLib = DefaultJournalLib
	}
	return &Serializer{JournalCode: journalCode, JournalLib: journalLib}
}

// Serialize renders the header row followed by one row per entry. Entry
// numbers are sequential from 00001 in input order. Dates are yyyymmdd and
// amounts use a comma decimal separator with two fraction digits; the side
// an entry does not carry is left empty, as are the auxiliary-account,
// reconciliation and foreign-currency columns.
//
// Entries are expected to come from the journal generator's balance gate;
// an entry violating the debit/credit invariant aborts serialization.
func (s *Serializer) Serialize(entries []accounting.Entry) (string, error) {
	var sb strings.Builder

	sb.WriteString(strings.Join(Header, "\t"))
	sb.WriteByte('\n')

	for i, entry := range entries {
		if err := entry.Validate(); err != nil {
			return "", fmt.Errorf("cannot serialize entry %d: %w", i+1, err)
		}

		date := entry.Date.Format("20060102")

		var debit, credit string
		if entry.Debit != nil {
			debit = formatAmount(*entry.Debit)
		}
		if entry.Credit != nil {
			credit = formatAmount(*entry.Credit)
		}

		row := []string{
			s.JournalCode,
			s.JournalLib,
			fmt.Sprintf("%05d", i+1),
			date,
			fmt.Sprintf("%d", entry.AccountNumber),
			entry.AccountName,
			"", // CompAuxNum
			"", // CompAuxLib
			"", // PieceRef
			date,
			entry.Description,
			debit,
			credit,
			"", // EcritureLet
			"", // DateLet
			date,
			"", // Montantdevise
			"", // Idevise
		}

		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

func formatAmount(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}
