package accounting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adurand/ocr2fec/pkg/invoice"
)

// invoiceDateLayout is the dd/mm/yyyy format invoices carry.
const invoiceDateLayout = "02/01/2006"

// Generator produces balanced journal entries from validated invoice data.
type Generator struct {
	tables *Tables
}

// NewGenerator creates a Generator backed by the given account tables.
func NewGenerator(tables *Tables) *Generator {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Generator{tables: tables}
}

// Generate turns one invoice into its purchase-journal entries:
//
//  1. one debit per line item, posted to the account mapped from the item's
//     category (unknown categories fall back to the default account),
//  2. a debit to the deductible-VAT account when vat_amount > 0,
//  3. a single credit to the supplier account for total_ttc.
//
// Date, total_ht, total_ttc, vat_amount and the line items must all be
// present; otherwise a MissingFieldError names the absent fields. The entry
// set is checked for balance at two decimal places before being returned —
// an unbalanced set yields an UnbalancedError and no entries.
func (g *Generator) Generate(data invoice.InvoiceData) ([]Entry, error) {
	var missing []string
	if data.Date == nil {
		missing = append(missing, "date")
	}
	if data.TotalHT == nil {
		missing = append(missing, "total_ht")
	}
	if data.TotalTTC == nil {
		missing = append(missing, "total_ttc")
	}
	if data.VATAmount == nil {
		missing = append(missing, "vat_amount")
	}
	if data.LineItems == nil {
		missing = append(missing, "line_items")
	}
	if len(missing) > 0 {
		return nil, &MissingFieldError{Fields: missing}
	}

	entryDate, err := time.Parse(invoiceDateLayout, *data.Date)
	if err != nil {
		return nil, &InvalidDateError{Value: *data.Date}
	}

	entries := make([]Entry, 0, len(data.LineItems)+2)

	for _, item := range data.LineItems {
		entry, err := NewDebit(entryDate, g.tables.Account(item.Category), item.Category, item.Description, item.Total)
		if err != nil {
			return nil, fmt.Errorf("line item %q: %w", item.Description, err)
		}
		entries = append(entries, entry)
	}

	if data.VATAmount.IsPositive() {
		entry, err := NewDebit(entryDate, DeductibleVATAccount, DeductibleVATAccountName,
			fmt.Sprintf("TVA sur facture %s", data.ID()), *data.VATAmount)
		if err != nil {
			return nil, fmt.Errorf("vat entry: %w", err)
		}
		entries = append(entries, entry)
	}

	credit, err := NewCredit(entryDate, SupplierAccount, SupplierAccountName,
		fmt.Sprintf("Facture %s", data.ID()), *data.TotalTTC)
	if err != nil {
		return nil, fmt.Errorf("supplier entry: %w", err)
	}
	entries = append(entries, credit)

	debits, credits := sumEntries(entries)
	if !debits.Round(2).Equal(credits.Round(2)) {
		return nil, &UnbalancedError{Debits: debits, Credits: credits}
	}

	return entries, nil
}

func sumEntries(entries []Entry) (debits, credits decimal.Decimal) {
	for _, e := range entries {
		if e.Debit != nil {
			debits = debits.Add(*e.Debit)
		}
		if e.Credit != nil {
			credits = credits.Add(*e.Credit)
		}
	}
	return debits, credits
}
