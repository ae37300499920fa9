// Package ocr extracts structured invoice data from raw OCR text.
//
// The input is a French-language UTF-8 string with no structural guarantees:
// fields may be missing, diacritics garbled, table rows corrupted. Extraction
// degrades gracefully — a field that cannot be located or parsed is left
// unset, and a garbled table row is dropped. Neither is an error.
package ocr

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/adurand/ocr2fec/pkg/invoice"
)

// Header field patterns. Each field is searched case-insensitively across the
// whole text and the first match wins.
var (
	invoiceIDPattern = regexp.MustCompile(`(?i)facture\s*(?:n[°ºo]?\s*)?:?\s*([A-Z]{2,}[0-9][A-Z0-9/-]*)`)

	labeledDatePattern = regexp.MustCompile(`(?i)date\s*:?\s*(\d{2}/\d{2}/\d{4})`)
	bareDatePattern    = regexp.MustCompile(`\d{2}/\d{2}/\d{4}`)

	totalHTPattern  = regexp.MustCompile(`(?i)total\s*h\.?\s*t\.?\s*:?\s*(\d[\d .,\x{00a0}]*)`)
	totalTTCPattern = regexp.MustCompile(`(?i)total\s*t\.?\s*t\.?\s*c\.?\s*:?\s*(\d[\d .,\x{00a0}]*)`)

	// VAT is tried with an explicit rate first ("TVA (20%) : 200,00"), then
	// with the amount alone ("TVA : 200,00").
	vatWithRatePattern   = regexp.MustCompile(`(?i)tva\s*\(?\s*(\d{1,2}(?:[.,]\d{1,2})?)\s*%\s*\)?\s*:?\s*(\d[\d .,\x{00a0}]*)`)
	vatAmountOnlyPattern = regexp.MustCompile(`(?i)tva\s*:?\s*(\d[\d .,\x{00a0}]*)`)
)

// ExtractInvoiceData pulls the header-level fields (invoice id, date, totals,
// VAT) out of raw OCR text. Line items are not parsed here; see
// ParseLineItems. Any field not located in the text is left unset.
func ExtractInvoiceData(text string) invoice.InvoiceData {
	var data invoice.InvoiceData

	if m := invoiceIDPattern.FindStringSubmatch(text); m != nil {
		data.InvoiceID = invoice.String(m[1])
	}

	if m := labeledDatePattern.FindStringSubmatch(text); m != nil {
		data.Date = invoice.String(m[1])
	} else if m := bareDatePattern.FindString(text); m != "" {
		data.Date = invoice.String(m)
	}

	data.TotalHT = findAmount(totalHTPattern, text)
	data.TotalTTC = findAmount(totalTTCPattern, text)

	if m := vatWithRatePattern.FindStringSubmatch(text); m != nil {
		if amount, ok := parseAmount(m[2]); ok {
			rate, _ := parseAmount(m[1])
			data.VATRate = invoice.Amount(rate)
			data.VATAmount = invoice.Amount(amount)
			return data
		}
	}
	// Fallback: amount without a rate. If this fails too, the VAT amount is
	// simply absent.
	data.VATAmount = findAmount(vatAmountOnlyPattern, text)

	return data
}

func findAmount(pattern *regexp.Regexp, text string) *decimal.Decimal {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	amount, ok := parseAmount(m[1])
	if !ok {
		return nil
	}
	return invoice.Amount(amount)
}

// parseAmount cleans a captured amount string and parses it. OCR output mixes
// French conventions ("1 234,56", "1.234,56") with plain decimals: internal
// spaces and thousands separators are stripped and the decimal comma is
// normalized to a dot before parsing.
func parseAmount(raw string) (decimal.Decimal, bool) {
	s := strings.NewReplacer(" ", "", " ", "").Replace(raw)
	s = strings.TrimRight(s, ".,")
	if s == "" {
		return decimal.Decimal{}, false
	}

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")
	switch {
	case lastComma >= 0 && lastDot >= 0:
		// Whichever separator comes last is the decimal one; the other is a
		// thousands separator.
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case lastComma >= 0:
		// All commas but the last are thousands separators.
		head := strings.ReplaceAll(s[:lastComma], ",", "")
		s = head + "." + s[lastComma+1:]
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
