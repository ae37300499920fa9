package ocr

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/adurand/ocr2fec/pkg/invoice"
)

// CategorizeFunc assigns an expense category to a line-item description.
type CategorizeFunc func(description string) string

var (
	// The item table starts at a header line naming the description and
	// quantity columns and ends at the "Total HT" line.
	tableHeaderPattern = regexp.MustCompile(`(?i)description[^\n]*(?:quantit[ée]?|qt[ée]?)`)
	tableEndPattern    = regexp.MustCompile(`(?i)total\s*h\.?\s*t\.?`)

	// One table row: description, integer quantity, unit price and line total
	// with exactly two fraction digits. Stray table-separator characters end
	// up in the description capture and are stripped afterwards.
	itemRowPattern = regexp.MustCompile(`^\s*(.+?)(?:\s*\|\s*|\s+)(\d+)(?:\s*\|\s*|\s+)(\d[\d .\x{00a0}]*[.,]\d{2})(?:\s*\|\s*|\s+)(\d[\d .\x{00a0}]*[.,]\d{2})\s*\|?\s*$`)
)

// ParseLineItems locates the line-item table in raw OCR text and parses its
// rows, tagging each with a category. Rows that fail to parse — a reflection
// of OCR garbling — are silently dropped; the remaining rows are kept in
// table order.
func ParseLineItems(text string, categorize CategorizeFunc) []invoice.LineItem {
	header := tableHeaderPattern.FindStringIndex(text)
	if header == nil {
		return nil
	}

	span := text[header[1]:]
	if end := tableEndPattern.FindStringIndex(span); end != nil {
		span = span[:end[0]]
	}

	var items []invoice.LineItem
	for _, line := range strings.Split(span, "\n") {
		m := itemRowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		description := strings.TrimSpace(strings.ReplaceAll(m[1], "|", " "))
		description = strings.Join(strings.Fields(description), " ")
		if description == "" {
			continue
		}

		quantity, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		unitPrice, ok := parseAmount(m[3])
		if !ok {
			continue
		}
		total, ok := parseAmount(m[4])
		if !ok {
			continue
		}

		items = append(items, invoice.LineItem{
			Description: description,
			Category:    categorize(description),
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			Total:       total,
		})
	}

	return items
}
