package ocr

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

// identity keeps categorization out of parser tests.
func identity(description string) string { return description }

func TestParseLineItems(t *testing.T) {
	items := ParseLineItems(sampleInvoiceText, func(string) string { return "Documentation et honoraires" })

	if len(items) != 2 {
		t.Fatalf("ParseLineItems() returned %d items, expected 2", len(items))
	}

	first := items[0]
	if first.Description != "Service de conseil" {
		t.Errorf("Description = %q, expected %q", first.Description, "Service de conseil")
	}
	if first.Category != "Documentation et honoraires" {
		t.Errorf("Category = %q, expected %q", first.Category, "Documentation et honoraires")
	}
	if first.Quantity != 10 {
		t.Errorf("Quantity = %d, expected 10", first.Quantity)
	}
	if !first.UnitPrice.Equal(decimal.NewFromInt(75)) {
		t.Errorf("UnitPrice = %s, expected 75", first.UnitPrice)
	}
	if !first.Total.Equal(decimal.NewFromInt(750)) {
		t.Errorf("Total = %s, expected 750", first.Total)
	}

	// Table order is meaningful and preserved.
	if items[1].Description != "Produit A" {
		t.Errorf("second item = %q, expected %q", items[1].Description, "Produit A")
	}
}

func TestParseLineItemsDropsGarbledRows(t *testing.T) {
	text := strings.Join([]string{
		"Description   Quantité   Prix Unitaire   Total",
		"Service de conseil   10   75,00   750,00",
		"Produit garbled      2    abc     xyz",
		"Produit A            2    125,00  250,00",
		"Total HT: 1000,00",
	}, "\n")

	items := ParseLineItems(text, identity)

	if len(items) != 2 {
		t.Fatalf("expected garbled row to be dropped, got %d items", len(items))
	}
	if items[0].Description != "Service de conseil" || items[1].Description != "Produit A" {
		t.Errorf("surviving rows = %q, %q", items[0].Description, items[1].Description)
	}
}

func TestParseLineItemsStripsSeparators(t *testing.T) {
	text := strings.Join([]string{
		"Description | Quantité | Prix Unitaire | Total",
		"| Service de conseil | 10 | 75,00 | 750,00 |",
		"Total HT: 750,00",
	}, "\n")

	items := ParseLineItems(text, identity)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Description != "Service de conseil" {
		t.Errorf("Description = %q, separators should be stripped", items[0].Description)
	}
	if items[0].Quantity != 10 {
		t.Errorf("Quantity = %d, expected 10", items[0].Quantity)
	}
}

func TestParseLineItemsNoTable(t *testing.T) {
	if items := ParseLineItems("Total HT: 1000,00", identity); items != nil {
		t.Errorf("expected no items without a table header, got %d", len(items))
	}
}

func TestParseLineItemsStopsAtTotalHT(t *testing.T) {
	text := strings.Join([]string{
		"Description   Quantité   Prix Unitaire   Total",
		"Produit A     2          125,00          250,00",
		"Total HT: 250,00",
		"Remise fidélité   1   10,00   10,00",
	}, "\n")

	items := ParseLineItems(text, identity)

	if len(items) != 1 {
		t.Fatalf("rows after the Total HT marker must be ignored, got %d items", len(items))
	}
}
