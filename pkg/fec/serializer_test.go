package fec

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adurand/ocr2fec/pkg/accounting"
)

func testEntries(t *testing.T) []accounting.Entry {
	t.Helper()
	date := time.Date(2023, 10, 26, 0, 0, 0, 0, time.UTC)

	e1, err := accounting.NewDebit(date, 607, "Achats de marchandises", "Achat de produit A", decimal.NewFromFloat(250))
	if err != nil {
		t.Fatal(err)
	}
	e2, err := accounting.NewDebit(date, accounting.DeductibleVATAccount, accounting.DeductibleVATAccountName, "TVA sur facture INV-123", decimal.NewFromFloat(50))
	if err != nil {
		t.Fatal(err)
	}
	e3, err := accounting.NewCredit(date, accounting.SupplierAccount, accounting.SupplierAccountName, "Facture INV-123", decimal.NewFromFloat(300))
	if err != nil {
		t.Fatal(err)
	}
	return []accounting.Entry{e1, e2, e3}
}

func TestSerializeFormat(t *testing.T) {
	content, err := NewSerializer("", "").Serialize(testEntries(t))
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	if strings.Contains(content, "\r") {
		t.Error("export must use bare newline terminators, found carriage return")
	}

	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")

	// Header + 3 entries.
	if len(lines) != 4 {
		t.Fatalf("export has %d lines, expected 4", len(lines))
	}

	header := strings.Split(lines[0], "\t")
	if len(header) != 18 {
		t.Fatalf("header has %d columns, expected 18", len(header))
	}
	for i, name := range Header {
		if header[i] != name {
			t.Errorf("header[%d] = %q, expected %q", i, header[i], name)
		}
	}

	for i, line := range lines[1:] {
		if fields := strings.Split(line, "\t"); len(fields) != 18 {
			t.Errorf("row %d has %d columns, expected 18", i+1, len(fields))
		}
	}

	row := strings.Split(lines[1], "\t")
	if row[0] != "AC" || row[1] != "ACHATS" {
		t.Errorf("journal labels = %q/%q, expected AC/ACHATS", row[0], row[1])
	}
	if row[2] != "00001" {
		t.Errorf("EcritureNum = %q, expected 00001", row[2])
	}
	if row[3] != "20231026" {
		t.Errorf("EcritureDate = %q, expected 20231026", row[3])
	}
	if row[4] != "607" {
		t.Errorf("CompteNum = %q, expected 607", row[4])
	}
	if row[9] != "20231026" || row[15] != "20231026" {
		t.Errorf("PieceDate/ValidDate = %q/%q, expected 20231026", row[9], row[15])
	}
	if row[11] != "250,00" {
		t.Errorf("Debit = %q, expected 250,00", row[11])
	}
	if row[12] != "" {
		t.Errorf("Credit = %q, expected empty on a debit row", row[12])
	}

	creditRow := strings.Split(lines[3], "\t")
	if creditRow[2] != "00003" {
		t.Errorf("EcritureNum = %q, expected 00003", creditRow[2])
	}
	if creditRow[11] != "" {
		t.Errorf("Debit = %q, expected empty on a credit row", creditRow[11])
	}
	if creditRow[12] != "300,00" {
		t.Errorf("Credit = %q, expected 300,00", creditRow[12])
	}
}

func TestSerializeCustomJournalLabels(t *testing.T) {
	content, err := NewSerializer("HA", "JOURNAL HA").Serialize(testEntries(t))
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	row := strings.Split(strings.Split(content, "\n")[1], "\t")
	if row[0] != "HA" || row[1] != "JOURNAL HA" {
		t.Errorf("journal labels = %q/%q, expected HA/JOURNAL HA", row[0], row[1])
	}
}

func TestSerializeEmptyEntries(t *testing.T) {
	content, err := NewSerializer("", "").Serialize(nil)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if content != strings.Join(Header, "\t")+"\n" {
		t.Errorf("empty entry list should serialize to the header only, got %q", content)
	}
}

func TestSerializeRejectsInvalidEntry(t *testing.T) {
	entries := testEntries(t)
	entries[1].Debit = nil // neither side set

	if _, err := NewSerializer("", "").Serialize(entries); err == nil {
		t.Error("Serialize() should reject an entry violating the debit/credit invariant")
	}
}
