package accounting

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTablesAccounts(t *testing.T) {
	tables := DefaultTables()

	tests := []struct {
		category string
		expected int
	}{
		{"Achats de marchandises", 607},
		{"Documentation et honoraires", 622},
		{"Charges sociales", 645},
		{"Prestations de services", 706},
		{DefaultCategory, 658},
		{"Catégorie inconnue", 658}, // falls back to the default account
	}

	for _, tt := range tests {
		if got := tables.Account(tt.category); got != tt.expected {
			t.Errorf("Account(%q) = %d, expected %d", tt.category, got, tt.expected)
		}
	}
}

func TestLoadTablesOverride(t *testing.T) {
	content := `default_category: Divers
keywords:
  - keyword: hébergement
    category: Hébergement web
accounts:
  - category: Hébergement web
    number: 628
  - category: Divers
    number: 658
`
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tables, err := LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables() error = %v", err)
	}

	// Keywords from the file are normalized at load time.
	if got := tables.Categorize("Facture hebergement serveur"); got != "Hébergement web" {
		t.Errorf("Categorize() = %q, expected %q", got, "Hébergement web")
	}
	if got := tables.Account("Hébergement web"); got != 628 {
		t.Errorf("Account() = %d, expected 628", got)
	}
	if got := tables.DefaultCategoryName(); got != "Divers" {
		t.Errorf("DefaultCategoryName() = %q, expected Divers", got)
	}
	if got := tables.Categorize("rien de connu"); got != "Divers" {
		t.Errorf("Categorize() fallback = %q, expected Divers", got)
	}
}

func TestLoadTablesMissingFile(t *testing.T) {
	if _, err := LoadTables(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadTables() should fail on a missing file")
	}
}

func TestLoadTablesPartialFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tables.yaml")
	if err := os.WriteFile(path, []byte("default_category: Autres\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tables, err := LoadTables(path)
	if err != nil {
		t.Fatalf("LoadTables() error = %v", err)
	}

	// Keyword and account sections fall back to the built-in tables.
	if got := tables.Categorize("Service de conseil"); got != "Documentation et honoraires" {
		t.Errorf("Categorize() = %q, expected built-in keywords", got)
	}
	if got := tables.Account("Locations"); got != 613 {
		t.Errorf("Account() = %d, expected 613", got)
	}
}
