package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("FACTURE_EXPORT_ROOT", "")
	t.Setenv("FACTURE_SIREN", "")
	t.Setenv("FACTURE_JOURNAL_CODE", "")
	t.Setenv("FACTURE_JOURNAL_LIB", "")
	t.Setenv("FACTURE_TOTALS_TOLERANCE", "")
	t.Setenv("FACTURE_TABLES_PATH", "")
	t.Setenv("DEBUG", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Export.Root != "./exports" {
		t.Errorf("Export.Root = %q, want ./exports", cfg.Export.Root)
	}
	if cfg.Journal.Code != "AC" {
		t.Errorf("Journal.Code = %q, want AC", cfg.Journal.Code)
	}
	if cfg.Journal.Lib != "ACHATS" {
		t.Errorf("Journal.Lib = %q, want ACHATS", cfg.Journal.Lib)
	}
	if cfg.TotalsTolerance != 0 {
		t.Errorf("TotalsTolerance = %v, want 0", cfg.TotalsTolerance)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("FACTURE_EXPORT_ROOT", "/var/fec")
	t.Setenv("FACTURE_SIREN", "123456789")
	t.Setenv("FACTURE_JOURNAL_CODE", "HA")
	t.Setenv("FACTURE_JOURNAL_LIB", "HORS ACHATS")
	t.Setenv("FACTURE_TOTALS_TOLERANCE", "0.05")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Export.Root != "/var/fec" {
		t.Errorf("Export.Root = %q", cfg.Export.Root)
	}
	if cfg.Export.SIREN != "123456789" {
		t.Errorf("Export.SIREN = %q", cfg.Export.SIREN)
	}
	if cfg.Journal.Code != "HA" || cfg.Journal.Lib != "HORS ACHATS" {
		t.Errorf("Journal = %+v", cfg.Journal)
	}
	if cfg.TotalsTolerance != 0.05 {
		t.Errorf("TotalsTolerance = %v, want 0.05", cfg.TotalsTolerance)
	}
	if !cfg.Debug {
		t.Error("Debug should be true")
	}
}

func TestLoadInvalidTolerance(t *testing.T) {
	t.Setenv("FACTURE_TOTALS_TOLERANCE", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for non-numeric tolerance")
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Export:  ExportConfig{Root: "./exports"},
		Journal: JournalConfig{Code: "AC", Lib: "ACHATS"},
	}

	if err := cfg.Validate("export.root", "journal.code", "journal.lib"); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	err := cfg.Validate("export.root", "export.siren", "tables.path")
	if err == nil {
		t.Fatal("expected error for missing keys")
	}
	if !strings.Contains(err.Error(), "export.siren") || !strings.Contains(err.Error(), "tables.path") {
		t.Errorf("error should name the missing keys, got %v", err)
	}
}
