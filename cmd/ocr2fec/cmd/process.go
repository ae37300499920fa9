package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/adurand/ocr2fec/pkg/accounting"
	"github.com/adurand/ocr2fec/pkg/config"
	"github.com/adurand/ocr2fec/pkg/fec"
	"github.com/adurand/ocr2fec/pkg/pathutil"
	"github.com/adurand/ocr2fec/pkg/pipeline"
)

var (
	journalCode  string
	journalLib   string
	strictTotals bool
	dryRun       bool
)

// processCmd represents the process command.
var processCmd = &cobra.Command{
	Use:   "process <text-file> [<text-file>...]",
	Short: "Convert OCR text files to FEC export files",
	Long: `Process one or more raw OCR text files and write FEC export files.

This command:
1. Extracts invoice header fields and line items from each text file
2. Categorizes line items against the keyword table
3. Cross-checks the extracted totals
4. Generates balanced purchase-journal entries
5. Writes one FEC file per invoice under the export root

Each input is processed independently; a failing invoice is reported and
skipped without affecting the others.

Example:
  ocr2fec process invoice.txt
  ocr2fec process scans/*.txt --strict-totals
  ocr2fec process invoice.txt --dry-run`,
	Args: cobra.MinimumNArgs(1),
	Run:  runProcess,
}

func init() {
	processCmd.Flags().StringVar(&journalCode, "journal-code", "", "journal code for exported rows (default from config, then AC)")
	processCmd.Flags().StringVar(&journalLib, "journal-lib", "", "journal label for exported rows (default from config, then ACHATS)")
	processCmd.Flags().BoolVar(&strictTotals, "strict-totals", false, "fail invoices whose totals are inconsistent")
	processCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print FEC output instead of writing files")
}

func runProcess(cmd *cobra.Command, args []string) {
	slog.Info("Starting processing", "inputs", len(args), "strict_totals", strictTotals, "dry_run", dryRun)

	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if err := cfg.Validate("export.root", "journal.code", "journal.lib"); err != nil {
		exitOnError(err, "invalid configuration")
	}

	processor, repo := buildPipeline(cfg)

	failed := 0
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read input", "path", path, "error", err)
			failed++
			continue
		}

		result, err := processor.Process(string(raw))
		if err != nil {
			slog.Error("Failed to process invoice", "path", path, "error", err)
			failed++
			continue
		}

		slog.Info("Processed invoice",
			"path", path,
			"run_id", result.RunID,
			"invoice_id", result.Invoice.ID(),
			"line_items", len(result.Invoice.LineItems),
			"entries", len(result.Entries),
			"totals_consistent", result.TotalsConsistent,
		)
		if !result.TotalsConsistent {
			slog.Warn("Invoice totals are inconsistent or incomplete", "path", path, "run_id", result.RunID)
		}

		if dryRun {
			fmt.Printf("[DRY RUN] %s\n%s\n", path, result.FEC)
			continue
		}

		outPath, err := repo.WriteExport(result.Entries[0].Date, result.FEC)
		if err != nil {
			slog.Error("Failed to write export", "path", path, "error", err)
			failed++
			continue
		}
		slog.Info("Wrote export", "path", outPath, "entries", len(result.Entries))
	}

	slog.Info("Processing completed", "inputs", len(args), "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// buildPipeline assembles the processor and export repository from config
// and command flags.
func buildPipeline(cfg *config.Config) (*pipeline.Processor, fec.Repository) {
	tables := accounting.DefaultTables()
	if cfg.TablesPath != "" {
		loaded, err := accounting.LoadTables(cfg.TablesPath)
		exitOnError(err, "failed to load accounting tables")
		tables = loaded
	}

	code := journalCode
	lib := journalLib
	if code == "" {
		code = cfg.Journal.Code
	}
	if lib == "" {
		lib = cfg.Journal.Lib
	}

	processor := pipeline.NewProcessor(pipeline.Options{
		Tables:       tables,
		Tolerance:    cfg.TotalsTolerance,
		JournalCode:  code,
		JournalLib:   lib,
		StrictTotals: strictTotals,
	})

	resolver := pathutil.New(pathutil.Config{
		ExportRoot: cfg.Export.Root,
		SIREN:      cfg.Export.SIREN,
		TablesPath: cfg.TablesPath,
	})

	return processor, fec.NewFileSystemRepository(resolver)
}
