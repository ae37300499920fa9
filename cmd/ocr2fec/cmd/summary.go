package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/adurand/ocr2fec/pkg/config"
	"github.com/adurand/ocr2fec/pkg/invoice"
	"github.com/adurand/ocr2fec/pkg/pipeline"
)

// summaryCmd represents the summary command.
var summaryCmd = &cobra.Command{
	Use:   "summary <text-file> [<text-file>...]",
	Short: "Show aggregated totals for a batch of invoice text files",
	Long: `Extract invoice data from a batch of OCR text files and print the
aggregated expense totals (HT, deductible VAT, TTC).

Extraction only; no journal entries or export files are produced.

Example:
  ocr2fec summary scans/*.txt`,
	Args: cobra.MinimumNArgs(1),
	Run:  runSummary,
}

func runSummary(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	processor, _ := buildPipeline(cfg)

	var invoices []invoice.InvoiceData
	unreadable := 0
	for _, path := range args {
		raw, err := os.ReadFile(path)
		if err != nil {
			slog.Error("Failed to read input", "path", path, "error", err)
			unreadable++
			continue
		}
		invoices = append(invoices, processor.Extract(string(raw)))
	}

	summary := pipeline.Summarize(invoices)

	fmt.Println("=== Expense Summary ===")
	fmt.Printf("Invoices processed:   %d\n", len(invoices))
	fmt.Printf("Total expenses HT:    %s\n", summary.TotalExpensesHT.StringFixed(2))
	fmt.Printf("Deductible VAT:       %s\n", summary.TotalVATDeductible.StringFixed(2))
	fmt.Printf("Total expenses TTC:   %s\n", summary.TotalExpensesTTC.StringFixed(2))

	if unreadable > 0 {
		fmt.Printf("\n%d input(s) could not be read\n", unreadable)
		os.Exit(1)
	}
}
