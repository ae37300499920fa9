// Package pipeline wires the extraction, categorization, validation, journal
// and export stages into a single per-invoice transformation.
//
// A Processor holds only immutable configuration, so one instance can process
// any number of invoices concurrently with zero coordination. Processing one
// invoice never affects another.
package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/adurand/ocr2fec/pkg/accounting"
	"github.com/adurand/ocr2fec/pkg/fec"
	"github.com/adurand/ocr2fec/pkg/invoice"
	"github.com/adurand/ocr2fec/pkg/ocr"
	"github.com/adurand/ocr2fec/pkg/vat"
)

// Options configures a Processor. The zero value gives the built-in tables,
// the default totals tolerance, the purchases journal labels and a
// non-blocking totals check.
type Options struct {
	Tables      *accounting.Tables
	Tolerance   float64
	JournalCode string
	JournalLib  string

	// StrictTotals turns the totals consistency check into a gate: an
	// inconsistent invoice fails instead of proceeding to the journal.
	StrictTotals bool
}

// Processor runs the full raw-text → FEC pipeline for one invoice at a time.
type Processor struct {
	tables       *accounting.Tables
	validator    *vat.Validator
	generator    *accounting.Generator
	serializer   *fec.Serializer
	strictTotals bool
}

// Result is the outcome of processing one invoice.
type Result struct {
	// RunID identifies this processing run in logs and downstream records.
	RunID string

	Invoice invoice.InvoiceData

	// TotalsConsistent is the verdict of the totals cross-check. It is
	// informational unless the processor runs with StrictTotals.
	TotalsConsistent bool

	Entries []accounting.Entry

	// FEC is the serialized export payload.
	FEC string
}

// NewProcessor creates a Processor from options.
func NewProcessor(opts Options) *Processor {
	tables := opts.Tables
	if tables == nil {
		tables = accounting.DefaultTables()
	}
	return &Processor{
		tables:       tables,
		validator:    vat.NewValidator(opts.Tolerance),
		generator:    accounting.NewGenerator(tables),
		serializer:   fec.NewSerializer(opts.JournalCode, opts.JournalLib),
		strictTotals: opts.StrictTotals,
	}
}

// Process runs one raw OCR text through the full pipeline. Field-level gaps
// are recovered as unset values; invoice-level failures (missing required
// field, bad date, imbalance) surface as errors and no entries or export
// payload are produced for that invoice.
func (p *Processor) Process(rawText string) (*Result, error) {
	result := &Result{RunID: uuid.NewString()}

	result.Invoice = ocr.ExtractInvoiceData(rawText)
	result.Invoice.LineItems = ocr.ParseLineItems(rawText, p.tables.Categorize)

	result.TotalsConsistent = p.validator.Validate(result.Invoice)
	if p.strictTotals && !result.TotalsConsistent {
		return result, fmt.Errorf("run %s: invoice totals are inconsistent or incomplete", result.RunID)
	}

	entries, err := p.generator.Generate(result.Invoice)
	if err != nil {
		return result, fmt.Errorf("run %s: %w", result.RunID, err)
	}
	result.Entries = entries

	payload, err := p.serializer.Serialize(entries)
	if err != nil {
		return result, fmt.Errorf("run %s: %w", result.RunID, err)
	}
	result.FEC = payload

	return result, nil
}

// Extract runs only the extraction stages, without validation or journal
// generation. Useful for inspection and batch summaries.
func (p *Processor) Extract(rawText string) invoice.InvoiceData {
	data := ocr.ExtractInvoiceData(rawText)
	data.LineItems = ocr.ParseLineItems(rawText, p.tables.Categorize)
	return data
}
