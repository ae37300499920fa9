package pipeline

import (
	"github.com/shopspring/decimal"

	"github.com/adurand/ocr2fec/pkg/invoice"
)

// FinancialSummary aggregates a batch of purchase invoices. All figures are
// rounded to two decimal places.
type FinancialSummary struct {
	TotalExpensesHT    decimal.Decimal
	TotalVATDeductible decimal.Decimal
	TotalExpensesTTC   decimal.Decimal
}

// Summarize totals the extracted amounts over a batch of invoices. Unset
// fields contribute nothing; an invoice with no extracted amounts at all
// still counts in the batch but moves no total.
func Summarize(invoices []invoice.InvoiceData) FinancialSummary {
	var summary FinancialSummary

	for _, inv := range invoices {
		if inv.TotalHT != nil {
			summary.TotalExpensesHT = summary.TotalExpensesHT.Add(*inv.TotalHT)
		}
		if inv.VATAmount != nil {
			summary.TotalVATDeductible = summary.TotalVATDeductible.Add(*inv.VATAmount)
		}
		if inv.TotalTTC != nil {
			summary.TotalExpensesTTC = summary.TotalExpensesTTC.Add(*inv.TotalTTC)
		}
	}

	summary.TotalExpensesHT = summary.TotalExpensesHT.Round(2)
	summary.TotalVATDeductible = summary.TotalVATDeductible.Round(2)
	summary.TotalExpensesTTC = summary.TotalExpensesTTC.Round(2)
	return summary
}
