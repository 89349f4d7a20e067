package statements

import (
	"encoding/csv"
	"fmt"
	"os"

	"investorhub/investor-portal/docgen/internal/export"
)

// renderCSV writes the statement as flat rows, one section per group.
func renderCSV(doc statement, outputPath string) (err error) {
	f, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", outputPath, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	records := [][]string{
		{"section", "label", "date", "amount", "detail"},
		{"statement", "Investor", "", "", doc.InvestorName},
		{"statement", "Email", "", "", doc.InvestorEmail},
		{"statement", "Statement Period", "", "", doc.Month},
		{"statement", "Generated", "", "", doc.GeneratedDate},
		{"summary", "Opening Balance", "", export.FormatCurrency(doc.Opening), ""},
		{"summary", "Investment Returns", "", export.FormatCurrency(doc.Returns), ""},
		{"summary", "Payouts Received", "", export.FormatCurrency(doc.Payouts), ""},
		{"summary", "Closing Balance", "", export.FormatCurrency(doc.Closing), ""},
		{"summary", "ROI", "", "", export.FormatPercent(doc.ROI)},
	}
	for _, inv := range doc.Investments {
		records = append(records, []string{
			"investment", inv.Description, inv.StartDate,
			export.FormatCurrency(inv.Amount), export.FormatPercent(inv.ROI),
		})
	}
	for _, p := range doc.PayoutHistory {
		records = append(records, []string{
			"payout", p.Month, "",
			export.FormatCurrency(p.Amount), export.Capitalize(p.Status),
		})
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
