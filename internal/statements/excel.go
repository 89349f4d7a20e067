package statements

import (
	"investorhub/investor-portal/docgen/internal/config"
	"investorhub/investor-portal/docgen/internal/export"
)

// renderWorkbook writes the statement as a two-sheet workbook: account
// summary on the first sheet, investment and payout activity on the second.
func renderWorkbook(doc statement, theme config.Theme, outputPath string) error {
	wb, err := export.NewWorkbook(theme, documentTitle)
	if err != nil {
		return err
	}

	summary := wb.AddSheet("Summary")
	summary.SetColWidth("A", "B", 24)
	summary.TitleRow(theme.Brand + " " + documentTitle)
	summary.SkipRow()
	summary.Row("Investor", doc.InvestorName)
	summary.Row("Email", doc.InvestorEmail)
	summary.Row("Statement Period", doc.Month)
	summary.Row("Generated", doc.GeneratedDate)
	summary.SkipRow()
	summary.HeaderRow("Description", "Amount")
	summary.Row("Opening Balance", doc.Opening)
	summary.Row("Investment Returns", doc.Returns)
	summary.Row("Payouts Received", doc.Payouts)
	summary.Row("Closing Balance", doc.Closing)
	summary.Row("ROI", export.Raw{Value: export.FormatPercent(doc.ROI)})

	activity := wb.AddSheet("Activity")
	activity.SetColWidth("A", "D", 20)
	activity.HeaderRow("Description", "Start Date", "Amount", "ROI")
	if len(doc.Investments) == 0 {
		activity.Row(noInvestmentsNotice)
	}
	for _, inv := range doc.Investments {
		activity.Row(inv.Description, inv.StartDate, inv.Amount,
			export.Raw{Value: export.FormatPercent(inv.ROI)})
	}
	activity.SkipRow()
	activity.HeaderRow("Month", "Amount", "Status")
	if len(doc.PayoutHistory) == 0 {
		activity.Row(noPayoutsNotice)
	}
	for _, p := range doc.PayoutHistory {
		activity.Row(p.Month, p.Amount,
			export.Raw{Value: export.Capitalize(p.Status)})
	}

	return wb.SaveAs(outputPath)
}
