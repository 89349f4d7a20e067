package statements

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"investorhub/investor-portal/docgen/internal/config"
	"investorhub/investor-portal/docgen/internal/export"
)

const (
	documentTitle       = "Monthly Investment Statement"
	noInvestmentsNotice = "No active investments for this period."
	noPayoutsNotice     = "No payouts recorded for this period."
)

// Render writes the monthly statement to outputPath and returns the path.
// The output format follows the path extension: .xlsx writes a workbook,
// .csv writes flat rows, anything else writes the PDF statement.
func Render(in StatementInput, theme config.Theme, outputPath string) (string, error) {
	doc := in.withDefaults(theme, time.Now())

	var err error
	switch strings.ToLower(filepath.Ext(outputPath)) {
	case ".xlsx":
		err = renderWorkbook(doc, theme, outputPath)
	case ".csv":
		err = renderCSV(doc, outputPath)
	default:
		err = renderPDF(doc, theme, outputPath)
	}
	if err != nil {
		return "", err
	}
	return outputPath, nil
}

func renderPDF(doc statement, theme config.Theme, outputPath string) error {
	b := export.NewDocumentBuilder(theme, documentTitle)
	b.Title(theme.Brand)
	b.Subtitle(documentTitle)

	b.Spacer(4)
	b.PairRow("Investor:", doc.InvestorName, "Statement Period:", doc.Month)
	b.PairRow("Email:", doc.InvestorEmail, "Generated:", doc.GeneratedDate)
	b.Spacer(4)

	b.Heading("Account Summary")
	b.DataTable([]export.Column{
		{Label: "Description", Width: 110, Align: "L"},
		{Label: "Amount", Width: 60, Align: "R"},
	}, summaryRows(doc), true)

	b.Heading("Investment Details")
	if len(doc.Investments) > 0 {
		b.DataTable([]export.Column{
			{Label: "Description", Width: 64, Align: "L"},
			{Label: "Start Date", Width: 38, Align: "L"},
			{Label: "Amount", Width: 42, Align: "R"},
			{Label: "ROI", Width: 26, Align: "R"},
		}, investmentCells(doc), false)
	} else {
		b.Paragraph(noInvestmentsNotice)
	}

	b.Heading("Payout History")
	if len(doc.PayoutHistory) > 0 {
		b.DataTable([]export.Column{
			{Label: "Month", Width: 64, Align: "L"},
			{Label: "Amount", Width: 52, Align: "R"},
			{Label: "Status", Width: 54, Align: "C"},
		}, payoutCells(doc), false)
	} else {
		b.Paragraph(noPayoutsNotice)
	}

	b.Spacer(10)
	b.CenteredNote("This statement is for informational purposes only.")
	b.CenteredNote(fmt.Sprintf("Generated by %s on %s", theme.Brand, doc.GeneratedDate))

	return b.SaveAs(outputPath)
}
