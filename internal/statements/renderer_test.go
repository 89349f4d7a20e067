package statements

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"investorhub/investor-portal/docgen/internal/config"
)

var fixedNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func TestWithDefaults(t *testing.T) {
	theme := config.DefaultTheme()

	doc := StatementInput{}.withDefaults(theme, fixedNow)
	assert.Equal(t, "Investor", doc.InvestorName)
	assert.Equal(t, "", doc.InvestorEmail)
	assert.Equal(t, "June 2025", doc.Month)
	assert.Equal(t, "June 01, 2025", doc.GeneratedDate)
	assert.Zero(t, doc.Opening)
	assert.Empty(t, doc.Investments)
	assert.Empty(t, doc.PayoutHistory)
}

func TestWithDefaultsRowFallbacks(t *testing.T) {
	in := StatementInput{
		Investments: []Investment{{Amount: 500}},
		PayoutList:  []Payout{{Amount: 100}},
	}
	doc := in.withDefaults(config.DefaultTheme(), fixedNow)
	require.Len(t, doc.Investments, 1)
	assert.Equal(t, "Investment", doc.Investments[0].Description)
	assert.Equal(t, "-", doc.Investments[0].StartDate)
	require.Len(t, doc.PayoutHistory, 1)
	assert.Equal(t, "-", doc.PayoutHistory[0].Month)
	assert.Equal(t, "-", doc.PayoutHistory[0].Status)
}

func TestSummaryRows(t *testing.T) {
	doc := StatementInput{
		OpeningBalance: 1234.5,
		Returns:        100,
		Payouts:        50,
		ClosingBalance: 1284.5,
	}.withDefaults(config.DefaultTheme(), fixedNow)

	rows := summaryRows(doc)
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"Opening Balance", "$1,234.50"}, rows[0])
	assert.Equal(t, []string{"Investment Returns", "$100.00"}, rows[1])
	// payouts are a deduction, shown parenthesized
	assert.Equal(t, []string{"Payouts Received", "($50.00)"}, rows[2])
	assert.Equal(t, []string{"Closing Balance", "$1,284.50"}, rows[3])
}

func TestInvestmentCells(t *testing.T) {
	doc := StatementInput{
		Investments: []Investment{{Description: "Fund A", Amount: 1000, ROI: 5.5}},
	}.withDefaults(config.DefaultTheme(), fixedNow)

	rows := investmentCells(doc)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"Fund A", "-", "$1,000.00", "5.5%"}, rows[0])
}

func TestPayoutCells(t *testing.T) {
	doc := StatementInput{
		PayoutList: []Payout{{Month: "May 2025", Amount: 250, Status: "paid"}},
	}.withDefaults(config.DefaultTheme(), fixedNow)

	rows := payoutCells(doc)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"May 2025", "$250.00", "Paid"}, rows[0])
}

func TestRenderPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.pdf")
	got, err := Render(StatementInput{
		InvestorName:   "Jamie Rivera",
		InvestorEmail:  "jamie@example.com",
		Month:          "May 2025",
		OpeningBalance: 10000,
		Returns:        250,
		Payouts:        100,
		ClosingBalance: 10150,
		Investments:    []Investment{{Description: "Fund A", StartDate: "2024-01-01", Amount: 1000, ROI: 5.5}},
		PayoutList:     []Payout{{Month: "May 2025", Amount: 100, Status: "paid"}},
	}, config.DefaultTheme(), path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderPDFSparseInput(t *testing.T) {
	// missing fields and empty sequences degrade, never abort
	path := filepath.Join(t.TempDir(), "statement.pdf")
	_, err := Render(StatementInput{}, config.DefaultTheme(), path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.xlsx")
	_, err := Render(StatementInput{
		InvestorName:   "Jamie Rivera",
		Month:          "May 2025",
		OpeningBalance: 1234.5,
		Investments:    []Investment{{Description: "Fund A", Amount: 1000, ROI: 5.5}},
	}, config.DefaultTheme(), path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	investor, err := f.GetCellValue("Summary", "B3", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "Jamie Rivera", investor)

	label, err := f.GetCellValue("Summary", "A9", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "Opening Balance", label)

	opening, err := f.GetCellValue("Summary", "B9", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "1234.5", opening)

	desc, err := f.GetCellValue("Activity", "A2", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "Fund A", desc)
}

func TestRenderCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.csv")
	_, err := Render(StatementInput{
		Investments: []Investment{{Description: "Fund A", Amount: 1000, ROI: 5.5}},
	}, config.DefaultTheme(), path)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	assert.Equal(t, []string{"section", "label", "date", "amount", "detail"}, records[0])
	assert.Contains(t, records, []string{"investment", "Fund A", "-", "$1,000.00", "5.5%"})
}
