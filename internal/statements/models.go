package statements

import (
	"strings"
	"time"

	"investorhub/investor-portal/docgen/internal/config"
	"investorhub/investor-portal/docgen/internal/export"
	"investorhub/investor-portal/docgen/internal/jsonutil"
)

// StatementInput is the JSON payload shape for a monthly statement. All
// fields are optional; monetary values decode leniently to zero.
type StatementInput struct {
	InvestorName   string           `json:"investorName"`
	InvestorEmail  string           `json:"investorEmail"`
	Month          string           `json:"month"`
	OpeningBalance jsonutil.Float64 `json:"openingBalance"`
	Returns        jsonutil.Float64 `json:"returns"`
	Payouts        jsonutil.Float64 `json:"payouts"`
	ClosingBalance jsonutil.Float64 `json:"closingBalance"`
	ROI            jsonutil.Float64 `json:"roi"`
	Investments    []Investment     `json:"investments"`
	PayoutList     []Payout         `json:"payoutList"`
}

// Investment is one active investment line.
type Investment struct {
	Description string           `json:"description"`
	StartDate   string           `json:"startDate"`
	Amount      jsonutil.Float64 `json:"amount"`
	ROI         jsonutil.Float64 `json:"roi"`
}

// Payout is one payout-history line.
type Payout struct {
	Month  string           `json:"month"`
	Amount jsonutil.Float64 `json:"amount"`
	Status string           `json:"status"`
}

// statement is the fully-defaulted record the exporters work from.
type statement struct {
	InvestorName  string
	InvestorEmail string
	Month         string
	GeneratedDate string
	Opening       float64
	Returns       float64
	Payouts       float64
	Closing       float64
	ROI           float64
	Investments   []investmentRow
	PayoutHistory []payoutRow
}

type investmentRow struct {
	Description string
	StartDate   string
	Amount      float64
	ROI         float64
}

type payoutRow struct {
	Month  string
	Amount float64
	Status string
}

func (in StatementInput) withDefaults(theme config.Theme, now time.Time) statement {
	doc := statement{
		InvestorName:  strings.TrimSpace(in.InvestorName),
		InvestorEmail: strings.TrimSpace(in.InvestorEmail),
		Month:         strings.TrimSpace(in.Month),
		GeneratedDate: now.Format(theme.DateFormat),
		Opening:       float64(in.OpeningBalance),
		Returns:       float64(in.Returns),
		Payouts:       float64(in.Payouts),
		Closing:       float64(in.ClosingBalance),
		ROI:           float64(in.ROI),
	}
	if doc.InvestorName == "" {
		doc.InvestorName = "Investor"
	}
	if doc.Month == "" {
		doc.Month = now.Format(theme.MonthFormat)
	}
	for _, inv := range in.Investments {
		row := investmentRow{
			Description: strings.TrimSpace(inv.Description),
			StartDate:   strings.TrimSpace(inv.StartDate),
			Amount:      float64(inv.Amount),
			ROI:         float64(inv.ROI),
		}
		if row.Description == "" {
			row.Description = "Investment"
		}
		if row.StartDate == "" {
			row.StartDate = "-"
		}
		doc.Investments = append(doc.Investments, row)
	}
	for _, p := range in.PayoutList {
		row := payoutRow{
			Month:  strings.TrimSpace(p.Month),
			Amount: float64(p.Amount),
			Status: strings.TrimSpace(p.Status),
		}
		if row.Month == "" {
			row.Month = "-"
		}
		if row.Status == "" {
			row.Status = "-"
		}
		doc.PayoutHistory = append(doc.PayoutHistory, row)
	}
	return doc
}

// summaryRows renders the account-summary table cells. Payouts are shown
// parenthesized to denote a deduction; the last row is the closing total.
func summaryRows(doc statement) [][]string {
	return [][]string{
		{"Opening Balance", export.FormatCurrency(doc.Opening)},
		{"Investment Returns", export.FormatCurrency(doc.Returns)},
		{"Payouts Received", "(" + export.FormatCurrency(doc.Payouts) + ")"},
		{"Closing Balance", export.FormatCurrency(doc.Closing)},
	}
}

func investmentCells(doc statement) [][]string {
	rows := make([][]string, 0, len(doc.Investments))
	for _, inv := range doc.Investments {
		rows = append(rows, []string{
			inv.Description,
			inv.StartDate,
			export.FormatCurrency(inv.Amount),
			export.FormatPercent(inv.ROI),
		})
	}
	return rows
}

func payoutCells(doc statement) [][]string {
	rows := make([][]string, 0, len(doc.PayoutHistory))
	for _, p := range doc.PayoutHistory {
		rows = append(rows, []string{
			p.Month,
			export.FormatCurrency(p.Amount),
			export.Capitalize(p.Status),
		})
	}
	return rows
}
