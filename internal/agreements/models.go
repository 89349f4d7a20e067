package agreements

import (
	"strings"
	"time"

	"investorhub/investor-portal/docgen/internal/config"
	"investorhub/investor-portal/docgen/internal/jsonutil"
)

// AgreementInput is the JSON payload shape for a signed investment agreement.
// All fields are optional; missing values fall back during normalization.
type AgreementInput struct {
	Title            string           `json:"title"`
	InvestorName     string           `json:"investorName"`
	InvestorEmail    string           `json:"investorEmail"`
	InvestmentAmount jsonutil.Float64 `json:"investmentAmount"`
	Content          string           `json:"content"`
	SignatureData    string           `json:"signatureData"`
	SignedDate       string           `json:"signedDate"`
}

// agreement is the fully-defaulted record the renderer works from. Every
// fallback the document defines is substituted here, once, so the layout code
// never consults a raw optional field.
type agreement struct {
	Title         string
	InvestorName  string
	AckName       string
	InvestorEmail string
	Amount        float64
	AgreementDate string
	Paragraphs    []string
	Signature     signature
	SignedDate    string
}

func (in AgreementInput) withDefaults(theme config.Theme, now time.Time) agreement {
	doc := agreement{
		Title:         strings.TrimSpace(in.Title),
		InvestorName:  strings.TrimSpace(in.InvestorName),
		AckName:       strings.TrimSpace(in.InvestorName),
		InvestorEmail: strings.TrimSpace(in.InvestorEmail),
		Amount:        float64(in.InvestmentAmount),
		AgreementDate: now.Format(theme.DateFormat),
		Paragraphs:    splitParagraphs(in.Content),
		Signature:     resolveSignature(in.SignatureData),
		SignedDate:    formatSignedDate(in.SignedDate, theme.TimestampFormat, now),
	}
	if doc.Title == "" {
		doc.Title = "Investment Agreement"
	}
	if doc.InvestorName == "" {
		doc.InvestorName = "N/A"
	}
	if doc.AckName == "" {
		doc.AckName = "the undersigned"
	}
	if doc.InvestorEmail == "" {
		doc.InvestorEmail = "N/A"
	}
	return doc
}

// splitParagraphs breaks newline-delimited terms into trimmed, non-empty
// paragraphs. Blank lines produce nothing.
func splitParagraphs(content string) []string {
	var out []string
	for _, line := range strings.Split(content, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// formatSignedDate parses an ISO-8601 timestamp (with or without zone, or
// date-only) and formats it with the theme layout. Unparseable values pass
// through unmodified; a missing value formats the current time.
func formatSignedDate(raw, layout string, now time.Time) string {
	if strings.TrimSpace(raw) == "" {
		return now.Format(layout)
	}
	for _, parse := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(parse, raw); err == nil {
			return t.Format(layout)
		}
	}
	return raw
}
