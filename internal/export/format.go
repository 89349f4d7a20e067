package export

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Kept standalone so the renderers and exporters share one definition of the
// statement's money and percentage formats.

var usEnglish = message.NewPrinter(language.AmericanEnglish)

// CurrencyNumFmt is the spreadsheet number format matching FormatCurrency.
const CurrencyNumFmt = "$#,##0.00"

// FormatCurrency renders an amount as US dollars with thousands grouping,
// e.g. 1234.5 -> "$1,234.50".
func FormatCurrency(amount float64) string {
	return usEnglish.Sprintf("$%v", number.Decimal(amount,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// FormatPercent renders a rate with one decimal place and a percent sign.
func FormatPercent(rate float64) string {
	return fmt.Sprintf("%.1f%%", rate)
}

// Capitalize upper-cases the first rune and leaves the rest unchanged.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
