// internal/report/format.go
package report

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var numberPrinter = message.NewPrinter(language.English)

// formatNumber renders an operation count with digit grouping and at most
// three fraction digits.
func formatNumber(v float64) string {
	return numberPrinter.Sprintf("%v", number.Decimal(v, number.MaxFractionDigits(3)))
}

// formatPercent renders v with a fixed number of decimals and a percent sign.
func formatPercent(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64) + "%"
}

func improved(v float64) bool { return v > 0 }

// statusLabel is the badge text for an improvement value.
func statusLabel(v float64) string {
	if improved(v) {
		return "Improved"
	}
	return "Degraded"
}

func joinAuthors(authors []string) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return authors[0]
	}
	return strings.Join(authors[:len(authors)-1], ", ") + " & " + authors[len(authors)-1]
}
