// Package format renders money and percentages for reports.
package format

import (
	"strings"

	"github.com/iwvelando/property-analyzer/pkg/constants"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RupeeSymbol prefixes formatted amounts.
const RupeeSymbol = "₹"

var (
	lakh = decimal.NewFromFloat(constants.Lakh)

	// indian groups digits in lakhs and crores (12,34,56,789).
	indian = message.NewPrinter(language.MustParse("en-IN"))
)

// Currency returns a whole-rupee amount with Indian digit grouping
// (e.g., "-₹12,34,568").
func Currency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(0)
	return sign(d) + RupeeSymbol + indian.Sprintf("%d", d.Abs().IntPart())
}

// NumericCurrency returns an amount to two decimals with Indian digit
// grouping and no symbol (e.g., "-12,34,567.89").
func NumericCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	parts := strings.SplitN(d.Abs().StringFixed(2), ".", 2)
	return sign(d) + indian.Sprintf("%d", d.Abs().IntPart()) + "." + parts[1]
}

// Lakhs returns an amount in lakhs to two decimals (e.g., "₹12.35L").
func Lakhs(amount float64) string {
	d := decimal.NewFromFloat(amount).Div(lakh).Round(2)
	return sign(d) + RupeeSymbol + d.Abs().StringFixed(2) + "L"
}

// Percent returns a percentage to one decimal (e.g., "12.5%").
func Percent(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(1) + "%"
}

// Fixed returns value rounded to two decimals without grouping, for
// machine-readable output.
func Fixed(value float64) string {
	return decimal.NewFromFloat(value).StringFixed(2)
}

func sign(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return ""
}
