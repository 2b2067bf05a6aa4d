package util

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var inrPrinter = message.NewPrinter(language.MustParse("en-IN"))

// RoundRupees rounds an amount to whole rupees, halves away from zero.
// Non-finite amounts round to zero.
func RoundRupees(amount float64) decimal.Decimal {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(amount).Round(0)
}

// FormatINR formats an amount as whole rupees with Indian digit grouping,
// e.g. ₹12,50,000
func FormatINR(amount float64) string {
	return "₹" + inrPrinter.Sprintf("%d", RoundRupees(amount).IntPart())
}

// CeilRupees rounds an amount up to the next whole rupee
func CeilRupees(amount float64) float64 {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return math.Ceil(amount)
}
