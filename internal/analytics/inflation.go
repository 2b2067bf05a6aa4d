package analytics

import (
	"fmt"
	"math"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/util"
)

const (
	DefaultInflationYears = 15
	DefaultInflationRate  = 0.06
)

// CalculateInflationImpact discounts amount by (1+rate)^years to show what it
// will be worth in today's money. rate is a fraction, e.g. 0.06.
// Purchasing power is reported as a percentage and is 100/(1+rate)^years even
// when amount is zero.
func CalculateInflationImpact(amount, years, rate float64) domain.InflationImpact {
	factor := math.Pow(1+rate, years)
	futureValue := amount / factor
	purchasingPower := 100 / factor
	if math.IsNaN(purchasingPower) || math.IsInf(purchasingPower, 0) {
		purchasingPower = 0
	}

	return domain.InflationImpact{
		CurrentAmount:   amount,
		Years:           years,
		InflationRate:   rate * 100,
		FutureValue:     util.RoundRupees(futureValue).InexactFloat64(),
		PurchasingPower: round1(purchasingPower),
		Message: fmt.Sprintf("%s today ≈ %s in %s years (at %.1f%% inflation)",
			util.FormatINR(amount), util.FormatINR(futureValue), formatYears(years), rate*100),
	}
}

func formatYears(years float64) string {
	if years == math.Trunc(years) {
		return fmt.Sprintf("%d", int64(years))
	}
	return fmt.Sprintf("%g", years)
}
