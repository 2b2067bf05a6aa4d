// Package analytics derives forecasts, stress tests, comparisons and
// gamification from the risk engine by rescoring perturbed profiles.
// Every operation is pure and never mutates its input.
package analytics

import (
	"fmt"
	"math"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/risk"
)

const (
	// DefaultForecastMonths is used when a caller does not pick a horizon
	DefaultForecastMonths = 6

	annualExpenseInflation = 0.05
	annualIncomeGrowth     = 0.03
	criticalBufferMonths   = 2
)

// ForecastFutureRisk projects the profile monthsAhead into the future and rescores it.
// Expense inflates at 5%/year and income grows at 3%/year, both linearly;
// the emergency fund accumulates the monthly saving.
func ForecastFutureRisk(p domain.FinancialProfile, monthsAhead int) domain.Forecast {
	current := p.Normalize()
	m := float64(monthsAhead)

	projectedExpense := current.MonthlyExpense.Float() * (1 + annualExpenseInflation/12*m)
	projectedIncome := current.MonthlyIncome.Float() * (1 + annualIncomeGrowth/12*m)
	projectedFund := current.EmergencyFund.Float() + current.MonthlySaving.Float()*m

	projected := current
	projected.MonthlyExpense = domain.Number(projectedExpense)
	projected.MonthlyIncome = domain.Number(projectedIncome)
	projected.EmergencyFund = domain.Number(projectedFund)
	projected.Age = current.Age + domain.Number(m/12)

	var projectedMonths float64
	if projectedExpense > 0 {
		projectedMonths = projectedFund / projectedExpense
	}

	warnings := []domain.ForecastWarning{}
	if projectedMonths < criticalBufferMonths {
		warning := domain.ForecastWarning{
			Type:            domain.WarningCritical,
			Message:         fmt.Sprintf("Emergency buffer drops to %.1f months in %d months.", projectedMonths, monthsAhead),
			ProjectedMonths: projectedMonths,
		}
		if saving := current.MonthlySaving.Float(); saving > 0 {
			until := int(math.Ceil((criticalBufferMonths*projectedExpense - projectedFund) / saving))
			if until < 0 {
				until = 0
			}
			warning.MonthsUntilCritical = &until
			warning.Timeline = fmt.Sprintf("%d months until critical threshold", until)
		}
		warnings = append(warnings, warning)
	}

	currentScores := risk.ComputeRiskScores(current)
	projectedScores := risk.ComputeRiskScores(projected)

	return domain.Forecast{
		MonthsAhead:      monthsAhead,
		CurrentScores:    currentScores,
		ProjectedScores:  projectedScores,
		ProjectedProfile: projected,
		Warnings:         warnings,
		Changes:          domain.DiffScores(currentScores, projectedScores),
	}
}

func round1(f float64) float64 {
	return risk.RoundHalfUp(f*10) / 10
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
