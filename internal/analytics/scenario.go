package analytics

import (
	"fmt"
	"math"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/risk"
)

// CompareScenarios scores two profiles and reports the per-dimension and
// overall gain of improved over current
func CompareScenarios(current, improved domain.FinancialProfile) domain.ScenarioComparison {
	current = current.Normalize()
	improved = improved.Normalize()
	currentScores := risk.ComputeRiskScores(current)
	improvedScores := risk.ComputeRiskScores(improved)

	improvements := make([]domain.ScenarioImprovement, 0, len(domain.Dimensions))
	for _, d := range domain.Dimensions {
		before, after := currentScores.Get(d), improvedScores.Get(d)
		var percent float64
		if before > 0 {
			percent = round1((after - before) / before * 100)
		}
		improvements = append(improvements, domain.ScenarioImprovement{
			Dimension:     d,
			Current:       before,
			Improved:      after,
			Gain:          after - before,
			PercentChange: percent,
		})
	}

	currentAvg, improvedAvg := currentScores.Average(), improvedScores.Average()
	return domain.ScenarioComparison{
		Current: domain.ScenarioSide{
			Data:   current,
			Scores: currentScores,
			Grade:  risk.OverallGrade(currentScores),
		},
		Improved: domain.ScenarioSide{
			Data:   improved,
			Scores: improvedScores,
			Grade:  risk.OverallGrade(improvedScores),
		},
		Improvements: improvements,
		OverallGain: domain.OverallGain{
			Current:  currentAvg,
			Improved: improvedAvg,
			Gain:     improvedAvg - currentAvg,
		},
	}
}

// EstimateActionImpact applies a single action to a copy of the profile and
// compares the result with the unchanged profile
func EstimateActionImpact(p domain.FinancialProfile, action domain.Action) (domain.ActionImpact, error) {
	current := p.Normalize()
	improved, err := applyAction(current, action)
	if err != nil {
		return domain.ActionImpact{}, err
	}

	label := action.Description
	if label == "" {
		label = string(action.Type)
	}
	return domain.ActionImpact{
		Action:             label,
		ScenarioComparison: CompareScenarios(current, improved),
	}, nil
}

func applyAction(p domain.FinancialProfile, action domain.Action) (domain.FinancialProfile, error) {
	amount := action.Amount
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}

	switch action.Type {
	case domain.ActionIncreaseSavings:
		months := action.Months
		if months <= 0 || math.IsNaN(months) || math.IsInf(months, 0) {
			months = 1
		}
		p.MonthlySaving += domain.Number(amount)
		p.EmergencyFund += domain.Number(amount * months)
	case domain.ActionReduceEMI:
		p.MonthlyEMI = domain.Number(math.Max(0, p.MonthlyEMI.Float()-amount))
	case domain.ActionIncreaseEmergencyFund:
		p.EmergencyFund += domain.Number(amount)
	case domain.ActionIncreaseInsurance:
		switch action.InsuranceType {
		case domain.InsuranceLife:
			p.LifeCover += domain.Number(amount)
		case domain.InsuranceHealth:
			p.HealthCover += domain.Number(amount / domain.RupeesPerLakh)
		default:
			return p, fmt.Errorf("%w: %q", domain.ErrUnknownInsuranceType, action.InsuranceType)
		}
	case domain.ActionAdjustEquity:
		p.EquityPercent = domain.Number(action.Percent)
	default:
		return p, fmt.Errorf("%w: %q", domain.ErrUnknownAction, action.Type)
	}
	return p.Normalize(), nil
}
