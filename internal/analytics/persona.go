package analytics

import (
	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/risk"
)

type personaRule struct {
	name        string
	description string
	matches     func(avg float64, r risk.Ratios) bool
}

// First match wins; Risk Exposed is the fallback.
var personaRules = []personaRule{
	{
		name:        "Safe Builder",
		description: "Strong financial foundation. You're building wealth systematically.",
		matches: func(avg float64, r risk.Ratios) bool {
			return avg >= 75 && r.EMIToIncome <= 30 && r.SavingsRate >= 20 && r.MonthsOfExpense >= 6
		},
	},
	{
		name:        "EMI Struggler",
		description: "High debt burden. Focus on reducing EMIs and avoiding new loans.",
		matches: func(_ float64, r risk.Ratios) bool {
			return r.EMIToIncome > 40
		},
	},
	{
		name:        "Growth Planner",
		description: "Good financial habits. Focus on optimizing investments and insurance.",
		matches: func(avg float64, r risk.Ratios) bool {
			return avg >= 65 && r.SavingsRate >= 15
		},
	},
}

var riskExposed = personaRule{
	name:        "Risk Exposed",
	description: "Multiple financial risks detected. Immediate action needed.",
}

// FinancialPersona labels the profile with an archetype and grades three habits
func FinancialPersona(scores domain.Scores, p domain.FinancialProfile) domain.Persona {
	avg := scores.Average()
	r := risk.DeriveRatios(p)

	chosen := riskExposed
	for _, rule := range personaRules {
		if rule.matches(avg, r) {
			chosen = rule
			break
		}
	}

	return domain.Persona{
		Name:           chosen.name,
		Description:    chosen.description,
		StabilityScore: int(risk.RoundHalfUp(avg)),
		Traits: domain.PersonaTraits{
			EmergencyFund:     emergencyFundTrait(r.MonthsOfExpense),
			DebtManagement:    debtTrait(r.EMIToIncome),
			SavingsDiscipline: savingsTrait(r.SavingsRate),
		},
	}
}

func emergencyFundTrait(months float64) string {
	switch {
	case months >= 6:
		return "Strong"
	case months >= 3:
		return "Moderate"
	default:
		return "Weak"
	}
}

func debtTrait(emiToIncome float64) string {
	switch {
	case emiToIncome <= 30:
		return "Good"
	case emiToIncome <= 40:
		return "Moderate"
	default:
		return "Poor"
	}
}

func savingsTrait(savingsRate float64) string {
	switch {
	case savingsRate >= 20:
		return "Excellent"
	case savingsRate >= 10:
		return "Good"
	default:
		return "Needs Improvement"
	}
}
