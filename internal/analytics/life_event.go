package analytics

import (
	"fmt"
	"math"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/risk"
)

type lifeEventScenario struct {
	name        string
	description string
	apply       func(p *domain.FinancialProfile)
}

var lifeEventScenarios = map[domain.LifeEvent]lifeEventScenario{
	domain.LifeEventMedicalEmergency: {
		name:        "Medical Emergency",
		description: "₹5 lakh medical emergency expense",
		apply: func(p *domain.FinancialProfile) {
			p.EmergencyFund -= 500000
		},
	},
	domain.LifeEventJobLoss: {
		name:        "Job Loss",
		description: "Loss of primary income source",
		apply: func(p *domain.FinancialProfile) {
			p.MonthlyIncome = 0
			p.MonthlySaving = 0
		},
	},
	domain.LifeEventWeddingExpense: {
		name:        "Wedding Expense",
		description: "₹10 lakh wedding expense",
		apply: func(p *domain.FinancialProfile) {
			p.EmergencyFund -= 1000000
		},
	},
	domain.LifeEventInflationSpike: {
		name:        "Inflation Spike",
		description: "15% inflation spike in expenses",
		apply: func(p *domain.FinancialProfile) {
			p.MonthlyExpense *= 1.15
		},
	},
}

// SimulateLifeEvent applies a predefined shock to the profile and rescores it.
// The emergency fund, income and saving never go negative.
func SimulateLifeEvent(p domain.FinancialProfile, event domain.LifeEvent) (domain.LifeEventResult, error) {
	scenario, ok := lifeEventScenarios[event]
	if !ok {
		return domain.LifeEventResult{}, fmt.Errorf("%w: %q", domain.ErrUnknownLifeEvent, event)
	}

	current := p.Normalize()
	stressed := current
	scenario.apply(&stressed)
	stressed.EmergencyFund = domain.Number(math.Max(0, stressed.EmergencyFund.Float()))
	stressed.MonthlyIncome = domain.Number(math.Max(0, stressed.MonthlyIncome.Float()))
	stressed.MonthlySaving = domain.Number(math.Max(0, stressed.MonthlySaving.Float()))

	currentScores := risk.ComputeRiskScores(current)
	stressedScores := risk.ComputeRiskScores(stressed)

	return domain.LifeEventResult{
		Event:          event,
		Name:           scenario.name,
		Description:    scenario.description,
		CurrentScores:  currentScores,
		StressedScores: stressedScores,
		StressedData:   stressed,
		Impact:         domain.DiffScores(currentScores, stressedScores),
	}, nil
}
