package analytics

import (
	"time"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/risk"
)

type milestoneRule struct {
	milestoneType domain.MilestoneType
	name          string
	description   string
	reached       func(p domain.FinancialProfile, r risk.Ratios) bool
}

var milestoneRules = []milestoneRule{
	{
		milestoneType: domain.MilestoneEmergencyFund6M,
		name:          "Emergency Fund Master",
		description:   "Achieved 6-month emergency buffer",
		reached:       func(_ domain.FinancialProfile, r risk.Ratios) bool { return r.MonthsOfExpense >= 6 },
	},
	{
		milestoneType: domain.MilestoneEmergencyFund9M,
		name:          "Safety Champion",
		description:   "Achieved 9-month emergency buffer",
		reached:       func(_ domain.FinancialProfile, r risk.Ratios) bool { return r.MonthsOfExpense >= 9 },
	},
	{
		milestoneType: domain.MilestoneSavingsRate20,
		name:          "Savings Star",
		description:   "Achieved 20% savings rate",
		reached:       func(_ domain.FinancialProfile, r risk.Ratios) bool { return r.SavingsRate >= 20 },
	},
	{
		milestoneType: domain.MilestoneSavingsRate30,
		name:          "Wealth Builder",
		description:   "Achieved 30% savings rate",
		reached:       func(_ domain.FinancialProfile, r risk.Ratios) bool { return r.SavingsRate >= 30 },
	},
	{
		milestoneType: domain.MilestoneLowDebt,
		name:          "Debt Free Warrior",
		description:   "EMI under 30% of income",
		reached:       func(_ domain.FinancialProfile, r risk.Ratios) bool { return r.EMIToIncome <= 30 },
	},
	{
		milestoneType: domain.MilestoneInsuranceAdequate,
		name:          "Protected",
		description:   "Adequate life insurance coverage",
		reached: func(p domain.FinancialProfile, _ risk.Ratios) bool {
			return p.LifeCover.Float() >= p.MonthlyIncome.Float()*12*10
		},
	},
}

// CheckMilestones returns the milestones the profile satisfies that are not
// already in existing, stamped with now
func CheckMilestones(p domain.FinancialProfile, existing []domain.Milestone, now time.Time) []domain.Milestone {
	p = p.Normalize()
	r := risk.DeriveRatios(p)

	unlocked := []domain.Milestone{}
	for _, rule := range milestoneRules {
		if !rule.reached(p, r) || domain.HasMilestone(existing, rule.milestoneType) {
			continue
		}
		unlocked = append(unlocked, domain.Milestone{
			Type:        rule.milestoneType,
			Name:        rule.name,
			Description: rule.description,
			UnlockedAt:  now,
		})
	}
	return unlocked
}

// Badges returns every badge the current scores qualify for
func Badges(scores domain.Scores, now time.Time) []domain.Badge {
	badges := []domain.Badge{}
	if scores.Average() >= 80 {
		badges = append(badges, domain.Badge{Name: "Financial Master", Description: "Overall score above 80", EarnedAt: now})
	}
	if scores.Get(domain.DimensionEmergencyFund) >= 85 {
		badges = append(badges, domain.Badge{Name: "Safety First", Description: "Excellent emergency fund", EarnedAt: now})
	}
	if scores.Get(domain.DimensionDebtBurden) >= 85 {
		badges = append(badges, domain.Badge{Name: "Debt Slayer", Description: "Low debt burden", EarnedAt: now})
	}
	return badges
}
