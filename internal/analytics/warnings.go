package analytics

import (
	"fmt"
	"math"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/risk"
	"github.com/dafibh/riskradar/riskradar-backend/internal/util"
)

// GenerateEarlyWarnings checks the profile against fixed alert thresholds.
// Scores are accepted for symmetry with the other generators; every threshold
// is evaluated on the raw ratios.
func GenerateEarlyWarnings(p domain.FinancialProfile, _ domain.Scores) []domain.EarlyWarning {
	p = p.Normalize()
	r := risk.DeriveRatios(p)
	expense := p.MonthlyExpense.Float()
	income := p.MonthlyIncome.Float()

	warnings := []domain.EarlyWarning{}

	switch {
	case r.MonthsOfExpense < 2:
		target := util.CeilRupees(expense * 4)
		warnings = append(warnings, domain.EarlyWarning{
			Level:    domain.WarningCritical,
			Category: "Emergency Fund",
			Message:  "Emergency fund below 2 months - critical risk!",
			Action:   fmt.Sprintf("Save %s more to reach 6-month buffer.", util.FormatINR(target)),
			Target:   target,
		})
	case r.MonthsOfExpense < 4:
		target := util.CeilRupees(expense * 6)
		warnings = append(warnings, domain.EarlyWarning{
			Level:    domain.WarningWarning,
			Category: "Emergency Fund",
			Message:  "Emergency fund below 4 months - build buffer urgently.",
			Action:   fmt.Sprintf("Target: %s for 6-month safety.", util.FormatINR(target)),
			Target:   target,
		})
	}

	debtTarget := util.CeilRupees(income * 0.4)
	switch {
	case r.EMIToIncome > 50:
		warnings = append(warnings, domain.EarlyWarning{
			Level:    domain.WarningCritical,
			Category: "Debt Burden",
			Message:  "EMI exceeds 50% of income - debt trap risk!",
			Action:   "Avoid new loans. Consider debt consolidation or prepayment.",
			Target:   debtTarget,
		})
	case r.EMIToIncome > 40:
		warnings = append(warnings, domain.EarlyWarning{
			Level:    domain.WarningWarning,
			Category: "Debt Burden",
			Message:  "EMI above 40% - high debt burden.",
			Action:   "Limit new borrowing. Focus on prepaying high-cost debt.",
			Target:   debtTarget,
		})
	}

	if r.SavingsRate < 5 {
		warnings = append(warnings, domain.EarlyWarning{
			Level:    domain.WarningCritical,
			Category: "Savings Rate",
			Message:  "Savings rate below 5% - insufficient for future goals.",
			Action:   "Automate SIPs. Aim for at least 20% savings rate.",
			Target:   util.CeilRupees(income * 0.2),
		})
	}

	if r.RetirementRatio < 0.2 && r.YearsToRetirement < 15 {
		gap := util.CeilRupees(math.Max(0, r.TargetCorpus-p.RetirementCorpus.Float()))
		warnings = append(warnings, domain.EarlyWarning{
			Level:    domain.WarningWarning,
			Category: "Retirement",
			Message:  "Retirement corpus significantly behind target.",
			Action:   fmt.Sprintf("Need %s more. Increase SIPs.", util.FormatINR(gap)),
			Target:   gap,
		})
	}

	return warnings
}
