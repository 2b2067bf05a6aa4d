package analytics

import (
	"fmt"
	"math"
	"strconv"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/risk"
	"github.com/dafibh/riskradar/riskradar-backend/internal/util"
)

const (
	smartInsightThreshold = 50
	highPriorityThreshold = 30
)

// GenerateSmartInsights explains every dimension scoring below 50 with the
// numbers behind it and a concrete rupee fix
func GenerateSmartInsights(p domain.FinancialProfile, scores domain.Scores) []domain.SmartInsight {
	p = p.Normalize()
	r := risk.DeriveRatios(p)

	insights := []domain.SmartInsight{}
	for _, d := range domain.Dimensions {
		score := scores.Get(d)
		if score >= smartInsightThreshold {
			continue
		}
		explanation, fix := explainDimension(d, p, r)
		priority := domain.PriorityMedium
		if score < highPriorityThreshold {
			priority = domain.PriorityHigh
		}
		insights = append(insights, domain.SmartInsight{
			Dimension:   d,
			Score:       score,
			Explanation: explanation,
			Fix:         fix,
			Priority:    priority,
		})
	}
	return insights
}

func explainDimension(d domain.Dimension, p domain.FinancialProfile, r risk.Ratios) (string, string) {
	income := p.MonthlyIncome.Float()
	expense := p.MonthlyExpense.Float()

	switch d {
	case domain.DimensionEmergencyFund:
		shortfall := util.CeilRupees(expense * (6 - r.MonthsOfExpense))
		return fmt.Sprintf("Your emergency fund covers only %.1f months of expenses.", r.MonthsOfExpense),
			fmt.Sprintf("Save %s more to reach 6-month safety. Consider FD or liquid mutual funds.", util.FormatINR(shortfall))
	case domain.DimensionDebtBurden:
		return fmt.Sprintf("Your EMI is %.1f%% of income, above the safe 30-35%% threshold.", r.EMIToIncome),
			"Prepay high-cost debt first (credit cards, personal loans). Avoid new loans until EMI drops below 30%."
	case domain.DimensionSavingsRate:
		increase := util.CeilRupees(math.Max(0, income*0.2-p.MonthlySaving.Float()))
		return fmt.Sprintf("You're saving only %.1f%% of income, below the recommended 20%%.", r.SavingsRate),
			fmt.Sprintf("Increase savings by %s/month. Set up auto-debit SIPs before spending.", util.FormatINR(increase))
	case domain.DimensionInsuranceCover:
		target := util.CeilRupees(income * 12 * 10)
		return fmt.Sprintf("Life cover is %.1f× annual income (target: 10-12×). Health cover: ₹%sL.",
				r.LifeCoverYears, strconv.FormatFloat(r.HealthCoverLakh, 'f', -1, 64)),
			fmt.Sprintf("Increase life cover to %s. Health cover should be ₹10L+ for family. Term plans are affordable.", util.FormatINR(target))
	case domain.DimensionRetirementReadiness:
		gap := math.Max(0, r.TargetCorpus-p.RetirementCorpus.Float())
		monthly := gap
		if months := r.YearsToRetirement * 12; months > 0 {
			monthly = gap / months
		}
		return fmt.Sprintf("You have %.1f%% of target retirement corpus (%s).", r.RetirementRatio*100, util.FormatINR(util.CeilRupees(r.TargetCorpus))),
			fmt.Sprintf("Invest %s/month in NPS/EPF/PPF. Start SIPs in equity mutual funds.", util.FormatINR(util.CeilRupees(monthly)))
	case domain.DimensionInflationProtection:
		ideal := risk.IdealEquity(r.Age)
		return fmt.Sprintf("Your equity allocation is %g%% (ideal: %g%% for age %g).", r.EquityPercent, ideal, r.Age),
			fmt.Sprintf("Rebalance to %g%% equity, %g%% debt/gold. Use equity mutual funds for long-term growth.", ideal, 100-ideal)
	}
	return "", ""
}
