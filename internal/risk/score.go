package risk

import (
	"math"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
)

// ScoreEmergencyFund scores liquidity runway in months of expense
func ScoreEmergencyFund(monthsOfExpense float64) float64 {
	return emergencyFundLadder.score(monthsOfExpense)
}

// ScoreDebtBurden scores EMI as a percentage of income
func ScoreDebtBurden(emiToIncomePercent float64) float64 {
	return debtBurdenLadder.score(emiToIncomePercent)
}

// ScoreSavingsRate scores monthly saving as a percentage of income
func ScoreSavingsRate(savingsPercent float64) float64 {
	return savingsRateLadder.score(savingsPercent)
}

// ScoreInsurance averages the life cover (years of income) and health cover (lakhs) scores
func ScoreInsurance(lifeCoverYears, healthCoverLakh float64) float64 {
	life := lifeCoverLadder.score(lifeCoverYears)
	health := healthCoverLadder.score(healthCoverLakh)
	return RoundHalfUp((life + health) / 2)
}

// ScoreRetirement compares the corpus ratio against a target that shrinks as
// retirement gets further away.
func ScoreRetirement(retirementRatio, yearsToRetirement float64) float64 {
	targetRatio := math.Min(1, yearsToRetirement/30)
	return retirementLadder(targetRatio).score(retirementRatio)
}

// ScoreInflationProtection scores the distance from the (100 - age) equity rule
func ScoreInflationProtection(equityPercent, age float64) float64 {
	idealEquity := IdealEquity(age)
	return inflationLadder.score(math.Abs(equityPercent - idealEquity))
}

// IdealEquity is the rule-of-thumb equity allocation for an age, floored at 20%
func IdealEquity(age float64) float64 {
	return math.Max(20, 100-age)
}

// RoundHalfUp rounds to the nearest integer with halves going towards +Inf
func RoundHalfUp(f float64) float64 {
	return math.Floor(f + 0.5)
}

func clamp(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(100, score))
}

// scorers maps each dimension to the function that scores it from derived ratios
var scorers = [...]func(Ratios) float64{
	domain.DimensionEmergencyFund: func(r Ratios) float64 { return ScoreEmergencyFund(r.MonthsOfExpense) },
	domain.DimensionDebtBurden:    func(r Ratios) float64 { return ScoreDebtBurden(r.EMIToIncome) },
	domain.DimensionSavingsRate:   func(r Ratios) float64 { return ScoreSavingsRate(r.SavingsRate) },
	domain.DimensionInsuranceCover: func(r Ratios) float64 {
		return ScoreInsurance(r.LifeCoverYears, r.HealthCoverLakh)
	},
	domain.DimensionRetirementReadiness: func(r Ratios) float64 {
		return ScoreRetirement(r.RetirementRatio, r.YearsToRetirement)
	},
	domain.DimensionInflationProtection: func(r Ratios) float64 {
		return ScoreInflationProtection(r.EquityPercent, r.Age)
	},
}
