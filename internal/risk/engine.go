// Package risk scores a financial profile on the six fixed risk dimensions.
// Everything here is a pure function of its input and safe for concurrent use.
package risk

import (
	"math"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
)

// Ratios are the derived figures every score is computed from.
// Any ratio whose denominator is zero is 0.
type Ratios struct {
	MonthsOfExpense   float64
	EMIToIncome       float64
	SavingsRate       float64
	LifeCoverYears    float64
	HealthCoverLakh   float64
	TargetCorpus      float64
	RetirementRatio   float64
	YearsToRetirement float64
	EquityPercent     float64
	Age               float64
}

// DeriveRatios normalizes the profile and computes its ratios
func DeriveRatios(p domain.FinancialProfile) Ratios {
	p = p.Normalize()

	income := p.MonthlyIncome.Float()
	expense := p.MonthlyExpense.Float()
	age := p.Age.Float()

	r := Ratios{
		HealthCoverLakh:   p.HealthCover.Float(),
		TargetCorpus:      expense * 12 * 25,
		YearsToRetirement: math.Max(0, domain.RetirementAge-age),
		EquityPercent:     p.EquityPercent.Float(),
		Age:               age,
	}
	if expense > 0 {
		r.MonthsOfExpense = p.EmergencyFund.Float() / expense
	}
	if income > 0 {
		r.EMIToIncome = p.MonthlyEMI.Float() / income * 100
		r.SavingsRate = p.MonthlySaving.Float() / income * 100
		r.LifeCoverYears = p.LifeCover.Float() / (income * 12)
	}
	if r.TargetCorpus > 0 {
		r.RetirementRatio = p.RetirementCorpus.Float() / r.TargetCorpus
	}
	return r
}

// ComputeRiskScores scores every dimension for the profile
func ComputeRiskScores(p domain.FinancialProfile) domain.Scores {
	return ScoreRatios(DeriveRatios(p))
}

// ScoreRatios scores already-derived ratios
func ScoreRatios(r Ratios) domain.Scores {
	var scores domain.Scores
	for _, d := range domain.Dimensions {
		scores[d] = clamp(scorers[d](r))
	}
	return scores
}

// OverallGrade maps the average score onto the grade table
func OverallGrade(scores domain.Scores) domain.Grade {
	avg := scores.Average()
	for _, band := range domain.GradeBands {
		if avg >= band.MinAverage {
			return band.Grade
		}
	}
	return domain.GradeBands[len(domain.GradeBands)-1].Grade
}
