package risk

import (
	"encoding/json"
	"testing"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProfile() domain.FinancialProfile {
	return domain.FinancialProfile{
		MonthlyIncome:    75000,
		MonthlyExpense:   45000,
		EmergencyFund:    150000,
		MonthlyEMI:       18000,
		MonthlySaving:    12000,
		LifeCover:        9000000,
		HealthCover:      5,
		RetirementCorpus: 2500000,
		Age:              35,
		EquityPercent:    65,
	}
}

func uniformScores(v float64) domain.Scores {
	var s domain.Scores
	for _, d := range domain.Dimensions {
		s[d] = v
	}
	return s
}

func TestComputeRiskScores_SampleProfile(t *testing.T) {
	scores := ComputeRiskScores(sampleProfile())

	assert.Equal(t, 40.0, scores.Get(domain.DimensionEmergencyFund))
	assert.Equal(t, 100.0, scores.Get(domain.DimensionDebtBurden))
	assert.Equal(t, 70.0, scores.Get(domain.DimensionSavingsRate))
	assert.Equal(t, 75.0, scores.Get(domain.DimensionInsuranceCover))
	assert.InDelta(t, 14.8148, scores.Get(domain.DimensionRetirementReadiness), 0.001)
	assert.Equal(t, 100.0, scores.Get(domain.DimensionInflationProtection))
}

func TestComputeRiskScores_Idempotent(t *testing.T) {
	p := sampleProfile()
	assert.Equal(t, ComputeRiskScores(p), ComputeRiskScores(p))
}

func TestComputeRiskScores_ZeroProfile(t *testing.T) {
	scores := ComputeRiskScores(domain.FinancialProfile{})

	// No expense or income: every ratio collapses to 0
	assert.Equal(t, 5.0, scores.Get(domain.DimensionEmergencyFund))
	assert.Equal(t, 100.0, scores.Get(domain.DimensionDebtBurden))
	assert.Equal(t, 0.0, scores.Get(domain.DimensionSavingsRate))
	assert.Equal(t, 0.0, scores.Get(domain.DimensionInsuranceCover))
	// Default age 30 gives a positive target ratio that a zero corpus misses
	assert.Equal(t, 0.0, scores.Get(domain.DimensionRetirementReadiness))
	// Ideal equity at age 30 is 70, diff 70
	assert.Equal(t, 15.0, scores.Get(domain.DimensionInflationProtection))
}

func TestComputeRiskScores_RangeInvariance(t *testing.T) {
	profiles := []domain.FinancialProfile{
		{},
		sampleProfile(),
		{MonthlyIncome: 1, MonthlyEMI: 1e9, MonthlySaving: -5000, MonthlyExpense: 1, EmergencyFund: -1e6},
		{MonthlyIncome: 1e7, MonthlySaving: 1e8, LifeCover: 1e12, HealthCover: 1e4, RetirementCorpus: 1e12, Age: 90, EquityPercent: 500},
		{MonthlyIncome: -100, MonthlyExpense: -100, Age: -20, EquityPercent: -300, HealthCover: -10, LifeCover: -1e6},
	}

	for _, p := range profiles {
		scores := ComputeRiskScores(p)
		for _, d := range domain.Dimensions {
			v := scores.Get(d)
			assert.GreaterOrEqual(t, v, 0.0, "%s below range for %+v", d, p)
			assert.LessOrEqual(t, v, 100.0, "%s above range for %+v", d, p)
		}
	}
}

func TestScoreEmergencyFund_Monotonic(t *testing.T) {
	prev := -1.0
	for months := 0.0; months <= 15; months += 0.25 {
		p := sampleProfile()
		p.EmergencyFund = domain.Number(months * float64(p.MonthlyExpense))
		score := ComputeRiskScores(p).Get(domain.DimensionEmergencyFund)
		assert.GreaterOrEqual(t, score, prev, "months=%v", months)
		prev = score
	}
}

func TestScoreDebtBurden_Monotonic(t *testing.T) {
	prev := 101.0
	for pct := 0.0; pct <= 200; pct += 2.5 {
		score := ScoreDebtBurden(pct)
		assert.LessOrEqual(t, score, prev, "pct=%v", pct)
		prev = score
	}
}

func TestScoreDebtBurden_Tail(t *testing.T) {
	// The tail never snaps to a hard floor until the formula reaches 0
	assert.Equal(t, 30.0, ScoreDebtBurden(55))
	assert.Equal(t, 8.0, ScoreDebtBurden(60))
	assert.Equal(t, 0.0, ScoreDebtBurden(100))
	assert.Equal(t, 0.0, ScoreDebtBurden(250))
}

func TestScoreFunctions_Breakpoints(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"ef 9", ScoreEmergencyFund(9), 100},
		{"ef 6", ScoreEmergencyFund(6), 85},
		{"ef 4", ScoreEmergencyFund(4), 65},
		{"ef 2", ScoreEmergencyFund(2), 40},
		{"ef 1", ScoreEmergencyFund(1), 20},
		{"ef 0.99", ScoreEmergencyFund(0.99), 5},
		{"debt 25", ScoreDebtBurden(25), 100},
		{"debt 35", ScoreDebtBurden(35), 80},
		{"debt 45", ScoreDebtBurden(45), 55},
		{"savings 30", ScoreSavingsRate(30), 100},
		{"savings 20", ScoreSavingsRate(20), 85},
		{"savings 15", ScoreSavingsRate(15), 70},
		{"savings 10", ScoreSavingsRate(10), 50},
		{"savings 5", ScoreSavingsRate(5), 30},
		{"savings 4", ScoreSavingsRate(4), 20},
		{"insurance 12y/20L", ScoreInsurance(12, 20), 100},
		{"insurance 10y/3L", ScoreInsurance(10, 3), 65},
		{"insurance 2y/1L", ScoreInsurance(2, 1), 14},
		{"insurance half rounds up", ScoreInsurance(1, 0.25), 6},
		{"retirement no runway", ScoreRetirement(0, 0), 100},
		{"retirement 30y at 1.2", ScoreRetirement(1.2, 30), 100},
		{"retirement 30y at 1.0", ScoreRetirement(1.0, 30), 80},
		{"retirement 30y at 0.6", ScoreRetirement(0.6, 30), 55},
		{"retirement 30y at 0.3", ScoreRetirement(0.3, 30), 35},
		{"retirement 30y at 0.25", ScoreRetirement(0.25, 30), 20},
		{"inflation exact", ScoreInflationProtection(70, 30), 100},
		{"inflation diff 20", ScoreInflationProtection(50, 30), 75},
		{"inflation diff 30", ScoreInflationProtection(40, 30), 50},
		{"inflation diff 35", ScoreInflationProtection(35, 30), 20},
		{"inflation floor", ScoreInflationProtection(0, 30), 15},
		{"inflation old age floor 20", ScoreInflationProtection(20, 95), 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestOverallGrade_Boundaries(t *testing.T) {
	tests := []struct {
		avg  float64
		want domain.GradeLetter
	}{
		{100, domain.GradeA},
		{80.0, domain.GradeA},
		{79.99, domain.GradeB},
		{65, domain.GradeB},
		{64.99, domain.GradeC},
		{50.0, domain.GradeC},
		{49.99, domain.GradeD},
		{35, domain.GradeD},
		{34.99, domain.GradeE},
		{0, domain.GradeE},
	}

	for _, tt := range tests {
		grade := OverallGrade(uniformScores(tt.avg))
		assert.Equal(t, tt.want, grade.Grade, "avg=%v", tt.avg)
	}
}

func TestOverallGrade_LabelsAndColors(t *testing.T) {
	grade := OverallGrade(ComputeRiskScores(sampleProfile()))

	assert.Equal(t, domain.GradeB, grade.Grade)
	assert.Equal(t, "Moderate risk", grade.Label)
	assert.Equal(t, "#84cc16", grade.Color)
}

func TestDeriveRatios_DefaultsAge(t *testing.T) {
	r := DeriveRatios(domain.FinancialProfile{MonthlyExpense: 1000})

	assert.Equal(t, 30.0, r.Age)
	assert.Equal(t, 28.0, r.YearsToRetirement)
	assert.Equal(t, 300000.0, r.TargetCorpus)
	assert.Equal(t, 0.0, r.EMIToIncome)
}

func TestComputeRiskScores_LenientJSON(t *testing.T) {
	body := `{"monthlyIncome":"75000","monthlyExpense":45000,"emergencyFund":"abc","monthlyEMI":null,"age":true}`

	var p domain.FinancialProfile
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.Equal(t, domain.Number(75000), p.MonthlyIncome)
	assert.Equal(t, domain.Number(0), p.EmergencyFund)
	assert.Equal(t, domain.Number(0), p.MonthlyEMI)
	assert.Equal(t, 30.0, DeriveRatios(p).Age)
}
