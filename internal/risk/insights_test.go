package risk

import (
	"testing"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInsights_SampleProfile(t *testing.T) {
	p := sampleProfile()
	insights := GenerateInsights(p, ComputeRiskScores(p))

	require.Len(t, insights, 3)
	assert.Equal(t, "Low emergency buffer", insights[0].Title)
	assert.Equal(t, domain.InsightWarning, insights[0].Type)
	assert.Equal(t, "Retirement corpus behind target", insights[1].Title)

	success := insights[2]
	assert.Equal(t, domain.InsightSuccess, success.Type)
	assert.Contains(t, success.Text, "Debt Burden, Insurance Cover, Inflation Protection are in good shape")
}

func TestGenerateInsights_InflationIsInfo(t *testing.T) {
	scores := uniformScores(60)
	scores[domain.DimensionInflationProtection] = 15

	insights := GenerateInsights(domain.FinancialProfile{}, scores)

	require.Len(t, insights, 1)
	assert.Equal(t, domain.InsightInfo, insights[0].Type)
	assert.Equal(t, "Rebalance for inflation", insights[0].Title)
}

func TestGenerateInsights_SingleStrength(t *testing.T) {
	scores := uniformScores(60)
	scores[domain.DimensionSavingsRate] = 85

	insights := GenerateInsights(domain.FinancialProfile{}, scores)

	require.Len(t, insights, 1)
	assert.Equal(t, "Savings Rate is in good shape. Build on these while you fix the weaker areas.", insights[0].Text)
}

func TestGenerateInsights_AllWeakOrderedSuccessLast(t *testing.T) {
	scores := uniformScores(10)
	scores[domain.DimensionDebtBurden] = 100

	insights := GenerateInsights(domain.FinancialProfile{}, scores)

	require.Len(t, insights, 6)
	titles := make([]string, 0, len(insights))
	for _, in := range insights {
		titles = append(titles, in.Title)
	}
	assert.Equal(t, []string{
		"Low emergency buffer",
		"Savings rate below par",
		"Insurance gap",
		"Retirement corpus behind target",
		"Rebalance for inflation",
		"Your strengths",
	}, titles)
}

func TestGenerateInsights_MiddleBandIsEmpty(t *testing.T) {
	insights := GenerateInsights(domain.FinancialProfile{}, uniformScores(50))
	assert.Empty(t, insights)

	insights = GenerateInsights(domain.FinancialProfile{}, uniformScores(74.9))
	assert.Empty(t, insights)
}
