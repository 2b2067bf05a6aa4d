package risk

import (
	"fmt"
	"strings"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
)

const (
	weakScoreThreshold   = 50
	strongScoreThreshold = 75
)

// weakDimensionInsights holds the fixed guidance shown for each weak dimension
var weakDimensionInsights = [...]domain.Insight{
	domain.DimensionEmergencyFund: {
		Type:  domain.InsightWarning,
		Title: "Low emergency buffer",
		Text:  "Aim for at least 6 months of expenses in liquid savings (FD/savings account). Middle-class India is seeing rising household debt; your buffer is your first line of defence.",
	},
	domain.DimensionDebtBurden: {
		Type:  domain.InsightWarning,
		Title: "High EMI burden",
		Text:  "Keep total EMI under 35–40% of income. Consider prepaying high-cost debt (credit cards, personal loans) before adding new loans.",
	},
	domain.DimensionSavingsRate: {
		Type:  domain.InsightWarning,
		Title: "Savings rate below par",
		Text:  "Household savings rate in India has fallen. Try to save at least 20% of income; automate SIPs so savings happen before spending.",
	},
	domain.DimensionInsuranceCover: {
		Type:  domain.InsightWarning,
		Title: "Insurance gap",
		Text:  "Life cover should be 10–12× annual income; health cover at least ₹5–10 lakh for a family. Term plans are affordable and essential.",
	},
	domain.DimensionRetirementReadiness: {
		Type:  domain.InsightWarning,
		Title: "Retirement corpus behind target",
		Text:  "Use NPS, EPF, and PPF for tax-efficient long-term growth. Target 25× annual expenses by retirement and start early to benefit from compounding.",
	},
	domain.DimensionInflationProtection: {
		Type:  domain.InsightInfo,
		Title: "Rebalance for inflation",
		Text:  "A mix of equity (MF/ULIP) and fixed income helps beat inflation over time. Rule of thumb: (100 − age)% in equity, rest in debt/gold.",
	},
}

// GenerateInsights returns one warning per weak dimension in display order,
// followed by a single success entry naming every strong dimension.
func GenerateInsights(_ domain.FinancialProfile, scores domain.Scores) []domain.Insight {
	insights := make([]domain.Insight, 0, len(domain.Dimensions)+1)

	var strong []string
	for _, d := range domain.Dimensions {
		if scores[d] < weakScoreThreshold {
			insights = append(insights, weakDimensionInsights[d])
		}
		if scores[d] >= strongScoreThreshold {
			strong = append(strong, d.String())
		}
	}

	if len(strong) > 0 {
		verb := "are"
		if len(strong) == 1 {
			verb = "is"
		}
		insights = append(insights, domain.Insight{
			Type:  domain.InsightSuccess,
			Title: "Your strengths",
			Text:  fmt.Sprintf("%s %s in good shape. Build on these while you fix the weaker areas.", strings.Join(strong, ", "), verb),
		})
	}

	return insights
}
