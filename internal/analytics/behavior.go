package analytics

import (
	"fmt"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
)

const (
	recentWindow = 3

	savingsDeclineFactor   = 0.85
	highSavingsDropPercent = 20

	expenseIncreaseFactor   = 1.1
	highExpenseRisePercent  = 15
	emiCreepFactor          = 1.05
	minHistoryForBehavioral = 2
)

// DetectBehavioralRisks compares the last three snapshots against everything
// before them and flags declining savings, lifestyle inflation and EMI creep.
// Percent-based patterns need a positive baseline in the older window.
func DetectBehavioralRisks(history []domain.HistoryEntry) domain.BehavioralReport {
	report := domain.BehavioralReport{Insights: []domain.BehavioralInsight{}}
	if len(history) < minHistoryForBehavioral {
		return report
	}

	split := len(history) - recentWindow
	if split <= 0 {
		return report
	}
	recent := history[split:]
	older := history[:split]

	pick := func(entries []domain.HistoryEntry, field func(domain.HistoryEntry) float64) float64 {
		values := make([]float64, len(entries))
		for i, e := range entries {
			values[i] = field(e)
		}
		return average(values)
	}

	recentSavings := pick(recent, func(e domain.HistoryEntry) float64 { return e.SavingsRate })
	olderSavings := pick(older, func(e domain.HistoryEntry) float64 { return e.SavingsRate })
	if olderSavings > 0 && recentSavings < olderSavings*savingsDeclineFactor {
		drop := round1((olderSavings - recentSavings) / olderSavings * 100)
		severity := domain.SeverityMedium
		if drop > highSavingsDropPercent {
			severity = domain.SeverityHigh
		}
		report.Insights = append(report.Insights, domain.BehavioralInsight{
			Type:          domain.InsightWarning,
			Pattern:       "Declining Savings Discipline",
			Message:       fmt.Sprintf("Savings rate dropped %.1f%% over last %d updates.", drop, len(recent)),
			Severity:      severity,
			ChangePercent: drop,
		})
	}

	recentExpense := pick(recent, func(e domain.HistoryEntry) float64 { return e.MonthlyExpense })
	olderExpense := pick(older, func(e domain.HistoryEntry) float64 { return e.MonthlyExpense })
	if olderExpense > 0 && recentExpense > olderExpense*expenseIncreaseFactor {
		increase := round1((recentExpense - olderExpense) / olderExpense * 100)
		severity := domain.SeverityMedium
		if increase > highExpenseRisePercent {
			severity = domain.SeverityHigh
		}
		report.Insights = append(report.Insights, domain.BehavioralInsight{
			Type:          domain.InsightWarning,
			Pattern:       "Lifestyle Inflation",
			Message:       fmt.Sprintf("Monthly expenses increased %.1f%% - lifestyle inflation detected.", increase),
			Severity:      severity,
			ChangePercent: increase,
		})
	}

	recentEMI := pick(recent, func(e domain.HistoryEntry) float64 { return e.MonthlyEMI })
	olderEMI := pick(older, func(e domain.HistoryEntry) float64 { return e.MonthlyEMI })
	// Going from no EMI to any EMI counts as creep
	if recentEMI > olderEMI*emiCreepFactor {
		var change float64
		if olderEMI > 0 {
			change = round1((recentEMI - olderEMI) / olderEMI * 100)
		}
		report.Insights = append(report.Insights, domain.BehavioralInsight{
			Type:          domain.InsightWarning,
			Pattern:       "EMI Creep",
			Message:       "EMI burden increasing - new loans or higher EMIs detected.",
			Severity:      domain.SeverityMedium,
			ChangePercent: change,
		})
	}

	report.Detected = len(report.Insights) > 0
	return report
}
