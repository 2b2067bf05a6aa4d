package service

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/riskradar/riskradar-backend/internal/analytics"
	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/metrics"
	"github.com/dafibh/riskradar/riskradar-backend/internal/risk"
)

// RiskService exposes the scoring engine and analytics with input validation
// and instrumentation. Only AnalyzeUser touches storage.
type RiskService struct {
	repo domain.FinancialDataRepository
	now  func() time.Time
}

// NewRiskService creates a new RiskService
func NewRiskService(repo domain.FinancialDataRepository) *RiskService {
	return &RiskService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the time source
func (s *RiskService) SetClock(now func() time.Time) {
	s.now = now
}

// Score computes scores, grade and insights for a profile
func (s *RiskService) Score(profile domain.FinancialProfile) domain.ScoreReport {
	scores := risk.ComputeRiskScores(profile)
	metrics.ObserveOperation("score", nil)
	return domain.ScoreReport{
		Scores:   scores,
		Grade:    risk.OverallGrade(scores),
		Insights: risk.GenerateInsights(profile, scores),
	}
}

// Forecast projects the profile monthsAhead months; 0 selects the default horizon
func (s *RiskService) Forecast(profile domain.FinancialProfile, monthsAhead int) (domain.Forecast, error) {
	if monthsAhead == 0 {
		monthsAhead = analytics.DefaultForecastMonths
	}
	if monthsAhead < 0 || monthsAhead > domain.MaxForecastMonths {
		metrics.ObserveOperation("forecast", domain.ErrInvalidInput)
		return domain.Forecast{}, domain.ErrInvalidInput
	}
	metrics.ObserveOperation("forecast", nil)
	return analytics.ForecastFutureRisk(profile, monthsAhead), nil
}

// Behavior detects spending patterns in a snapshot history
func (s *RiskService) Behavior(history []domain.HistoryEntry) domain.BehavioralReport {
	metrics.ObserveOperation("behavior", nil)
	return analytics.DetectBehavioralRisks(history)
}

// LifeEvent stress tests the profile against a predefined shock
func (s *RiskService) LifeEvent(profile domain.FinancialProfile, event domain.LifeEvent) (domain.LifeEventResult, error) {
	result, err := analytics.SimulateLifeEvent(profile, event)
	metrics.ObserveOperation("life_event", err)
	return result, err
}

// Persona labels the profile; scores are computed when not supplied
func (s *RiskService) Persona(profile domain.FinancialProfile, scores *domain.Scores) domain.Persona {
	metrics.ObserveOperation("persona", nil)
	return analytics.FinancialPersona(s.scoresFor(profile, scores), profile)
}

// Warnings lists early-warning alerts; scores are computed when not supplied
func (s *RiskService) Warnings(profile domain.FinancialProfile, scores *domain.Scores) []domain.EarlyWarning {
	metrics.ObserveOperation("warnings", nil)
	return analytics.GenerateEarlyWarnings(profile, s.scoresFor(profile, scores))
}

// SmartInsights explains weak dimensions; scores are computed when not supplied
func (s *RiskService) SmartInsights(profile domain.FinancialProfile, scores *domain.Scores) []domain.SmartInsight {
	metrics.ObserveOperation("smart_insights", nil)
	return analytics.GenerateSmartInsights(profile, s.scoresFor(profile, scores))
}

// Inflation discounts amount over years at rate; nil arguments take the defaults
func (s *RiskService) Inflation(amount float64, years, rate *float64) (domain.InflationImpact, error) {
	y := float64(analytics.DefaultInflationYears)
	if years != nil {
		y = *years
	}
	r := analytics.DefaultInflationRate
	if rate != nil {
		r = *rate
	}
	if !isFinite(amount) || amount < 0 || !isFinite(y) || y < 0 || y > domain.MaxInflationYears || !isFinite(r) || r <= -1 {
		metrics.ObserveOperation("inflation", domain.ErrInvalidInput)
		return domain.InflationImpact{}, domain.ErrInvalidInput
	}
	metrics.ObserveOperation("inflation", nil)
	return analytics.CalculateInflationImpact(amount, y, r), nil
}

// Milestones returns the milestones the profile newly qualifies for
func (s *RiskService) Milestones(profile domain.FinancialProfile, existing []domain.Milestone) []domain.Milestone {
	metrics.ObserveOperation("milestones", nil)
	return analytics.CheckMilestones(profile, existing, s.now())
}

// Badges returns the badges the scores qualify for
func (s *RiskService) Badges(scores domain.Scores) []domain.Badge {
	metrics.ObserveOperation("badges", nil)
	return analytics.Badges(scores, s.now())
}

// Compare scores two profiles side by side
func (s *RiskService) Compare(current, improved domain.FinancialProfile) domain.ScenarioComparison {
	metrics.ObserveOperation("compare", nil)
	return analytics.CompareScenarios(current, improved)
}

// ActionImpact estimates the effect of a single action
func (s *RiskService) ActionImpact(profile domain.FinancialProfile, action domain.Action) (domain.ActionImpact, error) {
	impact, err := analytics.EstimateActionImpact(profile, action)
	metrics.ObserveOperation("action_impact", err)
	return impact, err
}

// Analyze runs every analysis over an ad-hoc profile and history.
// Badges and milestones are whatever the profile qualifies for right now.
func (s *RiskService) Analyze(profile domain.FinancialProfile, history []domain.HistoryEntry) *domain.RiskAnalysis {
	scores := risk.ComputeRiskScores(profile)
	analysis := s.analyze(profile, scores, history)
	analysis.Badges = analytics.Badges(scores, s.now())
	analysis.Milestones = analytics.CheckMilestones(profile, nil, s.now())
	metrics.ObserveOperation("analyze", nil)
	return analysis
}

// AnalyzeUser runs every analysis over the user's stored profile and history
func (s *RiskService) AnalyzeUser(ctx context.Context, userID uuid.UUID) (*domain.RiskAnalysis, error) {
	data, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		metrics.ObserveOperation("analyze_user", err)
		return nil, err
	}

	analysis := s.analyze(data.Profile, risk.ComputeRiskScores(data.Profile), data.History)
	analysis.UserID = userID
	analysis.Badges = data.Badges
	analysis.Milestones = data.Milestones
	metrics.ObserveOperation("analyze_user", nil)

	log.Debug().
		Str("user_id", userID.String()).
		Str("grade", string(analysis.Grade.Grade)).
		Bool("behavior_detected", analysis.Behavior.Detected).
		Msg("Analyzed stored profile")
	return analysis, nil
}

func (s *RiskService) analyze(profile domain.FinancialProfile, scores domain.Scores, history []domain.HistoryEntry) *domain.RiskAnalysis {
	return &domain.RiskAnalysis{
		Profile:       profile,
		Scores:        scores,
		Grade:         risk.OverallGrade(scores),
		Insights:      risk.GenerateInsights(profile, scores),
		SmartInsights: analytics.GenerateSmartInsights(profile, scores),
		Persona:       analytics.FinancialPersona(scores, profile),
		Warnings:      analytics.GenerateEarlyWarnings(profile, scores),
		Behavior:      analytics.DetectBehavioralRisks(history),
		Forecast:      analytics.ForecastFutureRisk(profile, analytics.DefaultForecastMonths),
	}
}

func (s *RiskService) scoresFor(profile domain.FinancialProfile, scores *domain.Scores) domain.Scores {
	if scores != nil {
		return *scores
	}
	return risk.ComputeRiskScores(profile)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
