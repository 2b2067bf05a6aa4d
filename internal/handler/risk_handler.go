package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/service"
)

// RiskHandler handles stateless scoring and analytics requests
type RiskHandler struct {
	riskService *service.RiskService
}

// NewRiskHandler creates a new RiskHandler
func NewRiskHandler(riskService *service.RiskService) *RiskHandler {
	return &RiskHandler{riskService: riskService}
}

// ProfileRequest carries a single profile
type ProfileRequest struct {
	Profile domain.FinancialProfile `json:"profile"`
}

// ProfileScoresRequest carries a profile and optionally precomputed scores
type ProfileScoresRequest struct {
	Profile domain.FinancialProfile `json:"profile"`
	Scores  *domain.Scores          `json:"scores"`
}

// AnalyzeRequest carries a profile and its snapshot history
type AnalyzeRequest struct {
	Profile domain.FinancialProfile `json:"profile"`
	History []domain.HistoryEntry   `json:"history"`
}

// ForecastRequest carries a profile and a horizon in months; 0 selects the default
type ForecastRequest struct {
	Profile     domain.FinancialProfile `json:"profile"`
	MonthsAhead int                     `json:"monthsAhead" validate:"gte=0,lte=120"`
}

// BehaviorRequest carries the snapshot history to inspect
type BehaviorRequest struct {
	History []domain.HistoryEntry `json:"history" validate:"required"`
}

// LifeEventRequest names the shock to apply
type LifeEventRequest struct {
	Profile domain.FinancialProfile `json:"profile"`
	Event   domain.LifeEvent        `json:"event" validate:"required"`
}

// InflationRequest carries an amount; years and rate fall back to defaults
type InflationRequest struct {
	Amount float64  `json:"amount" validate:"gte=0"`
	Years  *float64 `json:"years" validate:"omitempty,gte=0,lte=100"`
	Rate   *float64 `json:"rate" validate:"omitempty,gt=-1"`
}

// MilestonesRequest carries a profile and the milestones already unlocked
type MilestonesRequest struct {
	Profile  domain.FinancialProfile `json:"profile"`
	Existing []domain.Milestone      `json:"existing"`
}

// BadgesRequest carries scores, or a profile to compute them from
type BadgesRequest struct {
	Profile *domain.FinancialProfile `json:"profile" validate:"required_without=Scores"`
	Scores  *domain.Scores           `json:"scores"`
}

// CompareRequest carries two profiles to compare
type CompareRequest struct {
	Current  domain.FinancialProfile `json:"current"`
	Improved domain.FinancialProfile `json:"improved"`
}

// ActionImpactRequest carries a profile and the action to try on it
type ActionImpactRequest struct {
	Profile domain.FinancialProfile `json:"profile"`
	Action  domain.Action           `json:"action"`
}

// Scores handles POST /api/v1/risk/scores
func (h *RiskHandler) Scores(c echo.Context) error {
	var req ProfileRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.riskService.Score(req.Profile))
}

// Analyze handles POST /api/v1/risk/analyze
func (h *RiskHandler) Analyze(c echo.Context) error {
	var req AnalyzeRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.riskService.Analyze(req.Profile, req.History))
}

// Forecast handles POST /api/v1/risk/forecast
func (h *RiskHandler) Forecast(c echo.Context) error {
	var req ForecastRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	forecast, err := h.riskService.Forecast(req.Profile, req.MonthsAhead)
	if err != nil {
		return riskError(c, err, "forecast")
	}
	return c.JSON(http.StatusOK, forecast)
}

// Behavior handles POST /api/v1/risk/behavior
func (h *RiskHandler) Behavior(c echo.Context) error {
	var req BehaviorRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.riskService.Behavior(req.History))
}

// LifeEvent handles POST /api/v1/risk/life-event
func (h *RiskHandler) LifeEvent(c echo.Context) error {
	var req LifeEventRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	result, err := h.riskService.LifeEvent(req.Profile, req.Event)
	if err != nil {
		return riskError(c, err, "life event")
	}
	return c.JSON(http.StatusOK, result)
}

// Persona handles POST /api/v1/risk/persona
func (h *RiskHandler) Persona(c echo.Context) error {
	var req ProfileScoresRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.riskService.Persona(req.Profile, req.Scores))
}

// Warnings handles POST /api/v1/risk/warnings
func (h *RiskHandler) Warnings(c echo.Context) error {
	var req ProfileScoresRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.riskService.Warnings(req.Profile, req.Scores))
}

// SmartInsights handles POST /api/v1/risk/smart-insights
func (h *RiskHandler) SmartInsights(c echo.Context) error {
	var req ProfileScoresRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.riskService.SmartInsights(req.Profile, req.Scores))
}

// Inflation handles POST /api/v1/risk/inflation
func (h *RiskHandler) Inflation(c echo.Context) error {
	var req InflationRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	impact, err := h.riskService.Inflation(req.Amount, req.Years, req.Rate)
	if err != nil {
		return riskError(c, err, "inflation impact")
	}
	return c.JSON(http.StatusOK, impact)
}

// Milestones handles POST /api/v1/risk/milestones
func (h *RiskHandler) Milestones(c echo.Context) error {
	var req MilestonesRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.riskService.Milestones(req.Profile, req.Existing))
}

// Badges handles POST /api/v1/risk/badges
func (h *RiskHandler) Badges(c echo.Context) error {
	var req BadgesRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	var scores domain.Scores
	if req.Scores != nil {
		scores = *req.Scores
	} else {
		scores = h.riskService.Score(*req.Profile).Scores
	}
	return c.JSON(http.StatusOK, h.riskService.Badges(scores))
}

// Compare handles POST /api/v1/risk/compare
func (h *RiskHandler) Compare(c echo.Context) error {
	var req CompareRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	return c.JSON(http.StatusOK, h.riskService.Compare(req.Current, req.Improved))
}

// ActionImpact handles POST /api/v1/risk/action-impact
func (h *RiskHandler) ActionImpact(c echo.Context) error {
	var req ActionImpactRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}
	impact, err := h.riskService.ActionImpact(req.Profile, req.Action)
	if err != nil {
		return riskError(c, err, "action impact")
	}
	return c.JSON(http.StatusOK, impact)
}

// bindRequest binds and validates the body. When it reports false the
// problem response has already been written and err is the write result.
func bindRequest(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, NewValidationError(c, "Invalid request body", nil)
	}
	if err := c.Validate(req); err != nil {
		return false, NewValidationError(c, "Validation failed", toValidationErrors(err))
	}
	return true, nil
}

func riskError(c echo.Context, err error, operation string) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, "Invalid "+operation+" parameters", nil)
	case errors.Is(err, domain.ErrUnknownLifeEvent),
		errors.Is(err, domain.ErrUnknownAction),
		errors.Is(err, domain.ErrUnknownInsuranceType):
		return NewValidationError(c, err.Error(), nil)
	default:
		log.Error().Err(err).Str("operation", operation).Msg("Failed to compute risk analytics")
		return NewInternalError(c, "Failed to compute "+operation)
	}
}
