package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/dafibh/riskradar/riskradar-backend/internal/domain"
	"github.com/dafibh/riskradar/riskradar-backend/internal/service"
)

// FinancialDataHandler handles stored profile, history and achievement requests
type FinancialDataHandler struct {
	dataService *service.FinancialDataService
	riskService *service.RiskService
}

// NewFinancialDataHandler creates a new FinancialDataHandler
func NewFinancialDataHandler(dataService *service.FinancialDataService, riskService *service.RiskService) *FinancialDataHandler {
	return &FinancialDataHandler{
		dataService: dataService,
		riskService: riskService,
	}
}

// MilestoneRequest represents the add milestone request body
type MilestoneRequest struct {
	Type        domain.MilestoneType `json:"type" validate:"required"`
	Name        string               `json:"name" validate:"max=255"`
	Description string               `json:"description" validate:"max=255"`
}

// BadgeRequest represents the add badge request body
type BadgeRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=255"`
}

// GetFinancialData handles GET /api/v1/financial-data/:userId.
// An empty record is created on first access.
func (h *FinancialDataHandler) GetFinancialData(c echo.Context) error {
	userID, ok := parseUserID(c)
	if !ok {
		return NewValidationError(c, "Invalid user ID", []ValidationError{{Field: "userId", Message: "must be a UUID"}})
	}

	data, err := h.dataService.GetOrCreate(c.Request().Context(), userID)
	if err != nil {
		return h.dataError(c, err, userID, "Failed to get financial data")
	}
	return c.JSON(http.StatusOK, data)
}

// RecordSnapshot handles POST /api/v1/financial-data/:userId/snapshot.
// The body is the profile itself.
func (h *FinancialDataHandler) RecordSnapshot(c echo.Context) error {
	userID, ok := parseUserID(c)
	if !ok {
		return NewValidationError(c, "Invalid user ID", []ValidationError{{Field: "userId", Message: "must be a UUID"}})
	}

	var profile domain.FinancialProfile
	if err := c.Bind(&profile); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	result, err := h.dataService.RecordSnapshot(c.Request().Context(), userID, profile)
	if err != nil {
		return h.dataError(c, err, userID, "Failed to record snapshot")
	}
	return c.JSON(http.StatusOK, result)
}

// AddMilestone handles POST /api/v1/financial-data/:userId/milestone
func (h *FinancialDataHandler) AddMilestone(c echo.Context) error {
	userID, ok := parseUserID(c)
	if !ok {
		return NewValidationError(c, "Invalid user ID", []ValidationError{{Field: "userId", Message: "must be a UUID"}})
	}

	var req MilestoneRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	data, err := h.dataService.AddMilestone(c.Request().Context(), userID, domain.Milestone{
		Type:        req.Type,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return h.dataError(c, err, userID, "Failed to add milestone")
	}
	return c.JSON(http.StatusOK, data)
}

// AddBadge handles POST /api/v1/financial-data/:userId/badge
func (h *FinancialDataHandler) AddBadge(c echo.Context) error {
	userID, ok := parseUserID(c)
	if !ok {
		return NewValidationError(c, "Invalid user ID", []ValidationError{{Field: "userId", Message: "must be a UUID"}})
	}

	var req BadgeRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	data, err := h.dataService.AddBadge(c.Request().Context(), userID, domain.Badge{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return h.dataError(c, err, userID, "Failed to add badge")
	}
	return c.JSON(http.StatusOK, data)
}

// GetAnalysis handles GET /api/v1/financial-data/:userId/analysis
func (h *FinancialDataHandler) GetAnalysis(c echo.Context) error {
	userID, ok := parseUserID(c)
	if !ok {
		return NewValidationError(c, "Invalid user ID", []ValidationError{{Field: "userId", Message: "must be a UUID"}})
	}

	analysis, err := h.riskService.AnalyzeUser(c.Request().Context(), userID)
	if err != nil {
		return h.dataError(c, err, userID, "Failed to analyze financial data")
	}
	return c.JSON(http.StatusOK, analysis)
}

func (h *FinancialDataHandler) dataError(c echo.Context, err error, userID uuid.UUID, msg string) error {
	switch {
	case errors.Is(err, domain.ErrFinancialDataNotFound):
		return NewNotFoundError(c, "Financial data not found")
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, "Invalid input", nil)
	default:
		log.Error().Err(err).Str("user_id", userID.String()).Msg(msg)
		return NewInternalError(c, msg)
	}
}

func parseUserID(c echo.Context) (uuid.UUID, bool) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil || userID == uuid.Nil {
		return uuid.Nil, false
	}
	return userID, true
}
