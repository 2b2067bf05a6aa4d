package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dafibh/riskradar/riskradar-backend/internal/metrics"
)

// RegisterRoutes sets up all API routes. wsHandler may be nil when realtime
// events are disabled.
func RegisterRoutes(e *echo.Echo, riskHandler *RiskHandler, dataHandler *FinancialDataHandler, wsHandler *WebSocketHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	// API version 1
	api := e.Group("/api/v1")

	// Stateless scoring and analytics
	riskGroup := api.Group("/risk")
	riskGroup.POST("/scores", riskHandler.Scores)
	riskGroup.POST("/analyze", riskHandler.Analyze)
	riskGroup.POST("/forecast", riskHandler.Forecast)
	riskGroup.POST("/behavior", riskHandler.Behavior)
	riskGroup.POST("/life-event", riskHandler.LifeEvent)
	riskGroup.POST("/persona", riskHandler.Persona)
	riskGroup.POST("/warnings", riskHandler.Warnings)
	riskGroup.POST("/inflation", riskHandler.Inflation)
	riskGroup.POST("/milestones", riskHandler.Milestones)
	riskGroup.POST("/badges", riskHandler.Badges)
	riskGroup.POST("/compare", riskHandler.Compare)
	riskGroup.POST("/action-impact", riskHandler.ActionImpact)
	riskGroup.POST("/smart-insights", riskHandler.SmartInsights)

	// Stored profiles, history and achievements
	data := api.Group("/financial-data")
	data.GET("/:userId", dataHandler.GetFinancialData)
	data.POST("/:userId/snapshot", dataHandler.RecordSnapshot)
	data.POST("/:userId/milestone", dataHandler.AddMilestone)
	data.POST("/:userId/badge", dataHandler.AddBadge)
	data.GET("/:userId/analysis", dataHandler.GetAnalysis)

	if wsHandler != nil {
		e.GET("/ws/:userId", wsHandler.HandleWS)
	}
}
