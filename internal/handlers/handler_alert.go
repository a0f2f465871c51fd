package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
	"github.com/harmonia-labs/label_ledger_app/internal/middleware"
)

// alertHandler handles HTTP requests for threshold alerts.
type alertHandler struct {
	alertService portssvc.AlertSvcFacade
}

func newAlertHandler(as portssvc.AlertSvcFacade) *alertHandler {
	return &alertHandler{alertService: as}
}

// registerAlertRoutes registers routes for listing and resolving alerts.
func registerAlertRoutes(rg *gin.RouterGroup, alertService portssvc.AlertSvcFacade) {
	h := newAlertHandler(alertService)
	alerts := rg.Group("/alerts")
	{
		alerts.GET("", h.listUnresolved)
		alerts.POST("/:alert_id/resolve", h.resolve)
	}
}

// listUnresolved godoc
// @Summary List unresolved alerts
// @Tags alerts
// @Produce  json
// @Success 200 {array} dto.AlertResponse
// @Security BearerAuth
// @Router /alerts [get]
func (h *alertHandler) listUnresolved(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	alerts, err := h.alertService.ListUnresolved(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list alerts in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list alerts"})
		return
	}
	c.JSON(http.StatusOK, dto.ToAlertResponses(alerts))
}

// resolve godoc
// @Summary Resolve an alert
// @Description Marks the alert resolved, re-arming its (scope, refID, level) for future crossings.
// @Tags alerts
// @Produce  json
// @Param   alert_id path string true "Alert ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Alert not found"
// @Security BearerAuth
// @Router /alerts/{alert_id}/resolve [post]
func (h *alertHandler) resolve(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	alertID := c.Param("alert_id")

	if err := h.alertService.Resolve(c.Request.Context(), alertID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Alert not found"})
			return
		}
		logger.Error("Failed to resolve alert in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve alert"})
		return
	}

	logger.Info("Alert resolved", slog.String("alert_id", alertID))
	c.Status(http.StatusNoContent)
}
