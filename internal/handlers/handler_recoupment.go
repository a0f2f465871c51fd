package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
	"github.com/harmonia-labs/label_ledger_app/internal/middleware"
)

// recoupmentHandler handles HTTP requests for recoupment calculation,
// processing and statements.
type recoupmentHandler struct {
	recoupmentService portssvc.RecoupmentSvcFacade
}

func newRecoupmentHandler(rs portssvc.RecoupmentSvcFacade) *recoupmentHandler {
	return &recoupmentHandler{recoupmentService: rs}
}

// registerRecoupmentRoutes registers recoupment routes, project-nested for
// calculation/processing and artist-nested for balances and statements.
func registerRecoupmentRoutes(rg *gin.RouterGroup, recoupmentService portssvc.RecoupmentSvcFacade) {
	h := newRecoupmentHandler(recoupmentService)

	projects := rg.Group("/projects/:project_id/recoupment")
	{
		projects.GET("/calculate", h.calculate)
		projects.POST("/process", h.process)
	}

	artists := rg.Group("/artists/:artist_id/recoupment")
	{
		artists.GET("/balance", h.getBalance)
		artists.GET("/statement", h.getStatement)
	}
}

// calculate godoc
// @Summary Calculate recoupment for a project (dry run)
// @Description Runs the project's recoupment strategy over current ledger state without posting anything.
// @Tags recoupment
// @Produce  json
// @Param   project_id path string true "Project ID"
// @Success 200 {object} dto.RecoupmentCalculationResponse
// @Failure 400 {object} map[string]string "Project has no artist"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id}/recoupment/calculate [get]
func (h *recoupmentHandler) calculate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("project_id")

	calc, err := h.recoupmentService.Calculate(c.Request.Context(), projectID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to calculate recoupment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to calculate recoupment"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToRecoupmentCalculationResponse(calc))
}

// process godoc
// @Summary Process recoupment for a project
// @Description Calculates and posts the resulting entries to the recoupment ledger as one atomic set.
// @Tags recoupment
// @Produce  json
// @Param   project_id path string true "Project ID"
// @Success 201 {object} dto.RecoupmentCalculationResponse
// @Failure 400 {object} map[string]string "Project has no artist"
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id}/recoupment/process [post]
func (h *recoupmentHandler) process(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("project_id")

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	calc, err := h.recoupmentService.Process(c.Request.Context(), projectID, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to process recoupment in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process recoupment"})
		}
		return
	}

	logger.Info("Recoupment processed", slog.String("project_id", projectID))
	c.JSON(http.StatusCreated, dto.ToRecoupmentCalculationResponse(calc))
}

// scopeFromQuery parses the scope query parameter, defaulting to PROJECT.
func scopeFromQuery(c *gin.Context) (domain.RecoupmentScope, bool) {
	scopeParam := c.DefaultQuery("scope", string(domain.ScopeProject))
	scope := domain.RecoupmentScope(scopeParam)
	switch scope {
	case domain.ScopeProject, domain.ScopeMainTab:
		return scope, true
	default:
		return "", false
	}
}

// getBalance godoc
// @Summary Get an artist's recoupment balance
// @Description Derives the balance as the running sum of ledger entries for the scope.
// @Tags recoupment
// @Produce  json
// @Param   artist_id path string true "Artist ID"
// @Param   scope query string false "Balance scope" Enums(PROJECT, MAIN_TAB) default(PROJECT)
// @Param   projectID query string false "Project ID, required for PROJECT scope"
// @Success 200 {object} map[string]int64
// @Failure 400 {object} map[string]string "Invalid scope"
// @Security BearerAuth
// @Router /artists/{artist_id}/recoupment/balance [get]
func (h *recoupmentHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	artistID := c.Param("artist_id")

	scope, ok := scopeFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scope"})
		return
	}
	var projectID *string
	if p := c.Query("projectID"); p != "" {
		projectID = &p
	}

	balance, err := h.recoupmentService.GetBalance(c.Request.Context(), artistID, scope, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get balance in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get balance"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balanceMinor": balance})
}

// getStatement godoc
// @Summary Get an artist's recoupment statement
// @Description Returns the scope's ledger rows with running balances.
// @Tags recoupment
// @Produce  json
// @Param   artist_id path string true "Artist ID"
// @Param   scope query string false "Statement scope" Enums(PROJECT, MAIN_TAB) default(PROJECT)
// @Param   projectID query string false "Project ID, required for PROJECT scope"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid scope"
// @Security BearerAuth
// @Router /artists/{artist_id}/recoupment/statement [get]
func (h *recoupmentHandler) getStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	artistID := c.Param("artist_id")

	scope, ok := scopeFromQuery(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scope"})
		return
	}
	var projectID *string
	if p := c.Query("projectID"); p != "" {
		projectID = &p
	}

	statement, err := h.recoupmentService.GetStatement(c.Request.Context(), artistID, scope, projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to get statement in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get statement"})
		return
	}
	c.JSON(http.StatusOK, statement)
}
