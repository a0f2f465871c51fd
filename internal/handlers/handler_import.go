package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
	"github.com/harmonia-labs/label_ledger_app/internal/middleware"
)

// importHandler handles batch ingestion of canonical rows.
type importHandler struct {
	importService portssvc.ImportSvcFacade
}

func newImportHandler(is portssvc.ImportSvcFacade) *importHandler {
	return &importHandler{importService: is}
}

// registerImportRoutes registers the batch import routes.
func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportSvcFacade) {
	h := newImportHandler(importService)
	imports := rg.Group("/imports")
	{
		imports.POST("/expenses", h.importExpenses)
		imports.POST("/income", h.importIncome)
		imports.POST("/time", h.importTime)
	}
}

// importExpenses godoc
// @Summary Import a batch of expense rows
// @Description Validates each row independently; invalid rows are skipped and reported, the rest go through.
// @Tags imports
// @Accept  json
// @Produce  json
// @Param   rows body []dto.ExpenseRow true "Expense rows"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /imports/expenses [post]
func (h *importHandler) importExpenses(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var rows []dto.ExpenseRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		logger.Warn("Failed to bind JSON for ImportExpenses", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.importService.ImportExpenses(c.Request.Context(), rows, creatorUserID)
	if err != nil {
		logger.Error("Expense import failed in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		return
	}

	logger.Info("Expense batch imported", slog.Int("imported", result.Imported), slog.Int("rejected", len(result.Errors)))
	c.JSON(http.StatusOK, result)
}

// importIncome godoc
// @Summary Import a batch of income rows
// @Tags imports
// @Accept  json
// @Produce  json
// @Param   rows body []dto.IncomeRow true "Income rows"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /imports/income [post]
func (h *importHandler) importIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var rows []dto.IncomeRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		logger.Warn("Failed to bind JSON for ImportIncome", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.importService.ImportIncome(c.Request.Context(), rows, creatorUserID)
	if err != nil {
		logger.Error("Income import failed in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		return
	}

	logger.Info("Income batch imported", slog.Int("imported", result.Imported), slog.Int("rejected", len(result.Errors)))
	c.JSON(http.StatusOK, result)
}

// importTime godoc
// @Summary Import a batch of time-tracking rows
// @Description Resolves users by email (falling back to the importing user) and rates at each row's date.
// @Tags imports
// @Accept  json
// @Produce  json
// @Param   rows body []dto.TimeRow true "Time rows"
// @Success 200 {object} dto.ImportResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /imports/time [post]
func (h *importHandler) importTime(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var rows []dto.TimeRow
	if err := c.ShouldBindJSON(&rows); err != nil {
		logger.Warn("Failed to bind JSON for ImportTime", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.importService.ImportTime(c.Request.Context(), rows, creatorUserID)
	if err != nil {
		logger.Error("Time import failed in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Import failed"})
		return
	}

	logger.Info("Time batch imported", slog.Int("imported", result.Imported), slog.Int("rejected", len(result.Errors)))
	c.JSON(http.StatusOK, result)
}
