package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/harmonia-labs/label_ledger_app/internal/apperrors"
	"github.com/harmonia-labs/label_ledger_app/internal/core/domain"
	portsrepo "github.com/harmonia-labs/label_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/harmonia-labs/label_ledger_app/internal/core/ports/services"
	"github.com/harmonia-labs/label_ledger_app/internal/dto"
	"github.com/harmonia-labs/label_ledger_app/internal/middleware"
)

// reconciliationHandler handles HTTP requests against the reconciliation ledger.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs}
}

// registerReconciliationRoutes registers routes for posting and listing
// reconciliation ledger entries.
func registerReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)
	recon := rg.Group("/reconciliation")
	{
		recon.POST("/time", h.recordTimeCharge)
		recon.POST("/expenses", h.recordExpense)
		recon.POST("/writeoffs", h.recordWriteoff)
		recon.GET("/entries", h.listEntries)
	}
}

// recordTimeCharge godoc
// @Summary Reconcile a timesheet charge
// @Description Resolves the hourly rate and appends a TIME entry with amount = round(hours × rate).
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   charge body dto.TimeCharge true "Time charge"
// @Success 201 {object} dto.ReconciliationEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "No rate resolvable for user"
// @Security BearerAuth
// @Router /reconciliation/time [post]
func (h *reconciliationHandler) recordTimeCharge(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var charge dto.TimeCharge
	if err := c.ShouldBindJSON(&charge); err != nil {
		logger.Warn("Failed to bind JSON for RecordTimeCharge", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.reconciliationService.RecordTimeCharge(c.Request.Context(), charge, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrRateNotFound):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "No hourly rate resolvable for user"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record time charge in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record time charge"})
		}
		return
	}

	logger.Info("Time charge reconciled", slog.String("entry_id", entry.EntryID), slog.Int64("amount_minor", entry.AmountMinor))
	c.JSON(http.StatusCreated, dto.ToReconciliationEntryResponse(entry))
}

// recordExpense godoc
// @Summary Reconcile an external expense
// @Description Appends an EXPENSE entry at the net amount; VAT is captured but never reconciled.
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   charge body dto.ExpenseCharge true "Expense charge"
// @Success 201 {object} dto.ReconciliationEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reconciliation/expenses [post]
func (h *reconciliationHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var charge dto.ExpenseCharge
	if err := c.ShouldBindJSON(&charge); err != nil {
		logger.Warn("Failed to bind JSON for RecordExpense", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.reconciliationService.RecordExpense(c.Request.Context(), charge, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record expense in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record expense"})
		return
	}

	logger.Info("Expense reconciled", slog.String("entry_id", entry.EntryID), slog.Int64("amount_minor", entry.AmountMinor))
	c.JSON(http.StatusCreated, dto.ToReconciliationEntryResponse(entry))
}

// recordWriteoff godoc
// @Summary Post a write-off adjustment
// @Description Appends a WRITEOFF entry with a negative amount and a mandatory reason.
// @Tags reconciliation
// @Accept  json
// @Produce  json
// @Param   charge body dto.WriteoffCharge true "Write-off"
// @Success 201 {object} dto.ReconciliationEntryResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /reconciliation/writeoffs [post]
func (h *reconciliationHandler) recordWriteoff(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var charge dto.WriteoffCharge
	if err := c.ShouldBindJSON(&charge); err != nil {
		logger.Warn("Failed to bind JSON for RecordWriteoff", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entry, err := h.reconciliationService.RecordWriteoff(c.Request.Context(), charge, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidWriteoff) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to record write-off in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record write-off"})
		return
	}

	logger.Info("Write-off posted", slog.String("entry_id", entry.EntryID), slog.Int64("amount_minor", entry.AmountMinor))
	c.JSON(http.StatusCreated, dto.ToReconciliationEntryResponse(entry))
}

// listEntries godoc
// @Summary List reconciliation ledger entries
// @Tags reconciliation
// @Produce  json
// @Param   projectID query string false "Filter by project"
// @Param   lineItemID query string false "Filter by budget line item"
// @Param   kind query string false "Filter by kind" Enums(TIME, EXPENSE, WRITEOFF)
// @Success 200 {array} dto.ReconciliationEntryResponse
// @Security BearerAuth
// @Router /reconciliation/entries [get]
func (h *reconciliationHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var filter portsrepo.ReconciliationFilter
	if projectID := c.Query("projectID"); projectID != "" {
		filter.ProjectID = &projectID
	}
	if lineItemID := c.Query("lineItemID"); lineItemID != "" {
		filter.BudgetLineItemID = &lineItemID
	}
	if kindParam := c.Query("kind"); kindParam != "" {
		kind := domain.ReconciliationKind(kindParam)
		switch kind {
		case domain.KindTime, domain.KindExpense, domain.KindWriteoff:
			filter.Kind = &kind
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid kind: " + kindParam})
			return
		}
	}

	entries, err := h.reconciliationService.ListEntries(c.Request.Context(), filter)
	if err != nil {
		logger.Error("Failed to list entries in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}
	c.JSON(http.StatusOK, dto.ToReconciliationEntryResponses(entries))
}
