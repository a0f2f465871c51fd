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

// projectHandler handles HTTP requests related to projects and artists.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
	incomeService  portssvc.IncomeSvcFacade
}

func newProjectHandler(ps portssvc.ProjectSvcFacade, is portssvc.IncomeSvcFacade) *projectHandler {
	return &projectHandler{projectService: ps, incomeService: is}
}

// registerProjectRoutes registers routes for projects, artists and the
// project-nested income reads.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade, incomeService portssvc.IncomeSvcFacade) {
	h := newProjectHandler(projectService, incomeService)

	projects := rg.Group("/projects")
	{
		projects.POST("", h.createProject)
		projects.GET("", h.listProjects)
		projects.GET("/:project_id", h.getProject)
		projects.GET("/:project_id/income", h.listProjectIncome)
	}

	artists := rg.Group("/artists")
	{
		artists.POST("", h.createArtist)
	}
}

// createProject godoc
// @Summary Create a new project
// @Description Creates a project with a unique human-facing code, a type and a recoupment mode.
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.ProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Project code already in use"
// @Security BearerAuth
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "Project code already in use"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create project in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	logger.Info("Project created", slog.String("project_id", project.ProjectID), slog.String("code", project.Code))
	c.JSON(http.StatusCreated, dto.ToProjectResponse(project))
}

// listProjects godoc
// @Summary List projects
// @Tags projects
// @Produce  json
// @Success 200 {array} dto.ProjectResponse
// @Security BearerAuth
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list projects in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponses(projects))
}

// getProject godoc
// @Summary Get a project
// @Tags projects
// @Produce  json
// @Param   project_id path string true "Project ID"
// @Success 200 {object} dto.ProjectResponse
// @Failure 404 {object} map[string]string "Project not found"
// @Security BearerAuth
// @Router /projects/{project_id} [get]
func (h *projectHandler) getProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("project_id")

	project, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		logger.Error("Failed to get project in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get project"})
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(project))
}

// listProjectIncome godoc
// @Summary List a project's income records
// @Tags projects
// @Produce  json
// @Param   project_id path string true "Project ID"
// @Success 200 {array} dto.IncomeResponse
// @Security BearerAuth
// @Router /projects/{project_id}/income [get]
func (h *projectHandler) listProjectIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	projectID := c.Param("project_id")

	records, err := h.incomeService.ListIncome(c.Request.Context(), projectID)
	if err != nil {
		logger.Error("Failed to list income in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list income"})
		return
	}

	responses := make([]dto.IncomeResponse, len(records))
	for i := range records {
		responses[i] = dto.ToIncomeResponse(&records[i])
	}
	c.JSON(http.StatusOK, responses)
}

// createArtist godoc
// @Summary Create a new artist
// @Tags artists
// @Accept  json
// @Produce  json
// @Param   artist body dto.CreateArtistRequest true "Artist details"
// @Success 201 {object} domain.Artist
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /artists [post]
func (h *projectHandler) createArtist(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateArtist", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	artist, err := h.projectService.CreateArtist(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create artist in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create artist"})
		return
	}

	logger.Info("Artist created", slog.String("artist_id", artist.ArtistID))
	c.JSON(http.StatusCreated, artist)
}
