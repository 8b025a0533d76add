package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/project"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type ProjectHandler struct {
	createProjectUseCase *projectUC.CreateProjectUseCase
	updateProjectUseCase *projectUC.UpdateProjectUseCase
	deleteProjectUseCase *projectUC.DeleteProjectUseCase
	getProjectUseCase    *projectUC.GetProjectUseCase
	listProjectsUseCase  *projectUC.ListProjectsUseCase
	logger               logger.Logger
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	getUC *projectUC.GetProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	log logger.Logger,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUseCase: createUC,
		updateProjectUseCase: updateUC,
		deleteProjectUseCase: deleteUC,
		getProjectUseCase:    getUC,
		listProjectsUseCase:  listUC,
		logger:               log,
	}
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.createProjectUseCase.Execute(c.Request.Context(), projectUC.CreateProjectInput{
		Title:               req.Title,
		Slug:                req.Slug,
		ShortDescription:    req.ShortDescription,
		DetailedDescription: req.DetailedDescription,
		TechStack:           req.TechStack,
		Category:            req.Category,
		CoverImageURL:       req.CoverImageURL,
		GithubURL:           req.GithubURL,
		LiveURL:             req.LiveURL,
		IsFeatured:          req.IsFeatured,
		DisplayOrder:        req.DisplayOrder,
		ReadmeContent:       req.ReadmeContent,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output.Project)
}

func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("ref"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	output, err := h.updateProjectUseCase.Execute(c.Request.Context(), projectUC.UpdateProjectInput{
		ProjectID:           projectID,
		Title:               req.Title,
		Slug:                req.Slug,
		ShortDescription:    req.ShortDescription,
		DetailedDescription: req.DetailedDescription,
		TechStack:           req.TechStack,
		Category:            req.Category,
		CoverImageURL:       req.CoverImageURL,
		GithubURL:           req.GithubURL,
		LiveURL:             req.LiveURL,
		IsFeatured:          req.IsFeatured,
		DisplayOrder:        req.DisplayOrder,
		ReadmeContent:       req.ReadmeContent,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Project)
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, err := uuid.Parse(c.Param("ref"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid project ID", err))
		return
	}
	if err := h.deleteProjectUseCase.Execute(c.Request.Context(), projectUC.DeleteProjectInput{ProjectID: projectID}); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProject accepts either the project ID or its slug in the path.
func (h *ProjectHandler) GetProject(c *gin.Context) {
	output, err := h.getProjectUseCase.Execute(c.Request.Context(), projectUC.GetProjectInput{
		Ref: c.Param("ref"),
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Project)
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), projectUC.ListProjectsInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"projects": output.Projects})
}
