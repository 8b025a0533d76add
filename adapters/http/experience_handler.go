package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	experienceUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/experience"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type ExperienceHandler struct {
	experienceUseCase *experienceUC.UseCase
	logger            logger.Logger
}

func NewExperienceHandler(uc *experienceUC.UseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		experienceUseCase: uc,
		logger:            log,
	}
}

func (h *ExperienceHandler) toInput(req SaveExperienceRequest) experienceUC.SaveInput {
	return experienceUC.SaveInput{
		Position:     req.Position,
		Company:      req.Company,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsCurrent:    req.IsCurrent,
		Location:     req.Location,
		Description:  req.Description,
		Technologies: req.Technologies,
		CompanyLogo:  req.CompanyLogo,
	}
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	var req SaveExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	e, err := h.experienceUseCase.Create(c.Request.Context(), h.toInput(req))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	experienceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}
	var req SaveExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	e, err := h.experienceUseCase.Update(c.Request.Context(), experienceID, h.toInput(req))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	experienceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}
	if err := h.experienceUseCase.Delete(c.Request.Context(), experienceID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	experienceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid experience ID", err))
		return
	}
	e, err := h.experienceUseCase.Get(c.Request.Context(), experienceID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	experiences, err := h.experienceUseCase.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiences": experiences})
}
