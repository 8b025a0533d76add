package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resumeUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/resume"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type ResumeHandler struct {
	resumeUseCase *resumeUC.UseCase
	logger        logger.Logger
}

func NewResumeHandler(uc *resumeUC.UseCase, log logger.Logger) *ResumeHandler {
	return &ResumeHandler{
		resumeUseCase: uc,
		logger:        log,
	}
}

func (h *ResumeHandler) toInput(req SaveResumeRequest) resumeUC.SaveInput {
	return resumeUC.SaveInput{
		FullName:     req.FullName,
		Title:        req.Title,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		ProfileImage: req.ProfileImage,
		Summary:      req.Summary,
		Experience:   req.Experience,
		Education:    req.Education,
		Skills:       req.Skills,
		IsActive:     req.IsActive,
	}
}

func (h *ResumeHandler) CreateResume(c *gin.Context) {
	var req SaveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	r, err := h.resumeUseCase.Create(c.Request.Context(), h.toInput(req))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid resume ID", err))
		return
	}
	var req SaveResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	r, err := h.resumeUseCase.Update(c.Request.Context(), resumeID, h.toInput(req))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid resume ID", err))
		return
	}
	if err := h.resumeUseCase.Delete(c.Request.Context(), resumeID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ResumeHandler) GetResume(c *gin.Context) {
	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid resume ID", err))
		return
	}
	r, err := h.resumeUseCase.Get(c.Request.Context(), resumeID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// GetActiveResume backs the public resume page.
func (h *ResumeHandler) GetActiveResume(c *gin.Context) {
	r, err := h.resumeUseCase.GetActive(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *ResumeHandler) ListResumes(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	resumes, err := h.resumeUseCase.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resumes": resumes})
}

// ActivateResume makes the target resume the single active one.
func (h *ResumeHandler) ActivateResume(c *gin.Context) {
	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid resume ID", err))
		return
	}
	r, err := h.resumeUseCase.Activate(c.Request.Context(), resumeID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, r)
}
