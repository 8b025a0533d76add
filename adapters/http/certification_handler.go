package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	certificationUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/certification"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type CertificationHandler struct {
	certificationUseCase *certificationUC.UseCase
	logger               logger.Logger
}

func NewCertificationHandler(uc *certificationUC.UseCase, log logger.Logger) *CertificationHandler {
	return &CertificationHandler{
		certificationUseCase: uc,
		logger:               log,
	}
}

func (h *CertificationHandler) toInput(req SaveCertificationRequest) certificationUC.SaveInput {
	return certificationUC.SaveInput{
		Title:            req.Title,
		Issuer:           req.Issuer,
		IssueDate:        req.IssueDate,
		ExpiryDate:       req.ExpiryDate,
		CredentialID:     req.CredentialID,
		CredentialURL:    req.CredentialURL,
		CertificateImage: req.CertificateImage,
		Description:      req.Description,
		Skills:           req.Skills,
	}
}

func (h *CertificationHandler) CreateCertification(c *gin.Context) {
	var req SaveCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	cert, err := h.certificationUseCase.Create(c.Request.Context(), h.toInput(req))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, cert)
}

func (h *CertificationHandler) UpdateCertification(c *gin.Context) {
	certificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification ID", err))
		return
	}
	var req SaveCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	cert, err := h.certificationUseCase.Update(c.Request.Context(), certificationID, h.toInput(req))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *CertificationHandler) DeleteCertification(c *gin.Context) {
	certificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification ID", err))
		return
	}
	if err := h.certificationUseCase.Delete(c.Request.Context(), certificationID); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CertificationHandler) GetCertification(c *gin.Context) {
	certificationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid certification ID", err))
		return
	}
	cert, err := h.certificationUseCase.Get(c.Request.Context(), certificationID)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cert)
}

func (h *CertificationHandler) ListCertifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	certifications, err := h.certificationUseCase.List(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"certifications": certifications})
}
