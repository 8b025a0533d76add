package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contentUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/content"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type ContentHandler struct {
	contentUseCase *contentUC.UseCase
	logger         logger.Logger
}

func NewContentHandler(uc *contentUC.UseCase, log logger.Logger) *ContentHandler {
	return &ContentHandler{
		contentUseCase: uc,
		logger:         log,
	}
}

func (h *ContentHandler) GetSection(c *gin.Context) {
	section, err := h.contentUseCase.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, section)
}

func (h *ContentHandler) UpsertSection(c *gin.Context) {
	var req UpsertContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	section, err := h.contentUseCase.Upsert(c.Request.Context(), contentUC.UpsertInput{
		Key:     c.Param("key"),
		Content: req.Content,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, section)
}
