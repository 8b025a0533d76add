package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mediaUC "github.com/sachin22-web/sachin-portfolio/internal/application/usecase/media"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type MediaHandler struct {
	uploadMediaUseCase *mediaUC.UploadMediaUseCase
	logger             logger.Logger
}

func NewMediaHandler(uploadUC *mediaUC.UploadMediaUseCase, log logger.Logger) *MediaHandler {
	return &MediaHandler{
		uploadMediaUseCase: uploadUC,
		logger:             log,
	}
}

// UploadMedia accepts a multipart form with a "file" part and an optional
// "folder" field, and returns the hosted URL.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.NewInvalidInput("file is required", err))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.NewInternal("cannot open uploaded file", err))
		return
	}
	defer file.Close()

	output, err := h.uploadMediaUseCase.Execute(c.Request.Context(), mediaUC.UploadMediaInput{
		File:   file,
		Folder: c.PostForm("folder"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":       output.URL,
		"public_id": output.PublicID,
	})
}
