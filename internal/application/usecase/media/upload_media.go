package media

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/sachin22-web/sachin-portfolio/internal/application/service"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type UploadMediaUseCase struct {
	uploader service.Uploader
	logger   logger.Logger
}

func NewUploadMediaUseCase(uploader service.Uploader, log logger.Logger) *UploadMediaUseCase {
	return &UploadMediaUseCase{
		uploader: uploader,
		logger:   log,
	}
}

type UploadMediaInput struct {
	File io.Reader
	// Folder groups uploads by purpose: "projects", "blogs", "resumes".
	Folder string
}

type UploadMediaOutput struct {
	URL      string
	PublicID string
}

func (uc *UploadMediaUseCase) Execute(ctx context.Context, input UploadMediaInput) (*UploadMediaOutput, error) {
	if input.File == nil {
		return nil, apperror.NewInvalidInput("no file provided", nil)
	}
	folder := input.Folder
	if folder == "" {
		folder = "portfolio"
	}

	publicID := uuid.New().String()
	url, err := uc.uploader.Upload(ctx, input.File, folder, publicID)
	if err != nil {
		return nil, apperror.NewInternal("failed to upload media", err)
	}

	return &UploadMediaOutput{
		URL:      url,
		PublicID: fmt.Sprintf("%s/%s", folder, publicID),
	}, nil
}
