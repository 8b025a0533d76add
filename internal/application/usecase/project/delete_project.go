package project

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/project"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Logger
}

func NewDeleteProjectUseCase(repo project.Repository, log logger.Logger) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: repo,
		logger:      log,
	}
}

type DeleteProjectInput struct {
	ProjectID uuid.UUID
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	err := uc.projectRepo.Delete(ctx, input.ProjectID)
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return apperror.NewNotFound("project", input.ProjectID.String())
		}
		return err
	}
	return nil
}
