package project

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/project"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
)

type GetProjectUseCase struct {
	projectRepo project.Repository
}

func NewGetProjectUseCase(repo project.Repository) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: repo}
}

type GetProjectInput struct {
	// Ref accepts either a project ID or a slug.
	Ref string
}

type GetProjectOutput struct {
	Project *project.Project
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, input GetProjectInput) (*GetProjectOutput, error) {
	var (
		p   *project.Project
		err error
	)

	if id, parseErr := uuid.Parse(input.Ref); parseErr == nil {
		p, err = uc.projectRepo.FindByID(ctx, id)
		// A slug is allowed to look like a UUID, so a miss by ID still
		// gets a slug lookup.
		if errors.Is(err, project.ErrProjectNotFound) {
			p, err = uc.projectRepo.FindBySlug(ctx, input.Ref)
		}
	} else {
		p, err = uc.projectRepo.FindBySlug(ctx, input.Ref)
	}
	if err != nil {
		if errors.Is(err, project.ErrProjectNotFound) {
			return nil, apperror.NewNotFound("project", input.Ref)
		}
		return nil, err
	}

	return &GetProjectOutput{Project: p}, nil
}
