package project

import (
	"context"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/project"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
}

func NewListProjectsUseCase(repo project.Repository) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: repo}
}

type ListProjectsInput struct {
	Limit  int
	Offset int
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	if input.Limit <= 0 || input.Limit > 100 {
		input.Limit = 50
	}
	if input.Offset < 0 {
		input.Offset = 0
	}

	projects, err := uc.projectRepo.List(ctx, input.Limit, input.Offset)
	if err != nil {
		return nil, err
	}

	return &ListProjectsOutput{Projects: projects}, nil
}
