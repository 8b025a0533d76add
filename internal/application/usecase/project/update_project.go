package project

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/project"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
	"github.com/sachin22-web/sachin-portfolio/pkg/slug"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Logger
}

func NewUpdateProjectUseCase(repo project.Repository, log logger.Logger) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: repo,
		logger:      log,
	}
}

type UpdateProjectInput struct {
	ProjectID           uuid.UUID
	Title               string
	Slug                string
	ShortDescription    string
	DetailedDescription string
	TechStack           []string
	Category            string
	CoverImageURL       *string
	GithubURL           *string
	LiveURL             *string
	IsFeatured          bool
	DisplayOrder        int
	ReadmeContent       string
}

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	existing, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	desired := input.Slug
	if desired == "" {
		desired = slug.Generate(input.Title)
	}
	if desired == "" {
		return nil, apperror.NewInvalidInput("title produces an empty slug", nil)
	}

	// An unchanged slug keeps its value without probing, so saving an entity
	// twice never renumbers it.
	if desired != existing.Slug {
		desired, err = slug.EnsureUnique(ctx, desired, func(ctx context.Context, candidate string) (bool, error) {
			return uc.projectRepo.SlugExists(ctx, candidate, existing.ID)
		})
		if err != nil {
			return nil, apperror.NewInternal("failed to resolve a unique project slug", err)
		}
	}

	existing.Title = input.Title
	existing.Slug = desired
	existing.ShortDescription = input.ShortDescription
	existing.DetailedDescription = input.DetailedDescription
	existing.TechStack = input.TechStack
	existing.Category = input.Category
	existing.CoverImageURL = input.CoverImageURL
	existing.GithubURL = input.GithubURL
	existing.LiveURL = input.LiveURL
	existing.IsFeatured = input.IsFeatured
	existing.DisplayOrder = input.DisplayOrder
	existing.ReadmeContent = input.ReadmeContent
	existing.UpdatedAt = time.Now().UTC()

	if err := existing.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	if err := uc.projectRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return &UpdateProjectOutput{Project: existing}, nil
}
