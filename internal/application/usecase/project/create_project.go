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

type CreateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Logger
}

func NewCreateProjectUseCase(repo project.Repository, log logger.Logger) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: repo,
		logger:      log,
	}
}

type CreateProjectInput struct {
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

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	base := input.Slug
	if base == "" {
		base = slug.Generate(input.Title)
	}
	if base == "" {
		return nil, apperror.NewInvalidInput("title produces an empty slug", nil)
	}

	uniqueSlug, err := slug.EnsureUnique(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
		return uc.projectRepo.SlugExists(ctx, candidate, uuid.Nil)
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to resolve a unique project slug", err)
	}

	now := time.Now().UTC()
	newProject := &project.Project{
		ID:                  uuid.New(),
		Title:               input.Title,
		Slug:                uniqueSlug,
		ShortDescription:    input.ShortDescription,
		DetailedDescription: input.DetailedDescription,
		TechStack:           input.TechStack,
		Category:            input.Category,
		CoverImageURL:       input.CoverImageURL,
		GithubURL:           input.GithubURL,
		LiveURL:             input.LiveURL,
		IsFeatured:          input.IsFeatured,
		DisplayOrder:        input.DisplayOrder,
		ReadmeContent:       input.ReadmeContent,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := newProject.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	// The probe above is best-effort. A concurrent writer can still win the
	// race, in which case the unique index rejects the insert and the caller
	// receives a conflict instead of a silently renumbered slug.
	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, err
	}

	return &CreateProjectOutput{Project: newProject}, nil
}
