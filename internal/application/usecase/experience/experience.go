package experience

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/experience"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type UseCase struct {
	experienceRepo experience.Repository
	logger         logger.Logger
}

func NewUseCase(repo experience.Repository, log logger.Logger) *UseCase {
	return &UseCase{
		experienceRepo: repo,
		logger:         log,
	}
}

type SaveInput struct {
	Position     string
	Company      string
	StartDate    string
	EndDate      string
	IsCurrent    bool
	Location     string
	Description  []string
	Technologies []string
	CompanyLogo  *string
}

func (uc *UseCase) Create(ctx context.Context, input SaveInput) (*experience.Experience, error) {
	if input.Position == "" || input.Company == "" {
		return nil, apperror.NewInvalidInput("position and company are required", nil)
	}

	now := time.Now().UTC()
	e := &experience.Experience{
		ID:           uuid.New(),
		Position:     input.Position,
		Company:      input.Company,
		StartDate:    input.StartDate,
		EndDate:      input.EndDate,
		IsCurrent:    input.IsCurrent,
		Location:     input.Location,
		Description:  input.Description,
		Technologies: input.Technologies,
		CompanyLogo:  input.CompanyLogo,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.experienceRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *UseCase) Update(ctx context.Context, id uuid.UUID, input SaveInput) (*experience.Experience, error) {
	existing, err := uc.experienceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, experience.ErrExperienceNotFound) {
			return nil, apperror.NewNotFound("experience", id.String())
		}
		return nil, err
	}

	existing.Position = input.Position
	existing.Company = input.Company
	existing.StartDate = input.StartDate
	existing.EndDate = input.EndDate
	existing.IsCurrent = input.IsCurrent
	existing.Location = input.Location
	existing.Description = input.Description
	existing.Technologies = input.Technologies
	existing.CompanyLogo = input.CompanyLogo
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.experienceRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *UseCase) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.experienceRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, experience.ErrExperienceNotFound) {
			return apperror.NewNotFound("experience", id.String())
		}
		return err
	}
	return nil
}

func (uc *UseCase) Get(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	e, err := uc.experienceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, experience.ErrExperienceNotFound) {
			return nil, apperror.NewNotFound("experience", id.String())
		}
		return nil, err
	}
	return e, nil
}

func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*experience.Experience, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.experienceRepo.List(ctx, limit, offset)
}
