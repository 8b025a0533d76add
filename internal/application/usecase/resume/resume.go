package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/resume"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type UseCase struct {
	resumeRepo resume.Repository
	logger     logger.Logger
}

func NewUseCase(repo resume.Repository, log logger.Logger) *UseCase {
	return &UseCase{
		resumeRepo: repo,
		logger:     log,
	}
}

type SaveInput struct {
	FullName     string
	Title        string
	Email        string
	Phone        *string
	Location     string
	ProfileImage *string
	Summary      string
	Experience   []resume.ExperienceItem
	Education    []resume.EducationItem
	Skills       []resume.SkillCategory
	IsActive     bool
}

func (uc *UseCase) Create(ctx context.Context, input SaveInput) (*resume.Resume, error) {
	if input.FullName == "" || input.Email == "" {
		return nil, apperror.NewInvalidInput("full_name and email are required", nil)
	}

	now := time.Now().UTC()
	r := &resume.Resume{
		ID:           uuid.New(),
		FullName:     input.FullName,
		Title:        input.Title,
		Email:        input.Email,
		Phone:        input.Phone,
		Location:     input.Location,
		ProfileImage: input.ProfileImage,
		Summary:      input.Summary,
		Experience:   input.Experience,
		Education:    input.Education,
		Skills:       input.Skills,
		IsActive:     input.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.resumeRepo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *UseCase) Update(ctx context.Context, id uuid.UUID, input SaveInput) (*resume.Resume, error) {
	existing, err := uc.resumeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, resume.ErrResumeNotFound) {
			return nil, apperror.NewNotFound("resume", id.String())
		}
		return nil, err
	}

	existing.FullName = input.FullName
	existing.Title = input.Title
	existing.Email = input.Email
	existing.Phone = input.Phone
	existing.Location = input.Location
	existing.ProfileImage = input.ProfileImage
	existing.Summary = input.Summary
	existing.Experience = input.Experience
	existing.Education = input.Education
	existing.Skills = input.Skills
	existing.IsActive = input.IsActive
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.resumeRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *UseCase) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.resumeRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, resume.ErrResumeNotFound) {
			return apperror.NewNotFound("resume", id.String())
		}
		return err
	}
	return nil
}

func (uc *UseCase) Get(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	r, err := uc.resumeRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, resume.ErrResumeNotFound) {
			return nil, apperror.NewNotFound("resume", id.String())
		}
		return nil, err
	}
	return r, nil
}

// GetActive backs the public resume page.
func (uc *UseCase) GetActive(ctx context.Context) (*resume.Resume, error) {
	r, err := uc.resumeRepo.FindActive(ctx)
	if err != nil {
		if errors.Is(err, resume.ErrResumeNotFound) {
			return nil, apperror.NewNotFound("resume", "active")
		}
		return nil, err
	}
	return r, nil
}

func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*resume.Resume, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.resumeRepo.List(ctx, limit, offset)
}

// Activate makes the target resume the single active one. Re-activating an
// already active resume is a no-op with the same outcome.
func (uc *UseCase) Activate(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	r, err := uc.resumeRepo.SetActive(ctx, id)
	if err != nil {
		if errors.Is(err, resume.ErrResumeNotFound) {
			return nil, apperror.NewNotFound("resume", id.String())
		}
		return nil, err
	}
	return r, nil
}
