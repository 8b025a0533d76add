package certification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/certification"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type UseCase struct {
	certificationRepo certification.Repository
	logger            logger.Logger
}

func NewUseCase(repo certification.Repository, log logger.Logger) *UseCase {
	return &UseCase{
		certificationRepo: repo,
		logger:            log,
	}
}

type SaveInput struct {
	Title            string
	Issuer           string
	IssueDate        string
	ExpiryDate       *string
	CredentialID     *string
	CredentialURL    *string
	CertificateImage *string
	Description      string
	Skills           []string
}

func (uc *UseCase) Create(ctx context.Context, input SaveInput) (*certification.Certification, error) {
	if input.Title == "" || input.Issuer == "" {
		return nil, apperror.NewInvalidInput("title and issuer are required", nil)
	}

	now := time.Now().UTC()
	c := &certification.Certification{
		ID:               uuid.New(),
		Title:            input.Title,
		Issuer:           input.Issuer,
		IssueDate:        input.IssueDate,
		ExpiryDate:       input.ExpiryDate,
		CredentialID:     input.CredentialID,
		CredentialURL:    input.CredentialURL,
		CertificateImage: input.CertificateImage,
		Description:      input.Description,
		Skills:           input.Skills,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := uc.certificationRepo.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *UseCase) Update(ctx context.Context, id uuid.UUID, input SaveInput) (*certification.Certification, error) {
	existing, err := uc.certificationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, certification.ErrCertificationNotFound) {
			return nil, apperror.NewNotFound("certification", id.String())
		}
		return nil, err
	}

	existing.Title = input.Title
	existing.Issuer = input.Issuer
	existing.IssueDate = input.IssueDate
	existing.ExpiryDate = input.ExpiryDate
	existing.CredentialID = input.CredentialID
	existing.CredentialURL = input.CredentialURL
	existing.CertificateImage = input.CertificateImage
	existing.Description = input.Description
	existing.Skills = input.Skills
	existing.UpdatedAt = time.Now().UTC()

	if err := uc.certificationRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (uc *UseCase) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.certificationRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, certification.ErrCertificationNotFound) {
			return apperror.NewNotFound("certification", id.String())
		}
		return err
	}
	return nil
}

func (uc *UseCase) Get(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	c, err := uc.certificationRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, certification.ErrCertificationNotFound) {
			return nil, apperror.NewNotFound("certification", id.String())
		}
		return nil, err
	}
	return c, nil
}

func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*certification.Certification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.certificationRepo.List(ctx, limit, offset)
}
