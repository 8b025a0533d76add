package message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/message"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type UseCase struct {
	messageRepo message.Repository
	logger      logger.Logger
}

func NewUseCase(repo message.Repository, log logger.Logger) *UseCase {
	return &UseCase{
		messageRepo: repo,
		logger:      log,
	}
}

type SubmitInput struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Submit records a contact-form message. Rate limiting happens at the
// transport layer, before this point.
func (uc *UseCase) Submit(ctx context.Context, input SubmitInput) (*message.Message, error) {
	if input.Name == "" || input.Email == "" || input.Body == "" {
		return nil, apperror.NewInvalidInput("name, email and message are required", nil)
	}

	m := &message.Message{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Body:      input.Body,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.messageRepo.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (uc *UseCase) MarkRead(ctx context.Context, id uuid.UUID) error {
	err := uc.messageRepo.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, message.ErrMessageNotFound) {
			return apperror.NewNotFound("message", id.String())
		}
		return err
	}
	return nil
}

func (uc *UseCase) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.messageRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, message.ErrMessageNotFound) {
			return apperror.NewNotFound("message", id.String())
		}
		return err
	}
	return nil
}

func (uc *UseCase) List(ctx context.Context, limit, offset int) ([]*message.Message, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return uc.messageRepo.List(ctx, limit, offset)
}
