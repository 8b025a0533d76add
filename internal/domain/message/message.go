package message

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Message is an inbound contact-form submission.
type Message struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

var ErrMessageNotFound = errors.New("message not found")

type Repository interface {
	Save(ctx context.Context, m *Message) error
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Message, error)
	List(ctx context.Context, limit, offset int) ([]*Message, error)
}
