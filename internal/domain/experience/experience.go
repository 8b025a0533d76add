package experience

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID           uuid.UUID `json:"id"`
	Position     string    `json:"position"`
	Company      string    `json:"company"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	IsCurrent    bool      `json:"is_current"`
	Location     string    `json:"location"`
	Description  []string  `json:"description"`
	Technologies []string  `json:"technologies"`
	CompanyLogo  *string   `json:"company_logo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrExperienceNotFound = errors.New("experience not found")

type Repository interface {
	Save(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)
	List(ctx context.Context, limit, offset int) ([]*Experience, error)
}
