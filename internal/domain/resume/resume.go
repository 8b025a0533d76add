package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type ExperienceItem struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Location    string   `json:"location"`
	Description []string `json:"description"`
}

type EducationItem struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
	Location    string `json:"location"`
	Details     string `json:"details,omitempty"`
}

type SkillCategory struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
}

type Resume struct {
	ID           uuid.UUID       `json:"id"`
	FullName     string          `json:"full_name"`
	Title        string          `json:"title"`
	Email        string          `json:"email"`
	Phone        *string         `json:"phone"`
	Location     string          `json:"location"`
	ProfileImage *string         `json:"profile_image"`
	Summary      string          `json:"summary"`
	Experience   []ExperienceItem `json:"experience"`
	Education    []EducationItem  `json:"education"`
	Skills       []SkillCategory  `json:"skills"`
	IsActive     bool            `json:"is_active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

var ErrResumeNotFound = errors.New("resume not found")

type Repository interface {
	// Save persists a new resume. When r.IsActive is true the insert and the
	// clearing of every other resume's flag happen in one transaction.
	Save(ctx context.Context, r *Resume) error
	Update(ctx context.Context, r *Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Resume, error)
	FindActive(ctx context.Context) (*Resume, error)
	List(ctx context.Context, limit, offset int) ([]*Resume, error)
	// SetActive flips the flag to the target resume: all other rows are
	// cleared and the target set true inside a single transaction, so the
	// collection never settles with zero or two active resumes.
	SetActive(ctx context.Context, id uuid.UUID) (*Resume, error)
}
