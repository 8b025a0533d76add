package project

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Slug                string    `json:"slug"`
	ShortDescription    string    `json:"short_description"`
	DetailedDescription string    `json:"detailed_description"`
	TechStack           []string  `json:"tech_stack"`
	Category            string    `json:"category"`
	CoverImageURL       *string   `json:"cover_image_url"`
	GithubURL           *string   `json:"github_url"`
	LiveURL             *string   `json:"live_url"`
	IsFeatured          bool      `json:"is_featured"`
	DisplayOrder        int       `json:"display_order"`
	ReadmeContent       string    `json:"readme_content"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

var (
	ErrInvalidSlug     = errors.New("slug only allows lowercase letters, numbers, and hyphens")
	ErrProjectNotFound = errors.New("project not found")
	slugRegex          = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func (p *Project) Validate() error {
	if !slugRegex.MatchString(p.Slug) {
		return ErrInvalidSlug
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	FindBySlug(ctx context.Context, slug string) (*Project, error)
	// SlugExists reports whether another project already holds the slug.
	// excludeID keeps an entity from colliding with itself on rename;
	// pass uuid.Nil on create.
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, limit, offset int) ([]*Project, error)
}
