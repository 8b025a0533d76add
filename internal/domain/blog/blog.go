package blog

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

type Blog struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	FeaturedImage *string    `json:"featured_image"`
	Author        string     `json:"author"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	IsPublished   bool       `json:"is_published"`
	PublishedAt   *time.Time `json:"published_at"`
	ViewCount     int64      `json:"view_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

var (
	ErrInvalidBlogSlug = errors.New("slug only includes lowercase letter, digit and -")
	ErrBlogNotFound    = errors.New("blog not found")
	blogSlugRegex      = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func (b *Blog) Validate() error {
	if !blogSlugRegex.MatchString(b.Slug) {
		return ErrInvalidBlogSlug
	}
	return nil
}

type Repository interface {
	Save(ctx context.Context, blog *Blog) error
	Update(ctx context.Context, blog *Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Blog, error)
	FindBySlug(ctx context.Context, slug string) (*Blog, error)
	// FindBySlugAndCountView atomically bumps view_count while reading,
	// so concurrent public reads never lose increments.
	FindBySlugAndCountView(ctx context.Context, slug string) (*Blog, error)
	SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*Blog, error)
}
