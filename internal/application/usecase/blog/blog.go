package blog

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/blog"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
	"github.com/sachin22-web/sachin-portfolio/pkg/slug"
)

// UseCase bundles all blog operations behind one entry point.
type UseCase struct {
	blogRepo blog.Repository
	logger   logger.Logger
}

func NewUseCase(repo blog.Repository, log logger.Logger) *UseCase {
	return &UseCase{
		blogRepo: repo,
		logger:   log,
	}
}

type CreateInput struct {
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	FeaturedImage *string
	Author        string
	Category      string
	Tags          []string
	IsPublished   bool
}

func (uc *UseCase) Create(ctx context.Context, input CreateInput) (*blog.Blog, error) {
	base := input.Slug
	if base == "" {
		base = slug.Generate(input.Title)
	}
	if base == "" {
		return nil, apperror.NewInvalidInput("title produces an empty slug", nil)
	}

	uniqueSlug, err := slug.EnsureUnique(ctx, base, func(ctx context.Context, candidate string) (bool, error) {
		return uc.blogRepo.SlugExists(ctx, candidate, uuid.Nil)
	})
	if err != nil {
		return nil, apperror.NewInternal("failed to resolve a unique blog slug", err)
	}

	now := time.Now().UTC()
	newBlog := &blog.Blog{
		ID:            uuid.New(),
		Title:         input.Title,
		Slug:          uniqueSlug,
		Excerpt:       input.Excerpt,
		Content:       input.Content,
		FeaturedImage: input.FeaturedImage,
		Author:        input.Author,
		Category:      input.Category,
		Tags:          input.Tags,
		IsPublished:   input.IsPublished,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if input.IsPublished {
		newBlog.PublishedAt = &now
	}

	if err := newBlog.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	if err := uc.blogRepo.Save(ctx, newBlog); err != nil {
		return nil, err
	}

	return newBlog, nil
}

type UpdateInput struct {
	BlogID        uuid.UUID
	Title         string
	Slug          string
	Excerpt       string
	Content       string
	FeaturedImage *string
	Author        string
	Category      string
	Tags          []string
	IsPublished   bool
}

func (uc *UseCase) Update(ctx context.Context, input UpdateInput) (*blog.Blog, error) {
	existing, err := uc.blogRepo.FindByID(ctx, input.BlogID)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			return nil, apperror.NewNotFound("blog", input.BlogID.String())
		}
		return nil, err
	}

	desired := input.Slug
	if desired == "" {
		desired = slug.Generate(input.Title)
	}
	if desired == "" {
		return nil, apperror.NewInvalidInput("title produces an empty slug", nil)
	}

	if desired != existing.Slug {
		desired, err = slug.EnsureUnique(ctx, desired, func(ctx context.Context, candidate string) (bool, error) {
			return uc.blogRepo.SlugExists(ctx, candidate, existing.ID)
		})
		if err != nil {
			return nil, apperror.NewInternal("failed to resolve a unique blog slug", err)
		}
	}

	now := time.Now().UTC()
	if input.IsPublished && !existing.IsPublished {
		existing.PublishedAt = &now
	}
	if !input.IsPublished {
		existing.PublishedAt = nil
	}

	existing.Title = input.Title
	existing.Slug = desired
	existing.Excerpt = input.Excerpt
	existing.Content = input.Content
	existing.FeaturedImage = input.FeaturedImage
	existing.Author = input.Author
	existing.Category = input.Category
	existing.Tags = input.Tags
	existing.IsPublished = input.IsPublished
	existing.UpdatedAt = now

	if err := existing.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	if err := uc.blogRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

func (uc *UseCase) Delete(ctx context.Context, blogID uuid.UUID) error {
	err := uc.blogRepo.Delete(ctx, blogID)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			return apperror.NewNotFound("blog", blogID.String())
		}
		return err
	}
	return nil
}

// Get resolves ref as either an ID or a slug. It is the admin read and
// does not touch the view counter.
func (uc *UseCase) Get(ctx context.Context, ref string) (*blog.Blog, error) {
	var (
		b   *blog.Blog
		err error
	)

	if id, parseErr := uuid.Parse(ref); parseErr == nil {
		b, err = uc.blogRepo.FindByID(ctx, id)
		// A slug is allowed to look like a UUID, so a miss by ID still
		// gets a slug lookup.
		if errors.Is(err, blog.ErrBlogNotFound) {
			b, err = uc.blogRepo.FindBySlug(ctx, ref)
		}
	} else {
		b, err = uc.blogRepo.FindBySlug(ctx, ref)
	}
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			return nil, apperror.NewNotFound("blog", ref)
		}
		return nil, err
	}

	return b, nil
}

// GetPublic serves the public detail page: published posts only, and
// every read bumps the view counter.
func (uc *UseCase) GetPublic(ctx context.Context, slugValue string) (*blog.Blog, error) {
	b, err := uc.blogRepo.FindBySlugAndCountView(ctx, slugValue)
	if err != nil {
		if errors.Is(err, blog.ErrBlogNotFound) {
			return nil, apperror.NewNotFound("blog", slugValue)
		}
		return nil, err
	}
	return b, nil
}

type ListInput struct {
	PublishedOnly bool
	Limit         int
	Offset        int
}

func (uc *UseCase) List(ctx context.Context, input ListInput) ([]*blog.Blog, error) {
	if input.Limit <= 0 || input.Limit > 100 {
		input.Limit = 50
	}
	if input.Offset < 0 {
		input.Offset = 0
	}
	return uc.blogRepo.List(ctx, input.PublishedOnly, input.Limit, input.Offset)
}
