package blog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/blog"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type fakeBlogRepo struct {
	bySlug map[string]*blog.Blog
}

func newFakeBlogRepo() *fakeBlogRepo {
	return &fakeBlogRepo{bySlug: make(map[string]*blog.Blog)}
}

func (f *fakeBlogRepo) Save(_ context.Context, b *blog.Blog) error {
	f.bySlug[b.Slug] = b
	return nil
}

func (f *fakeBlogRepo) Update(_ context.Context, b *blog.Blog) error {
	for s, existing := range f.bySlug {
		if existing.ID == b.ID {
			delete(f.bySlug, s)
		}
	}
	f.bySlug[b.Slug] = b
	return nil
}

func (f *fakeBlogRepo) Delete(_ context.Context, id uuid.UUID) error {
	for s, existing := range f.bySlug {
		if existing.ID == id {
			delete(f.bySlug, s)
			return nil
		}
	}
	return blog.ErrBlogNotFound
}

func (f *fakeBlogRepo) FindByID(_ context.Context, id uuid.UUID) (*blog.Blog, error) {
	for _, existing := range f.bySlug {
		if existing.ID == id {
			return existing, nil
		}
	}
	return nil, blog.ErrBlogNotFound
}

func (f *fakeBlogRepo) FindBySlug(_ context.Context, slug string) (*blog.Blog, error) {
	if b, ok := f.bySlug[slug]; ok {
		return b, nil
	}
	return nil, blog.ErrBlogNotFound
}

func (f *fakeBlogRepo) FindBySlugAndCountView(_ context.Context, slug string) (*blog.Blog, error) {
	b, ok := f.bySlug[slug]
	if !ok || !b.IsPublished {
		return nil, blog.ErrBlogNotFound
	}
	b.ViewCount++
	return b, nil
}

func (f *fakeBlogRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	b, ok := f.bySlug[slug]
	if !ok {
		return false, nil
	}
	return b.ID != excludeID, nil
}

func (f *fakeBlogRepo) List(_ context.Context, publishedOnly bool, limit, offset int) ([]*blog.Blog, error) {
	out := make([]*blog.Blog, 0, len(f.bySlug))
	for _, b := range f.bySlug {
		if publishedOnly && !b.IsPublished {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

func TestBlogGet_ResolvesIDAndSlug(t *testing.T) {
	repo := newFakeBlogRepo()
	uc := NewUseCase(repo, logger.NewNop())

	created, err := uc.Create(context.Background(), CreateInput{Title: "First Post", Author: "me"})
	require.NoError(t, err)

	byID, err := uc.Get(context.Background(), created.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	bySlug, err := uc.Get(context.Background(), "first-post")
	require.NoError(t, err)
	assert.Equal(t, created.ID, bySlug.ID)

	_, err = uc.Get(context.Background(), "missing-slug")
	assert.Error(t, err)
}

func TestBlogGet_UUIDShapedSlugFallsBackToSlugLookup(t *testing.T) {
	repo := newFakeBlogRepo()
	uc := NewUseCase(repo, logger.NewNop())

	created, err := uc.Create(context.Background(), CreateInput{
		Title: "Odd Slug",
		Slug:  "123e4567-e89b-12d3-a456-426614174000",
	})
	require.NoError(t, err)

	got, err := uc.Get(context.Background(), "123e4567-e89b-12d3-a456-426614174000")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestBlogGetPublic_CountsViewsForPublishedOnly(t *testing.T) {
	repo := newFakeBlogRepo()
	uc := NewUseCase(repo, logger.NewNop())

	published, err := uc.Create(context.Background(), CreateInput{Title: "Live Post", IsPublished: true})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), CreateInput{Title: "Draft Post"})
	require.NoError(t, err)

	got, err := uc.GetPublic(context.Background(), published.Slug)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ViewCount)

	_, err = uc.GetPublic(context.Background(), "draft-post")
	assert.Error(t, err)
	draft, err := uc.Get(context.Background(), "draft-post")
	require.NoError(t, err)
	assert.Zero(t, draft.ViewCount)
}
