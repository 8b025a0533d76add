package content

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/content"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type fakeContentRepo struct {
	sections map[content.SectionKey]*content.Section
	gets     int
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{sections: make(map[content.SectionKey]*content.Section)}
}

func (f *fakeContentRepo) Get(_ context.Context, key content.SectionKey) (*content.Section, error) {
	f.gets++
	if s, ok := f.sections[key]; ok {
		return s, nil
	}
	return nil, content.ErrSectionNotFound
}

func (f *fakeContentRepo) Upsert(_ context.Context, section *content.Section) error {
	f.sections[section.Key] = section
	return nil
}

type fakeContentCache struct {
	entries map[content.SectionKey]*content.Section
}

func newFakeContentCache() *fakeContentCache {
	return &fakeContentCache{entries: make(map[content.SectionKey]*content.Section)}
}

func (f *fakeContentCache) Get(_ context.Context, key content.SectionKey) (*content.Section, bool, error) {
	s, ok := f.entries[key]
	return s, ok, nil
}

func (f *fakeContentCache) Set(_ context.Context, section *content.Section) error {
	f.entries[section.Key] = section
	return nil
}

func (f *fakeContentCache) Invalidate(_ context.Context, key content.SectionKey) error {
	delete(f.entries, key)
	return nil
}

func TestUpsert_RejectsUnknownKey(t *testing.T) {
	uc := NewUseCase(newFakeContentRepo(), newFakeContentCache(), nil, logger.NewNop())

	_, err := uc.Upsert(context.Background(), UpsertInput{Key: "navbar", Content: map[string]any{}})
	assert.Error(t, err)
}

func TestUpsert_ReplacesWholesaleAndIsIdempotent(t *testing.T) {
	repo := newFakeContentRepo()
	uc := NewUseCase(repo, newFakeContentCache(), nil, logger.NewNop())

	_, err := uc.Upsert(context.Background(), UpsertInput{
		Key:     "hero",
		Content: map[string]any{"headline": "Hi", "cta": "See work"},
	})
	require.NoError(t, err)

	_, err = uc.Upsert(context.Background(), UpsertInput{
		Key:     "hero",
		Content: map[string]any{"headline": "Hello"},
	})
	require.NoError(t, err)

	stored := repo.sections[content.KeyHero]
	require.NotNil(t, stored)
	assert.Equal(t, map[string]any{"headline": "Hello"}, stored.Content)

	_, err = uc.Upsert(context.Background(), UpsertInput{
		Key:     "hero",
		Content: map[string]any{"headline": "Hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"headline": "Hello"}, repo.sections[content.KeyHero].Content)
}

func TestGet_UsesCacheAfterFirstRead(t *testing.T) {
	repo := newFakeContentRepo()
	cache := newFakeContentCache()
	uc := NewUseCase(repo, cache, nil, logger.NewNop())

	_, err := uc.Upsert(context.Background(), UpsertInput{
		Key:     "about",
		Content: map[string]any{"bio": "engineer"},
	})
	require.NoError(t, err)

	first, err := uc.Get(context.Background(), "about")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"bio": "engineer"}, first.Content)
	require.Equal(t, 1, repo.gets)

	second, err := uc.Get(context.Background(), "about")
	require.NoError(t, err)
	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, 1, repo.gets, "second read must come from the cache")
}

func TestUpsert_InvalidatesCachedSection(t *testing.T) {
	repo := newFakeContentRepo()
	cache := newFakeContentCache()
	uc := NewUseCase(repo, cache, nil, logger.NewNop())

	_, err := uc.Upsert(context.Background(), UpsertInput{
		Key:     "social",
		Content: map[string]any{"github": "old"},
	})
	require.NoError(t, err)

	_, err = uc.Get(context.Background(), "social")
	require.NoError(t, err)

	_, err = uc.Upsert(context.Background(), UpsertInput{
		Key:     "social",
		Content: map[string]any{"github": "new"},
	})
	require.NoError(t, err)

	fresh, err := uc.Get(context.Background(), "social")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"github": "new"}, fresh.Content)
}

func TestGet_UnknownSectionNotFound(t *testing.T) {
	uc := NewUseCase(newFakeContentRepo(), newFakeContentCache(), nil, logger.NewNop())

	_, err := uc.Get(context.Background(), "hero")
	assert.Error(t, err)
}
