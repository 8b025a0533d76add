package project

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/project"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type fakeProjectRepo struct {
	bySlug          map[string]*project.Project
	slugExistsCalls int
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{bySlug: make(map[string]*project.Project)}
}

func (f *fakeProjectRepo) Save(_ context.Context, p *project.Project) error {
	f.bySlug[p.Slug] = p
	return nil
}

func (f *fakeProjectRepo) Update(_ context.Context, p *project.Project) error {
	for s, existing := range f.bySlug {
		if existing.ID == p.ID {
			delete(f.bySlug, s)
		}
	}
	f.bySlug[p.Slug] = p
	return nil
}

func (f *fakeProjectRepo) Delete(_ context.Context, id uuid.UUID) error {
	for s, existing := range f.bySlug {
		if existing.ID == id {
			delete(f.bySlug, s)
			return nil
		}
	}
	return project.ErrProjectNotFound
}

func (f *fakeProjectRepo) FindByID(_ context.Context, id uuid.UUID) (*project.Project, error) {
	for _, existing := range f.bySlug {
		if existing.ID == id {
			return existing, nil
		}
	}
	return nil, project.ErrProjectNotFound
}

func (f *fakeProjectRepo) FindBySlug(_ context.Context, slug string) (*project.Project, error) {
	if p, ok := f.bySlug[slug]; ok {
		return p, nil
	}
	return nil, project.ErrProjectNotFound
}

func (f *fakeProjectRepo) SlugExists(_ context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	f.slugExistsCalls++
	p, ok := f.bySlug[slug]
	if !ok {
		return false, nil
	}
	return p.ID != excludeID, nil
}

func (f *fakeProjectRepo) List(_ context.Context, limit, offset int) ([]*project.Project, error) {
	out := make([]*project.Project, 0, len(f.bySlug))
	for _, p := range f.bySlug {
		out = append(out, p)
	}
	return out, nil
}

func TestCreateProject_DerivesSlugFromTitle(t *testing.T) {
	repo := newFakeProjectRepo()
	uc := NewCreateProjectUseCase(repo, logger.NewNop())

	out, err := uc.Execute(context.Background(), CreateProjectInput{Title: "My Cool App!"})
	require.NoError(t, err)
	assert.Equal(t, "my-cool-app", out.Project.Slug)
}

func TestCreateProject_CollisionGetsNumericSuffix(t *testing.T) {
	repo := newFakeProjectRepo()
	uc := NewCreateProjectUseCase(repo, logger.NewNop())

	first, err := uc.Execute(context.Background(), CreateProjectInput{Title: "Portfolio Site"})
	require.NoError(t, err)
	require.Equal(t, "portfolio-site", first.Project.Slug)

	second, err := uc.Execute(context.Background(), CreateProjectInput{Title: "Portfolio Site"})
	require.NoError(t, err)
	assert.Equal(t, "portfolio-site-2", second.Project.Slug)

	third, err := uc.Execute(context.Background(), CreateProjectInput{Title: "Portfolio Site"})
	require.NoError(t, err)
	assert.Equal(t, "portfolio-site-3", third.Project.Slug)
}

func TestCreateProject_EmptyTitleRejected(t *testing.T) {
	repo := newFakeProjectRepo()
	uc := NewCreateProjectUseCase(repo, logger.NewNop())

	_, err := uc.Execute(context.Background(), CreateProjectInput{Title: "!!!"})
	assert.Error(t, err)
}

func TestUpdateProject_UnchangedSlugSkipsProbe(t *testing.T) {
	repo := newFakeProjectRepo()
	create := NewCreateProjectUseCase(repo, logger.NewNop())
	update := NewUpdateProjectUseCase(repo, logger.NewNop())

	created, err := create.Execute(context.Background(), CreateProjectInput{Title: "Stable Name"})
	require.NoError(t, err)

	repo.slugExistsCalls = 0
	out, err := update.Execute(context.Background(), UpdateProjectInput{
		ProjectID: created.Project.ID,
		Title:     "Stable Name",
		Slug:      "stable-name",
	})
	require.NoError(t, err)
	assert.Equal(t, "stable-name", out.Project.Slug)
	assert.Zero(t, repo.slugExistsCalls, "saving with the same slug must not probe for uniqueness")
}

func TestUpdateProject_RenameProbesAndResolves(t *testing.T) {
	repo := newFakeProjectRepo()
	create := NewCreateProjectUseCase(repo, logger.NewNop())
	update := NewUpdateProjectUseCase(repo, logger.NewNop())

	_, err := create.Execute(context.Background(), CreateProjectInput{Title: "Taken Name"})
	require.NoError(t, err)
	target, err := create.Execute(context.Background(), CreateProjectInput{Title: "Other Name"})
	require.NoError(t, err)

	out, err := update.Execute(context.Background(), UpdateProjectInput{
		ProjectID: target.Project.ID,
		Title:     "Taken Name",
	})
	require.NoError(t, err)
	assert.Equal(t, "taken-name-2", out.Project.Slug)
}

func TestGetProject_ResolvesIDAndSlug(t *testing.T) {
	repo := newFakeProjectRepo()
	create := NewCreateProjectUseCase(repo, logger.NewNop())
	get := NewGetProjectUseCase(repo)

	created, err := create.Execute(context.Background(), CreateProjectInput{Title: "Lookup Me"})
	require.NoError(t, err)

	byID, err := get.Execute(context.Background(), GetProjectInput{Ref: created.Project.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, created.Project.ID, byID.Project.ID)

	bySlug, err := get.Execute(context.Background(), GetProjectInput{Ref: "lookup-me"})
	require.NoError(t, err)
	assert.Equal(t, created.Project.ID, bySlug.Project.ID)

	_, err = get.Execute(context.Background(), GetProjectInput{Ref: "missing-slug"})
	assert.Error(t, err)
}

func TestGetProject_UUIDShapedSlugFallsBackToSlugLookup(t *testing.T) {
	repo := newFakeProjectRepo()
	create := NewCreateProjectUseCase(repo, logger.NewNop())
	get := NewGetProjectUseCase(repo)

	created, err := create.Execute(context.Background(), CreateProjectInput{
		Title: "Odd Slug",
		Slug:  "123e4567-e89b-12d3-a456-426614174000",
	})
	require.NoError(t, err)

	out, err := get.Execute(context.Background(), GetProjectInput{Ref: "123e4567-e89b-12d3-a456-426614174000"})
	require.NoError(t, err)
	assert.Equal(t, created.Project.ID, out.Project.ID)
}
