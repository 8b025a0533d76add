package resume

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/resume"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

// fakeResumeRepo mirrors the storage guarantee: flag changes clear every
// other row in the same step.
type fakeResumeRepo struct {
	byID map[uuid.UUID]*resume.Resume
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{byID: make(map[uuid.UUID]*resume.Resume)}
}

func (f *fakeResumeRepo) clearActive(except uuid.UUID) {
	for id, r := range f.byID {
		if id != except {
			r.IsActive = false
		}
	}
}

func (f *fakeResumeRepo) Save(_ context.Context, r *resume.Resume) error {
	if r.IsActive {
		f.clearActive(r.ID)
	}
	f.byID[r.ID] = r
	return nil
}

func (f *fakeResumeRepo) Update(_ context.Context, r *resume.Resume) error {
	if _, ok := f.byID[r.ID]; !ok {
		return resume.ErrResumeNotFound
	}
	if r.IsActive {
		f.clearActive(r.ID)
	}
	f.byID[r.ID] = r
	return nil
}

func (f *fakeResumeRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return resume.ErrResumeNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeResumeRepo) FindByID(_ context.Context, id uuid.UUID) (*resume.Resume, error) {
	if r, ok := f.byID[id]; ok {
		return r, nil
	}
	return nil, resume.ErrResumeNotFound
}

func (f *fakeResumeRepo) FindActive(_ context.Context) (*resume.Resume, error) {
	for _, r := range f.byID {
		if r.IsActive {
			return r, nil
		}
	}
	return nil, resume.ErrResumeNotFound
}

func (f *fakeResumeRepo) List(_ context.Context, limit, offset int) ([]*resume.Resume, error) {
	out := make([]*resume.Resume, 0, len(f.byID))
	for _, r := range f.byID {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeResumeRepo) SetActive(_ context.Context, id uuid.UUID) (*resume.Resume, error) {
	r, ok := f.byID[id]
	if !ok {
		return nil, resume.ErrResumeNotFound
	}
	f.clearActive(id)
	r.IsActive = true
	return r, nil
}

func (f *fakeResumeRepo) activeCount() int {
	n := 0
	for _, r := range f.byID {
		if r.IsActive {
			n++
		}
	}
	return n
}

func TestActivate_ExactlyOneActive(t *testing.T) {
	repo := newFakeResumeRepo()
	uc := NewUseCase(repo, logger.NewNop())

	first, err := uc.Create(context.Background(), SaveInput{FullName: "A", Email: "a@example.com", IsActive: true})
	require.NoError(t, err)
	second, err := uc.Create(context.Background(), SaveInput{FullName: "B", Email: "b@example.com"})
	require.NoError(t, err)

	require.Equal(t, 1, repo.activeCount())

	activated, err := uc.Activate(context.Background(), second.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)
	assert.Equal(t, 1, repo.activeCount())

	got, err := uc.GetActive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.NotEqual(t, first.ID, got.ID)
}

func TestActivate_IdempotentReactivation(t *testing.T) {
	repo := newFakeResumeRepo()
	uc := NewUseCase(repo, logger.NewNop())

	r, err := uc.Create(context.Background(), SaveInput{FullName: "A", Email: "a@example.com", IsActive: true})
	require.NoError(t, err)

	again, err := uc.Activate(context.Background(), r.ID)
	require.NoError(t, err)
	assert.True(t, again.IsActive)
	assert.Equal(t, 1, repo.activeCount())
}

func TestActivate_MissingResume(t *testing.T) {
	uc := NewUseCase(newFakeResumeRepo(), logger.NewNop())

	_, err := uc.Activate(context.Background(), uuid.New())
	assert.Error(t, err)
}

func TestCreateActive_DemotesPreviousActive(t *testing.T) {
	repo := newFakeResumeRepo()
	uc := NewUseCase(repo, logger.NewNop())

	first, err := uc.Create(context.Background(), SaveInput{FullName: "A", Email: "a@example.com", IsActive: true})
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), SaveInput{FullName: "B", Email: "b@example.com", IsActive: true})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.activeCount())
	stored, err := uc.Get(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestGetActive_NoneActive(t *testing.T) {
	repo := newFakeResumeRepo()
	uc := NewUseCase(repo, logger.NewNop())

	_, err := uc.Create(context.Background(), SaveInput{FullName: "A", Email: "a@example.com"})
	require.NoError(t, err)

	_, err = uc.GetActive(context.Background())
	assert.Error(t, err)
}
