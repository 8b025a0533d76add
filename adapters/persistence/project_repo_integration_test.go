package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/content"
	"github.com/sachin22-web/sachin-portfolio/internal/domain/project"
	"github.com/sachin22-web/sachin-portfolio/internal/domain/resume"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
	projectRepo project.Repository
	resumeRepo  resume.Repository
	contentRepo content.Repository
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.testLogger = logger.NewNop()
	s.projectRepo = NewPostgresProjectRepo(s.dbPool, s.testLogger)
	s.resumeRepo = NewPostgresResumeRepo(s.dbPool, s.testLogger)
	s.contentRepo = NewPostgresContentRepo(s.dbPool, s.testLogger)
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

func newTestProject(title, slug string) *project.Project {
	now := time.Now().UTC()
	return &project.Project{
		ID:        uuid.New(),
		Title:     title,
		Slug:      slug,
		TechStack: []string{"go", "postgres"},
		Category:  "backend",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *RepoIntegrationTestSuite) Test_Project_Save_And_Find() {
	ctx := context.Background()

	p := newTestProject("Integration Project", "integration-project")
	s.Require().NoError(s.projectRepo.Save(ctx, p))

	byID, err := s.projectRepo.FindByID(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p.Slug, byID.Slug)
	s.Equal([]string{"go", "postgres"}, byID.TechStack)

	bySlug, err := s.projectRepo.FindBySlug(ctx, "integration-project")
	s.Require().NoError(err)
	s.Equal(p.ID, bySlug.ID)
}

func (s *RepoIntegrationTestSuite) Test_Project_DuplicateSlug_Conflicts() {
	ctx := context.Background()

	first := newTestProject("Dup A", "duplicate-slug")
	s.Require().NoError(s.projectRepo.Save(ctx, first))

	second := newTestProject("Dup B", "duplicate-slug")
	err := s.projectRepo.Save(ctx, second)
	s.Require().Error(err)
	s.ErrorIs(err, apperror.ErrConflict)
}

func (s *RepoIntegrationTestSuite) Test_Project_SlugExists_ExcludesSelf() {
	ctx := context.Background()

	p := newTestProject("Exists Check", "exists-check")
	s.Require().NoError(s.projectRepo.Save(ctx, p))

	exists, err := s.projectRepo.SlugExists(ctx, "exists-check", uuid.Nil)
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.projectRepo.SlugExists(ctx, "exists-check", p.ID)
	s.Require().NoError(err)
	s.False(exists, "a project must not collide with its own slug")

	exists, err = s.projectRepo.SlugExists(ctx, "never-used", uuid.Nil)
	s.Require().NoError(err)
	s.False(exists)
}

func newTestResume(name string, active bool) *resume.Resume {
	now := time.Now().UTC()
	return &resume.Resume{
		ID:        uuid.New(),
		FullName:  name,
		Email:     name + "@example.com",
		IsActive:  active,
		Experience: []resume.ExperienceItem{},
		Education:  []resume.EducationItem{},
		Skills:     []resume.SkillCategory{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *RepoIntegrationTestSuite) Test_Resume_SetActive_IsExclusive() {
	ctx := context.Background()

	first := newTestResume("resume-first", true)
	s.Require().NoError(s.resumeRepo.Save(ctx, first))

	second := newTestResume("resume-second", false)
	s.Require().NoError(s.resumeRepo.Save(ctx, second))

	activated, err := s.resumeRepo.SetActive(ctx, second.ID)
	s.Require().NoError(err)
	s.True(activated.IsActive)

	active, err := s.resumeRepo.FindActive(ctx)
	s.Require().NoError(err)
	s.Equal(second.ID, active.ID)

	demoted, err := s.resumeRepo.FindByID(ctx, first.ID)
	s.Require().NoError(err)
	s.False(demoted.IsActive)

	// re-activation is a no-op
	again, err := s.resumeRepo.SetActive(ctx, second.ID)
	s.Require().NoError(err)
	s.True(again.IsActive)
}

func (s *RepoIntegrationTestSuite) Test_Resume_SetActive_Missing() {
	_, err := s.resumeRepo.SetActive(context.Background(), uuid.New())
	s.Require().Error(err)
	s.ErrorIs(err, resume.ErrResumeNotFound)
}

func (s *RepoIntegrationTestSuite) Test_Content_Upsert_ReplacesDocument() {
	ctx := context.Background()

	section := &content.Section{
		Key:       content.KeyHero,
		Content:   map[string]any{"headline": "first"},
		UpdatedAt: time.Now().UTC(),
	}
	s.Require().NoError(s.contentRepo.Upsert(ctx, section))

	section.Content = map[string]any{"headline": "second", "cta": "hire me"}
	section.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)
	s.Require().NoError(s.contentRepo.Upsert(ctx, section))

	stored, err := s.contentRepo.Get(ctx, content.KeyHero)
	s.Require().NoError(err)
	s.Equal("second", stored.Content["headline"])
	s.Equal("hire me", stored.Content["cta"])
	s.True(stored.UpdatedAt.Equal(section.UpdatedAt), "stored updated_at must match the written timestamp on conflict")

	_, err = s.contentRepo.Get(ctx, content.KeyAbout)
	s.Require().Error(err)
	s.ErrorIs(err, content.ErrSectionNotFound)
}
