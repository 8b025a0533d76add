package persistence

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/content"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type postgresContentRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContentRepo(db *pgxpool.Pool, logger logger.Logger) content.Repository {
	return &postgresContentRepo{db: db, logger: logger}
}

func (r *postgresContentRepo) Get(ctx context.Context, key content.SectionKey) (*content.Section, error) {
	query := `SELECT key, content, updated_at FROM content_sections WHERE key = $1`

	s := &content.Section{}
	var contentBytes []byte

	err := r.db.QueryRow(ctx, query, key).Scan(&s.Key, &contentBytes, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, content.ErrSectionNotFound
		}
		return nil, apperror.NewInternal("failed to query content section", err)
	}

	if err := json.Unmarshal(contentBytes, &s.Content); err != nil {
		r.logger.Warn("Failed to unmarshal section content", zap.String("key", string(key)), zap.Error(err))
		s.Content = map[string]any{}
	}
	return s, nil
}

// Upsert replaces the section document wholesale. The unique index on key is
// what guarantees single-document-per-key, not this statement.
func (r *postgresContentRepo) Upsert(ctx context.Context, s *content.Section) error {
	contentBytes, err := json.Marshal(s.Content)
	if err != nil {
		return apperror.NewInternal("failed to marshal section content", err)
	}

	query := `
		INSERT INTO content_sections (key, content, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			content = EXCLUDED.content,
			updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query, s.Key, contentBytes, s.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to upsert content section", err)
	}
	return nil
}
