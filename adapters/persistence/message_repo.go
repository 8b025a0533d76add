package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/message"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type postgresMessageRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresMessageRepo(db *pgxpool.Pool, logger logger.Logger) message.Repository {
	return &postgresMessageRepo{db: db, logger: logger}
}

var psqlMessage = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const messageColumns = `id, name, email, subject, body, is_read, created_at`

func scanMessage(row pgx.Row) (*message.Message, error) {
	m := &message.Message{}
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.IsRead, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, message.ErrMessageNotFound
		}
		return nil, apperror.NewInternal("failed to scan message row", err)
	}
	return m, nil
}

func (r *postgresMessageRepo) Save(ctx context.Context, m *message.Message) error {
	query := `
		INSERT INTO messages (id, name, email, subject, body, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Subject, m.Body, m.IsRead, m.CreatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save message", err)
	}
	return nil
}

func (r *postgresMessageRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE messages SET is_read = true WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to mark message read", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("message", id.String())
	}
	return nil
}

func (r *postgresMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete message", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("message", id.String())
	}
	return nil
}

func (r *postgresMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*message.Message, error) {
	row := r.db.QueryRow(ctx, `SELECT `+messageColumns+` FROM messages WHERE id = $1`, id)
	return scanMessage(row)
}

func (r *postgresMessageRepo) List(ctx context.Context, limit, offset int) ([]*message.Message, error) {
	builder := psqlMessage.Select(messageColumns).
		From("messages").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list messages query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query messages", err)
	}

	defer rows.Close()
	messages := make([]*message.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating message rows", err)
	}
	return messages, nil
}
