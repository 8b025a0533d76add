package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/admin"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type postgresAdminRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAdminRepo(db *pgxpool.Pool, logger logger.Logger) admin.Repository {
	return &postgresAdminRepo{db: db, logger: logger}
}

func (r *postgresAdminRepo) FindByEmail(ctx context.Context, email string) (*admin.User, error) {
	u := &admin.User{}
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, role FROM admin_users WHERE email = $1`, email)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewUnauthorized("no admin account with that email", nil)
		}
		return nil, apperror.NewInternal("failed to scan admin user row", err)
	}
	return u, nil
}
