package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/certification"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type postgresCertificationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresCertificationRepo(db *pgxpool.Pool, logger logger.Logger) certification.Repository {
	return &postgresCertificationRepo{db: db, logger: logger}
}

var psqlCertification = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const certificationColumns = `id, title, issuer, issue_date, expiry_date, credential_id, credential_url,
	certificate_image, description, skills, created_at, updated_at`

func scanCertification(row pgx.Row) (*certification.Certification, error) {
	c := &certification.Certification{}
	err := row.Scan(
		&c.ID, &c.Title, &c.Issuer, &c.IssueDate, &c.ExpiryDate, &c.CredentialID,
		&c.CredentialURL, &c.CertificateImage, &c.Description, &c.Skills,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, certification.ErrCertificationNotFound
		}
		return nil, apperror.NewInternal("failed to scan certification row", err)
	}
	return c, nil
}

func (r *postgresCertificationRepo) Save(ctx context.Context, c *certification.Certification) error {
	query := `
		INSERT INTO certifications (id, title, issuer, issue_date, expiry_date, credential_id, credential_url,
			certificate_image, description, skills, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		c.ID, c.Title, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID, c.CredentialURL,
		c.CertificateImage, c.Description, c.Skills, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save certification", err)
	}
	return nil
}

func (r *postgresCertificationRepo) Update(ctx context.Context, c *certification.Certification) error {
	query := `
		UPDATE certifications SET
			title = $2, issuer = $3, issue_date = $4, expiry_date = $5, credential_id = $6,
			credential_url = $7, certificate_image = $8, description = $9, skills = $10, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		c.ID, c.Title, c.Issuer, c.IssueDate, c.ExpiryDate, c.CredentialID,
		c.CredentialURL, c.CertificateImage, c.Description, c.Skills,
	)
	if err != nil {
		return apperror.NewInternal("failed to update certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("certification", c.ID.String())
	}
	return nil
}

func (r *postgresCertificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("certification", id.String())
	}
	return nil
}

func (r *postgresCertificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	row := r.db.QueryRow(ctx, `SELECT `+certificationColumns+` FROM certifications WHERE id = $1`, id)
	return scanCertification(row)
}

func (r *postgresCertificationRepo) List(ctx context.Context, limit, offset int) ([]*certification.Certification, error) {
	builder := psqlCertification.Select(certificationColumns).
		From("certifications").
		OrderBy("issue_date DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list certifications query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query certifications", err)
	}

	defer rows.Close()
	certifications := make([]*certification.Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certifications = append(certifications, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certification rows", err)
	}
	return certifications, nil
}
