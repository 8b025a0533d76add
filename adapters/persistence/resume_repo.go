package persistence

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/resume"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type postgresResumeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresResumeRepo(db *pgxpool.Pool, logger logger.Logger) resume.Repository {
	return &postgresResumeRepo{db: db, logger: logger}
}

var psqlResume = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const resumeColumns = `id, full_name, title, email, phone, location, profile_image, summary,
	experience, education, skills, is_active, created_at, updated_at`

func scanResume(row pgx.Row, l logger.Logger) (*resume.Resume, error) {
	r := &resume.Resume{}
	var experienceBytes, educationBytes, skillsBytes []byte

	err := row.Scan(
		&r.ID,
		&r.FullName,
		&r.Title,
		&r.Email,
		&r.Phone,
		&r.Location,
		&r.ProfileImage,
		&r.Summary,
		&experienceBytes,
		&educationBytes,
		&skillsBytes,
		&r.IsActive,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resume.ErrResumeNotFound
		}
		return nil, apperror.NewInternal("failed to scan resume row", err)
	}

	if err := json.Unmarshal(experienceBytes, &r.Experience); err != nil {
		l.Warn("Failed to unmarshal resume experience", zap.String("resume_id", r.ID.String()), zap.Error(err))
		r.Experience = []resume.ExperienceItem{}
	}
	if err := json.Unmarshal(educationBytes, &r.Education); err != nil {
		l.Warn("Failed to unmarshal resume education", zap.String("resume_id", r.ID.String()), zap.Error(err))
		r.Education = []resume.EducationItem{}
	}
	if err := json.Unmarshal(skillsBytes, &r.Skills); err != nil {
		l.Warn("Failed to unmarshal resume skills", zap.String("resume_id", r.ID.String()), zap.Error(err))
		r.Skills = []resume.SkillCategory{}
	}
	return r, nil
}

func scanResumes(rows pgx.Rows, l logger.Logger) ([]*resume.Resume, error) {
	defer rows.Close()
	resumes := make([]*resume.Resume, 0)

	for rows.Next() {
		r, err := scanResume(rows, l)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, r)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating resume rows", err)
	}
	return resumes, nil
}

func marshalResumeSections(r *resume.Resume) (experience, education, skills []byte, err error) {
	if experience, err = json.Marshal(r.Experience); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal resume experience", err)
	}
	if education, err = json.Marshal(r.Education); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal resume education", err)
	}
	if skills, err = json.Marshal(r.Skills); err != nil {
		return nil, nil, nil, apperror.NewInternal("failed to marshal resume skills", err)
	}
	return experience, education, skills, nil
}

// Save inserts the resume. When the new resume is active, the clear-others
// step and the insert run in the same transaction so the single-active
// invariant never has an observable gap.
func (r *postgresResumeRepo) Save(ctx context.Context, res *resume.Resume) error {
	experienceBytes, educationBytes, skillsBytes, err := marshalResumeSections(res)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin resume save transaction", err)
	}
	defer tx.Rollback(ctx)

	if res.IsActive {
		if _, err := tx.Exec(ctx, `UPDATE resumes SET is_active = false WHERE is_active`); err != nil {
			return apperror.NewInternal("failed to clear active resumes", err)
		}
	}

	query := `
		INSERT INTO resumes (id, full_name, title, email, phone, location, profile_image, summary,
			experience, education, skills, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = tx.Exec(ctx, query,
		res.ID, res.FullName, res.Title, res.Email, res.Phone, res.Location, res.ProfileImage, res.Summary,
		experienceBytes, educationBytes, skillsBytes, res.IsActive, res.CreatedAt, res.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save resume", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit resume save", err)
	}
	return nil
}

func (r *postgresResumeRepo) Update(ctx context.Context, res *resume.Resume) error {
	experienceBytes, educationBytes, skillsBytes, err := marshalResumeSections(res)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin resume update transaction", err)
	}
	defer tx.Rollback(ctx)

	if res.IsActive {
		if _, err := tx.Exec(ctx, `UPDATE resumes SET is_active = false WHERE is_active AND id <> $1`, res.ID); err != nil {
			return apperror.NewInternal("failed to clear active resumes", err)
		}
	}

	query := `
		UPDATE resumes SET
			full_name = $2, title = $3, email = $4, phone = $5, location = $6, profile_image = $7,
			summary = $8, experience = $9, education = $10, skills = $11, is_active = $12, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := tx.Exec(ctx, query,
		res.ID, res.FullName, res.Title, res.Email, res.Phone, res.Location, res.ProfileImage,
		res.Summary, experienceBytes, educationBytes, skillsBytes, res.IsActive,
	)
	if err != nil {
		return apperror.NewInternal("failed to update resume", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("resume", res.ID.String())
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit resume update", err)
	}
	return nil
}

func (r *postgresResumeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM resumes WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete resume", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("resume", id.String())
	}
	return nil
}

func (r *postgresResumeRepo) FindByID(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	row := r.db.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)
	return scanResume(row, r.logger)
}

func (r *postgresResumeRepo) FindActive(ctx context.Context) (*resume.Resume, error) {
	row := r.db.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE is_active`)
	return scanResume(row, r.logger)
}

func (r *postgresResumeRepo) List(ctx context.Context, limit, offset int) ([]*resume.Resume, error) {
	builder := psqlResume.Select(resumeColumns).
		From("resumes").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list resumes query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query resumes", err)
	}
	return scanResumes(rows, r.logger)
}

// SetActive clears every other flag and sets the target inside one
// transaction. A missing target rolls the whole thing back, so a failed
// activation never leaves the collection with zero active resumes.
func (r *postgresResumeRepo) SetActive(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, apperror.NewInternal("failed to begin activation transaction", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `UPDATE resumes SET is_active = false WHERE is_active AND id <> $1`, id); err != nil {
		return nil, apperror.NewInternal("failed to clear active resumes", err)
	}

	row := tx.QueryRow(ctx, `
		UPDATE resumes SET is_active = true, updated_at = NOW()
		WHERE id = $1
		RETURNING `+resumeColumns, id)

	activated, err := scanResume(row, r.logger)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.NewInternal("failed to commit activation", err)
	}
	return activated, nil
}
