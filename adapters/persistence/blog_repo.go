package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sachin22-web/sachin-portfolio/internal/domain/blog"
	"github.com/sachin22-web/sachin-portfolio/pkg/apperror"
	"github.com/sachin22-web/sachin-portfolio/pkg/logger"
)

type postgresBlogRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresBlogRepo(db *pgxpool.Pool, logger logger.Logger) blog.Repository {
	return &postgresBlogRepo{db: db, logger: logger}
}

var psqlBlog = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const blogColumns = `id, title, slug, excerpt, content, featured_image, author, category, tags,
	is_published, published_at, view_count, created_at, updated_at`

func scanBlog(row pgx.Row) (*blog.Blog, error) {
	b := &blog.Blog{}
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Slug,
		&b.Excerpt,
		&b.Content,
		&b.FeaturedImage,
		&b.Author,
		&b.Category,
		&b.Tags,
		&b.IsPublished,
		&b.PublishedAt,
		&b.ViewCount,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, blog.ErrBlogNotFound
		}
		return nil, apperror.NewInternal("failed to scan blog row", err)
	}
	return b, nil
}

func scanBlogs(rows pgx.Rows) ([]*blog.Blog, error) {
	defer rows.Close()
	blogs := make([]*blog.Blog, 0)

	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating blog rows", err)
	}
	return blogs, nil
}

func (r *postgresBlogRepo) Save(ctx context.Context, b *blog.Blog) error {
	query := `
		INSERT INTO blogs (id, title, slug, excerpt, content, featured_image, author, category, tags,
			is_published, published_at, view_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(ctx, query,
		b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.FeaturedImage, b.Author, b.Category, b.Tags,
		b.IsPublished, b.PublishedAt, b.ViewCount, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("blog", "slug", b.Slug)
		}
		return apperror.NewInternal("failed to save blog", err)
	}
	return nil
}

func (r *postgresBlogRepo) Update(ctx context.Context, b *blog.Blog) error {
	query := `
		UPDATE blogs SET
			title = $2, slug = $3, excerpt = $4, content = $5, featured_image = $6, author = $7,
			category = $8, tags = $9, is_published = $10, published_at = $11, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		b.ID, b.Title, b.Slug, b.Excerpt, b.Content, b.FeaturedImage, b.Author,
		b.Category, b.Tags, b.IsPublished, b.PublishedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperror.NewConflict("blog", "slug", b.Slug)
		}
		return apperror.NewInternal("failed to update blog", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("blog", b.ID.String())
	}
	return nil
}

func (r *postgresBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete blog", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("blog", id.String())
	}
	return nil
}

func (r *postgresBlogRepo) FindByID(ctx context.Context, id uuid.UUID) (*blog.Blog, error) {
	row := r.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blogs WHERE id = $1`, id)
	return scanBlog(row)
}

func (r *postgresBlogRepo) FindBySlug(ctx context.Context, slug string) (*blog.Blog, error) {
	row := r.db.QueryRow(ctx, `SELECT `+blogColumns+` FROM blogs WHERE slug = $1`, slug)
	return scanBlog(row)
}

func (r *postgresBlogRepo) FindBySlugAndCountView(ctx context.Context, slug string) (*blog.Blog, error) {
	query := `
		UPDATE blogs SET view_count = view_count + 1
		WHERE slug = $1 AND is_published
		RETURNING ` + blogColumns
	row := r.db.QueryRow(ctx, query, slug)
	return scanBlog(row)
}

func (r *postgresBlogRepo) SlugExists(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM blogs WHERE slug = $1 AND id <> $2)`,
		slug, excludeID,
	).Scan(&exists)
	if err != nil {
		return false, apperror.NewInternal("failed to check blog slug existence", err)
	}
	return exists, nil
}

func (r *postgresBlogRepo) List(ctx context.Context, publishedOnly bool, limit, offset int) ([]*blog.Blog, error) {
	builder := psqlBlog.Select(blogColumns).
		From("blogs").
		OrderBy("published_at DESC NULLS LAST", "created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if publishedOnly {
		builder = builder.Where(sq.Eq{"is_published": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list blogs query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query blogs", err)
	}
	return scanBlogs(rows)
}
