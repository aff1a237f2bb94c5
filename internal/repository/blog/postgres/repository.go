package blog_repository_postgres

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"blog-service/internal/custom_errors"
	"blog-service/internal/logger"
	"blog-service/internal/metrics"
	"blog-service/internal/model"
	"blog-service/internal/repository/postgres/db"
)

const blogColumns = `id, title, content, author, is_published, created_at, updated_at, seq`

type BlogRepository struct {
	log     *logger.Logger
	db      db.PgDB
	metrics metrics.MetricsProvider
}

func NewBlogRepository(db db.PgDB, log *logger.Logger, metrics metrics.MetricsProvider) *BlogRepository {
	return &BlogRepository{db: db, log: log, metrics: metrics}
}

func (p *BlogRepository) observe(queryType string, start time.Time, success bool) {
	p.metrics.IncrementDatabaseQueries(queryType, success)
	p.metrics.RecordDatabaseQueryDuration(queryType, time.Since(start))
}

func scanBlog(row pgx.Row, blog *model.Blog) error {
	return row.Scan(
		&blog.ID,
		&blog.Title,
		&blog.Content,
		&blog.Author,
		&blog.IsPublished,
		&blog.CreatedAt,
		&blog.UpdatedAt,
		&blog.Seq,
	)
}

func (p *BlogRepository) Create(ctx context.Context, blog *model.Blog) (*model.Blog, error) {
	start := time.Now()
	p.log.Debug("Creating new blog", slog.String("author", blog.Author), slog.String("title", blog.Title))

	id := blog.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	now := pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}

	args := pgx.NamedArgs{
		"id":           id,
		"title":        blog.Title,
		"content":      blog.Content,
		"author":       blog.Author,
		"is_published": blog.IsPublished,
		"created_at":   now,
		"updated_at":   now,
	}

	query := `
		INSERT INTO blogs (id, title, content, author, is_published, created_at, updated_at)
		VALUES (@id, @title, @content, @author, @is_published, @created_at, @updated_at)
		RETURNING ` + blogColumns

	var created model.Blog
	if err := scanBlog(p.db.QueryRow(ctx, query, args), &created); err != nil {
		p.observe("blog_create", start, false)
		p.log.Error("Error creating blog", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("blog_create", start, true)
	p.log.Debug("Successfully created blog", slog.String("id", created.ID.String()), slog.String("author", created.Author))
	return &created, nil
}

func (p *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	start := time.Now()

	args := pgx.NamedArgs{"id": id}
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE id = @id`

	blog := &model.Blog{}
	if err := scanBlog(p.db.QueryRow(ctx, query, args), blog); err != nil {
		p.observe("blog_get_by_id", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Blog not found by id", slog.String("id", id.String()))
			return nil, custom_errors.ErrBlogNotFound
		}
		p.log.Error("Error getting blog by id", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("blog_get_by_id", start, true)
	return blog, nil
}

func (p *BlogRepository) GetByAuthor(ctx context.Context, author string) ([]*model.Blog, error) {
	start := time.Now()
	p.log.Debug("Getting blogs by author", slog.String("author", author))

	args := pgx.NamedArgs{"author": author}
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE author = @author ORDER BY created_at DESC, seq ASC`

	blogs, err := p.queryBlogs(ctx, query, args)
	if err != nil {
		p.observe("blog_get_by_author", start, false)
		p.log.Error("Error getting blogs by author", slog.String("author", author), slog.String("error", err.Error()))
		return nil, err
	}

	p.observe("blog_get_by_author", start, true)
	p.log.Debug("Successfully retrieved blogs by author", slog.String("author", author), slog.Int("count", len(blogs)))
	return blogs, nil
}

func (p *BlogRepository) Update(ctx context.Context, id uuid.UUID, update *model.UpdateBlogDTO) (*model.Blog, error) {
	start := time.Now()

	if update.IsEmpty() {
		p.log.Debug("No fields to update", slog.String("id", id.String()))
		return nil, custom_errors.ErrNoUpdateFields
	}

	setClauses := []string{}
	args := pgx.NamedArgs{"id": id}

	if update.Title != nil {
		setClauses = append(setClauses, "title = @title")
		args["title"] = *update.Title
	}
	if update.Content != nil {
		setClauses = append(setClauses, "content = @content")
		args["content"] = *update.Content
	}
	if update.IsPublished != nil {
		setClauses = append(setClauses, "is_published = @is_published")
		args["is_published"] = *update.IsPublished
	}

	setClauses = append(setClauses, "updated_at = @updated_at")
	args["updated_at"] = pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}

	query := "UPDATE blogs SET " + strings.Join(setClauses, ", ") + " WHERE id = @id RETURNING " + blogColumns

	var updated model.Blog
	if err := scanBlog(p.db.QueryRow(ctx, query, args), &updated); err != nil {
		p.observe("blog_update", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Blog not found by id during Update", slog.String("id", id.String()))
			return nil, custom_errors.ErrBlogNotFound
		}
		p.log.Error("Error updating blog", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("blog_update", start, true)
	p.log.Debug("Successfully updated blog", slog.String("id", updated.ID.String()), slog.Time("updated_at", updated.UpdatedAt.Time))
	return &updated, nil
}

func (p *BlogRepository) Delete(ctx context.Context, id uuid.UUID) (*model.Blog, error) {
	start := time.Now()

	args := pgx.NamedArgs{"id": id}
	query := `DELETE FROM blogs WHERE id = @id RETURNING ` + blogColumns

	var deleted model.Blog
	if err := scanBlog(p.db.QueryRow(ctx, query, args), &deleted); err != nil {
		p.observe("blog_delete", start, false)
		if errors.Is(err, pgx.ErrNoRows) {
			p.log.Debug("Blog not found during deletion", slog.String("id", id.String()))
			return nil, custom_errors.ErrBlogNotFound
		}
		p.log.Error("Error deleting blog", slog.String("id", id.String()), slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	p.observe("blog_delete", start, true)
	p.log.Debug("Successfully deleted blog", slog.String("id", id.String()))
	return &deleted, nil
}

func (p *BlogRepository) List(ctx context.Context, filters model.BlogFilters) ([]*model.Blog, int, error) {
	start := time.Now()
	p.log.Debug("Listing blogs with filters",
		slog.Any("author", filters.Author),
		slog.Any("is_published", filters.IsPublished),
		slog.Any("limit", filters.Limit),
		slog.Any("offset", filters.Offset))

	args := pgx.NamedArgs{}
	whereClauses := []string{}

	if filters.Author != nil {
		whereClauses = append(whereClauses, "author = @author")
		args["author"] = *filters.Author
	}
	if filters.IsPublished != nil {
		whereClauses = append(whereClauses, "is_published = @is_published")
		args["is_published"] = *filters.IsPublished
	}

	condition := ""
	if len(whereClauses) > 0 {
		condition = " WHERE " + strings.Join(whereClauses, " AND ")
	}

	query := `SELECT ` + blogColumns + ` FROM blogs` + condition + ` ORDER BY created_at DESC, seq ASC`
	if filters.Limit != nil {
		query += " LIMIT @limit"
		args["limit"] = *filters.Limit
	}
	if filters.Offset != nil {
		query += " OFFSET @offset"
		args["offset"] = *filters.Offset
	}

	blogs, err := p.queryBlogs(ctx, query, args)
	if err != nil {
		p.observe("blog_list", start, false)
		p.log.Error("Error listing blogs", slog.String("error", err.Error()))
		return nil, 0, err
	}

	countArgs := make(pgx.NamedArgs)
	for k, v := range args {
		if k != "limit" && k != "offset" {
			countArgs[k] = v
		}
	}

	var total int
	if err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM blogs`+condition, countArgs).Scan(&total); err != nil {
		p.observe("blog_list", start, false)
		p.log.Error("Error counting blogs", slog.String("error", err.Error()))
		return nil, 0, custom_errors.ErrDatabaseQuery
	}

	p.observe("blog_list", start, true)
	p.log.Debug("Listed blogs", slog.Int("count", len(blogs)), slog.Int("total", total))
	return blogs, total, nil
}

func (p *BlogRepository) Ping(ctx context.Context) error {
	if err := p.db.Ping(ctx); err != nil {
		p.log.Error("Database ping failed", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	return nil
}

func (p *BlogRepository) queryBlogs(ctx context.Context, query string, args pgx.NamedArgs) ([]*model.Blog, error) {
	rows, err := p.db.Query(ctx, query, args)
	if err != nil {
		p.log.Error("Error executing blog query", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}
	defer rows.Close()

	blogs := make([]*model.Blog, 0)
	for rows.Next() {
		var blog model.Blog
		if err := scanBlog(rows, &blog); err != nil {
			p.log.Error("Error scanning blog", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseScan
		}
		blogs = append(blogs, &blog)
	}

	if err := rows.Err(); err != nil {
		p.log.Error("Error iterating blog rows", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return blogs, nil
}
