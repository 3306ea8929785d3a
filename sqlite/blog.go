package sqlite

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/fwojciec/blogdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ blogdoc.BlogService = (*BlogService)(nil)

// BlogService implements blogdoc.BlogService using SQLite.
type BlogService struct {
	db *DB
}

// NewBlogService creates a new BlogService.
func NewBlogService(db *DB) *BlogService {
	return &BlogService{db: db}
}

// CreateBlog creates a new blog record.
func (s *BlogService) CreateBlog(ctx context.Context, blog *blogdoc.Blog) error {
	if err := blog.Validate(); err != nil {
		return err
	}

	blog.ID = uuid.New().String()
	now := time.Now().UTC()
	blog.CreatedAt = now
	blog.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO blogs (id, name, source_url, title, parser, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, blog.ID, blog.Name, blog.SourceURL, blog.Title, blog.Parser,
		blog.CreatedAt.Format(time.RFC3339), blog.UpdatedAt.Format(time.RFC3339))

	return err
}

// FindBlogByID retrieves a blog by ID.
func (s *BlogService) FindBlogByID(ctx context.Context, id string) (*blogdoc.Blog, error) {
	var blog blogdoc.Blog
	var createdAt, updatedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, source_url, title, parser, created_at, updated_at
		FROM blogs
		WHERE id = ?
	`, id).Scan(&blog.ID, &blog.Name, &blog.SourceURL, &blog.Title, &blog.Parser,
		&createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, blogdoc.Errorf(blogdoc.ENOTFOUND, "blog not found")
	}
	if err != nil {
		return nil, err
	}

	if blog.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if blog.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &blog, nil
}

// FindBlogs retrieves blogs matching the filter, newest first.
func (s *BlogService) FindBlogs(ctx context.Context, filter blogdoc.BlogFilter) ([]*blogdoc.Blog, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source_url, title, parser, created_at, updated_at FROM blogs WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY created_at DESC")

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []*blogdoc.Blog
	for rows.Next() {
		var blog blogdoc.Blog
		var createdAt, updatedAt string

		if err := rows.Scan(&blog.ID, &blog.Name, &blog.SourceURL, &blog.Title, &blog.Parser,
			&createdAt, &updatedAt); err != nil {
			return nil, err
		}

		if blog.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}
		if blog.UpdatedAt, err = parseRFC3339(updatedAt, "updated_at"); err != nil {
			return nil, err
		}

		blogs = append(blogs, &blog)
	}

	return blogs, rows.Err()
}

// DeleteBlog permanently removes a blog. Its posts cascade.
func (s *BlogService) DeleteBlog(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM blogs WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return blogdoc.Errorf(blogdoc.ENOTFOUND, "blog not found")
	}

	return nil
}
