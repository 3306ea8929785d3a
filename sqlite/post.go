package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/blogdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ blogdoc.PostService = (*PostService)(nil)

// dateLayout is how post dates are stored. Dates carry no time of
// day, so the column holds just the calendar date.
const dateLayout = "2006-01-02"

// PostService implements blogdoc.PostService using SQLite.
type PostService struct {
	db *DB
}

// NewPostService creates a new PostService.
func NewPostService(db *DB) *PostService {
	return &PostService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreatePost stores a post.
func (s *PostService) CreatePost(ctx context.Context, post *blogdoc.Post) error {
	if err := post.Validate(); err != nil {
		return err
	}

	post.ID = uuid.New().String()
	post.FetchedAt = time.Now().UTC()
	post.ContentHash = hashContent(post.Content)

	var date any
	if post.Date != nil {
		date = post.Date.Format(dateLayout)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO posts (id, blog_id, title, url, date, author, content, content_hash, position, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, post.ID, post.BlogID, post.Title, post.URL, date, post.Author, post.Content,
		post.ContentHash, post.Position, post.FetchedAt.Format(time.RFC3339))

	return err
}

// FindPostByID retrieves a post by ID.
func (s *PostService) FindPostByID(ctx context.Context, id string) (*blogdoc.Post, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, blog_id, title, url, date, author, content, content_hash, position, fetched_at
		FROM posts
		WHERE id = ?
	`, id)

	post, err := scanPost(row.Scan)
	if err == sql.ErrNoRows {
		return nil, blogdoc.Errorf(blogdoc.ENOTFOUND, "post not found")
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

// FindPosts retrieves posts matching the filter, ordered for assembly:
// date descending, undated posts last, title ascending within ties.
func (s *PostService) FindPosts(ctx context.Context, filter blogdoc.PostFilter) ([]*blogdoc.Post, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, blog_id, title, url, date, author, content, content_hash, position, fetched_at FROM posts WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.BlogID != nil {
		query.WriteString(" AND blog_id = ?")
		args = append(args, *filter.BlogID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY date IS NULL ASC, date DESC, title ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*blogdoc.Post
	for rows.Next() {
		post, err := scanPost(rows.Scan)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	return posts, rows.Err()
}

// DeletePostsByBlog removes all posts for a blog.
func (s *PostService) DeletePostsByBlog(ctx context.Context, blogID string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM posts WHERE blog_id = ?", blogID)
	return err
}

// scanPost reads one posts row through the given scan function.
func scanPost(scan func(dest ...any) error) (*blogdoc.Post, error) {
	var post blogdoc.Post
	var date sql.NullString
	var fetchedAt string

	if err := scan(&post.ID, &post.BlogID, &post.Title, &post.URL, &date, &post.Author,
		&post.Content, &post.ContentHash, &post.Position, &fetchedAt); err != nil {
		return nil, err
	}

	if date.Valid {
		t, err := time.Parse(dateLayout, date.String)
		if err != nil {
			return nil, blogdoc.Errorf(blogdoc.EINTERNAL, "failed to parse date: %v", err)
		}
		post.Date = &t
	}

	var err error
	if post.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at"); err != nil {
		return nil, err
	}

	return &post, nil
}
