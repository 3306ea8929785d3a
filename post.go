package blogdoc

import (
	"context"
	"sort"
	"time"
)

// Post represents a single blog post. A post moves through two
// lifecycle phases: discovered (title, URL and usually a date are
// known, Content is empty) and hydrated (Content holds the extracted
// article body).
type Post struct {
	ID          string     `json:"id"`
	BlogID      string     `json:"blogId"`
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Date        *time.Time `json:"date"`
	Author      string     `json:"author"`
	Content     string     `json:"content"`
	ContentHash string     `json:"contentHash"`
	Position    int        `json:"position"`
	FetchedAt   time.Time  `json:"fetchedAt"`
}

// Validate returns an error if the post contains invalid fields.
func (p *Post) Validate() error {
	if p.Title == "" {
		return Errorf(EINVALID, "post title required")
	}
	if p.URL == "" {
		return Errorf(EINVALID, "post URL required")
	}
	return nil
}

// Hydrated reports whether the post's content has been fetched and
// extracted.
func (p *Post) Hydrated() bool {
	return p.Content != ""
}

// SortPosts orders posts for final assembly: by date descending (most
// recent first), posts without a date after all dated posts, ties and
// undated posts by title ascending. The sort is stable.
func SortPosts(posts []*Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		a, b := posts[i], posts[j]
		switch {
		case a.Date == nil && b.Date == nil:
			return a.Title < b.Title
		case a.Date == nil:
			return false
		case b.Date == nil:
			return true
		case a.Date.Equal(*b.Date):
			return a.Title < b.Title
		default:
			return a.Date.After(*b.Date)
		}
	})
}

// Discovery holds the outcome of one discovery run: the posts found
// across all index pages, the parser that found them, and the blog's
// resolved display title.
type Discovery struct {
	Posts  []*Post `json:"posts"`
	Parser Parser  `json:"-"`
	Title  string  `json:"title"`
}

// Blog represents an archived blog: one source URL and the posts
// discovered under it.
type Blog struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	SourceURL string    `json:"sourceUrl"`
	Title     string    `json:"title"`
	Parser    string    `json:"parser"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the blog contains invalid fields.
func (b *Blog) Validate() error {
	if b.Name == "" {
		return Errorf(EINVALID, "blog name required")
	}
	if b.SourceURL == "" {
		return Errorf(EINVALID, "blog source URL required")
	}
	return nil
}

// BlogFilter represents a filter for FindBlogs.
type BlogFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`
}

// BlogService represents a service for managing archived blogs.
type BlogService interface {
	// CreateBlog creates a new blog record.
	CreateBlog(ctx context.Context, blog *Blog) error

	// FindBlogByID retrieves a blog by ID.
	// Returns ENOTFOUND if the blog does not exist.
	FindBlogByID(ctx context.Context, id string) (*Blog, error)

	// FindBlogs retrieves blogs matching the filter.
	FindBlogs(ctx context.Context, filter BlogFilter) ([]*Blog, error)

	// DeleteBlog permanently removes a blog and its posts.
	// Returns ENOTFOUND if the blog does not exist.
	DeleteBlog(ctx context.Context, id string) error
}

// PostFilter represents a filter for FindPosts.
type PostFilter struct {
	ID     *string `json:"id"`
	BlogID *string `json:"blogId"`
	URL    *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// PostService represents a service for managing archived posts.
type PostService interface {
	// CreatePost stores a post.
	CreatePost(ctx context.Context, post *Post) error

	// FindPostByID retrieves a post by ID.
	// Returns ENOTFOUND if the post does not exist.
	FindPostByID(ctx context.Context, id string) (*Post, error)

	// FindPosts retrieves posts matching the filter, ordered for
	// assembly (date descending, undated last).
	FindPosts(ctx context.Context, filter PostFilter) ([]*Post, error)

	// DeletePostsByBlog removes all posts for a blog.
	DeletePostsByBlog(ctx context.Context, blogID string) error
}
