package mock

import (
	"context"

	"github.com/fwojciec/blogdoc"
)

var _ blogdoc.BlogService = (*BlogService)(nil)

// BlogService is a mock implementation of blogdoc.BlogService.
type BlogService struct {
	CreateBlogFn   func(ctx context.Context, blog *blogdoc.Blog) error
	FindBlogByIDFn func(ctx context.Context, id string) (*blogdoc.Blog, error)
	FindBlogsFn    func(ctx context.Context, filter blogdoc.BlogFilter) ([]*blogdoc.Blog, error)
	DeleteBlogFn   func(ctx context.Context, id string) error
}

func (s *BlogService) CreateBlog(ctx context.Context, blog *blogdoc.Blog) error {
	return s.CreateBlogFn(ctx, blog)
}

func (s *BlogService) FindBlogByID(ctx context.Context, id string) (*blogdoc.Blog, error) {
	return s.FindBlogByIDFn(ctx, id)
}

func (s *BlogService) FindBlogs(ctx context.Context, filter blogdoc.BlogFilter) ([]*blogdoc.Blog, error) {
	return s.FindBlogsFn(ctx, filter)
}

func (s *BlogService) DeleteBlog(ctx context.Context, id string) error {
	return s.DeleteBlogFn(ctx, id)
}
