package mock

import (
	"context"

	"github.com/fwojciec/blogdoc"
)

var _ blogdoc.PostService = (*PostService)(nil)

// PostService is a mock implementation of blogdoc.PostService.
type PostService struct {
	CreatePostFn        func(ctx context.Context, post *blogdoc.Post) error
	FindPostByIDFn      func(ctx context.Context, id string) (*blogdoc.Post, error)
	FindPostsFn         func(ctx context.Context, filter blogdoc.PostFilter) ([]*blogdoc.Post, error)
	DeletePostsByBlogFn func(ctx context.Context, blogID string) error
}

func (s *PostService) CreatePost(ctx context.Context, post *blogdoc.Post) error {
	return s.CreatePostFn(ctx, post)
}

func (s *PostService) FindPostByID(ctx context.Context, id string) (*blogdoc.Post, error) {
	return s.FindPostByIDFn(ctx, id)
}

func (s *PostService) FindPosts(ctx context.Context, filter blogdoc.PostFilter) ([]*blogdoc.Post, error) {
	return s.FindPostsFn(ctx, filter)
}

func (s *PostService) DeletePostsByBlog(ctx context.Context, blogID string) error {
	return s.DeletePostsByBlogFn(ctx, blogID)
}
