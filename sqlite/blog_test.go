package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/blogdoc"
	"github.com/fwojciec/blogdoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogService_CreateBlog(t *testing.T) {
	t.Parallel()

	t.Run("assigns an ID and timestamps", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewBlogService(db)

		blog := &blogdoc.Blog{
			Name:      "cedardb",
			SourceURL: "https://cedardb.com/blog/",
			Title:     "CedarDB Blog",
			Parser:    "cedardb",
		}
		err := s.CreateBlog(context.Background(), blog)

		require.NoError(t, err)
		assert.NotEmpty(t, blog.ID)
		assert.False(t, blog.CreatedAt.IsZero())
		assert.False(t, blog.UpdatedAt.IsZero())
	})

	t.Run("rejects a blog without a name", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewBlogService(db)

		err := s.CreateBlog(context.Background(), &blogdoc.Blog{SourceURL: "https://x.com/"})

		require.Error(t, err)
		assert.Equal(t, blogdoc.EINVALID, blogdoc.ErrorCode(err))
	})
}

func TestBlogService_FindBlogByID(t *testing.T) {
	t.Parallel()

	t.Run("returns the stored blog", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewBlogService(db)
		ctx := context.Background()

		blog := &blogdoc.Blog{Name: "tb", SourceURL: "https://tigerbeetle.com/blog/"}
		require.NoError(t, s.CreateBlog(ctx, blog))

		got, err := s.FindBlogByID(ctx, blog.ID)

		require.NoError(t, err)
		assert.Equal(t, "tb", got.Name)
		assert.Equal(t, "https://tigerbeetle.com/blog/", got.SourceURL)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewBlogService(db)

		_, err := s.FindBlogByID(context.Background(), "no-such-id")

		require.Error(t, err)
		assert.Equal(t, blogdoc.ENOTFOUND, blogdoc.ErrorCode(err))
	})
}

func TestBlogService_FindBlogs(t *testing.T) {
	t.Parallel()

	t.Run("filters by name", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewBlogService(db)
		ctx := context.Background()

		require.NoError(t, s.CreateBlog(ctx, &blogdoc.Blog{Name: "a", SourceURL: "https://a.com/"}))
		require.NoError(t, s.CreateBlog(ctx, &blogdoc.Blog{Name: "b", SourceURL: "https://b.com/"}))

		name := "b"
		blogs, err := s.FindBlogs(ctx, blogdoc.BlogFilter{Name: &name})

		require.NoError(t, err)
		require.Len(t, blogs, 1)
		assert.Equal(t, "b", blogs[0].Name)
	})

	t.Run("returns all blogs without a filter", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewBlogService(db)
		ctx := context.Background()

		require.NoError(t, s.CreateBlog(ctx, &blogdoc.Blog{Name: "a", SourceURL: "https://a.com/"}))
		require.NoError(t, s.CreateBlog(ctx, &blogdoc.Blog{Name: "b", SourceURL: "https://b.com/"}))

		blogs, err := s.FindBlogs(ctx, blogdoc.BlogFilter{})

		require.NoError(t, err)
		assert.Len(t, blogs, 2)
	})
}

func TestBlogService_DeleteBlog(t *testing.T) {
	t.Parallel()

	t.Run("deletes the blog and cascades to its posts", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		blogs := sqlite.NewBlogService(db)
		posts := sqlite.NewPostService(db)
		ctx := context.Background()

		blog := &blogdoc.Blog{Name: "a", SourceURL: "https://a.com/blog/"}
		require.NoError(t, blogs.CreateBlog(ctx, blog))
		require.NoError(t, posts.CreatePost(ctx, &blogdoc.Post{
			BlogID: blog.ID,
			Title:  "A Post",
			URL:    "https://a.com/blog/a-post/",
		}))

		require.NoError(t, blogs.DeleteBlog(ctx, blog.ID))

		remaining, err := posts.FindPosts(ctx, blogdoc.PostFilter{BlogID: &blog.ID})
		require.NoError(t, err)
		assert.Empty(t, remaining)
	})

	t.Run("returns ENOTFOUND for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewBlogService(db)

		err := s.DeleteBlog(context.Background(), "no-such-id")

		require.Error(t, err)
		assert.Equal(t, blogdoc.ENOTFOUND, blogdoc.ErrorCode(err))
	})
}
