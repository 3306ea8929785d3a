package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/blogdoc"
	main "github.com/fwojciec/blogdoc/cmd/blogdoc"
	"github.com/fwojciec/blogdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exportFixtures() (*mock.BlogService, *mock.PostService) {
	date := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	blogs := &mock.BlogService{
		FindBlogsFn: func(_ context.Context, filter blogdoc.BlogFilter) ([]*blogdoc.Blog, error) {
			if filter.Name != nil && *filter.Name == "cedardb" {
				return []*blogdoc.Blog{{
					ID:        "blog-123",
					Name:      "cedardb",
					SourceURL: "https://cedardb.com/blog/",
					Title:     "CedarDB Blog",
				}}, nil
			}
			return []*blogdoc.Blog{}, nil
		},
	}
	posts := &mock.PostService{
		FindPostsFn: func(_ context.Context, filter blogdoc.PostFilter) ([]*blogdoc.Post, error) {
			if filter.BlogID != nil && *filter.BlogID == "blog-123" {
				return []*blogdoc.Post{{
					ID:      "post-1",
					BlogID:  "blog-123",
					Title:   "Why Databases Are Hard",
					URL:     "https://cedardb.com/blog/why/",
					Date:    &date,
					Content: "<p>archived body</p>",
				}}, nil
			}
			return []*blogdoc.Post{}, nil
		},
	}
	return blogs, posts
}

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("writes HTML document from archived posts", func(t *testing.T) {
		t.Parallel()

		blogs, posts := exportFixtures()
		output := filepath.Join(t.TempDir(), "cedardb.html")
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: stdout,
			Stderr: &bytes.Buffer{},
			Blogs:  blogs,
			Posts:  posts,
		}

		cmd := &main.ExportCmd{Name: "cedardb", Output: output, Format: "html"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), output)

		written, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(written), "<h1>CedarDB Blog</h1>")
		assert.Contains(t, string(written), "Why Databases Are Hard")
		assert.Contains(t, string(written), "<p>archived body</p>")
	})

	t.Run("writes Markdown document from archived posts", func(t *testing.T) {
		t.Parallel()

		blogs, posts := exportFixtures()
		output := filepath.Join(t.TempDir(), "cedardb.md")
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Blogs:  blogs,
			Posts:  posts,
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					return "converted body", nil
				},
			},
		}

		cmd := &main.ExportCmd{Name: "cedardb", Output: output, Format: "markdown"}
		err := cmd.Run(deps)

		require.NoError(t, err)

		written, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(written), "# CedarDB Blog")
		assert.Contains(t, string(written), "## Why Databases Are Hard")
		assert.Contains(t, string(written), "converted body")
	})

	t.Run("derives the output name from the blog URL", func(t *testing.T) {
		t.Parallel()

		blogs, posts := exportFixtures()
		wd, err := os.Getwd()
		require.NoError(t, err)
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: &bytes.Buffer{},
			Blogs:  blogs,
			Posts:  posts,
		}

		cmd := &main.ExportCmd{Name: "cedardb", Format: "html"}
		err = cmd.Run(deps)

		require.NoError(t, err)
		defaultPath := filepath.Join(wd, "cedardb_com_blog.html")
		_, statErr := os.Stat(defaultPath)
		require.NoError(t, statErr)
		require.NoError(t, os.Remove(defaultPath))
	})

	t.Run("returns ENOTFOUND for unknown blog", func(t *testing.T) {
		t.Parallel()

		blogs, posts := exportFixtures()
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Blogs:  blogs,
			Posts:  posts,
		}

		cmd := &main.ExportCmd{Name: "missing", Format: "html"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, blogdoc.ENOTFOUND, blogdoc.ErrorCode(err))
	})

	t.Run("returns ENOTFOUND when blog has no posts", func(t *testing.T) {
		t.Parallel()

		blogs, _ := exportFixtures()
		posts := &mock.PostService{
			FindPostsFn: func(_ context.Context, _ blogdoc.PostFilter) ([]*blogdoc.Post, error) {
				return []*blogdoc.Post{}, nil
			},
		}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
			Blogs:  blogs,
			Posts:  posts,
		}

		cmd := &main.ExportCmd{Name: "cedardb", Format: "html"}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, blogdoc.ENOTFOUND, blogdoc.ErrorCode(err))
		assert.Contains(t, stderr.String(), "no posts")
	})
}
