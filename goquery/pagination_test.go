package goquery_test

import (
	"testing"

	"github.com/fwojciec/blogdoc/goquery"
	"github.com/stretchr/testify/assert"
)

func TestPaginator_NextPage(t *testing.T) {
	t.Parallel()

	t.Run("follows an older posts link", func(t *testing.T) {
		t.Parallel()

		html := `<nav>
<a href="/blog/">Newest</a>
<a href="/blog/page/2/">Older Posts →</a>
</nav>`

		p := goquery.NewPaginator()
		next := p.NextPage(html, "https://example.com/blog/")

		assert.Equal(t, "https://example.com/blog/page/2/", next)
	})

	t.Run("older posts beats numbered page links", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/blog/page/9/">9</a>
<a href="/blog/archive/">older posts</a>`

		p := goquery.NewPaginator()
		next := p.NextPage(html, "https://example.com/blog/")

		assert.Equal(t, "https://example.com/blog/archive/", next)
	})

	t.Run("picks the highest page number past the current page", func(t *testing.T) {
		t.Parallel()

		html := `<div class="pagination">
<a href="/blog/page/1/">1</a>
<a href="/blog/page/2/">2</a>
<a href="/blog/page/4/">4</a>
</div>`

		p := goquery.NewPaginator()
		next := p.NextPage(html, "https://example.com/blog/page/2/")

		assert.Equal(t, "https://example.com/blog/page/4/", next)
	})

	t.Run("ignores page links at or below the current page", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/blog/page/1/">1</a>
<a href="/blog/page/2/">2</a>`

		p := goquery.NewPaginator()
		next := p.NextPage(html, "https://example.com/blog/page/2/")

		assert.Empty(t, next)
	})

	t.Run("falls back to next page phrasing", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/blog/?offset=10">Next Page →</a>`

		p := goquery.NewPaginator()
		next := p.NextPage(html, "https://example.com/blog/")

		assert.Equal(t, "https://example.com/blog/?offset=10", next)
	})

	t.Run("ignores unrelated anchors and short arrows", func(t *testing.T) {
		t.Parallel()

		html := `<a href="/blog/a-post/">A Post About Things</a>
<a href="/blog/next-steps/">»</a>`

		p := goquery.NewPaginator()
		next := p.NextPage(html, "https://example.com/blog/")

		assert.Empty(t, next)
	})

	t.Run("returns empty for pages without links", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewPaginator()
		assert.Empty(t, p.NextPage("<p>no links here</p>", "https://example.com/blog/"))
	})
}
