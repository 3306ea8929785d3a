package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/blogdoc"
	"github.com/fwojciec/blogdoc/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements blogdoc.Extractor at compile time.
var _ blogdoc.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Why We Rewrote Our Storage Engine - Example Blog</title>
<meta property="og:title" content="Why We Rewrote Our Storage Engine">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Why We Rewrote Our Storage Engine</h1>
<p>After two years of operating the old engine in production we decided to start over.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts article body", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/blog">Blog</a></nav>
<article>
<h1>Benchmarking io_uring</h1>
<p>We measured submission latency under sustained load and the results surprised us.</p>
<pre><code>fio --ioengine=io_uring --rw=randread --bs=4k</code></pre>
</article>
<aside>Related posts</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "results surprised us")
		assert.Contains(t, result.ContentHTML, "io_uring")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/about">About</a></li>
<li><a href="/blog">Blog</a></li>
</ul>
</nav>
<main>
<h1>Main Content</h1>
<p>This paragraph contains the actual article we want.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "actual article we want")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("removes footer and subscribe boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Post Title</h1>
<p>Article body with substantive content for readers of this engineering blog.</p>
</article>
<footer>
<p>Copyright 2024 Example Corp</p>
<nav>Privacy | Terms | Subscribe</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "substantive content")
		assert.NotContains(t, result.ContentHTML, "Copyright 2024 Example Corp")
	})

	t.Run("handles Ghost-style post markup", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Scaling Postgres | Example Blog</title>
<meta property="og:title" content="Scaling Postgres">
</head>
<body>
<nav class="gh-navigation">
<a href="/">Example Blog</a>
<a href="/tag/databases/">Databases</a>
</nav>
<main class="gh-main">
<article class="gh-article post">
<header class="gh-article-header">
<h1 class="gh-article-title">Scaling Postgres</h1>
</header>
<section class="gh-content">
<p>Our primary database crossed ten terabytes last month. Here is what broke.</p>
<h2>Connection pooling</h2>
<p>The first casualty was the connection pooler, which we replaced with pgbouncer.</p>
</section>
</article>
</main>
<footer class="gh-footer">
<p>Published with Ghost</p>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Here is what broke")
		assert.Contains(t, result.ContentHTML, "pgbouncer")
	})

	t.Run("preserves code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Code Example</title></head>
<body>
<article>
<h1>Zero-Copy Serialization</h1>
<p>Here is the hot path:</p>
<pre><code class="language-go">package main

import "fmt"

func main() {
    fmt.Println("Hello, World!")
}
</code></pre>
<p>And here is the build command: <code>go build ./...</code></p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "fmt.Println")
		// HTML rendering encodes quotes as &#34;
		assert.Contains(t, result.ContentHTML, "Hello, World!")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}
