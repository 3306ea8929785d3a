package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	blogdochttp "github.com/fwojciec/blogdoc/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServer serves the given path→body map, substituting {{BASE}}
// in bodies with the server's own URL.
func newTestServer(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(strings.ReplaceAll(body, "{{BASE}}", srv.URL)))
	}))
	return srv
}

func TestSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	t.Run("reads sitemap location from robots.txt", func(t *testing.T) {
		t.Parallel()

		robotsTxt := `User-agent: *
Disallow: /private/
Sitemap: {{BASE}}/sitemap.xml
`
		sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/blog/first-post/</loc></url>
  <url><loc>{{BASE}}/blog/second-post/</loc></url>
</urlset>`

		srv := newTestServer(t, map[string]string{
			"/robots.txt":  robotsTxt,
			"/sitemap.xml": sitemapXML,
		})
		defer srv.Close()

		svc := blogdochttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		assert.Contains(t, urls, srv.URL+"/blog/first-post/")
		assert.Contains(t, urls, srv.URL+"/blog/second-post/")
	})

	t.Run("falls back to /sitemap.xml without robots.txt", func(t *testing.T) {
		t.Parallel()

		sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/blog/a-post/</loc></url>
</urlset>`

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": sitemapXML,
		})
		defer srv.Close()

		svc := blogdochttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/blog/a-post/"}, urls)
	})

	t.Run("follows a sitemap index recursively", func(t *testing.T) {
		t.Parallel()

		indexXML := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/sitemap-posts.xml</loc></sitemap>
  <sitemap><loc>{{BASE}}/sitemap-pages.xml</loc></sitemap>
</sitemapindex>`
		postsXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/blog/one/</loc></url>
</urlset>`
		pagesXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/about/</loc></url>
</urlset>`

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml":       indexXML,
			"/sitemap-posts.xml": postsXML,
			"/sitemap-pages.xml": pagesXML,
		})
		defer srv.Close()

		svc := blogdochttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Len(t, urls, 2)
	})

	t.Run("scopes results to the base URL path", func(t *testing.T) {
		t.Parallel()

		sitemapXML := `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>{{BASE}}/blog/in-scope/</loc></url>
  <url><loc>{{BASE}}/docs/out-of-scope/</loc></url>
  <url><loc>{{BASE}}/blogging/also-out/</loc></url>
</urlset>`

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": sitemapXML,
		})
		defer srv.Close()

		svc := blogdochttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL+"/blog/")

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/blog/in-scope/"}, urls)
	})

	t.Run("returns empty slice when the site has no sitemap", func(t *testing.T) {
		t.Parallel()

		srv := newTestServer(t, map[string]string{})
		defer srv.Close()

		svc := blogdochttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.NotNil(t, urls)
		assert.Empty(t, urls)
	})

	t.Run("does not loop on self-referencing sitemap indexes", func(t *testing.T) {
		t.Parallel()

		indexXML := `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>{{BASE}}/sitemap.xml</loc></sitemap>
</sitemapindex>`

		srv := newTestServer(t, map[string]string{
			"/sitemap.xml": indexXML,
		})
		defer srv.Close()

		svc := blogdochttp.NewSitemapService(srv.Client())
		urls, err := svc.DiscoverURLs(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Empty(t, urls)
	})
}
