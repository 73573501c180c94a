package crawler

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kineticbrand/demandlab/internal/models"
)

// testOptions removes the polite-crawl throttling so tests run fast.
func testOptions() Options {
	opts := DefaultOptions()
	opts.RequestsPerSecond = 100
	opts.PageTimeout = 5 * time.Second
	return opts
}

// testPage pads the body past the soft-404 thresholds so probed pages
// are not mistaken for thin error pages.
func testPage(title, body string) string {
	padding := strings.Repeat("placeholder copy sentence for sizing purposes. ", 40)
	return fmt.Sprintf(
		`<!DOCTYPE html><html><head><title>%s</title></head><body>%s<p>%s</p></body></html>`,
		title, body, padding)
}

func newTestSite(t *testing.T, robots string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, testPage("Acme", `
			<h1>Pipeline on autopilot</h1>
			<button>Get Started</button>
			<form action="/subscribe"><input type="email" name="email"></form>
			<a href="/pricing">Pricing</a>
			<a href="/demo">Request a Demo</a>
			<a href="https://elsewhere.example/partner">Partner site</a>`))
	})
	mux.HandleFunc("/pricing", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testPage("Pricing", `<h1>Pricing</h1>`))
	})
	mux.HandleFunc("/demo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testPage("Request a Demo", `<h1>Request a Demo</h1><button>Request Demo</button>`))
	})
	// Soft 404s: a not-found marker page and a thin body.
	mux.HandleFunc("/contact", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, testPage("Oops", `<h1>Page not found</h1>`))
	})
	mux.HandleFunc("/trial", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	})
	if robots != "" {
		mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, robots)
		})
	}
	return httptest.NewServer(mux)
}

func pagePaths(result *models.CrawlResult) []string {
	paths := make([]string, 0, len(result.Pages))
	for _, p := range result.Pages {
		paths = append(paths, p.Path)
	}
	return paths
}

func TestCrawlStagedDiscovery(t *testing.T) {
	server := newTestSite(t, "")
	defer server.Close()

	c := New(testOptions(), nil)
	result, err := c.Crawl(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, []string{"/", "/pricing", "/demo"}, pagePaths(result))

	home := result.Pages[0]
	assert.Equal(t, models.PageTypeHomepage, home.Type)
	assert.Equal(t, "Acme", home.Title)
	assert.True(t, home.HasForm)
	assert.True(t, home.HasCTA)

	assert.Equal(t, models.PageTypePricing, result.Pages[1].Type)
	assert.Equal(t, models.PageTypeLanding, result.Pages[2].Type)

	// The not-found marker page and the thin body page were probed but
	// rejected as soft 404s.
	assert.NotContains(t, pagePaths(result), "/contact")
	assert.NotContains(t, pagePaths(result), "/trial")
}

func TestCrawlRespectsRobots(t *testing.T) {
	server := newTestSite(t, "User-agent: *\nDisallow: /pricing\n")
	defer server.Close()

	c := New(testOptions(), nil)
	result, err := c.Crawl(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, pagePaths(result), "/")
	assert.Contains(t, pagePaths(result), "/demo")
	assert.NotContains(t, pagePaths(result), "/pricing")
}

func TestCrawlMaxPagesCap(t *testing.T) {
	server := newTestSite(t, "")
	defer server.Close()

	opts := testOptions()
	opts.MaxPages = 2
	c := New(opts, nil)
	result, err := c.Crawl(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, 2, result.TotalPages)
	assert.Equal(t, []string{"/", "/pricing"}, pagePaths(result))
}

func TestCrawlUnreachableSite(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	c := New(testOptions(), nil)
	result, err := c.Crawl(context.Background(), url)
	require.NoError(t, err)
	assert.Empty(t, result.Pages)
	assert.Equal(t, 0, result.TotalPages)
}

func TestCrawlInvalidBaseURL(t *testing.T) {
	c := New(testOptions(), nil)

	_, err := c.Crawl(context.Background(), "https:///nohost")
	assert.Error(t, err)

	_, err = c.Crawl(context.Background(), "ht tp://bad host")
	assert.Error(t, err)
}
