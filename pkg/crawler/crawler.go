package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/temoto/robotstxt"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kineticbrand/demandlab/internal/models"
	"github.com/kineticbrand/demandlab/pkg/extractor"
	"github.com/kineticbrand/demandlab/pkg/utils"
)

const (
	// Soft-404 heuristics: followed links with tiny bodies and probed
	// paths that are thin or carry a not-found marker are skipped.
	minLinkedBodyBytes = 500
	minProbedBodyBytes = 1000
	notFoundMarker     = "page not found"

	excerptLength = 400
)

// keyPathKeywords select which discovered internal links are worth
// following: paths whose normalized form contains one of these.
var keyPathKeywords = []string{
	"demo", "pricing", "contact", "trial", "get-started", "signup",
	"sign-up", "start", "book", "quote", "features", "product",
	"solutions", "services", "plans",
}

// wellKnownPaths are probed directly regardless of whether the homepage
// links to them. Marketing sites hide half of these behind JS navigation.
var wellKnownPaths = []string{
	"/demo", "/request-demo", "/book-a-demo",
	"/pricing", "/plans",
	"/contact", "/contact-us",
	"/get-started", "/signup", "/sign-up",
	"/free-trial", "/trial",
	"/features", "/product", "/products",
	"/solutions", "/services",
	"/get-a-quote", "/quote",
}

// Options configures a crawl run.
type Options struct {
	MaxPages          int           // total page cap, homepage included
	MaxLinkFollows    int           // cap on followed homepage links
	PageTimeout       time.Duration // per-fetch hard timeout
	UserAgent         string
	RequestsPerSecond int
	RespectRobots     bool
}

// DefaultOptions returns the bounds the diagnostic pipeline runs with.
func DefaultOptions() Options {
	return Options{
		MaxPages:          12,
		MaxLinkFollows:    8,
		PageTimeout:       10 * time.Second,
		UserAgent:         "DemandLab/1.0 (+https://kineticbrand.io/demandlab)",
		RequestsPerSecond: 5,
		RespectRobots:     true,
	}
}

// Crawler fetches a bounded set of candidate pages from a target site.
// Every individual fetch failure is swallowed: an unreachable site yields
// an empty but valid result, never an error.
type Crawler struct {
	client  *http.Client
	opts    Options
	limiter *rate.Limiter
	log     *zap.Logger
}

// New creates a Crawler with the given options.
func New(opts Options, log *zap.Logger) *Crawler {
	if opts.MaxPages <= 0 {
		opts.MaxPages = DefaultOptions().MaxPages
	}
	if opts.MaxLinkFollows <= 0 {
		opts.MaxLinkFollows = DefaultOptions().MaxLinkFollows
	}
	if opts.PageTimeout <= 0 {
		opts.PageTimeout = DefaultOptions().PageTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultOptions().UserAgent
	}
	if opts.RequestsPerSecond <= 0 {
		opts.RequestsPerSecond = DefaultOptions().RequestsPerSecond
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Crawler{
		client:  &http.Client{},
		opts:    opts,
		limiter: rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), opts.RequestsPerSecond),
		log:     log,
	}
}

// Crawl runs the three-stage fetch plan: homepage, key internal links,
// well-known marketing paths. It only errors on an unusable base URL.
func (c *Crawler) Crawl(ctx context.Context, baseURL string) (*models.CrawlResult, error) {
	base, err := parseBase(baseURL)
	if err != nil {
		return nil, err
	}

	result := &models.CrawlResult{
		Domain:    base.Hostname(),
		BaseURL:   base.String(),
		CrawlTime: time.Now().UTC(),
	}

	robots := c.fetchRobots(ctx, base)
	seen := make(map[string]bool)

	// Stage 1: homepage. Failure here still lets the path probe run; a
	// fully unreachable site produces an empty page list.
	homepage, ok := c.fetchPage(ctx, base, robots, base.String()+"/", 0)
	if ok {
		result.Pages = append(result.Pages, homepage)
		seen[homepage.Path] = true
	} else {
		c.log.Warn("homepage unreachable, continuing with path probe",
			zap.String("url", base.String()))
	}

	// Stage 2: follow key internal links discovered on the homepage.
	if ok {
		followed := 0
		for _, link := range extractor.Links(homepage.HTML, homepage.URL) {
			if followed >= c.opts.MaxLinkFollows || len(result.Pages) >= c.opts.MaxPages {
				break
			}
			if !extractor.SameOrigin(base.String(), link.URL) {
				continue
			}
			path := utils.NormalizePath(pathOf(link.URL))
			if seen[path] || !isKeyPath(path) {
				continue
			}
			page, fetched := c.fetchPage(ctx, base, robots, link.URL, minLinkedBodyBytes)
			followed++
			if !fetched {
				continue
			}
			seen[page.Path] = true
			result.Pages = append(result.Pages, page)
		}
	}

	// Stage 3: probe well-known marketing paths directly.
	for _, path := range wellKnownPaths {
		if len(result.Pages) >= c.opts.MaxPages {
			break
		}
		normalized := utils.NormalizePath(path)
		if seen[normalized] {
			continue
		}
		page, fetched := c.fetchPage(ctx, base, robots, base.String()+path, minProbedBodyBytes)
		if !fetched || containsNotFound(page.HTML) {
			continue
		}
		seen[page.Path] = true
		result.Pages = append(result.Pages, page)
	}

	result.TotalPages = len(result.Pages)
	c.log.Info("crawl complete",
		zap.String("domain", result.Domain),
		zap.Int("pages", result.TotalPages))
	return result, nil
}

// fetchPage downloads and classifies a single page. minBytes of 0 skips
// the thin-body check. All failures are reported as !ok, never errors.
func (c *Crawler) fetchPage(ctx context.Context, base *url.URL, robots *robotstxt.RobotsData, pageURL string, minBytes int) (models.CrawledPage, bool) {
	var zero models.CrawledPage

	if robots != nil && !robots.TestAgent(pathOf(pageURL), c.opts.UserAgent) {
		c.log.Debug("skipped by robots.txt", zap.String("url", pageURL))
		return zero, false
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return zero, false
	}

	fetchCtx, cancel := context.WithTimeout(ctx, c.opts.PageTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, pageURL, nil)
	if err != nil {
		return zero, false
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("fetch failed", zap.String("url", pageURL), zap.Error(err))
		return zero, false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Debug("non-2xx response",
			zap.String("url", pageURL), zap.Int("status", resp.StatusCode))
		return zero, false
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, false
	}
	if minBytes > 0 && len(body) < minBytes {
		c.log.Debug("thin body, treating as soft 404",
			zap.String("url", pageURL), zap.Int("bytes", len(body)))
		return zero, false
	}

	htmlBody := string(body)
	path := utils.NormalizePath(pathOf(pageURL))
	page := models.CrawledPage{
		URL:     pageURL,
		Path:    path,
		HTML:    htmlBody,
		Title:   extractor.Title(htmlBody),
		Excerpt: extractor.Excerpt(htmlBody, excerptLength),
		Type:    classifyPath(path),
		HasForm: detectForm(htmlBody),
		HasCTA:  detectCTA(htmlBody),
	}
	c.log.Debug("fetched page",
		zap.String("url", pageURL), zap.String("type", string(page.Type)))
	return page, true
}

// fetchRobots loads robots.txt best-effort. Any failure means "allowed".
func (c *Crawler) fetchRobots(ctx context.Context, base *url.URL) *robotstxt.RobotsData {
	if !c.opts.RespectRobots {
		return nil
	}
	fetchCtx, cancel := context.WithTimeout(ctx, c.opts.PageTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(fetchCtx, http.MethodGet, base.String()+"/robots.txt", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	resp, err := c.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}
	robots, err := robotstxt.FromResponse(resp)
	if err != nil {
		return nil
	}
	return robots
}

func parseBase(raw string) (*url.URL, error) {
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid URL %q: %w", raw, err)
	}
	if u.Hostname() == "" {
		return nil, fmt.Errorf("invalid URL %q: missing host", raw)
	}
	// Keep only the site root; paths are appended per stage.
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

func pathOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "/"
	}
	if u.Path == "" {
		return "/"
	}
	return u.Path
}

func isKeyPath(path string) bool {
	lower := strings.ToLower(path)
	for _, kw := range keyPathKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func containsNotFound(html string) bool {
	return strings.Contains(strings.ToLower(html), notFoundMarker)
}
