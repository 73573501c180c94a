package pipeline

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
	"github.com/kineticbrand/demandlab/pkg/analytics"
	"github.com/kineticbrand/demandlab/pkg/crawler"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func testCrawler() *crawler.Crawler {
	opts := crawler.DefaultOptions()
	opts.RequestsPerSecond = 100
	opts.PageTimeout = 5 * time.Second
	return crawler.New(opts, nil)
}

// newMarketingSite serves a three-page site: a homepage with a form and
// a generic CTA, a pricing page with no CTA, and a demo landing page.
func newMarketingSite(t *testing.T) *httptest.Server {
	t.Helper()
	padding := strings.Repeat("placeholder copy sentence for sizing purposes. ", 40)
	wrap := func(title, body string) string {
		return fmt.Sprintf(
			`<!DOCTYPE html><html><head><title>%s</title></head><body>%s<p>%s</p></body></html>`,
			title, body, padding)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, wrap("Acme", `
			<h1>Grow your pipeline</h1>
			<button>Get Started</button>
			<form action="/subscribe"><input type="email" name="email"></form>
			<a href="/pricing">Pricing</a>
			<a href="/demo">See it live</a>`))
	})
	mux.HandleFunc("/pricing", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, wrap("Pricing", `<h1>Pricing</h1>`))
	})
	mux.HandleFunc("/demo", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, wrap("Request a Demo", `<h1>Request a Demo</h1><button>Request Demo</button>`))
	})
	return httptest.NewServer(mux)
}

func TestRunWithoutAnalytics(t *testing.T) {
	server := newMarketingSite(t)
	defer server.Close()

	p := New(testCrawler(), nil, nil)
	report, err := p.Run(context.Background(), server.URL, models.CompanySaaS, "")
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "127.0.0.1", report.Domain)
	assert.Equal(t, models.CompanySaaS, report.CompanyType)
	assert.Len(t, report.Findings.PagesAnalyzed, 3)

	// The demo CTA outranks the generic homepage CTA.
	assert.True(t, report.Signals.CTAs.HasClearPrimaryCTA)
	assert.Equal(t, "Request Demo", report.Signals.CTAs.PrimaryCTA)
	assert.True(t, report.Signals.LandingPages.HasLeadCapture)
	assert.True(t, report.Signals.LandingPages.HasDedicatedLandingPages)

	// No analytics source: low confidence, capped maturity.
	assert.Equal(t, models.ConfidenceLow, report.Confidence.Level)
	require.NotNil(t, report.Scoring)
	assert.Equal(t, models.StageUnproven, report.Scoring.MaturityStage)
	assert.LessOrEqual(t, report.Scoring.OverallScore, 65)

	assert.NotEmpty(t, report.Narrative)
	assert.Contains(t, report.Narrative, "127.0.0.1")
	assert.NotEmpty(t, report.QuickWins)
	assert.NotEmpty(t, report.Projects)
	assert.Contains(t, report.Findings.CTAsFound, "Request Demo")
}

func TestRunWithAnalyticsSnapshot(t *testing.T) {
	server := newMarketingSite(t)
	defer server.Close()

	provider := analytics.StaticProvider{Snap: &models.AnalyticsSnapshot{
		TrafficMix:     map[string]float64{"organic": 0.5, "paid": 0.3, "referral": 0.2},
		Channels:       []string{"organic", "paid", "referral"},
		SessionVolume:  i64(5000),
		ConversionRate: f64(0.05),
		PaidShare:      f64(0.3),
	}}

	p := New(testCrawler(), provider, nil)
	report, err := p.Run(context.Background(), server.URL, models.CompanySaaS, "ws-1")
	require.NoError(t, err)

	assert.Equal(t, models.ConfidenceHigh, report.Confidence.Level)
	assert.NotEmpty(t, report.Findings.ChannelInsights)

	// The same site scores higher once real traffic and conversion data
	// back up the crawl evidence.
	withoutProvider := New(testCrawler(), nil, nil)
	baseline, err := withoutProvider.Run(context.Background(), server.URL, models.CompanySaaS, "")
	require.NoError(t, err)
	assert.Greater(t, report.Scoring.OverallScore, baseline.Scoring.OverallScore)
}

func TestRunAnalyticsFailureDegrades(t *testing.T) {
	server := newMarketingSite(t)
	defer server.Close()

	p := New(testCrawler(), failingProvider{}, nil)
	report, err := p.Run(context.Background(), server.URL, models.CompanyB2BServices, "ws-1")
	require.NoError(t, err)
	assert.Equal(t, models.ConfidenceLow, report.Confidence.Level)
}

func TestRunInvalidTarget(t *testing.T) {
	p := New(testCrawler(), nil, nil)
	_, err := p.Run(context.Background(), "https:///nohost", models.CompanySaaS, "")
	assert.Error(t, err)
}

func TestRunDefaultsCompanyType(t *testing.T) {
	server := newMarketingSite(t)
	defer server.Close()

	p := New(testCrawler(), nil, nil)
	report, err := p.Run(context.Background(), server.URL, "", "")
	require.NoError(t, err)
	assert.Equal(t, models.CompanyUnknown, report.CompanyType)
}

type failingProvider struct{}

func (failingProvider) Snapshot(context.Context, string) (*models.AnalyticsSnapshot, error) {
	return nil, fmt.Errorf("backend unavailable")
}
