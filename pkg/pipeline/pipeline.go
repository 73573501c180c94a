// Package pipeline wires the pipeline stages together: crawl and
// analytics fetch run concurrently, signal extraction runs over the final
// page set, then confidence, scoring and synthesis run in sequence.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/kineticbrand/demandlab/internal/models"
	"github.com/kineticbrand/demandlab/pkg/analytics"
	"github.com/kineticbrand/demandlab/pkg/crawler"
	"github.com/kineticbrand/demandlab/pkg/scoring"
	"github.com/kineticbrand/demandlab/pkg/signals"
	"github.com/kineticbrand/demandlab/pkg/synthesis"
)

// Pipeline runs the full diagnostic for one target site.
type Pipeline struct {
	crawler  *crawler.Crawler
	provider analytics.Provider
	engine   *scoring.Engine
	log      *zap.Logger
}

// New assembles a pipeline. A nil provider means analytics is not
// configured and the run proceeds with zero analytics confidence.
func New(c *crawler.Crawler, provider analytics.Provider, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	return &Pipeline{
		crawler:  c,
		provider: provider,
		engine:   scoring.New(),
		log:      log,
	}
}

// Run executes the pipeline against target. It errors only on an unusable
// target URL; every data-source failure degrades to low confidence and
// floor scores instead.
func (p *Pipeline) Run(ctx context.Context, target string, companyType models.CompanyType, workspaceID string) (*models.DemandReport, error) {
	if companyType == "" {
		companyType = models.CompanyUnknown
	}

	var (
		crawl *models.CrawlResult
		snap  *models.AnalyticsSnapshot
	)

	// The analytics fetch has no ordering dependency on the crawl, so
	// the two run concurrently. Adapter failures are swallowed here;
	// only an invalid target aborts the run.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := p.crawler.Crawl(gctx, target)
		if err != nil {
			return fmt.Errorf("crawl %s: %w", target, err)
		}
		crawl = result
		return nil
	})
	g.Go(func() error {
		if p.provider == nil {
			return nil
		}
		s, err := p.provider.Snapshot(gctx, workspaceID)
		if err != nil {
			p.log.Warn("analytics unavailable, proceeding without snapshot", zap.Error(err))
			return nil
		}
		snap = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Extractors are pure functions of the final page set; each returns
	// its bundle and the orchestrator merges contributions afterward.
	sigs := signals.ExtractAll(crawl.Pages)
	confidence := analytics.EstimateConfidence(snap, len(crawl.Pages))

	out := p.engine.Score(scoring.Input{
		Signals:     sigs,
		Snapshot:    snap,
		Confidence:  confidence,
		CompanyType: companyType,
	})

	report := &models.DemandReport{
		RunID:       uuid.NewString(),
		Target:      target,
		Domain:      crawl.Domain,
		CompanyType: companyType,
		GeneratedAt: time.Now().UTC(),
		Confidence:  confidence,
		Signals:     sigs,
		Scoring:     out,
		Narrative:   synthesis.Narrative(crawl.Domain, out, confidence),
		QuickWins:   synthesis.QuickWins(out),
		Projects:    synthesis.Projects(out),
		Findings:    assembleFindings(crawl, sigs, snap),
	}

	p.log.Info("pipeline run complete",
		zap.String("run_id", report.RunID),
		zap.String("domain", report.Domain),
		zap.Int("overall_score", out.OverallScore),
		zap.String("maturity", string(out.MaturityStage)),
		zap.String("confidence", string(confidence.Level)))
	return report, nil
}

// assembleFindings merges the crawler's page rollup with the extractor
// contributions into one findings structure, preserving discovery order.
func assembleFindings(crawl *models.CrawlResult, sigs models.SignalSet, snap *models.AnalyticsSnapshot) models.DemandLabFindings {
	findings := models.DemandLabFindings{}

	for _, page := range crawl.Pages {
		findings.PagesAnalyzed = append(findings.PagesAnalyzed, models.PageFinding{
			URL:     page.URL,
			Type:    page.Type,
			Title:   page.Title,
			Excerpt: page.Excerpt,
			HasForm: page.HasForm,
			HasCTA:  page.HasCTA,
		})
	}

	for _, cta := range sigs.CTAs.CTAs {
		findings.CTAsFound = append(findings.CTAsFound, cta.Text)
	}
	findings.TrackingDetected = append(findings.TrackingDetected, sigs.Tracking.DetectedVendors...)

	lp := sigs.LandingPages
	findings.LandingPageInsights = append(findings.LandingPageInsights,
		fmt.Sprintf("%d landing page(s) identified", lp.Count))
	if lp.HasDedicatedLandingPages {
		findings.LandingPageInsights = append(findings.LandingPageInsights,
			"dedicated landing pages beyond the homepage")
	}
	if lp.HasClearOffer {
		findings.LandingPageInsights = append(findings.LandingPageInsights,
			"clear offer language on landing pages")
	}
	if lp.HasLeadCapture {
		findings.LandingPageInsights = append(findings.LandingPageInsights,
			"lead capture form present")
	}

	if snap != nil {
		for _, ch := range snap.Channels {
			if share, ok := snap.TrafficMix[ch]; ok {
				findings.ChannelInsights = append(findings.ChannelInsights,
					fmt.Sprintf("%s: %.0f%% of traffic", ch, share*100))
			} else {
				findings.ChannelInsights = append(findings.ChannelInsights, ch)
			}
		}
		if snap.PaidShare != nil {
			findings.ChannelInsights = append(findings.ChannelInsights,
				fmt.Sprintf("paid share: %.1f%%", *snap.PaidShare*100))
		}
	}
	return findings
}
