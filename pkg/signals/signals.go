package signals

import "github.com/kineticbrand/demandlab/internal/models"

// ExtractAll runs the four extractors over the final page set and bundles
// their outputs. Extractors are independent and side-effect free, so the
// order here is only cosmetic.
func ExtractAll(pages []models.CrawledPage) models.SignalSet {
	return models.SignalSet{
		LandingPages: AnalyzeLandingPages(pages),
		CTAs:         AnalyzeCTAs(pages),
		Tracking:     AnalyzeTracking(pages),
		AdScent:      AnalyzeAdScent(pages),
	}
}
