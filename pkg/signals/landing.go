// Package signals holds the four independent signal extractors. Each is a
// pure function of the crawled page set: no shared state, no ordering
// dependency between extractors, and an empty page list yields zeroed
// defaults rather than an error.
package signals

import (
	"strings"

	"github.com/kineticbrand/demandlab/internal/models"
)

// offerWords are the action/value words whose co-occurrence with a
// heading marks a clear offer.
var offerWords = []string{"get ", "start ", "try ", "free", "demo", "trial"}

// AnalyzeLandingPages summarizes landing-page coverage. A page counts as
// landing when its classified type is landing or homepage; "dedicated"
// landing pages exclude the root path.
func AnalyzeLandingPages(pages []models.CrawledPage) models.LandingPageSignals {
	var sig models.LandingPageSignals

	for _, p := range pages {
		if p.HasForm {
			// Lead capture counts on any page, not just landing pages.
			sig.HasLeadCapture = true
		}
		if !p.IsLandingPage() {
			continue
		}
		sig.Count++
		sig.URLs = append(sig.URLs, p.URL)
		if p.Path != "/" {
			sig.HasDedicatedLandingPages = true
		}
		if !sig.HasClearOffer && hasClearOffer(p.HTML) {
			sig.HasClearOffer = true
		}
	}
	return sig
}

// hasClearOffer requires a top-level heading and one of the offer words
// co-occurring on the same page.
func hasClearOffer(html string) bool {
	lower := strings.ToLower(html)
	if !strings.Contains(lower, "<h1") && !strings.Contains(lower, "<h2") {
		return false
	}
	for _, w := range offerWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
