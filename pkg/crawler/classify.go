package crawler

import (
	"regexp"
	"strings"

	"github.com/kineticbrand/demandlab/internal/models"
)

// landingKeywords mark paths that exist to receive campaign traffic.
var landingKeywords = []string{
	"demo", "trial", "signup", "sign-up", "get-started", "start",
	"lp", "landing", "offer", "promo", "campaign", "webinar",
}

// classifyPath buckets a normalized path into a page type.
func classifyPath(path string) models.PageType {
	if path == "/" {
		return models.PageTypeHomepage
	}
	lower := strings.ToLower(path)
	switch {
	case strings.Contains(lower, "pricing") || strings.Contains(lower, "plans"):
		return models.PageTypePricing
	case strings.Contains(lower, "contact"):
		return models.PageTypeContact
	}
	for _, kw := range landingKeywords {
		if strings.Contains(lower, kw) {
			return models.PageTypeLanding
		}
	}
	return models.PageTypeOther
}

// inputMarkerRe matches the email/text/submit input markers that turn a
// bare <form> tag into a plausible lead-capture form.
var inputMarkerRe = regexp.MustCompile(`(?i)type=["']?(email|text|submit)`)

func detectForm(html string) bool {
	return strings.Contains(strings.ToLower(html), "<form") && inputMarkerRe.MatchString(html)
}

// ctaMarkers are the canonical call-to-action phrases checked at crawl
// time to set the page-level HasCTA flag.
var ctaMarkers = []string{
	"get started",
	"book a demo",
	"request a demo",
	"request demo",
	"start free trial",
	"free trial",
	"sign up",
	"contact sales",
	"talk to sales",
	"get a quote",
	"try for free",
}

func detectCTA(html string) bool {
	lower := strings.ToLower(html)
	for _, marker := range ctaMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
