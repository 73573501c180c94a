package signals

import (
	"strings"

	"github.com/kineticbrand/demandlab/internal/models"
)

// vendorKind separates platforms that prove analytics coverage from
// pixels that prove retargeting capability.
type vendorKind int

const (
	kindAnalytics vendorKind = iota
	kindRetargeting
)

// vendorSignatures is the fixed catalog of tracking-vendor markers
// matched case-insensitively against raw page HTML.
var vendorSignatures = []struct {
	name    string
	kind    vendorKind
	markers []string
}{
	{"Google Analytics", kindAnalytics, []string{"google-analytics.com", "gtag(", "ga('create"}},
	{"Google Tag Manager", kindAnalytics, []string{"googletagmanager.com"}},
	{"Segment", kindAnalytics, []string{"cdn.segment.com", "analytics.load("}},
	{"Hotjar", kindAnalytics, []string{"static.hotjar.com", "hj("}},
	{"HubSpot", kindAnalytics, []string{"js.hs-scripts.com", "hubspot"}},
	{"Intercom", kindAnalytics, []string{"widget.intercom.io", "intercom("}},
	{"Facebook Pixel", kindRetargeting, []string{"connect.facebook.net", "fbq("}},
	{"LinkedIn Insight", kindRetargeting, []string{"snap.licdn.com", "_linkedin_partner_id"}},
	{"Google Ads", kindRetargeting, []string{"googleadservices.com", "googlesyndication.com"}},
}

// conversionTextMarkers are a proxy for conversion tracking: sites with a
// post-submit page almost always carry one of these.
var conversionTextMarkers = []string{"thank you", "confirmation", "success"}

// AnalyzeTracking scans all page HTML for the vendor catalog plus the
// generic UTM and conversion heuristics. Flags are OR-accumulated: one
// matching page sets the flag for the whole site.
func AnalyzeTracking(pages []models.CrawledPage) models.TrackingSignals {
	var sig models.TrackingSignals
	vendorSeen := make(map[string]bool)
	utmPages := 0

	for _, p := range pages {
		lower := strings.ToLower(p.HTML)

		for _, vendor := range vendorSignatures {
			if vendorSeen[vendor.name] || !matchesAny(lower, vendor.markers) {
				continue
			}
			vendorSeen[vendor.name] = true
			sig.DetectedVendors = append(sig.DetectedVendors, vendor.name)
			switch vendor.kind {
			case kindAnalytics:
				sig.HasAnalytics = true
			case kindRetargeting:
				sig.HasRetargetingPixels = true
			}
		}

		if strings.Contains(lower, "utm_") {
			utmPages++
		}
		if !sig.HasConversionTracking && hasConversionProxy(lower) {
			sig.HasConversionTracking = true
		}
	}

	sig.UsesUTMs = utmPages > 0
	// Consistent means UTMs show up across the site, not on one stray
	// page: at least two pages and at least half of the crawl.
	sig.UTMConsistent = utmPages >= 2 && utmPages*2 >= len(pages)
	return sig
}

func matchesAny(haystack string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(haystack, m) {
			return true
		}
	}
	return false
}

// hasConversionProxy reports thank-you/confirmation text or a submitting
// form, either of which implies a conversion event exists to track.
func hasConversionProxy(lower string) bool {
	for _, m := range conversionTextMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	if strings.Contains(lower, "<form") &&
		(strings.Contains(lower, "submit") || strings.Contains(lower, "action=")) {
		return true
	}
	return false
}
