package models

// LandingPageSignals summarizes landing-page coverage across the crawl.
type LandingPageSignals struct {
	Count                    int      `json:"count"`
	HasDedicatedLandingPages bool     `json:"has_dedicated_landing_pages"`
	URLs                     []string `json:"urls"`
	HasClearOffer            bool     `json:"has_clear_offer"`
	HasLeadCapture           bool     `json:"has_lead_capture"`
}

// CTAType buckets a call to action by the behavior it asks for.
type CTAType string

const (
	CTADemo      CTAType = "demo"
	CTATrial     CTAType = "trial"
	CTAContact   CTAType = "contact"
	CTADownload  CTAType = "download"
	CTASubscribe CTAType = "subscribe"
	CTABuy       CTAType = "buy"
	CTALearn     CTAType = "learn"
	CTAOther     CTAType = "other"
)

// CTA is one deduplicated call to action found on the site.
// IsPrimary marks the first CTA discovered on its page.
type CTA struct {
	Text      string  `json:"text"`
	Type      CTAType `json:"type"`
	IsPrimary bool    `json:"is_primary"`
}

// CtaSignals summarizes the call-to-action surface of the site.
type CtaSignals struct {
	CTAs               []CTA     `json:"ctas"`
	Count              int       `json:"count"`
	PrimaryCTA         string    `json:"primary_cta,omitempty"`
	HasClearPrimaryCTA bool      `json:"has_clear_primary_cta"`
	Types              []CTAType `json:"types"`
	ClarityScore       int       `json:"clarity_score"`
	HasCompetingCTAs   bool      `json:"has_competing_ctas"`
}

// TrackingSignals reports measurement instrumentation detected anywhere on
// the site. Each flag is OR-accumulated across all pages.
type TrackingSignals struct {
	UsesUTMs              bool     `json:"uses_utms"`
	UTMConsistent         bool     `json:"utm_consistent"`
	HasConversionTracking bool     `json:"has_conversion_tracking"`
	HasAnalytics          bool     `json:"has_analytics"`
	HasRetargetingPixels  bool     `json:"has_retargeting_pixels"`
	DetectedVendors       []string `json:"detected_vendors"`
}

// MessageConsistency grades how repetitive the site's headline messaging is.
type MessageConsistency string

const (
	ConsistencyStrong   MessageConsistency = "strong"
	ConsistencyModerate MessageConsistency = "moderate"
	ConsistencyWeak     MessageConsistency = "weak"
	ConsistencyUnknown  MessageConsistency = "unknown"
)

// AdScentSignals reports whether the site looks built to receive paid
// traffic and how consistent its messaging is.
type AdScentSignals struct {
	HasAdLandingPatterns bool               `json:"has_ad_landing_patterns"`
	MessageConsistency   MessageConsistency `json:"message_consistency"`
}

// SignalSet bundles the four independent extractor outputs for one run.
type SignalSet struct {
	LandingPages LandingPageSignals `json:"landing_pages"`
	CTAs         CtaSignals         `json:"ctas"`
	Tracking     TrackingSignals    `json:"tracking"`
	AdScent      AdScentSignals     `json:"ad_scent"`
}
