package models

import "time"

// PageType classifies a crawled page by the role its path suggests.
type PageType string

const (
	PageTypeHomepage PageType = "homepage"
	PageTypeLanding  PageType = "landing"
	PageTypePricing  PageType = "pricing"
	PageTypeContact  PageType = "contact"
	PageTypeOther    PageType = "other"
)

// CrawledPage represents one fetched page. Instances are created once per
// successful fetch and never mutated afterward.
type CrawledPage struct {
	URL     string   `json:"url"`
	Path    string   `json:"path"`
	HTML    string   `json:"-"`
	Title   string   `json:"title,omitempty"`
	Excerpt string   `json:"excerpt,omitempty"`
	Type    PageType `json:"type"`
	HasForm bool     `json:"has_form"`
	HasCTA  bool     `json:"has_cta"`
}

// IsLandingPage reports whether the page counts as a landing surface.
// Dedicated landing pages and the homepage both qualify.
func (p CrawledPage) IsLandingPage() bool {
	return p.Type == PageTypeLanding || p.Type == PageTypeHomepage
}

// CrawlResult contains the bounded page set produced by one crawl run.
type CrawlResult struct {
	Domain     string        `json:"domain"`
	BaseURL    string        `json:"base_url"`
	Pages      []CrawledPage `json:"pages"`
	TotalPages int           `json:"total_pages"`
	CrawlTime  time.Time     `json:"crawl_time"`
}
