package models

import "time"

// QuickWin is a low-effort recommended action derived from a weak
// dimension score.
type QuickWin struct {
	ID          string       `json:"id"`
	Dimension   DimensionKey `json:"dimension"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Impact      string       `json:"impact"`
	Effort      string       `json:"effort"`
}

// Project is a strategic, multi-week initiative derived from the scoring
// output.
type Project struct {
	ID          string       `json:"id"`
	Dimension   DimensionKey `json:"dimension,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Rationale   string       `json:"rationale"`
}

// PageFinding is one row of the pages-analyzed rollup.
type PageFinding struct {
	URL     string   `json:"url"`
	Type    PageType `json:"type"`
	Title   string   `json:"title,omitempty"`
	Excerpt string   `json:"excerpt,omitempty"`
	HasForm bool     `json:"has_form"`
	HasCTA  bool     `json:"has_cta"`
}

// DemandLabFindings is the evidence rollup consumed by report surfaces.
// It is assembled by the orchestrator from per-extractor contributions
// after all extractors complete; extractors never write to it directly.
type DemandLabFindings struct {
	PagesAnalyzed       []PageFinding `json:"pages_analyzed"`
	CTAsFound           []string      `json:"ctas_found"`
	TrackingDetected    []string      `json:"tracking_detected"`
	LandingPageInsights []string      `json:"landing_page_insights"`
	ChannelInsights     []string      `json:"channel_insights"`
}

// DemandReport is the complete output of one pipeline run.
type DemandReport struct {
	RunID       string            `json:"run_id"`
	Target      string            `json:"target"`
	Domain      string            `json:"domain"`
	CompanyType CompanyType       `json:"company_type"`
	GeneratedAt time.Time         `json:"generated_at"`
	Confidence  DataConfidence    `json:"confidence"`
	Signals     SignalSet         `json:"signals"`
	Scoring     *ScoringOutput    `json:"scoring"`
	Narrative   string            `json:"narrative"`
	QuickWins   []QuickWin        `json:"quick_wins"`
	Projects    []Project         `json:"projects"`
	Findings    DemandLabFindings `json:"findings"`
}
