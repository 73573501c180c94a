package models

// AnalyticsSnapshot is the normalized view of an external reporting
// backend. Traffic mix shares are independently computed top-N values and
// need not sum to 1. ConversionRate is a fraction, not a percentage;
// values above 1.0 indicate upstream misconfiguration and are handled
// defensively downstream rather than rejected here.
type AnalyticsSnapshot struct {
	TrafficMix     map[string]float64 `json:"traffic_mix"`
	Channels       []string           `json:"channels"`
	ConversionRate *float64           `json:"conversion_rate,omitempty"`
	PaidShare      *float64           `json:"paid_share,omitempty"`
	SessionVolume  *int64             `json:"session_volume,omitempty"`
	Conversions    int64              `json:"conversions"`
}

// Sessions returns the session volume, or 0 when it is unknown.
func (s *AnalyticsSnapshot) Sessions() int64 {
	if s == nil || s.SessionVolume == nil {
		return 0
	}
	return *s.SessionVolume
}

// HasPaidTraffic reports whether a non-zero paid share is known.
func (s *AnalyticsSnapshot) HasPaidTraffic() bool {
	return s != nil && s.PaidShare != nil && *s.PaidShare > 0
}

// ConfidenceLevel is a coarse bucket over the confidence score.
type ConfidenceLevel string

const (
	ConfidenceLow    ConfidenceLevel = "low"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceHigh   ConfidenceLevel = "high"
)

// DataConfidence reflects how far the collected evidence supports
// trusting the computed scores.
type DataConfidence struct {
	Score  int             `json:"score"`
	Level  ConfidenceLevel `json:"level"`
	Reason string          `json:"reason"`
}
