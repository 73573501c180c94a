package models

// CompanyType is the declared business model of the assessed company.
// It changes which penalty branches apply during scoring.
type CompanyType string

const (
	CompanyB2BServices  CompanyType = "b2b_services"
	CompanyLocalService CompanyType = "local_service"
	CompanyEcommerce    CompanyType = "ecommerce"
	CompanySaaS         CompanyType = "saas"
	CompanyOther        CompanyType = "other"
	CompanyUnknown      CompanyType = "unknown"
)

// DimensionKey identifies one of the five fixed scoring axes.
type DimensionKey string

const (
	DimChannelMix  DimensionKey = "channelMix"
	DimTargeting   DimensionKey = "targeting"
	DimCreative    DimensionKey = "creative"
	DimFunnel      DimensionKey = "funnel"
	DimMeasurement DimensionKey = "measurement"
)

// DimensionKeys lists the five axes in canonical order.
var DimensionKeys = []DimensionKey{
	DimChannelMix, DimTargeting, DimCreative, DimFunnel, DimMeasurement,
}

// Label returns the human-readable dimension name used as issue category.
func (k DimensionKey) Label() string {
	switch k {
	case DimChannelMix:
		return "Channel Mix"
	case DimTargeting:
		return "Targeting"
	case DimCreative:
		return "Creative"
	case DimFunnel:
		return "Funnel"
	case DimMeasurement:
		return "Measurement"
	}
	return string(k)
}

// DimensionStatus buckets a dimension score.
type DimensionStatus string

const (
	StatusWeak     DimensionStatus = "weak"     // score < 50
	StatusModerate DimensionStatus = "moderate" // 50–69
	StatusStrong   DimensionStatus = "strong"   // >= 70
)

// Severity grades how urgent an issue is.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Issue is a structured problem surfaced as a byproduct of scoring.
type Issue struct {
	ID          string   `json:"id"`
	Category    string   `json:"category"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// Evidence records what the scorer saw, missed, and measured for one
// dimension.
type Evidence struct {
	Found      []string       `json:"found"`
	Missing    []string       `json:"missing"`
	DataPoints map[string]any `json:"data_points,omitempty"`
}

// Dimension is one frozen scoring axis. Scores are accumulated locally
// during computation and clamped before the record is constructed.
type Dimension struct {
	Key      DimensionKey    `json:"key"`
	Score    int             `json:"score"`
	Status   DimensionStatus `json:"status"`
	Summary  string          `json:"summary"`
	Issues   []Issue         `json:"issues"`
	Evidence Evidence        `json:"evidence"`
}

// MaturityStage is the coarse four-level classification of the overall
// demand-generation motion.
type MaturityStage string

const (
	StageUnproven    MaturityStage = "unproven"    // overall < 50
	StageEmerging    MaturityStage = "emerging"    // < 70
	StageScaling     MaturityStage = "scaling"     // < 85
	StageEstablished MaturityStage = "established" // >= 85
)

// ScoringOutput is the full result of one scoring run.
type ScoringOutput struct {
	Dimensions    []Dimension   `json:"dimensions"`
	OverallScore  int           `json:"overall_score"`
	MaturityStage MaturityStage `json:"maturity_stage"`
	Issues        []Issue       `json:"issues"`
}

// Dimension returns the dimension for the given key, or nil.
func (o *ScoringOutput) Dimension(key DimensionKey) *Dimension {
	for i := range o.Dimensions {
		if o.Dimensions[i].Key == key {
			return &o.Dimensions[i]
		}
	}
	return nil
}
