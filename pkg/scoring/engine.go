// Package scoring implements the demand scoring engine: five weighted
// dimension scores, an overall score with safety caps, a maturity stage
// and a structured issue list. Scoring is deterministic for identical
// inputs and never fails for empty, nil or zeroed inputs; data-starved
// runs route to documented floor scores instead.
package scoring

import (
	"fmt"
	"math"

	"github.com/kineticbrand/demandlab/internal/models"
)

// Input carries everything the engine consumes for one run.
type Input struct {
	Signals     models.SignalSet
	Snapshot    *models.AnalyticsSnapshot
	Confidence  models.DataConfidence
	CompanyType models.CompanyType
}

// Overall safety caps and maturity thresholds.
const (
	acquisitionGapCap = 55 // when both channel mix and targeting are weak
	lowConfidenceCap  = 65

	weakDimensionThreshold   = 50
	strongDimensionThreshold = 70

	unprovenCeiling = 50
	emergingCeiling = 70
	scalingCeiling  = 85
)

// Engine computes scoring outputs. It is stateless and safe for
// concurrent use.
type Engine struct{}

// New creates a scoring engine.
func New() *Engine {
	return &Engine{}
}

// Score produces the full scoring output for the given inputs.
func (e *Engine) Score(in Input) *models.ScoringOutput {
	r := &run{in: in}

	dims := []models.Dimension{
		r.scoreChannelMix(),
		r.scoreTargeting(),
		r.scoreCreative(),
		r.scoreFunnel(),
		r.scoreMeasurement(),
	}

	out := &models.ScoringOutput{Dimensions: dims}
	for _, d := range dims {
		out.Issues = append(out.Issues, d.Issues...)
	}

	out.OverallScore = overall(out, r.lowConfidence())
	out.MaturityStage = maturityStage(out.OverallScore)
	return out
}

// overall averages the five dimensions and applies the two safety caps in
// order: the acquisition-gap cap keeps strong funnel/creative/measurement
// scores from masking an absent acquisition motion; the low-confidence
// cap keeps a data-starved assessment from reporting high scores.
func overall(out *models.ScoringOutput, lowConfidence bool) int {
	sum := 0
	for _, d := range out.Dimensions {
		sum += d.Score
	}
	score := int(math.Round(float64(sum) / float64(len(out.Dimensions))))

	channelMix := out.Dimension(models.DimChannelMix)
	targeting := out.Dimension(models.DimTargeting)
	if channelMix.Score < weakDimensionThreshold && targeting.Score < weakDimensionThreshold &&
		score > acquisitionGapCap {
		score = acquisitionGapCap
	}
	if lowConfidence && score > lowConfidenceCap {
		score = lowConfidenceCap
	}
	return score
}

func maturityStage(overall int) models.MaturityStage {
	switch {
	case overall < unprovenCeiling:
		return models.StageUnproven
	case overall < emergingCeiling:
		return models.StageEmerging
	case overall < scalingCeiling:
		return models.StageScaling
	default:
		return models.StageEstablished
	}
}

// run holds per-invocation state: the inputs plus the sequential issue
// counter shared by all dimension builders.
type run struct {
	in       Input
	issueSeq int
}

func (r *run) lowConfidence() bool {
	return r.in.Confidence.Level == models.ConfidenceLow
}

// dimension accumulates one axis before it is clamped and frozen.
type dimension struct {
	key     models.DimensionKey
	score   int
	issues  []models.Issue
	found   []string
	missing []string
	data    map[string]any
}

func (r *run) newDimension(key models.DimensionKey, baseline int) *dimension {
	return &dimension{key: key, score: baseline, data: map[string]any{}}
}

func (d *dimension) add(delta int) { d.score += delta }

func (d *dimension) addFound(items ...string)   { d.found = append(d.found, items...) }
func (d *dimension) addMissing(items ...string) { d.missing = append(d.missing, items...) }

// issue appends a structured issue owned by this dimension.
func (d *dimension) issue(r *run, sev models.Severity, title, desc string) {
	d.issueFor(r, d.key, sev, title, desc)
}

// issueFor appends an issue owned by this dimension but categorized under
// another axis (the funnel's tracking-noise finding is a measurement
// problem surfaced during funnel computation).
func (d *dimension) issueFor(r *run, key models.DimensionKey, sev models.Severity, title, desc string) {
	r.issueSeq++
	d.issues = append(d.issues, models.Issue{
		ID:          fmt.Sprintf("iss-%d", r.issueSeq),
		Category:    key.Label(),
		Severity:    sev,
		Title:       title,
		Description: desc,
	})
}

// freeze clamps the accumulated score to [0,100] and builds the immutable
// dimension record.
func (d *dimension) freeze(summary string) models.Dimension {
	score := d.score
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	status := models.StatusModerate
	switch {
	case score < weakDimensionThreshold:
		status = models.StatusWeak
	case score >= strongDimensionThreshold:
		status = models.StatusStrong
	}

	issues := d.issues
	if issues == nil {
		issues = []models.Issue{}
	}
	return models.Dimension{
		Key:     d.key,
		Score:   score,
		Status:  status,
		Summary: summary,
		Issues:  issues,
		Evidence: models.Evidence{
			Found:      append([]string{}, d.found...),
			Missing:    append([]string{}, d.missing...),
			DataPoints: d.data,
		},
	}
}
