package synthesis

import (
	"fmt"
	"strings"

	"github.com/kineticbrand/demandlab/internal/models"
)

var stageFraming = map[models.MaturityStage]string{
	models.StageUnproven:    "the demand-generation motion is still unproven",
	models.StageEmerging:    "an emerging demand-generation motion is taking shape",
	models.StageScaling:     "the demand-generation motion is scaling",
	models.StageEstablished: "the demand-generation motion is established and mature",
}

// Narrative composes the prose summary of a scoring run.
func Narrative(domain string, scoring *models.ScoringOutput, confidence models.DataConfidence) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s scores %d/100 overall: %s.",
		domain, scoring.OverallScore, stageFraming[scoring.MaturityStage])

	var strengths, weaknesses []string
	for _, d := range scoring.Dimensions {
		switch d.Status {
		case models.StatusStrong:
			strengths = append(strengths, d.Key.Label())
		case models.StatusWeak:
			weaknesses = append(weaknesses, d.Key.Label())
		}
	}
	if len(strengths) > 0 {
		fmt.Fprintf(&b, " Relative strength in %s.", joinAnd(strengths))
	}
	if len(weaknesses) > 0 {
		fmt.Fprintf(&b, " The biggest gaps are in %s.", joinAnd(weaknesses))
	}

	if high := countBySeverity(scoring.Issues, models.SeverityHigh); high > 0 {
		fmt.Fprintf(&b, " %d high-severity issue(s) need attention first.", high)
	}

	if confidence.Level == models.ConfidenceLow {
		fmt.Fprintf(&b, " Data confidence is low (%s), so treat these scores as a floor, not a verdict.",
			confidence.Reason)
	}
	return b.String()
}

func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func countBySeverity(issues []models.Issue, sev models.Severity) int {
	n := 0
	for _, iss := range issues {
		if iss.Severity == sev {
			n++
		}
	}
	return n
}
