package scoring

import "github.com/kineticbrand/demandlab/internal/models"

const (
	measurementBaseline = 55

	// measurementLowConfidenceCap keeps a thin-evidence run from claiming
	// strong measurement hygiene.
	measurementLowConfidenceCap = 65
)

// scoreMeasurement grades the site's tracking and attribution hygiene.
func (r *run) scoreMeasurement() models.Dimension {
	tracking := r.in.Signals.Tracking

	d := r.newDimension(models.DimMeasurement, measurementBaseline)
	d.data["detectedVendors"] = tracking.DetectedVendors

	if tracking.HasConversionTracking {
		d.add(10)
		d.addFound("conversion event tracking")
	} else {
		d.add(-20)
		d.addMissing("conversion event tracking")
		d.issue(r, models.SeverityHigh, "No conversion tracking",
			"Without conversion events, no channel or campaign can ever be evaluated.")
	}

	switch {
	case !tracking.UsesUTMs:
		d.add(-20)
		d.addMissing("UTM tagging")
		d.issue(r, models.SeverityMedium, "No UTM tagging",
			"Inbound campaign traffic cannot be attributed to its source.")
	case !tracking.UTMConsistent:
		d.add(-5)
		d.issue(r, models.SeverityLow, "Inconsistent UTM tagging",
			"UTM parameters appear on some pages only; attribution will have gaps.")
	default:
		d.add(10)
		d.addFound("consistent UTM tagging")
	}

	if tracking.HasAnalytics {
		d.add(5)
		d.addFound("analytics platform")
	} else {
		d.add(-15)
		d.addMissing("analytics platform")
		d.issue(r, models.SeverityHigh, "No analytics platform",
			"No analytics installation detected; the site is flying blind.")
	}

	if r.lowConfidence() && d.score > measurementLowConfidenceCap {
		d.score = measurementLowConfidenceCap
	}

	summary := "Measurement coverage supports real attribution."
	if d.score < weakDimensionThreshold {
		summary = "Measurement is missing or too sparse to act on."
	} else if d.score < strongDimensionThreshold {
		summary = "Basics are tracked but attribution has blind spots."
	}
	return d.freeze(summary)
}
