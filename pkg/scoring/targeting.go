package scoring

import "github.com/kineticbrand/demandlab/internal/models"

const (
	targetingBaseline = 55
	targetingNoPaid   = 35 // baseline drop when no paid traffic exists at all
)

// scoreTargeting grades whether traffic lands on surfaces built for it.
func (r *run) scoreTargeting() models.Dimension {
	snap := r.in.Snapshot
	landing := r.in.Signals.LandingPages
	tracking := r.in.Signals.Tracking

	hasPaid := snap.HasPaidTraffic()
	baseline := targetingBaseline
	if !hasPaid {
		baseline = targetingNoPaid
	}
	d := r.newDimension(models.DimTargeting, baseline)
	d.data["hasPaidTraffic"] = hasPaid
	d.data["landingPageCount"] = landing.Count

	if landing.HasDedicatedLandingPages {
		d.add(15)
		d.addFound("dedicated landing pages")
	} else {
		d.addMissing("dedicated landing pages")
		d.issue(r, models.SeverityMedium, "No dedicated landing pages",
			"Campaign traffic has nowhere to land except generic site pages, which depresses conversion.")
	}

	// A retargeting gap only matters for targeting once paid traffic
	// exists to retarget.
	if hasPaid && !tracking.HasRetargetingPixels {
		d.add(-10)
		d.issue(r, models.SeverityMedium, "Paid traffic without a retargeting layer",
			"Paid visitors are not being captured into retargeting audiences.")
	}

	summary := "Traffic is routed to purpose-built destinations."
	if d.score < weakDimensionThreshold {
		summary = "No evidence of deliberate audience-to-page matching."
	} else if d.score < strongDimensionThreshold {
		summary = "Some targeting structure exists but coverage is partial."
	}
	return d.freeze(summary)
}
