package scoring

import "github.com/kineticbrand/demandlab/internal/models"

const (
	creativeBaseline     = 55
	highClarityThreshold = 80
	lowClarityThreshold  = 50
)

// scoreCreative grades the clarity of the site's conversion messaging.
func (r *run) scoreCreative() models.Dimension {
	landing := r.in.Signals.LandingPages
	cta := r.in.Signals.CTAs

	d := r.newDimension(models.DimCreative, creativeBaseline)
	d.data["ctaCount"] = cta.Count
	d.data["clarityScore"] = cta.ClarityScore

	if !landing.HasDedicatedLandingPages {
		d.add(-10)
		d.addMissing("dedicated landing pages")
	}

	if cta.HasClearPrimaryCTA {
		d.add(15)
		d.addFound("primary call to action: " + cta.PrimaryCTA)
		d.data["primaryCta"] = cta.PrimaryCTA
	} else {
		d.add(-15)
		d.addMissing("primary call to action")
		d.issue(r, models.SeverityHigh, "No clear primary call to action",
			"Visitors are not told what single next step to take.")
	}

	if cta.ClarityScore >= highClarityThreshold {
		d.add(10)
		d.addFound("high CTA clarity")
	} else if cta.ClarityScore < lowClarityThreshold {
		// Flagged without a further delta; the clarity gap is already
		// reflected in the CTA adjustments above.
		d.issue(r, models.SeverityMedium, "Unclear call-to-action messaging",
			"The calls to action that exist compete with or dilute each other.")
	}

	summary := "Conversion messaging is focused and action-oriented."
	if d.score < weakDimensionThreshold {
		summary = "Creative gives visitors no clear action to take."
	} else if d.score < strongDimensionThreshold {
		summary = "Messaging works but the primary action could be sharper."
	}
	return d.freeze(summary)
}
