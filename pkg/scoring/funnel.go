package scoring

import "github.com/kineticbrand/demandlab/internal/models"

const (
	funnelBaseline = 60

	// Conversion-rate banding only applies with a minimally trustworthy
	// sample; below this the rate is recorded as evidence only.
	minSessionsForBanding = 50

	// funnelUnderConfidenceCap is a deliberate under-confidence ceiling
	// applied when session volume is thin or overall confidence is low.
	funnelUnderConfidenceCap = 75

	// Conversion-rate bands (fractions). Boundaries are closed on the
	// left: exactly 3% lands in the good band, exactly 0.5% in neutral.
	poorRateCeiling       = 0.005
	neutralRateCeiling    = 0.03
	goodRateCeiling       = 0.08
	veryStrongRateCeiling = 0.20
	noiseRateFloor        = 0.40
)

// scoreFunnel grades the site's ability to turn visits into leads or
// sales.
func (r *run) scoreFunnel() models.Dimension {
	snap := r.in.Snapshot
	landing := r.in.Signals.LandingPages
	cta := r.in.Signals.CTAs

	d := r.newDimension(models.DimFunnel, funnelBaseline)

	if landing.HasLeadCapture {
		d.addFound("lead capture form")
	} else {
		d.addMissing("lead capture form")
		switch r.in.CompanyType {
		case models.CompanyB2BServices, models.CompanySaaS:
			d.add(-15)
			d.issue(r, models.SeverityHigh, "No lead capture",
				"A B2B funnel with no way to capture a lead loses every visitor who is not ready to talk today.")
		case models.CompanyEcommerce:
			d.add(-5)
			d.issue(r, models.SeverityLow, "No lead capture",
				"No email capture found; abandoned visitors cannot be re-engaged.")
		default:
			d.add(-10)
			d.issue(r, models.SeverityMedium, "No lead capture",
				"No form found anywhere on the site to capture interest.")
		}
	}

	if cta.HasClearPrimaryCTA {
		d.add(10)
	} else {
		d.issue(r, models.SeverityMedium, "No primary conversion action",
			"The funnel has no single obvious entry point.")
	}

	sessions := snap.Sessions()
	d.data["sessionVolume"] = sessions
	if snap != nil && snap.ConversionRate != nil {
		rate := *snap.ConversionRate
		d.data["conversionRate"] = rate
		if sessions >= minSessionsForBanding {
			r.bandConversionRate(d, rate)
		}
		// Below the session threshold the rate stays evidence-only.
	}

	if sessions < minSessionsForBanding || r.lowConfidence() {
		if d.score > funnelUnderConfidenceCap {
			d.score = funnelUnderConfidenceCap
		}
	}

	summary := "The funnel converts at a healthy, measurable rate."
	if d.score < weakDimensionThreshold {
		summary = "The funnel leaks badly or cannot be observed at all."
	} else if d.score < strongDimensionThreshold {
		summary = "The funnel works but conversion evidence is thin."
	}
	return d.freeze(summary)
}

// bandConversionRate applies the seven-bucket step function over the
// conversion-rate fraction. Rates above the noise floor (including the
// defensive >1.0 case) read as tracking misconfiguration, not success.
func (r *run) bandConversionRate(d *dimension, rate float64) {
	switch {
	case rate < poorRateCeiling:
		d.add(-10)
		d.issue(r, models.SeverityMedium, "Poor conversion rate",
			"Conversion rate is below 0.5%, well under any healthy benchmark.")
	case rate < neutralRateCeiling:
		// Neutral band: no adjustment.
	case rate < goodRateCeiling:
		d.add(5)
		d.addFound("good conversion rate")
	case rate < veryStrongRateCeiling:
		d.add(10)
		d.addFound("very strong conversion rate")
	case rate <= noiseRateFloor:
		d.add(12)
		d.addFound("exceptionally strong conversion rate")
	default:
		d.add(-10)
		d.issueFor(r, models.DimMeasurement, models.SeverityHigh, "Probable conversion tracking noise",
			"A conversion rate above 40% almost always means the conversion event is misconfigured.")
	}
}
