package scoring

import "github.com/kineticbrand/demandlab/internal/models"

const (
	channelMixBaseline    = 65
	channelMixZeroTraffic = 30 // floor baseline when no sessions are known
	minimalPaidShare      = 0.05
	diverseChannelCount   = 4
	multiChannelCount     = 2
)

// scoreChannelMix grades how the company acquires traffic. Paid-traffic
// penalties are company-type conditioned: a store or a SaaS without paid
// acquisition is a bigger gap than a local service without it.
func (r *run) scoreChannelMix() models.Dimension {
	snap := r.in.Snapshot
	tracking := r.in.Signals.Tracking

	baseline := channelMixBaseline
	sessions := snap.Sessions()
	if sessions == 0 {
		baseline = channelMixZeroTraffic
	}
	d := r.newDimension(models.DimChannelMix, baseline)
	d.data["sessionVolume"] = sessions

	if snap != nil {
		paid := snap.PaidShare
		zeroPaid := paid == nil || *paid == 0
		if paid != nil {
			d.data["paidShare"] = *paid
		}

		switch r.in.CompanyType {
		case models.CompanyEcommerce:
			if zeroPaid {
				d.add(-25)
				d.addMissing("paid acquisition channel")
				d.issue(r, models.SeverityHigh, "No paid acquisition",
					"An ecommerce business with no paid channel leaves growth entirely to organic discovery.")
			}
		case models.CompanyB2BServices, models.CompanySaaS:
			if zeroPaid {
				d.add(-25)
				d.addMissing("paid acquisition channel")
				d.issue(r, models.SeverityHigh, "No paid acquisition",
					"No measurable paid traffic; pipeline depends entirely on organic and referral channels.")
			} else if *paid < minimalPaidShare {
				d.add(-15)
				d.issue(r, models.SeverityMedium, "Minimal paid investment",
					"Paid traffic is under 5% of sessions, too thin to learn from or scale.")
			}
		case models.CompanyLocalService:
			if zeroPaid {
				d.add(-15)
				d.issue(r, models.SeverityMedium, "No paid acquisition",
					"Local services typically need at least a small paid presence to defend branded searches.")
			}
		default:
			if zeroPaid {
				d.add(-10)
				d.issue(r, models.SeverityMedium, "No paid acquisition",
					"No measurable paid traffic detected.")
			}
		}

		channelCount := len(snap.Channels)
		d.data["channelCount"] = channelCount
		switch {
		case channelCount >= diverseChannelCount:
			d.add(10)
			d.addFound("diverse channel mix")
		case channelCount >= multiChannelCount:
			d.add(5)
			d.addFound("multiple traffic channels")
		}
	} else {
		d.addMissing("analytics snapshot")
	}

	if tracking.HasRetargetingPixels {
		d.add(5)
		d.addFound("retargeting pixels")
	} else {
		d.add(-10)
		d.addMissing("retargeting pixels")
		d.issue(r, models.SeverityMedium, "No retargeting in place",
			"No retargeting pixels detected; visitors who bounce are gone for good.")
	}

	summary := "Acquisition mix has meaningful coverage."
	if d.score < weakDimensionThreshold {
		summary = "Acquisition is effectively absent or invisible to measurement."
	} else if d.score < strongDimensionThreshold {
		summary = "Acquisition works but leans on too few channels."
	}
	return d.freeze(summary)
}
