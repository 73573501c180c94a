package analytics

import (
	"fmt"

	"github.com/kineticbrand/demandlab/internal/models"
)

// Confidence scoring weights. The estimator is monotone: adding data
// never lowers the score.
const (
	snapshotPresentPoints = 40
	sessionsKnownPoints   = 10
	sessionsAmplePoints   = 10
	conversionRatePoints  = 15
	paidSharePoints       = 5
	perPagePoints         = 2
	maxPagePoints         = 20

	ampleSessionVolume  = 1000
	meaningfulPaidShare = 0.05

	highConfidenceThreshold   = 70
	mediumConfidenceThreshold = 40
)

// EstimateConfidence combines analytics availability and crawl coverage
// into a 0–100 score with a coarse level and a human-readable reason.
func EstimateConfidence(snap *models.AnalyticsSnapshot, pageCount int) models.DataConfidence {
	score := pageCount * perPagePoints
	if score > maxPagePoints {
		score = maxPagePoints
	}

	reason := fmt.Sprintf("%d pages crawled", pageCount)
	if snap == nil {
		reason += "; no analytics data available"
	} else {
		score += snapshotPresentPoints
		reason += "; analytics snapshot available"

		if snap.SessionVolume != nil && *snap.SessionVolume > 0 {
			score += sessionsKnownPoints
			if *snap.SessionVolume > ampleSessionVolume {
				score += sessionsAmplePoints
			}
		} else {
			reason += ", session volume unknown"
		}
		if snap.ConversionRate != nil {
			score += conversionRatePoints
		} else {
			reason += ", conversion rate unknown"
		}
		if snap.PaidShare != nil && *snap.PaidShare > meaningfulPaidShare {
			score += paidSharePoints
		}
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	level := models.ConfidenceLow
	switch {
	case score >= highConfidenceThreshold:
		level = models.ConfidenceHigh
	case score >= mediumConfidenceThreshold:
		level = models.ConfidenceMedium
	}

	return models.DataConfidence{Score: score, Level: level, Reason: reason}
}
