package scoring

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kineticbrand/demandlab/internal/models"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

// healthySignals builds a signal set with a lead form and one clear
// demo CTA, the common fixture for funnel and banding tests.
func healthySignals() models.SignalSet {
	return models.SignalSet{
		LandingPages: models.LandingPageSignals{
			Count:                    2,
			HasDedicatedLandingPages: true,
			HasLeadCapture:           true,
		},
		CTAs: models.CtaSignals{
			Count:              1,
			PrimaryCTA:         "Book a Demo",
			HasClearPrimaryCTA: true,
			ClarityScore:       85,
		},
	}
}

func mediumConfidence() models.DataConfidence {
	return models.DataConfidence{Score: 55, Level: models.ConfidenceMedium}
}

func TestScoreEmptyInputIsDeterministic(t *testing.T) {
	e := New()
	in := Input{Confidence: models.DataConfidence{Level: models.ConfidenceLow}}

	first := e.Score(in)
	second := e.Score(in)
	assert.Equal(t, first, second)

	require.Len(t, first.Dimensions, 5)
	for _, d := range first.Dimensions {
		assert.GreaterOrEqual(t, d.Score, 0)
		assert.LessOrEqual(t, d.Score, 100)
		assert.NotNil(t, d.Issues)
	}
	assert.Equal(t, models.StageUnproven, first.MaturityStage)
	assert.Less(t, first.OverallScore, 50)
}

func TestIssueIDsAreSequential(t *testing.T) {
	out := New().Score(Input{Confidence: models.DataConfidence{Level: models.ConfidenceLow}})

	require.NotEmpty(t, out.Issues)
	for i, iss := range out.Issues {
		assert.Equal(t, fmt.Sprintf("iss-%d", i+1), iss.ID)
	}
}

func TestOverallAcquisitionGapCap(t *testing.T) {
	out := &models.ScoringOutput{Dimensions: []models.Dimension{
		{Key: models.DimChannelMix, Score: 40},
		{Key: models.DimTargeting, Score: 45},
		{Key: models.DimCreative, Score: 90},
		{Key: models.DimFunnel, Score: 90},
		{Key: models.DimMeasurement, Score: 90},
	}}
	assert.Equal(t, 55, overall(out, false))

	// With targeting above the weak threshold the cap does not apply.
	out.Dimensions[1].Score = 60
	assert.Equal(t, 74, overall(out, false))
}

func TestOverallLowConfidenceCap(t *testing.T) {
	out := &models.ScoringOutput{Dimensions: []models.Dimension{
		{Key: models.DimChannelMix, Score: 80},
		{Key: models.DimTargeting, Score: 80},
		{Key: models.DimCreative, Score: 80},
		{Key: models.DimFunnel, Score: 80},
		{Key: models.DimMeasurement, Score: 80},
	}}
	assert.Equal(t, 80, overall(out, false))
	assert.Equal(t, 65, overall(out, true))
}

func TestMaturityStages(t *testing.T) {
	tests := []struct {
		score    int
		expected models.MaturityStage
	}{
		{0, models.StageUnproven},
		{49, models.StageUnproven},
		{50, models.StageEmerging},
		{69, models.StageEmerging},
		{70, models.StageScaling},
		{84, models.StageScaling},
		{85, models.StageEstablished},
		{100, models.StageEstablished},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, maturityStage(tt.score), "score %d", tt.score)
	}
}

func TestConversionRateBanding(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		expected int
	}{
		{name: "poor below half a percent", rate: 0.004999, expected: 60},
		{name: "neutral band floor", rate: 0.005, expected: 70},
		{name: "neutral band ceiling", rate: 0.0299, expected: 70},
		{name: "exactly three percent is good", rate: 0.03, expected: 75},
		{name: "very strong", rate: 0.08, expected: 80},
		{name: "exceptional", rate: 0.25, expected: 82},
		{name: "noise above forty percent", rate: 0.5, expected: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := New().Score(Input{
				Signals: healthySignals(),
				Snapshot: &models.AnalyticsSnapshot{
					SessionVolume:  i64(100),
					ConversionRate: f64(tt.rate),
				},
				Confidence:  mediumConfidence(),
				CompanyType: models.CompanySaaS,
			})
			assert.Equal(t, tt.expected, out.Dimension(models.DimFunnel).Score)
		})
	}
}

func TestNoiseRateFlagsMeasurement(t *testing.T) {
	out := New().Score(Input{
		Signals: healthySignals(),
		Snapshot: &models.AnalyticsSnapshot{
			SessionVolume:  i64(100),
			ConversionRate: f64(0.5),
		},
		Confidence:  mediumConfidence(),
		CompanyType: models.CompanySaaS,
	})

	funnel := out.Dimension(models.DimFunnel)
	found := false
	for _, iss := range funnel.Issues {
		if iss.Category == models.DimMeasurement.Label() {
			found = true
			assert.Equal(t, models.SeverityHigh, iss.Severity)
		}
	}
	assert.True(t, found, "noise rate should raise a measurement-categorized issue")
}

func TestThinSampleSkipsBanding(t *testing.T) {
	// Below the session threshold the rate is recorded but not banded.
	out := New().Score(Input{
		Signals: healthySignals(),
		Snapshot: &models.AnalyticsSnapshot{
			SessionVolume:  i64(20),
			ConversionRate: f64(0.25),
		},
		Confidence:  mediumConfidence(),
		CompanyType: models.CompanySaaS,
	})
	assert.Equal(t, 70, out.Dimension(models.DimFunnel).Score)
}

func TestFunnelLowConfidenceCap(t *testing.T) {
	out := New().Score(Input{
		Signals: healthySignals(),
		Snapshot: &models.AnalyticsSnapshot{
			SessionVolume:  i64(10000),
			ConversionRate: f64(0.1),
		},
		Confidence:  models.DataConfidence{Level: models.ConfidenceLow},
		CompanyType: models.CompanySaaS,
	})
	assert.Equal(t, 75, out.Dimension(models.DimFunnel).Score)
}

func TestMeasurementLowConfidenceCap(t *testing.T) {
	in := Input{
		Signals: models.SignalSet{
			Tracking: models.TrackingSignals{
				UsesUTMs:              true,
				UTMConsistent:         true,
				HasConversionTracking: true,
				HasAnalytics:          true,
				DetectedVendors:       []string{"Google Analytics"},
			},
		},
		Confidence: mediumConfidence(),
	}
	assert.Equal(t, 80, New().Score(in).Dimension(models.DimMeasurement).Score)

	in.Confidence = models.DataConfidence{Level: models.ConfidenceLow}
	assert.Equal(t, 65, New().Score(in).Dimension(models.DimMeasurement).Score)
}

func TestMissingLeadCapturePenaltyByCompanyType(t *testing.T) {
	score := func(ct models.CompanyType) int {
		out := New().Score(Input{Confidence: mediumConfidence(), CompanyType: ct})
		return out.Dimension(models.DimFunnel).Score
	}

	saas := score(models.CompanySaaS)
	ecom := score(models.CompanyEcommerce)
	other := score(models.CompanyOther)

	assert.Equal(t, 45, saas)
	assert.Equal(t, 55, ecom)
	assert.Equal(t, 50, other)
}

func TestZeroPaidPenaltyByCompanyType(t *testing.T) {
	score := func(ct models.CompanyType) int {
		out := New().Score(Input{
			Snapshot:    &models.AnalyticsSnapshot{SessionVolume: i64(1000)},
			Confidence:  mediumConfidence(),
			CompanyType: ct,
		})
		return out.Dimension(models.DimChannelMix).Score
	}

	assert.Equal(t, 30, score(models.CompanyEcommerce))
	assert.Equal(t, 30, score(models.CompanySaaS))
	assert.Equal(t, 40, score(models.CompanyLocalService))
	assert.Equal(t, 45, score(models.CompanyOther))
}

func TestRetargetingAdjustsChannelMix(t *testing.T) {
	base := Input{
		Snapshot:   &models.AnalyticsSnapshot{SessionVolume: i64(1000), PaidShare: f64(0.2)},
		Confidence: mediumConfidence(),
	}

	without := New().Score(base).Dimension(models.DimChannelMix).Score

	base.Signals.Tracking.HasRetargetingPixels = true
	with := New().Score(base).Dimension(models.DimChannelMix).Score

	assert.Equal(t, 15, with-without)
}

func TestScoresStayInBounds(t *testing.T) {
	// Everything good at once must clamp to 100 at most.
	in := Input{
		Signals: models.SignalSet{
			LandingPages: models.LandingPageSignals{
				Count:                    5,
				HasDedicatedLandingPages: true,
				HasClearOffer:            true,
				HasLeadCapture:           true,
			},
			CTAs: models.CtaSignals{
				Count:              2,
				PrimaryCTA:         "Book a Demo",
				HasClearPrimaryCTA: true,
				ClarityScore:       100,
			},
			Tracking: models.TrackingSignals{
				UsesUTMs:              true,
				UTMConsistent:         true,
				HasConversionTracking: true,
				HasAnalytics:          true,
				HasRetargetingPixels:  true,
			},
		},
		Snapshot: &models.AnalyticsSnapshot{
			TrafficMix:     map[string]float64{"organic": 0.4, "paid": 0.3, "email": 0.2, "referral": 0.1},
			Channels:       []string{"organic", "paid", "email", "referral"},
			SessionVolume:  i64(50000),
			ConversionRate: f64(0.1),
			PaidShare:      f64(0.3),
		},
		Confidence:  models.DataConfidence{Score: 90, Level: models.ConfidenceHigh},
		CompanyType: models.CompanySaaS,
	}

	out := New().Score(in)
	for _, d := range out.Dimensions {
		assert.GreaterOrEqual(t, d.Score, 0, string(d.Key))
		assert.LessOrEqual(t, d.Score, 100, string(d.Key))
	}
	assert.LessOrEqual(t, out.OverallScore, 100)
	assert.Empty(t, out.Issues)
}
