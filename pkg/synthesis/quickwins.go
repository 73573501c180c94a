// Package synthesis derives the recommendation layer from scoring
// output: quick wins, strategic projects and the prose narrative.
package synthesis

import (
	"fmt"
	"sort"

	"github.com/kineticbrand/demandlab/internal/models"
)

const (
	quickWinThreshold = 60
	maxQuickWins      = 5
)

var impactRank = map[string]int{"high": 0, "medium": 1, "low": 2}

// Each template is gated on its dimension scoring below the threshold and
// carries a fixed impact/effort pair.
var quickWinTemplates = []models.QuickWin{
	{
		Dimension:   models.DimChannelMix,
		Title:       "Stand up retargeting audiences",
		Description: "Install retargeting pixels and build audiences from existing traffic before spending on net-new acquisition.",
		Impact:      "high",
		Effort:      "low",
	},
	{
		Dimension:   models.DimMeasurement,
		Title:       "Install conversion event tracking",
		Description: "Define the primary conversion event and fire it from the thank-you step so every channel becomes measurable.",
		Impact:      "high",
		Effort:      "low",
	},
	{
		Dimension:   models.DimMeasurement,
		Title:       "Tag campaign links with UTMs",
		Description: "Adopt a UTM convention and apply it to every paid and email link so attribution stops guessing.",
		Impact:      "medium",
		Effort:      "low",
	},
	{
		Dimension:   models.DimFunnel,
		Title:       "Add a lead capture form above the fold",
		Description: "Give visitors who are not ready to buy a low-commitment way to stay in the funnel.",
		Impact:      "high",
		Effort:      "medium",
	},
	{
		Dimension:   models.DimTargeting,
		Title:       "Build a dedicated landing page per campaign",
		Description: "Stop sending campaign clicks to the homepage; a matched landing page routinely doubles conversion.",
		Impact:      "high",
		Effort:      "medium",
	},
	{
		Dimension:   models.DimCreative,
		Title:       "Commit to a single primary call to action",
		Description: "Pick one conversion action and make every page funnel toward it; demote the rest to secondary links.",
		Impact:      "medium",
		Effort:      "low",
	},
}

// QuickWins derives the bounded quick-win list. Wins are sorted by impact
// (high first, stable otherwise) and truncated to five after sorting, so
// low-impact wins can drop off when enough higher-impact ones fire; the
// list deliberately shows the best five, not the first five.
func QuickWins(scoring *models.ScoringOutput) []models.QuickWin {
	var wins []models.QuickWin
	for _, tmpl := range quickWinTemplates {
		dim := scoring.Dimension(tmpl.Dimension)
		if dim != nil && dim.Score < quickWinThreshold {
			wins = append(wins, tmpl)
		}
	}

	sort.SliceStable(wins, func(i, j int) bool {
		return impactRank[wins[i].Impact] < impactRank[wins[j].Impact]
	})
	if len(wins) > maxQuickWins {
		wins = wins[:maxQuickWins]
	}
	for i := range wins {
		wins[i].ID = fmt.Sprintf("qw-%d", i+1)
	}
	return wins
}
