package synthesis

import (
	"fmt"

	"github.com/kineticbrand/demandlab/internal/models"
)

const (
	maxProjects          = 5
	maxSecondaryProjects = 2
)

// One strategic template per dimension, used for both the weakest-axis
// project and any secondary weak-dimension projects.
var projectTemplates = map[models.DimensionKey]models.Project{
	models.DimChannelMix: {
		Dimension:   models.DimChannelMix,
		Title:       "Channel expansion program",
		Description: "Stand up and validate two additional acquisition channels with controlled budgets and a kill/scale decision gate.",
	},
	models.DimTargeting: {
		Dimension:   models.DimTargeting,
		Title:       "Audience and landing system",
		Description: "Define the core audience segments and build a dedicated landing experience for each, wired into campaign routing.",
	},
	models.DimCreative: {
		Dimension:   models.DimCreative,
		Title:       "Message and offer redesign",
		Description: "Rework the core offer, headline system and call-to-action hierarchy around one primary conversion action.",
	},
	models.DimFunnel: {
		Dimension:   models.DimFunnel,
		Title:       "Conversion path rebuild",
		Description: "Redesign the visit-to-lead path end to end: capture points, follow-up sequence and qualification handoff.",
	},
	models.DimMeasurement: {
		Dimension:   models.DimMeasurement,
		Title:       "Measurement foundation build-out",
		Description: "Implement analytics, conversion events and a UTM convention as one project so every later initiative is measurable.",
	},
}

var stageProjects = map[models.MaturityStage]models.Project{
	models.StageUnproven: {
		Title:       "Establish a repeatable demand engine",
		Description: "Prove one channel, one audience and one offer can produce pipeline predictably before adding anything else.",
		Rationale:   "The overall motion is unproven; breadth before proof wastes budget.",
	},
	models.StageEmerging: {
		Title:       "Scale the first proven channel",
		Description: "Take the channel that already shows signal and systematically raise spend, coverage and creative rotation.",
		Rationale:   "An emerging motion grows fastest by deepening what already works.",
	},
	models.StageScaling: {
		Title:       "Diversify beyond the core channel",
		Description: "Reduce concentration risk by validating adjacent channels while the core engine funds the experiments.",
		Rationale:   "A scaling motion is one platform change away from stalling without diversification.",
	},
	// Established yields no stage project.
}

// Projects derives the strategic project list: one project for the single
// weakest dimension, one maturity-stage project (established yields
// none), then up to two secondary projects from other weak dimensions.
// Insertion order is preserved; unlike quick wins there is no resorting.
func Projects(scoring *models.ScoringOutput) []models.Project {
	var projects []models.Project

	weakest := weakestDimension(scoring)
	if weakest != "" {
		p := projectTemplates[weakest]
		p.Rationale = fmt.Sprintf("%s is the weakest dimension (score %d).",
			weakest.Label(), scoring.Dimension(weakest).Score)
		projects = append(projects, p)
	}

	if stage, ok := stageProjects[scoring.MaturityStage]; ok {
		projects = append(projects, stage)
	}

	secondary := 0
	for _, key := range models.DimensionKeys {
		if key == weakest || secondary >= maxSecondaryProjects {
			continue
		}
		dim := scoring.Dimension(key)
		if dim == nil || dim.Status != models.StatusWeak {
			continue
		}
		p := projectTemplates[key]
		p.Rationale = fmt.Sprintf("%s also scored weak (%d).", key.Label(), dim.Score)
		projects = append(projects, p)
		secondary++
	}

	if len(projects) > maxProjects {
		projects = projects[:maxProjects]
	}
	for i := range projects {
		projects[i].ID = fmt.Sprintf("proj-%d", i+1)
	}
	return projects
}

// weakestDimension returns the key with the single lowest score, ties
// resolved in canonical dimension order.
func weakestDimension(scoring *models.ScoringOutput) models.DimensionKey {
	var weakest models.DimensionKey
	lowest := 101
	for _, key := range models.DimensionKeys {
		if dim := scoring.Dimension(key); dim != nil && dim.Score < lowest {
			lowest = dim.Score
			weakest = key
		}
	}
	return weakest
}
