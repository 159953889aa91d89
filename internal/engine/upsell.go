package engine

import (
	"strings"

	"github.com/chrisdamba/menuengine/internal/models"
)

type upsellStage struct {
	Stage    models.UpsellStage
	Keywords []string
	Nudge    string
}

// upsellStages run in this order; each contributes at most one suggestion.
var upsellStages = []upsellStage{
	{models.UpsellStageProteinUpgrade, []string{"grill", "main"}, "Upgrade with a grilled favourite"},
	{models.UpsellStagePremiumSide, []string{"side"}, "Complete it with a premium side"},
	{models.UpsellStageBeverage, []string{"drink", "beverage", "coffee"}, "Pair it with a drink"},
	{models.UpsellStageDessert, []string{"dessert"}, "Save room for dessert"},
}

// BuildUpsellSequence lists follow-up offers for itemID. Only STAR items are
// offered, never the source item, and no item is offered twice.
func BuildUpsellSequence(itemID string, all []models.MenuItem, quadrants map[string]models.Quadrant) []models.UpsellSuggestion {
	var sequence []models.UpsellSuggestion
	offered := make(map[string]bool)
	for _, stage := range upsellStages {
		for _, candidate := range all {
			if candidate.ID == itemID || offered[candidate.ID] || quadrants[candidate.ID] != models.QuadrantStar {
				continue
			}
			if !containsAny(strings.ToLower(candidate.CategoryName), stage.Keywords) {
				continue
			}
			sequence = append(sequence, models.UpsellSuggestion{
				Stage:     stage.Stage,
				ItemID:    candidate.ID,
				NudgeText: stage.Nudge,
			})
			offered[candidate.ID] = true
			break
		}
	}
	return sequence
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
