package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chrisdamba/menuengine/internal/models"
)

func TestBuildUpsellSequence(t *testing.T) {
	all := []models.MenuItem{
		{ID: "burger", CategoryName: "Main Dishes"},
		{ID: "mixed-grill", CategoryName: "Mixed Grill"},
		{ID: "fries", CategoryName: "Sides"},
		{ID: "slaw", CategoryName: "Side Dishes"},
		{ID: "cola", CategoryName: "Cold Drinks"},
		{ID: "cake", CategoryName: "Desserts"},
	}
	quadrants := map[string]models.Quadrant{
		"burger":      models.QuadrantStar,
		"mixed-grill": models.QuadrantStar,
		"fries":       models.QuadrantWorkhorse,
		"slaw":        models.QuadrantStar,
		"cola":        models.QuadrantDog,
		"cake":        models.QuadrantStar,
	}

	got := BuildUpsellSequence("burger", all, quadrants)

	assert.Equal(t, []models.UpsellSuggestion{
		{Stage: models.UpsellStageProteinUpgrade, ItemID: "mixed-grill", NudgeText: "Upgrade with a grilled favourite"},
		{Stage: models.UpsellStagePremiumSide, ItemID: "slaw", NudgeText: "Complete it with a premium side"},
		{Stage: models.UpsellStageDessert, ItemID: "cake", NudgeText: "Save room for dessert"},
	}, got)
}

func TestBuildUpsellSequenceNeverRepeatsAnItem(t *testing.T) {
	// "Grill Sides" matches both the protein and side stages
	all := []models.MenuItem{{ID: "corn", CategoryName: "Grill Sides"}}
	quadrants := map[string]models.Quadrant{"corn": models.QuadrantStar}

	got := BuildUpsellSequence("other", all, quadrants)

	assert.Len(t, got, 1)
	assert.Equal(t, models.UpsellStageProteinUpgrade, got[0].Stage)
}

func TestBuildUpsellSequenceWithoutStars(t *testing.T) {
	all := []models.MenuItem{{ID: "fries", CategoryName: "Sides"}, {ID: "cake", CategoryName: "Desserts"}}

	assert.Empty(t, BuildUpsellSequence("fries", all, nil))
}
