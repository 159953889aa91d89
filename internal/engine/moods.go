package engine

import (
	"github.com/chrisdamba/menuengine/internal/models"
)

type moodDefinition struct {
	ID       string
	Label    string
	Keywords []string
}

// keywordMoods are matched against the category name and item tags. The
// premium mood is not keyword driven.
var keywordMoods = []moodDefinition{
	{
		ID:    models.MoodLight,
		Label: "Light & Fresh",
		Keywords: []string{
			"salad", "soup", "juice", "smoothie", "light", "fresh", "vegan", "poke", "fruit",
		},
	},
	{
		ID:    models.MoodFilling,
		Label: "Hearty & Filling",
		Keywords: []string{
			"main", "grill", "pasta", "burger", "pizza", "steak", "curry", "rice", "noodle",
		},
	},
	{
		ID:    models.MoodSharing,
		Label: "Made for Sharing",
		Keywords: []string{
			"platter", "share", "sharing", "family", "bucket", "combo", "tapas",
		},
	},
}

const premiumMoodLabel = "Premium Picks"

// MapMoods groups items into the four fixed mood buckets. Buckets are not
// exclusive and keep the order of items.
func MapMoods(items []models.MenuItem, categories map[string]models.Category, quadrants map[string]models.Quadrant, premiumThreshold float64) []models.MoodOption {
	moods := make([]models.MoodOption, 0, len(keywordMoods)+1)
	for _, def := range keywordMoods {
		mood := models.MoodOption{ID: def.ID, Label: def.Label, ItemIDs: []string{}}
		for _, item := range items {
			if itemMatchesMood(item, categories, def.Keywords) {
				mood.ItemIDs = append(mood.ItemIDs, item.ID)
			}
		}
		moods = append(moods, mood)
	}

	premium := models.MoodOption{ID: models.MoodPremium, Label: premiumMoodLabel, ItemIDs: []string{}}
	for _, item := range items {
		if quadrants[item.ID] == models.QuadrantStar || models.Finite(item.Price) > premiumThreshold {
			premium.ItemIDs = append(premium.ItemIDs, item.ID)
		}
	}
	return append(moods, premium)
}

func itemMatchesMood(item models.MenuItem, categories map[string]models.Category, keywords []string) bool {
	if matchesAny(normalizeText(categoryNameOf(item, categories)), keywords) {
		return true
	}
	for _, tag := range item.Tags {
		if matchesAny(normalizeText(tag), keywords) {
			return true
		}
	}
	return false
}

func categoryNameOf(item models.MenuItem, categories map[string]models.Category) string {
	if item.CategoryName != "" {
		return item.CategoryName
	}
	return categories[item.CategoryID].Name
}
