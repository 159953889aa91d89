package engine

import (
	"slices"

	"github.com/chrisdamba/menuengine/internal/models"
)

type ColdStartResult struct {
	Tier          models.DisplayTier
	SuppressBadge bool
	BadgeText     string
}

// IsColdStart reports whether a category lacks the sales history needed for
// quadrant ranking. Classic mode never takes the cold-start path.
func IsColdStart(category models.Category, mode models.EngineMode) bool {
	return mode != models.EngineModeClassic &&
		models.Finite(category.AvgUnitsSold) <= models.ColdStartSalesThreshold
}

// ResolveColdStartTier picks a tier without sales data. External picks win;
// when the recommender ran but skipped the item, the item is left plain.
// Without picks, at most the first two positions are promoted.
func ResolveColdStartTier(itemID string, index, count int, picks *models.AIBadgePicks) ColdStartResult {
	if picks != nil {
		switch {
		case slices.Contains(picks.SignatureIDs, itemID):
			return ColdStartResult{Tier: models.DisplayTierHero, BadgeText: models.BadgeSignature}
		case slices.Contains(picks.MostLovedIDs, itemID):
			return ColdStartResult{Tier: models.DisplayTierFeatured, BadgeText: models.BadgeMostLoved}
		default:
			return ColdStartResult{Tier: models.DisplayTierStandard, SuppressBadge: true}
		}
	}

	switch {
	case index == 0 && count >= models.ColdStartMinItemsHero:
		return ColdStartResult{Tier: models.DisplayTierHero, BadgeText: models.BadgeChefsPick}
	case index == 1 && count >= models.ColdStartMinItemsFeat:
		return ColdStartResult{Tier: models.DisplayTierFeatured, BadgeText: models.BadgeRecommended}
	}
	return ColdStartResult{Tier: models.DisplayTierStandard, SuppressBadge: true}
}
