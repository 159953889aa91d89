package engine

import (
	"github.com/chrisdamba/menuengine/internal/models"
)

// hintInputs is the run-wide data the per-category hint builder reads.
type hintInputs struct {
	settings      models.EngineSettings
	quadrants     map[string]models.Quadrant
	moodTags      map[string][]string
	preppedStocks map[string]int
	todaySales    map[string]int
	avgDailySales float64
	aiBadgePicks  *models.AIBadgePicks
}

// buildCategoryHints emits one hint per item of a laid out category into dst.
func buildCategoryHints(layout categoryLayout, in hintInputs, dst map[string]models.ItemDisplayHint) {
	classic := in.settings.Mode == models.EngineModeClassic
	anchors := make(map[string]bool, len(layout.ordering.AnchorIDs))
	for _, id := range layout.ordering.AnchorIDs {
		anchors[id] = true
	}

	heroAssignedInCategory := false
	starIndexInCategory := 0
	count := len(layout.ordering.Items)

	for i, item := range layout.ordering.Items {
		hint := models.ItemDisplayHint{
			DisplayTier:     models.DisplayTierStandard,
			Position:        i + 1,
			IsAnchor:        anchors[item.ID],
			SubGroup:        subGroupFor(i, in.settings.MaxItemsPerCategory),
			ScrollDepthHide: in.settings.MaxInitialItemsPerCategory > 0 && i+1 > in.settings.MaxInitialItemsPerCategory,
			MoodTags:        append([]string{}, in.moodTags[item.ID]...),
		}

		switch {
		case classic:
			hint.SuppressBadge = true
		case layout.coldStart:
			r := ResolveColdStartTier(item.ID, i, count, in.aiBadgePicks)
			hint.DisplayTier = r.Tier
			hint.SuppressBadge = r.SuppressBadge
			if !r.SuppressBadge {
				hint.BadgeText = r.BadgeText
			}
		default:
			hint.DisplayTier, hint.BadgeText = warmTier(in.quadrants[item.ID], &heroAssignedInCategory, &starIndexInCategory)
			if hint.IsAnchor && hint.DisplayTier.Rank() < models.DisplayTierFeatured.Rank() {
				hint.DisplayTier = models.DisplayTierFeatured
			}
			hint.SuppressBadge = hint.BadgeText == ""
		}

		if !classic && in.settings.Features.ScarcityBadges {
			badge := ComputeBadge(item.ID, in.preppedStocks, in.todaySales, in.avgDailySales)
			if badge.Text != "" {
				hint.BadgeText = badge.Text
				hint.PriceModifierPercent = badge.PriceModifierPercent
				hint.IsLimitedToday = badge.Text == models.BadgeLimitedToday
				hint.SuppressBadge = false
			}
		}

		hint.ShowImage = hint.DisplayTier == models.DisplayTierHero || hint.DisplayTier == models.DisplayTierFeatured
		hint.PriceDisplay = FormatPrice(DiscountedPrice(item.Price, hint.PriceModifierPercent), in.settings.CurrencySymbol)
		dst[item.ID] = hint
	}
}

// warmTier maps a quadrant to a tier and badge. The first STAR in a category
// is the hero and only the first MaxBadgedStars STARs carry a badge.
func warmTier(q models.Quadrant, heroAssigned *bool, starIndex *int) (models.DisplayTier, string) {
	switch q {
	case models.QuadrantStar:
		tier := models.DisplayTierFeatured
		badge := ""
		if !*heroAssigned {
			*heroAssigned = true
			tier = models.DisplayTierHero
		}
		if *starIndex < models.MaxBadgedStars {
			badge = models.BadgePopular
			if tier == models.DisplayTierHero {
				badge = models.BadgeBestSeller
			}
		}
		*starIndex++
		return tier, badge
	case models.QuadrantPuzzle:
		return models.DisplayTierFeatured, ""
	case models.QuadrantWorkhorse:
		return models.DisplayTierStandard, ""
	default:
		return models.DisplayTierMinimal, ""
	}
}

// subGroupFor labels items past the per-category cap. Overflow is chunked by
// the cap; chunks beyond the known labels reuse the last one.
func subGroupFor(index, maxItems int) string {
	if maxItems <= 0 || index < maxItems {
		return ""
	}
	group := index/maxItems - 1
	if group >= len(models.SubGroupLabels) {
		group = len(models.SubGroupLabels) - 1
	}
	return models.SubGroupLabels[group]
}
