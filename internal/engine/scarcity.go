package engine

import (
	"github.com/chrisdamba/menuengine/internal/models"
)

// Badge is a scarcity flag and the price nudge that goes with it. The
// modifier is applied by the hint builder, not here.
type Badge struct {
	Text                 string
	PriceModifierPercent int
}

// ComputeBadge flags low prepped stock first, then items selling under half
// the restaurant's average daily pace. Restaurants averaging under one sale a
// day never get the second badge.
func ComputeBadge(itemID string, preppedStocks map[string]int, todaySales map[string]int, avgDailySales float64) Badge {
	if stock, ok := preppedStocks[itemID]; ok && stock > 0 && stock <= models.ScarcityStockLimit {
		return Badge{Text: models.BadgeLimitedToday, PriceModifierPercent: models.ScarcityDiscountPercent}
	}

	avg := models.Finite(avgDailySales)
	if avg >= models.SelectionMinAvgDailySales &&
		float64(todaySales[itemID]) < avg*models.SelectionSalesFractionOfDaily {
		return Badge{Text: models.BadgeTodaysSelection, PriceModifierPercent: models.ScarcityDiscountPercent}
	}
	return Badge{}
}
