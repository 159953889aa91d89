package models

import "math"

// Calibration constants for the menu engine. They are hand tuned and kept
// here so they can be adjusted without touching the algorithms.
const (
	// quadrant classification (margin vs popularity, both on a 1..5 scale)
	QuadrantThreshold     = 3.5
	QuadrantScaleMin      = 1.0
	QuadrantScaleMax      = 5.0
	MarginScaleDivisor    = 20.0
	PopularityScaleFactor = 2.0
	SalesEpsilon          = 1e-6

	// a category with avg units sold at or below this has no usable history
	ColdStartSalesThreshold = 0.5
	ColdStartMinItemsHero   = 3
	ColdStartMinItemsFeat   = 4

	// adaptive ranking blend
	AdaptiveMarginWeight     = 0.6
	AdaptivePopularityWeight = 0.4
	AdaptivePopularityCap    = 100.0

	DefaultBundleCorrelationThreshold = 0.35
	MaxBundles                        = 5
	BundleDiscountRate                = 0.07

	DefaultPremiumPriceThreshold = 15000.0

	ScarcityStockLimit            = 5
	ScarcityDiscountPercent       = 5
	SelectionMinAvgDailySales     = 1.0
	SelectionSalesFractionOfDaily = 0.5

	MaxBadgedStars = 4

	// categories whose top price is under this share of the overall average
	// price get a bundle as their anchor
	LowTicketCategoryRatio = 0.8

	DefaultMaxItemsPerCategory        = 8
	DefaultMaxInitialItemsPerCategory = 4
)

const (
	BadgeLimitedToday    = "Limited Today"
	BadgeTodaysSelection = "Today's Selection"
	BadgeBestSeller      = "Best Seller"
	BadgePopular         = "Popular"
	BadgeSignature       = "Signature"
	BadgeMostLoved       = "Most Loved"
	BadgeChefsPick       = "Chef's Pick"
	BadgeRecommended     = "Recommended"
)

// SubGroupLabels name the overflow groups of a category, in order.
var SubGroupLabels = []string{"Most Ordered", "Chef's Selection", "Signature", "Light Options"}

// Finite maps NaN and +/-Inf to 0.
func Finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
