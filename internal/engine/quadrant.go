package engine

import (
	"math"

	"github.com/chrisdamba/menuengine/internal/models"
)

// ClassifyQuadrant places an item in the margin/popularity matrix. Margin is
// scaled so 20% maps to 5, popularity so twice the category average maps to 4.
func ClassifyQuadrant(item models.MenuItem, categoryAvgSales float64) models.Quadrant {
	marginScore := clamp((models.Finite(item.MarginPercent)/models.MarginScaleDivisor)*5,
		models.QuadrantScaleMin, models.QuadrantScaleMax)

	avg := math.Max(models.Finite(categoryAvgSales), models.SalesEpsilon)
	popularityScore := clamp((models.Finite(item.UnitsSold)/avg)*models.PopularityScaleFactor,
		models.QuadrantScaleMin, models.QuadrantScaleMax)

	highMargin := marginScore >= models.QuadrantThreshold
	popular := popularityScore >= models.QuadrantThreshold
	switch {
	case highMargin && popular:
		return models.QuadrantStar
	case popular:
		return models.QuadrantWorkhorse
	case highMargin:
		return models.QuadrantPuzzle
	default:
		return models.QuadrantDog
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
