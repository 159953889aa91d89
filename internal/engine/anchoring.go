package engine

import (
	"math"
	"sort"

	"github.com/chrisdamba/menuengine/internal/models"
)

// Ordering is a category's items in display order plus its price anchors.
type Ordering struct {
	Items     []models.MenuItem
	AnchorIDs []string
}

// OrderItems arranges a category for price anchoring.
//
// Classic keeps the manual order and has no anchor. Profit and adaptive fill
// three head slots and sort the tail:
//
//  1. the most expensive item in the better-scoring half,
//  2. the item priced closest to mean + 1 stddev,
//  3. the item priced closest to the mean,
//
// then everything else by score and price, both descending. Profit scores by
// margin; adaptive blends in current time-slot sales and degrades to profit
// when no slot data exists for the category. The first item is the anchor.
func OrderItems(items []models.MenuItem, mode models.EngineMode, slotSales map[string]float64) Ordering {
	sanitized := make([]models.MenuItem, len(items))
	for i, item := range items {
		sanitized[i] = item.Sanitized()
	}
	if mode == models.EngineModeClassic || len(sanitized) == 0 {
		return Ordering{Items: sanitized}
	}

	score := marginScore
	if mode == models.EngineModeAdaptive && hasSlotSales(sanitized, slotSales) {
		score = adaptiveScore(slotSales)
	}

	var ordered []models.MenuItem
	if len(sanitized) < 3 {
		ordered = rankByScore(sanitized, score, false)
	} else {
		ordered = threeSlotOrder(rankByScore(sanitized, score, true))
	}
	return Ordering{Items: ordered, AnchorIDs: []string{ordered[0].ID}}
}

type scoreFunc func(models.MenuItem) float64

func marginScore(item models.MenuItem) float64 {
	return item.MarginPercent
}

func adaptiveScore(slotSales map[string]float64) scoreFunc {
	return func(item models.MenuItem) float64 {
		popularity := math.Min(models.AdaptivePopularityCap, models.Finite(slotSales[item.ID]))
		return item.MarginPercent*models.AdaptiveMarginWeight + popularity*models.AdaptivePopularityWeight
	}
}

func hasSlotSales(items []models.MenuItem, slotSales map[string]float64) bool {
	for _, item := range items {
		if _, ok := slotSales[item.ID]; ok {
			return true
		}
	}
	return false
}

// rankByScore sorts a copy by score descending, breaking ties by price when
// withPrice is set. The sort is stable so equal items keep their manual order.
func rankByScore(items []models.MenuItem, score scoreFunc, withPrice bool) []models.MenuItem {
	ranked := append([]models.MenuItem(nil), items...)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := score(ranked[i]), score(ranked[j])
		if si != sj || !withPrice {
			return si > sj
		}
		return ranked[i].Price > ranked[j].Price
	})
	return ranked
}

func threeSlotOrder(ranked []models.MenuItem) []models.MenuItem {
	used := make([]bool, len(ranked))
	head := make([]int, 0, 3)

	// slot 1: highest price among the top half by score
	half := (len(ranked) + 1) / 2
	first := 0
	for i := 1; i < half; i++ {
		if ranked[i].Price > ranked[first].Price {
			first = i
		}
	}
	used[first] = true
	head = append(head, first)

	mean, stddev, scale := priceStats(ranked)
	for _, target := range []float64{mean + stddev, mean} {
		idx := closestPrice(ranked, used, target, scale)
		used[idx] = true
		head = append(head, idx)
	}

	ordered := make([]models.MenuItem, 0, len(ranked))
	for _, idx := range head {
		ordered = append(ordered, ranked[idx])
	}
	for i, item := range ranked {
		if !used[i] {
			ordered = append(ordered, item)
		}
	}
	return ordered
}

// priceStats returns the population mean and standard deviation of prices
// divided by scale, the largest absolute price, so huge prices cannot
// overflow the sums.
func priceStats(items []models.MenuItem) (mean, stddev, scale float64) {
	for _, item := range items {
		scale = max(scale, math.Abs(item.Price))
	}
	if scale == 0 {
		return 0, 0, 1
	}
	for _, item := range items {
		mean += item.Price / scale
	}
	mean /= float64(len(items))

	var variance float64
	for _, item := range items {
		d := item.Price/scale - mean
		variance += d * d
	}
	variance /= float64(len(items))
	return mean, math.Sqrt(variance), scale
}

// closestPrice returns the first unused index whose scaled price is nearest
// target, or the first unused index when no distance is comparable.
func closestPrice(items []models.MenuItem, used []bool, target, scale float64) int {
	best := -1
	bestDiff := math.Inf(1)
	for i, item := range items {
		if used[i] {
			continue
		}
		if best == -1 {
			best = i
		}
		if d := math.Abs(item.Price/scale - target); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best
}
