package engine

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chrisdamba/menuengine/internal/models"
)

// bundleNamespace seeds name-based bundle ids so the same pair always gets
// the same id.
var bundleNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("menuengine/bundle"))

// Correlation is the share of the less popular item's orders that also
// contained the other item.
func Correlation(p models.CoPurchasePair) float64 {
	denom := min(p.TotalOrdersWithA, p.TotalOrdersWithB)
	if denom <= 0 {
		return 0
	}
	return float64(p.PairCount) / float64(denom)
}

// GenerateBundles turns strongly correlated co-purchase pairs into at most
// MaxBundles non-overlapping combo offers, most frequent pairs first. Pairs
// referencing unknown items, pairing two main dishes, or too cheap to discount
// are skipped.
func GenerateBundles(pairs []models.CoPurchasePair, items map[string]models.MenuItem, threshold float64, currency string) []models.BundleHint {
	threshold = models.Finite(threshold)

	candidates := make([]models.CoPurchasePair, 0, len(pairs))
	for _, p := range pairs {
		if p.ItemA == p.ItemB {
			continue
		}
		if Correlation(p) >= threshold {
			candidates = append(candidates, p)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].PairCount > candidates[j].PairCount
	})

	bundles := make([]models.BundleHint, 0, models.MaxBundles)
	used := make(map[string]bool)
	for _, p := range candidates {
		if len(bundles) == models.MaxBundles {
			break
		}
		a, okA := items[p.ItemA]
		b, okB := items[p.ItemB]
		if !okA || !okB || used[a.ID] || used[b.ID] {
			continue
		}
		if ClassifyItemType(a) == models.ItemTypeMainDish && ClassifyItemType(b) == models.ItemTypeMainDish {
			continue
		}

		bundle, ok := priceBundle(a, b, currency)
		if !ok {
			continue
		}
		used[a.ID], used[b.ID] = true, true
		bundles = append(bundles, bundle)
	}
	return bundles
}

func priceBundle(a, b models.MenuItem, currency string) (models.BundleHint, bool) {
	original := decimal.NewFromFloat(models.Finite(a.Price)).Add(decimal.NewFromFloat(models.Finite(b.Price)))
	discount := original.Mul(decimal.NewFromFloat(models.BundleDiscountRate)).Round(0)
	if !discount.IsPositive() {
		return models.BundleHint{}, false
	}
	return models.BundleHint{
		ID:            uuid.NewSHA1(bundleNamespace, []byte(a.ID+"|"+b.ID)).String(),
		Name:          a.Name + " + " + b.Name,
		ItemIDs:       []string{a.ID, b.ID},
		BundlePrice:   original.Sub(discount).InexactFloat64(),
		OriginalPrice: original.InexactFloat64(),
		SavingsText:   "Save " + FormatPrice(discount, currency),
	}, true
}
