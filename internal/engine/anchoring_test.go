package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisdamba/menuengine/internal/models"
)

func priced(id string, price, margin float64) models.MenuItem {
	return models.MenuItem{ID: id, Name: id, Price: price, MarginPercent: margin}
}

func ids(items []models.MenuItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestOrderItemsProfitThreeSlots(t *testing.T) {
	items := []models.MenuItem{
		priced("a", 5000, 60),
		priced("b", 8000, 20),
		priced("c", 12000, 55),
		priced("d", 20000, 10),
	}

	got := OrderItems(items, models.EngineModeProfit, nil)

	// slot 1: priciest of the top margin half {a, c}; slot 2: nearest to
	// mean+stddev (~16879); slot 3: nearest to the mean (11250); then a.
	assert.Equal(t, []string{"c", "d", "b", "a"}, ids(got.Items))
	assert.Equal(t, []string{"c"}, got.AnchorIDs)
}

func TestOrderItemsTailSortedByMargin(t *testing.T) {
	items := []models.MenuItem{
		priced("e1", 100, 50),
		priced("e2", 200, 40),
		priced("e3", 300, 30),
		priced("e4", 400, 20),
		priced("e5", 500, 10),
	}

	got := OrderItems(items, models.EngineModeProfit, nil)

	assert.Equal(t, []string{"e3", "e4", "e2", "e1", "e5"}, ids(got.Items))
}

func TestOrderItemsSmallCategories(t *testing.T) {
	got := OrderItems(nil, models.EngineModeProfit, nil)
	assert.Empty(t, got.Items)
	assert.Empty(t, got.AnchorIDs)

	got = OrderItems([]models.MenuItem{priced("solo", 100, 10)}, models.EngineModeProfit, nil)
	assert.Equal(t, []string{"solo"}, ids(got.Items))
	assert.Equal(t, []string{"solo"}, got.AnchorIDs)

	// two items sort by margin only, price is ignored
	got = OrderItems([]models.MenuItem{priced("cheap", 100, 10), priced("rich", 50, 30)}, models.EngineModeProfit, nil)
	assert.Equal(t, []string{"rich", "cheap"}, ids(got.Items))
	assert.Equal(t, []string{"rich"}, got.AnchorIDs)
}

func TestOrderItemsClassicKeepsManualOrder(t *testing.T) {
	items := []models.MenuItem{priced("z", 1, 1), priced("y", 100, 90), priced("x", 50, 50)}

	got := OrderItems(items, models.EngineModeClassic, nil)

	assert.Equal(t, []string{"z", "y", "x"}, ids(got.Items))
	assert.Empty(t, got.AnchorIDs)
}

func TestOrderItemsAdaptiveUsesTimeSlotSales(t *testing.T) {
	items := []models.MenuItem{
		priced("a", 2000, 70),
		priced("b", 1500, 60),
		priced("c", 3000, 20),
		priced("d", 1000, 10),
	}

	profit := OrderItems(items, models.EngineModeProfit, nil)
	require.NotEmpty(t, profit.Items)
	assert.Equal(t, "a", profit.Items[0].ID)

	// c blends to 20*0.6 + 100*0.4 = 52 and tops the ranking
	adaptive := OrderItems(items, models.EngineModeAdaptive, map[string]float64{"c": 250})
	require.NotEmpty(t, adaptive.Items)
	assert.Equal(t, "c", adaptive.Items[0].ID)
	assert.Equal(t, []string{"c"}, adaptive.AnchorIDs)

	// no slot data for this category: same as profit
	degraded := OrderItems(items, models.EngineModeAdaptive, map[string]float64{"elsewhere": 40})
	assert.Equal(t, ids(profit.Items), ids(degraded.Items))
}

func TestOrderItemsTreatsNonFiniteAsZero(t *testing.T) {
	items := []models.MenuItem{
		priced("nan", math.NaN(), math.NaN()),
		priced("ok", 100, 40),
		priced("inf", math.Inf(1), 30),
	}

	got := OrderItems(items, models.EngineModeProfit, nil)

	require.Len(t, got.Items, 3)
	assert.Equal(t, "ok", got.Items[0].ID)
	for _, item := range got.Items {
		assert.False(t, math.IsNaN(item.Price) || math.IsInf(item.Price, 0))
	}
}

func TestOrderItemsDoesNotMutateInput(t *testing.T) {
	items := []models.MenuItem{priced("a", 5000, 60), priced("b", 8000, 20), priced("c", 12000, 55)}
	before := append([]models.MenuItem(nil), items...)

	OrderItems(items, models.EngineModeProfit, nil)

	assert.Equal(t, before, items)
}

func TestOrderItemsHugeFinitePrices(t *testing.T) {
	items := []models.MenuItem{
		priced("a", math.MaxFloat64, 30),
		priced("b", math.MaxFloat64, 20),
		priced("c", math.MaxFloat64, 10),
		priced("d", math.MaxFloat64/2, 5),
	}

	var got Ordering
	require.NotPanics(t, func() {
		got = OrderItems(items, models.EngineModeProfit, nil)
	})

	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, ids(got.Items))
	assert.Equal(t, []string{"a"}, got.AnchorIDs)
}

func TestClosestPriceFallsBackToFirstUnused(t *testing.T) {
	items := []models.MenuItem{priced("a", 1, 0), priced("b", 2, 0), priced("c", 3, 0)}

	assert.Equal(t, 1, closestPrice(items, []bool{true, false, false}, math.Inf(1), 1))
	assert.Equal(t, 2, closestPrice(items, []bool{true, false, false}, 3, 1))
}
