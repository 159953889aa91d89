package factories

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jaswdr/faker"

	"github.com/chrisdamba/menuengine/internal/models"
)

var simulationNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("menuengine/simulation"))

// SnapshotFactory builds synthetic restaurant snapshots. The same seed always
// yields the same snapshots. Not safe for concurrent use.
type SnapshotFactory struct {
	seed       int64
	fake       faker.Faker
	minItems   int
	maxItems   int
	windowDays int
}

func NewSnapshotFactory(cfg models.SimulateConfig) *SnapshotFactory {
	minItems := max(cfg.MinItems, 3)
	maxItems := max(cfg.MaxItems, minItems)
	return &SnapshotFactory{
		seed:       cfg.Seed,
		fake:       faker.NewWithSeed(rand.NewSource(cfg.Seed)),
		minItems:   minItems,
		maxItems:   maxItems,
		windowDays: 30,
	}
}

// RestaurantID is the id of the index-th simulated restaurant.
func (f *SnapshotFactory) RestaurantID(index int) string {
	return uuid.NewSHA1(simulationNamespace, []byte(fmt.Sprintf("%d/restaurant/%d", f.seed, index))).String()
}

func (f *SnapshotFactory) itemID(restaurantID string, n int) string {
	return uuid.NewSHA1(simulationNamespace, []byte(fmt.Sprintf("%s/item/%d", restaurantID, n))).String()
}

// CreateSnapshots builds n snapshots in order.
func (f *SnapshotFactory) CreateSnapshots(n int) []models.EngineInput {
	snapshots := make([]models.EngineInput, 0, n)
	for i := 0; i < n; i++ {
		snapshots = append(snapshots, f.CreateSnapshot(i))
	}
	return snapshots
}

func (f *SnapshotFactory) CreateSnapshot(index int) models.EngineInput {
	restaurantID := f.RestaurantID(index)
	input := models.EngineInput{
		RestaurantID:               restaurantID,
		PreppedStocks:              make(map[string]int),
		TodaySales:                 make(map[string]int),
		UnitsSoldInCurrentTimeSlot: make(map[string]float64),
	}

	templates := f.pickCategories()
	remaining := f.between(f.minItems, f.maxItems)
	coldCategory := -1
	if f.between(1, 100) <= 30 {
		coldCategory = f.between(0, len(templates)-1)
	}

	itemSeq := 0
	for ci, tmpl := range templates {
		left := len(templates) - ci
		count := remaining / left
		if ci < remaining%left {
			count++
		}
		count = min(max(count, 1), len(tmpl.Items))
		remaining -= count

		category := models.Category{
			ID:           uuid.NewSHA1(simulationNamespace, []byte(fmt.Sprintf("%s/category/%d", restaurantID, ci))).String(),
			Name:         tmpl.Name,
			DisplayOrder: ci + 1,
		}
		for _, name := range f.pickNames(tmpl.Items, count) {
			item := f.createItem(f.itemID(restaurantID, itemSeq), name, category, tmpl, ci == coldCategory)
			itemSeq++
			category.ItemIDs = append(category.ItemIDs, item.ID)
			input.Items = append(input.Items, item)
		}
		input.Categories = append(input.Categories, category)
	}

	f.summarize(&input)
	f.addDailyState(&input)
	input.CoPurchasePairs = f.coPurchasePairs(input.Items)
	if coldCategory >= 0 && f.fake.Bool() {
		input.AIBadgePicks = f.badgePicks(input.Categories[coldCategory])
	}
	return input
}

// between is IntBetween tolerating an empty range.
func (f *SnapshotFactory) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return f.fake.IntBetween(lo, hi)
}

// pickCategories always includes mains, drinks and desserts, and adds the
// other categories at random while keeping catalogue order.
func (f *SnapshotFactory) pickCategories() []categoryTemplate {
	var picked []categoryTemplate
	for _, tmpl := range catalogue {
		switch tmpl.Type {
		case models.ItemTypeMainDish, models.ItemTypeDrink, models.ItemTypeDessert:
			picked = append(picked, tmpl)
		default:
			if f.between(1, 100) <= 60 {
				picked = append(picked, tmpl)
			}
		}
	}
	return picked
}

func (f *SnapshotFactory) pickNames(names []string, n int) []string {
	pool := append([]string(nil), names...)
	out := make([]string, 0, n)
	for len(out) < n && len(pool) > 0 {
		i := f.between(0, len(pool)-1)
		out = append(out, pool[i])
		pool = append(pool[:i], pool[i+1:]...)
	}
	return out
}

func (f *SnapshotFactory) createItem(id, name string, category models.Category, tmpl categoryTemplate, cold bool) models.MenuItem {
	price := float64(f.between(tmpl.MinPrice/500, tmpl.MaxPrice/500) * 500)
	cost := math.Round(price * f.fake.Float64(2, 20, 75) / 100)
	item := models.MenuItem{
		ID:            id,
		Name:          name,
		Price:         price,
		CategoryID:    category.ID,
		CategoryName:  category.Name,
		Cost:          cost,
		MarginPercent: models.MarginPercentOf(price, cost),
	}
	if !cold {
		item.UnitsSold = float64(f.between(0, 150))
	}
	if len(tmpl.Tags) > 0 && f.between(1, 100) <= 40 {
		item.Tags = []string{tmpl.Tags[f.between(0, len(tmpl.Tags)-1)]}
	}
	return item
}

func (f *SnapshotFactory) summarize(input *models.EngineInput) {
	byID := make(map[string]models.MenuItem, len(input.Items))
	var total float64
	for _, item := range input.Items {
		byID[item.ID] = item
		total += item.UnitsSold
	}
	for i, c := range input.Categories {
		var units, margin float64
		for _, id := range c.ItemIDs {
			units += byID[id].UnitsSold
			margin += byID[id].MarginPercent
		}
		if n := float64(len(c.ItemIDs)); n > 0 {
			input.Categories[i].AvgUnitsSold = units / n
			input.Categories[i].AvgMargin = margin / n
		}
	}
	if len(input.Items) > 0 {
		input.AvgDailySales = total / float64(f.windowDays) / float64(len(input.Items))
	}
}

func (f *SnapshotFactory) addDailyState(input *models.EngineInput) {
	for _, item := range input.Items {
		daily := int(item.UnitsSold) / f.windowDays
		input.TodaySales[item.ID] = f.between(0, daily*2+1)
		if item.UnitsSold > 0 {
			input.UnitsSoldInCurrentTimeSlot[item.ID] = float64(f.between(0, int(item.UnitsSold)/3))
		}
		if f.between(1, 100) <= 25 {
			input.PreppedStocks[item.ID] = f.between(0, 20)
		}
	}
}

// coPurchasePairs links main dishes with items of other categories.
func (f *SnapshotFactory) coPurchasePairs(items []models.MenuItem) []models.CoPurchasePair {
	var pairs []models.CoPurchasePair
	for i, a := range items {
		if a.UnitsSold == 0 || a.CategoryName != "Main Dishes" {
			continue
		}
		for j, b := range items {
			if i == j || b.UnitsSold == 0 || b.CategoryName == a.CategoryName {
				continue
			}
			if f.between(1, 100) > 35 {
				continue
			}
			ordersA, ordersB := int(a.UnitsSold), int(b.UnitsSold)
			pairCount := int(float64(min(ordersA, ordersB)) * f.fake.Float64(2, 5, 90) / 100)
			pairs = append(pairs, models.CoPurchasePair{
				ItemA:                 a.ID,
				ItemB:                 b.ID,
				PairCount:             pairCount,
				TotalOrdersWithA:      ordersA,
				TotalOrdersWithB:      ordersB,
				TotalOrdersWithEither: ordersA + ordersB - pairCount,
			})
		}
	}
	return pairs
}

func (f *SnapshotFactory) badgePicks(category models.Category) *models.AIBadgePicks {
	picks := &models.AIBadgePicks{SignatureIDs: []string{}, MostLovedIDs: []string{}}
	for i, id := range category.ItemIDs {
		switch {
		case i == 0:
			picks.SignatureIDs = append(picks.SignatureIDs, id)
		case f.fake.Bool():
			picks.MostLovedIDs = append(picks.MostLovedIDs, id)
		}
	}
	return picks
}
