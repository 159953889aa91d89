// Package engine decides how a restaurant menu is presented: item tiers,
// ordering, bundles, moods, upsell sequences and scarcity badges.
//
// Run is a pure function of its input. It does no I/O, reads no clock and
// keeps no state between calls, so identical input yields identical output
// and concurrent calls are safe.
package engine

import (
	"io"
	"log/slog"
	"sort"

	"github.com/chrisdamba/menuengine/internal/models"
)

type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes debug traces of engine decisions to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

type categoryLayout struct {
	category  models.Category
	ordering  Ordering
	coldStart bool
}

// Run computes display instructions for one menu snapshot.
func Run(input models.EngineInput, opts ...Option) models.MenuEngineOutput {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.With("restaurant_id", input.RestaurantID)

	in := input.Sanitized()
	settings := in.Settings
	classic := settings.Mode == models.EngineModeClassic
	out := models.NewMenuEngineOutput(settings.Mode)

	categories, members := assignMembers(in.Categories, in.Items)
	categories = orderCategories(categories, members, classic)
	categoriesByID := make(map[string]models.Category, len(categories))

	quadrants := make(map[string]models.Quadrant)
	layouts := make([]categoryLayout, 0, len(categories))
	var displayItems []models.MenuItem

	for _, cat := range categories {
		categoriesByID[cat.ID] = cat
		out.CategoryOrder = append(out.CategoryOrder, cat.ID)
		items := members[cat.ID]
		if len(items) == 0 {
			continue
		}

		if !classic {
			for _, item := range items {
				quadrants[item.ID] = ClassifyQuadrant(item, cat.AvgUnitsSold)
			}
		}

		layout := categoryLayout{
			category:  cat,
			ordering:  orderCategory(items, settings, in.UnitsSoldInCurrentTimeSlot),
			coldStart: IsColdStart(cat, settings.Mode),
		}
		log.Debug("category laid out",
			"category_id", cat.ID,
			"items", len(items),
			"cold_start", layout.coldStart,
			"anchors", layout.ordering.AnchorIDs,
		)
		layouts = append(layouts, layout)
		displayItems = append(displayItems, layout.ordering.Items...)
	}

	if settings.Features.Bundles {
		itemsByID := make(map[string]models.MenuItem, len(displayItems))
		for _, item := range displayItems {
			itemsByID[item.ID] = item
		}
		out.Bundles = GenerateBundles(in.CoPurchasePairs, itemsByID, settings.BundleCorrelationThreshold, settings.CurrencySymbol)
		out.CategoryAnchorBundle = categoryAnchorBundles(layouts, displayItems, out.Bundles)
		log.Debug("bundles generated", "bundles", len(out.Bundles), "category_anchor_bundles", len(out.CategoryAnchorBundle))
	}

	moodTags := make(map[string][]string)
	if settings.Features.MoodFlow {
		out.Moods = MapMoods(displayItems, categoriesByID, quadrants, settings.PremiumPriceThreshold)
		for _, mood := range out.Moods {
			for _, id := range mood.ItemIDs {
				moodTags[id] = append(moodTags[id], mood.ID)
			}
		}
	}

	if settings.Features.Upsells {
		for _, item := range displayItems {
			if seq := BuildUpsellSequence(item.ID, displayItems, quadrants); len(seq) > 0 {
				out.UpsellMap[item.ID] = seq
			}
		}
	}

	hints := hintInputs{
		settings:      settings,
		quadrants:     quadrants,
		moodTags:      moodTags,
		preppedStocks: in.PreppedStocks,
		todaySales:    in.TodaySales,
		avgDailySales: in.AvgDailySales,
		aiBadgePicks:  in.AIBadgePicks,
	}
	for _, layout := range layouts {
		buildCategoryHints(layout, hints, out.ItemHints)
	}

	log.Debug("menu engine run complete",
		"mode", settings.Mode,
		"categories", len(out.CategoryOrder),
		"items", len(out.ItemHints),
	)
	return out
}

// assignMembers resolves each category's items in manual order. A category
// without item ids takes the items filed under it, in input order. Every item
// belongs to at most one category and unknown ids are dropped. Categories come
// back deduplicated and sorted by display order.
func assignMembers(categories []models.Category, items []models.MenuItem) ([]models.Category, map[string][]models.MenuItem) {
	itemsByID := make(map[string]models.MenuItem, len(items))
	for _, item := range items {
		if _, dup := itemsByID[item.ID]; !dup {
			itemsByID[item.ID] = item
		}
	}

	seen := make(map[string]bool, len(categories))
	ordered := make([]models.Category, 0, len(categories))
	for _, c := range categories {
		if seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		ordered = append(ordered, c)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].DisplayOrder != ordered[j].DisplayOrder {
			return ordered[i].DisplayOrder < ordered[j].DisplayOrder
		}
		return ordered[i].ID < ordered[j].ID
	})

	claimed := make(map[string]bool, len(items))
	members := make(map[string][]models.MenuItem, len(ordered))
	claim := func(cat models.Category, item models.MenuItem) {
		claimed[item.ID] = true
		if item.CategoryID == "" {
			item.CategoryID = cat.ID
		}
		if item.CategoryName == "" {
			item.CategoryName = cat.Name
		}
		members[cat.ID] = append(members[cat.ID], item)
	}

	for _, cat := range ordered {
		if len(cat.ItemIDs) > 0 {
			for _, id := range cat.ItemIDs {
				if item, ok := itemsByID[id]; ok && !claimed[id] {
					claim(cat, item)
				}
			}
			continue
		}
		for _, item := range items {
			if item.CategoryID == cat.ID && !claimed[item.ID] {
				claim(cat, item)
			}
		}
	}
	return ordered, members
}

// orderCategories keeps manual order in classic mode and otherwise puts the
// categories with the largest gross profit contribution first.
func orderCategories(categories []models.Category, members map[string][]models.MenuItem, classic bool) []models.Category {
	ordered := append([]models.Category(nil), categories...)
	if classic {
		return ordered
	}
	profit := make(map[string]float64, len(ordered))
	for _, cat := range ordered {
		var total float64
		for _, item := range members[cat.ID] {
			total += (item.Price - item.Cost) * item.UnitsSold
		}
		profit[cat.ID] = models.Finite(total)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return profit[ordered[i].ID] > profit[ordered[j].ID]
	})
	return ordered
}

func orderCategory(items []models.MenuItem, settings models.EngineSettings, slotSales map[string]float64) Ordering {
	switch {
	case settings.Mode == models.EngineModeClassic:
		return Ordering{Items: items}
	case settings.Features.PriceAnchoring:
		return OrderItems(items, settings.Mode, slotSales)
	default:
		return Ordering{Items: items, AnchorIDs: []string{items[0].ID}}
	}
}

// categoryAnchorBundles gives low-ticket categories their best bundle as a
// visual anchor in place of an expensive dish.
func categoryAnchorBundles(layouts []categoryLayout, displayItems []models.MenuItem, bundles []models.BundleHint) map[string]models.BundleHint {
	anchors := make(map[string]models.BundleHint)
	if len(displayItems) == 0 || len(bundles) == 0 {
		return anchors
	}

	var total float64
	for _, item := range displayItems {
		total += item.Price
	}
	cutoff := total / float64(len(displayItems)) * models.LowTicketCategoryRatio

	for _, layout := range layouts {
		maxPrice := 0.0
		inCategory := make(map[string]bool, len(layout.ordering.Items))
		for _, item := range layout.ordering.Items {
			inCategory[item.ID] = true
			maxPrice = max(maxPrice, item.Price)
		}
		if maxPrice >= cutoff {
			continue
		}
		for _, b := range bundles {
			if inCategory[b.ItemIDs[0]] || inCategory[b.ItemIDs[1]] {
				anchors[layout.category.ID] = b
				break
			}
		}
	}
	return anchors
}
