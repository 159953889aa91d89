package engine

import (
	"strings"
	"unicode"

	"github.com/chrisdamba/menuengine/internal/models"
)

// categoryAliases maps alternate category names onto item types. Canonical
// names are deliberately absent so items filed under them are re-checked by
// content.
var categoryAliases = map[string]models.ItemType{
	"beverages":          models.ItemTypeDrink,
	"drinks & beverages": models.ItemTypeDrink,
	"soft drinks":        models.ItemTypeDrink,
	"hot drinks":         models.ItemTypeDrink,
	"cold drinks":        models.ItemTypeDrink,
	"juices":             models.ItemTypeDrink,
	"coffee & tea":       models.ItemTypeDrink,
	"sweets":             models.ItemTypeDessert,
	"desserts & sweets":  models.ItemTypeDessert,
	"cakes":              models.ItemTypeDessert,
	"kids menu":          models.ItemTypeKids,
	"kids meals":         models.ItemTypeKids,
	"children":           models.ItemTypeKids,
	"for kids":           models.ItemTypeKids,
	"extras":             models.ItemTypeAddOn,
	"toppings":           models.ItemTypeAddOn,
	"add ons":            models.ItemTypeAddOn,
	"addons":             models.ItemTypeAddOn,
	"side dishes":        models.ItemTypeSide,
	"accompaniments":     models.ItemTypeSide,
	"starters":           models.ItemTypeShareable,
	"appetizers":         models.ItemTypeShareable,
	"sharing plates":     models.ItemTypeShareable,
	"small plates":       models.ItemTypeShareable,
	"to share":           models.ItemTypeShareable,
	"mains":              models.ItemTypeMainDish,
	"entrees":            models.ItemTypeMainDish,
	"main course":        models.ItemTypeMainDish,
	"main courses":       models.ItemTypeMainDish,
	"large plates":       models.ItemTypeMainDish,
}

var canonicalCategoryNames = map[string]models.ItemType{
	"main dishes": models.ItemTypeMainDish,
	"shareables":  models.ItemTypeShareable,
	"add-ons":     models.ItemTypeAddOn,
	"drinks":      models.ItemTypeDrink,
	"desserts":    models.ItemTypeDessert,
	"kids":        models.ItemTypeKids,
	"sides":       models.ItemTypeSide,
}

type typeKeywords struct {
	Type     models.ItemType
	Keywords []string
}

// itemTypeKeywords is checked top to bottom, first match wins. Specific kinds
// come before Main Dish so "kids burger" stays a kids item.
var itemTypeKeywords = []typeKeywords{
	{models.ItemTypeDrink, []string{
		"drink", "beverage", "juice", "soda", "coffee", "tea", "latte", "espresso",
		"cappuccino", "smoothie", "shake", "milkshake", "lemonade", "water", "beer",
		"wine", "cocktail", "mocktail",
	}},
	{models.ItemTypeDessert, []string{
		"dessert", "cake", "cheesecake", "ice cream", "gelato", "sundae", "brownie",
		"pudding", "tiramisu", "sweets", "apple pie", "cookie", "waffle", "baklava",
	}},
	{models.ItemTypeKids, []string{"kids", "kid", "child", "children", "junior"}},
	{models.ItemTypeAddOn, []string{
		"add on", "addon", "extra", "topping", "sauce", "dip", "dressing",
	}},
	{models.ItemTypeSide, []string{
		"side", "fries", "coleslaw", "mash", "steamed rice", "garlic bread", "naan",
		"onion rings",
	}},
	{models.ItemTypeShareable, []string{
		"platter", "share", "sharing", "starter", "appetizer", "wings", "nachos",
		"tapas", "sampler", "bucket", "family",
	}},
	{models.ItemTypeMainDish, []string{
		"main", "burger", "pizza", "pasta", "steak", "grill", "curry", "chicken",
		"beef", "salmon", "ramen", "burrito", "sandwich", "bowl",
	}},
}

// ClassifyItemType maps an item to one of the seven semantic types.
func ClassifyItemType(item models.MenuItem) models.ItemType {
	category := strings.ToLower(strings.TrimSpace(item.CategoryName))
	if _, canonical := canonicalCategoryNames[category]; !canonical {
		if t, ok := categoryAliases[category]; ok {
			return t
		}
	}

	text := normalizeText(item.CategoryName + " " + item.Name + " " + strings.Join(item.Tags, " "))
	for _, rule := range itemTypeKeywords {
		if matchesAny(text, rule.Keywords) {
			return rule.Type
		}
	}
	return models.ItemTypeMainDish
}

// normalizeText lower-cases s and collapses every run of non alphanumeric
// characters into a single space, with a leading space so keywords can be
// matched at word starts.
func normalizeText(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 1)
	b.WriteByte(' ')
	space := true
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			space = false
			continue
		}
		if !space {
			b.WriteByte(' ')
			space = true
		}
	}
	return b.String()
}

// wholeWordKeywords are short enough to start unrelated words ("watermelon",
// "kidney") and only match as a word of their own or its plural.
var wholeWordKeywords = map[string]bool{
	"water": true,
	"kid":   true,
	"tea":   true,
}

// matchesAny reports whether one of keywords starts a word of the normalized
// text, so "grill" matches "grilled". Whole-word keywords such as "tea" match
// "teas" but not "steak" or "teapot".
func matchesAny(normalized string, keywords []string) bool {
	padded := normalized + " "
	for _, kw := range keywords {
		needle := normalizeText(kw)
		if wholeWordKeywords[kw] {
			if strings.Contains(padded, needle+" ") || strings.Contains(padded, needle+"s ") {
				return true
			}
			continue
		}
		if strings.Contains(normalized, needle) {
			return true
		}
	}
	return false
}
