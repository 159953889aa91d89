package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chrisdamba/menuengine/internal/models"
)

func TestClassifyItemType(t *testing.T) {
	tests := []struct {
		name string
		item models.MenuItem
		want models.ItemType
	}{
		{"alias category wins", models.MenuItem{Name: "House Special", CategoryName: "Beverages"}, models.ItemTypeDrink},
		{"alias is case insensitive", models.MenuItem{Name: "Cheese", CategoryName: "  EXTRAS "}, models.ItemTypeAddOn},
		{"canonical category is rechecked by content", models.MenuItem{Name: "Iced Latte", CategoryName: "Desserts"}, models.ItemTypeDrink},
		{"kids before main dish", models.MenuItem{Name: "Kids Burger", CategoryName: "Main Dishes"}, models.ItemTypeKids},
		{"shareable before main dish", models.MenuItem{Name: "Chicken Wings", CategoryName: "Specials"}, models.ItemTypeShareable},
		{"steak is not tea", models.MenuItem{Name: "Grilled Steak", CategoryName: "Specials"}, models.ItemTypeMainDish},
		{"watermelon is not water", models.MenuItem{Name: "Watermelon Feta Salad", CategoryName: "Specials"}, models.ItemTypeMainDish},
		{"kidney is not kid", models.MenuItem{Name: "Kidney Bean Chili", CategoryName: "Specials"}, models.ItemTypeMainDish},
		{"whole word keyword", models.MenuItem{Name: "Sparkling Water", CategoryName: "Specials"}, models.ItemTypeDrink},
		{"side by category", models.MenuItem{Name: "Fries", CategoryName: "Sides"}, models.ItemTypeSide},
		{"dessert by category", models.MenuItem{Name: "Chocolate Lava", CategoryName: "Desserts"}, models.ItemTypeDessert},
		{"tags count", models.MenuItem{Name: "House Special", Tags: []string{"Smoothie"}}, models.ItemTypeDrink},
		{"default main dish", models.MenuItem{Name: "Mystery Box"}, models.ItemTypeMainDish},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyItemType(tt.item))
		})
	}
}

func TestMatchesAnyAtWordStart(t *testing.T) {
	text := normalizeText("Grilled Steak & Ice-Cream")
	assert.True(t, matchesAny(text, []string{"grill"}))
	assert.True(t, matchesAny(text, []string{"ice cream"}))
	assert.False(t, matchesAny(text, []string{"tea"}))
	assert.False(t, matchesAny(text, []string{"rilled"}))
}

func TestMatchesAnyWholeWordKeywords(t *testing.T) {
	assert.True(t, matchesAny(normalizeText("Iced Teas"), []string{"tea"}))
	assert.True(t, matchesAny(normalizeText("Kid Meal"), []string{"kid"}))
	assert.False(t, matchesAny(normalizeText("Teapot Special"), []string{"tea"}))
	assert.False(t, matchesAny(normalizeText("Watermelon"), []string{"water"}))
	assert.False(t, matchesAny(normalizeText("Kidney Beans"), []string{"kid"}))
}
