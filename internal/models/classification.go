package models

// ItemType is the semantic kind of a menu item, used to avoid nonsense
// pairings in bundles.
type ItemType string

const (
	ItemTypeMainDish  ItemType = "Main Dish"
	ItemTypeShareable ItemType = "Shareable"
	ItemTypeAddOn     ItemType = "Add-on"
	ItemTypeDrink     ItemType = "Drink"
	ItemTypeDessert   ItemType = "Dessert"
	ItemTypeKids      ItemType = "Kids"
	ItemTypeSide      ItemType = "Side"
)

// Quadrant is the margin vs popularity cell of an item.
type Quadrant string

const (
	QuadrantStar      Quadrant = "STAR"
	QuadrantWorkhorse Quadrant = "WORKHORSE"
	QuadrantPuzzle    Quadrant = "PUZZLE"
	QuadrantDog       Quadrant = "DOG"
)

type DisplayTier string

const (
	DisplayTierHero     DisplayTier = "hero"
	DisplayTierFeatured DisplayTier = "featured"
	DisplayTierStandard DisplayTier = "standard"
	DisplayTierMinimal  DisplayTier = "minimal"
)

// Rank orders tiers from least (0) to most prominent.
func (t DisplayTier) Rank() int {
	switch t {
	case DisplayTierHero:
		return 3
	case DisplayTierFeatured:
		return 2
	case DisplayTierStandard:
		return 1
	}
	return 0
}

type UpsellStage string

const (
	UpsellStageProteinUpgrade UpsellStage = "protein_upgrade"
	UpsellStagePremiumSide    UpsellStage = "premium_side"
	UpsellStageBeverage       UpsellStage = "beverage"
	UpsellStageDessert        UpsellStage = "dessert"
)

const (
	MoodLight   = "light"
	MoodFilling = "filling"
	MoodSharing = "sharing"
	MoodPremium = "premium"
)
