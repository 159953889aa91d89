package models

// ItemDisplayHint tells the presentation layer how to render one item.
type ItemDisplayHint struct {
	DisplayTier          DisplayTier `json:"displayTier"`
	Position             int         `json:"position"`
	ShowImage            bool        `json:"showImage"`
	PriceDisplay         string      `json:"priceDisplay"`
	PriceModifierPercent int         `json:"priceModifierPercent"`
	IsAnchor             bool        `json:"isAnchor"`
	SubGroup             string      `json:"subGroup,omitempty"`
	IsLimitedToday       bool        `json:"isLimitedToday"`
	BadgeText            string      `json:"badgeText,omitempty"`
	ScrollDepthHide      bool        `json:"scrollDepthHide"`
	MoodTags             []string    `json:"moodTags"`
	SuppressBadge        bool        `json:"suppressBadge"`
}

// BundleHint is a two item combo offer. BundlePrice is always below
// OriginalPrice.
type BundleHint struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	ItemIDs       []string `json:"itemIds"`
	BundlePrice   float64  `json:"bundlePrice"`
	OriginalPrice float64  `json:"originalPrice"`
	SavingsText   string   `json:"savingsText"`
}

type MoodOption struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	ItemIDs []string `json:"itemIds"`
}

type UpsellSuggestion struct {
	Stage     UpsellStage `json:"stage"`
	ItemID    string      `json:"itemId"`
	NudgeText string      `json:"nudgeText"`
}

type MenuEngineOutput struct {
	EngineMode           EngineMode                    `json:"engineMode"`
	CategoryOrder        []string                      `json:"categoryOrder"`
	ItemHints            map[string]ItemDisplayHint    `json:"itemHints"`
	Bundles              []BundleHint                  `json:"bundles"`
	Moods                []MoodOption                  `json:"moods"`
	UpsellMap            map[string][]UpsellSuggestion `json:"upsellMap"`
	CategoryAnchorBundle map[string]BundleHint         `json:"categoryAnchorBundle"`
}

func NewMenuEngineOutput(mode EngineMode) MenuEngineOutput {
	return MenuEngineOutput{
		EngineMode:           mode,
		CategoryOrder:        []string{},
		ItemHints:            make(map[string]ItemDisplayHint),
		Bundles:              []BundleHint{},
		Moods:                []MoodOption{},
		UpsellMap:            make(map[string][]UpsellSuggestion),
		CategoryAnchorBundle: make(map[string]BundleHint),
	}
}
