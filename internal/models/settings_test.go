package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngineSettingsValidate(t *testing.T) {
	assert.NoError(t, DefaultEngineSettings().Validate())

	s := DefaultEngineSettings()
	s.Mode = "aggressive"
	assert.ErrorIs(t, s.Validate(), ErrUnknownEngineMode)

	s = DefaultEngineSettings()
	s.BundleCorrelationThreshold = 1.5
	assert.ErrorIs(t, s.Validate(), ErrInvalidCorrelation)

	s = DefaultEngineSettings()
	s.MaxInitialItemsPerCategory = -1
	assert.ErrorIs(t, s.Validate(), ErrInvalidCategoryItemLimit)
}

func TestEngineSettingsNormalized(t *testing.T) {
	got := EngineSettings{}.Normalized()
	assert.Equal(t, EngineModeProfit, got.Mode)
	assert.Equal(t, DefaultBundleCorrelationThreshold, got.BundleCorrelationThreshold)
	assert.Equal(t, DefaultPremiumPriceThreshold, got.PremiumPriceThreshold)

	got = EngineSettings{
		Mode:                       "aggressive",
		BundleCorrelationThreshold: math.NaN(),
		PremiumPriceThreshold:      -3,
		MaxItemsPerCategory:        -1,
		MaxInitialItemsPerCategory: -2,
	}.Normalized()
	assert.Equal(t, EngineModeClassic, got.Mode)
	assert.Equal(t, DefaultBundleCorrelationThreshold, got.BundleCorrelationThreshold)
	assert.Equal(t, DefaultPremiumPriceThreshold, got.PremiumPriceThreshold)
	assert.Zero(t, got.MaxItemsPerCategory)
	assert.Zero(t, got.MaxInitialItemsPerCategory)

	got = EngineSettings{Mode: EngineModeAdaptive, BundleCorrelationThreshold: 0.5}.Normalized()
	assert.Equal(t, EngineModeAdaptive, got.Mode)
	assert.Equal(t, 0.5, got.BundleCorrelationThreshold)
}

func TestMarginPercentOf(t *testing.T) {
	assert.InDelta(t, 75.0, MarginPercentOf(4000, 1000), 1e-9)
	assert.Zero(t, MarginPercentOf(0, 10))
	assert.Zero(t, MarginPercentOf(math.NaN(), 10))
}

func TestEngineInputSanitizedIsDeepCopy(t *testing.T) {
	in := EngineInput{
		Items:         []MenuItem{{ID: "a", Price: math.Inf(1), Tags: []string{"x"}}},
		Categories:    []Category{{ID: "c", ItemIDs: []string{"a"}, AvgUnitsSold: math.NaN()}},
		PreppedStocks: map[string]int{"a": 2},
		AIBadgePicks:  &AIBadgePicks{SignatureIDs: []string{"a"}},
	}

	out := in.Sanitized()
	out.Items[0].Tags[0] = "changed"
	out.Categories[0].ItemIDs[0] = "changed"
	out.PreppedStocks["a"] = 9
	out.AIBadgePicks.SignatureIDs[0] = "changed"

	assert.Zero(t, out.Items[0].Price)
	assert.Zero(t, out.Categories[0].AvgUnitsSold)
	assert.Equal(t, "x", in.Items[0].Tags[0])
	assert.Equal(t, "a", in.Categories[0].ItemIDs[0])
	assert.Equal(t, 2, in.PreppedStocks["a"])
	assert.Equal(t, "a", in.AIBadgePicks.SignatureIDs[0])
	assert.Equal(t, EngineModeProfit, out.Settings.Mode)
}
