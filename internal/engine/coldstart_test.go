package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chrisdamba/menuengine/internal/models"
)

func TestIsColdStart(t *testing.T) {
	assert.True(t, IsColdStart(models.Category{AvgUnitsSold: 0}, models.EngineModeProfit))
	assert.True(t, IsColdStart(models.Category{AvgUnitsSold: 0.5}, models.EngineModeAdaptive))
	assert.False(t, IsColdStart(models.Category{AvgUnitsSold: 0.6}, models.EngineModeProfit))
	assert.False(t, IsColdStart(models.Category{AvgUnitsSold: 0}, models.EngineModeClassic))
}

func TestResolveColdStartTierWithPicks(t *testing.T) {
	picks := &models.AIBadgePicks{SignatureIDs: []string{"sig"}, MostLovedIDs: []string{"loved"}}

	got := ResolveColdStartTier("sig", 5, 10, picks)
	assert.Equal(t, models.DisplayTierHero, got.Tier)
	assert.False(t, got.SuppressBadge)
	assert.Equal(t, models.BadgeSignature, got.BadgeText)

	got = ResolveColdStartTier("loved", 0, 10, picks)
	assert.Equal(t, models.DisplayTierFeatured, got.Tier)
	assert.False(t, got.SuppressBadge)

	// the recommender ran, so position no longer promotes anything
	got = ResolveColdStartTier("other", 0, 10, picks)
	assert.Equal(t, models.DisplayTierStandard, got.Tier)
	assert.True(t, got.SuppressBadge)

	got = ResolveColdStartTier("other", 0, 10, &models.AIBadgePicks{})
	assert.Equal(t, models.DisplayTierStandard, got.Tier)
	assert.True(t, got.SuppressBadge)
}

func TestResolveColdStartTierByPosition(t *testing.T) {
	tests := []struct {
		name  string
		index int
		count int
		want  models.DisplayTier
	}{
		{"first of three is hero", 0, 3, models.DisplayTierHero},
		{"first of two stays standard", 0, 2, models.DisplayTierStandard},
		{"second of four is featured", 1, 4, models.DisplayTierFeatured},
		{"second of three stays standard", 1, 3, models.DisplayTierStandard},
		{"third is standard", 2, 10, models.DisplayTierStandard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveColdStartTier("x", tt.index, tt.count, nil)
			assert.Equal(t, tt.want, got.Tier)
			assert.Equal(t, tt.want == models.DisplayTierStandard, got.SuppressBadge)
		})
	}
}
