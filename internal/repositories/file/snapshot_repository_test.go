package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisdamba/menuengine/internal/models"
	"github.com/chrisdamba/menuengine/internal/repositories"
)

const yamlSnapshot = `
items:
  - id: burger
    name: Burger
    price: 12000
    category_id: mains
    margin_percent: 60
    units_sold: 40
categories:
  - id: mains
    name: Main Dishes
    display_order: 1
    item_ids: [burger]
    avg_units_sold: 20
prepped_stocks:
  burger: 3
settings:
  mode: adaptive
ai_badge_picks:
  signature_ids: [burger]
`

func TestSnapshotRepositoryDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bistro.yaml"), []byte(yamlSnapshot), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cafe.json"), []byte(`{"restaurant_id":"cafe-42","items":[{"id":"latte","price":3500}]}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	repo := NewSnapshotRepository(dir)
	ctx := context.Background()

	ids, err := repo.ListRestaurants(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bistro", "cafe"}, ids)

	bistro, err := repo.Load(ctx, "bistro")
	require.NoError(t, err)
	assert.Equal(t, "bistro", bistro.RestaurantID)
	require.Len(t, bistro.Items, 1)
	assert.Equal(t, 12000.0, bistro.Items[0].Price)
	assert.Equal(t, []string{"burger"}, bistro.Categories[0].ItemIDs)
	assert.Equal(t, 3, bistro.PreppedStocks["burger"])
	assert.Equal(t, models.EngineModeAdaptive, bistro.Settings.Mode)
	require.NotNil(t, bistro.AIBadgePicks)
	assert.Equal(t, []string{"burger"}, bistro.AIBadgePicks.SignatureIDs)

	cafe, err := repo.Load(ctx, "cafe")
	require.NoError(t, err)
	assert.Equal(t, "cafe-42", cafe.RestaurantID)
	assert.Nil(t, cafe.AIBadgePicks)

	_, err = repo.Load(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrSnapshotNotFound)
}

func TestSnapshotRepositorySingleFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots", "diner.json")
	in := models.EngineInput{
		Items:         []models.MenuItem{{ID: "pie", Name: "Apple Pie", Price: 4000, Tags: []string{"sweet"}}},
		TodaySales:    map[string]int{"pie": 2},
		AvgDailySales: 3.5,
	}
	require.NoError(t, WriteSnapshot(path, in))

	repo := NewSnapshotRepository(path)
	ids, err := repo.ListRestaurants(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"diner"}, ids)

	got, err := repo.Load(context.Background(), "diner")
	require.NoError(t, err)
	assert.Equal(t, "diner", got.RestaurantID)
	assert.Equal(t, in.Items, got.Items)
	assert.Equal(t, in.TodaySales, got.TodaySales)
	assert.Equal(t, 3.5, got.AvgDailySales)
}

func TestReadSnapshotRejectsMalformedDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := ReadSnapshot(path)
	assert.Error(t, err)
}
