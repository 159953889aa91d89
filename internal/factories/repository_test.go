package factories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisdamba/menuengine/internal/models"
	"github.com/chrisdamba/menuengine/internal/repositories"
)

func TestSimulatedRepository(t *testing.T) {
	cfg := models.SimulateConfig{Seed: 3, Restaurants: 4, MinItems: 6, MaxItems: 12}
	repo := NewSimulatedRepository(cfg)
	ctx := context.Background()

	ids, err := repo.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, ids, 4)

	want := NewSnapshotFactory(cfg).CreateSnapshots(4)
	for i, id := range ids {
		got, err := repo.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want[i], got)
	}

	_, err = repo.Load(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrSnapshotNotFound)
}
