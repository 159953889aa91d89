package factories

import (
	"context"
	"fmt"

	"github.com/chrisdamba/menuengine/internal/models"
	"github.com/chrisdamba/menuengine/internal/repositories"
)

// SimulatedRepository serves snapshots generated up front by a SnapshotFactory.
type SimulatedRepository struct {
	ids       []string
	snapshots map[string]models.EngineInput
}

func NewSimulatedRepository(cfg models.SimulateConfig) *SimulatedRepository {
	snapshots := NewSnapshotFactory(cfg).CreateSnapshots(cfg.Restaurants)
	repo := &SimulatedRepository{
		ids:       make([]string, 0, len(snapshots)),
		snapshots: make(map[string]models.EngineInput, len(snapshots)),
	}
	for _, s := range snapshots {
		repo.ids = append(repo.ids, s.RestaurantID)
		repo.snapshots[s.RestaurantID] = s
	}
	return repo
}

func (r *SimulatedRepository) ListRestaurants(ctx context.Context) ([]string, error) {
	return append([]string(nil), r.ids...), nil
}

func (r *SimulatedRepository) Load(ctx context.Context, restaurantID string) (models.EngineInput, error) {
	s, ok := r.snapshots[restaurantID]
	if !ok {
		return models.EngineInput{}, fmt.Errorf("%w: %s", repositories.ErrSnapshotNotFound, restaurantID)
	}
	return s, nil
}
