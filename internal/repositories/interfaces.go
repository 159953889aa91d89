package repositories

import (
	"context"
	"errors"

	"github.com/chrisdamba/menuengine/internal/models"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository loads the aggregated menu snapshot the engine runs on.
type SnapshotRepository interface {
	Load(ctx context.Context, restaurantID string) (models.EngineInput, error)
	ListRestaurants(ctx context.Context) ([]string, error)
}
