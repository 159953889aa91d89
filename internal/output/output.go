package output

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chrisdamba/menuengine/internal/cloudwriter"
	"github.com/chrisdamba/menuengine/internal/models"
)

// OutputDestination receives one serialized models.EngineResult per message.
type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// New builds the destination selected by cfg.Output.Destination.
func New(ctx context.Context, cfg *models.Config) (OutputDestination, error) {
	switch cfg.Output.Destination {
	case "console":
		return NewConsoleOutput(nil), nil
	case "file":
		return NewJSONOutput(cfg.Output.Path, cfg.Output.Folder), nil
	case "kafka":
		return NewKafkaOutput(cfg.Kafka)
	case "postgres":
		return NewPostgresOutput(ctx, cfg.Database)
	case "parquet":
		store, err := cloudwriter.NewStore(ctx, cfg.CloudStorage)
		if err != nil {
			return nil, fmt.Errorf("failed to create object store: %w", err)
		}
		return NewParquetOutput(ctx, cfg.Output.Path, cfg.Output.Folder, store), nil
	}
	return nil, fmt.Errorf("%w: %q", models.ErrUnknownOutputDestination, cfg.Output.Destination)
}

func decodeResult(msg []byte) (models.EngineResult, error) {
	var result models.EngineResult
	if err := json.Unmarshal(msg, &result); err != nil {
		return result, fmt.Errorf("invalid engine result: %w", err)
	}
	if result.RestaurantID == "" {
		return result, fmt.Errorf("invalid engine result: missing restaurant_id")
	}
	return result, nil
}

// partitionPath lays results out by restaurant and UTC day.
func partitionPath(result models.EngineResult) string {
	day := time.Unix(result.Timestamp, 0).UTC()
	return fmt.Sprintf("restaurant_id=%s/date=%s", result.RestaurantID, day.Format(time.DateOnly))
}
