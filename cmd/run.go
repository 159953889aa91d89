package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/menuengine/internal/factories"
	"github.com/chrisdamba/menuengine/internal/models"
	"github.com/chrisdamba/menuengine/internal/output"
	"github.com/chrisdamba/menuengine/internal/repositories"
	"github.com/chrisdamba/menuengine/internal/repositories/file"
	"github.com/chrisdamba/menuengine/internal/repositories/postgres"
	"github.com/chrisdamba/menuengine/internal/runner"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute display hints for every configured restaurant",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext(cmd.Context())
		defer stop()

		repo, closeRepo, err := newRepository(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeRepo()

		return runEngine(ctx, repo, cfg.Input.RestaurantIDs)
	},
}

func init() {
	runCmd.Flags().String("source", "file", "Snapshot source (file, postgres or simulate)")
	runCmd.Flags().String("input-path", "snapshots", "Snapshot file or directory for the file source")
	runCmd.Flags().StringSlice("restaurant", nil, "Restaurant ids to process (default all)")

	bindFlag(runCmd.Flags().Lookup("source"), "input.source")
	bindFlag(runCmd.Flags().Lookup("input-path"), "input.path")
	bindFlag(runCmd.Flags().Lookup("restaurant"), "input.restaurant_ids")
}

func newRepository(ctx context.Context, cfg *models.Config) (repositories.SnapshotRepository, func(), error) {
	switch cfg.Input.Source {
	case "file":
		return file.NewSnapshotRepository(cfg.Input.Path), func() {}, nil
	case "simulate":
		return factories.NewSimulatedRepository(cfg.Simulate), func() {}, nil
	case "postgres":
		pool, err := postgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		repo, err := postgres.NewSnapshotRepository(pool, cfg.Database)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", models.ErrUnknownInputSource, cfg.Input.Source)
}

func runEngine(ctx context.Context, repo repositories.SnapshotRepository, restaurantIDs []string) error {
	dest, err := output.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create output destination: %w", err)
	}
	defer func() {
		if err := dest.Close(); err != nil {
			logger.Error("failed to close output destination", "error", err)
		}
	}()

	opts := []runner.Option{runner.WithLogger(logger)}
	if !noProgress && cfg.Output.Destination != "console" {
		opts = append(opts, runner.WithProgress(os.Stderr))
	}

	stats, err := runner.New(repo, dest, cfg.Output.Topic, cfg.Engine, opts...).Run(ctx, restaurantIDs)
	if err != nil {
		return err
	}
	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d restaurants failed", stats.Failed, stats.Failed+stats.Processed)
	}
	return nil
}
