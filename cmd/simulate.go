package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/menuengine/internal/factories"
	"github.com/chrisdamba/menuengine/internal/repositories/file"
)

var writeSnapshots string

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Generate synthetic restaurant snapshots and run the engine on them",
	Long: `simulate builds deterministic restaurant snapshots from a seed. With
--write-snapshots they are saved as YAML for the file source; otherwise they
go straight through the engine to the configured output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if writeSnapshots != "" {
			snapshots := factories.NewSnapshotFactory(cfg.Simulate).CreateSnapshots(cfg.Simulate.Restaurants)
			for _, s := range snapshots {
				path := filepath.Join(writeSnapshots, s.RestaurantID+".yaml")
				if err := file.WriteSnapshot(path, s); err != nil {
					return fmt.Errorf("failed to write snapshot %s: %w", s.RestaurantID, err)
				}
			}
			logger.Info("snapshots written", "dir", writeSnapshots, "count", len(snapshots))
			return nil
		}
		ctx, stop := signalContext(cmd.Context())
		defer stop()

		return runEngine(ctx, factories.NewSimulatedRepository(cfg.Simulate), nil)
	},
}

func init() {
	simulateCmd.Flags().Int64("seed", 42, "Random seed for simulation")
	simulateCmd.Flags().Int("restaurants", 10, "Number of restaurants to simulate")
	simulateCmd.Flags().Int("min-items", 10, "Minimum menu items per restaurant")
	simulateCmd.Flags().Int("max-items", 30, "Maximum menu items per restaurant")
	simulateCmd.Flags().StringVar(&writeSnapshots, "write-snapshots", "", "Write snapshots to this directory instead of running the engine")

	bindFlag(simulateCmd.Flags().Lookup("seed"), "simulate.seed")
	bindFlag(simulateCmd.Flags().Lookup("restaurants"), "simulate.restaurants")
	bindFlag(simulateCmd.Flags().Lookup("min-items"), "simulate.min_items")
	bindFlag(simulateCmd.Flags().Lookup("max-items"), "simulate.max_items")
}
