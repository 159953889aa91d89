package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/chrisdamba/menuengine/internal/logging"
	"github.com/chrisdamba/menuengine/internal/models"
)

var (
	cfgFile    string
	cfg        *models.Config
	logger     *slog.Logger
	closeLog   func() error
	noProgress bool
)

var rootCmd = &cobra.Command{
	Use:   "menuengine",
	Short: "Computes menu display hints for restaurants",
	Long: `menuengine turns a restaurant's menu and sales snapshot into display hints:
category order, item tiers and badges, price anchors, bundles, mood groups,
upsell sequences and scarcity badges.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = models.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		logger, closeLog = logging.SetupLogger(cfg.LogFile, level)
		slog.SetDefault(logger)
		if path := viper.ConfigFileUsed(); path != "" {
			logger.Debug("using config file", "path", path)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog != nil {
			return closeLog()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./menuengine.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
	rootCmd.PersistentFlags().String("mode", "profit", "Engine mode (classic, profit or adaptive)")
	rootCmd.PersistentFlags().String("output", "console", "Output destination (console, file, kafka, parquet or postgres)")
	rootCmd.PersistentFlags().String("output-path", "", "Base path for file and parquet output")
	rootCmd.PersistentFlags().BoolVar(&noProgress, "no-progress", false, "Hide the progress bar")

	bindFlag(rootCmd.PersistentFlags().Lookup("log-level"), "log_level")
	bindFlag(rootCmd.PersistentFlags().Lookup("log-file"), "log_file")
	bindFlag(rootCmd.PersistentFlags().Lookup("mode"), "engine.mode")
	bindFlag(rootCmd.PersistentFlags().Lookup("output"), "output.destination")
	bindFlag(rootCmd.PersistentFlags().Lookup("output-path"), "output.path")

	rootCmd.AddCommand(runCmd, simulateCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
