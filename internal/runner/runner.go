package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lucsky/cuid"
	"github.com/schollz/progressbar/v3"

	"github.com/chrisdamba/menuengine/internal/engine"
	"github.com/chrisdamba/menuengine/internal/models"
	"github.com/chrisdamba/menuengine/internal/output"
	"github.com/chrisdamba/menuengine/internal/repositories"
)

var ErrEngineFailed = errors.New("menu engine failed")

// Runner loads snapshots, runs the engine on each and publishes the results.
type Runner struct {
	repo     repositories.SnapshotRepository
	dest     output.OutputDestination
	topic    string
	settings models.EngineSettings
	logger   *slog.Logger
	progress io.Writer
	now      func() time.Time
	compute  func(models.EngineInput, ...engine.Option) models.MenuEngineOutput
}

type Option func(*Runner)

func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithProgress draws a progress bar on w.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) { r.progress = w }
}

func WithClock(now func() time.Time) Option {
	return func(r *Runner) { r.now = now }
}

// Stats summarizes one Run.
type Stats struct {
	RunID     string
	Processed int
	Failed    int
	Fallbacks int
}

// New returns a runner that applies settings to snapshots carrying none of
// their own.
func New(repo repositories.SnapshotRepository, dest output.OutputDestination, topic string, settings models.EngineSettings, opts ...Option) *Runner {
	r := &Runner{
		repo:     repo,
		dest:     dest,
		topic:    topic,
		settings: settings,
		logger:   slog.Default(),
		now:      time.Now,
		compute:  engine.Run,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run processes restaurantIDs, or every restaurant the repository knows when
// the list is empty. A failing restaurant is logged and skipped; the error
// returned covers listing and cancellation only.
func (r *Runner) Run(ctx context.Context, restaurantIDs []string) (Stats, error) {
	stats := Stats{RunID: cuid.New()}
	log := r.logger.With("run_id", stats.RunID)

	if len(restaurantIDs) == 0 {
		ids, err := r.repo.ListRestaurants(ctx)
		if err != nil {
			return stats, fmt.Errorf("failed to list restaurants: %w", err)
		}
		restaurantIDs = ids
	}
	log.Info("menu engine run started", "restaurants", len(restaurantIDs))

	var bar *progressbar.ProgressBar
	if r.progress != nil {
		bar = progressbar.NewOptions(len(restaurantIDs),
			progressbar.OptionSetWriter(r.progress),
			progressbar.OptionSetDescription("computing menus"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, id := range restaurantIDs {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		fallback, err := r.process(ctx, id, stats.RunID, log)
		if err != nil {
			stats.Failed++
			log.Error("failed to process restaurant", "restaurant_id", id, "error", err)
		} else {
			stats.Processed++
		}
		if fallback {
			stats.Fallbacks++
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	if bar != nil {
		_ = bar.Finish()
	}

	log.Info("menu engine run complete",
		"processed", stats.Processed,
		"failed", stats.Failed,
		"fallbacks", stats.Fallbacks,
	)
	return stats, nil
}

func (r *Runner) process(ctx context.Context, restaurantID, runID string, log *slog.Logger) (bool, error) {
	input, err := r.repo.Load(ctx, restaurantID)
	if err != nil {
		return false, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if input.RestaurantID == "" {
		input.RestaurantID = restaurantID
	}
	input.Settings = r.applySettings(input.Settings)

	out, fallback, err := r.computeWithFallback(input, log)
	if err != nil {
		return fallback, err
	}

	msg, err := json.Marshal(models.EngineResult{
		RunID:        runID,
		RestaurantID: input.RestaurantID,
		Timestamp:    r.now().Unix(),
		Fallback:     fallback,
		Output:       out,
	})
	if err != nil {
		return fallback, fmt.Errorf("error serializing engine result: %w", err)
	}
	if err := r.dest.WriteMessage(r.topic, msg); err != nil {
		return fallback, fmt.Errorf("failed to write message: %w", err)
	}
	return fallback, nil
}

// computeWithFallback runs the engine once, and once more in classic mode if the first
// attempt panics.
func (r *Runner) computeWithFallback(input models.EngineInput, log *slog.Logger) (models.MenuEngineOutput, bool, error) {
	engineLog := log.With("restaurant_id", input.RestaurantID)

	out, err := r.safeCompute(input, engineLog)
	if err == nil {
		return out, false, nil
	}
	engineLog.Error("menu engine failed, falling back to classic mode", "error", err)

	input.Settings.Mode = models.EngineModeClassic
	out, err = r.safeCompute(input, engineLog)
	if err != nil {
		return models.MenuEngineOutput{}, true, err
	}
	return out, true, nil
}

func (r *Runner) safeCompute(input models.EngineInput, log *slog.Logger) (out models.MenuEngineOutput, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrEngineFailed, rec)
		}
	}()
	return r.compute(input, engine.WithLogger(log)), nil
}

// applySettings keeps snapshot settings that name a mode, and otherwise uses
// the configured ones with the snapshot's currency symbol.
func (r *Runner) applySettings(s models.EngineSettings) models.EngineSettings {
	if s.Mode != "" {
		return s
	}
	merged := r.settings
	if s.CurrencySymbol != "" {
		merged.CurrencySymbol = s.CurrencySymbol
	}
	return merged
}
