package output

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chrisdamba/menuengine/internal/models"
)

// PostgresOutput stores the latest result per restaurant and replaces its
// item hint rows in one transaction.
type PostgresOutput struct {
	ctx  context.Context
	pool *pgxpool.Pool
}

func NewPostgresOutput(ctx context.Context, cfg models.DatabaseConfig) (*PostgresOutput, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return &PostgresOutput{ctx: ctx, pool: pool}, nil
}

func (p *PostgresOutput) WriteMessage(topic string, msg []byte) error {
	result, err := decodeResult(msg)
	if err != nil {
		return err
	}

	tx, err := p.pool.Begin(p.ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(p.ctx)

	_, err = tx.Exec(p.ctx, `
        INSERT INTO menu_engine_outputs (restaurant_id, topic, generated_at, engine_mode, fallback, output)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (restaurant_id, topic) DO UPDATE SET
            generated_at = EXCLUDED.generated_at,
            engine_mode = EXCLUDED.engine_mode,
            fallback = EXCLUDED.fallback,
            output = EXCLUDED.output
    `,
		result.RestaurantID,
		topic,
		time.Unix(result.Timestamp, 0).UTC(),
		string(result.Output.EngineMode),
		result.Fallback,
		msg,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert engine output: %w", err)
	}

	if _, err := tx.Exec(p.ctx, `DELETE FROM menu_item_display_hints WHERE restaurant_id = $1`, result.RestaurantID); err != nil {
		return fmt.Errorf("failed to clear display hints: %w", err)
	}

	rows := HintRows(result)
	_, err = tx.CopyFrom(
		p.ctx,
		pgx.Identifier{"menu_item_display_hints"},
		[]string{
			"restaurant_id", "item_id", "display_tier", "position", "show_image",
			"price_display", "price_modifier_percent", "is_anchor", "sub_group",
			"is_limited_today", "badge_text", "scroll_depth_hide", "suppress_badge",
			"mood_tags", "upsell_count", "in_bundle",
		},
		pgx.CopyFromSlice(len(rows), func(i int) ([]any, error) {
			r := rows[i]
			return []any{
				r.RestaurantID,
				r.ItemID,
				r.DisplayTier,
				r.Position,
				r.ShowImage,
				r.PriceDisplay,
				r.PriceModifierPercent,
				r.IsAnchor,
				r.SubGroup,
				r.IsLimitedToday,
				r.BadgeText,
				r.ScrollDepthHide,
				r.SuppressBadge,
				r.MoodTags,
				r.UpsellCount,
				r.InBundle,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy display hints: %w", err)
	}
	return tx.Commit(p.ctx)
}

func (p *PostgresOutput) Close() error {
	p.pool.Close()
	return nil
}
