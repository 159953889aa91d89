package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chrisdamba/menuengine/internal/models"
	"github.com/chrisdamba/menuengine/internal/repositories"
)

// SnapshotRepository aggregates a restaurant's trailing order history into
// an engine snapshot.
type SnapshotRepository struct {
	pool       *pgxpool.Pool
	windowDays int
	location   *time.Location
	now        func() time.Time
}

func Connect(ctx context.Context, cfg models.DatabaseConfig) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return pool, nil
}

func NewSnapshotRepository(pool *pgxpool.Pool, cfg models.DatabaseConfig) (*SnapshotRepository, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid database timezone %q: %w", cfg.Timezone, err)
	}
	days := cfg.TrailingWindowDays
	if days <= 0 {
		days = 30
	}
	return &SnapshotRepository{pool: pool, windowDays: days, location: loc, now: time.Now}, nil
}

func (r *SnapshotRepository) ListRestaurants(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM restaurants WHERE NOT offline ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan restaurants: %w", err)
	}
	return ids, nil
}

func (r *SnapshotRepository) Load(ctx context.Context, restaurantID string) (models.EngineInput, error) {
	var currency string
	err := r.pool.QueryRow(ctx, `SELECT COALESCE(currency_symbol, '') FROM restaurants WHERE id = $1`, restaurantID).Scan(&currency)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.EngineInput{}, fmt.Errorf("%w: %s", repositories.ErrSnapshotNotFound, restaurantID)
	}
	if err != nil {
		return models.EngineInput{}, fmt.Errorf("failed to load restaurant %s: %w", restaurantID, err)
	}

	input := models.EngineInput{RestaurantID: restaurantID}
	input.Settings.CurrencySymbol = currency

	if input.Items, err = r.loadItems(ctx, restaurantID); err != nil {
		return models.EngineInput{}, err
	}
	if input.Categories, err = r.loadCategories(ctx, restaurantID, input.Items); err != nil {
		return models.EngineInput{}, err
	}
	if input.CoPurchasePairs, err = r.loadCoPurchasePairs(ctx, restaurantID); err != nil {
		return models.EngineInput{}, err
	}
	if input.TodaySales, err = r.loadTodaySales(ctx, restaurantID); err != nil {
		return models.EngineInput{}, err
	}
	if input.PreppedStocks, err = r.loadPreppedStocks(ctx, restaurantID); err != nil {
		return models.EngineInput{}, err
	}
	if input.UnitsSoldInCurrentTimeSlot, err = r.loadTimeSlotSales(ctx, restaurantID); err != nil {
		return models.EngineInput{}, err
	}
	if input.AIBadgePicks, err = r.loadBadgePicks(ctx, restaurantID); err != nil {
		return models.EngineInput{}, err
	}
	input.AvgDailySales = avgDailySalesPerItem(input.Items, r.windowDays)
	return input, nil
}

const recentOrders = `
    o.restaurant_id = $1
    AND o.status <> 'cancelled'
    AND o.created_at >= now() - make_interval(days => $2::int)
`

func (r *SnapshotRepository) loadItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	query := `
        SELECT
            mi.id,
            mi.name,
            mi.price::float8,
            COALESCE(mi.cost, 0)::float8,
            COALESCE(mi.category_id, ''),
            COALESCE(mc.name, ''),
            COALESCE(mi.tags, '{}'),
            COALESCE(s.units, 0)::float8
        FROM menu_items mi
        LEFT JOIN menu_categories mc ON mc.id = mi.category_id
        LEFT JOIN (
            SELECT oi.menu_item_id, SUM(oi.quantity) AS units
            FROM order_items oi
            JOIN orders o ON o.id = oi.order_id
            WHERE ` + recentOrders + `
            GROUP BY oi.menu_item_id
        ) s ON s.menu_item_id = mi.id
        WHERE mi.restaurant_id = $1 AND mi.is_active
        ORDER BY mi.display_order, mi.id
    `
	rows, err := r.pool.Query(ctx, query, restaurantID, r.windowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Price,
			&item.Cost,
			&item.CategoryID,
			&item.CategoryName,
			&item.Tags,
			&item.UnitsSold,
		); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		item.MarginPercent = models.MarginPercentOf(item.Price, item.Cost)
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *SnapshotRepository) loadCategories(ctx context.Context, restaurantID string, items []models.MenuItem) ([]models.Category, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT id, name, display_order
        FROM menu_categories
        WHERE restaurant_id = $1
        ORDER BY display_order, id
    `, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.DisplayOrder); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summarizeCategories(categories, items), nil
}

// summarizeCategories fills member ids in item order plus the per-category
// sales and margin averages.
func summarizeCategories(categories []models.Category, items []models.MenuItem) []models.Category {
	index := make(map[string]int, len(categories))
	for i, c := range categories {
		index[c.ID] = i
		categories[i].ItemIDs = nil
	}
	units := make([]float64, len(categories))
	margins := make([]float64, len(categories))
	for _, item := range items {
		i, ok := index[item.CategoryID]
		if !ok {
			continue
		}
		categories[i].ItemIDs = append(categories[i].ItemIDs, item.ID)
		units[i] += item.UnitsSold
		margins[i] += item.MarginPercent
	}
	for i := range categories {
		if n := float64(len(categories[i].ItemIDs)); n > 0 {
			categories[i].AvgUnitsSold = units[i] / n
			categories[i].AvgMargin = margins[i] / n
		}
	}
	return categories
}

func (r *SnapshotRepository) loadCoPurchasePairs(ctx context.Context, restaurantID string) ([]models.CoPurchasePair, error) {
	query := `
        WITH recent AS (
            SELECT DISTINCT oi.order_id, oi.menu_item_id
            FROM order_items oi
            JOIN orders o ON o.id = oi.order_id
            WHERE ` + recentOrders + `
        ), per_item AS (
            SELECT menu_item_id, COUNT(*) AS orders
            FROM recent
            GROUP BY menu_item_id
        )
        SELECT a.menu_item_id, b.menu_item_id, COUNT(*)::int, pa.orders::int, pb.orders::int
        FROM recent a
        JOIN recent b ON a.order_id = b.order_id AND a.menu_item_id < b.menu_item_id
        JOIN per_item pa ON pa.menu_item_id = a.menu_item_id
        JOIN per_item pb ON pb.menu_item_id = b.menu_item_id
        GROUP BY a.menu_item_id, b.menu_item_id, pa.orders, pb.orders
        ORDER BY 3 DESC, 1, 2
    `
	rows, err := r.pool.Query(ctx, query, restaurantID, r.windowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to query co-purchase pairs: %w", err)
	}
	defer rows.Close()

	var pairs []models.CoPurchasePair
	for rows.Next() {
		var p models.CoPurchasePair
		if err := rows.Scan(&p.ItemA, &p.ItemB, &p.PairCount, &p.TotalOrdersWithA, &p.TotalOrdersWithB); err != nil {
			return nil, fmt.Errorf("failed to scan co-purchase pair: %w", err)
		}
		p.TotalOrdersWithEither = p.TotalOrdersWithA + p.TotalOrdersWithB - p.PairCount
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}

func (r *SnapshotRepository) loadTodaySales(ctx context.Context, restaurantID string) (map[string]int, error) {
	query := `
        SELECT oi.menu_item_id, SUM(oi.quantity)::int
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        WHERE o.restaurant_id = $1
          AND o.status <> 'cancelled'
          AND (o.created_at AT TIME ZONE $2)::date = ($3::timestamptz AT TIME ZONE $2)::date
        GROUP BY oi.menu_item_id
    `
	rows, err := r.pool.Query(ctx, query, restaurantID, r.location.String(), r.now())
	if err != nil {
		return nil, fmt.Errorf("failed to query today's sales: %w", err)
	}
	return collectCounts[int](rows, "today's sales")
}

func (r *SnapshotRepository) loadPreppedStocks(ctx context.Context, restaurantID string) (map[string]int, error) {
	query := `
        SELECT menu_item_id, remaining
        FROM prepped_stocks
        WHERE restaurant_id = $1 AND stock_date = ($2::timestamptz AT TIME ZONE $3)::date
    `
	rows, err := r.pool.Query(ctx, query, restaurantID, r.now(), r.location.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query prepped stocks: %w", err)
	}
	return collectCounts[int](rows, "prepped stocks")
}

func (r *SnapshotRepository) loadTimeSlotSales(ctx context.Context, restaurantID string) (map[string]float64, error) {
	slot := TimeSlotAt(r.now(), r.location)
	const hour = `EXTRACT(HOUR FROM o.created_at AT TIME ZONE $3)::int`
	inSlot := hour + ` >= $4::int AND ` + hour + ` < $5::int`
	if slot.StartHour > slot.EndHour {
		inSlot = `(` + hour + ` >= $4::int OR ` + hour + ` < $5::int)`
	}
	query := `
        SELECT oi.menu_item_id, SUM(oi.quantity)::float8
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        WHERE ` + recentOrders + `
          AND ` + inSlot + `
        GROUP BY oi.menu_item_id
    `
	rows, err := r.pool.Query(ctx, query, restaurantID, r.windowDays, r.location.String(), slot.StartHour, slot.EndHour)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s sales: %w", slot.Name, err)
	}
	return collectCounts[float64](rows, slot.Name+" sales")
}

// loadBadgePicks returns nil when the recommender has not run for the
// restaurant today.
func (r *SnapshotRepository) loadBadgePicks(ctx context.Context, restaurantID string) (*models.AIBadgePicks, error) {
	query := `
        SELECT menu_item_id, badge
        FROM menu_badge_picks
        WHERE restaurant_id = $1 AND picked_on = ($2::timestamptz AT TIME ZONE $3)::date
        ORDER BY rank, menu_item_id
    `
	rows, err := r.pool.Query(ctx, query, restaurantID, r.now(), r.location.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query badge picks: %w", err)
	}
	defer rows.Close()

	var picks *models.AIBadgePicks
	for rows.Next() {
		var itemID, badge string
		if err := rows.Scan(&itemID, &badge); err != nil {
			return nil, fmt.Errorf("failed to scan badge pick: %w", err)
		}
		if picks == nil {
			picks = &models.AIBadgePicks{SignatureIDs: []string{}, MostLovedIDs: []string{}}
		}
		switch badge {
		case "signature":
			picks.SignatureIDs = append(picks.SignatureIDs, itemID)
		case "most_loved":
			picks.MostLovedIDs = append(picks.MostLovedIDs, itemID)
		}
	}
	return picks, rows.Err()
}

func collectCounts[T int | float64](rows pgx.Rows, what string) (map[string]T, error) {
	defer rows.Close()
	counts := make(map[string]T)
	for rows.Next() {
		var id string
		var n T
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", what, err)
		}
		counts[id] = n
	}
	return counts, rows.Err()
}

// avgDailySalesPerItem is the restaurant's average units sold per item per
// day over the trailing window.
func avgDailySalesPerItem(items []models.MenuItem, windowDays int) float64 {
	if len(items) == 0 || windowDays <= 0 {
		return 0
	}
	var total float64
	for _, item := range items {
		total += item.UnitsSold
	}
	return total / float64(windowDays) / float64(len(items))
}
