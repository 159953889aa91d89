package models

// AIBadgePicks come from an external recommender. A non-nil value means the
// recommender ran, even if both lists are empty.
type AIBadgePicks struct {
	SignatureIDs []string `json:"signature_ids" yaml:"signature_ids"`
	MostLovedIDs []string `json:"most_loved_ids" yaml:"most_loved_ids"`
}

// EngineInput is the complete, already aggregated snapshot the engine runs on.
type EngineInput struct {
	RestaurantID               string             `json:"restaurant_id" yaml:"restaurant_id"`
	Items                      []MenuItem         `json:"items" yaml:"items"`
	Categories                 []Category         `json:"categories" yaml:"categories"`
	CoPurchasePairs            []CoPurchasePair   `json:"co_purchase_pairs" yaml:"co_purchase_pairs"`
	Settings                   EngineSettings     `json:"settings" yaml:"settings"`
	PreppedStocks              map[string]int     `json:"prepped_stocks" yaml:"prepped_stocks"`
	TodaySales                 map[string]int     `json:"today_sales" yaml:"today_sales"`
	AvgDailySales              float64            `json:"avg_daily_sales" yaml:"avg_daily_sales"`
	UnitsSoldInCurrentTimeSlot map[string]float64 `json:"units_sold_in_current_time_slot" yaml:"units_sold_in_current_time_slot"`
	AIBadgePicks               *AIBadgePicks      `json:"ai_badge_picks,omitempty" yaml:"ai_badge_picks,omitempty"`
}

// Sanitized returns a deep copy with non-finite numbers zeroed and settings
// normalized. The receiver is left untouched.
func (in EngineInput) Sanitized() EngineInput {
	out := EngineInput{
		RestaurantID:  in.RestaurantID,
		Settings:      in.Settings.Normalized(),
		AvgDailySales: Finite(in.AvgDailySales),
	}

	out.Items = make([]MenuItem, len(in.Items))
	for i, item := range in.Items {
		out.Items[i] = item.Sanitized()
	}
	out.Categories = make([]Category, len(in.Categories))
	for i, c := range in.Categories {
		out.Categories[i] = c.Sanitized()
	}
	out.CoPurchasePairs = append([]CoPurchasePair(nil), in.CoPurchasePairs...)

	out.PreppedStocks = make(map[string]int, len(in.PreppedStocks))
	for k, v := range in.PreppedStocks {
		out.PreppedStocks[k] = v
	}
	out.TodaySales = make(map[string]int, len(in.TodaySales))
	for k, v := range in.TodaySales {
		out.TodaySales[k] = v
	}
	out.UnitsSoldInCurrentTimeSlot = make(map[string]float64, len(in.UnitsSoldInCurrentTimeSlot))
	for k, v := range in.UnitsSoldInCurrentTimeSlot {
		out.UnitsSoldInCurrentTimeSlot[k] = Finite(v)
	}

	if in.AIBadgePicks != nil {
		out.AIBadgePicks = &AIBadgePicks{
			SignatureIDs: append([]string(nil), in.AIBadgePicks.SignatureIDs...),
			MostLovedIDs: append([]string(nil), in.AIBadgePicks.MostLovedIDs...),
		}
	}
	return out
}
