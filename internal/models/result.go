package models

// EngineResult is what gets published for one restaurant run.
type EngineResult struct {
	RunID        string           `json:"run_id"`
	RestaurantID string           `json:"restaurant_id"`
	Timestamp    int64            `json:"timestamp"`
	Fallback     bool             `json:"fallback"`
	Output       MenuEngineOutput `json:"output"`
}
