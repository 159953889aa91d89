package models

// MenuItem is the engine's view of a sellable item. Cost, MarginPercent and
// UnitsSold are aggregated by the caller over its trailing window.
type MenuItem struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Price         float64  `json:"price" yaml:"price"`
	CategoryID    string   `json:"category_id" yaml:"category_id"`
	CategoryName  string   `json:"category_name" yaml:"category_name"`
	Cost          float64  `json:"cost" yaml:"cost"`
	MarginPercent float64  `json:"margin_percent" yaml:"margin_percent"`
	UnitsSold     float64  `json:"units_sold" yaml:"units_sold"`
	Tags          []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// MarginPercentOf derives the margin the way callers are expected to:
// (price - cost) / price * 100, or 0 for a non-positive price.
func MarginPercentOf(price, cost float64) float64 {
	price, cost = Finite(price), Finite(cost)
	if price <= 0 {
		return 0
	}
	return (price - cost) / price * 100
}

// Sanitized returns a copy with every non-finite number replaced by 0.
func (m MenuItem) Sanitized() MenuItem {
	m.Price = Finite(m.Price)
	m.Cost = Finite(m.Cost)
	m.MarginPercent = Finite(m.MarginPercent)
	m.UnitsSold = Finite(m.UnitsSold)
	if m.Tags != nil {
		m.Tags = append([]string(nil), m.Tags...)
	}
	return m
}
