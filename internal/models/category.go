package models

type Category struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	DisplayOrder int      `json:"display_order" yaml:"display_order"`
	ItemIDs      []string `json:"item_ids" yaml:"item_ids"`
	AvgUnitsSold float64  `json:"avg_units_sold" yaml:"avg_units_sold"`
	AvgMargin    float64  `json:"avg_margin" yaml:"avg_margin"`
}

func (c Category) Sanitized() Category {
	c.AvgUnitsSold = Finite(c.AvgUnitsSold)
	c.AvgMargin = Finite(c.AvgMargin)
	if c.ItemIDs != nil {
		c.ItemIDs = append([]string(nil), c.ItemIDs...)
	}
	return c
}

// CoPurchasePair counts orders that contained both items. PairCount never
// exceeds min(TotalOrdersWithA, TotalOrdersWithB) for well-formed input.
type CoPurchasePair struct {
	ItemA                 string `json:"item_a" yaml:"item_a"`
	ItemB                 string `json:"item_b" yaml:"item_b"`
	PairCount             int    `json:"pair_count" yaml:"pair_count"`
	TotalOrdersWithEither int    `json:"total_orders_with_either" yaml:"total_orders_with_either"`
	TotalOrdersWithA      int    `json:"total_orders_with_a" yaml:"total_orders_with_a"`
	TotalOrdersWithB      int    `json:"total_orders_with_b" yaml:"total_orders_with_b"`
}
