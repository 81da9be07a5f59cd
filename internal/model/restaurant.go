package model

// InventoryLine is one stocked item at a restaurant. Inventory is an
// ordered list rather than a map so opportunity detection walks lines in
// a stable order.
type InventoryLine struct {
	Item     string  `json:"item" yaml:"item"`
	Cost     float64 `json:"cost" yaml:"cost"`
	Quantity int     `json:"quantity" yaml:"quantity"`
}

// Restaurant is a seed roster entry. Read-only to the pipelines.
type Restaurant struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Cuisine       string          `json:"cuisine" yaml:"cuisine"`
	OpenHour      int             `json:"open_hour" yaml:"open"`
	CloseHour     int             `json:"close_hour" yaml:"close"`
	Rating        float64         `json:"rating" yaml:"rating"`
	Inventory     []InventoryLine `json:"inventory" yaml:"inventory"`
	LastHourSales int             `json:"last_hour_sales" yaml:"last_hour_sales"`
}

// Line returns the inventory line for the named item, if present.
func (r Restaurant) Line(item string) (InventoryLine, bool) {
	for _, l := range r.Inventory {
		if l.Item == item {
			return l, true
		}
	}
	return InventoryLine{}, false
}
