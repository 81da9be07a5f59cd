package model

// Festival is a calendar festival relevant to food ordering during the
// current month, with its traditional foods and typical orders.
type Festival struct {
	Name          string   `json:"name"`
	DateRange     string   `json:"date_range,omitempty"`
	Foods         []string `json:"foods"`
	PopularOrders []string `json:"popular_orders"`
	Significance  string   `json:"significance,omitempty"`
}
