package domain

// Order is a persisted order as returned by the orders collaborator. The
// gateway relays it for display and never recomputes its totals; the order
// date stays an opaque string on its way to the browser.
type Order struct {
	ID              int64       `json:"id"`
	OrderDate       string      `json:"order_date,omitempty"`
	Status          string      `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	DiscountPct float64 `json:"discount_pct"`
}
