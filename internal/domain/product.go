package domain

// Product is a catalog item as reported by the backend listing.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryID    int64   `json:"category_id,omitempty"`
	CategoryName  string  `json:"category_name,omitempty"`
	ImageURL      string  `json:"image_url,omitempty"`
	Description   string  `json:"description,omitempty"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
