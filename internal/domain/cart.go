package domain

// CartLine is one product/quantity pairing held in the in-session cart.
// UnitPrice is snapshotted from the catalog item when the line is created
// and is never re-synced against later catalog price changes.
type CartLine struct {
	ProductID    int64   `json:"product_id"`
	Name         string  `json:"name"`
	UnitPrice    float64 `json:"unit_price"`
	Quantity     int     `json:"quantity"`
	ImageURL     string  `json:"image_url,omitempty"`
	CategoryName string  `json:"category_name,omitempty"`
}

// Cart is an ordered collection of lines scoped to one browsing session.
// At most one line exists per product id and every line's quantity is >= 1.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Add merges a catalog item into the cart: an existing line for the same
// product gets its quantity bumped by one, otherwise a new line is appended
// with quantity 1 and the item's current price.
func (c *Cart) Add(p Product) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{
		ProductID:    p.ID,
		Name:         p.Name,
		UnitPrice:    p.Price,
		Quantity:     1,
		ImageURL:     p.ImageURL,
		CategoryName: p.CategoryName,
	})
}

// Remove deletes the line for productID. Removing an absent product is a
// no-op, not an error.
func (c *Cart) Remove(productID int64) {
	for i := range c.Lines {
		if c.Lines[i].ProductID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Total folds unit price times quantity over all lines. An empty cart
// totals 0.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// Empty reports whether the cart holds no lines.
func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.Lines = nil
}

// Draft converts the cart into the order submission payload, one item per
// line with the discount fixed at zero.
func (c *Cart) Draft(shippingAddress string) OrderDraft {
	items := make([]OrderDraftItem, 0, len(c.Lines))
	for _, line := range c.Lines {
		items = append(items, OrderDraftItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
		})
	}
	return OrderDraft{ShippingAddress: shippingAddress, Items: items}
}

// OrderDraft is the payload handed to the orders collaborator at checkout.
type OrderDraft struct {
	ShippingAddress string           `json:"shipping_address"`
	Items           []OrderDraftItem `json:"items"`
}

type OrderDraftItem struct {
	ProductID   int64   `json:"product_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	DiscountPct float64 `json:"discount_pct"`
}
