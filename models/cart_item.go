package models

// CartLineItem is one row of a session cart. Carts live in memory for the
// duration of a session and are never written to the database; only a
// completed checkout produces order rows.
type CartLineItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	UnitPrice     float64  `json:"unit_price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Image         string   `json:"image"`
	InStock       bool     `json:"in_stock"`
	Quantity      int      `json:"quantity"`
}

// ExtendedPrice is the line's unit price times its quantity.
func (li CartLineItem) ExtendedPrice() float64 {
	return li.UnitPrice * float64(li.Quantity)
}
