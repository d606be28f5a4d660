package services

import (
	"sync"

	"psc-server/models"
)

// Cart holds the line items for one session. All operations are total:
// invalid input degrades to a no-op or a safe default instead of an error.
type Cart struct {
	mu    sync.Mutex
	items []models.CartLineItem
}

// CartProduct is the product detail a caller supplies when adding to a
// cart. An empty ID makes the add a no-op.
type CartProduct struct {
	ID            string
	Title         string
	UnitPrice     float64
	OriginalPrice *float64
	Image         string
	InStock       bool
}

// AddItem merges quantity into an existing line with the same product id,
// or appends a new line preserving insertion order. Quantities below 1 are
// coerced to 1.
func (c *Cart) AddItem(product CartProduct, quantity int) {
	if product.ID == "" {
		return
	}
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == product.ID {
			c.items[i].Quantity += quantity
			return
		}
	}

	title := product.Title
	if title == "" {
		title = "Product"
	}
	image := product.Image
	if image == "" {
		image = "/placeholder.svg"
	}
	price := product.UnitPrice
	if price < 0 {
		price = 0
	}

	c.items = append(c.items, models.CartLineItem{
		ID:            product.ID,
		Title:         title,
		UnitPrice:     price,
		OriginalPrice: product.OriginalPrice,
		Image:         image,
		InStock:       product.InStock,
		Quantity:      quantity,
	})
}

// RemoveItem deletes the line with the given id. Absent ids are ignored.
func (c *Cart) RemoveItem(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// ChangeQuantity adds delta (positive or negative) to the line's quantity.
// A resulting quantity of zero or below removes the line. Absent ids are
// ignored.
func (c *Cart) ChangeQuantity(id string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].Quantity += delta
			if c.items[i].Quantity <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			}
			return
		}
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the current line items in insertion order.
func (c *Cart) Items() []models.CartLineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal is the sum of unit price times quantity over all lines.
func (c *Cart) Subtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0.0
	for _, item := range c.items {
		total += item.UnitPrice * float64(item.Quantity)
	}
	return total
}

// TotalItems is the sum of quantities over all lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, item := range c.items {
		count += item.Quantity
	}
	return count
}

// LineCount is the number of distinct lines in the cart.
func (c *Cart) LineCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// CartStore owns every live session cart. Carts are created lazily on
// first access and dropped when a checkout completes.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]*Cart)}
}

// Cart returns the cart for the given session, creating it if needed.
func (s *CartStore) Cart(sessionID string) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = &Cart{}
		s.carts[sessionID] = cart
	}
	return cart
}

// Drop discards the session's cart entirely. Called when a checkout
// completes or a session ends.
func (s *CartStore) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
}
