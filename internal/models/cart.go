package models

import (
	"sort"
	"sync"
	"time"
)

// Cart maps product IDs to quantities for one browsing session. A key present
// in the map always has quantity >= 1; removing the last unit deletes the key
// instead of storing zero. Products are not referenced directly, so totals
// are always re-derived against a catalog snapshot supplied by the caller.
// Requests carrying the same session ID can land on concurrent handlers, so
// every method takes the cart mutex before touching the quantity map.
type Cart struct {
	ID         string         `json:"id"`
	Quantities map[string]int `json:"quantities"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`

	mu sync.Mutex
}

func NewCart(id string) *Cart {
	now := time.Now()

	return &Cart{
		ID:         id,
		Quantities: make(map[string]int),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AddUnit increments the quantity for productID by one, inserting the key at
// quantity 1 when absent. There is no upper bound; it always succeeds.
func (c *Cart) AddUnit(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.Quantities[productID]++
	c.UpdatedAt = time.Now()
}

// RemoveUnit decrements the quantity for productID, deleting the key when the
// last unit is removed. Calling it on an absent key is a no-op so the map can
// never hold a zero or negative quantity.
func (c *Cart) RemoveUnit(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	qty, ok := c.Quantities[productID]
	if !ok {
		return
	}

	if qty > 1 {
		c.Quantities[productID] = qty - 1
	} else {
		delete(c.Quantities, productID)
	}

	c.UpdatedAt = time.Now()
}

// Total sums price x quantity over every line, looking prices up in the given
// catalog snapshot. A product absent from the snapshot contributes 0 rather
// than failing, so cart state survives paginated fetches.
func (c *Cart) Total(catalog []*Product) int64 {
	prices := make(map[string]int64, len(catalog))
	for _, p := range catalog {
		prices[p.ID.String()] = p.Price
	}

	var total int64

	c.mu.Lock()
	defer c.mu.Unlock()

	for productID, qty := range c.Quantities {
		if price, ok := prices[productID]; ok {
			total += price * int64(qty)
		}
	}

	return total
}

// ItemCount is the sum of all quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var count int

	for _, qty := range c.Quantities {
		count += qty
	}

	return count
}

// CartLine is one (product ID, quantity) pair.
type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Lines returns the cart contents ordered by product ID, so the checkout
// handoff payload is deterministic.
func (c *Cart) Lines() []CartLine {
	c.mu.Lock()
	lines := make([]CartLine, 0, len(c.Quantities))

	for productID, qty := range c.Quantities {
		lines = append(lines, CartLine{ProductID: productID, Quantity: qty})
	}
	c.mu.Unlock()

	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ProductID < lines[j].ProductID
	})

	return lines
}

type CartLineRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
}

// CartLineView is a cart line re-joined against the catalog. Product is nil
// when the catalog no longer resolves the ID; its line total is then 0.
type CartLineView struct {
	ProductID string   `json:"product_id"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
	LineTotal int64    `json:"line_total"`
}

type CartSummary struct {
	SessionID string         `json:"session_id"`
	Lines     []CartLineView `json:"lines"`
	ItemCount int            `json:"item_count"`
	Total     int64          `json:"total"`
}

// CheckoutLine pairs a full product snapshot with the ordered quantity, as
// handed to the external checkout collaborator.
type CheckoutLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Subtotal int64   `json:"subtotal"`
}

type CheckoutOrder struct {
	SessionID   string         `json:"session_id"`
	Lines       []CheckoutLine `json:"lines"`
	ItemCount   int            `json:"item_count"`
	Total       int64          `json:"total"`
	SubmittedAt time.Time      `json:"submitted_at"`
}
