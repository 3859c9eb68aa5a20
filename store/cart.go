package store

import (
	"context"
	"sync"

	"storefront/domain"
)

// Cart manages the active customer's shopping cart. Items are product
// snapshots keyed by product id, with at most one item per product:
// adding the same product again merges into the existing line. Item
// order is first-add order.
type Cart struct {
	mu         sync.RWMutex
	customerID string
	items      []domain.CartItem
}

// NewCart constructs an empty Cart.
func NewCart() *Cart {
	return &Cart{}
}

// SetCustomer binds the cart to a customer session.
func (c *Cart) SetCustomer(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.customerID = id
}

// CustomerID returns the id of the customer the cart is bound to, or
// the empty string before a customer session is established.
func (c *Cart) CustomerID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.customerID
}

// Add puts quantity units of the product into the cart. Non-positive
// quantities fail without mutation. The stored item snapshots the
// product's id, name and price as they are right now.
func (c *Cart) Add(ctx context.Context, product domain.Product, quantity int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if quantity <= 0 {
		return domain.NewInvalidProductError("quantity", "must be positive", quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ProductID == product.ID {
			c.items[i].Quantity += quantity
			return nil
		}
	}
	c.items = append(c.items, domain.CartItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		Price:       product.Price,
	})
	return nil
}

// Remove drops the item for the given product id. Absence is a no-op.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.removeLocked(productID)
}

func (c *Cart) removeLocked(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity replaces an item's quantity. A quantity of zero or
// less removes the item instead; quantities are never stored at 0.
// Unknown product ids are a no-op.
func (c *Cart) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if quantity <= 0 {
		c.removeLocked(productID)
		return nil
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return nil
		}
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the cart contents in first-add order.
func (c *Cart) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct items in the cart.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Total returns the sum of quantity times price over all items. Tax is
// not included; any surcharge is a presentation-layer concern.
func (c *Cart) Total() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var total float64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}
