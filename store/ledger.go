package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/domain"
)

// Ledger is the append-only record of completed purchases. Entries are
// kept in creation order and are never mutated or deleted.
type Ledger struct {
	mu        sync.RWMutex
	purchases []domain.Purchase
}

// NewLedger constructs a Ledger pre-populated with the given purchases,
// oldest first.
func NewLedger(seed ...domain.Purchase) *Ledger {
	l := &Ledger{purchases: make([]domain.Purchase, 0, len(seed))}
	for _, p := range seed {
		l.purchases = append(l.purchases, clonePurchase(p))
	}
	return l
}

// Add records a new purchase built from the given cart items: a fresh
// id, the current time, item snapshots and the frozen item total. The
// created purchase is returned. An empty item list is rejected.
func (l *Ledger) Add(ctx context.Context, customerEmail, customerID string, items []domain.CartItem) (domain.Purchase, error) {
	select {
	case <-ctx.Done():
		return domain.Purchase{}, ctx.Err()
	default:
	}

	if len(items) == 0 {
		return domain.Purchase{}, domain.NewEmptyCartError(customerID)
	}

	purchase := domain.Purchase{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		CustomerEmail: customerEmail,
		Items:         make([]domain.PurchaseItem, 0, len(items)),
		PurchaseDate:  time.Now().UTC(),
	}
	for _, item := range items {
		purchase.Items = append(purchase.Items, domain.PurchaseItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
		purchase.TotalAmount += item.Subtotal()
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.purchases = append(l.purchases, purchase)
	return clonePurchase(purchase), nil
}

// ByCustomer returns the purchases with a matching customer id, in
// append order (oldest first).
func (l *Ledger) ByCustomer(ctx context.Context, customerID string) ([]domain.Purchase, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Purchase, 0)
	for _, p := range l.purchases {
		if p.CustomerID == customerID {
			out = append(out, clonePurchase(p))
		}
	}
	return out, nil
}

// All returns the full ledger in append order.
func (l *Ledger) All(ctx context.Context) ([]domain.Purchase, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.Purchase, 0, len(l.purchases))
	for _, p := range l.purchases {
		out = append(out, clonePurchase(p))
	}
	return out, nil
}

// Len returns the number of recorded purchases.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.purchases)
}

// clonePurchase deep-copies a purchase so callers can never reach the
// ledger's own item slices.
func clonePurchase(p domain.Purchase) domain.Purchase {
	out := p
	out.Items = make([]domain.PurchaseItem, len(p.Items))
	copy(out.Items, p.Items)
	return out
}
