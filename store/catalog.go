// Package store provides the in-memory state containers backing the
// storefront: the product catalog, the shopping cart and the purchase
// ledger.
package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"storefront/domain"
)

// DefaultLowStockThreshold flags products whose quantity falls below it.
const DefaultLowStockThreshold = 5

// Catalog is a thread-safe in-memory implementation of domain.Catalog.
// Products keep their insertion order; sorting and search-term matching
// happen on the read side via ListFilter.
type Catalog struct {
	mu         sync.RWMutex
	products   []domain.Product
	searchTerm string
	threshold  int
}

// NewCatalog constructs an empty Catalog with the default threshold.
func NewCatalog() *Catalog {
	return NewCatalogWithThreshold(DefaultLowStockThreshold)
}

// NewCatalogWithThreshold constructs an empty Catalog with the given
// low-stock threshold.
func NewCatalogWithThreshold(threshold int) *Catalog {
	if threshold < 0 {
		threshold = 0
	}
	return &Catalog{threshold: threshold}
}

// compile-time assertion that Catalog implements domain.Catalog
var _ domain.Catalog = (*Catalog)(nil)

// indexOf returns the position of the product with the given id, or -1.
// Callers must hold at least a read lock.
func (c *Catalog) indexOf(id string) int {
	for i := range c.products {
		if c.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) Create(ctx context.Context, product domain.Product) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if err := domain.ValidateProduct(product); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.indexOf(product.ID) >= 0 {
		return domain.NewDuplicateProductError(product.ID)
	}
	c.products = append(c.products, product)
	return nil
}

func (c *Catalog) Get(ctx context.Context, id string) (domain.Product, error) {
	select {
	case <-ctx.Done():
		return domain.Product{}, ctx.Err()
	default:
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	i := c.indexOf(id)
	if i < 0 {
		return domain.Product{}, domain.NewProductNotFoundError(id)
	}
	return c.products[i], nil
}

// Update merges the patch into the product with the given id. Unset
// patch fields keep their current value. A patch carrying a new ID
// rekeys the product in place: the change is duplicate-checked and
// applied atomically, and the product keeps its list position.
func (c *Catalog) Update(ctx context.Context, id string, patch domain.ProductPatch) (domain.Product, error) {
	select {
	case <-ctx.Done():
		return domain.Product{}, ctx.Err()
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return domain.Product{}, domain.NewProductNotFoundError(id)
	}

	updated := c.products[i]
	if patch.ID != nil {
		updated.ID = *patch.ID
	}
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Quantity != nil {
		updated.Quantity = *patch.Quantity
	}
	if patch.Price != nil {
		updated.Price = *patch.Price
	}

	if updated.ID != id {
		if c.indexOf(updated.ID) >= 0 {
			return domain.Product{}, domain.NewDuplicateProductError(updated.ID)
		}
	}
	if err := domain.ValidateProduct(updated); err != nil {
		return domain.Product{}, err
	}

	c.products[i] = updated
	return updated, nil
}

// UpdateQuantity replaces the stock count of the product with the given
// id. Negative quantities and unknown ids fail without mutation.
func (c *Catalog) UpdateQuantity(ctx context.Context, id string, quantity int) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if quantity < 0 {
		return domain.NewInvalidProductError("quantity", "must be non-negative", quantity)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return domain.NewProductNotFoundError(id)
	}
	c.products[i].Quantity = quantity
	return nil
}

// Delete removes the product with the given id. Absence is not an
// error: deleting an unknown id is a no-op.
func (c *Catalog) Delete(ctx context.Context, id string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		return nil
	}
	c.products = append(c.products[:i], c.products[i+1:]...)
	return nil
}

// List returns the products matching the filter. With a zero filter the
// result is the full catalog in insertion order.
func (c *Catalog) List(ctx context.Context, filter domain.ListFilter) ([]domain.Product, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	search := strings.ToLower(filter.Search)
	out := make([]domain.Product, 0, len(c.products))
	for _, p := range c.products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.ID), search) &&
			!strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.InStock && p.Quantity <= 0 {
			continue
		}
		out = append(out, p)
	}

	switch filter.SortBy {
	case "name":
		sort.Slice(out, func(i, j int) bool {
			if filter.Order == "desc" {
				return out[i].Name > out[j].Name
			}
			return out[i].Name < out[j].Name
		})
	case "price":
		sort.Slice(out, func(i, j int) bool {
			if filter.Order == "desc" {
				return out[i].Price > out[j].Price
			}
			return out[i].Price < out[j].Price
		})
	case "quantity":
		sort.Slice(out, func(i, j int) bool {
			if filter.Order == "desc" {
				return out[i].Quantity > out[j].Quantity
			}
			return out[i].Quantity < out[j].Quantity
		})
	}

	return out, nil
}

// IsIDUnique reports whether no product carries the given id. A product
// whose own id equals excludeID does not count as a collision, so forms
// can validate an edit against the record being edited.
func (c *Catalog) IsIDUnique(id, excludeID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, p := range c.products {
		if p.ID == id && p.ID != excludeID {
			return false
		}
	}
	return true
}

// SetSearchTerm replaces the shared search filter string.
func (c *Catalog) SetSearchTerm(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchTerm = term
}

// SearchTerm returns the shared search filter string.
func (c *Catalog) SearchTerm() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.searchTerm
}

// LowStockThreshold returns the quantity below which a product counts
// as low stock.
func (c *Catalog) LowStockThreshold() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.threshold
}

// LowStock returns the products whose quantity is below the threshold,
// in insertion order.
func (c *Catalog) LowStock(ctx context.Context) ([]domain.Product, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Product, 0)
	for _, p := range c.products {
		if p.Quantity < c.threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

// BulkImport creates many products concurrently and collects per-item
// failures into a single error. Items that fail validation or collide
// with existing ids are skipped; the rest are created.
func (c *Catalog) BulkImport(ctx context.Context, products []domain.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	const maxWorkers = 10
	if len(products) == 0 {
		return nil
	}

	type result struct {
		id  string
		err error
	}

	jobs := make(chan domain.Product)
	results := make(chan result, len(products))

	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case p, ok := <-jobs:
				if !ok {
					return
				}
				if err := c.Create(ctx, p); err != nil {
					results <- result{id: p.ID, err: fmt.Errorf("id=%s: %w", p.ID, err)}
				} else {
					results <- result{id: p.ID, err: nil}
				}
			}
		}
	}

	nWorkers := maxWorkers
	if len(products) < nWorkers {
		nWorkers = len(products)
	}

	wg.Add(nWorkers)
	for i := 0; i < nWorkers; i++ {
		go worker()
	}

	// feed jobs
	go func() {
		defer close(jobs)
		for _, p := range products {
			select {
			case <-ctx.Done():
				return
			case jobs <- p:
			}
		}
	}()

	// collect results
	var collected error
	received := 0
	for received < len(products) {
		select {
		case <-ctx.Done():
			// wait for workers to stop then return context error
			wg.Wait()
			return ctx.Err()
		case res := <-results:
			received++
			if res.err != nil {
				if collected == nil {
					collected = res.err
				} else {
					collected = fmt.Errorf("%v; %w", collected, res.err)
				}
			}
		}
	}

	// all results received; wait for workers
	wg.Wait()
	return collected
}
