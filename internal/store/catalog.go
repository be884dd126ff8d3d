package store

import (
	"errors"
	"sync"

	"sudsshop/internal/domain"
	"sudsshop/internal/repos"
)

var ErrInvalidProduct = errors.New("catalog: product needs a name and a non-negative price")

// Catalog owns the product collection. It is read into memory once at startup
// and every mutation flushes the full collection back through the repo.
// Writes are last-write-wins; there is no cross-process coordination.
type Catalog struct {
	mu    sync.RWMutex
	repo  *repos.CatalogRepo
	items []domain.Product
}

// LoadCatalog reads the persisted snapshot, seeding from the built-in product
// list when none exists yet.
func LoadCatalog(repo *repos.CatalogRepo) (*Catalog, error) {
	items, err := repo.Load()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		items = domain.SeedProducts()
		if err := repo.ReplaceAll(items); err != nil {
			return nil, err
		}
	}
	return &Catalog{repo: repo, items: items}, nil
}

// List returns the products in display order.
func (c *Catalog) List() []domain.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Product, len(c.items))
	copy(out, c.items)
	return out
}

// Get looks a product up by id.
func (c *Catalog) Get(id string) (domain.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.items {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// Add prepends a new product and flushes. The id is caller-supplied;
// uniqueness is the caller's responsibility.
func (c *Catalog) Add(p domain.Product) error {
	if p.Name == "" || p.Price < 0 {
		return ErrInvalidProduct
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append([]domain.Product{p}, c.items...)
	return c.flush()
}

// Update replaces the entry with a matching id; a miss is a no-op.
func (c *Catalog) Update(p domain.Product) error {
	if p.Name == "" || p.Price < 0 {
		return ErrInvalidProduct
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i] = p
			return c.flush()
		}
	}
	return nil
}

// Delete removes the entry with a matching id; a miss is a no-op. The
// confirmation step lives in the admin UI, not here.
func (c *Catalog) Delete(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.flush()
		}
	}
	return nil
}

// flush writes the whole collection. Callers hold the write lock.
func (c *Catalog) flush() error {
	return c.repo.ReplaceAll(c.items)
}
