package cache

import (
	"sync"

	"gasdesk/infrastructure/erp"
)

// ProductCache holds the product lookup list after its first fetch so wizard
// back-navigation and repeated voucher edits do not refetch it.
type ProductCache struct {
	mu       sync.RWMutex
	loaded   bool
	products []erp.Product
}

func NewProductCache() *ProductCache {
	return &ProductCache{}
}

func (c *ProductCache) Set(products []erp.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = append([]erp.Product(nil), products...)
	c.loaded = true
}

func (c *ProductCache) Get() ([]erp.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return nil, false
	}
	return append([]erp.Product(nil), c.products...), true
}

// Find returns the cached product with the given id.
func (c *ProductCache) Find(id string) (erp.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return erp.Product{}, false
}
