// Package catalog exposes the product ownership and eligibility lookup the
// engine needs at auction-creation and cancel time.
package catalog

import (
	"fmt"
	"sync"

	"auction-engine/internal/auctionerrors"
	model "auction-engine/internal/models"
)

// ProductCatalog resolves a product reference to its seller and status.
type ProductCatalog interface {
	GetProduct(productID string) (model.Product, error)
}

// MemoryCatalog is a concurrency-safe in-memory ProductCatalog.
type MemoryCatalog struct {
	mu       sync.RWMutex
	products map[string]model.Product
}

// NewMemoryCatalog creates an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		products: make(map[string]model.Product),
	}
}

// GetProduct returns the product or ErrProductNotFound.
func (c *MemoryCatalog) GetProduct(productID string) (model.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	product, ok := c.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("product %s: %w", productID, auctionerrors.ErrProductNotFound)
	}
	return product, nil
}

// AddProduct registers or replaces a product.
func (c *MemoryCatalog) AddProduct(product model.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[product.ProductID] = product
}
