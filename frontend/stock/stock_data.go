package stock

import (
	"context"

	"gasdesk/infrastructure/cache"
	"gasdesk/infrastructure/erp"
)

// loadProducts serves the lookup list from the cache, fetching it only on
// the first read. Back-navigation in the wizard therefore never refetches.
func loadProducts(ctx context.Context, api *erp.Client, products *cache.ProductCache) ([]erp.Product, error) {
	if cached, ok := products.Get(); ok {
		return cached, nil
	}
	fetched, err := api.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	products.Set(fetched)
	return fetched, nil
}
