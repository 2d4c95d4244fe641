package service

import (
	"context"

	"shopbot/internal/model"
)

// ProductCatalog is the read-only product lookup collaborator. The chat
// pipeline hands it typed filter sets; it never sees query text.
type ProductCatalog interface {
	// SearchProducts runs the generic filtered search, capped at limit
	// rows. Every filter is optional; present filters combine with AND.
	SearchProducts(ctx context.Context, filters *model.FilterSet, limit int) ([]model.Product, error)

	// FindProductsMatching returns distinct products whose name matches
	// either comparison subject by substring.
	FindProductsMatching(ctx context.Context, nameA, nameB string) ([]model.Product, error)

	// ProductsInStore lists a store's products ordered by price ascending.
	ProductsInStore(ctx context.Context, storeID int64, limit int) ([]model.Product, error)
}

// StoreDirectory is the store-distance lookup collaborator. Rows come back
// ordered by ascending distance from the given coordinates.
type StoreDirectory interface {
	NearestStores(ctx context.Context, lat, lng float64, limit int) ([]model.Store, error)

	// NearestStoresMatching joins the product catalog and keeps only
	// stores carrying at least one product matching the query's filters.
	NearestStoresMatching(ctx context.Context, lat, lng float64, query *model.StoreQuery) ([]model.Store, error)

	// CheapestStores orders by each store's cheapest item, then distance.
	CheapestStores(ctx context.Context, lat, lng float64, limit int) ([]model.Store, error)

	StoreDetails(ctx context.Context, storeID int64) (*model.StoreDetails, error)
}

// UserDirectory resolves the configured user at process startup.
type UserDirectory interface {
	GetUser(ctx context.Context, id int64) (*model.User, error)
}
