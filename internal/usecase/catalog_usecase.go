package usecase

import (
	"context"

	"dukaan/internal/domain/entity"
)

// CatalogUsecase defines the interface for product catalog use cases
type CatalogUsecase interface {
	// ListProducts returns every product, including disabled ones (admin view).
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// ListStorefront returns enabled products matching the search text and
	// category filter, in catalog order (customer view).
	ListStorefront(ctx context.Context, search, category string) ([]entity.Product, error)

	// ListCategories returns the distinct categories of enabled products,
	// "All" first.
	ListCategories(ctx context.Context) ([]string, error)

	// GetProduct returns one product by id, regardless of enabled state.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)

	// SaveProduct validates and upserts a product, assigning an id when the
	// product is new, and returns the stored entity re-read from the
	// repository.
	SaveProduct(ctx context.Context, product entity.Product) (*entity.Product, error)

	// DeleteProduct removes a product by id. Deleting an unknown id is not
	// an error.
	DeleteProduct(ctx context.Context, id string) error
}
