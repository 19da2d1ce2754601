// Package repository defines the persistence ports of the domain layer.
package repository

import (
	"context"

	"dukaan/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned by reads when no product matches the id.
// Mutations (Delete) treat a missing id as a silent no-op instead.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository persists the product collection as a single snapshot.
// Every mutation rewrites the whole collection.
type ProductRepository interface {
	// List returns all products in stored order, seeding the sample catalog
	// on first access.
	List(ctx context.Context) ([]entity.Product, error)

	// Get returns the product with the given id.
	Get(ctx context.Context, id string) (*entity.Product, error)

	// Save upserts by id: an existing product is replaced in place (position
	// preserved), a new one is appended.
	Save(ctx context.Context, product entity.Product) error

	// Delete removes the product with the given id. A missing id is a no-op,
	// not an error.
	Delete(ctx context.Context, id string) error
}
