package localstore

import (
	"context"

	"dukaan/internal/domain/entity"
	"dukaan/internal/domain/repository"

	"github.com/pkg/errors"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	store Store
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(store Store) repository.ProductRepository {
	return &productRepository{
		store: store,
	}
}

// List returns all products in stored order. An absent snapshot materializes
// the sample catalog and persists it before returning.
func (repo *productRepository) List(ctx context.Context) ([]entity.Product, error) {
	products, found, err := readSnapshot[[]entity.Product](repo.store, KeyProducts)
	if err != nil {
		return nil, err
	}
	if !found {
		products = SeedProducts()
		if err := writeSnapshot(repo.store, KeyProducts, products); err != nil {
			return nil, errors.Wrap(err, "seed product catalog")
		}
	}

	return products, nil
}

// Get returns the product with the given id.
func (repo *productRepository) Get(ctx context.Context, id string) (*entity.Product, error) {
	products, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		if products[i].ID == id {
			return &products[i], nil
		}
	}

	return nil, repository.ErrProductNotFound
}

// Save upserts by id and rewrites the full collection snapshot.
func (repo *productRepository) Save(ctx context.Context, product entity.Product) error {
	products, err := repo.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			replaced = true

			break
		}
	}
	if !replaced {
		products = append(products, product)
	}

	return writeSnapshot(repo.store, KeyProducts, products)
}

// Delete removes the matching product and rewrites the snapshot. A missing
// id leaves the collection unchanged and reports no error.
func (repo *productRepository) Delete(ctx context.Context, id string) error {
	products, err := repo.List(ctx)
	if err != nil {
		return err
	}

	remaining := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}

	return writeSnapshot(repo.store, KeyProducts, remaining)
}
