// Package impl contains the concrete use case services.
package impl

import (
	"context"
	"fmt"

	"dukaan/internal/domain/entity"
	domainerrors "dukaan/internal/domain/errors"
	"dukaan/internal/domain/repository"
	"dukaan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type catalogService struct {
	productRepo repository.ProductRepository
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo: params.ProductRepo,
	}
}

// ListProducts returns every product, including disabled ones (admin view).
func (s *catalogService) ListProducts(ctx context.Context) ([]entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// ListStorefront returns enabled products matching the search and category
// filters, in catalog order.
func (s *catalogService) ListStorefront(ctx context.Context, search, category string) ([]entity.Product, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return entity.FilterProducts(entity.EnabledProducts(products), search, category), nil
}

// ListCategories returns the distinct categories of enabled products.
func (s *catalogService) ListCategories(ctx context.Context) ([]string, error) {
	products, err := s.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return entity.Categories(entity.EnabledProducts(products)), nil
}

// GetProduct returns one product by id.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := s.productRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to get product")
	}

	return product, nil
}

// SaveProduct validates and upserts a product. Validation happens here, on
// the caller side of the repository, which itself never validates.
func (s *catalogService) SaveProduct(ctx context.Context, product entity.Product) (*entity.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}

	if product.ID == "" {
		product.ID = "prod_" + uuid.NewString()
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to save product")
	}

	// Re-read so the caller sees exactly what the store now holds.
	stored, err := s.productRepo.Get(ctx, product.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read saved product")
	}

	return stored, nil
}

// DeleteProduct removes a product by id. An unknown id is a silent no-op.
func (s *catalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

func validateProduct(product entity.Product) error {
	if product.Name == "" {
		return domainerrors.ErrValidationFailed.WithDetails("product name is required")
	}
	if product.Price < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}
	if product.Stock < 0 {
		return domainerrors.ErrValidationFailed.WithDetails("stock must not be negative")
	}
	if product.DiscountPrice != nil {
		if *product.DiscountPrice < 0 {
			return domainerrors.ErrValidationFailed.WithDetails("discount price must not be negative")
		}
		if *product.DiscountPrice > product.Price {
			return domainerrors.ErrDiscountAbovePrice.WithDetails(
				fmt.Sprintf("discount price %v exceeds base price %v", *product.DiscountPrice, product.Price))
		}
	}

	return nil
}
