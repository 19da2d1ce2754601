package localstore

import (
	"context"

	"dukaan/internal/domain/entity"
	"dukaan/internal/domain/repository"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	store Store
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(store Store) repository.OrderRepository {
	return &orderRepository{
		store: store,
	}
}

// List returns all orders, newest first. Orders have no seed; an absent
// snapshot means an empty sequence.
func (repo *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	orders, found, err := readSnapshot[[]entity.Order](repo.store, KeyOrders)
	if err != nil {
		return nil, err
	}
	if !found {
		return []entity.Order{}, nil
	}

	return orders, nil
}

// Get returns the order with the given id.
func (repo *orderRepository) Get(ctx context.Context, id string) (*entity.Order, error) {
	orders, err := repo.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}

	return nil, repository.ErrOrderNotFound
}

// Append prepends the order and rewrites the snapshot. Duplicate ids are the
// caller's contract and are not checked here.
func (repo *orderRepository) Append(ctx context.Context, order entity.Order) error {
	orders, err := repo.List(ctx)
	if err != nil {
		return err
	}

	orders = append([]entity.Order{order}, orders...)

	return writeSnapshot(repo.store, KeyOrders, orders)
}

// UpdateStatus sets the matching order's status in place. A missing id is a
// silent no-op and the snapshot stays untouched.
func (repo *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	orders, err := repo.List(ctx)
	if err != nil {
		return err
	}

	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status

			return writeSnapshot(repo.store, KeyOrders, orders)
		}
	}

	return nil
}
