package repository

import (
	"context"

	"dukaan/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrOrderNotFound is returned by reads when no order matches the id.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists the order collection as a single snapshot, newest
// order first.
type OrderRepository interface {
	// List returns all orders, most recently created first. The store never
	// sorts; the order is pure insertion order.
	List(ctx context.Context) ([]entity.Order, error)

	// Get returns the order with the given id.
	Get(ctx context.Context, id string) (*entity.Order, error)

	// Append prepends a new order. Duplicate ids are a caller contract and
	// are not checked here.
	Append(ctx context.Context, order entity.Order) error

	// UpdateStatus sets the status of the matching order in place. A missing
	// id is a silent no-op; callers must re-read to confirm the effect.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
}
