package impl

import (
	"context"
	"fmt"
	"time"

	"dukaan/internal/domain/entity"
	domainerrors "dukaan/internal/domain/errors"
	"dukaan/internal/domain/repository"
	"dukaan/internal/domain/service"
	"dukaan/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	linkService  service.LinkService
	qrService    service.QRCodeService
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo    repository.OrderRepository
	ProductRepo  repository.ProductRepository
	SettingsRepo repository.SettingsRepository
	LinkService  service.LinkService
	QRService    service.QRCodeService
}

// NewOrderService creates a new order service instance
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:    params.OrderRepo,
		productRepo:  params.ProductRepo,
		settingsRepo: params.SettingsRepo,
		linkService:  params.LinkService,
		qrService:    params.QRService,
	}
}

// Checkout snapshots effective prices for the requested cart, creates the
// order and returns it with the payment and WhatsApp handoff links.
func (s *orderService) Checkout(ctx context.Context, input usecase.CheckoutInput) (*usecase.CheckoutResult, error) {
	cart, err := s.buildCart(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, 0, len(cart))
	for _, line := range cart {
		items = append(items, entity.OrderItem{
			ProductID: line.ID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.EffectivePrice(),
		})
	}

	order := entity.Order{
		// Collision-resistant ids keep the repository's "caller guarantees
		// uniqueness" contract honest.
		ID:             "ord_" + uuid.NewString(),
		CustomerName:   input.CustomerName,
		CustomerMobile: input.CustomerMobile,
		Address:        input.Address,
		Items:          items,
		TotalAmount:    entity.ItemsTotal(items),
		Status:         entity.StatusPendingVerification,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.orderRepo.Append(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	// Re-read so the caller sees exactly what the store now holds.
	stored, err := s.orderRepo.Get(ctx, order.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-read created order")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get settings")
	}

	return &usecase.CheckoutResult{
		Order:       *stored,
		PaymentURI:  s.linkService.PaymentURI(*settings, *stored),
		WhatsAppURL: s.linkService.WhatsAppURL(*settings, *stored),
	}, nil
}

// QuoteCart prices a cart against the current catalog without creating an order.
func (s *orderService) QuoteCart(ctx context.Context, items []usecase.CheckoutItem) (*usecase.CartQuote, error) {
	cart, err := s.buildCart(ctx, items)
	if err != nil {
		return nil, err
	}

	return &usecase.CartQuote{
		Items: cart,
		Total: entity.CartTotal(cart),
	}, nil
}

// buildCart resolves requested lines against the catalog through the cart
// reducer, so quantities and totals follow the same rules everywhere.
func (s *orderService) buildCart(ctx context.Context, items []usecase.CheckoutItem) (entity.Cart, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	cart := entity.ClearCart()
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("quantity for product %s must be at least 1", item.ProductID))
		}

		product, err := s.productRepo.Get(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return nil, domainerrors.ErrProductNotFound.WithDetails(item.ProductID)
			}

			return nil, errors.Wrap(err, "failed to resolve cart product")
		}
		if !product.Enabled {
			return nil, domainerrors.ErrProductDisabled.WithDetails(item.ProductID)
		}

		for range item.Quantity {
			cart = entity.AddToCart(cart, *product)
		}
	}

	return cart, nil
}

// ListOrders returns orders newest first, optionally filtered by exact status.
func (s *orderService) ListOrders(ctx context.Context, status string) ([]entity.Order, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	if status == "" || status == entity.CategoryAll {
		return orders, nil
	}

	filtered := make([]entity.Order, 0, len(orders))
	for _, order := range orders {
		if order.Status == entity.OrderStatus(status) {
			filtered = append(filtered, order)
		}
	}

	return filtered, nil
}

// GetOrder returns one order by id.
func (s *orderService) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	order, err := s.orderRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// UpdateOrderStatus applies an admin status transition. The repository
// update is a silent no-op on a missing id, so existence and the transition
// rules are checked here first and the order is re-read afterwards.
func (s *orderService) UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		return nil, domainerrors.ErrInvalidStatusTransition.WithDetails(
			fmt.Sprintf("cannot move order %s from %q to %q", id, order.Status, status))
	}

	if err := s.orderRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, errors.Wrap(err, "failed to update order status")
	}

	return s.GetOrder(ctx, id)
}

// PaymentQR renders the order's UPI deep link as a PNG QR code.
func (s *orderService) PaymentQR(ctx context.Context, id string) ([]byte, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get settings")
	}

	qr, err := s.qrService.GeneratePaymentQR(s.linkService.PaymentURI(*settings, *order))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return qr, nil
}
