package usecase

import (
	"context"

	"dukaan/internal/domain/entity"
)

// CheckoutItem is one requested cart line at checkout.
type CheckoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CheckoutInput carries the delivery details and cart submitted at checkout.
type CheckoutInput struct {
	CustomerName   string
	CustomerMobile string
	Address        string
	Items          []CheckoutItem
}

// CheckoutResult is the created order plus the handoff links the client
// opens next: the WhatsApp order message and the UPI payment deep link.
type CheckoutResult struct {
	Order       entity.Order `json:"order"`
	PaymentURI  string       `json:"paymentUri"`
	WhatsAppURL string       `json:"whatsappUrl"`
}

// CartQuote is a server-side pricing of a cart: the resolved lines with
// effective unit prices and the grand total.
type CartQuote struct {
	Items []entity.CartItem `json:"items"`
	Total float64           `json:"total"`
}

// OrderUsecase defines the interface for checkout and order management use cases
type OrderUsecase interface {
	// Checkout snapshots effective prices for the requested items, creates
	// the order in Pending Verification state and returns it with the
	// payment and WhatsApp handoff links.
	Checkout(ctx context.Context, input CheckoutInput) (*CheckoutResult, error)

	// QuoteCart prices a cart against the current catalog without creating
	// an order.
	QuoteCart(ctx context.Context, items []CheckoutItem) (*CartQuote, error)

	// ListOrders returns orders newest first, optionally filtered by exact
	// status ("" or "All" means no filter).
	ListOrders(ctx context.Context, status string) ([]entity.Order, error)

	// GetOrder returns one order by id.
	GetOrder(ctx context.Context, id string) (*entity.Order, error)

	// UpdateOrderStatus applies an admin status transition and returns the
	// order re-read from the repository.
	UpdateOrderStatus(ctx context.Context, id string, status entity.OrderStatus) (*entity.Order, error)

	// PaymentQR renders the order's UPI deep link as a PNG QR code.
	PaymentQR(ctx context.Context, id string) ([]byte, error)
}
