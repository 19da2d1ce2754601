package handler

import (
	"log/slog"
	"net/http"

	"dukaan/internal/delivery/http/response"
	"dukaan/internal/domain/entity"
	"dukaan/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrderHandler holds dependencies for checkout and order handlers.
type OrderHandler struct {
	uc     usecase.OrderUsecase
	logger *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(uc usecase.OrderUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		uc:     uc,
		logger: logger,
	}
}

// CheckoutItemRequest is one cart line in a checkout or quote payload.
type CheckoutItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// CheckoutRequest is the customer checkout payload.
type CheckoutRequest struct {
	Name    string                `json:"name" validate:"required"`
	Mobile  string                `json:"mobile" validate:"required,numeric,len=10"`
	Address string                `json:"address" validate:"required"`
	Items   []CheckoutItemRequest `json:"items" validate:"required,min=1,dive"`
}

// QuoteRequest prices a cart without placing an order.
type QuoteRequest struct {
	Items []CheckoutItemRequest `json:"items" validate:"required,dive"`
}

// UpdateStatusRequest is the admin payload for an order status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Checkout places an order and returns it with the payment and WhatsApp
// handoff links.
func (h *OrderHandler) Checkout(c echo.Context) error {
	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.uc.Checkout(c.Request().Context(), usecase.CheckoutInput{
		CustomerName:   req.Name,
		CustomerMobile: req.Mobile,
		Address:        req.Address,
		Items:          toCheckoutItems(req.Items),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, result, "Order placed")
}

// QuoteCart prices the submitted cart against the current catalog.
func (h *OrderHandler) QuoteCart(c echo.Context) error {
	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	quote, err := h.uc.QuoteCart(c.Request().Context(), toCheckoutItems(req.Items))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, quote, "")
}

// GetOrder returns a single order by id.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	order, err := h.uc.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "")
}

// PaymentQR renders the order's UPI payment link as a PNG QR code.
func (h *OrderHandler) PaymentQR(c echo.Context) error {
	png, err := h.uc.PaymentQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListOrders returns orders newest first, optionally filtered by the status
// query parameter.
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.uc.ListOrders(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// UpdateStatus applies an admin order status transition.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	order, err := h.uc.UpdateOrderStatus(c.Request().Context(), c.Param("id"), entity.OrderStatus(req.Status))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, order, "Order status updated")
}

func toCheckoutItems(items []CheckoutItemRequest) []usecase.CheckoutItem {
	out := make([]usecase.CheckoutItem, 0, len(items))
	for _, item := range items {
		out = append(out, usecase.CheckoutItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	return out
}
