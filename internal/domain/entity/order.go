package entity

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	// StatusPending is a reserved state; no flow currently produces it, but
	// stored orders carrying it are still accepted and can be resolved by an
	// admin the same way as StatusPendingVerification.
	StatusPending OrderStatus = "Pending"

	// StatusPendingVerification is the initial state set at checkout, while
	// the admin verifies the customer's UPI payment.
	StatusPendingVerification OrderStatus = "Pending Verification"

	// StatusPaid marks a verified payment. Terminal.
	StatusPaid OrderStatus = "Paid"

	// StatusCancelled marks a rejected order. Terminal.
	StatusCancelled OrderStatus = "Cancelled"
)

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPendingVerification, StatusPaid, StatusCancelled:
		return true
	}

	return false
}

// Terminal reports whether no further transition is defined out of s.
func (s OrderStatus) Terminal() bool {
	return s == StatusPaid || s == StatusCancelled
}

// CanTransitionTo reports whether an admin action may move an order from s to
// next. Re-applying the current status is always allowed, so status updates
// stay idempotent.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() {
		return false
	}
	if next == s {
		return true
	}
	if s.Terminal() {
		return false
	}

	return next == StatusPaid || next == StatusCancelled
}

// OrderItem is a line of an order. Price is a snapshot of the product's
// effective unit price at checkout time and never changes afterwards.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order represents a checkout submission. Only Status mutates after creation;
// orders are never deleted.
type Order struct {
	ID             string      `json:"id"`             // Unique, assigned once at checkout.
	CustomerName   string      `json:"customerName"`   // Captured at checkout.
	CustomerMobile string      `json:"customerMobile"` // Captured at checkout.
	Address        string      `json:"address"`        // Free-text delivery address.
	Items          []OrderItem `json:"items"`          // Ordered lines with price snapshots.
	TotalAmount    float64     `json:"totalAmount"`    // Computed once at creation, never recomputed.
	Status         OrderStatus `json:"status"`
	CreatedAt      time.Time   `json:"createdAt"`
}

// ItemsTotal sums price x quantity over the order's items. Used once at
// creation to fill TotalAmount.
func ItemsTotal(items []OrderItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}
