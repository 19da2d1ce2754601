package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_Valid(t *testing.T) {
	for _, s := range []OrderStatus{StatusPending, StatusPendingVerification, StatusPaid, StatusCancelled} {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, OrderStatus("Shipped").Valid())
}

func TestOrderStatus_Terminal(t *testing.T) {
	assert.True(t, StatusPaid.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusPendingVerification.Terminal())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{name: "pending verification to paid", from: StatusPendingVerification, to: StatusPaid, want: true},
		{name: "pending verification to cancelled", from: StatusPendingVerification, to: StatusCancelled, want: true},
		{name: "reserved pending resolves like pending verification", from: StatusPending, to: StatusPaid, want: true},
		{name: "paid is terminal", from: StatusPaid, to: StatusCancelled, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPaid, want: false},
		{name: "reapplying current status is idempotent", from: StatusPaid, to: StatusPaid, want: true},
		{name: "unknown target rejected", from: StatusPendingVerification, to: OrderStatus("Shipped"), want: false},
		{name: "cannot move back to pending verification", from: StatusPending, to: StatusPendingVerification, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestItemsTotal(t *testing.T) {
	items := []OrderItem{
		{ProductID: "prod_1", Name: "Tea Powder Sachet", Price: 5, Quantity: 2},
		{ProductID: "prod_2", Name: "Notebook (Mini)", Price: 10, Quantity: 1},
	}

	assert.InDelta(t, 20.0, ItemsTotal(items), 1e-9)
}
