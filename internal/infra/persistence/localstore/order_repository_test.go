package localstore

import (
	"context"
	"testing"
	"time"

	"dukaan/internal/domain/entity"
	"dukaan/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(id string) entity.Order {
	return entity.Order{
		ID:             id,
		CustomerName:   "Ravi",
		CustomerMobile: "9876543210",
		Address:        "12 Gandhi Street, Tambaram",
		Items: []entity.OrderItem{
			{ProductID: "prod_0", Name: "Tea Powder Sachet", Quantity: 2, Price: 5},
			{ProductID: "prod_7", Name: "Notebook (Mini)", Quantity: 1, Price: 10},
		},
		TotalAmount: 20,
		Status:      entity.StatusPendingVerification,
		CreatedAt:   time.Now().UTC().Truncate(time.Millisecond),
	}
}

func TestOrderRepository_List_AbsentSnapshotMeansEmpty(t *testing.T) {
	repo := NewOrderRepository(NewMemoryStore())

	orders, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderRepository_Append_PrependsNewestFirst(t *testing.T) {
	repo := NewOrderRepository(NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testOrder("ord_1")))
	require.NoError(t, repo.Append(ctx, testOrder("ord_2")))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "ord_2", orders[0].ID)
	assert.Equal(t, "ord_1", orders[1].ID)
}

func TestOrderRepository_UpdateStatus_SetsInPlace(t *testing.T) {
	repo := NewOrderRepository(NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testOrder("ord_1")))
	require.NoError(t, repo.Append(ctx, testOrder("ord_2")))

	require.NoError(t, repo.UpdateStatus(ctx, "ord_1", entity.StatusPaid))

	orders, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPendingVerification, orders[0].Status)
	assert.Equal(t, entity.StatusPaid, orders[1].Status)
}

func TestOrderRepository_UpdateStatus_MissingIDLeavesSnapshotUntouched(t *testing.T) {
	store := NewMemoryStore()
	repo := NewOrderRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testOrder("ord_1")))
	before, _, err := store.Read(KeyOrders)
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, "nonexistent-id", entity.StatusPaid))

	after, _, err := store.Read(KeyOrders)
	require.NoError(t, err)
	assert.Equal(t, before, after, "no-op must not rewrite the snapshot")
}

func TestOrderRepository_UpdateStatus_Idempotent(t *testing.T) {
	repo := NewOrderRepository(NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testOrder("ord_1")))
	require.NoError(t, repo.UpdateStatus(ctx, "ord_1", entity.StatusPaid))
	require.NoError(t, repo.UpdateStatus(ctx, "ord_1", entity.StatusPaid))

	order, err := repo.Get(ctx, "ord_1")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPaid, order.Status)
}

func TestOrderRepository_Get(t *testing.T) {
	repo := NewOrderRepository(NewMemoryStore())
	ctx := context.Background()

	want := testOrder("ord_1")
	require.NoError(t, repo.Append(ctx, want))

	got, err := repo.Get(ctx, "ord_1")
	require.NoError(t, err)
	assert.Equal(t, want.TotalAmount, got.TotalAmount)
	assert.Equal(t, want.Items, got.Items)

	_, err = repo.Get(ctx, "ord_missing")
	assert.ErrorIs(t, err, repository.ErrOrderNotFound)
}
