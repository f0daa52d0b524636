package fulfillment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderService_ListOrders(t *testing.T) {
	orders := &fakeOrderRepo{}
	warehouses := newFakeWarehouseRepo()
	service := NewOrderService(orders, warehouses)

	accountID := uuid.New()
	wh := seedWarehouse(t, warehouses, accountID)
	seedOrder(t, orders, accountID, wh.ID, "SO-001", fulfillment.StatusPending)
	seedOrder(t, orders, accountID, wh.ID, "SO-002", fulfillment.StatusCancelled)

	// Another account's order in the same warehouse stays invisible.
	seedOrder(t, orders, uuid.New(), wh.ID, "SO-OTHER", fulfillment.StatusPending)

	summaries, err := service.ListOrders(context.Background(), accountID, wh.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	assert.Equal(t, fulfillment.BucketNeedsShipping.String(), summaries[0].Bucket)
	assert.True(t, summaries[0].NeedsPicking)
	assert.Equal(t, fulfillment.BucketExcluded.String(), summaries[1].Bucket)
	assert.False(t, summaries[1].NeedsPicking)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orders := &fakeOrderRepo{}
	warehouses := newFakeWarehouseRepo()
	service := NewOrderService(orders, warehouses)

	accountID := uuid.New()
	wh := seedWarehouse(t, warehouses, accountID)
	order := seedOrder(t, orders, accountID, wh.ID, "SO-001", fulfillment.StatusPending)

	t.Run("writes a whitelisted field and reclassifies", func(t *testing.T) {
		summary, err := service.UpdateOrderStatus(context.Background(), accountID, order.ID,
			fulfillment.StatusFieldStatus, "shipped")
		require.NoError(t, err)
		assert.Equal(t, fulfillment.StatusShipped, summary.Status, "value is normalized")
		assert.Equal(t, fulfillment.BucketCompleted.String(), summary.Bucket)
		assert.Contains(t, orders.updates, order.ID.String()+":status=SHIPPED")
	})

	t.Run("rejects unknown fields before touching the store", func(t *testing.T) {
		updates := len(orders.updates)
		_, err := service.UpdateOrderStatus(context.Background(), accountID, order.ID,
			"customer_name", "oops")
		assert.Error(t, err)
		assert.Len(t, orders.updates, updates)
	})

	t.Run("unknown order fails", func(t *testing.T) {
		_, err := service.UpdateOrderStatus(context.Background(), accountID, uuid.New(),
			fulfillment.StatusFieldStatus, "shipped")
		assert.Error(t, err)
	})
}

func TestOrderService_StatusCatalog(t *testing.T) {
	service := NewOrderService(&fakeOrderRepo{}, newFakeWarehouseRepo())

	catalog := service.StatusCatalog()
	require.NotEmpty(t, catalog)
	assert.Equal(t, fulfillment.StatusPending, catalog[0].Code)
	for _, status := range catalog {
		assert.NotEmpty(t, status.Label)
		assert.NotEmpty(t, status.Color)
	}
}
