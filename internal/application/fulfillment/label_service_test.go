package fulfillment

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelService_ResolveReturnAddress(t *testing.T) {
	orders := &fakeOrderRepo{}
	warehouses := newFakeWarehouseRepo()
	service := NewLabelService(warehouses, orders)

	accountID := uuid.New()
	wh := seedWarehouse(t, warehouses, accountID)
	wh.Address.Name = "Chicago - [shop] Returns"

	order := seedOrder(t, orders, accountID, wh.ID, "SO-001", fulfillment.StatusPending)
	order.StoreName = "Acme"
	order.Platform = "shopify"
	orderID := order.ID

	t.Run("order context resolves placeholders", func(t *testing.T) {
		resolved, err := service.ResolveReturnAddress(context.Background(), accountID, wh.ID, &orderID)
		require.NoError(t, err)
		assert.Equal(t, "Chicago - Acme Returns", resolved.DisplayName)
		assert.Equal(t, "100 Dock Rd", resolved.Line1)
	})

	t.Run("no order leaves template unchanged", func(t *testing.T) {
		resolved, err := service.ResolveReturnAddress(context.Background(), accountID, wh.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, "Chicago - [shop] Returns", resolved.DisplayName)
	})

	t.Run("override address wins when flagged", func(t *testing.T) {
		override, err := valueobject.NewAddress("9 Returns Dock", "Chicago")
		require.NoError(t, err)
		wh.SetReturnAddress(override, true)
		t.Cleanup(func() { wh.SetReturnAddress(valueobject.Address{}, false) })

		resolved, err := service.ResolveReturnAddress(context.Background(), accountID, wh.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, "9 Returns Dock", resolved.Line1)
	})

	t.Run("unknown order fails", func(t *testing.T) {
		missing := uuid.New()
		_, err := service.ResolveReturnAddress(context.Background(), accountID, wh.ID, &missing)
		assert.Error(t, err)
	})

	t.Run("unknown warehouse fails", func(t *testing.T) {
		_, err := service.ResolveReturnAddress(context.Background(), accountID, uuid.New(), nil)
		assert.Error(t, err)
	})
}
