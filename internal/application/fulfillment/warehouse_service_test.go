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

func TestWarehouseService_CreateAndGet(t *testing.T) {
	repo := newFakeWarehouseRepo()
	service := NewWarehouseService(repo)
	accountID := uuid.New()

	address, err := valueobject.NewAddress("100 Dock Rd", "Chicago")
	require.NoError(t, err)

	created, err := service.CreateWarehouse(context.Background(), accountID, CreateWarehouseRequest{
		Code:    "chi-1",
		Name:    "Chicago Hub",
		Address: address,
	})
	require.NoError(t, err)
	assert.Equal(t, "CHI-1", created.Code, "code is canonicalized")
	assert.False(t, created.RulesConfigured)
	assert.Equal(t, fulfillment.DefaultRules(), created.Rules, "defaults apply untouched")

	got, err := service.GetWarehouse(context.Background(), accountID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestWarehouseService_UpdateRules(t *testing.T) {
	repo := newFakeWarehouseRepo()
	service := NewWarehouseService(repo)
	accountID := uuid.New()
	wh := seedWarehouse(t, repo, accountID)

	t.Run("valid rules are persisted", func(t *testing.T) {
		dto, err := service.UpdateRules(context.Background(), accountID, wh.ID, fulfillment.Rules{
			ToShipStatuses:   []string{"PENDING", "PROCESSING"},
			ExcludedStatuses: []string{"CANCELLED"},
			DisplayText:      "ready for carrier",
		})
		require.NoError(t, err)
		assert.True(t, dto.RulesConfigured)
		assert.Equal(t, "ready for carrier", dto.Rules.DisplayText)
	})

	t.Run("overlapping sets are rejected", func(t *testing.T) {
		_, err := service.UpdateRules(context.Background(), accountID, wh.ID, fulfillment.Rules{
			ToShipStatuses:   []string{"PENDING"},
			ExcludedStatuses: []string{"pending"},
		})
		assert.Error(t, err, "overlap is a conflict regardless of case")
	})

	t.Run("empty rules reset to defaults", func(t *testing.T) {
		dto, err := service.UpdateRules(context.Background(), accountID, wh.ID, fulfillment.Rules{})
		require.NoError(t, err)
		assert.False(t, dto.RulesConfigured)
		assert.Equal(t, fulfillment.DefaultRules(), dto.Rules)
	})
}

func TestWarehouseService_SetReturnAddress(t *testing.T) {
	repo := newFakeWarehouseRepo()
	service := NewWarehouseService(repo)
	accountID := uuid.New()
	wh := seedWarehouse(t, repo, accountID)

	override, err := valueobject.NewAddress("9 Returns Dock", "Chicago")
	require.NoError(t, err)

	dto, err := service.SetReturnAddress(context.Background(), accountID, wh.ID, SetReturnAddressRequest{
		Address:      override,
		UseDifferent: true,
	})
	require.NoError(t, err)
	assert.True(t, dto.UseDifferentReturnAddress)
	require.NotNil(t, dto.ReturnAddress)
	assert.Equal(t, "9 Returns Dock", dto.ReturnAddress.Line1)

	// An empty address removes the override entirely.
	dto, err = service.SetReturnAddress(context.Background(), accountID, wh.ID, SetReturnAddressRequest{})
	require.NoError(t, err)
	assert.False(t, dto.UseDifferentReturnAddress)
	assert.Nil(t, dto.ReturnAddress)
}

func TestWarehouseService_ListWarehouses(t *testing.T) {
	repo := newFakeWarehouseRepo()
	service := NewWarehouseService(repo)
	accountID := uuid.New()
	seedWarehouse(t, repo, accountID)

	list, err := service.ListWarehouses(context.Background(), accountID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	other, err := service.ListWarehouses(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, other, "accounts are isolated")
}
