package fulfillment

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/shared"
	"github.com/shipdesk/backend/internal/domain/shared/valueobject"
	"github.com/shipdesk/backend/internal/domain/warehouse"
	"github.com/stretchr/testify/require"
)

// fakeOrderRepo is an in-memory OrderRepository preserving insertion order
type fakeOrderRepo struct {
	orders  []*fulfillment.Order
	findErr error
	updates []string
}

func (f *fakeOrderRepo) FindByID(_ context.Context, accountID, id uuid.UUID) (*fulfillment.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, order := range f.orders {
		if order.ID == id && order.AccountID == accountID {
			return order, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeOrderRepo) FindByWarehouse(_ context.Context, accountID, warehouseID uuid.UUID) ([]*fulfillment.Order, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	result := make([]*fulfillment.Order, 0, len(f.orders))
	for _, order := range f.orders {
		if order.AccountID == accountID && order.WarehouseID == warehouseID {
			result = append(result, order)
		}
	}
	return result, nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, _, id uuid.UUID, field, value string) error {
	f.updates = append(f.updates, id.String()+":"+field+"="+value)
	return nil
}

func (f *fakeOrderRepo) Save(_ context.Context, order *fulfillment.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

// fakeWarehouseRepo is an in-memory warehouse.Repository
type fakeWarehouseRepo struct {
	warehouses map[uuid.UUID]*warehouse.Warehouse
	saved      int
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[uuid.UUID]*warehouse.Warehouse)}
}

func (f *fakeWarehouseRepo) FindByID(_ context.Context, accountID, id uuid.UUID) (*warehouse.Warehouse, error) {
	wh, ok := f.warehouses[id]
	if !ok || wh.AccountID != accountID {
		return nil, shared.ErrNotFound
	}
	return wh, nil
}

func (f *fakeWarehouseRepo) FindByCode(_ context.Context, accountID uuid.UUID, code string) (*warehouse.Warehouse, error) {
	for _, wh := range f.warehouses {
		if wh.AccountID == accountID && wh.Code == code {
			return wh, nil
		}
	}
	return nil, shared.ErrNotFound
}

func (f *fakeWarehouseRepo) FindAll(_ context.Context, accountID uuid.UUID) ([]*warehouse.Warehouse, error) {
	result := make([]*warehouse.Warehouse, 0, len(f.warehouses))
	for _, wh := range f.warehouses {
		if wh.AccountID == accountID {
			result = append(result, wh)
		}
	}
	return result, nil
}

func (f *fakeWarehouseRepo) Save(_ context.Context, wh *warehouse.Warehouse) error {
	f.warehouses[wh.ID] = wh
	f.saved++
	return nil
}

func (f *fakeWarehouseRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(f.warehouses, id)
	return nil
}

// fakeKV is an in-memory picking.KVStore with injectable failures
type fakeKV struct {
	data   map[string]string
	getErr error
	setErr error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	if f.getErr != nil {
		return "", false, f.getErr
	}
	value, ok := f.data[key]
	return value, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

var errStorageDown = errors.New("storage offline")

func seedWarehouse(t *testing.T, repo *fakeWarehouseRepo, accountID uuid.UUID) *warehouse.Warehouse {
	t.Helper()
	address, err := valueobject.NewAddress("100 Dock Rd", "Chicago")
	require.NoError(t, err)
	wh, err := warehouse.NewWarehouse(accountID, "CHI-1", "Chicago Hub", address)
	require.NoError(t, err)
	repo.warehouses[wh.ID] = wh
	return wh
}

func seedOrder(t *testing.T, repo *fakeOrderRepo, accountID, warehouseID uuid.UUID, number, status string, items ...fulfillment.OrderItem) *fulfillment.Order {
	t.Helper()
	order, err := fulfillment.NewOrder(accountID, warehouseID, number)
	require.NoError(t, err)
	require.NoError(t, order.UpdateStatusField(fulfillment.StatusFieldStatus, status))
	for _, item := range items {
		require.NoError(t, order.AddItem(item.SKU, item.Name, item.Quantity, item.Location))
	}
	repo.orders = append(repo.orders, order)
	return order
}
