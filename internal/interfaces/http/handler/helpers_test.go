package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	fulfillmentapp "github.com/shipdesk/backend/internal/application/fulfillment"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/picking"
	"github.com/shipdesk/backend/internal/domain/shared"
	"github.com/shipdesk/backend/internal/domain/shared/valueobject"
	"github.com/shipdesk/backend/internal/domain/warehouse"
	"github.com/shipdesk/backend/internal/interfaces/http/middleware"
	"github.com/shipdesk/backend/internal/interfaces/http/router"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testAccountID = uuid.MustParse("4f8b0a6e-1f2d-4c3b-9a8e-7d6c5b4a3f2e")

// fakeOrderRepo is an in-memory OrderRepository preserving insertion order
type fakeOrderRepo struct {
	orders  []*fulfillment.Order
	findErr error
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

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, accountID, id uuid.UUID, field, value string) error {
	for _, order := range f.orders {
		if order.ID == id && order.AccountID == accountID {
			return order.UpdateStatusField(field, value)
		}
	}
	return shared.ErrNotFound
}

func (f *fakeOrderRepo) Save(_ context.Context, order *fulfillment.Order) error {
	f.orders = append(f.orders, order)
	return nil
}

// fakeWarehouseRepo is an in-memory warehouse.Repository
type fakeWarehouseRepo struct {
	warehouses map[uuid.UUID]*warehouse.Warehouse
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
	return nil
}

func (f *fakeWarehouseRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(f.warehouses, id)
	return nil
}

// fakeKV is an in-memory picking.KVStore
type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := f.data[key]
	return value, ok, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

// testEnv holds a fully wired engine over in-memory stores
type testEnv struct {
	engine     *gin.Engine
	orders     *fakeOrderRepo
	warehouses *fakeWarehouseRepo
	kv         *fakeKV
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	orders := &fakeOrderRepo{}
	warehouses := newFakeWarehouseRepo()
	kv := newFakeKV()

	progress := fulfillmentapp.NewProgressService(picking.NewStateStore(kv), zap.NewNop())
	picklists := fulfillmentapp.NewPickListService(orders, warehouses, progress, zap.NewNop())
	orderService := fulfillmentapp.NewOrderService(orders, warehouses)
	warehouseService := fulfillmentapp.NewWarehouseService(warehouses)
	labels := fulfillmentapp.NewLabelService(warehouses, orders)

	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		c.Set(middleware.AccountIDKey, testAccountID.String())
	})

	r := router.NewRouter(engine)
	r.Register(NewPickListHandler(picklists, 20, nil)).
		Register(NewProgressHandler(progress, nil)).
		Register(NewOrderHandler(orderService, nil)).
		Register(NewWarehouseHandler(warehouseService, labels)).
		Register(NewSystemHandler(nil))
	r.Setup()

	return &testEnv{
		engine:     engine,
		orders:     orders,
		warehouses: warehouses,
		kv:         kv,
	}
}

func (env *testEnv) request(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	env.engine.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors the response wrapper with the payload left raw so each
// test can decode into its own DTO
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total int64 `json:"total"`
	} `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var body envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out any) envelope {
	t.Helper()
	body := decodeEnvelope(t, rec)
	require.True(t, body.Success, "expected success envelope, got %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(body.Data, out))
	return body
}

func (env *testEnv) seedWarehouse(t *testing.T) *warehouse.Warehouse {
	t.Helper()

	address, err := valueobject.NewAddress("100 Dock Rd", "Chicago")
	require.NoError(t, err)
	wh, err := warehouse.NewWarehouse(testAccountID, "CHI-1", "Chicago Hub", address)
	require.NoError(t, err)
	require.NoError(t, env.warehouses.Save(context.Background(), wh))
	return wh
}

func (env *testEnv) seedOrder(t *testing.T, warehouseID uuid.UUID, number, status string, items ...fulfillment.OrderItem) *fulfillment.Order {
	t.Helper()

	order, err := fulfillment.NewOrder(testAccountID, warehouseID, number)
	require.NoError(t, err)
	order.Status = status
	for _, item := range items {
		require.NoError(t, order.AddItem(item.SKU, item.Name, item.Quantity, item.Location))
	}
	require.NoError(t, env.orders.Save(context.Background(), order))
	return order
}
