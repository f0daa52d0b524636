package picking

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// KVStore is the synchronous key-value persistence collaborator backing
// picking state. Implementations live in infrastructure (redis, gorm,
// in-memory); values are JSON-encoded arrays of strings.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ItemsKey returns the storage key for a warehouse's picked-SKU set
func ItemsKey(warehouseID uuid.UUID) string {
	return fmt.Sprintf("picking_items_warehouse_%s", warehouseID)
}

// OrdersKey returns the storage key for a warehouse's packed-order set
func OrdersKey(warehouseID uuid.UUID) string {
	return fmt.Sprintf("picking_orders_warehouse_%s", warehouseID)
}

// StateStore loads and persists State through a KVStore.
//
// Loads are tolerant: an absent key, a read failure, or corrupt JSON all
// degrade to an empty set so the picking screen keeps working; the error is
// returned alongside the usable state so callers can log it. Writes are
// last-write-wins with no versioning; two instances mutating the same
// warehouse concurrently can lose an update (known gap).
type StateStore struct {
	kv KVStore
}

// NewStateStore creates a state store on top of a KV store
func NewStateStore(kv KVStore) *StateStore {
	return &StateStore{kv: kv}
}

// Load reads the persisted state for a warehouse. The returned state is
// always usable; a non-nil error only means some portion degraded to empty.
func (s *StateStore) Load(ctx context.Context, warehouseID uuid.UUID) (*State, error) {
	pickedSKUs, errItems := s.loadList(ctx, ItemsKey(warehouseID))
	packedOrderIDs, errOrders := s.loadList(ctx, OrdersKey(warehouseID))

	state := NewStateFrom(warehouseID, pickedSKUs, packedOrderIDs)
	if errItems != nil {
		return state, errItems
	}
	return state, errOrders
}

// Save persists both sets for the state's warehouse
func (s *StateStore) Save(ctx context.Context, state *State) error {
	if err := s.saveList(ctx, ItemsKey(state.WarehouseID), state.PickedSKUs()); err != nil {
		return err
	}
	return s.saveList(ctx, OrdersKey(state.WarehouseID), state.PackedOrderIDs())
}

// Clear removes both persisted sets for a warehouse
func (s *StateStore) Clear(ctx context.Context, warehouseID uuid.UUID) error {
	if err := s.kv.Delete(ctx, ItemsKey(warehouseID)); err != nil {
		return err
	}
	return s.kv.Delete(ctx, OrdersKey(warehouseID))
}

func (s *StateStore) loadList(ctx context.Context, key string) ([]string, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return nil, nil
	}

	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	return list, nil
}

func (s *StateStore) saveList(ctx context.Context, key string, list []string) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
