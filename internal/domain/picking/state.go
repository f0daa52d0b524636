package picking

import (
	"sort"

	"github.com/google/uuid"
)

// State is the per-warehouse pick/pack progress owned by this service:
// which SKUs the shopper has pulled and which orders have been packed.
// The two sets are independent; both toggles are involutions, so toggling
// the same key twice restores the original state.
type State struct {
	WarehouseID    uuid.UUID
	pickedSKUs     map[string]struct{}
	packedOrderIDs map[string]struct{}
}

// NewState creates an empty picking state for a warehouse
func NewState(warehouseID uuid.UUID) *State {
	return &State{
		WarehouseID:    warehouseID,
		pickedSKUs:     make(map[string]struct{}),
		packedOrderIDs: make(map[string]struct{}),
	}
}

// NewStateFrom restores a picking state from persisted key lists
func NewStateFrom(warehouseID uuid.UUID, pickedSKUs, packedOrderIDs []string) *State {
	s := NewState(warehouseID)
	for _, sku := range pickedSKUs {
		if sku != "" {
			s.pickedSKUs[sku] = struct{}{}
		}
	}
	for _, id := range packedOrderIDs {
		if id != "" {
			s.packedOrderIDs[id] = struct{}{}
		}
	}
	return s
}

// TogglePicked flips the picked flag for a SKU and returns the new value
func (s *State) TogglePicked(sku string) bool {
	if sku == "" {
		return false
	}
	if _, ok := s.pickedSKUs[sku]; ok {
		delete(s.pickedSKUs, sku)
		return false
	}
	s.pickedSKUs[sku] = struct{}{}
	return true
}

// TogglePacked flips the packed flag for an order ID and returns the new value
func (s *State) TogglePacked(orderID string) bool {
	if orderID == "" {
		return false
	}
	if _, ok := s.packedOrderIDs[orderID]; ok {
		delete(s.packedOrderIDs, orderID)
		return false
	}
	s.packedOrderIDs[orderID] = struct{}{}
	return true
}

// IsPicked reports whether a SKU has been marked picked
func (s *State) IsPicked(sku string) bool {
	_, ok := s.pickedSKUs[sku]
	return ok
}

// IsPacked reports whether an order has been marked packed
func (s *State) IsPacked(orderID string) bool {
	_, ok := s.packedOrderIDs[orderID]
	return ok
}

// PickedSKUs returns the picked SKUs sorted, for deterministic persistence
func (s *State) PickedSKUs() []string {
	return sortedKeys(s.pickedSKUs)
}

// PackedOrderIDs returns the packed order IDs sorted, for deterministic persistence
func (s *State) PackedOrderIDs() []string {
	return sortedKeys(s.packedOrderIDs)
}

// Clear resets both sets
func (s *State) Clear() {
	s.pickedSKUs = make(map[string]struct{})
	s.packedOrderIDs = make(map[string]struct{})
}

// IsEmpty reports whether no progress has been recorded
func (s *State) IsEmpty() bool {
	return len(s.pickedSKUs) == 0 && len(s.packedOrderIDs) == 0
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
