package fulfillment

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/picking"
	"github.com/shipdesk/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// ProgressService tracks pick/pack progress per warehouse. It keeps an
// in-memory write-through cache in front of the persistent store so a storage
// outage degrades to session-local progress instead of a hard failure.
type ProgressService struct {
	store  *picking.StateStore
	logger *zap.Logger

	mu     sync.RWMutex
	states map[uuid.UUID]*picking.State
}

// NewProgressService creates the progress service
func NewProgressService(store *picking.StateStore, logger *zap.Logger) *ProgressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgressService{
		store:  store,
		logger: logger,
		states: make(map[uuid.UUID]*picking.State),
	}
}

// state returns the cached state for a warehouse, loading it from the store
// on first access. A degraded load is logged and the usable remainder kept.
func (s *ProgressService) state(ctx context.Context, warehouseID uuid.UUID) *picking.State {
	s.mu.RLock()
	state, ok := s.states[warehouseID]
	s.mu.RUnlock()
	if ok {
		return state
	}

	loaded, err := s.store.Load(ctx, warehouseID)
	if err != nil {
		s.logger.Warn("picking state load degraded",
			zap.String("warehouse_id", warehouseID.String()),
			zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok = s.states[warehouseID]; ok {
		return state
	}
	s.states[warehouseID] = loaded
	return loaded
}

// persist writes the state through to the store. Write failures are logged
// and swallowed; the in-memory state already reflects the mutation.
func (s *ProgressService) persist(ctx context.Context, state *picking.State) {
	if err := s.store.Save(ctx, state); err != nil {
		s.logger.Warn("picking state save failed, progress kept in memory",
			zap.String("warehouse_id", state.WarehouseID.String()),
			zap.Error(err))
	}
}

// Progress returns the current progress snapshot for a warehouse
func (s *ProgressService) Progress(ctx context.Context, warehouseID uuid.UUID) ProgressDTO {
	state := s.state(ctx, warehouseID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.toDTO(state)
}

// ToggleItemPicked flips the picked flag for a SKU and persists the result
func (s *ProgressService) ToggleItemPicked(ctx context.Context, warehouseID uuid.UUID, sku string) (*ToggleResultDTO, error) {
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}

	state := s.state(ctx, warehouseID)

	s.mu.Lock()
	active := state.TogglePicked(sku)
	result := &ToggleResultDTO{Key: sku, Active: active, Progress: s.toDTO(state)}
	s.mu.Unlock()

	s.persist(ctx, state)
	return result, nil
}

// ToggleOrderPacked flips the packed flag for an order and persists the result
func (s *ProgressService) ToggleOrderPacked(ctx context.Context, warehouseID uuid.UUID, orderID string) (*ToggleResultDTO, error) {
	if orderID == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_ID", "Order ID cannot be empty")
	}

	state := s.state(ctx, warehouseID)

	s.mu.Lock()
	active := state.TogglePacked(orderID)
	result := &ToggleResultDTO{Key: orderID, Active: active, Progress: s.toDTO(state)}
	s.mu.Unlock()

	s.persist(ctx, state)
	return result, nil
}

// Reset clears all progress for a warehouse, in memory and in the store
func (s *ProgressService) Reset(ctx context.Context, warehouseID uuid.UUID) error {
	state := s.state(ctx, warehouseID)

	s.mu.Lock()
	state.Clear()
	s.mu.Unlock()

	return s.store.Clear(ctx, warehouseID)
}

func (s *ProgressService) toDTO(state *picking.State) ProgressDTO {
	return ProgressDTO{
		WarehouseID:    state.WarehouseID,
		PickedSKUs:     state.PickedSKUs(),
		PackedOrderIDs: state.PackedOrderIDs(),
	}
}
