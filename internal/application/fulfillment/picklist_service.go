package fulfillment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/picking"
	"github.com/shipdesk/backend/internal/domain/warehouse"
	"go.uber.org/zap"
)

// PickListService builds the picking screen payload for a warehouse:
// classify the warehouse's orders, cap them for the run, consolidate the
// capped set into per-SKU rows and overlay the recorded progress.
type PickListService struct {
	orders     fulfillment.OrderRepository
	warehouses warehouse.Repository
	progress   *ProgressService
	logger     *zap.Logger
}

// NewPickListService creates the pick-list service
func NewPickListService(
	orders fulfillment.OrderRepository,
	warehouses warehouse.Repository,
	progress *ProgressService,
	logger *zap.Logger,
) *PickListService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PickListService{
		orders:     orders,
		warehouses: warehouses,
		progress:   progress,
		logger:     logger,
	}
}

// BuildPickList assembles the full picking payload for one warehouse.
// The limiter cap applies to the orders that need shipping, in repository
// order, so repeated calls with unchanged data return the same selection.
func (s *PickListService) BuildPickList(ctx context.Context, accountID, warehouseID uuid.UUID, limit fulfillment.LimiterConfig) (*PickListDTO, error) {
	wh, err := s.warehouses.FindByID(ctx, accountID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("load warehouse: %w", err)
	}
	rules := wh.FulfillmentRules()

	orders, err := s.orders.FindByWarehouse(ctx, accountID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	counts := fulfillment.CountBuckets(orders, rules)
	toShip := fulfillment.FilterNeedsShipping(orders, rules)
	limited := fulfillment.Limit(toShip, limit)
	pickable := fulfillment.FilterNeedsPicking(limited.Capped, rules)
	items := fulfillment.Consolidate(pickable)

	progress := s.progress.Progress(ctx, warehouseID)
	state := picking.NewStateFrom(warehouseID, progress.PickedSKUs, progress.PackedOrderIDs)

	totalUnits := picking.TotalUnitsToPick(pickable)
	remaining := picking.RemainingToPick(totalUnits, items, state)

	dto := &PickListDTO{
		WarehouseID:      warehouseID,
		Counts:           counts,
		TotalCount:       limited.TotalCount,
		CappedCount:      limited.CappedCount,
		Orders:           make([]OrderSummaryDTO, 0, len(limited.Capped)),
		Items:            make([]PickListItemDTO, 0, len(items)),
		TotalUnitsToPick: totalUnits,
		RemainingToPick:  remaining,
		PickingComplete:  totalUnits > 0 && remaining == 0,
	}
	for _, order := range limited.Capped {
		dto.Orders = append(dto.Orders, toOrderSummaryDTO(order, rules, state.IsPacked(order.ID.String())))
	}
	for _, item := range items {
		dto.Items = append(dto.Items, toPickListItemDTO(item, state.IsPicked(item.SKU)))
	}
	return dto, nil
}

// OrderCounts returns only the dashboard bucket counts for a warehouse
func (s *PickListService) OrderCounts(ctx context.Context, accountID, warehouseID uuid.UUID) (*fulfillment.BucketCounts, error) {
	wh, err := s.warehouses.FindByID(ctx, accountID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("load warehouse: %w", err)
	}

	orders, err := s.orders.FindByWarehouse(ctx, accountID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	counts := fulfillment.CountBuckets(orders, wh.FulfillmentRules())
	return &counts, nil
}
