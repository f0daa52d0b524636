package fulfillment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/warehouse"
)

// OrderService exposes the order store to the dashboard: listing a
// warehouse's orders with their classification, and the narrow status
// updates the packing flow performs.
type OrderService struct {
	orders     fulfillment.OrderRepository
	warehouses warehouse.Repository
}

// NewOrderService creates the order service
func NewOrderService(orders fulfillment.OrderRepository, warehouses warehouse.Repository) *OrderService {
	return &OrderService{orders: orders, warehouses: warehouses}
}

// ListOrders returns a warehouse's orders annotated with the bucket each one
// classifies into under the warehouse's rules.
func (s *OrderService) ListOrders(ctx context.Context, accountID, warehouseID uuid.UUID) ([]OrderSummaryDTO, error) {
	wh, err := s.warehouses.FindByID(ctx, accountID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("load warehouse: %w", err)
	}
	rules := wh.FulfillmentRules()

	orders, err := s.orders.FindByWarehouse(ctx, accountID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	summaries := make([]OrderSummaryDTO, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, toOrderSummaryDTO(order, rules, false))
	}
	return summaries, nil
}

// UpdateOrderStatus writes one status field on an order. The field must be
// one of the two status columns; anything else is rejected before touching
// the store.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, accountID, orderID uuid.UUID, field, value string) (*OrderSummaryDTO, error) {
	order, err := s.orders.FindByID(ctx, accountID, orderID)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}

	if err := order.UpdateStatusField(field, value); err != nil {
		return nil, err
	}
	if err := s.orders.UpdateStatus(ctx, accountID, orderID, field, fulfillment.NormalizeStatus(value)); err != nil {
		return nil, fmt.Errorf("update order status: %w", err)
	}

	wh, err := s.warehouses.FindByID(ctx, accountID, order.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("load warehouse: %w", err)
	}

	summary := toOrderSummaryDTO(order, wh.FulfillmentRules(), false)
	return &summary, nil
}

// StatusCatalog returns the canonical status codes for dashboard rendering
func (s *OrderService) StatusCatalog() []fulfillment.StatusCode {
	return fulfillment.StatusCatalog()
}
