package fulfillment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/warehouse"
)

// LabelService resolves the return address printed on shipping labels
type LabelService struct {
	warehouses warehouse.Repository
	orders     fulfillment.OrderRepository
}

// NewLabelService creates the label service
func NewLabelService(warehouses warehouse.Repository, orders fulfillment.OrderRepository) *LabelService {
	return &LabelService{warehouses: warehouses, orders: orders}
}

// ResolveReturnAddress resolves the return address for a warehouse. When an
// order ID is supplied, its store name and platform feed the display-name
// template; without one the template is left as stored.
func (s *LabelService) ResolveReturnAddress(ctx context.Context, accountID, warehouseID uuid.UUID, orderID *uuid.UUID) (*ResolvedAddressDTO, error) {
	wh, err := s.warehouses.FindByID(ctx, accountID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("load warehouse: %w", err)
	}

	var labelCtx *warehouse.LabelContext
	if orderID != nil {
		order, err := s.orders.FindByID(ctx, accountID, *orderID)
		if err != nil {
			return nil, fmt.Errorf("load order: %w", err)
		}
		labelCtx = &warehouse.LabelContext{
			StoreName: order.StoreName,
			Platform:  order.Platform,
		}
	}

	resolved := warehouse.ResolveReturnAddress(wh, labelCtx)
	return toResolvedAddressDTO(resolved), nil
}
