package fulfillment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/shared/valueobject"
	"github.com/shipdesk/backend/internal/domain/warehouse"
)

// WarehouseDTO is the settings-screen view of a warehouse
type WarehouseDTO struct {
	ID                        uuid.UUID            `json:"id"`
	Code                      string               `json:"code"`
	Name                      string               `json:"name"`
	Address                   valueobject.Address  `json:"address"`
	ReturnAddress             *valueobject.Address `json:"returnAddress,omitempty"`
	UseDifferentReturnAddress bool                 `json:"useDifferentReturnAddress"`
	Rules                     fulfillment.Rules    `json:"rules"`
	RulesConfigured           bool                 `json:"rulesConfigured"`
}

// CreateWarehouseRequest carries the fields needed to register a warehouse
type CreateWarehouseRequest struct {
	Code    string              `json:"code" binding:"required"`
	Name    string              `json:"name" binding:"required"`
	Address valueobject.Address `json:"address" binding:"required"`
}

// SetReturnAddressRequest configures the override return address
type SetReturnAddressRequest struct {
	Address      valueobject.Address `json:"address"`
	UseDifferent bool                `json:"useDifferent"`
}

// WarehouseService manages warehouses and their dashboard settings
type WarehouseService struct {
	warehouses warehouse.Repository
}

// NewWarehouseService creates the warehouse service
func NewWarehouseService(warehouses warehouse.Repository) *WarehouseService {
	return &WarehouseService{warehouses: warehouses}
}

// CreateWarehouse registers a new warehouse
func (s *WarehouseService) CreateWarehouse(ctx context.Context, accountID uuid.UUID, req CreateWarehouseRequest) (*WarehouseDTO, error) {
	wh, err := warehouse.NewWarehouse(accountID, req.Code, req.Name, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.warehouses.Save(ctx, wh); err != nil {
		return nil, fmt.Errorf("save warehouse: %w", err)
	}
	return s.toDTO(wh), nil
}

// GetWarehouse returns one warehouse with its effective rules
func (s *WarehouseService) GetWarehouse(ctx context.Context, accountID, warehouseID uuid.UUID) (*WarehouseDTO, error) {
	wh, err := s.warehouses.FindByID(ctx, accountID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("load warehouse: %w", err)
	}
	return s.toDTO(wh), nil
}

// ListWarehouses returns all warehouses for an account
func (s *WarehouseService) ListWarehouses(ctx context.Context, accountID uuid.UUID) ([]WarehouseDTO, error) {
	warehouses, err := s.warehouses.FindAll(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: %w", err)
	}

	dtos := make([]WarehouseDTO, 0, len(warehouses))
	for _, wh := range warehouses {
		dtos = append(dtos, *s.toDTO(wh))
	}
	return dtos, nil
}

// UpdateRules replaces a warehouse's fulfillment rules. Overlapping rule sets
// are rejected with a domain error before anything is persisted.
func (s *WarehouseService) UpdateRules(ctx context.Context, accountID, warehouseID uuid.UUID, rules fulfillment.Rules) (*WarehouseDTO, error) {
	wh, err := s.warehouses.FindByID(ctx, accountID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("load warehouse: %w", err)
	}

	if rules.IsEmpty() {
		wh.ClearRules()
	} else if err := wh.UpdateRules(rules); err != nil {
		return nil, err
	}

	if err := s.warehouses.Save(ctx, wh); err != nil {
		return nil, fmt.Errorf("save warehouse: %w", err)
	}
	return s.toDTO(wh), nil
}

// SetReturnAddress configures or removes the override return address
func (s *WarehouseService) SetReturnAddress(ctx context.Context, accountID, warehouseID uuid.UUID, req SetReturnAddressRequest) (*WarehouseDTO, error) {
	wh, err := s.warehouses.FindByID(ctx, accountID, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("load warehouse: %w", err)
	}

	wh.SetReturnAddress(req.Address, req.UseDifferent)
	if err := s.warehouses.Save(ctx, wh); err != nil {
		return nil, fmt.Errorf("save warehouse: %w", err)
	}
	return s.toDTO(wh), nil
}

func (s *WarehouseService) toDTO(wh *warehouse.Warehouse) *WarehouseDTO {
	return &WarehouseDTO{
		ID:                        wh.ID,
		Code:                      wh.Code,
		Name:                      wh.Name,
		Address:                   wh.Address,
		ReturnAddress:             wh.ReturnAddress,
		UseDifferentReturnAddress: wh.UseDifferentReturnAddress,
		Rules:                     wh.FulfillmentRules(),
		RulesConfigured:           wh.Settings.OrderStatus != nil,
	}
}
