package fulfillment

import (
	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/warehouse"
)

// OrderSummaryDTO is one order row on the dashboard
type OrderSummaryDTO struct {
	ID                uuid.UUID `json:"id"`
	OrderNumber       string    `json:"orderNumber"`
	Status            string    `json:"status"`
	FulfillmentStatus string    `json:"fulfillmentStatus"`
	ItemCount         int       `json:"itemCount"`
	RequestedShipping string    `json:"requestedShipping,omitempty"`
	CustomerName      string    `json:"customerName,omitempty"`
	Platform          string    `json:"platform,omitempty"`
	Bucket            string    `json:"bucket"`
	NeedsPicking      bool      `json:"needsPicking"`
	Packed            bool      `json:"packed"`
}

// ContributionDTO is the per-order quantity breakdown on a pick-list row
type ContributionDTO struct {
	OrderID     uuid.UUID `json:"orderId"`
	OrderNumber string    `json:"orderNumber"`
	Quantity    int       `json:"quantity"`
}

// PickListItemDTO is one consolidated pick-list row with its picked flag
type PickListItemDTO struct {
	SKU           string            `json:"sku"`
	Name          string            `json:"name"`
	TotalQuantity int               `json:"totalQuantity"`
	Location      string            `json:"location,omitempty"`
	Picked        bool              `json:"picked"`
	Orders        []ContributionDTO `json:"orders"`
}

// PickListDTO is the full payload for a warehouse's picking screen
type PickListDTO struct {
	WarehouseID      uuid.UUID                `json:"warehouseId"`
	Counts           fulfillment.BucketCounts `json:"counts"`
	TotalCount       int                      `json:"totalCount"`
	CappedCount      int                      `json:"cappedCount"`
	Orders           []OrderSummaryDTO        `json:"orders"`
	Items            []PickListItemDTO        `json:"items"`
	TotalUnitsToPick int                      `json:"totalUnitsToPick"`
	RemainingToPick  int                      `json:"remainingToPick"`
	PickingComplete  bool                     `json:"pickingComplete"`
}

// ProgressDTO is the persisted pick/pack progress for a warehouse
type ProgressDTO struct {
	WarehouseID    uuid.UUID `json:"warehouseId"`
	PickedSKUs     []string  `json:"pickedSkus"`
	PackedOrderIDs []string  `json:"packedOrderIds"`
}

// ToggleResultDTO reports the new value of a single toggle plus the
// progress snapshot after the mutation
type ToggleResultDTO struct {
	Key      string      `json:"key"`
	Active   bool        `json:"active"`
	Progress ProgressDTO `json:"progress"`
}

// ResolvedAddressDTO is the return-label address with templates resolved
type ResolvedAddressDTO struct {
	DisplayName string `json:"displayName"`
	Company     string `json:"company,omitempty"`
	Line1       string `json:"line1"`
	Line2       string `json:"line2,omitempty"`
	City        string `json:"city"`
	Region      string `json:"region,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	Country     string `json:"country,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

func toOrderSummaryDTO(order *fulfillment.Order, rules fulfillment.Rules, packed bool) OrderSummaryDTO {
	return OrderSummaryDTO{
		ID:                order.ID,
		OrderNumber:       order.OrderNumber,
		Status:            order.Status,
		FulfillmentStatus: order.FulfillmentStatus,
		ItemCount:         order.UnitCount(),
		RequestedShipping: order.RequestedShipping,
		CustomerName:      order.CustomerName,
		Platform:          order.Platform,
		Bucket:            fulfillment.Classify(order, rules).String(),
		NeedsPicking:      fulfillment.NeedsPicking(order, rules),
		Packed:            packed,
	}
}

func toPickListItemDTO(item fulfillment.ConsolidatedItem, picked bool) PickListItemDTO {
	orders := make([]ContributionDTO, len(item.Orders))
	for i, c := range item.Orders {
		orders[i] = ContributionDTO{
			OrderID:     c.OrderID,
			OrderNumber: c.OrderNumber,
			Quantity:    c.Quantity,
		}
	}
	return PickListItemDTO{
		SKU:           item.SKU,
		Name:          item.Name,
		TotalQuantity: item.TotalQuantity,
		Location:      item.Location,
		Picked:        picked,
		Orders:        orders,
	}
}

func toResolvedAddressDTO(resolved warehouse.ResolvedAddress) *ResolvedAddressDTO {
	return &ResolvedAddressDTO{
		DisplayName: resolved.DisplayName,
		Company:     resolved.Company,
		Line1:       resolved.Line1,
		Line2:       resolved.Line2,
		City:        resolved.City,
		Region:      resolved.Region,
		PostalCode:  resolved.PostalCode,
		Country:     resolved.Country,
		Phone:       resolved.Phone,
	}
}
