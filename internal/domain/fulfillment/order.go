package fulfillment

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/shared"
	"github.com/shipdesk/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderItem represents a line item in an order snapshot.
// The SKU identifies the item within the order; Location is the bin code the
// item is stowed at and may be empty when the channel did not report one.
type OrderItem struct {
	SKU      string
	Name     string
	Quantity int
	Location string
}

// Order is a read-mostly snapshot of a sales order as imported from a channel.
// The engine only classifies and aggregates orders; the status fields are the
// only part mutated here, and only through UpdateStatusField.
type Order struct {
	shared.AccountAggregateRoot
	OrderNumber       string
	WarehouseID       uuid.UUID
	Platform          string
	StoreName         string
	Status            string
	FulfillmentStatus string
	ItemCount         int
	RequestedShipping string
	CustomerName      string
	CustomerEmail     string
	ShippingAddress   valueobject.Address
	TotalAmount       decimal.Decimal
	Items             []OrderItem
}

// Status field names accepted by UpdateStatusField
const (
	StatusFieldStatus            = "status"
	StatusFieldFulfillmentStatus = "fulfillment_status"
)

// NewOrder creates a new order snapshot
func NewOrder(accountID, warehouseID uuid.UUID, orderNumber string) (*Order, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_WAREHOUSE", "Warehouse ID cannot be empty")
	}

	return &Order{
		AccountAggregateRoot: shared.NewAccountAggregateRoot(accountID),
		OrderNumber:          orderNumber,
		WarehouseID:          warehouseID,
		Status:               StatusPending,
		TotalAmount:          decimal.Zero,
		Items:                make([]OrderItem, 0),
	}, nil
}

// AddItem appends a line item and keeps ItemCount in sync with item quantities
func (o *Order) AddItem(sku, name string, quantity int, location string) error {
	if sku == "" {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	o.Items = append(o.Items, OrderItem{
		SKU:      sku,
		Name:     name,
		Quantity: quantity,
		Location: location,
	})
	o.ItemCount += quantity
	o.Touch()
	return nil
}

// SetItemCount overrides the unit count for snapshots imported without line
// item detail. Ignored once real items are present.
func (o *Order) SetItemCount(count int) {
	if len(o.Items) > 0 || count < 0 {
		return
	}
	o.ItemCount = count
	o.Touch()
}

// UpdateStatusField mutates one of the two status fields. The field name is
// whitelisted so callers cannot write arbitrary columns through the update
// operation exposed to the dashboard.
func (o *Order) UpdateStatusField(field, value string) error {
	value = NormalizeStatus(value)
	if value == "" {
		return shared.NewDomainError("INVALID_STATUS", "Status value cannot be empty")
	}

	switch field {
	case StatusFieldStatus:
		o.Status = value
	case StatusFieldFulfillmentStatus:
		o.FulfillmentStatus = value
	default:
		return shared.NewDomainError("INVALID_STATUS_FIELD", "Unknown status field: "+field)
	}
	o.Touch()
	return nil
}

// HasItems returns true when line item detail is available
func (o *Order) HasItems() bool {
	return len(o.Items) > 0
}

// UnitCount returns the number of physical units in the order. It prefers the
// line item quantities and falls back to the imported ItemCount for snapshots
// without item detail.
func (o *Order) UnitCount() int {
	if !o.HasItems() {
		return o.ItemCount
	}
	total := 0
	for _, item := range o.Items {
		if item.Quantity > 0 {
			total += item.Quantity
		}
	}
	return total
}

// NormalizeStatus uppercases and trims a raw status code for set lookups
func NormalizeStatus(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
