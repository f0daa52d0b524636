package models

import (
	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Order is the persistence model for order snapshots
type Order struct {
	AccountAggregateModel
	OrderNumber       string              `gorm:"size:50;not null;index"`
	WarehouseID       uuid.UUID           `gorm:"type:uuid;not null;index"`
	Platform          string              `gorm:"size:50"`
	StoreName         string              `gorm:"size:200"`
	Status            string              `gorm:"size:50;not null;index"`
	FulfillmentStatus string              `gorm:"size:50;index"`
	ItemCount         int                 `gorm:"not null;default:0"`
	RequestedShipping string              `gorm:"size:100"`
	CustomerName      string              `gorm:"size:200"`
	CustomerEmail     string              `gorm:"size:320"`
	ShippingAddress   valueobject.Address `gorm:"type:jsonb"`
	TotalAmount       decimal.Decimal     `gorm:"type:decimal(20,4);not null;default:0"`
	Items             []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderItem is the persistence model for order line items
type OrderItem struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;not null;index"`
	SKU      string    `gorm:"size:100;not null;index"`
	Name     string    `gorm:"size:200"`
	Quantity int       `gorm:"not null"`
	Location string    `gorm:"size:50"`
	Position int       `gorm:"not null;default:0"`
}

// TableName specifies the table name
func (OrderItem) TableName() string {
	return "order_items"
}

// FromDomain populates the model from a domain order
func (m *Order) FromDomain(order *fulfillment.Order) {
	m.FromDomainAccountAggregateRoot(order.AccountAggregateRoot)
	m.OrderNumber = order.OrderNumber
	m.WarehouseID = order.WarehouseID
	m.Platform = order.Platform
	m.StoreName = order.StoreName
	m.Status = order.Status
	m.FulfillmentStatus = order.FulfillmentStatus
	m.ItemCount = order.ItemCount
	m.RequestedShipping = order.RequestedShipping
	m.CustomerName = order.CustomerName
	m.CustomerEmail = order.CustomerEmail
	m.ShippingAddress = order.ShippingAddress
	m.TotalAmount = order.TotalAmount

	m.Items = make([]OrderItem, len(order.Items))
	for i, item := range order.Items {
		m.Items[i] = OrderItem{
			OrderID:  order.ID,
			SKU:      item.SKU,
			Name:     item.Name,
			Quantity: item.Quantity,
			Location: item.Location,
			Position: i,
		}
	}
}

// ToDomain converts the model to a domain order
func (m *Order) ToDomain() *fulfillment.Order {
	order := &fulfillment.Order{
		OrderNumber:       m.OrderNumber,
		WarehouseID:       m.WarehouseID,
		Platform:          m.Platform,
		StoreName:         m.StoreName,
		Status:            m.Status,
		FulfillmentStatus: m.FulfillmentStatus,
		ItemCount:         m.ItemCount,
		RequestedShipping: m.RequestedShipping,
		CustomerName:      m.CustomerName,
		CustomerEmail:     m.CustomerEmail,
		ShippingAddress:   m.ShippingAddress,
		TotalAmount:       m.TotalAmount,
		Items:             make([]fulfillment.OrderItem, len(m.Items)),
	}
	m.PopulateAccountAggregateRoot(&order.AccountAggregateRoot)

	for i, item := range m.Items {
		order.Items[i] = fulfillment.OrderItem{
			SKU:      item.SKU,
			Name:     item.Name,
			Quantity: item.Quantity,
			Location: item.Location,
		}
	}
	return order
}
