package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/fulfillment"
	"github.com/shipdesk/backend/internal/domain/shared"
	"github.com/shipdesk/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// statusColumns maps the whitelisted status field names to their columns.
// Keeping the map here pins the only columns the dashboard may write.
var statusColumns = map[string]string{
	fulfillment.StatusFieldStatus:            "status",
	fulfillment.StatusFieldFulfillmentStatus: "fulfillment_status",
}

// GormOrderRepository implements fulfillment.OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GormOrderRepository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// FindByID finds an order by ID within an account, items included
func (r *GormOrderRepository) FindByID(ctx context.Context, accountID, id uuid.UUID) (*fulfillment.Order, error) {
	var model models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items", orderItems).
		Where("account_id = ? AND id = ?", accountID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByWarehouse returns a warehouse's orders in a stable order (oldest
// first, ties broken by order number) so downstream capping is deterministic.
func (r *GormOrderRepository) FindByWarehouse(ctx context.Context, accountID, warehouseID uuid.UUID) ([]*fulfillment.Order, error) {
	var records []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items", orderItems).
		Where("account_id = ? AND warehouse_id = ?", accountID, warehouseID).
		Order("created_at ASC, order_number ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	orders := make([]*fulfillment.Order, len(records))
	for i := range records {
		orders[i] = records[i].ToDomain()
	}
	return orders, nil
}

// UpdateStatus writes one of the whitelisted status columns on an order
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, accountID, id uuid.UUID, field, value string) error {
	column, ok := statusColumns[field]
	if !ok {
		return shared.NewDomainError("INVALID_STATUS_FIELD", "Unknown status field: "+field)
	}

	result := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("account_id = ? AND id = ?", accountID, id).
		Update(column, fulfillment.NormalizeStatus(value))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Save creates or updates an order snapshot with its items
func (r *GormOrderRepository) Save(ctx context.Context, order *fulfillment.Order) error {
	var model models.Order
	model.FromDomain(order)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Replace items wholesale; snapshots are re-imported, not edited.
		if err := tx.Where("order_id = ?", model.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Save(&model).Error
	})
}

// orderItems keeps preloaded items in their original line order
func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("order_items.position ASC")
}

// Ensure GormOrderRepository implements fulfillment.OrderRepository
var _ fulfillment.OrderRepository = (*GormOrderRepository)(nil)
