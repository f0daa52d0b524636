// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// terminal fulfillment statuses; orders past these no longer need picking
var terminalFulfillmentStatuses = []string{"PACKED", "SHIPPED", "DELIVERED"}

// GormBacklogMetricsProvider implements BacklogMetricsProvider using GORM.
// It queries the orders and order_items tables directly for aggregated metrics.
type GormBacklogMetricsProvider struct {
	db *gorm.DB
}

// NewGormBacklogMetricsProvider creates a new GormBacklogMetricsProvider.
func NewGormBacklogMetricsProvider(db *gorm.DB) *GormBacklogMetricsProvider {
	return &GormBacklogMetricsProvider{db: db}
}

// GetOpenOrderCountByWarehouse returns the count of non-terminal orders per warehouse for an account.
func (p *GormBacklogMetricsProvider) GetOpenOrderCountByWarehouse(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]int64, error) {
	type result struct {
		WarehouseID uuid.UUID `gorm:"column:warehouse_id"`
		OpenCount   int64     `gorm:"column:open_count"`
	}

	var results []result
	err := p.db.WithContext(ctx).
		Table("orders").
		Select("warehouse_id, COUNT(*) as open_count").
		Where("account_id = ?", accountID).
		Where("status <> ?", "CANCELLED").
		Where("fulfillment_status NOT IN ?", terminalFulfillmentStatuses).
		Group("warehouse_id").
		Find(&results).Error

	if err != nil {
		return nil, err
	}

	m := make(map[uuid.UUID]int64, len(results))
	for _, r := range results {
		m[r.WarehouseID] = r.OpenCount
	}

	return m, nil
}

// GetUnitsToPickByWarehouse returns total item units on non-terminal orders per warehouse for an account.
func (p *GormBacklogMetricsProvider) GetUnitsToPickByWarehouse(ctx context.Context, accountID uuid.UUID) (map[uuid.UUID]int64, error) {
	type result struct {
		WarehouseID uuid.UUID `gorm:"column:warehouse_id"`
		Units       int64     `gorm:"column:units"`
	}

	var results []result
	err := p.db.WithContext(ctx).
		Table("orders").
		Select("orders.warehouse_id, COALESCE(SUM(order_items.quantity), 0) as units").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Where("orders.account_id = ?", accountID).
		Where("orders.status <> ?", "CANCELLED").
		Where("orders.fulfillment_status NOT IN ?", terminalFulfillmentStatuses).
		Group("orders.warehouse_id").
		Find(&results).Error

	if err != nil {
		return nil, err
	}

	m := make(map[uuid.UUID]int64, len(results))
	for _, r := range results {
		m[r.WarehouseID] = r.Units
	}

	return m, nil
}

// GormAccountProvider implements AccountProvider using GORM.
// Accounts are inferred from warehouse ownership; an account with no
// warehouses has no backlog worth collecting.
type GormAccountProvider struct {
	db *gorm.DB
}

// NewGormAccountProvider creates a new GormAccountProvider.
func NewGormAccountProvider(db *gorm.DB) *GormAccountProvider {
	return &GormAccountProvider{db: db}
}

// GetActiveAccountIDs returns all account IDs that own at least one warehouse.
func (p *GormAccountProvider) GetActiveAccountIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := p.db.WithContext(ctx).
		Table("warehouses").
		Distinct("account_id").
		Find(&ids).Error

	return ids, err
}
