package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/shared"
	"github.com/shipdesk/backend/internal/domain/warehouse"
	"github.com/shipdesk/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormWarehouseRepository implements warehouse.Repository using GORM
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GormWarehouseRepository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// FindByID finds a warehouse by ID within an account
func (r *GormWarehouseRepository) FindByID(ctx context.Context, accountID, id uuid.UUID) (*warehouse.Warehouse, error) {
	var model models.Warehouse
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND id = ?", accountID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a warehouse by its code within an account
func (r *GormWarehouseRepository) FindByCode(ctx context.Context, accountID uuid.UUID, code string) (*warehouse.Warehouse, error) {
	var model models.Warehouse
	if err := r.db.WithContext(ctx).
		Where("account_id = ? AND code = ?", accountID, strings.ToUpper(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all warehouses for an account, ordered by code
func (r *GormWarehouseRepository) FindAll(ctx context.Context, accountID uuid.UUID) ([]*warehouse.Warehouse, error) {
	var records []models.Warehouse
	if err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("code ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}

	warehouses := make([]*warehouse.Warehouse, len(records))
	for i := range records {
		warehouses[i] = records[i].ToDomain()
	}
	return warehouses, nil
}

// Save creates or updates a warehouse
func (r *GormWarehouseRepository) Save(ctx context.Context, wh *warehouse.Warehouse) error {
	var model models.Warehouse
	model.FromDomain(wh)
	return r.db.WithContext(ctx).Save(&model).Error
}

// Delete deletes a warehouse within an account
func (r *GormWarehouseRepository) Delete(ctx context.Context, accountID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Delete(&models.Warehouse{}, "account_id = ? AND id = ?", accountID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormWarehouseRepository implements warehouse.Repository
var _ warehouse.Repository = (*GormWarehouseRepository)(nil)
