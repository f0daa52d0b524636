package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/shipdesk/backend/internal/domain/picking"
	"github.com/shipdesk/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormKVStore implements picking.KVStore on the relational database. Used
// when no Redis is deployed; progress then shares the primary database.
type GormKVStore struct {
	db *gorm.DB
}

// NewGormKVStore creates a new GormKVStore
func NewGormKVStore(db *gorm.DB) *GormKVStore {
	return &GormKVStore{db: db}
}

// Get reads a value; the second return reports whether the key existed
func (s *GormKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	if err := s.db.WithContext(ctx).First(&entry, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set writes a value, inserting or overwriting atomically
func (s *GormKVStore) Set(ctx context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value, UpdatedAt: time.Now()}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

// Delete removes a key; deleting an absent key is not an error
func (s *GormKVStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Delete(&models.KVEntry{}, "key = ?", key).Error
}

// Ensure GormKVStore implements picking.KVStore
var _ picking.KVStore = (*GormKVStore)(nil)
