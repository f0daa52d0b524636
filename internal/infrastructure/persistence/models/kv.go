package models

import "time"

// KVEntry is the persistence model for the key-value store backing picking
// progress. Values are JSON-encoded string arrays.
type KVEntry struct {
	Key       string    `gorm:"size:200;primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name
func (KVEntry) TableName() string {
	return "picking_kv"
}
