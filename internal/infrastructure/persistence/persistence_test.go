package persistence

import (
	"testing"

	"github.com/shipdesk/backend/internal/infrastructure/persistence/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testDB opens a throwaway SQLite database with the full schema migrated
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := NewSQLiteDatabase(t.TempDir() + "/test.db")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.DB.AutoMigrate(
		&models.Order{},
		&models.OrderItem{},
		&models.Warehouse{},
		&models.KVEntry{},
	))
	return db.DB
}
