package persistence

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shipdesk/backend/internal/domain/picking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormKVStore_RoundTrip(t *testing.T) {
	store := NewGormKVStore(testDB(t))
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "key", `["a"]`))
	value, ok, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["a"]`, value)

	// Upsert overwrites in place.
	require.NoError(t, store.Set(ctx, "key", `["a","b"]`))
	value, _, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, value)

	require.NoError(t, store.Delete(ctx, "key"))
	_, ok, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, store.Delete(ctx, "key"), "deleting an absent key is fine")
}

func TestGormKVStore_BacksStateStore(t *testing.T) {
	store := picking.NewStateStore(NewGormKVStore(testDB(t)))
	warehouseID := uuid.New()
	ctx := context.Background()

	state := picking.NewState(warehouseID)
	state.TogglePicked("TSH-001")
	state.TogglePacked("order-1")
	require.NoError(t, store.Save(ctx, state))

	loaded, err := store.Load(ctx, warehouseID)
	require.NoError(t, err)
	assert.True(t, loaded.IsPicked("TSH-001"))
	assert.True(t, loaded.IsPacked("order-1"))

	require.NoError(t, store.Clear(ctx, warehouseID))
	cleared, err := store.Load(ctx, warehouseID)
	require.NoError(t, err)
	assert.True(t, cleared.IsEmpty())
}
