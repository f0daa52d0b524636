package cache

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryKVStore_RoundTrip(t *testing.T) {
	store := NewInMemoryKVStore()
	ctx := context.Background()

	_, ok, err := store.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set(ctx, "key", `["a","b"]`))
	value, ok, err := store.Get(ctx, "key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["a","b"]`, value)

	require.NoError(t, store.Delete(ctx, "key"))
	_, ok, err = store.Get(ctx, "key")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestInMemoryKVStore_DeleteAbsentKey(t *testing.T) {
	store := NewInMemoryKVStore()
	assert.NoError(t, store.Delete(context.Background(), "never-set"))
}

func TestInMemoryKVStore_ConcurrentAccess(t *testing.T) {
	store := NewInMemoryKVStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, store.Set(ctx, "shared", "value"))
			_, _, err := store.Get(ctx, "shared")
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, store.Size())
}
