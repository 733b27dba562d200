package localstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Entry{}))

	return New(db)
}

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStoreRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, KeyCartItems, payload{Name: "wings", Count: 2}))

	var got payload
	found, err := store.Read(ctx, KeyCartItems, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, payload{Name: "wings", Count: 2}, got)
}

func TestStoreWriteReplacesWholeValue(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, KeyUserOrders, []string{"a", "b"}))
	require.NoError(t, store.Write(ctx, KeyUserOrders, []string{"c"}))

	var got []string
	found, err := store.Read(ctx, KeyUserOrders, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"c"}, got)
}

func TestStoreReadMissingKey(t *testing.T) {
	store := setupStore(t)

	var got payload
	found, err := store.Read(context.Background(), KeyUser, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStoreDeleteIsIdempotent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, KeyUser, payload{Name: "guest"}))
	require.NoError(t, store.Delete(ctx, KeyUser))
	require.NoError(t, store.Delete(ctx, KeyUser))

	var got payload
	found, err := store.Read(ctx, KeyUser, &got)
	require.NoError(t, err)
	assert.False(t, found)
}
