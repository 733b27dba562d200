package orders_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/foodieexpress/foodieexpress-backend/internal/cart"
	"github.com/foodieexpress/foodieexpress-backend/internal/catalog"
	"github.com/foodieexpress/foodieexpress-backend/internal/orders"
	"github.com/foodieexpress/foodieexpress-backend/pkg/localstore"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newService(t *testing.T) (*orders.Service, *localstore.Store) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&localstore.Entry{}))

	persist := localstore.New(db)
	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return orders.NewService(persist, log), persist
}

func testRecord(id, userID string) orders.Record {
	return orders.Record{
		ID:     id,
		UserID: userID,
		Items: []cart.Line{
			{MenuItem: catalog.MenuItem{ID: "1", Name: "Crispy Spring Rolls", Price: 299}, Quantity: 2},
		},
		Total:     decimal.RequireFromString("695.84"),
		Status:    orders.StatusConfirmed,
		CreatedAt: time.Now().UTC(),
	}
}

func TestLastOrderEmpty(t *testing.T) {
	svc, _ := newService(t)

	_, found, err := svc.LastOrder(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestAppendSetsLastOrder(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, testRecord("ORD-1", "user-1")))
	require.NoError(t, svc.Append(ctx, testRecord("ORD-2", "user-1")))

	last, found, err := svc.LastOrder(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "ORD-2", last.ID)
	assert.Equal(t, orders.StatusConfirmed, last.Status)
}

func TestListByUserNewestFirst(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Append(ctx, testRecord("ORD-1", "user-1")))
	require.NoError(t, svc.Append(ctx, testRecord("ORD-2", "guest-9")))
	require.NoError(t, svc.Append(ctx, testRecord("ORD-3", "user-1")))

	list, err := svc.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "ORD-3", list[0].ID)
	assert.Equal(t, "ORD-1", list[1].ID)

	none, err := svc.ListByUser(ctx, "user-404")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAppendedRecordRoundTrips(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	rec := testRecord("ORD-7", "user-1")
	rec.DeliveryDetails = orders.DeliveryDetails{
		FullName:   "Jordan Lee",
		Phone:      "5551234567",
		Email:      "jordan@example.com",
		Address:    "12 Market Street West",
		City:       "Springfield",
		PostalCode: "400001",
	}
	require.NoError(t, svc.Append(ctx, rec))

	last, found, err := svc.LastOrder(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rec.DeliveryDetails, last.DeliveryDetails)
	assert.True(t, rec.Total.Equal(last.Total))
	require.Len(t, last.Items, 1)
	assert.Equal(t, 2, last.Items[0].Quantity)
}
