package checkout_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/foodieexpress/foodieexpress-backend/internal/cart"
	"github.com/foodieexpress/foodieexpress-backend/internal/catalog"
	"github.com/foodieexpress/foodieexpress-backend/internal/checkout"
	"github.com/foodieexpress/foodieexpress-backend/internal/orders"
	"github.com/foodieexpress/foodieexpress-backend/internal/session"
	"github.com/foodieexpress/foodieexpress-backend/pkg/config"
	pkgerrors "github.com/foodieexpress/foodieexpress-backend/pkg/errors"
	"github.com/foodieexpress/foodieexpress-backend/pkg/localstore"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
	"github.com/foodieexpress/foodieexpress-backend/pkg/metrics"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type fixture struct {
	carts    *cart.Store
	sessions *session.Store
	history  *orders.Service
	service  *checkout.Service
}

func newFixture(t *testing.T, checkoutDelay time.Duration) *fixture {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&localstore.Entry{}))

	ctx := context.Background()
	persist := localstore.New(db)
	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	m := metrics.NewStoreMetrics(nil)

	carts, err := cart.New(ctx, persist, config.PricingConfig{TaxRate: "0.08", DeliveryFee: 50}, m, log)
	require.NoError(t, err)

	sessions, err := session.New(ctx, persist, config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}, config.SimulationConfig{}, m, log)
	require.NoError(t, err)

	history := orders.NewService(persist, log)
	service := checkout.NewService(carts, sessions, history, config.SimulationConfig{CheckoutDelay: checkoutDelay}, m, log)
	return &fixture{carts: carts, sessions: sessions, history: history, service: service}
}

func validDetails() orders.DeliveryDetails {
	return orders.DeliveryDetails{
		FullName:   "Jordan Lee",
		Phone:      "5551234567",
		Email:      "jordan@example.com",
		Address:    "12 Market Street West",
		City:       "Springfield",
		PostalCode: "400001",
	}
}

func fillCart(t *testing.T, f *fixture) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.carts.AddItem(ctx, catalog.MenuItem{ID: "1", Name: "Crispy Spring Rolls", Price: 299}))
	require.NoError(t, f.carts.AddItem(ctx, catalog.MenuItem{ID: "1", Name: "Crispy Spring Rolls", Price: 299}))
	require.NoError(t, f.carts.AddItem(ctx, catalog.MenuItem{ID: "3", Name: "Mozzarella Sticks", Price: 349}))
}

func TestSubmitSuccess(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.sessions.LoginAsGuest(ctx)
	require.NoError(t, err)
	fillCart(t, f)

	rec, err := f.service.Submit(ctx, validDetails())
	require.NoError(t, err)

	assert.Contains(t, rec.ID, "ORD-")
	assert.Contains(t, rec.UserID, "guest-")
	assert.Equal(t, orders.StatusConfirmed, rec.Status)
	require.Len(t, rec.Items, 2)
	assert.True(t, rec.Total.Equal(decimal.RequireFromString("1072.76")), "total %s", rec.Total)

	assert.Empty(t, f.carts.Lines(), "cart cleared after checkout")

	last, found, err := f.history.LastOrder(ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, rec.ID, last.ID)

	list, err := f.history.ListByUser(ctx, rec.UserID)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSubmitInvalidDetails(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.sessions.LoginAsGuest(ctx)
	require.NoError(t, err)
	fillCart(t, f)

	details := validDetails()
	details.Address = "too short"

	_, err = f.service.Submit(ctx, details)
	require.Error(t, err)

	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	fields, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, fields, "Address")

	assert.Len(t, f.carts.Lines(), 2, "failed checkout leaves the cart alone")
	_, found, err := f.history.LastOrder(ctx)
	require.NoError(t, err)
	assert.False(t, found, "no order on validation failure")
}

func TestSubmitRequiresSession(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()
	fillCart(t, f)

	_, err := f.service.Submit(ctx, validDetails())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeUnauthorized, typed.Code())
}

func TestSubmitRequiresNonEmptyCart(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	_, err := f.sessions.LoginAsGuest(ctx)
	require.NoError(t, err)

	_, err = f.service.Submit(ctx, validDetails())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())
}

func TestSubmitRejectsConcurrentSubmission(t *testing.T) {
	f := newFixture(t, 200*time.Millisecond)
	ctx := context.Background()

	_, err := f.sessions.LoginAsGuest(ctx)
	require.NoError(t, err)
	fillCart(t, f)

	first := make(chan error, 1)
	go func() {
		_, err := f.service.Submit(ctx, validDetails())
		first <- err
	}()

	time.Sleep(50 * time.Millisecond)
	_, err = f.service.Submit(ctx, validDetails())
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeConflict, typed.Code())

	require.NoError(t, <-first, "first submission still succeeds")
}

func TestSubmitCapturesItemsAddedDuringProcessing(t *testing.T) {
	f := newFixture(t, 200*time.Millisecond)
	ctx := context.Background()

	_, err := f.sessions.LoginAsGuest(ctx)
	require.NoError(t, err)
	fillCart(t, f)

	type result struct {
		rec orders.Record
		err error
	}
	done := make(chan result, 1)
	go func() {
		rec, err := f.service.Submit(ctx, validDetails())
		done <- result{rec: rec, err: err}
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, f.carts.AddItem(ctx, catalog.MenuItem{ID: "13", Name: "Garlic Naan", Price: 149}))
	res := <-done
	require.NoError(t, res.err)
	rec := res.rec

	require.Len(t, rec.Items, 3, "item added mid-checkout is part of the order")
	assert.Empty(t, f.carts.Lines(), "nothing left behind after the clear")
}
