package session_test

import (
	"context"
	"io"
	"testing"

	"github.com/foodieexpress/foodieexpress-backend/internal/session"
	"github.com/foodieexpress/foodieexpress-backend/pkg/config"
	"github.com/foodieexpress/foodieexpress-backend/pkg/localstore"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
	"github.com/foodieexpress/foodieexpress-backend/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newPersist(t *testing.T) *localstore.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&localstore.Entry{}))
	return localstore.New(db)
}

func newStore(t *testing.T, persist *localstore.Store) *session.Store {
	t.Helper()

	log := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	store, err := session.New(context.Background(), persist, config.PasswordConfig{
		ArgonMemoryKB:    8192,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}, config.SimulationConfig{}, metrics.NewStoreMetrics(nil), log)
	require.NoError(t, err)
	return store
}

func TestSignupActivatesSession(t *testing.T) {
	persist := newPersist(t)
	store := newStore(t, persist)
	ctx := context.Background()

	identity, err := store.Signup(ctx, "Jordan@Example.com", "hunter22", "Jordan Lee")
	require.NoError(t, err)
	assert.Equal(t, "jordan@example.com", identity.Email)
	assert.Equal(t, "Jordan Lee", identity.FullName)
	assert.Contains(t, identity.ID, "user-")
	assert.False(t, identity.CreatedAt.IsZero())
	assert.False(t, identity.IsGuest)

	current, state, active := store.Current()
	assert.True(t, active)
	assert.Equal(t, session.StateAuthenticated, state)
	assert.Equal(t, identity, current)

	var persisted session.Identity
	found, err := persist.Read(ctx, localstore.KeyUser, &persisted)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, identity, persisted)
}

func TestSignupDuplicateEmail(t *testing.T) {
	store := newStore(t, newPersist(t))
	ctx := context.Background()

	_, err := store.Signup(ctx, "dupe@example.com", "first-pass", "First")
	require.NoError(t, err)

	_, err = store.Signup(ctx, "DUPE@example.com", "other-pass", "Second")
	require.Error(t, err)
}

func TestLogin(t *testing.T) {
	store := newStore(t, newPersist(t))
	ctx := context.Background()

	_, err := store.Signup(ctx, "casey@example.com", "s3cretsauce", "Casey")
	require.NoError(t, err)
	require.NoError(t, store.Logout(ctx))

	identity, err := store.Login(ctx, "casey@example.com", "s3cretsauce")
	require.NoError(t, err)
	assert.Equal(t, "Casey", identity.FullName)

	_, state, active := store.Current()
	assert.True(t, active)
	assert.Equal(t, session.StateAuthenticated, state)
}

func TestLoginFailureIsUniform(t *testing.T) {
	store := newStore(t, newPersist(t))
	ctx := context.Background()

	_, err := store.Signup(ctx, "casey@example.com", "s3cretsauce", "Casey")
	require.NoError(t, err)
	require.NoError(t, store.Logout(ctx))

	_, badPassword := store.Login(ctx, "casey@example.com", "wrong")
	_, unknownEmail := store.Login(ctx, "nobody@example.com", "s3cretsauce")
	require.Error(t, badPassword)
	require.Error(t, unknownEmail)
	assert.Equal(t, badPassword.Error(), unknownEmail.Error())

	_, state, active := store.Current()
	assert.False(t, active)
	assert.Equal(t, session.StateUnauthenticated, state)
}

func TestLoginAsGuest(t *testing.T) {
	store := newStore(t, newPersist(t))

	identity, err := store.LoginAsGuest(context.Background())
	require.NoError(t, err)
	assert.Contains(t, identity.ID, "guest-")
	assert.Equal(t, "Guest User", identity.FullName)
	assert.False(t, identity.CreatedAt.IsZero())
	assert.True(t, identity.IsGuest)
}

func TestLogoutDeletesPersistedIdentity(t *testing.T) {
	persist := newPersist(t)
	store := newStore(t, persist)
	ctx := context.Background()

	_, err := store.LoginAsGuest(ctx)
	require.NoError(t, err)
	require.NoError(t, store.Logout(ctx))

	var persisted session.Identity
	found, err := persist.Read(ctx, localstore.KeyUser, &persisted)
	require.NoError(t, err)
	assert.False(t, found)

	_, _, active := store.Current()
	assert.False(t, active)
}

func TestUpdateProfile(t *testing.T) {
	store := newStore(t, newPersist(t))
	ctx := context.Background()

	phone := "5551234567"
	_, ok, err := store.UpdateProfile(ctx, session.ProfileUpdate{Phone: &phone})
	require.NoError(t, err)
	assert.False(t, ok, "update without a session is dropped")

	_, err = store.Signup(ctx, "casey@example.com", "s3cretsauce", "Casey")
	require.NoError(t, err)

	name := "Casey Done"
	updated, ok, err := store.UpdateProfile(ctx, session.ProfileUpdate{FullName: &name, Phone: &phone})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Casey Done", updated.FullName)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "casey@example.com", updated.Email, "untouched fields survive the merge")
}

func TestUpdateProfileAddressFields(t *testing.T) {
	store := newStore(t, newPersist(t))
	ctx := context.Background()

	_, err := store.Signup(ctx, "casey@example.com", "s3cretsauce", "Casey")
	require.NoError(t, err)

	address := "221B Baker Street"
	city := "Pune"
	postalCode := "411001"
	updated, ok, err := store.UpdateProfile(ctx, session.ProfileUpdate{
		Address:    &address,
		City:       &city,
		PostalCode: &postalCode,
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, address, updated.Address)
	assert.Equal(t, city, updated.City)
	assert.Equal(t, postalCode, updated.PostalCode)

	newCity := "Mumbai"
	updated, ok, err = store.UpdateProfile(ctx, session.ProfileUpdate{City: &newCity})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, newCity, updated.City)
	assert.Equal(t, postalCode, updated.PostalCode, "untouched fields survive the merge")
}

func TestRehydratesActiveIdentity(t *testing.T) {
	persist := newPersist(t)
	store := newStore(t, persist)
	ctx := context.Background()

	identity, err := store.Signup(ctx, "casey@example.com", "s3cretsauce", "Casey")
	require.NoError(t, err)

	reborn := newStore(t, persist)
	current, state, active := reborn.Current()
	assert.True(t, active)
	assert.Equal(t, session.StateAuthenticated, state)
	assert.Equal(t, identity, current)
}
