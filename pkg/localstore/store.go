package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	pkgerrors "github.com/foodieexpress/foodieexpress-backend/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Well-known storage keys. Every store owns exactly one key and writes the
// whole value on each mutation; there are no incremental diffs and no schema
// versioning.
const (
	KeyCartItems       = "cart-items"
	KeyUser            = "user"
	KeyRegisteredUsers = "registered-users"
	KeyLastOrder       = "lastOrder"
	KeyUserOrders      = "user-orders"
)

// Entry is one persisted key/value pair. Values are JSON documents.
type Entry struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     []byte    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName keeps the table name stable across drivers.
func (Entry) TableName() string {
	return "local_entries"
}

// Store is the persistence adapter: whole-value JSON reads and writes keyed
// by the constants above.
type Store struct {
	db *gorm.DB
}

// New builds a store bound to the provided DB handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Read unmarshals the value stored under key into dest. It reports false
// with no error when the key is absent, mirroring an empty storage slot.
func (s *Store) Read(ctx context.Context, key string, dest any) (bool, error) {
	var entry Entry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read storage key")
	}
	if err := json.Unmarshal(entry.Value, dest); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decode storage value")
	}
	return true, nil
}

// Write replaces the full value stored under key.
func (s *Store) Write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode storage value")
	}
	entry := Entry{Key: key, Value: raw, UpdatedAt: time.Now().UTC()}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "write storage key")
	}
	return nil
}

// Delete removes the key entirely. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Where("key = ?", key).Delete(&Entry{}).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete storage key")
	}
	return nil
}
