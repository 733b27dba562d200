package cart

import (
	"context"
	"sync"

	"github.com/foodieexpress/foodieexpress-backend/internal/catalog"
	"github.com/foodieexpress/foodieexpress-backend/pkg/config"
	pkgerrors "github.com/foodieexpress/foodieexpress-backend/pkg/errors"
	"github.com/foodieexpress/foodieexpress-backend/pkg/localstore"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
	"github.com/foodieexpress/foodieexpress-backend/pkg/metrics"
	"github.com/shopspring/decimal"
)

// Line is one cart entry: the full menu item plus its quantity. The item
// snapshot is embedded so the line survives catalog changes unchanged.
type Line struct {
	catalog.MenuItem
	Quantity int `json:"quantity"`
}

// Totals is the derived pricing of a cart. The delivery fee applies whenever
// the cart holds at least one line, regardless of quantity.
type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Total       decimal.Decimal `json:"total"`
	ItemsCount  int             `json:"itemsCount"`
}

// Store holds the cart state. All mutations persist the whole line slice
// under the cart storage key before returning.
type Store struct {
	mu          sync.Mutex
	lines       []Line
	persist     *localstore.Store
	metrics     *metrics.StoreMetrics
	log         *logger.Logger
	taxRate     decimal.Decimal
	deliveryFee decimal.Decimal
}

// New builds the cart store and rehydrates any previously persisted lines.
func New(ctx context.Context, persist *localstore.Store, pricing config.PricingConfig, m *metrics.StoreMetrics, log *logger.Logger) (*Store, error) {
	taxRate, err := decimal.NewFromString(pricing.TaxRate)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "parse tax rate")
	}

	s := &Store{
		persist:     persist,
		metrics:     m,
		log:         log,
		taxRate:     taxRate,
		deliveryFee: decimal.NewFromInt(pricing.DeliveryFee),
	}

	var lines []Line
	found, err := persist.Read(ctx, localstore.KeyCartItems, &lines)
	if err != nil {
		return nil, err
	}
	if found {
		s.lines = lines
	}
	return s, nil
}

// AddItem adds one unit of the menu item, merging with an existing line for
// the same item id.
func (s *Store) AddItem(ctx context.Context, item catalog.MenuItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.lines {
		if s.lines[i].ID == item.ID {
			s.lines[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, Line{MenuItem: item, Quantity: 1})
	}

	s.metrics.IncCartMutation("add")
	return s.flush(ctx)
}

// RemoveItem drops the line for the given item id. Removing an absent item
// is a no-op.
func (s *Store) RemoveItem(ctx context.Context, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.removeLocked(itemID) {
		return nil
	}
	s.metrics.IncCartMutation("remove")
	return s.flush(ctx)
}

// UpdateQuantity sets the quantity of the line for itemID. A quantity of
// zero or less removes the line. Updating an absent item is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, itemID string, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		if !s.removeLocked(itemID) {
			return nil
		}
		s.metrics.IncCartMutation("remove")
		return s.flush(ctx)
	}

	for i := range s.lines {
		if s.lines[i].ID == itemID {
			s.lines[i].Quantity = quantity
			s.metrics.IncCartMutation("update_quantity")
			return s.flush(ctx)
		}
	}
	return nil
}

// Clear empties the cart and persists the empty state.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.metrics.IncCartMutation("clear")
	return s.flush(ctx)
}

// Lines returns a copy of the current cart lines.
func (s *Store) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Line, len(s.lines))
	copy(out, s.lines)
	return out
}

// Totals computes the derived pricing for the current cart.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

// Snapshot returns the lines and totals from a single consistent view of
// the cart.
func (s *Store) Snapshot() ([]Line, Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]Line, len(s.lines))
	copy(lines, s.lines)
	return lines, s.totalsLocked()
}

func (s *Store) totalsLocked() Totals {
	subtotal := decimal.Zero
	itemsCount := 0
	for _, line := range s.lines {
		lineTotal := decimal.NewFromInt(line.Price).Mul(decimal.NewFromInt(int64(line.Quantity)))
		subtotal = subtotal.Add(lineTotal)
		itemsCount += line.Quantity
	}

	tax := subtotal.Mul(s.taxRate).Round(2)
	fee := decimal.Zero
	if len(s.lines) > 0 {
		fee = s.deliveryFee
	}

	return Totals{
		Subtotal:    subtotal,
		Tax:         tax,
		DeliveryFee: fee,
		Total:       subtotal.Add(tax).Add(fee),
		ItemsCount:  itemsCount,
	}
}

func (s *Store) removeLocked(itemID string) bool {
	for i := range s.lines {
		if s.lines[i].ID == itemID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) flush(ctx context.Context) error {
	lines := s.lines
	if lines == nil {
		lines = []Line{}
	}
	if err := s.persist.Write(ctx, localstore.KeyCartItems, lines); err != nil {
		s.log.Error(ctx, "persist cart", err)
		return err
	}
	return nil
}
