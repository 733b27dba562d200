package orders

import (
	"context"
	"time"

	"github.com/foodieexpress/foodieexpress-backend/internal/cart"
	"github.com/foodieexpress/foodieexpress-backend/pkg/localstore"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
	"github.com/shopspring/decimal"
)

// Status is the recorded order state. Orders are cut as confirmed and never
// transition afterwards.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusPreparing Status = "preparing"
	StatusDelivered Status = "delivered"
)

// DeliveryDetails is the validated delivery form captured on an order.
type DeliveryDetails struct {
	FullName            string `json:"fullName" validate:"required,min=2"`
	Phone               string `json:"phone" validate:"required,min=10"`
	Email               string `json:"email" validate:"required,email"`
	Address             string `json:"address" validate:"required,min=10"`
	City                string `json:"city" validate:"required,min=2"`
	PostalCode          string `json:"postalCode" validate:"required,min=6"`
	SpecialInstructions string `json:"specialInstructions,omitempty" validate:"omitempty"`
}

// Record is an immutable order snapshot. Items are deep copies of the cart
// lines at checkout time; later cart mutations never touch them.
type Record struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	Items           []cart.Line     `json:"items"`
	Total           decimal.Decimal `json:"total"`
	Status          Status          `json:"status"`
	DeliveryDetails DeliveryDetails `json:"deliveryDetails"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// Service reads and appends the order history. History is stored newest
// first; the latest order is mirrored to its own key.
type Service struct {
	persist *localstore.Store
	log     *logger.Logger
}

// NewService builds the order history service.
func NewService(persist *localstore.Store, log *logger.Logger) *Service {
	return &Service{persist: persist, log: log}
}

// Append records the order: it becomes the last order and is prepended to
// the per-user history.
func (s *Service) Append(ctx context.Context, rec Record) error {
	if err := s.persist.Write(ctx, localstore.KeyLastOrder, rec); err != nil {
		s.log.Error(ctx, "persist last order", err)
		return err
	}

	var history []Record
	if _, err := s.persist.Read(ctx, localstore.KeyUserOrders, &history); err != nil {
		return err
	}
	history = append([]Record{rec}, history...)
	if err := s.persist.Write(ctx, localstore.KeyUserOrders, history); err != nil {
		s.log.Error(ctx, "persist order history", err)
		return err
	}
	return nil
}

// LastOrder returns the most recently placed order, if any.
func (s *Service) LastOrder(ctx context.Context) (Record, bool, error) {
	var rec Record
	found, err := s.persist.Read(ctx, localstore.KeyLastOrder, &rec)
	if err != nil {
		return Record{}, false, err
	}
	return rec, found, nil
}

// ListByUser returns the given user's orders, newest first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	var history []Record
	if _, err := s.persist.Read(ctx, localstore.KeyUserOrders, &history); err != nil {
		return nil, err
	}

	var out []Record
	for _, rec := range history {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}
