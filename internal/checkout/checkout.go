package checkout

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/foodieexpress/foodieexpress-backend/internal/cart"
	"github.com/foodieexpress/foodieexpress-backend/internal/orders"
	"github.com/foodieexpress/foodieexpress-backend/internal/session"
	"github.com/foodieexpress/foodieexpress-backend/pkg/config"
	pkgerrors "github.com/foodieexpress/foodieexpress-backend/pkg/errors"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
	"github.com/foodieexpress/foodieexpress-backend/pkg/metrics"
	"github.com/go-playground/validator/v10"
)

// Service turns the current cart into an immutable order record. A single
// submission may be in flight at a time; concurrent submissions are
// rejected rather than queued.
type Service struct {
	inFlight atomic.Bool

	carts    *cart.Store
	sessions *session.Store
	history  *orders.Service
	validate *validator.Validate
	metrics  *metrics.StoreMetrics
	log      *logger.Logger
	delay    time.Duration
	now      func() time.Time
}

// NewService builds the checkout service.
func NewService(carts *cart.Store, sessions *session.Store, history *orders.Service, sim config.SimulationConfig, m *metrics.StoreMetrics, log *logger.Logger) *Service {
	return &Service{
		carts:    carts,
		sessions: sessions,
		history:  history,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		metrics:  m,
		log:      log,
		delay:    sim.CheckoutDelay,
		now:      time.Now,
	}
}

// Submit validates the delivery details, snapshots the cart into an order,
// appends it to the history, and clears the cart. Validation or
// precondition failures leave the cart untouched and create no order.
func (s *Service) Submit(ctx context.Context, details orders.DeliveryDetails) (orders.Record, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		s.metrics.IncCheckoutRejected("in_flight")
		return orders.Record{}, pkgerrors.New(pkgerrors.CodeConflict, "checkout already in progress")
	}
	defer s.inFlight.Store(false)

	if err := s.validate.Struct(details); err != nil {
		s.metrics.IncCheckoutRejected("validation")
		return orders.Record{}, pkgerrors.New(pkgerrors.CodeValidation, "delivery details invalid").
			WithDetails(fieldErrors(err))
	}

	identity, _, active := s.sessions.Current()
	if !active {
		s.metrics.IncCheckoutRejected("no_session")
		return orders.Record{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "active session required")
	}

	if err := s.sleep(ctx); err != nil {
		return orders.Record{}, err
	}

	// snapshot after the processing delay so items added meanwhile make
	// it into the order before the cart is cleared
	lines, totals := s.carts.Snapshot()
	if len(lines) == 0 {
		s.metrics.IncCheckoutRejected("empty_cart")
		return orders.Record{}, pkgerrors.New(pkgerrors.CodeConflict, "cart is empty")
	}

	userID := identity.ID
	if userID == "" {
		userID = "anonymous"
	}
	rec := orders.Record{
		ID:              fmt.Sprintf("ORD-%d", s.now().UnixMilli()),
		UserID:          userID,
		Items:           lines,
		Total:           totals.Total,
		Status:          orders.StatusConfirmed,
		DeliveryDetails: details,
		CreatedAt:       s.now().UTC(),
	}

	if err := s.history.Append(ctx, rec); err != nil {
		return orders.Record{}, err
	}
	s.metrics.IncOrderPlaced()

	if err := s.carts.Clear(ctx); err != nil {
		return orders.Record{}, err
	}

	ctx = s.log.WithOrderID(ctx, rec.ID)
	s.log.Info(ctx, "order placed")
	return rec, nil
}

func (s *Service) sleep(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeInternal, ctx.Err(), "checkout interrupted")
	case <-timer.C:
		return nil
	}
}

func fieldErrors(err error) map[string]string {
	out := map[string]string{}
	valErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		out["details"] = "invalid payload"
		return out
	}
	for _, fe := range valErrs {
		out[fe.Field()] = fieldMessage(fe)
	}
	return out
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	default:
		return "invalid value"
	}
}
