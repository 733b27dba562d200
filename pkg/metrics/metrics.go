package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StoreMetrics records counters for the cart and checkout flows.
type StoreMetrics struct {
	cartMutations     *prometheus.CounterVec
	ordersPlaced      prometheus.Counter
	checkoutsRejected *prometheus.CounterVec
	authAttempts      *prometheus.CounterVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	cartMutations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_mutations_total",
		Help: "Cart store mutations by operation.",
	}, []string{"op"})
	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "orders_placed_total",
		Help: "Orders successfully created at checkout.",
	})
	checkoutsRejected := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkouts_rejected_total",
		Help: "Checkout submissions rejected before order creation.",
	}, []string{"reason"})
	authAttempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "auth_attempts_total",
		Help: "Login and signup attempts by operation and outcome.",
	}, []string{"op", "outcome"})
	reg.MustRegister(cartMutations, ordersPlaced, checkoutsRejected, authAttempts)
	return &StoreMetrics{
		cartMutations:     cartMutations,
		ordersPlaced:      ordersPlaced,
		checkoutsRejected: checkoutsRejected,
		authAttempts:      authAttempts,
	}
}

// IncCartMutation increments the mutation counter for the named operation.
func (m *StoreMetrics) IncCartMutation(op string) {
	if m == nil || m.cartMutations == nil {
		return
	}
	m.cartMutations.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncOrderPlaced increments the placed-orders counter.
func (m *StoreMetrics) IncOrderPlaced() {
	if m == nil || m.ordersPlaced == nil {
		return
	}
	m.ordersPlaced.Inc()
}

// IncCheckoutRejected increments the rejected-checkouts counter for the given reason.
func (m *StoreMetrics) IncCheckoutRejected(reason string) {
	if m == nil || m.checkoutsRejected == nil {
		return
	}
	m.checkoutsRejected.WithLabelValues(normalizeLabel(reason)).Inc()
}

// IncAuthAttempt increments the auth counter for the operation and outcome.
func (m *StoreMetrics) IncAuthAttempt(op, outcome string) {
	if m == nil || m.authAttempts == nil {
		return
	}
	m.authAttempts.WithLabelValues(normalizeLabel(op), normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
