package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/foodieexpress/foodieexpress-backend/api/controllers"
	"github.com/foodieexpress/foodieexpress-backend/api/middleware"
	"github.com/foodieexpress/foodieexpress-backend/internal/cart"
	"github.com/foodieexpress/foodieexpress-backend/internal/catalog"
	checkoutsvc "github.com/foodieexpress/foodieexpress-backend/internal/checkout"
	"github.com/foodieexpress/foodieexpress-backend/internal/orders"
	"github.com/foodieexpress/foodieexpress-backend/internal/session"
	"github.com/foodieexpress/foodieexpress-backend/pkg/config"
	"github.com/foodieexpress/foodieexpress-backend/pkg/db"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
	"github.com/foodieexpress/foodieexpress-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbClient *db.Client,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	cat *catalog.Catalog,
	carts *cart.Store,
	sessions *session.Store,
	checkoutService *checkoutsvc.Service,
	ordersService *orders.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	signupPolicy := middleware.NewAuthRateLimitPolicy(
		"signup",
		cfg.AuthRateLimit.SignupWindow,
		cfg.AuthRateLimit.SignupIPLimit,
		cfg.AuthRateLimit.SignupEmailLimit,
	)

	// nil clients must reach the handlers as nil interfaces, not typed nils
	var limiterStore middleware.RateLimiterStore
	if redisClient != nil {
		limiterStore = redisClient
	}
	var dbPing db.Pinger
	if dbClient != nil {
		dbPing = dbClient
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbPing, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/menu", func(r chi.Router) {
		r.Get("/", controllers.MenuList(cat, logg))
		r.Get("/categories", controllers.MenuCategories(cat, logg))
		r.Get("/{itemId}", controllers.MenuItem(cat, logg))
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(signupPolicy, limiterStore, logg)).Post("/signup", controllers.AuthSignup(sessions, cfg.JWT, logg))
		r.With(middleware.AuthRateLimit(loginPolicy, limiterStore, logg)).Post("/login", controllers.AuthLogin(sessions, cfg.JWT, logg))
		r.Post("/guest", controllers.AuthGuest(sessions, cfg.JWT, logg))
		r.With(middleware.Auth(cfg.JWT, sessions, logg)).Post("/logout", controllers.AuthLogout(sessions, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, sessions, logg))

		r.Get("/profile", controllers.ProfileGet(sessions, logg))
		r.Patch("/profile", controllers.ProfileUpdate(sessions, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(carts, logg))
			r.Post("/items", controllers.CartAddItem(carts, cat, logg))
			r.Patch("/items/{itemId}", controllers.CartUpdateQuantity(carts, logg))
			r.Delete("/items/{itemId}", controllers.CartRemoveItem(carts, logg))
			r.Delete("/", controllers.CartClear(carts, logg))
		})

		r.Post("/checkout", controllers.CheckoutSubmit(checkoutService, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(ordersService, logg))
			r.Get("/last", controllers.OrdersLast(ordersService, logg))
		})
	})

	return r
}
