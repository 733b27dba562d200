package main

import (
	"context"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/foodieexpress/foodieexpress-backend/api/routes"
	"github.com/foodieexpress/foodieexpress-backend/internal/cart"
	"github.com/foodieexpress/foodieexpress-backend/internal/catalog"
	"github.com/foodieexpress/foodieexpress-backend/internal/checkout"
	"github.com/foodieexpress/foodieexpress-backend/internal/orders"
	"github.com/foodieexpress/foodieexpress-backend/internal/session"
	"github.com/foodieexpress/foodieexpress-backend/pkg/config"
	"github.com/foodieexpress/foodieexpress-backend/pkg/db"
	"github.com/foodieexpress/foodieexpress-backend/pkg/localstore"
	"github.com/foodieexpress/foodieexpress-backend/pkg/logger"
	"github.com/foodieexpress/foodieexpress-backend/pkg/metrics"
	"github.com/foodieexpress/foodieexpress-backend/pkg/migrate"
	"github.com/foodieexpress/foodieexpress-backend/pkg/redis"
	"github.com/joho/godotenv"
)

func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(ctx, ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			logg.Error(ctx, "failed to bootstrap redis", err)
			os.Exit(1)
		}
	}

	defer func() {
		var closeErr error
		closeErr = multierr.Append(closeErr, dbClient.Close())
		if redisClient != nil {
			closeErr = multierr.Append(closeErr, redisClient.Close())
		}
		if closeErr != nil {
			logg.Error(context.Background(), "error closing clients", closeErr)
		}
	}()

	if err := migrate.MaybeAutoRun(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run migrations", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.NewStoreMetrics(registry)

	persist := localstore.New(dbClient.DB())

	carts, err := cart.New(ctx, persist, cfg.Pricing, storeMetrics, logg)
	if err != nil {
		logg.Error(ctx, "failed to build cart store", err)
		os.Exit(1)
	}

	sessions, err := session.New(ctx, persist, cfg.Password, cfg.Simulation, storeMetrics, logg)
	if err != nil {
		logg.Error(ctx, "failed to build session store", err)
		os.Exit(1)
	}

	ordersService := orders.NewService(persist, logg)
	checkoutService := checkout.NewService(carts, sessions, ordersService, cfg.Simulation, storeMetrics, logg)
	menu := catalog.Default()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			registry,
			menu,
			carts,
			sessions,
			checkoutService,
			ordersService,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
