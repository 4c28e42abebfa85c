package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/velora-shop/velora-backend/api/routes"
	"github.com/velora-shop/velora-backend/internal/cart"
	"github.com/velora-shop/velora-backend/internal/catalog"
	checkoutsvc "github.com/velora-shop/velora-backend/internal/checkout"
	"github.com/velora-shop/velora-backend/internal/orders"
	"github.com/velora-shop/velora-backend/internal/payments"
	"github.com/velora-shop/velora-backend/pkg/config"
	"github.com/velora-shop/velora-backend/pkg/logger"
	"github.com/velora-shop/velora-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	persistence, err := cart.NewRedisPersistence(redisClient, cart.DefaultCartID)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart persistence", err)
		os.Exit(1)
	}
	cartStore, err := cart.NewStore(context.Background(), persistence, logg,
		cart.WithNotificationTTL(cfg.Cart.NotificationTTL),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to restore cart", err)
		os.Exit(1)
	}

	catalogService := catalog.NewService(cfg.Catalog.SimulatedLatency)
	historyService := orders.NewHistoryService()
	processor := orders.NewMockProcessor(logg)

	pendingStore, err := payments.NewRedisPendingStore(redisClient, cfg.Checkout.PendingOrderTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create pending order store", err)
		os.Exit(1)
	}
	walletGateway := payments.NewSimulatedWalletGateway(cfg.Checkout.RedirectBaseURL)
	dispatcher, err := payments.NewDispatcher(
		processor,
		walletGateway,
		pendingStore,
		cfg.Checkout.RedirectBaseURL,
		logg,
		payments.WithWalletTimeout(cfg.Checkout.WalletDispatchTimeout),
	)
	if err != nil {
		logg.Error(context.Background(), "failed to create payment dispatcher", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(cartStore, dispatcher, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			redisClient,
			promRegistry,
			catalogService,
			cartStore,
			checkoutService,
			historyService,
		),
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-shutdown:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
