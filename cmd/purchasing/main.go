package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adventureworks/purchasing/internal/app"
	"github.com/adventureworks/purchasing/internal/platform/db"
	"github.com/adventureworks/purchasing/internal/purchasing/orders"
	"github.com/adventureworks/purchasing/internal/purchasing/persons"
	"github.com/adventureworks/purchasing/internal/purchasing/shipmethods"
	"github.com/adventureworks/purchasing/internal/purchasing/vendors"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	orderService := orders.NewService(orders.NewRepository(pool))
	vendorService := vendors.NewService(vendors.NewRepository(pool))
	shipMethodService := shipmethods.NewService(shipmethods.NewRepository(pool))
	personService := persons.NewService(persons.NewRepository(pool))

	router := app.NewRouter(app.RouterParams{
		Logger:            logger,
		Config:            cfg,
		OrderHandler:      orders.NewHandler(logger, orderService),
		VendorHandler:     vendors.NewHandler(logger, vendorService),
		ShipMethodHandler: shipmethods.NewHandler(logger, shipMethodService),
		PersonHandler:     persons.NewHandler(logger, personService),
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
