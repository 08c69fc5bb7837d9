package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"booking-gateway/config"
	"booking-gateway/controllers"
	"booking-gateway/lifecycle"
	"booking-gateway/routes"
	"booking-gateway/services"
	"booking-gateway/supplier"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env not found or couldn't load it; continuing with environment variables")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		logger.Error("database connect failed", "error", err)
		os.Exit(1)
	}
	db := config.DB
	logger.Info("database connection established")

	// Upstream supplier client
	supplierClient := supplier.NewClient(
		cfg.SupplierBaseURL,
		cfg.SupplierUsername,
		cfg.SupplierPassword,
		cfg.SupplierTimeout,
		logger,
	)

	// Lifecycle coordinator
	policy := lifecycle.CancelPolicy{
		MinLength: cfg.ConfirmationMinLen,
		MaxLength: cfg.ConfirmationMaxLen,
	}
	coordinator := lifecycle.NewCoordinator(supplierClient, lifecycle.NewStore(), policy, logger)

	// Initialize services
	bookingService := services.NewBookingService(db)
	customerService := services.NewCustomerService(db)
	favoriteService, err := services.NewFavoriteService(services.NewGormKVStore(db))
	if err != nil {
		logger.Error("favorites init failed", "error", err)
		os.Exit(1)
	}

	// Initialize controllers
	hotelController := controllers.NewHotelController(supplierClient)
	sessionController := controllers.NewSessionController(coordinator, bookingService, logger)
	bookingController := controllers.NewBookingController(supplierClient, bookingService, policy)
	favoriteController := controllers.NewFavoriteController(favoriteService)
	customerController := controllers.NewCustomerController(customerService)

	// Build router
	router := routes.SetupRouter(
		hotelController,
		sessionController,
		bookingController,
		favoriteController,
		customerController,
		logger,
	)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("server starting", "addr", addr, "supplier", cfg.SupplierBaseURL)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
