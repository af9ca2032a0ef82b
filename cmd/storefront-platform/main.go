package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leaflane/storefront-platform/internal/api/handlers"
	"github.com/leaflane/storefront-platform/internal/api/middleware"
	"github.com/leaflane/storefront-platform/internal/cache"
	"github.com/leaflane/storefront-platform/internal/config"
	"github.com/leaflane/storefront-platform/internal/health"
	"github.com/leaflane/storefront-platform/internal/metrics"
	repository "github.com/leaflane/storefront-platform/internal/repositories"
	service "github.com/leaflane/storefront-platform/internal/services"
	"github.com/leaflane/storefront-platform/pkg/checkout"
	"github.com/leaflane/storefront-platform/pkg/sendgrid"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	pageCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	defer func() {
		if err := pageCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	// The confirmation emailer and the checkout endpoint are optional
	// collaborators; without config the features degrade rather than fail.
	var emailer service.Emailer
	if cfg.SendGrid.APIKey != "" {
		emailer = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		slog.Warn("SendGrid API key not configured, waitlist confirmation emails disabled")
	}

	var dispatcher service.CheckoutDispatcher
	if cfg.Checkout.Endpoint != "" {
		dispatcher = checkout.NewClient(cfg.Checkout.Endpoint)
	} else {
		slog.Warn("Checkout endpoint not configured, checkout requests will be rejected")
	}

	catalogService := service.NewCatalogService(repos.Product, repos.Brand, pageCache, cfg)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	cartService := service.NewCartService(service.NewSessionCartStore(), repos.Product, dispatcher)
	cartHandler := handlers.NewCartHandler(cartService)
	vipService := service.NewVIPService(repos.VIP, pageCache)
	vipHandler := handlers.NewVIPHandler(vipService)
	waitlistService := service.NewWaitlistService(repos.Waitlist, emailer)
	waitlistHandler := handlers.NewWaitlistHandler(waitlistService)
	creatorService := service.NewCreatorService(repos.Creator)
	creatorHandler := handlers.NewCreatorHandler(creatorService)

	healthHandler, err := health.NewHealthHandler(cfg, &health.Endpoints{DB: repos.DB, RedisClient: redisClient})
	if err != nil {
		slog.Error("❌ Error building health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/brands", catalogHandler.ListBrands())
	routerMux.HandleFunc("GET /api/v1/catalog/products", catalogHandler.BrowseProducts())
	routerMux.HandleFunc("GET /api/v1/catalog/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/carts", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/carts/items", cartHandler.AddItem())
	routerMux.HandleFunc("POST /api/v1/carts/items/remove", cartHandler.RemoveItem())
	routerMux.HandleFunc("POST /api/v1/carts/checkout", cartHandler.Checkout())
	routerMux.HandleFunc("POST /api/v1/vip/validate", vipHandler.ValidateCode())
	routerMux.HandleFunc("POST /api/v1/waitlist", waitlistHandler.Signup())
	routerMux.HandleFunc("POST /api/v1/creators/reserve", creatorHandler.ReserveHandle())
	routerMux.HandleFunc("POST /api/v1/creators/profile", creatorHandler.SaveProfile())
	routerMux.HandleFunc("GET /api/v1/creators/{handle}", creatorHandler.GetPage())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {

		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
