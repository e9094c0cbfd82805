package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aaravmahajanofficial/food-delivery-storefront/docs"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/cache"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/config"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/health"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/location"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/metrics"
	repository "github.com/aaravmahajanofficial/food-delivery-storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/food-delivery-storefront/internal/services"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/tracing"
	"github.com/aaravmahajanofficial/food-delivery-storefront/internal/zones"
	"github.com/aaravmahajanofficial/food-delivery-storefront/pkg/geocoding"
	"github.com/aaravmahajanofficial/food-delivery-storefront/pkg/storefrontapi"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Food Delivery Storefront API
//	@version					1.0
//	@description				Session, cart, delivery zone and catalog API for the food delivery storefront.
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token as "Bearer <token>"
func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx := context.Background()

	// Tracing setup
	shutdownTracing, err := tracing.Setup(ctx, &cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error setting up tracing", "error", err.Error())
		os.Exit(1)
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(&cfg.RedisConnect)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}()

	store := cache.NewRedisCache(redisClient, &cfg.Cache)
	sessionRepo := repository.NewSessionRepo(store, cfg.Session.TTL)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)

	// Delivery zones, from the database when configured
	verifier := zones.NewVerifier(zones.NewTable(zones.DefaultZones))

	var zoneRepo repository.ZoneRepository
	if cfg.Zones.Source == "postgres" {
		repos, err := repository.New(ctx, &cfg.Database)
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

		zoneRepo = repos.Zone
	}

	// Upstream clients
	upstreamClient := storefrontapi.NewClient(storefrontapi.Config{
		BaseURL:             cfg.Upstream.BaseURL,
		Timeout:             cfg.Upstream.Timeout,
		HTTPClient:          &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		MaxHalfOpenRequests: cfg.Upstream.MaxHalfOpenRequests,
		FailureWindow:       cfg.Upstream.FailureWindow,
		OpenTimeout:         cfg.Upstream.OpenTimeout,
		MinRequests:         cfg.Upstream.MinRequests,
		FailureRatio:        cfg.Upstream.FailureRatio,
		Observer:            metrics.Upstream{},
	})

	geocoder := geocoding.NewClient(geocoding.Config{
		BaseURL:  cfg.Geocoding.BaseURL,
		APIKey:   cfg.Geocoding.APIKey,
		Language: cfg.Geocoding.Language,
		HTTPClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   cfg.Geocoding.Timeout,
		},
	})

	queryCache := cache.NewQueryCache(store, &cfg.Cache, cache.WithObserver(metrics.ObserveQuery))

	jwtKey := []byte(cfg.Security.JWTKey)
	tokenTTL := time.Duration(cfg.Security.JWTExpiryHours) * time.Hour

	sessionService := service.NewSessionService(sessionRepo, jwtKey, tokenTTL)
	deliveryService := service.NewDeliveryService(verifier, zoneRepo, metrics.ObserveDeliveryVerdict)
	if err := deliveryService.ReloadZones(ctx); err != nil {
		slog.Error("❌ Error loading delivery zones", "error", err.Error())
		os.Exit(1)
	}

	cartService := service.NewCartService(sessionService)
	modalService := service.NewModalService(sessionService)
	locationService := service.NewLocationService(sessionService, deliveryService, location.NewResolver(geocoder, location.NewTracker()))
	catalogService := service.NewCatalogService(upstreamClient, queryCache)
	orderService := service.NewOrderService(sessionService, upstreamClient)
	authService := service.NewAuthService(sessionService, upstreamClient, rateLimitRepo)
	checkoutService := service.NewCheckoutService(sessionService, deliveryService)

	authHandler := handlers.NewAuthHandler(sessionService, authService)
	cartHandler := handlers.NewCartHandler(cartService)
	sessionStateHandler := handlers.NewSessionStateHandler(modalService, locationService)
	deliveryHandler := handlers.NewDeliveryHandler(deliveryService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey)

	healthChecker, err := health.NewHealthHandler(cfg, &health.Endpoints{Upstream: upstreamClient})
	if err != nil {
		slog.Error("❌ Error creating health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("zones", cfg.Zones.Source), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("POST /api/v1/sessions", authHandler.CreateSession())
	routerMux.HandleFunc("POST /api/v1/auth/register", authHandler.Register())
	routerMux.HandleFunc("POST /api/v1/auth/otp", authMiddleware.Authenticate(authHandler.RequestOTP()))
	routerMux.HandleFunc("POST /api/v1/auth/otp/verify", authMiddleware.Authenticate(authHandler.VerifyOTP()))
	routerMux.HandleFunc("GET /api/v1/auth/me", authMiddleware.Authenticate(authHandler.CurrentUser()))
	routerMux.HandleFunc("POST /api/v1/auth/logout", authMiddleware.Authenticate(authHandler.Logout()))

	routerMux.HandleFunc("GET /api/v1/cart", authMiddleware.Authenticate(cartHandler.GetCart()))
	routerMux.HandleFunc("DELETE /api/v1/cart", authMiddleware.Authenticate(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/cart/packs", authMiddleware.Authenticate(cartHandler.CreatePack()))
	routerMux.HandleFunc("DELETE /api/v1/cart/packs/{packId}", authMiddleware.Authenticate(cartHandler.RemovePack()))
	routerMux.HandleFunc("PUT /api/v1/cart/packs/{packId}/active", authMiddleware.Authenticate(cartHandler.SetActivePack()))
	routerMux.HandleFunc("POST /api/v1/cart/items", authMiddleware.Authenticate(cartHandler.AddItem()))
	routerMux.HandleFunc("PATCH /api/v1/cart/packs/{packId}/items/{itemId}", authMiddleware.Authenticate(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/packs/{packId}/items/{itemId}", authMiddleware.Authenticate(cartHandler.RemoveItem()))

	routerMux.HandleFunc("GET /api/v1/session/modal", authMiddleware.Authenticate(sessionStateHandler.GetModal()))
	routerMux.HandleFunc("PUT /api/v1/session/modal", authMiddleware.Authenticate(sessionStateHandler.OpenModal()))
	routerMux.HandleFunc("DELETE /api/v1/session/modal", authMiddleware.Authenticate(sessionStateHandler.CloseModal()))
	routerMux.HandleFunc("GET /api/v1/session/location", authMiddleware.Authenticate(sessionStateHandler.GetLocation()))
	routerMux.HandleFunc("PUT /api/v1/session/location", authMiddleware.Authenticate(sessionStateHandler.SetAddress()))
	routerMux.HandleFunc("POST /api/v1/session/location/resolve", authMiddleware.Authenticate(sessionStateHandler.ResolveLocation()))

	routerMux.HandleFunc("POST /api/v1/delivery/verify", deliveryHandler.VerifyDelivery())

	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/categories", catalogHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/businesses", catalogHandler.ListBusinesses())

	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/meal-plans", authMiddleware.Authenticate(orderHandler.ListMealPlans()))
	routerMux.HandleFunc("POST /api/v1/checkout/validate", authMiddleware.Authenticate(checkoutHandler.ValidateCheckout()))

	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Recover(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

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

	// background catalog refreshes still hold Redis
	queryCache.Wait()

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracing shutdown encountered an issue", slog.String("error", err.Error()))
	}

}
