package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/aaravmahajanofficial/storefront/docs"
	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	"github.com/aaravmahajanofficial/storefront/internal/migrations"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/storefront/pkg/sendgrid"
	"github.com/aaravmahajanofficial/storefront/pkg/stripe"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

//	@title						Storefront API
//	@version					1.0
//	@description				Catalog, carts, orders and Stripe payments.
//	@host						localhost:8080
//	@BasePath					/api/v1
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {
	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Telemetry, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	if cfg.Database.AutoMigrate {
		if err := migrations.Up(ctx, repos.DB); err != nil {
			slog.Error("❌ Error applying migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	catalogCache := cache.NewRedisCache(redisClient, cfg.Cache)
	defer catalogCache.Close()

	rateLimiter := repository.NewRateLimitRepo(redisClient, cfg.RateConfig)

	stripeClient := stripe.NewStripeClient(cfg.Stripe.APIKey, cfg.Stripe.WebhookSecret)
	emailService := sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)

	userService := service.NewUserService(repos.User, rateLimiter, cfg.Security)
	categoryService := service.NewCategoryService(repos.Category, catalogCache, cfg.Cache.DefaultTTL)
	productService := service.NewProductService(repos.Product, catalogCache, cfg.Cache.DefaultTTL)
	reviewService := service.NewReviewService(repos.Review, repos.Product)
	cartService := service.NewCartService(repos.Cart)
	orderService := service.NewOrderService(repos.Store, repos.Cart, repos.Order, service.NewOrderNotifier(emailService))
	paymentService := service.NewPaymentService(repos.Order, orderService, stripeClient, cfg.Stripe)
	profileService := service.NewProfileService(repos.Profile)

	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	profileHandler := handlers.NewProfileHandler(profileService)
	authMiddleware := middleware.NewAuthMiddleware([]byte(cfg.Security.JWTKey))

	healthChecker, err := health.NewHealthHandler(cfg, &health.Endpoints{StripeClient: stripeClient})
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()

	routerMux.HandleFunc("POST /api/v1/users/register", userHandler.Register())
	routerMux.HandleFunc("POST /api/v1/users/login", userHandler.Login())
	routerMux.HandleFunc("GET /api/v1/users/me", authMiddleware.Authenticate(userHandler.Me()))

	routerMux.HandleFunc("GET /api/v1/categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("POST /api/v1/categories", authMiddleware.RequireStaff(categoryHandler.CreateCategory()))
	routerMux.HandleFunc("GET /api/v1/categories/{id}", categoryHandler.GetCategory())
	routerMux.HandleFunc("PUT /api/v1/categories/{id}", authMiddleware.RequireStaff(categoryHandler.UpdateCategory()))
	routerMux.HandleFunc("DELETE /api/v1/categories/{id}", authMiddleware.RequireStaff(categoryHandler.DeleteCategory()))

	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("POST /api/v1/products", authMiddleware.RequireStaff(productHandler.CreateProduct()))
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("PUT /api/v1/products/{id}", authMiddleware.RequireStaff(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /api/v1/products/{id}", authMiddleware.RequireStaff(productHandler.DeleteProduct()))

	routerMux.HandleFunc("GET /api/v1/products/{id}/reviews", reviewHandler.ListReviews())
	routerMux.HandleFunc("POST /api/v1/products/{id}/reviews", reviewHandler.CreateReview())
	routerMux.HandleFunc("GET /api/v1/products/{id}/reviews/{reviewID}", reviewHandler.GetReview())
	routerMux.HandleFunc("DELETE /api/v1/products/{id}/reviews/{reviewID}", authMiddleware.RequireStaff(reviewHandler.DeleteReview()))

	routerMux.HandleFunc("POST /api/v1/carts", cartHandler.CreateCart())
	routerMux.HandleFunc("GET /api/v1/carts/{id}", cartHandler.GetCart())
	routerMux.HandleFunc("DELETE /api/v1/carts/{id}", cartHandler.DeleteCart())
	routerMux.HandleFunc("GET /api/v1/carts/{id}/items", cartHandler.ListItems())
	routerMux.HandleFunc("POST /api/v1/carts/{id}/items", cartHandler.AddItem())
	routerMux.HandleFunc("GET /api/v1/carts/{id}/items/{itemID}", cartHandler.GetItem())
	routerMux.HandleFunc("PATCH /api/v1/carts/{id}/items/{itemID}", cartHandler.UpdateItem())
	routerMux.HandleFunc("DELETE /api/v1/carts/{id}/items/{itemID}", cartHandler.RemoveItem())

	routerMux.HandleFunc("POST /api/v1/orders", authMiddleware.Authenticate(orderHandler.CreateOrder()))
	routerMux.HandleFunc("GET /api/v1/orders", authMiddleware.Authenticate(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", authMiddleware.Authenticate(orderHandler.GetOrder()))
	routerMux.HandleFunc("POST /api/v1/orders/{id}/pay", authMiddleware.Authenticate(paymentHandler.InitiatePayment()))
	routerMux.HandleFunc("POST /api/v1/orders/confirm_payment", authMiddleware.Authenticate(paymentHandler.ConfirmPayment()))
	routerMux.HandleFunc("POST /api/v1/payments/webhook", paymentHandler.HandleStripeWebhook())

	routerMux.HandleFunc("GET /api/v1/profiles", profileHandler.ListProfiles())
	routerMux.HandleFunc("POST /api/v1/profiles", profileHandler.CreateProfile())
	routerMux.HandleFunc("GET /api/v1/profiles/{id}", profileHandler.GetProfile())
	routerMux.HandleFunc("PUT /api/v1/profiles/{id}", profileHandler.UpdateProfile())
	routerMux.HandleFunc("DELETE /api/v1/profiles/{id}", profileHandler.DeleteProfile())

	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "storefront")

	// Setup http server
	server := http.Server{
		Addr:         cfg.HTTPServer.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.ReadTimeout,
		WriteTimeout: cfg.HTTPServer.WriteTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.HTTPServer.Addr))

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}
}
