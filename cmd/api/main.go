package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	redis "github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lumiere-essence/maison-backend/internal/config"
	"github.com/lumiere-essence/maison-backend/internal/kv"
	"github.com/lumiere-essence/maison-backend/internal/modules/admin"
	"github.com/lumiere-essence/maison-backend/internal/modules/advisor"
	"github.com/lumiere-essence/maison-backend/internal/modules/auth"
	"github.com/lumiere-essence/maison-backend/internal/modules/cart"
	"github.com/lumiere-essence/maison-backend/internal/modules/catalog"
	"github.com/lumiere-essence/maison-backend/internal/modules/checkout"
	"github.com/lumiere-essence/maison-backend/internal/modules/currency"
	"github.com/lumiere-essence/maison-backend/internal/modules/geo"
	"github.com/lumiere-essence/maison-backend/internal/modules/inquiry"
	"github.com/lumiere-essence/maison-backend/internal/modules/order"
	"github.com/lumiere-essence/maison-backend/internal/modules/settings"
	"github.com/lumiere-essence/maison-backend/internal/modules/user"
)

func main() {
	// a missing .env is fine; the environment may carry everything
	_ = godotenv.Load()

	cfg := config.Load()

	logger, err := newLogger(cfg.Logger)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	store, err := newStore(cfg.Storage, logger)
	if err != nil {
		logger.Fatal("storage init failed", zap.Error(err))
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(logger))

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewKVRepository(store)
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	authService := auth.NewService(userRepo, tokens, cfg.Auth.CodeSendDelay, logger)
	auth.NewHandler(authService).RegisterRoutes(router)
	guard := auth.NewMiddleware(tokens)

	// ── Catalog & Storefront ────────────────────────────────
	catalogRepo := catalog.NewKVRepository(store)
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router, guard.RequireAdmin)

	currency.NewHandler().RegisterRoutes(router)

	settingsService := settings.NewService(store)
	settings.NewHandler(settingsService).RegisterRoutes(router, guard.RequireAdmin)

	// ── Cart & Checkout ─────────────────────────────────────
	carts := cart.NewManager()
	cart.NewHandler(carts, catalogService).RegisterRoutes(router, guard.RequireAuth)

	orderRepo := order.NewKVRepository(store)
	orderService := order.NewService(orderRepo, logger)
	order.NewHandler(orderService).RegisterRoutes(router, guard.RequireAuth, guard.RequireAdmin)

	checkoutService := checkout.NewService(carts, orderRepo, cfg.Checkout.StageDelays, logger)
	checkout.NewHandler(checkoutService).RegisterRoutes(router, guard.RequireAuth)

	// ── Consults & Console ──────────────────────────────────
	inquiryRepo := inquiry.NewKVRepository(store)
	inquiryService := inquiry.NewService(inquiryRepo, logger)
	inquiry.NewHandler(inquiryService).RegisterRoutes(router, guard.RequireAuth, guard.RequireAdmin)

	adminService := admin.NewService(userRepo, orderService, inquiryRepo)
	admin.NewHandler(adminService).RegisterRoutes(router, guard.RequireAdmin)

	// ── Collaborators ───────────────────────────────────────
	geoClient := geo.NewClient(cfg.Geo.BaseURL, logger)
	geo.NewHandler(geoClient).RegisterRoutes(router)

	advisorClient := advisor.NewClient(cfg.Advisor.BaseURL, cfg.Advisor.APIKey, cfg.Advisor.Model, logger)
	advisor.NewHandler(advisorClient).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	logger.Info("maison API server starting", zap.String("port", cfg.Server.Port))
	if err := http.ListenAndServe(":"+cfg.Server.Port, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func newLogger(cfg config.LoggerConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = cfg.Encoding
	if cfg.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return zc.Build()
}

func newStore(cfg config.StorageConfig, logger *zap.Logger) (kv.Store, error) {
	switch cfg.Driver {
	case "memory":
		return kv.NewMemoryStore(), nil
	case "file":
		return kv.NewFileStore(cfg.FileDir)
	case "postgres":
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			return nil, err
		}
		logger.Info("connected to postgres")
		return kv.NewPostgresStore(db)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		return kv.NewRedisStore(client), nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}
