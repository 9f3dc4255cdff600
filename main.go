package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/cart"
	"storefront-service/catalog"
	"storefront-service/checkout"
	"storefront-service/config"
	"storefront-service/controllers"
	"storefront-service/database"
	"storefront-service/logger"
	"storefront-service/order"
	"storefront-service/pricing"
	"storefront-service/routes"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Sync()
	log := logger.Log

	ctx := context.Background()

	// Persistence is best-effort: without Redis the cart still works, it
	// just won't survive a restart.
	var store database.BlobStore
	if redisClient, err := database.NewRedisClient(ctx, cfg.RedisURL); err != nil {
		log.Warn("Redis unavailable, falling back to in-memory persistence", zap.Error(err))
		store = database.NewMemoryStore()
	} else {
		log.Info("Connected to Redis")
		store = database.NewRedisStore(redisClient, cfg.CartTTL)
	}
	mirror := database.NewMirror(store, log)

	// Catalog: MongoDB when configured, static seed otherwise (and on any
	// Mongo failure).
	var source catalog.Source = catalog.NewStaticSource()
	if cfg.MongoURI != "" {
		if mongoSource, err := catalog.NewMongoSource(ctx, cfg.MongoURI, cfg.MongoDB, log); err != nil {
			log.Warn("MongoDB unavailable, using static catalog", zap.Error(err))
		} else {
			source = mongoSource
		}
	}
	cat, err := catalog.Load(ctx, source)
	if err != nil {
		log.Warn("Catalog load failed, using static seed", zap.Error(err))
		cat, _ = catalog.Load(ctx, catalog.NewStaticSource())
	}

	// Core state: ledger and form rehydrated from their blobs, with the
	// persistence mirror attached as a change subscriber.
	resolver := pricing.NewResolver(cat)

	ledger := cart.New(mirror.LoadCart(ctx), log)
	ledger.Subscribe(mirror.SaveCart)

	form := checkout.New(mirror.LoadCheckout(ctx), cat, log)
	form.Subscribe(mirror.SaveCheckout)

	composer := order.NewComposer(
		ledger, form, resolver,
		cfg.MerchantName, cfg.WhatsAppPhone,
		&order.LogOpener{Logger: log},
		log,
	)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(
		router,
		controllers.NewCatalogController(cat, cfg.MerchantName, cfg.WhatsAppPhone),
		controllers.NewCartController(ledger, cat, log),
		controllers.NewCheckoutController(form, composer, log),
	)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Info("Storefront service is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Shutdown error", zap.Error(err))
	}
	log.Info("Server shutdown complete.")
}
