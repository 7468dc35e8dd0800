package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jakaplan/zebra/config"
	"github.com/jakaplan/zebra/controllers"
	"github.com/jakaplan/zebra/middleware"
	"github.com/jakaplan/zebra/models"
	"github.com/jakaplan/zebra/repository"
	"github.com/jakaplan/zebra/routes"
	servicepkg "github.com/jakaplan/zebra/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	if !cfg.VerifyWebhooks() {
		logger.Warn("No endpoint secret specified, webhook signature check will be skipped")
	}

	// Durable sink for finalized transactions
	txLog, err := repository.NewCSVTransactionLog(cfg.TransactionLogPath)
	if err != nil {
		logger.Fatal("Failed to open transaction log", zap.Error(err))
	}
	defer txLog.Close() //nolint:errcheck

	// Pending store + expiry sweep
	store := repository.NewMemoryPendingStore()
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	sweeper := repository.NewSweeper(store, cfg.SweepInterval, cfg.PendingMaxAge, logger)
	go sweeper.Start(sweepCtx)

	// Gateway + DI chain
	stripeSvc := servicepkg.NewStripeService(cfg.StripeSecretKey)
	var parser servicepkg.EventParser
	if cfg.VerifyWebhooks() {
		parser = servicepkg.NewVerifiedParser(cfg.StripeEndpointSecret)
	} else {
		parser = servicepkg.NewUnverifiedParser()
	}

	checkoutService := servicepkg.NewCheckoutService(stripeSvc, store, models.DealOfTheDay, logger)
	reconciler := servicepkg.NewReconciler(parser, store, txLog, logger)

	checkoutController := controllers.NewCheckoutController(checkoutService)
	webhookController := controllers.NewWebhookController(reconciler, logger)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "zebra-checkout"})
	})

	routes.RegisterRoutes(r, checkoutController, webhookController)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	logger.Info("Checkout service started", zap.String("port", cfg.Port))
	<-quit
	logger.Info("Shutting down checkout service...")
	stopSweep()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited cleanly")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
