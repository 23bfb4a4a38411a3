package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"paybridge/internal/config"
	cronpkg "paybridge/internal/cron"
	"paybridge/internal/handler/api"
	"paybridge/internal/middleware"
	"paybridge/internal/notify"
	"paybridge/internal/paypro"
	"paybridge/internal/pkg/httpclient"
	"paybridge/internal/repository"
	"paybridge/internal/router"
)

func main() {
	// --- Logger ---
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// --- Config ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// --- Gateway client ---
	httpClient := httpclient.New().WithTimeout(cfg.PayPro.Timeout)
	tokens := paypro.NewTokenSource(cfg.PayPro.AuthURL(), cfg.PayPro.ClientID, cfg.PayPro.ClientSecret, httpClient)
	gateway := paypro.NewClient(paypro.Config{
		OrderURL:     cfg.PayPro.OrderURL(),
		MerchantID:   cfg.PayPro.MerchantID,
		HomeCurrency: cfg.PayPro.HomeCurrency,
		OrderDueDate: cfg.PayPro.OrderDueDate,
	}, tokens, httpClient)

	// --- Order audit log (optional) ---
	var auditor api.OrderAuditor
	if cfg.Database.Name != "" {
		db, err := config.NewDatabase(&cfg.Database)
		if err != nil {
			logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		repo := repository.NewOrderLogRepository(db)
		if err := repo.Migrate(); err != nil {
			logger.Fatal("Failed to migrate order_logs", zap.Error(err))
		}
		auditor = repo
	} else {
		logger.Info("Order audit log disabled (DB_NAME is not set)")
	}

	// --- Order notifications (optional) ---
	var notifier api.OrderNotifier
	if cfg.Notify.BotToken != "" && cfg.Notify.ChatID != "" {
		notifier = notify.NewTelegram(cfg.Notify.BotToken, cfg.Notify.ChatID)
	}

	// --- Idempotency deduper (Redis with in-memory fallback) ---
	deduper, dedupeErr := middleware.NewRequestDeduper(
		cfg.Redis.Addr,
		cfg.Redis.Pass,
		cfg.Redis.DB,
		10*time.Minute,
	)
	if dedupeErr != nil {
		logger.Warn("Redis unavailable for idempotency, using in-memory fallback", zap.Error(dedupeErr))
	}

	// --- Echo ---
	e := echo.New()
	e.HideBanner = true

	// --- Routes ---
	router.Setup(e, tokens, gateway, auditor, notifier, deduper, logger)

	// --- Token keep-warm (optional) ---
	var scheduler *cronpkg.Scheduler
	if cfg.PayPro.KeepAlive {
		scheduler = cronpkg.New(tokens, logger)
		scheduler.Start()
	}

	// --- Start Server ---
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info("Starting paybridge server", zap.String("addr", addr))
		if err := e.Start(addr); err != nil {
			logger.Info("Server stopped", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	if scheduler != nil {
		ctx := scheduler.Stop()
		<-ctx.Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
