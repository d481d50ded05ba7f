package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/malwis/venue_backend/internal/app"
	"github.com/malwis/venue_backend/internal/config"
	"github.com/malwis/venue_backend/internal/controller"
	"github.com/malwis/venue_backend/internal/notifier"
	"github.com/malwis/venue_backend/internal/prefs"
	"github.com/malwis/venue_backend/internal/repository"
	"github.com/malwis/venue_backend/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment)
	defer logger.Sync()

	logger.Sugar().Infow("Starting venue backend",
		"environment", cfg.Environment,
		"port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.GetDBDSN())
	if err != nil {
		logger.Fatal("Failed to create database pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Println("✅ Connected to database")

	migrator, err := app.NewMigrator(pool, "migrations")
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		// Без Redis сайт работает на дефолтных предпочтениях
		logger.Warn("Redis unavailable, visitor preferences disabled", zap.Error(err))
	} else {
		log.Println("✅ Connected to Redis")
	}
	defer redisClient.Close()

	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))

	bookingRepo := repository.NewBookingRepository(pool)
	inquiryRepo := repository.NewInquiryRepository(pool)

	bookingService := service.NewBookingService(bookingRepo, rnd, logger)
	calendarService := service.NewCalendarService(bookingService, logger)
	inquiryService := service.NewInquiryService(inquiryRepo, rnd, logger)

	if cfg.SeedDemo {
		created, err := bookingService.SeedIfEmpty(ctx)
		if err != nil {
			logger.Fatal("Failed to seed demo bookings", zap.Error(err))
		}
		if created > 0 {
			logger.Info("Seeded demo bookings", zap.Int("count", created))
		}
	}

	tg, err := notifier.NewTelegram(cfg.TelegramToken, cfg.AdminChatID, logger)
	if err != nil {
		logger.Fatal("Failed to create staff notifier", zap.Error(err))
	}
	if tg == nil {
		log.Println("⚠️  Staff notifications disabled, no telegram token configured")
	} else {
		log.Println("✅ Staff notifications enabled")
	}

	prefsStore := prefs.NewStore(redisClient, logger)

	hub := controller.NewHub(logger)
	go hub.Run()
	bookingService.SetChangeListener(hub)

	scheduler := app.NewScheduler(bookingService, logger)
	scheduler.Start(ctx)

	rateLimiter := controller.NewRateLimiter(5, 3)

	bookingController := controller.NewBookingController(bookingService, calendarService, prefsStore, tg, logger)
	inquiryController := controller.NewInquiryController(inquiryService, prefsStore, tg, logger)
	prefsController := controller.NewPrefsController(prefsStore, logger)

	router := controller.NewRouter(bookingController, inquiryController, prefsController, hub, rateLimiter)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{cfg.SiteOrigin},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Visitor-ID", "X-Request-ID"},
	}).Handler(router)

	handler := controller.RequestID(controller.AccessLog(logger, controller.SecurityHeaders(corsHandler)))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server listening on :%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("🛑 Shutdown signal received, shutting down gracefully...")

	scheduler.Stop()
	hub.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Graceful shutdown failed", zap.Error(err))
	}

	log.Println("✅ Server stopped cleanly")
}
