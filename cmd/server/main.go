package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/profinder/marketplace-api/internal/api"
	"github.com/profinder/marketplace-api/internal/core/service"
	"github.com/profinder/marketplace-api/internal/infrastructure/config"
	"github.com/profinder/marketplace-api/internal/infrastructure/db/postgres"
	redisinfra "github.com/profinder/marketplace-api/internal/infrastructure/db/redis"
	"github.com/profinder/marketplace-api/internal/infrastructure/mail"
	"github.com/profinder/marketplace-api/internal/infrastructure/queue"
	"github.com/profinder/marketplace-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.Connect(cfg.Postgres)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}
	if err := postgres.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("closing redis client failed")
		}
	}()

	// --- Repositories ---
	userRepo := postgres.NewGormUserRepository(db)
	profileRepo := postgres.NewGormProfileRepository(db)
	categoryRepo := postgres.NewGormCategoryRepository(db)
	serviceRepo := postgres.NewGormServiceRepository(db)
	bookingRepo := postgres.NewGormBookingRepository(db)
	messageRepo := postgres.NewGormMessageRepository(db)
	notificationRepo := postgres.NewGormNotificationRepository(db)

	// --- Outbound mail, delivered by background workers ---
	mailer := mail.NewSMTPMailer(cfg.SMTP)
	dispatcher := queue.NewDispatcher(cfg.SMTP.Workers, mailer, log)
	dispatcher.Start(ctx)

	resetTokens := redisinfra.NewResetTokenStore(rdb)

	// --- Services ---
	userService := service.NewUserService(userRepo, log)
	authService := service.NewAuthService(userRepo, resetTokens, dispatcher, cfg.JWTSecret, 24*time.Hour, log)
	profileService := service.NewProfileService(profileRepo, userRepo, log)
	catalogService := service.NewCatalogService(categoryRepo, serviceRepo, profileRepo, log)
	bookingService := service.NewBookingService(bookingRepo, serviceRepo, userRepo, profileRepo, log)
	messagingService := service.NewMessagingService(messageRepo, notificationRepo, userRepo, log)

	e := api.NewRouter(api.Deps{
		DB:        db,
		Redis:     rdb,
		Users:     userService,
		Auth:      authService,
		Profiles:  profileService,
		Catalog:   catalogService,
		Bookings:  bookingService,
		Messaging: messagingService,
		JWTSecret: cfg.JWTSecret,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.Start(":" + cfg.Port)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped unexpectedly")
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	cancel() // stops the mail workers
}
