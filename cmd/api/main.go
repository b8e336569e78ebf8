package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/taskmate/taskmate-api/internal/api"
	"github.com/taskmate/taskmate-api/internal/core/auth"
	"github.com/taskmate/taskmate-api/internal/infrastructure/config"
	"github.com/taskmate/taskmate-api/internal/infrastructure/db/postgres"
	"github.com/taskmate/taskmate-api/internal/infrastructure/db/redis"
	"github.com/taskmate/taskmate-api/internal/infrastructure/scheduler"
	"github.com/taskmate/taskmate-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := postgres.RunMigrations(ctx, cfg.Database.DSN); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}
	defer pool.Close()

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	e := api.NewRouter(api.Deps{
		Pool:   pool,
		Redis:  rdb,
		Tokens: auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL),
		Hasher: auth.NewBcryptHasher(0),
		Logger: log,
	})

	reminders := scheduler.NewReminderScheduler(postgres.NewTaskRepository(pool), 0, 0, log)
	reminders.Start(ctx)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
