package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/poscentral/website-api/internal/api"
	"github.com/poscentral/website-api/internal/core/domain"
	"github.com/poscentral/website-api/internal/core/ports"
	"github.com/poscentral/website-api/internal/core/service"
	"github.com/poscentral/website-api/internal/infrastructure/config"
	"github.com/poscentral/website-api/internal/infrastructure/db/postgres"
	redisdb "github.com/poscentral/website-api/internal/infrastructure/db/redis"
	"github.com/poscentral/website-api/internal/infrastructure/ratelimit"
	"github.com/poscentral/website-api/internal/infrastructure/storage"
	"github.com/poscentral/website-api/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

// @title POS Central Website API
// @version 1.0
// @description Marketing site and admin dashboard API for a POS reseller.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	if cfg.InsecureSecrets() {
		log.Warn().Msg("JWT secrets are the built-in development defaults, set JWT_SECRET and JWT_REFRESH_SECRET")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	var limiter ports.LimiterStore
	switch cfg.RateLimit.Store {
	case "memory":
		mem := ratelimit.NewMemoryStore(cfg.RateLimit.Requests, cfg.RateLimit.Window)
		defer mem.Close()
		limiter = mem
	default:
		limiter = redisdb.NewLimiterStore(rdb, cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	images, err := storage.NewDiskStore(cfg.Upload.Dir, cfg.Upload.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to prepare upload directory")
	}

	if err := seedAdmin(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("failed to seed initial admin")
	}

	e := api.NewRouter(db, rdb, cfg, limiter, images, images.Dir(), log)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown was not clean")
	}
}

// seedAdmin creates the first super_admin account from ADMIN_EMAIL and
// ADMIN_PASSWORD when no users exist yet. A no-op otherwise.
func seedAdmin(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(&domain.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	users := service.NewUserService(postgres.NewUserRepository(db), log)
	_, err := users.Create(ctx, ports.CreateUserInput{
		Name:     "Administrator",
		Email:    email,
		Password: password,
		Role:     domain.RoleSuperAdmin,
	})
	if err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("seeded initial super_admin account")
	return nil
}
