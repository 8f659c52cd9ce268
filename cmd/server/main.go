package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"candidate_admin/internal/app/di"
	"candidate_admin/internal/app/router"
	authentity "candidate_admin/internal/feature/auth/domain/entity"
	candidateadapters "candidate_admin/internal/feature/candidates/adapters"
	"candidate_admin/internal/platform/config"
	"candidate_admin/internal/platform/db"
	platformhandler "candidate_admin/internal/platform/http/handler"
	"candidate_admin/internal/platform/logger"
	platformredis "candidate_admin/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	// db
	gdb, err := db.OpenDB(cfg.DB)
	if err != nil {
		slog.Error("failed to connect database", "driver", cfg.DB.Driver, "error", err)
		os.Exit(1)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		slog.Error("failed to access sql.DB", "error", err)
		os.Exit(1)
	}
	defer func() { _ = sqlDB.Close() }()

	if cfg.RunMigrations {
		models := append(candidateadapters.Models(), &authentity.Admin{})
		if err := db.Migrate(gdb, models...); err != nil {
			slog.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(context.Background(), cfg.Redis); err != nil {
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				slog.Error("failed to close Redis client", "error", err)
			}
		}()
	}

	r, err := router.NewRouter(router.Handlers{
		Health:     platformhandler.NewHealthHandler(sqlDB),
		Auth:       di.NewAuthHandler(gdb, cfg.JWTSecret, cfg.JWTExpiration),
		Candidates: di.NewCandidateHandler(gdb, rdb, cfg.CacheTTL),
	}, router.Options{
		JWTSecret:       cfg.JWTSecret,
		AllowedOrigins:  cfg.AllowedOrigins,
		ShowErrorDetail: !cfg.Release(),
		AuthRateLimit:   cfg.AuthRateLimit,
	})
	if err != nil {
		slog.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	slog.Info("server starting", "port", cfg.Port, "driver", cfg.DB.Driver, "cache", rdb != nil)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
