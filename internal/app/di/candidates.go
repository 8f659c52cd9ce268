// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"candidate_admin/internal/feature/candidates/adapters"
	"candidate_admin/internal/feature/candidates/transport/handler"
	"candidate_admin/internal/feature/candidates/usecase"
	"candidate_admin/internal/platform/cache"
)

// NewCandidateStore creates a CandidateStore implementation.
// If Redis is available, the GORM repository is wrapped in a read-through cache.
func NewCandidateStore(db *gorm.DB, rdb *redis.Client, ttl time.Duration) usecase.CandidateStore {
	repo := adapters.NewCandidateRepository(db)
	if rdb == nil {
		slog.Info("candidate cache disabled")
		return repo
	}
	return cache.NewCachingCandidateRepository(rdb, ttl, repo, "candidates")
}

// NewCandidateHandler wires store, dispatcher and HTTP handler.
func NewCandidateHandler(db *gorm.DB, rdb *redis.Client, ttl time.Duration) *handler.CandidateHandler {
	return handler.NewCandidateHandler(usecase.NewDispatcher(NewCandidateStore(db, rdb, ttl)))
}
