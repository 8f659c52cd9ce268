// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"candidate_admin/internal/feature/candidates/domain/entity"
	"candidate_admin/internal/feature/candidates/usecase"
	"candidate_admin/internal/shared/pagination"
)

// CachingCandidateRepository decorates a CandidateStore with Redis caching.
// Reads go through the cache; every write invalidates the affected keys.
type CachingCandidateRepository struct {
	inner     usecase.CandidateStore
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.CandidateStore = (*CachingCandidateRepository)(nil)

// NewCachingCandidateRepository decorates a CandidateStore with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "candidates".
// A nil rdb disables caching entirely.
func NewCachingCandidateRepository(rdb *redis.Client, ttl time.Duration, inner usecase.CandidateStore, namespace string) *CachingCandidateRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "candidates"
	}
	return &CachingCandidateRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Add stores the candidate and drops the cached lists.
func (c *CachingCandidateRepository) Add(ctx context.Context, candidate *entity.Candidate) (uint, error) {
	id, err := c.inner.Add(ctx, candidate)
	if err != nil {
		return 0, err
	}
	c.invalidate(ctx, c.listPrefix())
	return id, nil
}

// Update writes the candidate and drops the cached lists and the candidate's own keys.
func (c *CachingCandidateRepository) Update(ctx context.Context, candidate *entity.Candidate) error {
	if err := c.inner.Update(ctx, candidate); err != nil {
		return err
	}
	c.invalidate(ctx, c.listPrefix(), c.itemPrefix(candidate.ID))
	return nil
}

// Delete removes the candidate and drops the cached lists and the candidate's own keys.
func (c *CachingCandidateRepository) Delete(ctx context.Context, candidate *entity.Candidate) error {
	if err := c.inner.Delete(ctx, candidate); err != nil {
		return err
	}
	c.invalidate(ctx, c.listPrefix(), c.itemPrefix(candidate.ID))
	return nil
}

// GetByID retrieves a candidate, checking cache first then falling back to the database.
// Misses of the underlying store are not cached.
func (c *CachingCandidateRepository) GetByID(ctx context.Context, id uint, withExperiences bool) (*entity.Candidate, error) {
	if c.rdb == nil {
		return c.inner.GetByID(ctx, id, withExperiences)
	}

	key := c.itemKey(id, withExperiences)

	var cached entity.Candidate
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	out, err := c.inner.GetByID(ctx, id, withExperiences)
	if err != nil || out == nil {
		return out, err
	}
	c.store(ctx, key, out)
	return out, nil
}

// GetAll retrieves every candidate, checking cache first then falling back to the database.
func (c *CachingCandidateRepository) GetAll(ctx context.Context, withExperiences bool) ([]entity.Candidate, error) {
	if c.rdb == nil {
		return c.inner.GetAll(ctx, withExperiences)
	}

	key := c.listKey(withExperiences)

	var cached []entity.Candidate
	if c.load(ctx, key, &cached) {
		return cached, nil
	}

	out, err := c.inner.GetAll(ctx, withExperiences)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

// GetPage slices the cached full list in memory. Without Redis the page is
// read from the underlying store with a count and a bounded query.
func (c *CachingCandidateRepository) GetPage(ctx context.Context, pageIndex, pageSize int, withExperiences bool) (*pagination.PaginatedList[entity.Candidate], error) {
	if c.rdb == nil {
		return c.inner.GetPage(ctx, pageIndex, pageSize, withExperiences)
	}

	all, err := c.GetAll(ctx, withExperiences)
	if err != nil {
		return nil, err
	}
	return pagination.Create(all, pageIndex, pageSize)
}

// load reads key into dst. Corrupted entries are deleted and reported as a miss.
func (c *CachingCandidateRepository) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		slog.Warn("dropping corrupted cache entry", "key", key, "error", err)
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// store writes v under key (best effort).
func (c *CachingCandidateRepository) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
}

// invalidate deletes every key under the given prefixes (best effort).
func (c *CachingCandidateRepository) invalidate(ctx context.Context, prefixes ...string) {
	if c.rdb == nil {
		return
	}
	for _, prefix := range prefixes {
		if err := c.deleteByPattern(ctx, prefix+"*"); err != nil {
			slog.Warn("cache invalidation failed", "prefix", prefix, "error", err)
		}
	}
}

func (c *CachingCandidateRepository) listKey(withExperiences bool) string {
	return fmt.Sprintf("%s%s", c.listPrefix(), flag(withExperiences))
}

func (c *CachingCandidateRepository) itemKey(id uint, withExperiences bool) string {
	return fmt.Sprintf("%s%s", c.itemPrefix(id), flag(withExperiences))
}

func (c *CachingCandidateRepository) listPrefix() string {
	return c.namespace + ":all:"
}

func (c *CachingCandidateRepository) itemPrefix(id uint) string {
	return fmt.Sprintf("%s:id:%d:", c.namespace, id)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingCandidateRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// flag renders the eager-loading switch as a key segment.
func flag(withExperiences bool) string {
	if withExperiences {
		return "exp"
	}
	return "bare"
}
