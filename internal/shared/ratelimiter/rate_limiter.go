// Package ratelimiter は一定時間あたりの操作回数をキーごとに制限します。
package ratelimiter

import (
	"sync"
	"time"
)

type window struct {
	count     int
	lastReset time.Time
}

// RateLimiter は固定ウィンドウ方式でキー（クライアントIPなど）ごとの回数を数えます。
type RateLimiter struct {
	limit    int           // interval あたりの上限
	interval time.Duration // どの単位でリセットするか
	now      func() time.Time

	mu      sync.Mutex
	windows map[string]*window
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
}

// Allow はkeyの今回の操作を数え、上限内ならtrueを返します。
// 上限を超えた場合はウィンドウがリセットされるまでの残り時間も返します。
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	// interval を過ぎたらカウントリセット
	if !ok || now.Sub(w.lastReset) >= rl.interval {
		w = &window{lastReset: now}
		rl.windows[key] = w
		rl.evictExpired(now)
	}

	w.count++
	if w.count > rl.limit {
		return false, rl.interval - now.Sub(w.lastReset)
	}
	return true, 0
}

// evictExpired は期限切れのウィンドウを削除します。呼び出し側でロックを保持していること。
func (rl *RateLimiter) evictExpired(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.lastReset) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}
