// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger はデータベース接続の疎通確認を行います。*sql.DBが満たします。
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler は /healthz エンドポイントを処理します。
type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

// NewHealthHandler はHealthHandlerを生成します。dbがnilの場合は疎通確認を省略します。
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

// Health はサービスとデータベースの状態を返します。
// キャッシュを防止し、HEADは200、OPTIONSは204を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	if c.Request.Method == http.MethodOptions {
		c.Status(http.StatusNoContent)
		return
	}

	status, dbState := http.StatusOK, "ok"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			slog.Warn("health check: database unreachable", "error", err)
			status, dbState = http.StatusServiceUnavailable, "unavailable"
		}
	}

	if c.Request.Method == http.MethodHead {
		c.Status(status)
		return
	}
	c.JSON(status, gin.H{"status": statusText(status), "database": dbState})
}

func statusText(status int) string {
	if status == http.StatusOK {
		return "ok"
	}
	return "degraded"
}
