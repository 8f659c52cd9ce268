package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"candidate_admin/internal/shared/ratelimiter"
)

func TestRateLimit(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.Use(ErrorHandler(false))
	r.POST("/login", RateLimit(ratelimiter.NewRateLimiter(2, time.Minute)), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusOK, send().Code)
	assert.Equal(t, http.StatusOK, send().Code)

	w := send()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"too many requests"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
