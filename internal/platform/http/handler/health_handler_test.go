package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// pingerFunc adapts a function to Pinger.
type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func setupRouter(db Pinger) *gin.Engine {
	h := NewHealthHandler(db)
	r := gin.New()
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)
	return r
}

func TestHealth(t *testing.T) {
	t.Parallel()

	healthy := pingerFunc(func(context.Context) error { return nil })
	broken := pingerFunc(func(context.Context) error { return errors.New("connection refused") })

	tests := []struct {
		name       string
		db         Pinger
		method     string
		wantStatus int
		wantBody   map[string]string
	}{
		{"GET healthy", healthy, http.MethodGet, http.StatusOK, map[string]string{"status": "ok", "database": "ok"}},
		{"GET without database", nil, http.MethodGet, http.StatusOK, map[string]string{"status": "ok", "database": "ok"}},
		{"GET database down", broken, http.MethodGet, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unavailable"}},
		{"HEAD healthy", healthy, http.MethodHead, http.StatusOK, nil},
		{"HEAD database down", broken, http.MethodHead, http.StatusServiceUnavailable, nil},
		{"OPTIONS skips the ping", broken, http.MethodOptions, http.StatusNoContent, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			setupRouter(tt.db).ServeHTTP(w, httptest.NewRequest(tt.method, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.wantBody == nil {
				assert.Empty(t, w.Body.String())
				return
			}
			var body map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantBody, body)
		})
	}
}
