// Package router builds the gin engine and mounts every route.
package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "candidate_admin/internal/feature/auth/transport/handler"
	candidatehandler "candidate_admin/internal/feature/candidates/transport/handler"
	platformhandler "candidate_admin/internal/platform/http/handler"
	"candidate_admin/internal/platform/http/middleware"
	jwtmw "candidate_admin/internal/platform/jwt"
	"candidate_admin/internal/platform/validation"
	"candidate_admin/internal/shared/ratelimiter"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health     *platformhandler.HealthHandler
	Auth       *authhandler.AuthHandler
	Candidates *candidatehandler.CandidateHandler
}

// Options configures the middleware stack.
type Options struct {
	JWTSecret       string
	AllowedOrigins  []string
	ShowErrorDetail bool
	// AuthRateLimit は /signup と /login のクライアントIPごとの1分あたり上限。0なら制限しない
	AuthRateLimit int
}

func NewRouter(h Handlers, opts Options) (*gin.Engine, error) {
	if err := validation.RegisterGinValidators(); err != nil {
		return nil, err
	}

	r := gin.Default()
	r.Use(
		middleware.RequestID(),
		cors.New(corsConfig(opts.AllowedOrigins)),
		middleware.ErrorHandler(opts.ShowErrorDetail),
	)

	// 認証不要
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	auth := r.Group("")
	if opts.AuthRateLimit > 0 {
		auth.Use(middleware.RateLimit(ratelimiter.NewRateLimiter(opts.AuthRateLimit, time.Minute)))
	}
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)

	// 認証必須のルート
	candidates := r.Group("/candidates")
	candidates.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		candidates.GET("", h.Candidates.List)
		candidates.GET("/all", h.Candidates.All)
		candidates.GET("/:id", h.Candidates.Get)
		candidates.POST("", h.Candidates.Create)
		candidates.PUT("/:id", h.Candidates.Update)
		candidates.DELETE("/:id", h.Candidates.Delete)
	}

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID, "Location"}
	return cfg
}
