package handler

import (
	"creator-paygate/internal/adapter/http/middleware"
	"creator-paygate/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	GateSvc        ports.GateService
	ContentSvc     ports.ContentService
	AuthSvc        ports.AuthService
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	ExposeMetrics  bool
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies configured stores)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	if deps.ExposeMetrics {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	authHandler := NewAuthHandler(deps.AuthSvc)
	contentHandler := NewContentHandler(deps.GateSvc, deps.ContentSvc)

	// API v1 routes
	v1 := r.Group("/api/v1")

	// JWT middleware is shared by the /auth/me and content-management routes.
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", rl("auth_login"), authHandler.Login)
		auth.GET("/me", jwtAuth, authHandler.Me)
	}

	// --- Public, pay-gated content routes ---
	content := r.Group("/content")
	{
		content.GET("/:id", rl("content"), contentHandler.Get)
		content.GET("/:id/download", rl("content"), contentHandler.Download)
		content.GET("/:id/meta", rl("content"), contentHandler.GetMeta)
	}

	// --- JWT-authenticated creator routes ---
	manage := r.Group("/content", jwtAuth)
	{
		manage.GET("", rl("manage"), contentHandler.ListMine)
		manage.PATCH("/:id/payee", rl("manage"), contentHandler.UpdatePayee)
	}

	return r
}
