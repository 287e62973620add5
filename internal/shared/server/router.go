package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ops-assistant/internal/agent"
	"ops-assistant/internal/services/health"
	"ops-assistant/internal/shared/config"
	"ops-assistant/internal/shared/metrics"
	"ops-assistant/internal/shared/server/middleware"
	"ops-assistant/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router mounts.
type RouterDeps struct {
	Config       config.Config
	AgentHandler *agent.Handler
	Health       *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	limited := r.Group("")
	if deps.Config.RateLimitRPS > 0 {
		limiter := middleware.NewRateLimiter(middleware.RateLimitRule{
			Rate:  deps.Config.RateLimitRPS,
			Burst: deps.Config.RateLimitBurst,
		}, nil)
		limited.Use(middleware.RateLimit(limiter))
	}

	api := limited.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		if deps.Health == nil {
			respond.JSON(c, http.StatusOK, gin.H{"ok": true})
			return
		}
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})

	if deps.AgentHandler != nil {
		deps.AgentHandler.RegisterRoutes(limited)
		deps.AgentHandler.RegisterAPIRoutes(api)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
