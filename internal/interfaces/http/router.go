package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ticketboard/internal/infrastructure/ratelimit"
	"ticketboard/internal/interfaces/http/middleware"
	"ticketboard/internal/interfaces/http/routes"
	"ticketboard/internal/shared/constants"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

func NewRouter(c *Container) *Router {
	return &Router{Container: c}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.log.Named("http")))
	r.engine.Use(middleware.Recovery(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	var mutationLimit gin.HandlerFunc
	if r.rateLimiter != nil {
		mutationLimit = middleware.MutationRateLimit(
			r.rateLimiter,
			ratelimit.PerMinute(r.cfg.RateLimit.MutationsPerMinute),
			r.log,
		)
	}

	api := r.engine.Group(constants.APIVersionPrefix)
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  r.hdlrs.ticketHandler,
		AuthMiddleware: r.authMiddleware,
		MutationLimit:  mutationLimit,
	})
	routes.SetupUserRoutes(api, &routes.UserRouteConfig{
		UserHandler:    r.hdlrs.userHandler,
		AuthMiddleware: r.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
