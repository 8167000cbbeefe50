package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "ticketboard/internal/interfaces/http/handlers/user"
	"ticketboard/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(api *gin.RouterGroup, cfg *UserRouteConfig) {
	users := api.Group("/users")
	users.Use(cfg.AuthMiddleware.RequireAuth())
	{
		users.GET("", cfg.UserHandler.ListUsers)
		users.GET("/me", cfg.UserHandler.GetCurrentUser)
	}
}
