package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "ticketboard/internal/interfaces/http/handlers/ticket"
	"ticketboard/internal/interfaces/http/middleware"
)

type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
	// MutationLimit may be nil when rate limiting is disabled.
	MutationLimit gin.HandlerFunc
}

func SetupTicketRoutes(api *gin.RouterGroup, config *TicketRouteConfig) {
	mutations := []gin.HandlerFunc{}
	if config.MutationLimit != nil {
		mutations = append(mutations, config.MutationLimit)
	}

	tickets := api.Group("/tickets")
	tickets.Use(config.AuthMiddleware.RequireAuth())
	{
		tickets.GET("", config.TicketHandler.ListTickets)
		tickets.POST("", append(mutations, config.TicketHandler.CreateTicket)...)

		tickets.PATCH("/:id/status", append(mutations, config.TicketHandler.UpdateStatus)...)
		tickets.PATCH("/:id/assignee", append(mutations, config.TicketHandler.UpdateAssignee)...)

		tickets.GET("/:id", config.TicketHandler.GetTicket)
	}
}
