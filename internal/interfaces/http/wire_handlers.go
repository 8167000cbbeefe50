package http

import (
	ticketHandlers "ticketboard/internal/interfaces/http/handlers/ticket"
	userHandlers "ticketboard/internal/interfaces/http/handlers/user"
	"ticketboard/internal/shared/logger"
)

type allHandlers struct {
	ticketHandler *ticketHandlers.TicketHandler
	userHandler   *userHandlers.UserHandler
}

func newHandlers(ucs *allUseCases, log logger.Interface) *allHandlers {
	return &allHandlers{
		ticketHandler: ticketHandlers.NewTicketHandler(
			ucs.createTicketUC,
			ucs.getTicketUC,
			ucs.listTicketsUC,
			ucs.changeStatusUC,
			ucs.changeAssigneeUC,
			log,
		),
		userHandler: userHandlers.NewUserHandler(ucs.getCurrentUserUC, ucs.listUsersUC, log),
	}
}
