package http

import (
	ticketUsecases "ticketboard/internal/application/ticket/usecases"
	userUsecases "ticketboard/internal/application/user/usecases"
)

type allUseCases struct {
	// Ticket
	createTicketUC   *ticketUsecases.CreateTicketUseCase
	getTicketUC      *ticketUsecases.GetTicketUseCase
	listTicketsUC    *ticketUsecases.ListTicketsUseCase
	changeStatusUC   *ticketUsecases.ChangeStatusUseCase
	changeAssigneeUC *ticketUsecases.ChangeAssigneeUseCase

	// User
	getCurrentUserUC *userUsecases.GetCurrentUserUseCase
	listUsersUC      *userUsecases.ListUsersUseCase
}

func newUseCases(c *Container) *allUseCases {
	repos := c.repos
	log := c.log.Named("ticket")

	return &allUseCases{
		createTicketUC: ticketUsecases.NewCreateTicketUseCase(repos.ticketRepo, repos.userRepo, c.renderer, log),
		getTicketUC:    ticketUsecases.NewGetTicketUseCase(repos.ticketRepo, repos.userRepo, c.renderer, log),
		listTicketsUC:  ticketUsecases.NewListTicketsUseCase(repos.ticketRepo, repos.userRepo, log),
		changeStatusUC: ticketUsecases.NewChangeStatusUseCase(
			repos.ticketRepo, repos.userRepo, c.enforcer, c.txManager, c.publisher, log,
		),
		changeAssigneeUC: ticketUsecases.NewChangeAssigneeUseCase(
			repos.ticketRepo, repos.userRepo, c.enforcer, c.txManager, c.publisher, log,
		),

		getCurrentUserUC: userUsecases.NewGetCurrentUserUseCase(repos.userRepo, c.log),
		listUsersUC:      userUsecases.NewListUsersUseCase(repos.userRepo, c.log),
	}
}
