package http

import (
	"gorm.io/gorm"

	"ticketboard/internal/domain/ticket"
	"ticketboard/internal/domain/user"
	"ticketboard/internal/infrastructure/repository"
)

type repositories struct {
	userRepo   user.Repository
	ticketRepo ticket.TicketRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:   repository.NewUserRepository(db),
		ticketRepo: repository.NewTicketRepository(db),
	}
}
