package usecases

import (
	"context"

	"ticketboard/internal/application/ticket/dto"
	"ticketboard/internal/domain/ticket"
	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/domain/user"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
)

// ListTicketsQuery filters are optional; the zero value returns every ticket.
type ListTicketsQuery struct {
	Status     string
	AssigneeID *uint
	ReporterID *uint
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	filter := ticket.TicketFilter{
		AssigneeID: query.AssigneeID,
		ReporterID: query.ReporterID,
	}
	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError("invalid status filter", query.Status)
		}
		filter.Status = &status
	}

	tickets, err := uc.ticketRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	names := displayNames(ctx, uc.userRepo, uc.logger, tickets...)
	result := make([]*dto.TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		result = append(result, dto.ToTicketDTO(t, names))
	}
	return result, nil
}
