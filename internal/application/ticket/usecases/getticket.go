package usecases

import (
	"context"

	"ticketboard/internal/application/ticket/dto"
	"ticketboard/internal/domain/ticket"
	"ticketboard/internal/domain/user"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
	"ticketboard/internal/shared/services/markdown"
)

type GetTicketQuery struct {
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, ticketLoadError(err, query.TicketID)
	}

	result := dto.ToTicketDTO(t, displayNames(ctx, uc.userRepo, uc.logger, t))
	if html, err := uc.renderer.ToHTML(t.Description()); err != nil {
		uc.logger.Warnw("failed to render description", "ticket_id", t.ID(), "error", err)
	} else {
		result.DescriptionHTML = html
	}
	return result, nil
}
