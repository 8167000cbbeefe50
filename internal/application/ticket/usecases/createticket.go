package usecases

import (
	"context"

	"ticketboard/internal/application/ticket/dto"
	"ticketboard/internal/domain/ticket"
	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/domain/user"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
	"ticketboard/internal/shared/services/markdown"
)

type CreateTicketCommand struct {
	Title       string
	Description string
	Type        string
	ReporterID  uint
	// AIEnhanced marks a description that came from a generated suggestion.
	AIEnhanced bool
}

type CreateTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	renderer   markdown.Renderer
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		renderer:   renderer,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.ReporterID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}

	ticketType, err := vo.NewTicketType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError("invalid ticket type", cmd.Type)
	}

	title := uc.renderer.PlainText(cmd.Title)
	t, err := ticket.NewTicket(title, cmd.Description, ticketType, cmd.ReporterID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.AIEnhanced {
		t.MarkAIEnhanced()
	}

	if err := uc.ticketRepo.Save(ctx, t); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewInternalError("failed to create ticket")
	}

	uc.logger.Infow("ticket created", "ticket_id", t.ID(), "reporter_id", cmd.ReporterID)

	return dto.ToTicketDTO(t, displayNames(ctx, uc.userRepo, uc.logger, t)), nil
}
