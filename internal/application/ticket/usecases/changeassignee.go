package usecases

import (
	"context"
	"fmt"

	"ticketboard/internal/application/ticket/dto"
	"ticketboard/internal/domain/permission"
	"ticketboard/internal/domain/ticket"
	"ticketboard/internal/domain/user"
	"ticketboard/internal/shared/authorization"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
)

// ChangeAssigneeCommand sets AssigneeID on a ticket; nil unassigns.
type ChangeAssigneeCommand struct {
	TicketID   uint
	AssigneeID *uint
	Actor      *authorization.Actor
}

type ChangeAssigneeUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	enforcer   permission.TicketEnforcer
	txManager  TransactionRunner
	publisher  EventPublisher
	logger     logger.Interface
}

func NewChangeAssigneeUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	enforcer permission.TicketEnforcer,
	txManager TransactionRunner,
	publisher EventPublisher,
	logger logger.Interface,
) *ChangeAssigneeUseCase {
	return &ChangeAssigneeUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		enforcer:   enforcer,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ChangeAssigneeUseCase) Execute(ctx context.Context, cmd ChangeAssigneeCommand) (*dto.TicketDTO, error) {
	if cmd.Actor == nil || cmd.Actor.ID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.AssigneeID != nil && *cmd.AssigneeID == 0 {
		return nil, errors.NewValidationError("assignee ID must be positive or null")
	}

	uc.logger.Infow("executing change assignee use case",
		"ticket_id", cmd.TicketID,
		"assignee_id", cmd.AssigneeID,
		"actor_id", cmd.Actor.ID)

	var updated *ticket.Ticket
	err := uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return ticketLoadError(err, cmd.TicketID)
		}

		allowed, err := uc.enforcer.CanAssign(cmd.Actor, t.Parties(), cmd.AssigneeID)
		if err != nil {
			return errors.NewInternalError("failed to evaluate permission")
		}
		if !allowed {
			return errors.NewForbiddenError("you don't have permission to change this ticket's assignee")
		}

		if cmd.AssigneeID != nil {
			exists, err := uc.userRepo.Exists(txCtx, *cmd.AssigneeID)
			if err != nil {
				return errors.NewInternalError("failed to check assignee")
			}
			if !exists {
				return errors.NewValidationError(fmt.Sprintf("assignee %d does not exist", *cmd.AssigneeID))
			}
		}

		if err := t.ChangeAssignee(cmd.AssigneeID, cmd.Actor.ID); err != nil {
			return errors.NewValidationError(err.Error())
		}
		if len(t.GetEvents()) > 0 {
			if err := uc.ticketRepo.Update(txCtx, t); err != nil {
				uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
				return errors.NewInternalError("failed to update ticket")
			}
		}

		updated = t
		return nil
	})
	if err != nil {
		uc.logger.Warnw("change assignee rejected", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.publisher.Publish(ctx, updated.GetEvents())
	updated.ClearEvents()

	return dto.ToTicketDTO(updated, displayNames(ctx, uc.userRepo, uc.logger, updated)), nil
}
