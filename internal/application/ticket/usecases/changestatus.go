package usecases

import (
	"context"

	"ticketboard/internal/application/ticket/dto"
	"ticketboard/internal/domain/permission"
	"ticketboard/internal/domain/ticket"
	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/domain/user"
	"ticketboard/internal/shared/authorization"
	"ticketboard/internal/shared/errors"
	"ticketboard/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID  uint
	NewStatus string
	Actor     *authorization.Actor
}

// ChangeStatusUseCase loads, authorizes and persists a status change inside
// one transaction. Any status may follow any other; repeating the current
// status succeeds without writing.
type ChangeStatusUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	enforcer   permission.TicketEnforcer
	txManager  TransactionRunner
	publisher  EventPublisher
	logger     logger.Interface
}

func NewChangeStatusUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	enforcer permission.TicketEnforcer,
	txManager TransactionRunner,
	publisher EventPublisher,
	logger logger.Interface,
) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		enforcer:   enforcer,
		txManager:  txManager,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*dto.TicketDTO, error) {
	if cmd.Actor == nil || cmd.Actor.ID == 0 {
		return nil, errors.NewUnauthorizedError("authentication required")
	}
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	newStatus, err := vo.NewTicketStatus(cmd.NewStatus)
	if err != nil {
		return nil, errors.NewValidationError("invalid status", cmd.NewStatus)
	}

	uc.logger.Infow("executing change status use case",
		"ticket_id", cmd.TicketID,
		"new_status", newStatus,
		"actor_id", cmd.Actor.ID)

	var updated *ticket.Ticket
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		t, err := uc.ticketRepo.GetByIDForUpdate(txCtx, cmd.TicketID)
		if err != nil {
			return ticketLoadError(err, cmd.TicketID)
		}

		allowed, err := uc.enforcer.CanMutate(cmd.Actor, t.Parties())
		if err != nil {
			return errors.NewInternalError("failed to evaluate permission")
		}
		if !allowed {
			return errors.NewForbiddenError("you don't have permission to change this ticket")
		}

		if err := t.ChangeStatus(newStatus, cmd.Actor.ID); err != nil {
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
		uc.logger.Warnw("change status rejected", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.publisher.Publish(ctx, updated.GetEvents())
	updated.ClearEvents()

	uc.logger.Infow("ticket status changed", "ticket_id", cmd.TicketID, "status", updated.Status())

	return dto.ToTicketDTO(updated, displayNames(ctx, uc.userRepo, uc.logger, updated)), nil
}
