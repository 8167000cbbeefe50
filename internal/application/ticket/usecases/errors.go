package usecases

import (
	stderrors "errors"
	"fmt"

	"ticketboard/internal/domain/ticket"
	"ticketboard/internal/shared/errors"
)

func ticketLoadError(err error, ticketID uint) error {
	if stderrors.Is(err, ticket.ErrTicketNotFound) {
		return errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", ticketID))
	}
	return errors.NewInternalError("failed to load ticket")
}
