package usecases

import (
	"context"

	"ticketboard/internal/application/ticket/dto"
	"ticketboard/internal/domain/ticket"
	"ticketboard/internal/domain/user"
	"ticketboard/internal/shared/logger"
)

// displayNames resolves reporter and assignee names. A lookup failure is
// logged and yields no names rather than failing the read.
func displayNames(ctx context.Context, users user.Repository, log logger.Interface, tickets ...*ticket.Ticket) map[uint]string {
	ids := dto.PartyIDs(tickets...)
	names := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return names
	}

	found, err := users.GetByIDs(ctx, ids)
	if err != nil {
		log.Warnw("failed to resolve user names", "error", err, "count", len(ids))
		return names
	}
	for _, u := range found {
		names[u.ID()] = u.Name()
	}
	return names
}
