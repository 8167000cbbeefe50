package ticket

import (
	"context"
	"errors"

	vo "ticketboard/internal/domain/ticket/valueobjects"
)

// ErrTicketNotFound is returned by repositories when no row matches.
var ErrTicketNotFound = errors.New("ticket not found")

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	// GetByIDForUpdate locks the row for the rest of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
}

type TicketFilter struct {
	Status     *vo.TicketStatus
	AssigneeID *uint
	ReporterID *uint
}
