package permission

import "ticketboard/internal/shared/authorization"

// Actions evaluated by the ticket enforcer.
const (
	ActionMutate = "mutate"
	ActionAssign = "assign"
)

// TicketEnforcer is the server-side authority for ticket mutations.
type TicketEnforcer interface {
	CanMutate(actor *authorization.Actor, t authorization.TicketParties) (bool, error)
	// CanAssign checks setting the assignee to proposed; nil means unassign.
	CanAssign(actor *authorization.Actor, t authorization.TicketParties, proposed *uint) (bool, error)
}
