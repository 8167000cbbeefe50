package authorization

// Actor is the acting user context. It is read-only once built and is passed
// explicitly to every permission decision.
type Actor struct {
	ID   uint
	Role UserRole
}

func NewActor(id uint, role UserRole) *Actor {
	return &Actor{ID: id, Role: role}
}

// TicketParties is the part of a ticket the permission rule depends on.
// Either reference may be nil: unassigned, or the reporter account is gone.
type TicketParties struct {
	ReporterID *uint
	AssigneeID *uint
}

func (a *Actor) authenticated() bool {
	return a != nil && a.ID != 0
}

func (a *Actor) is(id *uint) bool {
	return id != nil && *id == a.ID
}

// CanMutate reports whether actor may change the status of a ticket.
// Admins may change any ticket; anyone else must be its reporter or assignee.
// The server evaluates the same rule through its casbin model and the two
// must agree for every input.
func CanMutate(actor *Actor, t TicketParties) bool {
	if !actor.authenticated() {
		return false
	}
	if actor.Role.IsAdmin() {
		return true
	}
	return actor.is(t.ReporterID) || actor.is(t.AssigneeID)
}

// CanAssign reports whether actor may set the ticket's assignee to proposed
// (nil unassigns). Non-admins may only take a ticket themselves or release
// one they currently hold.
func CanAssign(actor *Actor, t TicketParties, proposed *uint) bool {
	if !actor.authenticated() {
		return false
	}
	if actor.Role.IsAdmin() {
		return true
	}
	if proposed != nil {
		return *proposed == actor.ID
	}
	return actor.is(t.AssigneeID)
}
