package ticket

import "time"

type TicketStatusChangedEvent struct {
	TicketID  uint
	OldStatus string
	NewStatus string
	ChangedBy uint
	Timestamp time.Time
}

func NewTicketStatusChangedEvent(
	ticketID uint,
	oldStatus string,
	newStatus string,
	changedBy uint,
	timestamp time.Time,
) TicketStatusChangedEvent {
	return TicketStatusChangedEvent{
		TicketID:  ticketID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ChangedBy: changedBy,
		Timestamp: timestamp,
	}
}

func (e TicketStatusChangedEvent) EventType() string { return "ticket.status_changed" }

type TicketAssigneeChangedEvent struct {
	TicketID      uint
	OldAssigneeID *uint
	NewAssigneeID *uint
	ChangedBy     uint
	Timestamp     time.Time
}

func NewTicketAssigneeChangedEvent(
	ticketID uint,
	oldAssigneeID *uint,
	newAssigneeID *uint,
	changedBy uint,
	timestamp time.Time,
) TicketAssigneeChangedEvent {
	return TicketAssigneeChangedEvent{
		TicketID:      ticketID,
		OldAssigneeID: oldAssigneeID,
		NewAssigneeID: newAssigneeID,
		ChangedBy:     changedBy,
		Timestamp:     timestamp,
	}
}

func (e TicketAssigneeChangedEvent) EventType() string { return "ticket.assignee_changed" }
