// Package board holds the client side of the ticket board: the projection
// of tickets into status columns and the coordinator that applies ticket
// mutations optimistically and reconciles them with the server.
package board

import (
	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/shared/authorization"
)

// Ticket is a ticket as returned by the API. Status is kept as the raw wire
// value so an unknown status reaches the projection instead of failing the
// whole fetch.
type Ticket struct {
	ID           uint    `json:"id"`
	Title        string  `json:"title"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	ReporterID   *uint   `json:"reporter_id"`
	AssigneeID   *uint   `json:"assignee_id"`
	AssigneeName *string `json:"assignee_name"`
	AIEnhanced   bool    `json:"ai_enhanced"`
}

// Summary is the card view of a ticket.
type Summary struct {
	ID           uint
	Title        string
	Type         string
	Status       vo.TicketStatus
	ReporterID   *uint
	AssigneeID   *uint
	AssigneeName string
	AIEnhanced   bool
}

func (s Summary) Parties() authorization.TicketParties {
	return authorization.TicketParties{ReporterID: s.ReporterID, AssigneeID: s.AssigneeID}
}

// clone copies the pointer fields so summaries never share state across boards.
func (s Summary) clone() Summary {
	s.ReporterID = copyID(s.ReporterID)
	s.AssigneeID = copyID(s.AssigneeID)
	return s
}

func copyID(id *uint) *uint {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func sameID(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
