package dto

import (
	"time"

	"ticketboard/internal/domain/ticket"
)

// TicketDTO is the wire shape of a ticket. Reporter and assignee fields are
// null when the reference is absent or the account no longer exists.
type TicketDTO struct {
	ID              uint      `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DescriptionHTML string    `json:"description_html,omitempty"`
	Type            string    `json:"type"`
	Status          string    `json:"status"`
	ReporterID      *uint     `json:"reporter_id"`
	ReporterName    *string   `json:"reporter_name"`
	AssigneeID      *uint     `json:"assignee_id"`
	AssigneeName    *string   `json:"assignee_name"`
	AIEnhanced      bool      `json:"ai_enhanced"`
	Version         int       `json:"version"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToTicketDTO converts a ticket, joining display names from names (user id to name).
func ToTicketDTO(t *ticket.Ticket, names map[uint]string) *TicketDTO {
	if t == nil {
		return nil
	}
	return &TicketDTO{
		ID:           t.ID(),
		Title:        t.Title(),
		Description:  t.Description(),
		Type:         t.Type().String(),
		Status:       t.Status().String(),
		ReporterID:   t.ReporterID(),
		ReporterName: lookupName(t.ReporterID(), names),
		AssigneeID:   t.AssigneeID(),
		AssigneeName: lookupName(t.AssigneeID(), names),
		AIEnhanced:   t.AIEnhanced(),
		Version:      t.Version(),
		CreatedAt:    t.CreatedAt(),
		UpdatedAt:    t.UpdatedAt(),
	}
}

func lookupName(id *uint, names map[uint]string) *string {
	if id == nil {
		return nil
	}
	name, ok := names[*id]
	if !ok {
		return nil
	}
	return &name
}

// PartyIDs collects the distinct reporter and assignee ids of tickets.
func PartyIDs(tickets ...*ticket.Ticket) []uint {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0, len(tickets)*2)
	add := func(id *uint) {
		if id == nil {
			return
		}
		if _, ok := seen[*id]; ok {
			return
		}
		seen[*id] = struct{}{}
		ids = append(ids, *id)
	}
	for _, t := range tickets {
		add(t.ReporterID())
		add(t.AssigneeID())
	}
	return ids
}
