package board

import (
	"fmt"

	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/shared/logger"
)

// Project places each ticket in the column of its status, keeping input
// order within a column. A ticket with an unknown status goes to OPEN and is
// recorded as a diagnostic; no ticket is dropped.
func Project(tickets []Ticket, log logger.Interface) *Board {
	b := Empty()
	for _, t := range tickets {
		status, err := vo.NewTicketStatus(t.Status)
		if err != nil {
			msg := fmt.Sprintf("ticket %d has unknown status %q, shown as %s", t.ID, t.Status, vo.StatusOpen)
			b.diagnostics = append(b.diagnostics, msg)
			log.Warnw("unknown ticket status", "ticket_id", t.ID, "status", t.Status)
			status = vo.StatusOpen
		}
		b.columns[status] = append(b.columns[status], toSummary(t, status))
	}
	return b
}

func toSummary(t Ticket, status vo.TicketStatus) Summary {
	s := Summary{
		ID:         t.ID,
		Title:      t.Title,
		Type:       t.Type,
		Status:     status,
		ReporterID: copyID(t.ReporterID),
		AssigneeID: copyID(t.AssigneeID),
		AIEnhanced: t.AIEnhanced,
	}
	if t.AssigneeName != nil {
		s.AssigneeName = *t.AssigneeName
	}
	return s
}
