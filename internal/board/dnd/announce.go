package dnd

import (
	"fmt"

	vo "ticketboard/internal/domain/ticket/valueobjects"
)

// MsgDragCancelled starts every cancellation announcement.
const MsgDragCancelled = "Drag cancelled."

// cardLabel is `#7 "Title"`; each message supplies the noun in front.
func cardLabel(c Card) string {
	if c.Title == "" {
		return fmt.Sprintf("#%d", c.ID)
	}
	return fmt.Sprintf("#%d %q", c.ID, c.Title)
}

func grabbedMessage(c Card) string {
	return fmt.Sprintf("Picked up ticket %s from %s.", cardLabel(c), c.Status.Label())
}

func cannotMoveMessage(c Card) string {
	return fmt.Sprintf("You can't move ticket %s right now.", cardLabel(c))
}

func overMessage(c Card, column vo.TicketStatus) string {
	return fmt.Sprintf("Ticket %s is over %s.", cardLabel(c), column.Label())
}

func outsideMessage(c Card) string {
	return fmt.Sprintf("Ticket %s is not over a column.", cardLabel(c))
}

func droppedMessage(c Card, column vo.TicketStatus) string {
	return fmt.Sprintf("Ticket %s dropped into %s.", cardLabel(c), column.Label())
}

func cancelledMessage(c Card) string {
	return fmt.Sprintf("%s Ticket %s returned to %s.", MsgDragCancelled, cardLabel(c), c.Status.Label())
}
