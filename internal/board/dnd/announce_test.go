package dnd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	vo "ticketboard/internal/domain/ticket/valueobjects"
)

func TestAnnouncementTexts(t *testing.T) {
	titled := Card{ID: 4, Title: "Fix login", Status: vo.StatusOpen}
	untitled := Card{ID: 9, Status: vo.StatusInProgress}

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"grabbed", grabbedMessage(titled), `Picked up ticket #4 "Fix login" from Open.`},
		{"grabbed untitled", grabbedMessage(untitled), `Picked up ticket #9 from In Progress.`},
		{"cannot move", cannotMoveMessage(untitled), `You can't move ticket #9 right now.`},
		{"over", overMessage(untitled, vo.StatusClosed), `Ticket #9 is over Closed.`},
		{"outside", outsideMessage(titled), `Ticket #4 "Fix login" is not over a column.`},
		{"dropped", droppedMessage(untitled, vo.StatusOpen), `Ticket #9 dropped into Open.`},
		{"cancelled", cancelledMessage(untitled), `Drag cancelled. Ticket #9 returned to In Progress.`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}
