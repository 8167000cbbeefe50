package board

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/shared/logger"
)

func TestProject_PlacesTicketsByStatus(t *testing.T) {
	tickets := []Ticket{
		ticketFixture(1, "OPEN", uintPtr(2), nil),
		ticketFixture(2, "CLOSED", uintPtr(2), nil),
		ticketFixture(3, "IN_PROGRESS", nil, uintPtr(3)),
		ticketFixture(4, "OPEN", uintPtr(3), nil),
	}

	b := Project(tickets, logger.NewNopLogger())

	open := b.Column(vo.StatusOpen)
	require.Len(t, open, 2)
	assert.Equal(t, uint(1), open[0].ID)
	assert.Equal(t, uint(4), open[1].ID)
	assert.Len(t, b.Column(vo.StatusInProgress), 1)
	assert.Len(t, b.Column(vo.StatusClosed), 1)
	assert.Empty(t, b.Diagnostics())

	// Deleted reporter is tolerated.
	card, ok := b.Find(3)
	require.True(t, ok)
	assert.Nil(t, card.ReporterID)
}

func TestProject_UnknownStatusGoesToOpen(t *testing.T) {
	b := Project([]Ticket{ticketFixture(7, "ARCHIVED", nil, nil)}, logger.NewNopLogger())

	open := b.Column(vo.StatusOpen)
	require.Len(t, open, 1)
	assert.Equal(t, uint(7), open[0].ID)
	assert.Equal(t, vo.StatusOpen, open[0].Status)
	require.Len(t, b.Diagnostics(), 1)
	assert.Contains(t, b.Diagnostics()[0], "ARCHIVED")
}

func TestProject_Completeness(t *testing.T) {
	statuses := []string{"OPEN", "IN_PROGRESS", "CLOSED", "bogus", "closed"}
	for n := 0; n <= 40; n += 7 {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			tickets := make([]Ticket, n)
			for i := range tickets {
				tickets[i] = ticketFixture(uint(i+1), statuses[i%len(statuses)], nil, nil)
			}

			b := Project(tickets, logger.NewNopLogger())

			assert.Equal(t, n, b.Len())
			seen := make(map[uint]int)
			for _, s := range vo.Statuses {
				for _, card := range b.Column(s) {
					seen[card.ID]++
				}
			}
			assert.Len(t, seen, n)
			for id, count := range seen {
				assert.Equal(t, 1, count, "ticket %d", id)
			}
		})
	}
}

func TestProject_StableOrder(t *testing.T) {
	tickets := []Ticket{
		ticketFixture(3, "OPEN", nil, nil),
		ticketFixture(1, "OPEN", nil, nil),
		ticketFixture(2, "OPEN", nil, nil),
	}
	first := Project(tickets, logger.NewNopLogger())
	second := Project(tickets, logger.NewNopLogger())
	assert.True(t, first.Equal(second))
}

func TestBoard_ColumnIsACopy(t *testing.T) {
	b := Project([]Ticket{ticketFixture(1, "OPEN", nil, nil)}, logger.NewNopLogger())
	col := b.Column(vo.StatusOpen)
	col[0].Title = "changed"
	card, _ := b.Find(1)
	assert.Equal(t, "Ticket", card.Title)
}

func TestBoard_WithMoveLeavesReceiverUntouched(t *testing.T) {
	b := Project([]Ticket{
		ticketFixture(1, "OPEN", nil, nil),
		ticketFixture(2, "OPEN", nil, nil),
	}, logger.NewNopLogger())

	moved := b.withMove(1, vo.StatusClosed, -1)

	assert.Len(t, b.Column(vo.StatusOpen), 2)
	assert.Len(t, moved.Column(vo.StatusOpen), 1)
	require.Len(t, moved.Column(vo.StatusClosed), 1)
	assert.Equal(t, vo.StatusClosed, moved.Column(vo.StatusClosed)[0].Status)

	back := moved.withMove(1, vo.StatusOpen, 0)
	assert.True(t, back.Equal(b))
}
