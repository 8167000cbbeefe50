package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketStatus_AnyToAny(t *testing.T) {
	for _, from := range Statuses {
		for _, to := range Statuses {
			assert.True(t, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
	assert.False(t, StatusOpen.CanTransitionTo(TicketStatus("RESOLVED")))
	assert.False(t, TicketStatus("new").CanTransitionTo(StatusOpen))
}

func TestTicketStatus_Label(t *testing.T) {
	assert.Equal(t, "Open", StatusOpen.Label())
	assert.Equal(t, "In Progress", StatusInProgress.Label())
	assert.Equal(t, "Closed", StatusClosed.Label())
}

func TestNewTicketStatus(t *testing.T) {
	s, err := NewTicketStatus("in_progress")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, s)

	_, err = NewTicketStatus("pending")
	assert.Error(t, err)
}

func TestNewTicketType(t *testing.T) {
	tt, err := NewTicketType("bug")
	require.NoError(t, err)
	assert.Equal(t, TypeBug, tt)

	_, err = NewTicketType("epic")
	assert.Error(t, err)
}
