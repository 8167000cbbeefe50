package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type TicketStatus string

const (
	StatusOpen       TicketStatus = "OPEN"
	StatusInProgress TicketStatus = "IN_PROGRESS"
	StatusClosed     TicketStatus = "CLOSED"
)

// Statuses lists every status in board column order.
var Statuses = []TicketStatus{StatusOpen, StatusInProgress, StatusClosed}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	switch ts {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	}
	return false
}

// CanTransitionTo is true for every pair of valid statuses, including a
// status to itself. There is no directed workflow between columns.
func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	return ts.IsValid() && newStatus.IsValid()
}

// Label is the human form used in notifications, e.g. "In Progress".
// A Caser is stateful, so one is built per call.
func (ts TicketStatus) Label() string {
	return cases.Title(language.English).String(strings.ReplaceAll(strings.ToLower(string(ts)), "_", " "))
}

func NewTicketStatus(s string) (TicketStatus, error) {
	ts := TicketStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !ts.IsValid() {
		return "", fmt.Errorf("invalid ticket status: %s", s)
	}
	return ts, nil
}
