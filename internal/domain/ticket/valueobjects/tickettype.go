package valueobjects

import (
	"fmt"
	"strings"
)

type TicketType string

const (
	TypeBug         TicketType = "BUG"
	TypeImprovement TicketType = "IMPROVEMENT"
	TypeTask        TicketType = "TASK"
)

func (t TicketType) String() string {
	return string(t)
}

func (t TicketType) IsValid() bool {
	switch t {
	case TypeBug, TypeImprovement, TypeTask:
		return true
	}
	return false
}

func NewTicketType(s string) (TicketType, error) {
	t := TicketType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid ticket type: %s", s)
	}
	return t, nil
}
