package ticket

import (
	"fmt"
	"time"
	"unicode/utf8"

	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/shared/authorization"
)

// Length limits in characters. The HTTP create request binds with the same
// numbers.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
)

type Ticket struct {
	id          uint
	title       string
	description string
	ticketType  vo.TicketType
	status      vo.TicketStatus
	reporterID  *uint
	assigneeID  *uint
	aiEnhanced  bool
	version     int
	createdAt   time.Time
	updatedAt   time.Time
	events      []interface{}
}

func NewTicket(
	title string,
	description string,
	ticketType vo.TicketType,
	reporterID uint,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", MaxTitleLength)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, fmt.Errorf("description exceeds maximum length of %d characters", MaxDescriptionLength)
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if reporterID == 0 {
		return nil, fmt.Errorf("reporter ID is required")
	}

	now := time.Now().UTC()
	return &Ticket{
		title:       title,
		description: description,
		ticketType:  ticketType,
		status:      vo.StatusOpen,
		reporterID:  &reporterID,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from storage. reporterID is nil when
// the reporting account has been deleted.
func ReconstructTicket(
	id uint,
	title string,
	description string,
	ticketType vo.TicketType,
	status vo.TicketStatus,
	reporterID *uint,
	assigneeID *uint,
	aiEnhanced bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type: %s", ticketType)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:          id,
		title:       title,
		description: description,
		ticketType:  ticketType,
		status:      status,
		reporterID:  reporterID,
		assigneeID:  assigneeID,
		aiEnhanced:  aiEnhanced,
		version:     version,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                 { return t.id }
func (t *Ticket) Title() string            { return t.title }
func (t *Ticket) Description() string      { return t.description }
func (t *Ticket) Type() vo.TicketType      { return t.ticketType }
func (t *Ticket) Status() vo.TicketStatus  { return t.status }
func (t *Ticket) ReporterID() *uint        { return t.reporterID }
func (t *Ticket) AssigneeID() *uint        { return t.assigneeID }
func (t *Ticket) AIEnhanced() bool         { return t.aiEnhanced }
func (t *Ticket) Version() int             { return t.version }
func (t *Ticket) CreatedAt() time.Time     { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time     { return t.updatedAt }
func (t *Ticket) GetEvents() []interface{} { return t.events }
func (t *Ticket) ClearEvents()             { t.events = nil }

// Parties exposes the identities the permission rule is evaluated against.
func (t *Ticket) Parties() authorization.TicketParties {
	return authorization.TicketParties{
		ReporterID: t.reporterID,
		AssigneeID: t.assigneeID,
	}
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// MarkAIEnhanced flags a ticket whose description came from a suggestion.
func (t *Ticket) MarkAIEnhanced() {
	t.aiEnhanced = true
}

// ChangeStatus moves the ticket to newStatus. Setting the current status
// again succeeds without bumping the version.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus, changedBy uint) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}

	old := t.status
	t.status = newStatus
	t.touch()
	t.events = append(t.events, NewTicketStatusChangedEvent(t.id, old.String(), newStatus.String(), changedBy, t.updatedAt))
	return nil
}

// ChangeAssignee sets or clears (nil) the assignee.
func (t *Ticket) ChangeAssignee(assigneeID *uint, changedBy uint) error {
	if assigneeID != nil && *assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}
	if sameAssignee(t.assigneeID, assigneeID) {
		return nil
	}

	old := t.assigneeID
	if assigneeID != nil {
		id := *assigneeID
		t.assigneeID = &id
	} else {
		t.assigneeID = nil
	}
	t.touch()
	t.events = append(t.events, NewTicketAssigneeChangedEvent(t.id, old, t.assigneeID, changedBy, t.updatedAt))
	return nil
}

func (t *Ticket) touch() {
	t.updatedAt = time.Now().UTC()
	t.version++
}

func sameAssignee(a, b *uint) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
