package board

import (
	"context"
	"sync"

	vo "ticketboard/internal/domain/ticket/valueobjects"
)

type mockBackend struct {
	mu sync.Mutex

	tickets            []Ticket
	listErr            error
	updateStatusFunc   func(ctx context.Context, id uint, status vo.TicketStatus) (*Ticket, error)
	updateAssigneeFunc func(ctx context.Context, id uint, assignee *uint) (*Ticket, error)

	listCalls   int
	updateCalls int
}

func (m *mockBackend) ListTickets(context.Context) ([]Ticket, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	out := make([]Ticket, len(m.tickets))
	copy(out, m.tickets)
	return out, nil
}

func (m *mockBackend) UpdateStatus(ctx context.Context, id uint, status vo.TicketStatus) (*Ticket, error) {
	m.mu.Lock()
	m.updateCalls++
	fn := m.updateStatusFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, id, status)
	}
	return m.applyStatus(id, status), nil
}

func (m *mockBackend) UpdateAssignee(ctx context.Context, id uint, assignee *uint) (*Ticket, error) {
	m.mu.Lock()
	m.updateCalls++
	fn := m.updateAssigneeFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, id, assignee)
	}
	return m.applyAssignee(id, assignee), nil
}

// applyStatus plays the server: it persists the change so the next list sees it.
func (m *mockBackend) applyStatus(id uint, status vo.TicketStatus) *Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tickets {
		if m.tickets[i].ID == id {
			m.tickets[i].Status = status.String()
			t := m.tickets[i]
			return &t
		}
	}
	return nil
}

func (m *mockBackend) applyAssignee(id uint, assignee *uint) *Ticket {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.tickets {
		if m.tickets[i].ID == id {
			m.tickets[i].AssigneeID = copyID(assignee)
			t := m.tickets[i]
			return &t
		}
	}
	return nil
}

func (m *mockBackend) calls() (list, update int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls, m.updateCalls
}

type recordingNotifier struct {
	mu        sync.Mutex
	successes []string
	failures  []string
}

func (n *recordingNotifier) Success(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.successes = append(n.successes, message)
}

func (n *recordingNotifier) Failure(message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.failures = append(n.failures, message)
}

func (n *recordingNotifier) lastFailure() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.failures) == 0 {
		return ""
	}
	return n.failures[len(n.failures)-1]
}

func uintPtr(v uint) *uint { return &v }

func ticketFixture(id uint, status string, reporter, assignee *uint) Ticket {
	return Ticket{
		ID:         id,
		Title:      "Ticket",
		Type:       "BUG",
		Status:     status,
		ReporterID: reporter,
		AssigneeID: assignee,
	}
}
