package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"ticketboard/internal/board"
	vo "ticketboard/internal/domain/ticket/valueobjects"
)

type fakeBackend struct {
	mu          sync.Mutex
	tickets     []board.Ticket
	updateCalls int
}

func (f *fakeBackend) ListTickets(context.Context) ([]board.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]board.Ticket(nil), f.tickets...), nil
}

func (f *fakeBackend) UpdateStatus(_ context.Context, id uint, status vo.TicketStatus) (*board.Ticket, error) {
	return f.update(id, func(t *board.Ticket) { t.Status = status.String() })
}

func (f *fakeBackend) UpdateAssignee(_ context.Context, id uint, assignee *uint) (*board.Ticket, error) {
	return f.update(id, func(t *board.Ticket) {
		t.AssigneeID = nil
		if assignee != nil {
			v := *assignee
			t.AssigneeID = &v
		}
	})
}

func (f *fakeBackend) update(id uint, fn func(*board.Ticket)) (*board.Ticket, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updateCalls++
	for i := range f.tickets {
		if f.tickets[i].ID == id {
			fn(&f.tickets[i])
			t := f.tickets[i]
			return &t, nil
		}
	}
	return nil, &board.MutationError{Kind: board.KindNotFound}
}

func (f *fakeBackend) status(id uint) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tickets {
		if t.ID == id {
			return t.Status
		}
	}
	return ""
}

func (f *fakeBackend) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.updateCalls
}

func uintPtr(v uint) *uint { return &v }

// recordingSender stands in for *tea.Program. It blocks until released so
// tests can pile up messages behind a slow event loop.
type recordingSender struct {
	mu      sync.Mutex
	msgs    []tea.Msg
	release chan struct{}
	got     chan struct{}
}

func newRecordingSender() *recordingSender {
	return &recordingSender{release: make(chan struct{}), got: make(chan struct{}, 1024)}
}

func (r *recordingSender) Send(msg tea.Msg) {
	<-r.release
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
	r.got <- struct{}{}
}

func (r *recordingSender) received() []tea.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]tea.Msg(nil), r.msgs...)
}
