package usecases

import (
	"context"
	"sync"
	"time"

	"ticketboard/internal/domain/ticket"
	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/domain/user"
	"ticketboard/internal/shared/authorization"
)

type mockTicketRepository struct {
	SaveFunc             func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc           func(ctx context.Context, t *ticket.Ticket) error
	GetByIDFunc          func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	GetByIDForUpdateFunc func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc             func(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error)

	updateCalls int
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	m.updateCalls++
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, ticket.ErrTicketNotFound
}

func (m *mockTicketRepository) GetByIDForUpdate(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, ticketID)
	}
	return m.GetByID(ctx, ticketID)
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

type mockUserRepository struct {
	users map[uint]*user.User
	err   error
}

func newMockUserRepository(users ...*user.User) *mockUserRepository {
	m := &mockUserRepository{users: make(map[uint]*user.User)}
	for _, u := range users {
		m.users[u.ID()] = u
	}
	return m
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	return m.err
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*user.User
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *mockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*user.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *mockUserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.users[id]
	return ok, nil
}

// oracleEnforcer answers with the shared permission rule.
type oracleEnforcer struct {
	err error
}

func (e *oracleEnforcer) CanMutate(actor *authorization.Actor, t authorization.TicketParties) (bool, error) {
	if e.err != nil {
		return false, e.err
	}
	return authorization.CanMutate(actor, t), nil
}

func (e *oracleEnforcer) CanAssign(actor *authorization.Actor, t authorization.TicketParties, proposed *uint) (bool, error) {
	if e.err != nil {
		return false, e.err
	}
	return authorization.CanAssign(actor, t, proposed), nil
}

type mockTxRunner struct {
	calls int
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type mockPublisher struct {
	mu     sync.Mutex
	events []interface{}
}

func (m *mockPublisher) Publish(ctx context.Context, events []interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
}

func uintPtr(v uint) *uint { return &v }

func testUser(id uint, name string, role authorization.UserRole) *user.User {
	return user.ReconstructUser(id, name, name+"@example.com", role, time.Now())
}

func testTicket(id uint, status vo.TicketStatus, reporter, assignee *uint) *ticket.Ticket {
	t, err := ticket.ReconstructTicket(
		id,
		"Test ticket",
		"Test description",
		vo.TypeBug,
		status,
		reporter,
		assignee,
		false,
		1,
		time.Now().Add(-time.Hour),
		time.Now().Add(-time.Hour),
	)
	if err != nil {
		panic(err)
	}
	return t
}
