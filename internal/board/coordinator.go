package board

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/shared/authorization"
	"ticketboard/internal/shared/constants"
	"ticketboard/internal/shared/goroutine"
	"ticketboard/internal/shared/logger"
)

const (
	DefaultMutationTimeout = 10 * time.Second

	msgStillSaving       = "This ticket is still being saved."
	msgAssignNotAllowed  = "You don't have permission to change this ticket's assignee."
	msgTicketUnassigned  = "Ticket unassigned."
	msgTicketAssignedFmt = "Ticket assigned to %s."
	msgTicketMovedFmt    = "Ticket moved to %s."
)

// Backend is the authoritative ticket service.
type Backend interface {
	ListTickets(ctx context.Context) ([]Ticket, error)
	UpdateStatus(ctx context.Context, ticketID uint, status vo.TicketStatus) (*Ticket, error)
	UpdateAssignee(ctx context.Context, ticketID uint, assigneeID *uint) (*Ticket, error)
}

// Outcome is the terminal state of one mutation request.
type Outcome int

const (
	// OutcomeSkipped means the ticket is not on the board.
	OutcomeSkipped Outcome = iota
	// OutcomeNoop means the requested value is already current; nothing was sent.
	OutcomeNoop
	// OutcomeDenied means the permission check failed before any local change.
	OutcomeDenied
	// OutcomeBusy means another mutation of the same ticket is in flight.
	OutcomeBusy
	OutcomeReconciled
	OutcomeRolledBack
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeNoop:
		return "noop"
	case OutcomeDenied:
		return "denied"
	case OutcomeBusy:
		return "busy"
	case OutcomeReconciled:
		return "reconciled"
	case OutcomeRolledBack:
		return "rolled_back"
	}
	return "unknown"
}

type Result struct {
	Outcome Outcome
	// Failure is set when Outcome is OutcomeRolledBack.
	Failure *MutationError
}

type Option func(*Coordinator)

// WithTimeout bounds each authoritative call.
func WithTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithListener registers fn to receive every new board. fn runs while the
// coordinator holds its lock and must not call MoveTicket or SetAssignee.
func WithListener(fn func(*Board)) Option {
	return func(c *Coordinator) {
		c.listener = fn
	}
}

// Coordinator is the only writer of the board. Each mutation is applied
// locally, sent to the backend, and then either reconciled from a full
// refetch or rolled back.
type Coordinator struct {
	backend  Backend
	actor    *authorization.Actor
	notifier Notifier
	logger   logger.Interface
	timeout  time.Duration
	listener func(*Board)

	board atomic.Pointer[Board]

	// mu serializes board writes and guards saving. A ticket id in saving has
	// a mutation awaiting the server; the value re-applies it on top of a
	// refetched board.
	mu     sync.Mutex
	saving map[uint]func(*Board) *Board
}

func NewCoordinator(backend Backend, actor *authorization.Actor, notifier Notifier, log logger.Interface, opts ...Option) *Coordinator {
	c := &Coordinator{
		backend:  backend,
		actor:    actor,
		notifier: notifier,
		logger:   log,
		timeout:  DefaultMutationTimeout,
		saving:   make(map[uint]func(*Board) *Board),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.board.Store(Empty())
	return c
}

// Board returns the current snapshot. It may hold unconfirmed changes.
func (c *Coordinator) Board() *Board {
	return c.board.Load()
}

func (c *Coordinator) Actor() *authorization.Actor {
	return c.actor
}

// Saving reports whether a mutation of the ticket awaits the server.
func (c *Coordinator) Saving(ticketID uint) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.saving[ticketID]
	return ok
}

// CanDrag is true when the ticket is on the board, not saving, and the actor
// may change its status.
func (c *Coordinator) CanDrag(ticketID uint) bool {
	card, ok := c.Board().Find(ticketID)
	if !ok || c.Saving(ticketID) {
		return false
	}
	return authorization.CanMutate(c.actor, card.Parties())
}

// Refresh replaces the board with a fresh projection of the server state.
func (c *Coordinator) Refresh(ctx context.Context) error {
	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	tickets, err := c.backend.ListTickets(fetchCtx)
	if err != nil {
		return Classify(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(c.overlayPending(Project(tickets, c.logger), 0))
	return nil
}

// MoveTicket moves a ticket to another status column.
func (c *Coordinator) MoveTicket(ctx context.Context, ticketID uint, to vo.TicketStatus) Result {
	if !to.IsValid() {
		c.logger.Warnw("ignoring move to unknown status", "ticket_id", ticketID, "status", to)
		return Result{Outcome: OutcomeSkipped}
	}
	return c.mutate(ctx, mutation{
		ticketID: ticketID,
		kind:     "status",
		noop:     func(s Summary) bool { return s.Status == to },
		allowed:  func(s Summary) bool { return authorization.CanMutate(c.actor, s.Parties()) },
		denied:   constants.MsgPermissionDenied,
		apply: func(b *Board) *Board {
			return b.withMove(ticketID, to, -1)
		},
		send: func(ctx context.Context) (*Ticket, error) {
			return c.backend.UpdateStatus(ctx, ticketID, to)
		},
		success: fmt.Sprintf(msgTicketMovedFmt, to.Label()),
	})
}

// SetAssignee assigns the ticket, or unassigns it when assigneeID is nil.
// name is shown on the card until the server confirms.
func (c *Coordinator) SetAssignee(ctx context.Context, ticketID uint, assigneeID *uint, name string) Result {
	success := msgTicketUnassigned
	if assigneeID != nil {
		success = fmt.Sprintf(msgTicketAssignedFmt, name)
	}
	proposed := copyID(assigneeID)
	return c.mutate(ctx, mutation{
		ticketID: ticketID,
		kind:     "assignee",
		noop:     func(s Summary) bool { return sameID(s.AssigneeID, proposed) },
		allowed: func(s Summary) bool {
			return authorization.CanAssign(c.actor, s.Parties(), proposed)
		},
		denied: msgAssignNotAllowed,
		apply: func(b *Board) *Board {
			card, ok := b.Find(ticketID)
			if !ok {
				return b
			}
			card.AssigneeID = copyID(proposed)
			card.AssigneeName = ""
			if proposed != nil {
				card.AssigneeName = name
			}
			return b.withCard(card)
		},
		send: func(ctx context.Context) (*Ticket, error) {
			return c.backend.UpdateAssignee(ctx, ticketID, proposed)
		},
		success: success,
	})
}

type mutation struct {
	ticketID uint
	kind     string
	noop     func(Summary) bool
	allowed  func(Summary) bool
	denied   string
	apply    func(*Board) *Board
	send     func(ctx context.Context) (*Ticket, error)
	success  string
}

func (c *Coordinator) mutate(ctx context.Context, m mutation) Result {
	log := c.logger.With("ticket_id", m.ticketID, "mutation", m.kind)

	c.mu.Lock()
	before := c.board.Load()
	card, index, ok := before.locate(m.ticketID)
	if !ok {
		c.mu.Unlock()
		log.Debugw("ticket not on board")
		return Result{Outcome: OutcomeSkipped}
	}
	if m.noop(card) {
		c.mu.Unlock()
		return Result{Outcome: OutcomeNoop}
	}
	if !m.allowed(card) {
		c.mu.Unlock()
		log.Infow("mutation denied by permission check")
		c.notifier.Failure(m.denied)
		return Result{Outcome: OutcomeDenied}
	}
	if _, busy := c.saving[m.ticketID]; busy {
		c.mu.Unlock()
		c.notifier.Failure(msgStillSaving)
		return Result{Outcome: OutcomeBusy}
	}
	applied := m.apply(before)
	c.saving[m.ticketID] = m.apply
	c.store(applied)
	c.mu.Unlock()

	updated, err := c.send(ctx, m, log)
	if err != nil {
		failure := Classify(err)
		c.rollback(m.ticketID, before, applied, card, index)
		log.Warnw("mutation rolled back", "kind", failure.Kind.String(), "error", err)
		c.notifier.Failure(failure.UserMessage())
		return Result{Outcome: OutcomeRolledBack, Failure: failure}
	}

	c.reconcile(ctx, m.ticketID, updated, log)
	c.notifier.Success(m.success)
	return Result{Outcome: OutcomeReconciled}
}

// send runs the request with the mutation timeout. A backend that ignores
// its context still yields a timeout error here.
func (c *Coordinator) send(ctx context.Context, m mutation, log logger.Interface) (*Ticket, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var updated *Ticket
	done := goroutine.Async(log, "ticket-mutation", func() error {
		t, err := m.send(reqCtx)
		updated = t
		return err
	})

	select {
	case err := <-done:
		return updated, err
	case <-reqCtx.Done():
		return nil, reqCtx.Err()
	}
}

// rollback restores the pre-mutation board when nothing else changed it,
// and otherwise puts only this card back where it was.
func (c *Coordinator) rollback(ticketID uint, before, applied *Board, card Summary, index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.saving, ticketID)

	current := c.board.Load()
	if current == applied {
		c.store(before)
		return
	}
	c.store(current.withMove(ticketID, card.Status, index).withCard(card))
}

// reconcile replaces the board from a full refetch. Other tickets that are
// still saving keep their optimistic state on top of it.
func (c *Coordinator) reconcile(ctx context.Context, ticketID uint, updated *Ticket, log logger.Interface) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.timeout)
	tickets, err := c.backend.ListTickets(fetchCtx)
	cancel()

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.saving, ticketID)

	if err != nil {
		log.Warnw("refetch after mutation failed, applying server response only", "error", err)
		if updated != nil {
			status, serr := vo.NewTicketStatus(updated.Status)
			if serr != nil {
				status = vo.StatusOpen
			}
			c.store(c.board.Load().withCard(toSummary(*updated, status)))
		}
		return
	}
	c.store(c.overlayPending(Project(tickets, c.logger), ticketID))
}

func (c *Coordinator) overlayPending(b *Board, except uint) *Board {
	for id, apply := range c.saving {
		if id == except {
			continue
		}
		b = apply(b)
	}
	return b
}

// store must be called with mu held.
func (c *Coordinator) store(b *Board) {
	c.board.Store(b)
	if c.listener != nil {
		c.listener(b)
	}
}
