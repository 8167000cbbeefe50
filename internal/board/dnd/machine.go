// Package dnd is the drag and keyboard interaction state machine of the board.
//
// A Machine turns pointer and key input into at most one move Intent. It does
// not touch the board itself: the caller hands the Intent to the mutation
// coordinator. Every transition that changes drag state is announced through
// the Announcer so non-visual users get the same feedback as pointer users.
package dnd

import (
	vo "ticketboard/internal/domain/ticket/valueobjects"
)

type State int

const (
	StateIdle State = iota
	StateGrabbed
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateGrabbed:
		return "grabbed"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

const (
	DefaultActivationDistance = 8
	DefaultKeyboardStep       = 25
)

// Point is a position in the caller's coordinate space.
type Point struct {
	X, Y int
}

// Direction is a keyboard cursor direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Card identifies the ticket being dragged.
type Card struct {
	ID     uint
	Title  string
	Status vo.TicketStatus
}

// Intent is a request to move a ticket between columns.
type Intent struct {
	TicketID uint
	From     vo.TicketStatus
	To       vo.TicketStatus
}

// Layout maps a position to the column under it.
type Layout interface {
	ColumnAt(p Point) (vo.TicketStatus, bool)
}

// Gate decides whether a card may be picked up.
type Gate interface {
	CanDrag(ticketID uint) bool
}

type Announcer interface {
	Announce(message string)
}

type Option func(*Machine)

// WithActivationDistance sets how far the pointer must travel after a press
// before the card is picked up.
func WithActivationDistance(d int) Option {
	return func(m *Machine) {
		if d >= 0 {
			m.activation = d
		}
	}
}

// WithKeyboardStep sets the cursor increment of one directional key press.
func WithKeyboardStep(step int) Option {
	return func(m *Machine) {
		if step > 0 {
			m.step = step
		}
	}
}

// Machine is not safe for concurrent use; it is driven from the input loop.
type Machine struct {
	layout    Layout
	gate      Gate
	announcer Announcer

	activation int
	step       int

	state  State
	card   Card
	cursor Point

	over    vo.TicketStatus
	hasOver bool

	// press is a pointer press that has not yet travelled far enough.
	press     *Card
	pressedAt Point
}

func NewMachine(layout Layout, gate Gate, announcer Announcer, opts ...Option) *Machine {
	m := &Machine{
		layout:     layout,
		gate:       gate,
		announcer:  announcer,
		activation: DefaultActivationDistance,
		step:       DefaultKeyboardStep,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Machine) State() State {
	return m.state
}

// Active returns the card being dragged.
func (m *Machine) Active() (Card, bool) {
	if m.state == StateIdle {
		return Card{}, false
	}
	return m.card, true
}

// Over returns the column currently highlighted as the drop target.
func (m *Machine) Over() (vo.TicketStatus, bool) {
	return m.over, m.hasOver
}

func (m *Machine) Cursor() Point {
	return m.cursor
}

// Focusable reports whether the card may take keyboard focus. While a drag
// is active only the dragged card is focusable.
func (m *Machine) Focusable(ticketID uint) bool {
	return m.state == StateIdle || m.card.ID == ticketID
}

// PointerDown records a press on a card. The card is picked up once the
// pointer has moved beyond the activation distance.
func (m *Machine) PointerDown(card Card, at Point) {
	if m.state != StateIdle {
		return
	}
	c := card
	m.press = &c
	m.pressedAt = at
	if m.activation == 0 {
		m.PointerMove(at)
	}
}

func (m *Machine) PointerMove(at Point) {
	switch m.state {
	case StateIdle:
		if m.press == nil || distance(m.pressedAt, at) < m.activation {
			return
		}
		card := *m.press
		m.press = nil
		if m.grab(card, m.pressedAt) {
			m.moveTo(at)
		}
	default:
		m.moveTo(at)
	}
}

// PointerUp drops the card at the release position. Releasing outside every
// column or over the source column cancels the drag.
func (m *Machine) PointerUp(at Point) (Intent, bool) {
	if m.state == StateIdle {
		m.press = nil
		return Intent{}, false
	}
	m.moveTo(at)
	return m.drop()
}

// KeyGrab picks up a focused card. at is where the card sits on screen and
// becomes the starting cursor position.
func (m *Machine) KeyGrab(card Card, at Point) bool {
	if m.state != StateIdle {
		return false
	}
	m.press = nil
	return m.grab(card, at)
}

func (m *Machine) KeyMove(dir Direction) {
	if m.state == StateIdle {
		return
	}
	next := m.cursor
	switch dir {
	case Left:
		next.X -= m.step
	case Right:
		next.X += m.step
	case Up:
		next.Y -= m.step
	case Down:
		next.Y += m.step
	}
	m.moveTo(next)
}

func (m *Machine) KeyDrop() (Intent, bool) {
	if m.state == StateIdle {
		return Intent{}, false
	}
	return m.drop()
}

func (m *Machine) KeyCancel() {
	if m.state == StateIdle {
		m.press = nil
		return
	}
	m.cancel()
}

func (m *Machine) grab(card Card, at Point) bool {
	if m.gate != nil && !m.gate.CanDrag(card.ID) {
		m.announce(cannotMoveMessage(card))
		return false
	}
	m.state = StateGrabbed
	m.card = card
	m.cursor = at
	m.over, m.hasOver = m.columnAt(at)
	m.announce(grabbedMessage(card))
	return true
}

func (m *Machine) moveTo(at Point) {
	if at != m.cursor {
		m.state = StateDragging
	}
	m.cursor = at

	over, ok := m.columnAt(at)
	if ok == m.hasOver && over == m.over {
		return
	}
	m.over, m.hasOver = over, ok
	if ok {
		m.announce(overMessage(m.card, over))
	} else {
		m.announce(outsideMessage(m.card))
	}
}

func (m *Machine) drop() (Intent, bool) {
	if !m.hasOver || m.over == m.card.Status {
		m.cancel()
		return Intent{}, false
	}
	intent := Intent{TicketID: m.card.ID, From: m.card.Status, To: m.over}
	m.announce(droppedMessage(m.card, m.over))
	m.reset()
	return intent, true
}

func (m *Machine) cancel() {
	m.announce(cancelledMessage(m.card))
	m.reset()
}

func (m *Machine) reset() {
	m.state = StateIdle
	m.card = Card{}
	m.over, m.hasOver = "", false
	m.press = nil
}

func (m *Machine) columnAt(p Point) (vo.TicketStatus, bool) {
	if m.layout == nil {
		return "", false
	}
	return m.layout.ColumnAt(p)
}

func (m *Machine) announce(msg string) {
	if m.announcer != nil {
		m.announcer.Announce(msg)
	}
}

// distance is the Chebyshev distance, which matches a cell grid.
func distance(a, b Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx > dy {
		return dx
	}
	return dy
}
