// Package tui is the terminal Kanban board. It renders the coordinator's
// board in three columns and feeds keyboard and mouse input through the
// interaction machine. Every change, drag or shortcut, goes through the
// same coordinator entry points.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"ticketboard/internal/board"
	"ticketboard/internal/board/dnd"
	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/shared/logger"
)

const notificationFadeDelay = 5 * time.Second

// Self is the signed-in user, used by the assign-to-me shortcut and the title bar.
type Self struct {
	ID   uint
	Name string
	Role string
}

type mutationDoneMsg struct {
	ticketID uint
	result   board.Result
}

type refreshDoneMsg struct {
	err error
}

type fadeMsg struct {
	seq int
}

// liveRegion collects announcements from the interaction machine. Update
// runs on one goroutine, so no locking is needed.
type liveRegion struct {
	message string
}

func (r *liveRegion) Announce(message string) {
	r.message = message
}

type Option func(*Model)

func WithKeyboardStep(step int) Option {
	return func(m *Model) { m.machineOpts = append(m.machineOpts, dnd.WithKeyboardStep(step)) }
}

func WithActivationDistance(d int) Option {
	return func(m *Model) { m.machineOpts = append(m.machineOpts, dnd.WithActivationDistance(d)) }
}

func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

type Model struct {
	coord   *board.Coordinator
	self    Self
	logger  logger.Interface
	keys    KeyMap
	help    help.Model
	geo     *geometry
	machine *dnd.Machine
	live    *liveRegion

	machineOpts []dnd.Option

	// focusCol is the focused column; focusID the focused card, zero when
	// the column is empty.
	focusCol int
	focusID  uint

	notice        string
	noticeFailure bool
	noticeSeq     int
	loadErr       error
	ready         bool
}

func NewModel(coord *board.Coordinator, self Self, log logger.Interface, opts ...Option) Model {
	m := Model{
		coord:  coord,
		self:   self,
		logger: log.Named("board.tui"),
		keys:   DefaultKeyMap,
		help:   help.New(),
		geo:    &geometry{},
		live:   &liveRegion{},
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.machine = dnd.NewMachine(m.geo, coord, m.live, m.machineOpts...)
	return m
}

// Run starts the program on the alternate screen with mouse tracking.
func Run(ctx context.Context, model Model, bridge *Bridge) error {
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	bridge.SetProgram(program)
	defer bridge.Close()
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return m.refresh()
}

func (m Model) refresh() tea.Cmd {
	coord := m.coord
	return func() tea.Msg {
		return refreshDoneMsg{err: coord.Refresh(context.Background())}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	announced := m.live.message
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.geo.width = msg.Width
		m.geo.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		m.syncFocus()

	case tea.KeyMsg:
		if m.machine.State() != dnd.StateIdle {
			cmd = m.handleDragKeys(msg)
		} else {
			var quit bool
			cmd, quit = m.handleKeys(msg)
			if quit {
				return m, tea.Quit
			}
		}

	case tea.MouseMsg:
		cmd = m.handleMouse(msg)

	case boardChangedMsg:
		m.syncFocus()

	case mutationDoneMsg:
		m.logger.Debugw("mutation finished", "ticket_id", msg.ticketID, "outcome", msg.result.Outcome.String())
		m.syncFocus()

	case refreshDoneMsg:
		m.loadErr = msg.err
		if msg.err != nil {
			m.logger.Warnw("failed to load tickets", "error", msg.err)
			cmd = m.setNotice("Could not load tickets. Press r to retry.", true)
		}
		m.syncFocus()

	case notifyMsg:
		cmd = m.setNotice(msg.text, msg.failure)

	case fadeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
	}

	if m.live.message != announced && m.live.message != "" {
		m.logger.Debugw("announce", "message", m.live.message)
	}
	return m, cmd
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return nil, true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.focusColumn(m.focusCol - 1)
	case key.Matches(msg, m.keys.Right):
		m.focusColumn(m.focusCol + 1)
	case key.Matches(msg, m.keys.Up):
		m.focusRow(-1)
	case key.Matches(msg, m.keys.Down):
		m.focusRow(1)
	case key.Matches(msg, m.keys.Grab):
		if card, row, ok := m.focusedCard(); ok {
			m.live.message = ""
			m.machine.KeyGrab(dndCard(card), m.geo.cardCenter(m.focusCol, row))
		}
	case key.Matches(msg, m.keys.MoveOpen):
		return m.moveFocused(vo.StatusOpen), false
	case key.Matches(msg, m.keys.MoveInProgress):
		return m.moveFocused(vo.StatusInProgress), false
	case key.Matches(msg, m.keys.MoveClosed):
		return m.moveFocused(vo.StatusClosed), false
	case key.Matches(msg, m.keys.AssignMe):
		if card, _, ok := m.focusedCard(); ok {
			id := m.self.ID
			return m.assign(card.ID, &id, m.self.Name), false
		}
	case key.Matches(msg, m.keys.Unassign):
		if card, _, ok := m.focusedCard(); ok {
			return m.assign(card.ID, nil, ""), false
		}
	case key.Matches(msg, m.keys.Refresh):
		return m.refresh(), false
	}
	return nil, false
}

func (m *Model) handleDragKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.machine.KeyMove(dnd.Left)
	case key.Matches(msg, m.keys.Right):
		m.machine.KeyMove(dnd.Right)
	case key.Matches(msg, m.keys.Up):
		m.machine.KeyMove(dnd.Up)
	case key.Matches(msg, m.keys.Down):
		m.machine.KeyMove(dnd.Down)
	case key.Matches(msg, m.keys.Grab):
		if intent, ok := m.machine.KeyDrop(); ok {
			return m.move(intent.TicketID, intent.To)
		}
	case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Quit):
		m.machine.KeyCancel()
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	at := dnd.Point{X: msg.X, Y: msg.Y}
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if m.machine.State() != dnd.StateIdle {
			return nil
		}
		col, row, ok := m.geo.cardAt(at)
		if !ok {
			return nil
		}
		cards := m.coord.Board().Column(vo.Statuses[col])
		if row >= len(cards) {
			return nil
		}
		m.focusCol, m.focusID = col, cards[row].ID
		m.machine.PointerDown(dndCard(cards[row]), at)
	case msg.Action == tea.MouseActionMotion:
		m.machine.PointerMove(at)
	case msg.Action == tea.MouseActionRelease:
		if intent, ok := m.machine.PointerUp(at); ok {
			return m.move(intent.TicketID, intent.To)
		}
	}
	return nil
}

func (m *Model) moveFocused(to vo.TicketStatus) tea.Cmd {
	card, _, ok := m.focusedCard()
	if !ok {
		return nil
	}
	return m.move(card.ID, to)
}

// move and assign run the coordinator off the event loop; the optimistic
// board arrives through the bridge while the request is in flight.
func (m *Model) move(ticketID uint, to vo.TicketStatus) tea.Cmd {
	m.focusID = ticketID
	coord := m.coord
	return func() tea.Msg {
		return mutationDoneMsg{ticketID: ticketID, result: coord.MoveTicket(context.Background(), ticketID, to)}
	}
}

func (m *Model) assign(ticketID uint, assigneeID *uint, name string) tea.Cmd {
	coord := m.coord
	return func() tea.Msg {
		return mutationDoneMsg{ticketID: ticketID, result: coord.SetAssignee(context.Background(), ticketID, assigneeID, name)}
	}
}

func (m *Model) setNotice(text string, failure bool) tea.Cmd {
	m.noticeSeq++
	m.notice = text
	m.noticeFailure = failure
	seq := m.noticeSeq
	return tea.Tick(notificationFadeDelay, func(time.Time) tea.Msg {
		return fadeMsg{seq: seq}
	})
}

// focusedCard returns the focused card and its row.
func (m *Model) focusedCard() (board.Summary, int, bool) {
	cards := m.coord.Board().Column(vo.Statuses[m.focusCol])
	for i, c := range cards {
		if c.ID == m.focusID {
			return c, i, true
		}
	}
	return board.Summary{}, 0, false
}

func (m *Model) focusColumn(col int) {
	if col < 0 || col >= len(vo.Statuses) {
		return
	}
	m.focusCol = col
	m.focusID = 0
	if cards := m.coord.Board().Column(vo.Statuses[col]); len(cards) > 0 {
		row := m.geo.offset[col]
		if row >= len(cards) {
			row = 0
		}
		m.focusID = cards[row].ID
	}
	m.syncFocus()
}

func (m *Model) focusRow(delta int) {
	cards := m.coord.Board().Column(vo.Statuses[m.focusCol])
	_, row, ok := m.focusedCard()
	if !ok {
		return
	}
	next := row + delta
	if next < 0 || next >= len(cards) {
		return
	}
	m.focusID = cards[next].ID
	m.geo.scrollTo(m.focusCol, next)
}

// syncFocus keeps focus on the same ticket after the board changes,
// following it to another column if it moved.
func (m *Model) syncFocus() {
	b := m.coord.Board()
	if m.focusID != 0 {
		if card, ok := b.Find(m.focusID); ok {
			for i, s := range vo.Statuses {
				if s == card.Status {
					m.focusCol = i
				}
			}
		} else {
			m.focusID = 0
		}
	}
	cards := b.Column(vo.Statuses[m.focusCol])
	if m.focusID == 0 && len(cards) > 0 {
		m.focusID = cards[0].ID
	}
	if _, row, ok := m.focusedCard(); ok && m.geo.height > 0 {
		m.geo.scrollTo(m.focusCol, row)
	}
}

func dndCard(s board.Summary) dnd.Card {
	return dnd.Card{ID: s.ID, Title: s.Title, Status: s.Status}
}
