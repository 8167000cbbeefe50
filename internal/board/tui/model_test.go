package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketboard/internal/board"
	"ticketboard/internal/board/dnd"
	vo "ticketboard/internal/domain/ticket/valueobjects"
	"ticketboard/internal/shared/authorization"
	"ticketboard/internal/shared/logger"
)

func testTickets() []board.Ticket {
	return []board.Ticket{
		{ID: 1, Title: "Login fails", Type: "BUG", Status: "OPEN", ReporterID: uintPtr(2)},
		{ID: 2, Title: "Add dark mode", Type: "IMPROVEMENT", Status: "OPEN", ReporterID: uintPtr(3)},
		{ID: 3, Title: "Write docs", Type: "TASK", Status: "IN_PROGRESS", ReporterID: uintPtr(2), AssigneeID: uintPtr(2)},
	}
}

func newTestModel(t *testing.T, self Self, role authorization.UserRole) (Model, *fakeBackend) {
	t.Helper()
	backend := &fakeBackend{tickets: testTickets()}
	actor := authorization.NewActor(self.ID, role)
	coord := board.NewCoordinator(backend, actor, NewBridge(), logger.NewNopLogger())

	model := NewModel(coord, self, logger.NewNopLogger(), WithKeyboardStep(40))
	msg := model.Init()()
	require.NoError(t, msg.(refreshDoneMsg).err)

	model = update(t, model, msg)
	model = update(t, model, tea.WindowSizeMsg{Width: 120, Height: 40})
	return model, backend
}

func update(t *testing.T, model Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := model.Update(msg)
	return updated.(Model)
}

// press sends a key and runs the resulting mutation command, if any.
func press(t *testing.T, model Model, msg tea.KeyMsg) (Model, *board.Result) {
	t.Helper()
	updated, cmd := model.Update(msg)
	model = updated.(Model)
	if cmd == nil {
		return model, nil
	}
	done, ok := cmd().(mutationDoneMsg)
	if !ok {
		return model, nil
	}
	return update(t, model, done), &done.result
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	right = tea.KeyMsg{Type: tea.KeyRight}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	esc   = tea.KeyMsg{Type: tea.KeyEscape}
)

var alice = Self{ID: 2, Name: "Alice", Role: "USER"}

func TestModel_KeyboardGrabThenCancel(t *testing.T) {
	model, backend := newTestModel(t, alice, authorization.RoleUser)
	before := model.coord.Board()

	model, _ = press(t, model, enter)
	assert.Equal(t, dnd.StateGrabbed, model.machine.State())
	model, _ = press(t, model, right)
	model, result := press(t, model, esc)

	assert.Nil(t, result)
	assert.Equal(t, dnd.StateIdle, model.machine.State())
	assert.Same(t, before, model.coord.Board())
	assert.Zero(t, backend.calls())
	assert.Contains(t, model.View(), dnd.MsgDragCancelled)
}

func TestModel_KeyboardDragMovesTicket(t *testing.T) {
	model, backend := newTestModel(t, alice, authorization.RoleUser)

	model, _ = press(t, model, enter)
	model, _ = press(t, model, right)
	model, result := press(t, model, enter)

	require.NotNil(t, result)
	assert.Equal(t, board.OutcomeReconciled, result.Outcome)
	assert.Equal(t, "IN_PROGRESS", backend.status(1))
	assert.Equal(t, 1, model.focusCol, "focus follows the moved ticket")
	assert.Equal(t, uint(1), model.focusID)
}

func TestModel_StatusShortcuts(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"p", "IN_PROGRESS"},
		{"c", "CLOSED"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			model, backend := newTestModel(t, alice, authorization.RoleUser)

			_, result := press(t, model, runes(tt.key))

			require.NotNil(t, result)
			assert.Equal(t, board.OutcomeReconciled, result.Outcome)
			assert.Equal(t, tt.want, backend.status(1))
		})
	}

	t.Run("current status is a no-op", func(t *testing.T) {
		model, backend := newTestModel(t, alice, authorization.RoleUser)

		_, result := press(t, model, runes("o"))

		require.NotNil(t, result)
		assert.Equal(t, board.OutcomeNoop, result.Outcome)
		assert.Zero(t, backend.calls())
	})
}

func TestModel_AssignShortcuts(t *testing.T) {
	model, _ := newTestModel(t, alice, authorization.RoleUser)

	model, _ = press(t, model, down)
	require.Equal(t, uint(2), model.focusID)
	model, result := press(t, model, runes("a"))

	require.NotNil(t, result)
	assert.Equal(t, board.OutcomeReconciled, result.Outcome)
	card, _ := model.coord.Board().Find(2)
	require.NotNil(t, card.AssigneeID)
	assert.Equal(t, uint(2), *card.AssigneeID)

	_, result = press(t, model, runes("u"))
	require.NotNil(t, result)
	card, _ = model.coord.Board().Find(2)
	assert.Nil(t, card.AssigneeID)
}

func TestModel_GrabDeniedForUnrelatedUser(t *testing.T) {
	model, _ := newTestModel(t, Self{ID: 9, Name: "Eve", Role: "USER"}, authorization.RoleUser)

	model, _ = press(t, model, enter)

	assert.Equal(t, dnd.StateIdle, model.machine.State())
	assert.Contains(t, model.View(), "can't move")

	_, result := press(t, model, runes("c"))
	require.NotNil(t, result)
	assert.Equal(t, board.OutcomeDenied, result.Outcome)
}

func TestModel_MouseDrag(t *testing.T) {
	model, backend := newTestModel(t, Self{ID: 1, Name: "Admin", Role: "ADMIN"}, authorization.RoleAdmin)

	origin := model.geo.cardCenter(0, 0)
	model = update(t, model, tea.MouseMsg{X: origin.X, Y: origin.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	model = update(t, model, tea.MouseMsg{X: 100, Y: origin.Y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	assert.Equal(t, dnd.StateDragging, model.machine.State())

	updated, cmd := model.Update(tea.MouseMsg{X: 100, Y: origin.Y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.NotNil(t, cmd)
	done := cmd().(mutationDoneMsg)
	update(t, updated.(Model), done)

	assert.Equal(t, board.OutcomeReconciled, done.result.Outcome)
	assert.Equal(t, "CLOSED", backend.status(1))
}

func TestModel_PressDuringKeyboardDragKeepsFocus(t *testing.T) {
	model, _ := newTestModel(t, alice, authorization.RoleUser)

	model, _ = press(t, model, enter)
	require.Equal(t, dnd.StateGrabbed, model.machine.State())
	require.Equal(t, uint(1), model.focusID)

	other := model.geo.cardCenter(0, 1)
	model = update(t, model, tea.MouseMsg{X: other.X, Y: other.Y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	assert.Equal(t, dnd.StateGrabbed, model.machine.State())
	active, ok := model.machine.Active()
	require.True(t, ok)
	assert.Equal(t, uint(1), active.ID)
	assert.Equal(t, uint(1), model.focusID)

	model, _ = press(t, model, esc)
	assert.Equal(t, dnd.StateIdle, model.machine.State())
	assert.Equal(t, uint(1), model.focusID)
}

func TestModel_View(t *testing.T) {
	model, _ := newTestModel(t, alice, authorization.RoleUser)

	view := model.View()

	for _, want := range []string{"Alice (USER)", "Open (2)", "In Progress (1)", "Closed (0)", "Login fails", "#3 TASK"} {
		assert.Contains(t, view, want)
	}
	assert.LessOrEqual(t, len(strings.Split(view, "\n")), 40)
}

func TestModel_NotificationFades(t *testing.T) {
	model, _ := newTestModel(t, alice, authorization.RoleUser)

	updated, cmd := model.Update(notifyMsg{text: "Ticket moved to Closed."})
	model = updated.(Model)
	require.NotNil(t, cmd)
	assert.Contains(t, model.View(), "Ticket moved to Closed.")

	model = update(t, model, fadeMsg{seq: model.noticeSeq})
	assert.NotContains(t, model.View(), "Ticket moved to Closed.")
}

func TestGeometry_ColumnAt(t *testing.T) {
	g := &geometry{width: 120, height: 40}

	tests := []struct {
		p    dnd.Point
		want vo.TicketStatus
		ok   bool
	}{
		{dnd.Point{X: 0, Y: 1}, vo.StatusOpen, true},
		{dnd.Point{X: 45, Y: 10}, vo.StatusInProgress, true},
		{dnd.Point{X: 119, Y: 36}, vo.StatusClosed, true},
		{dnd.Point{X: 10, Y: 0}, "", false},
		{dnd.Point{X: 10, Y: 37}, "", false},
		{dnd.Point{X: 120, Y: 5}, "", false},
		{dnd.Point{X: -1, Y: 5}, "", false},
	}

	for _, tt := range tests {
		got, ok := g.ColumnAt(tt.p)
		assert.Equal(t, tt.ok, ok, "%+v", tt.p)
		assert.Equal(t, tt.want, got, "%+v", tt.p)
	}
}

func TestModel_RefreshFailureShowsNotice(t *testing.T) {
	model, _ := newTestModel(t, alice, authorization.RoleUser)

	model = update(t, model, refreshDoneMsg{err: context.DeadlineExceeded})

	assert.Contains(t, model.View(), "Could not load tickets")
}
