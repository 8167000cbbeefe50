package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ticketboard/internal/board"
	"ticketboard/internal/board/dnd"
	vo "ticketboard/internal/domain/ticket/valueobjects"
)

var (
	titleStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	headerStyle       = lipgloss.NewStyle().Bold(true)
	dropTargetStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	ruleStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	cardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	focusedCardStyle  = cardStyle.BorderForeground(lipgloss.Color("212"))
	grabbedCardStyle  = cardStyle.Border(lipgloss.DoubleBorder()).BorderForeground(lipgloss.Color("214"))
	metaStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	savingStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	successStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	announcementStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("111"))
)

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	sections := []string{m.renderTitle()}
	sections = append(sections, m.renderColumns())
	sections = append(sections, m.renderStatus())
	sections = append(sections, m.help.View(m.keys))
	return strings.Join(sections, "\n")
}

func (m Model) renderTitle() string {
	title := "Ticket Board"
	if m.self.Name != "" {
		title += fmt.Sprintf(" · %s (%s)", m.self.Name, m.self.Role)
	}
	return titleStyle.Render(truncate(title, m.geo.width))
}

func (m Model) renderColumns() string {
	b := m.coord.Board()
	width := m.geo.columnWidth()
	height := m.geo.boardBottom() - titleRows
	over, dragging := m.machine.Over()
	active, hasActive := m.machine.Active()

	columns := make([]string, 0, len(vo.Statuses))
	for col, status := range vo.Statuses {
		cards := b.Column(status)

		header := fmt.Sprintf(" %s (%d)", status.Label(), len(cards))
		hs := headerStyle
		if dragging && hasActive && over == status {
			hs = dropTargetStyle
		}
		lines := []string{
			hs.Width(width).Render(truncate(header, width)),
			ruleStyle.Render(strings.Repeat("─", max(width-1, 0))),
		}

		start := m.geo.offset[col]
		end := min(start+m.geo.visibleRows(), len(cards))
		for i := start; i < end; i++ {
			lines = append(lines, m.renderCard(cards[i], width, col, hasActive && active.ID == cards[i].ID))
		}

		columns = append(columns, lipgloss.NewStyle().Width(width).Height(height).MaxHeight(height).
			Render(strings.Join(lines, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, columns...)
}

func (m Model) renderCard(card board.Summary, width, col int, grabbed bool) string {
	inner := max(width-3, 1)

	style := cardStyle
	switch {
	case grabbed:
		style = grabbedCardStyle
	case col == m.focusCol && card.ID == m.focusID && m.machine.Focusable(card.ID):
		style = focusedCardStyle
	}

	title := card.Title
	if card.AIEnhanced {
		title = "✦ " + title
	}

	meta := fmt.Sprintf("#%d %s", card.ID, card.Type)
	if card.AssigneeName != "" {
		meta += " · @" + card.AssigneeName
	} else if card.AssigneeID == nil {
		meta += " · unassigned"
	}
	metaLine := metaStyle.Render(truncate(meta, inner))
	if m.coord.Saving(card.ID) {
		metaLine = savingStyle.Render(truncate("saving…", inner))
	}

	return style.Width(inner).Render(truncate(title, inner) + "\n" + metaLine)
}

// renderStatus shows the latest notification, or the drag announcement
// while a card is grabbed.
func (m Model) renderStatus() string {
	switch {
	case m.machine.State() != dnd.StateIdle && m.live.message != "":
		return announcementStyle.Render(truncate(m.live.message, m.geo.width))
	case m.notice != "" && m.noticeFailure:
		return failureStyle.Render(truncate(m.notice, m.geo.width))
	case m.notice != "":
		return successStyle.Render(truncate(m.notice, m.geo.width))
	case m.live.message != "":
		return announcementStyle.Render(truncate(m.live.message, m.geo.width))
	default:
		return ""
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
