package tui

import (
	"ticketboard/internal/board/dnd"
	vo "ticketboard/internal/domain/ticket/valueobjects"
)

// Screen rows above the first card: title bar, column header, rule.
const (
	titleRows  = 1
	headerRows = 2
	cardsTop   = titleRows + headerRows
	cardHeight = 4
	footerRows = 3
)

// geometry is the screen layout of the board. It is shared by pointer with
// the interaction machine so a resize is seen by both.
type geometry struct {
	width  int
	height int
	// offset is the first visible card row per column.
	offset [3]int
}

func (g *geometry) columnWidth() int {
	return g.width / len(vo.Statuses)
}

func (g *geometry) boardBottom() int {
	return g.height - footerRows
}

// visibleRows is how many cards fit in a column.
func (g *geometry) visibleRows() int {
	rows := (g.boardBottom() - cardsTop) / cardHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// ColumnAt implements dnd.Layout. The whole column surface, header
// included, is a drop target.
func (g *geometry) ColumnAt(p dnd.Point) (vo.TicketStatus, bool) {
	w := g.columnWidth()
	if w <= 0 || p.X < 0 || p.Y < titleRows || p.Y >= g.boardBottom() {
		return "", false
	}
	col := p.X / w
	if col >= len(vo.Statuses) {
		return "", false
	}
	return vo.Statuses[col], true
}

// cardAt returns the column and row of the card under p, before checking
// whether that row holds a card.
func (g *geometry) cardAt(p dnd.Point) (col, row int, ok bool) {
	w := g.columnWidth()
	if w <= 0 || p.X < 0 || p.Y < cardsTop || p.Y >= g.boardBottom() {
		return 0, 0, false
	}
	col = p.X / w
	if col >= len(vo.Statuses) {
		return 0, 0, false
	}
	return col, g.offset[col] + (p.Y-cardsTop)/cardHeight, true
}

// cardCenter is the screen position of a card, used as the keyboard drag origin.
func (g *geometry) cardCenter(col, row int) dnd.Point {
	w := g.columnWidth()
	return dnd.Point{
		X: col*w + w/2,
		Y: cardsTop + (row-g.offset[col])*cardHeight + cardHeight/2,
	}
}

// scrollTo adjusts the column offset so row is visible.
func (g *geometry) scrollTo(col, row int) {
	rows := g.visibleRows()
	switch {
	case row < g.offset[col]:
		g.offset[col] = row
	case row >= g.offset[col]+rows:
		g.offset[col] = row - rows + 1
	}
}
