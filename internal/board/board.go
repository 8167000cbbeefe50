package board

import (
	vo "ticketboard/internal/domain/ticket/valueobjects"
)

// Board is an immutable three-column view of the known tickets. Every change
// produces a new Board, so a reader always sees a complete snapshot.
type Board struct {
	columns     map[vo.TicketStatus][]Summary
	diagnostics []string
}

// Empty returns a board with three empty columns.
func Empty() *Board {
	b := &Board{columns: make(map[vo.TicketStatus][]Summary, len(vo.Statuses))}
	for _, s := range vo.Statuses {
		b.columns[s] = []Summary{}
	}
	return b
}

// Column returns a copy of the cards in status order.
func (b *Board) Column(status vo.TicketStatus) []Summary {
	col := b.columns[status]
	out := make([]Summary, len(col))
	copy(out, col)
	return out
}

// Len is the number of cards across all columns.
func (b *Board) Len() int {
	n := 0
	for _, s := range vo.Statuses {
		n += len(b.columns[s])
	}
	return n
}

// Find locates a card by ticket id.
func (b *Board) Find(id uint) (Summary, bool) {
	s, _, ok := b.locate(id)
	return s, ok
}

// Diagnostics lists anomalies found while projecting, such as unknown statuses.
func (b *Board) Diagnostics() []string {
	out := make([]string, len(b.diagnostics))
	copy(out, b.diagnostics)
	return out
}

// Equal reports whether both boards hold the same cards in the same order.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	for _, s := range vo.Statuses {
		left, right := b.columns[s], other.columns[s]
		if len(left) != len(right) {
			return false
		}
		for i := range left {
			if !sameSummary(left[i], right[i]) {
				return false
			}
		}
	}
	return true
}

func (b *Board) locate(id uint) (Summary, int, bool) {
	for _, s := range vo.Statuses {
		for i, card := range b.columns[s] {
			if card.ID == id {
				return card, i, true
			}
		}
	}
	return Summary{}, -1, false
}

func (b *Board) copyColumns() *Board {
	next := &Board{
		columns:     make(map[vo.TicketStatus][]Summary, len(vo.Statuses)),
		diagnostics: b.diagnostics,
	}
	for _, s := range vo.Statuses {
		col := make([]Summary, len(b.columns[s]))
		copy(col, b.columns[s])
		next.columns[s] = col
	}
	return next
}

// withMove moves a card to the end of the target column, or to position at
// when at is in range. The receiver is not modified.
func (b *Board) withMove(id uint, to vo.TicketStatus, at int) *Board {
	card, idx, ok := b.locate(id)
	if !ok {
		return b
	}
	next := b.copyColumns()
	from := card.Status
	next.columns[from] = append(next.columns[from][:idx:idx], next.columns[from][idx+1:]...)

	card.Status = to
	col := next.columns[to]
	if at < 0 || at > len(col) {
		at = len(col)
	}
	col = append(col[:at:at], append([]Summary{card}, col[at:]...)...)
	next.columns[to] = col
	return next
}

// withCard replaces the card with the same id in place.
func (b *Board) withCard(card Summary) *Board {
	existing, idx, ok := b.locate(card.ID)
	if !ok {
		return b
	}
	if existing.Status != card.Status {
		return b.withMove(card.ID, card.Status, -1).withCard(card)
	}
	next := b.copyColumns()
	next.columns[card.Status][idx] = card.clone()
	return next
}

func sameSummary(a, b Summary) bool {
	return a.ID == b.ID &&
		a.Title == b.Title &&
		a.Type == b.Type &&
		a.Status == b.Status &&
		sameID(a.ReporterID, b.ReporterID) &&
		sameID(a.AssigneeID, b.AssigneeID) &&
		a.AssigneeName == b.AssigneeName &&
		a.AIEnhanced == b.AIEnhanced
}
