package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"ticketboard/internal/board"
)

type notifyMsg struct {
	text    string
	failure bool
}

type boardChangedMsg struct{}

// sender is the part of *tea.Program the bridge needs.
type sender interface {
	Send(msg tea.Msg)
}

// Bridge forwards coordinator notifications and board changes into the
// running program in the order they were raised. Enqueueing never blocks:
// the coordinator calls listeners with its lock held, and the event loop may
// be waiting on that lock while rendering. Messages raised before the
// program is bound are dropped.
type Bridge struct {
	mu     sync.Mutex
	target sender
	queue  []tea.Msg
	wake   chan struct{}
	done   chan struct{}
	stop   sync.Once
}

var _ board.Notifier = (*Bridge)(nil)

func NewBridge() *Bridge {
	return &Bridge{
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

func (b *Bridge) SetProgram(p *tea.Program) {
	b.bind(p)
}

func (b *Bridge) bind(s sender) {
	b.mu.Lock()
	first := b.target == nil
	b.target = s
	b.mu.Unlock()
	if first {
		go b.drain()
	}
}

// Close stops forwarding. Queued messages are discarded.
func (b *Bridge) Close() {
	b.stop.Do(func() { close(b.done) })
}

func (b *Bridge) Success(message string) {
	b.send(notifyMsg{text: message})
}

func (b *Bridge) Failure(message string) {
	b.send(notifyMsg{text: message, failure: true})
}

// BoardChanged is the coordinator's board listener.
func (b *Bridge) BoardChanged(*board.Board) {
	b.send(boardChangedMsg{})
}

func (b *Bridge) send(msg tea.Msg) {
	b.mu.Lock()
	if b.target == nil {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, msg)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *Bridge) drain() {
	for {
		select {
		case <-b.done:
			return
		case <-b.wake:
		}
		for {
			b.mu.Lock()
			if len(b.queue) == 0 {
				b.mu.Unlock()
				break
			}
			msg, target := b.queue[0], b.target
			b.queue[0] = nil
			b.queue = b.queue[1:]
			b.mu.Unlock()
			target.Send(msg)
		}
	}
}
