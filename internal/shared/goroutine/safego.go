// Package goroutine starts background work whose panics are logged
// instead of taking the process down.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"ticketboard/internal/shared/logger"
)

// PanicError is what Async reports when its function panicked.
type PanicError struct {
	Name  string
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("%s panicked: %v", e.Name, e.Value)
}

// SafeGo runs fn on its own goroutine.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer recoverPanic(log, name, nil)
		fn()
	}()
}

// Async runs fn on its own goroutine and delivers exactly one value on the
// returned channel: fn's error, nil, or a *PanicError. The channel is
// buffered, so an abandoned receiver does not leak the goroutine.
func Async(log logger.Interface, name string, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer recoverPanic(log, name, done)
		done <- fn()
	}()
	return done
}

func recoverPanic(log logger.Interface, name string, done chan<- error) {
	r := recover()
	if r == nil {
		return
	}
	log.Errorw("goroutine panicked",
		"goroutine", name,
		"panic", fmt.Sprintf("%v", r),
		"stack", string(debug.Stack()),
	)
	if done != nil {
		done <- &PanicError{Name: name, Value: r}
	}
}
