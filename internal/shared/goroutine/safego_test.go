package goroutine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketboard/internal/shared/logger"
)

func TestSafeGo_RecoversPanic(t *testing.T) {
	ran := make(chan struct{})
	SafeGo(logger.NewNopLogger(), "panicky", func() {
		close(ran)
		panic("boom")
	})

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("goroutine did not run")
	}
}

func TestAsync(t *testing.T) {
	log := logger.NewNopLogger()
	sentinel := errors.New("sentinel")

	tests := []struct {
		name   string
		fn     func() error
		assert func(t *testing.T, err error)
	}{
		{
			name:   "nil error",
			fn:     func() error { return nil },
			assert: func(t *testing.T, err error) { assert.NoError(t, err) },
		},
		{
			name:   "returned error",
			fn:     func() error { return sentinel },
			assert: func(t *testing.T, err error) { assert.ErrorIs(t, err, sentinel) },
		},
		{
			name: "panic becomes error",
			fn:   func() error { panic("kaput") },
			assert: func(t *testing.T, err error) {
				var pErr *PanicError
				require.ErrorAs(t, err, &pErr)
				assert.Equal(t, "worker", pErr.Name)
				assert.Equal(t, "kaput", pErr.Value)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			select {
			case err := <-Async(log, "worker", tt.fn):
				tt.assert(t, err)
			case <-time.After(time.Second):
				t.Fatal("no result delivered")
			}
		})
	}
}
