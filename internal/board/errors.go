package board

import (
	"context"
	stderrors "errors"
	"fmt"

	"ticketboard/internal/shared/constants"
)

// FailureKind classifies a rejected mutation.
type FailureKind int

const (
	// KindConnectivity covers transport failures, timeouts and anything unclassified.
	KindConnectivity FailureKind = iota
	KindNotFound
	KindValidation
	KindForbidden
)

func (k FailureKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindValidation:
		return "validation"
	case KindForbidden:
		return "forbidden"
	default:
		return "connectivity"
	}
}

// Retryable is true only for connectivity failures.
func (k FailureKind) Retryable() bool {
	return k == KindConnectivity
}

// MutationError is returned by a Backend when the server rejects a request.
type MutationError struct {
	Kind   FailureKind
	Reason string
	Err    error
}

func (e *MutationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// Classify maps any error to a MutationError.
func Classify(err error) *MutationError {
	var mErr *MutationError
	if stderrors.As(err, &mErr) {
		return mErr
	}
	if stderrors.Is(err, context.DeadlineExceeded) {
		return &MutationError{Kind: KindConnectivity, Reason: "request timed out", Err: err}
	}
	return &MutationError{Kind: KindConnectivity, Reason: "request failed", Err: err}
}

// UserMessage is the notification text for a failure.
func (e *MutationError) UserMessage() string {
	switch e.Kind {
	case KindNotFound:
		return constants.MsgTicketNotFound
	case KindForbidden:
		return constants.MsgPermissionDenied
	case KindValidation:
		if e.Reason != "" {
			return e.Reason
		}
		return "The change was rejected."
	default:
		return constants.MsgRetry
	}
}
