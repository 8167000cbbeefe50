package board

import "ticketboard/internal/shared/logger"

// Notifier surfaces transient messages to the user.
type Notifier interface {
	Success(message string)
	Failure(message string)
}

// LogNotifier writes notifications to a logger.
type LogNotifier struct {
	logger logger.Interface
}

func NewLogNotifier(log logger.Interface) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) Success(message string) {
	n.logger.Infow("notification", "kind", "success", "message", message)
}

func (n *LogNotifier) Failure(message string) {
	n.logger.Warnw("notification", "kind", "failure", "message", message)
}

// Notifiers fans every message out to each notifier in order.
type Notifiers []Notifier

func (ns Notifiers) Success(message string) {
	for _, n := range ns {
		n.Success(message)
	}
}

func (ns Notifiers) Failure(message string) {
	for _, n := range ns {
		n.Failure(message)
	}
}
