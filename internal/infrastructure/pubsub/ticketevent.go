package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"ticketboard/internal/domain/ticket"
	"ticketboard/internal/shared/goroutine"
	"ticketboard/internal/shared/logger"
)

const publishTimeout = 5 * time.Second

// TicketChangeEvent is the wire form of a ticket domain event.
type TicketChangeEvent struct {
	Event         string `json:"event"`
	TicketID      uint   `json:"ticket_id"`
	OldStatus     string `json:"old_status,omitempty"`
	NewStatus     string `json:"new_status,omitempty"`
	OldAssigneeID *uint  `json:"old_assignee_id,omitempty"`
	NewAssigneeID *uint  `json:"new_assignee_id,omitempty"`
	ChangedBy     uint   `json:"changed_by"`
	Timestamp     int64  `json:"timestamp"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaTicketEventPublisher writes ticket events to a topic. Publishing is
// best-effort and never blocks the request that produced the events.
type KafkaTicketEventPublisher struct {
	writer messageWriter
	logger logger.Interface
}

// NewKafkaTicketEventPublisher returns a publisher that drops events when
// brokers or topic are empty.
func NewKafkaTicketEventPublisher(brokers []string, topic string, log logger.Interface) *KafkaTicketEventPublisher {
	p := &KafkaTicketEventPublisher{logger: log}
	if len(brokers) == 0 || topic == "" {
		return p
	}
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 10 * time.Millisecond,
	}
	return p
}

// Publish sends the events in the background.
func (p *KafkaTicketEventPublisher) Publish(_ context.Context, events []interface{}) {
	if p.writer == nil || len(events) == 0 {
		return
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		msg, err := toMessage(e)
		if err != nil {
			p.logger.Warnw("skipping ticket event", "error", err)
			continue
		}
		msgs = append(msgs, msg)
	}
	if len(msgs) == 0 {
		return
	}

	goroutine.SafeGo(p.logger, "kafka-ticket-events", func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
			p.logger.Warnw("failed to publish ticket events", "error", err, "count", len(msgs))
		}
	})
}

func (p *KafkaTicketEventPublisher) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

func toMessage(e interface{}) (kafka.Message, error) {
	var payload TicketChangeEvent
	switch ev := e.(type) {
	case ticket.TicketStatusChangedEvent:
		payload = TicketChangeEvent{
			Event:     ev.EventType(),
			TicketID:  ev.TicketID,
			OldStatus: ev.OldStatus,
			NewStatus: ev.NewStatus,
			ChangedBy: ev.ChangedBy,
			Timestamp: ev.Timestamp.UnixMilli(),
		}
	case ticket.TicketAssigneeChangedEvent:
		payload = TicketChangeEvent{
			Event:         ev.EventType(),
			TicketID:      ev.TicketID,
			OldAssigneeID: ev.OldAssigneeID,
			NewAssigneeID: ev.NewAssigneeID,
			ChangedBy:     ev.ChangedBy,
			Timestamp:     ev.Timestamp.UnixMilli(),
		}
	default:
		return kafka.Message{}, fmt.Errorf("unsupported event type %T", e)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("marshal ticket event: %w", err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(payload.TicketID), 10)),
		Value: body,
	}, nil
}
