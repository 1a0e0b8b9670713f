package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Audit event names.
const (
	UserApproved       = "user.approved"
	UserPromoted       = "user.promoted"
	UserDeleted        = "user.deleted"
	MediaCreated       = "media.created"
	MediaUpdated       = "media.updated"
	MediaDeleted       = "media.deleted"
	MediaCleanupFailed = "media.cleanup_failed"
)

type Event struct {
	Name     string            `json:"name"`
	EntityID string            `json:"entity_id"`
	Actor    string            `json:"actor,omitempty"`
	At       time.Time         `json:"at"`
	Fields   map[string]string `json:"fields,omitempty"`
}

// Publisher writes audit events to Kafka. A nil Publisher is valid and drops
// everything, so callers never branch on whether auditing is configured.
type Publisher struct {
	writer *kafka.Writer
	log    *zap.SugaredLogger
}

func NewPublisher(brokers []string, topic string, log *zap.SugaredLogger) *Publisher {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	w := kafka.NewWriter(kafka.WriterConfig{
		Brokers:  brokers,
		Topic:    topic,
		Balancer: &kafka.LeastBytes{},
	})
	return &Publisher{writer: w, log: log}
}

// Publish is best-effort: a broker failure is logged, never surfaced to the
// request that produced the event.
func (p *Publisher) Publish(ctx context.Context, name, entityID, actor string, fields map[string]string) {
	if p == nil {
		return
	}
	ev := Event{Name: name, EntityID: entityID, Actor: actor, At: time.Now().UTC(), Fields: fields}
	b, err := json.Marshal(ev)
	if err != nil {
		p.log.Errorw("marshal audit event", "event", name, "err", err)
		return
	}
	wctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.writer.WriteMessages(wctx, kafka.Message{Key: []byte(entityID), Value: b, Time: ev.At}); err != nil {
		p.log.Errorw("publish audit event", "event", name, "entity", entityID, "err", err)
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
