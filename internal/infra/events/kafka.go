package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"storefront-cart/internal/pkg/config"
	"storefront-cart/internal/pkg/errs"
	"storefront-cart/internal/usecase"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher keys messages by owner so one owner's events stay ordered on a partition.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

func NewKafkaWriter(cfg config.EventsConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		RequiredAcks:           kafka.RequireOne,
		BatchTimeout:           10 * time.Millisecond,
	}
}

func NewKafkaPublisher(writer messageWriter, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{writer: writer, topic: topic, logger: logger}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e usecase.Event) error {
	data, err := json.Marshal(e)
	if err != nil {
		return errs.Wrap(err, "failed to marshal cart event")
	}

	msg := kafka.Message{
		Key:   []byte(e.Owner),
		Value: data,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(e.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "failed to write cart event to %s", p.topic)
	}

	p.logger.DebugContext(ctx, "cart event sent", slog.String("topic", p.topic), slog.String("type", string(e.Type)))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
