package kafka

import (
	"context"
	"errors"
	"sync"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"eventdesk/pkg/logger"
)

// ErrProducerClosed is returned by Publish after Close.
var ErrProducerClosed = errors.New("kafka producer is closed")

const sourceService = "eventdesk"

// Producer writes booking events to a single topic. Messages are keyed
// by booking id so all events for one booking land on the same
// partition in order.
type Producer struct {
	writer *kafkago.Writer
	log    *logger.Logger

	mu     sync.RWMutex
	closed bool
}

// NewProducer builds a producer for the given brokers and topic.
func NewProducer(brokers []string, topic string, log *logger.Logger) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, errors.New("at least one broker is required")
	}
	if topic == "" {
		return nil, errors.New("topic cannot be empty")
	}

	writer := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
		Compression:  kafkago.Snappy,
		MaxAttempts:  3,
		BatchTimeout: 50 * time.Millisecond,
		Logger:       kafkago.LoggerFunc(func(string, ...any) {}),
		ErrorLogger: kafkago.LoggerFunc(func(msg string, args ...any) {
			log.Error("kafka writer error", "detail", msg)
		}),
	}

	return &Producer{writer: writer, log: log}, nil
}

// Publish sends a booking event. It is safe for concurrent use.
func (p *Producer) Publish(ctx context.Context, event BookingEvent) error {
	p.mu.RLock()
	if p.closed {
		p.mu.RUnlock()
		return ErrProducerClosed
	}
	p.mu.RUnlock()

	value, err := event.Encode()
	if err != nil {
		return err
	}

	msg := kafkago.Message{
		Key:   []byte(event.BookingID),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafkago.Header{
			{Key: HeaderEventID, Value: []byte(event.EventID)},
			{Key: HeaderEventType, Value: []byte(event.EventType)},
			{Key: HeaderSource, Value: []byte(sourceService)},
			{Key: HeaderTimestamp, Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

// Close flushes pending messages and releases the writer.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true
	return p.writer.Close()
}
