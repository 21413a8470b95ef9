// Package kafka announces committed status changes on a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"routetrail/internal/core/domain/model/ledger"

	"github.com/IBM/sarama"
)

const EventTypeStatusChanged = "status_changed"

// StatusChangedEvent is the message body. Messages are keyed by entity id so
// every change of one entity lands on the same partition in order.
type StatusChangedEvent struct {
	EntryID    string    `json:"entry_id"`
	Seq        int64     `json:"seq"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	Note       string    `json:"note,omitempty"`
}

// StatusEventPublisher implements ports.StatusEventPublisher on a sarama
// SyncProducer.
type StatusEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewProducerConfig returns the producer settings used in production.
func NewProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true
	config.Producer.Compression = sarama.CompressionSnappy
	config.Producer.Partitioner = sarama.NewHashPartitioner
	return config
}

// NewStatusEventPublisher connects a SyncProducer to brokers.
func NewStatusEventPublisher(brokers []string, topic string, logger *slog.Logger) (*StatusEventPublisher, error) {
	producer, err := sarama.NewSyncProducer(brokers, NewProducerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return NewStatusEventPublisherWithProducer(producer, topic, logger), nil
}

func NewStatusEventPublisherWithProducer(
	producer sarama.SyncProducer,
	topic string,
	logger *slog.Logger,
) *StatusEventPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &StatusEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   logger.With("component", "status-event-publisher"),
	}
}

func (p *StatusEventPublisher) Close() error {
	return p.producer.Close()
}

func (p *StatusEventPublisher) PublishStatusChanged(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	event := eventOf(entry)
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.EntityID),
		Value: sarama.ByteEncoder(data),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(EventTypeStatusChanged)},
			{Key: []byte("entity_type"), Value: []byte(event.EntityType)},
		},
		Timestamp: event.Timestamp,
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to send message to topic %s: %w", p.topic, err)
	}

	p.logger.DebugContext(ctx, "status event published",
		"topic", p.topic,
		"partition", partition,
		"offset", offset,
		"entity", entry.Ref().String(),
		"status", event.Status,
	)
	return nil
}

func eventOf(entry *ledger.Entry) StatusChangedEvent {
	event := StatusChangedEvent{
		EntryID:    entry.ID().String(),
		Seq:        entry.Seq(),
		EntityType: entry.Ref().Kind.String(),
		EntityID:   entry.Ref().ID.String(),
		Status:     entry.Status().String(),
		Timestamp:  entry.Timestamp().UTC(),
		Note:       entry.Note(),
	}
	if geo := entry.Geo(); geo != nil {
		lat, lng := geo.Lat(), geo.Lng()
		event.Latitude = &lat
		event.Longitude = &lng
	}
	return event
}
