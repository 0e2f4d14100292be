package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ChatConfigPublisher отправляет события изменения настроек чатов. Ключ сообщения равен
// идентификатору чата, поэтому события одного чата попадают в одну партицию.
type ChatConfigPublisher struct {
	writer messageWriter
	topic  string
	logger *slog.Logger
}

func NewChatConfigPublisher(brokers []string, topic string, logger *slog.Logger) *ChatConfigPublisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(logger.Debug),
		ErrorLogger:            kafka.LoggerFunc(logger.Error),
	}

	return newChatConfigPublisher(writer, topic, logger)
}

func newChatConfigPublisher(writer messageWriter, topic string, logger *slog.Logger) *ChatConfigPublisher {
	return &ChatConfigPublisher{
		writer: writer,
		topic:  topic,
		logger: logger,
	}
}

func (p *ChatConfigPublisher) Publish(ctx context.Context, event *models.ChatConfigEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("ошибка при сериализации события: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.ChatID, 10)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
		},
		Time: event.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("ошибка при отправке события в Kafka: %w", err)
	}

	p.logger.Debug("Событие отправлено в Kafka",
		"event_id", event.ID,
		"event_type", event.Type,
		"chat_id", event.ChatID,
		"topic", p.topic,
	)

	return nil
}

func (p *ChatConfigPublisher) Close() error {
	return p.writer.Close()
}
