package kafka

import "log/slog"

type MessageWriter = messageWriter

func NewChatConfigPublisherWithWriter(writer MessageWriter, topic string, logger *slog.Logger) *ChatConfigPublisher {
	return newChatConfigPublisher(writer, topic, logger)
}
