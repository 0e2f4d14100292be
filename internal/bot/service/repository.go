package service

import (
	"context"
	"log/slog"

	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

// ChatConfigRepository хранит настройки реакций. Все методы, не нашедшие запись,
// возвращают *errors.ErrChatConfigNotFound.
type ChatConfigRepository interface {
	FindByOwnerAndChat(ctx context.Context, ownerID, chatID int64) (*models.ChatConfig, error)

	ListByOwner(ctx context.Context, ownerID int64) ([]*models.ChatConfig, error)

	Insert(ctx context.Context, cfg *models.ChatConfig) error

	UpdateEmojis(ctx context.Context, ownerID, chatID int64, emojis []string) error

	// ToggleEmoji атомарно удаляет emoji из набора, если он там есть, иначе добавляет в конец.
	ToggleEmoji(ctx context.Context, ownerID, chatID int64, emoji string) (*models.ChatConfig, models.ToggleAction, error)

	// FindFirstByChat возвращает одну из записей чата. Если чат подключили несколько владельцев,
	// какая именно запись вернется, не определено.
	FindFirstByChat(ctx context.Context, chatID int64) (*models.ChatConfig, error)

	Count(ctx context.Context) (int64, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event *models.ChatConfigEvent) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, *models.ChatConfigEvent) error {
	return nil
}

func publishEvent(ctx context.Context, publisher EventPublisher, event *models.ChatConfigEvent, logger *slog.Logger) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Не удалось опубликовать событие изменения настроек",
			"error", err,
			"event_type", event.Type,
			"chat_id", event.ChatID,
		)
	}
}
