package service

import (
	"context"
	"log/slog"

	"github.com/central-university-dev/go-reaction-bot/internal/bot/cache"
	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// CachedChatConfigRepository кэширует FindFirstByChat, который вызывается на каждое сообщение в чатах.
// Любое изменение записи удаляет ключ чата и сдвигает его поколение. Запись, прочитанная из хранилища
// до такого изменения, в кэш уже не попадет. Ошибки кэша логируются, запрос уходит в хранилище.
type CachedChatConfigRepository struct {
	ChatConfigRepository
	cache  cache.ChatConfigCache
	logger *slog.Logger
}

func NewCachedChatConfigRepository(repo ChatConfigRepository, chatCache cache.ChatConfigCache, logger *slog.Logger) *CachedChatConfigRepository {
	return &CachedChatConfigRepository{
		ChatConfigRepository: repo,
		cache:                chatCache,
		logger:               logger,
	}
}

func (r *CachedChatConfigRepository) FindFirstByChat(ctx context.Context, chatID int64) (*models.ChatConfig, error) {
	cached, err := r.cache.GetChatConfig(ctx, chatID)

	switch {
	case err != nil:
		metrics.RecordCacheRequest(cacheError)
		r.logger.Error("Ошибка при чтении кэша настроек чата",
			"error", err,
			"chat_id", chatID,
		)
	case cached != nil:
		metrics.RecordCacheRequest(cacheHit)
		return cached, nil
	default:
		metrics.RecordCacheRequest(cacheMiss)
	}

	// Поколение читается до хранилища: инвалидация между этими шагами отменит запись в кэш.
	generation, genErr := r.cache.Generation(ctx, chatID)
	if genErr != nil {
		r.logger.Error("Ошибка при чтении поколения кэша",
			"error", genErr,
			"chat_id", chatID,
		)
	}

	cfg, err := r.ChatConfigRepository.FindFirstByChat(ctx, chatID)
	if err != nil {
		return nil, err
	}

	if genErr != nil {
		return cfg, nil
	}

	if _, err := r.cache.SetChatConfig(ctx, cfg, generation); err != nil {
		r.logger.Error("Ошибка при сохранении настроек чата в кэш",
			"error", err,
			"chat_id", chatID,
		)
	}

	return cfg, nil
}

func (r *CachedChatConfigRepository) Insert(ctx context.Context, cfg *models.ChatConfig) error {
	if err := r.ChatConfigRepository.Insert(ctx, cfg); err != nil {
		return err
	}

	r.invalidate(ctx, cfg.ChatID)

	return nil
}

func (r *CachedChatConfigRepository) UpdateEmojis(ctx context.Context, ownerID, chatID int64, emojis []string) error {
	if err := r.ChatConfigRepository.UpdateEmojis(ctx, ownerID, chatID, emojis); err != nil {
		return err
	}

	r.invalidate(ctx, chatID)

	return nil
}

func (r *CachedChatConfigRepository) ToggleEmoji(
	ctx context.Context,
	ownerID, chatID int64,
	emoji string,
) (*models.ChatConfig, models.ToggleAction, error) {
	cfg, action, err := r.ChatConfigRepository.ToggleEmoji(ctx, ownerID, chatID, emoji)
	if err != nil {
		return nil, "", err
	}

	r.invalidate(ctx, chatID)

	return cfg, action, nil
}

func (r *CachedChatConfigRepository) invalidate(ctx context.Context, chatID int64) {
	if err := r.cache.DeleteChatConfig(ctx, chatID); err != nil {
		r.logger.Error("Ошибка при инвалидации кэша",
			"error", err,
			"chat_id", chatID,
		)
	}
}
