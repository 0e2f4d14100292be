package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
	domainerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

type EmojiState struct {
	Emoji  string
	Active bool
}

// EmojiPanel всегда содержит все реакции каталога в порядке каталога.
type EmojiPanel struct {
	ChatID int64
	Items  []EmojiState
}

type ToggleResult struct {
	Config *models.ChatConfig
	Action models.ToggleAction
}

type SelectionService struct {
	repo      ChatConfigRepository
	publisher EventPublisher
	logger    *slog.Logger
}

func NewSelectionService(repo ChatConfigRepository, publisher EventPublisher, logger *slog.Logger) *SelectionService {
	if publisher == nil {
		publisher = noopPublisher{}
	}

	return &SelectionService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *SelectionService) ListChats(ctx context.Context, ownerID int64) ([]*models.ChatConfig, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Panel строит панель выбора реакций. Если записи нет, все реакции показываются неактивными.
func (s *SelectionService) Panel(ctx context.Context, ownerID, chatID int64) (*EmojiPanel, error) {
	cfg, err := s.repo.FindByOwnerAndChat(ctx, ownerID, chatID)
	if err != nil {
		if !errors.Is(err, &domainerrors.ErrChatConfigNotFound{}) {
			return nil, err
		}

		s.logger.Debug("Настройки чата не найдены, панель показана без активных реакций",
			"owner_id", ownerID,
			"chat_id", chatID,
		)

		cfg = &models.ChatConfig{OwnerID: ownerID, ChatID: chatID}
	}

	return NewEmojiPanel(chatID, cfg.Emojis), nil
}

func (s *SelectionService) Toggle(ctx context.Context, ownerID, chatID int64, emoji string) (*ToggleResult, error) {
	if !models.IsCatalogEmoji(emoji) {
		return nil, &domainerrors.ErrUnknownEmoji{Emoji: emoji}
	}

	cfg, action, err := s.repo.ToggleEmoji(ctx, ownerID, chatID, emoji)
	if err != nil {
		return nil, err
	}

	metrics.RecordToggle(string(action))

	s.logger.Info("Набор реакций изменен",
		"owner_id", ownerID,
		"chat_id", chatID,
		"emoji", emoji,
		"action", action,
		"emojis", cfg.Emojis,
	)

	publishEvent(ctx, s.publisher, models.NewChatConfigEvent(models.EventEmojisToggled, cfg), s.logger)

	return &ToggleResult{Config: cfg, Action: action}, nil
}

func NewEmojiPanel(chatID int64, active []string) *EmojiPanel {
	cfg := models.ChatConfig{Emojis: active}
	items := make([]EmojiState, 0, len(models.Catalog))

	for _, emoji := range models.Catalog {
		items = append(items, EmojiState{Emoji: emoji, Active: cfg.HasEmoji(emoji)})
	}

	return &EmojiPanel{ChatID: chatID, Items: items}
}
