package service

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"

	"github.com/central-university-dev/go-reaction-bot/internal/bot/domain"
	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
	domainerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

const (
	reactionApplied = "applied"
	reactionFailed  = "failed"
	reactionSkipped = "skipped"
)

type ChatConfigFinder interface {
	FindFirstByChat(ctx context.Context, chatID int64) (*models.ChatConfig, error)
}

type Reactor interface {
	React(ctx context.Context, chatID int64, messageID int, emoji string) error
}

// EmojiPicker возвращает индекс в диапазоне [0, n).
type EmojiPicker func(n int) int

// ReactionDispatcher ставит одну случайную реакцию из настроек чата на каждое сообщение.
// Сообщения обрабатываются независимо, порядок реакций не совпадает с порядком сообщений.
// Ошибки не возвращаются: они логируются и отбрасываются здесь.
type ReactionDispatcher struct {
	finder  ChatConfigFinder
	reactor Reactor
	pick    EmojiPicker
	logger  *slog.Logger
}

func NewReactionDispatcher(finder ChatConfigFinder, reactor Reactor, logger *slog.Logger) *ReactionDispatcher {
	return &ReactionDispatcher{
		finder:  finder,
		reactor: reactor,
		pick:    rand.IntN,
		logger:  logger,
	}
}

func (d *ReactionDispatcher) WithPicker(pick EmojiPicker) *ReactionDispatcher {
	d.pick = pick
	return d
}

func (d *ReactionDispatcher) Dispatch(ctx context.Context, event domain.ChatMessageReceived) {
	cfg, err := d.finder.FindFirstByChat(ctx, event.ChatID)
	if err != nil {
		if !errors.Is(err, &domainerrors.ErrChatConfigNotFound{}) {
			metrics.RecordReaction(reactionFailed)
			d.logger.Error("Ошибка при получении настроек чата для реакции",
				"error", err,
				"chat_id", event.ChatID,
			)

			return
		}

		metrics.RecordReaction(reactionSkipped)

		return
	}

	if len(cfg.Emojis) == 0 {
		metrics.RecordReaction(reactionSkipped)
		d.logger.Debug("Чат подключен, но реакции не выбраны", "chat_id", event.ChatID)

		return
	}

	emoji := cfg.Emojis[d.pick(len(cfg.Emojis))]

	if err := d.reactor.React(ctx, event.ChatID, event.MessageID, emoji); err != nil {
		metrics.RecordReaction(reactionFailed)
		d.logger.Warn("Не удалось поставить реакцию",
			"error", err,
			"chat_id", event.ChatID,
			"message_id", event.MessageID,
			"emoji", emoji,
		)

		return
	}

	metrics.RecordReaction(reactionApplied)
	d.logger.Debug("Реакция поставлена",
		"chat_id", event.ChatID,
		"message_id", event.MessageID,
		"emoji", emoji,
	)
}
