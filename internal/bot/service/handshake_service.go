package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/central-university-dev/go-reaction-bot/internal/bot/domain"
	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
	domainerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

const (
	handshakeConnected        = "connected"
	handshakeAlreadyConnected = "already_connected"
	handshakeRejected         = "rejected"
	handshakeFailed           = "failed"
)

// HandshakeService подключает чат: проверяет его через Telegram и создает запись с пустым набором реакций.
// Повторных попыток нет, при любой ошибке пользователь присылает идентификатор заново.
type HandshakeService struct {
	repo           ChatConfigRepository
	telegramClient domain.TelegramClientAPI
	publisher      EventPublisher
	logger         *slog.Logger
}

func NewHandshakeService(
	repo ChatConfigRepository,
	telegramClient domain.TelegramClientAPI,
	publisher EventPublisher,
	logger *slog.Logger,
) *HandshakeService {
	if publisher == nil {
		publisher = noopPublisher{}
	}

	return &HandshakeService{
		repo:           repo,
		telegramClient: telegramClient,
		publisher:      publisher,
		logger:         logger,
	}
}

func (s *HandshakeService) Connect(ctx context.Context, ownerID, chatID int64) (*models.ChatConfig, error) {
	info, err := s.telegramClient.ResolveChat(ctx, chatID)
	if err != nil {
		metrics.RecordHandshake(handshakeRejected)

		var resolutionErr *domainerrors.ErrChatResolution
		if errors.As(err, &resolutionErr) {
			return nil, err
		}

		return nil, &domainerrors.ErrChatResolution{ChatID: chatID, Cause: err}
	}

	_, err = s.repo.FindByOwnerAndChat(ctx, ownerID, chatID)

	switch {
	case err == nil:
		metrics.RecordHandshake(handshakeAlreadyConnected)
		return nil, &domainerrors.ErrChatConfigAlreadyExists{OwnerID: ownerID, ChatID: chatID, ChatTitle: info.Title}
	case !errors.Is(err, &domainerrors.ErrChatConfigNotFound{}):
		metrics.RecordHandshake(handshakeFailed)
		return nil, err
	}

	cfg := models.NewChatConfig(ownerID, chatID, info.Title)

	if err := s.repo.Insert(ctx, cfg); err != nil {
		// Параллельное подключение того же чата тем же пользователем.
		if errors.Is(err, &domainerrors.ErrChatConfigAlreadyExists{}) {
			metrics.RecordHandshake(handshakeAlreadyConnected)
			return nil, &domainerrors.ErrChatConfigAlreadyExists{OwnerID: ownerID, ChatID: chatID, ChatTitle: info.Title}
		}

		metrics.RecordHandshake(handshakeFailed)

		return nil, err
	}

	metrics.RecordHandshake(handshakeConnected)

	s.logger.Info("Чат подключен",
		"owner_id", ownerID,
		"chat_id", chatID,
		"chat_title", info.Title,
	)

	publishEvent(ctx, s.publisher, models.NewChatConfigEvent(models.EventChatConnected, cfg), s.logger)

	return cfg, nil
}
