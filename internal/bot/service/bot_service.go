package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/central-university-dev/go-reaction-bot/internal/bot/domain"
	domainerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

var chatIDPattern = regexp.MustCompile(`^-100\d+`)

// BotService переводит входящие события Telegram в вызовы сервисов и отрисовывает ответы.
type BotService struct {
	telegramClient domain.TelegramClientAPI
	handshake      *HandshakeService
	selection      *SelectionService
	dispatcher     *ReactionDispatcher
	logger         *slog.Logger
}

func NewBotService(
	telegramClient domain.TelegramClientAPI,
	handshake *HandshakeService,
	selection *SelectionService,
	dispatcher *ReactionDispatcher,
	logger *slog.Logger,
) *BotService {
	return &BotService{
		telegramClient: telegramClient,
		handshake:      handshake,
		selection:      selection,
		dispatcher:     dispatcher,
		logger:         logger,
	}
}

func (s *BotService) HandleCommand(ctx context.Context, event domain.CommandReceived) error {
	cmd := event.Command

	switch cmd.Type {
	case models.CommandStart:
		return s.send(ctx, cmd.ChatID, TextStart, StartKeyboard(s.telegramClient.Self().Username))
	case models.CommandChat:
		return s.sendChatList(ctx, cmd.ChatID, cmd.UserID)
	case models.CommandUnknown:
		s.logger.Debug("Неизвестная команда проигнорирована",
			"chat_id", cmd.ChatID,
			"text", cmd.Text,
		)

		return nil
	default:
		return &domainerrors.ErrUnknownCommand{Command: string(cmd.Type)}
	}
}

// HandleText запускает подключение чата, если текст похож на идентификатор группы или канала.
// Остальной текст в личном чате игнорируется.
func (s *BotService) HandleText(ctx context.Context, event domain.TextMessageReceived) error {
	text := strings.TrimSpace(event.Text)
	if !chatIDPattern.MatchString(text) {
		return nil
	}

	chatID, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		s.logger.Debug("Некорректный идентификатор чата",
			"error", &domainerrors.ErrInvalidChatIDFormat{Input: text},
			"user_id", event.UserID,
		)

		return s.send(ctx, event.ChatID, TextInvalidChatID, nil)
	}

	statusID, err := s.telegramClient.SendMessage(ctx, event.ChatID, TextVerifying, nil)
	if err != nil {
		return fmt.Errorf("ошибка при отправке статуса проверки: %w", err)
	}

	cfg, err := s.handshake.Connect(ctx, event.UserID, chatID)

	return s.telegramClient.EditMessage(ctx, event.ChatID, statusID, s.handshakeResultText(cfg, err, chatID), nil)
}

func (s *BotService) handshakeResultText(cfg *models.ChatConfig, err error, chatID int64) string {
	var alreadyErr *domainerrors.ErrChatConfigAlreadyExists

	switch {
	case err == nil:
		return TextConnected(cfg.ChatTitle)
	case errors.As(err, &alreadyErr):
		return TextAlreadyConnected(alreadyErr.ChatTitle)
	case errors.Is(err, &domainerrors.ErrChatResolution{}):
		s.logger.Info("Чат не найден или бот не является его участником",
			"chat_id", chatID,
			"error", err,
		)

		return TextChatNotResolved
	default:
		s.logger.Error("Ошибка при подключении чата",
			"chat_id", chatID,
			"error", err,
		)

		return TextConnectionFailed
	}
}

func (s *BotService) HandleCallback(ctx context.Context, event domain.CallbackActionReceived) error {
	action, err := domain.ParseCallbackData(event.Data)
	if err != nil {
		s.logger.Warn("Получены некорректные данные кнопки",
			"error", err,
			"user_id", event.UserID,
		)

		return s.telegramClient.AnswerCallback(ctx, event.CallbackID, "", false)
	}

	switch action.Kind {
	case domain.CallbackSelectChat:
		return s.showPanel(ctx, event, action.ChatID)
	case domain.CallbackToggle:
		return s.toggle(ctx, event, action)
	case domain.CallbackBack:
		return s.backToChats(ctx, event)
	default:
		return s.telegramClient.AnswerCallback(ctx, event.CallbackID, "", false)
	}
}

func (s *BotService) showPanel(ctx context.Context, event domain.CallbackActionReceived, chatID int64) error {
	panel, err := s.selection.Panel(ctx, event.UserID, chatID)
	if err != nil {
		return fmt.Errorf("ошибка при построении панели реакций: %w", err)
	}

	if err := s.telegramClient.EditMessage(ctx, event.ChatID, event.MessageID,
		TextEmojiPanel(chatID), EmojiPanelKeyboard(panel)); err != nil {
		return err
	}

	return s.telegramClient.AnswerCallback(ctx, event.CallbackID, "", false)
}

func (s *BotService) toggle(ctx context.Context, event domain.CallbackActionReceived, action *domain.CallbackAction) error {
	result, err := s.selection.Toggle(ctx, event.UserID, action.ChatID, action.Emoji)
	if err != nil {
		switch {
		case errors.Is(err, &domainerrors.ErrChatConfigNotFound{}):
			return s.telegramClient.AnswerCallback(ctx, event.CallbackID, TextChatNotFound, true)
		case errors.Is(err, &domainerrors.ErrUnknownEmoji{}):
			s.logger.Warn("Попытка переключить реакцию вне каталога",
				"error", err,
				"user_id", event.UserID,
			)

			return s.telegramClient.AnswerCallback(ctx, event.CallbackID, "", false)
		default:
			return fmt.Errorf("ошибка при переключении реакции: %w", err)
		}
	}

	panel := NewEmojiPanel(action.ChatID, result.Config.Emojis)

	if err := s.telegramClient.EditKeyboard(ctx, event.ChatID, event.MessageID, EmojiPanelKeyboard(panel)); err != nil {
		return err
	}

	return s.telegramClient.AnswerCallback(ctx, event.CallbackID, TextToggled(action.Emoji, result.Action), false)
}

func (s *BotService) backToChats(ctx context.Context, event domain.CallbackActionReceived) error {
	configs, err := s.selection.ListChats(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("ошибка при получении списка чатов: %w", err)
	}

	if len(configs) == 0 {
		err = s.telegramClient.EditMessage(ctx, event.ChatID, event.MessageID, TextNoChats, nil)
	} else {
		err = s.telegramClient.EditMessage(ctx, event.ChatID, event.MessageID, TextSelectChat, ChatListKeyboard(configs))
	}

	if err != nil {
		return err
	}

	return s.telegramClient.AnswerCallback(ctx, event.CallbackID, "", false)
}

// HandleNewMembers сообщает идентификатор чата, когда в него добавили самого бота.
func (s *BotService) HandleNewMembers(ctx context.Context, event domain.NewMembersReceived) error {
	self := s.telegramClient.Self()

	for _, memberID := range event.MemberIDs {
		if memberID != self.ID {
			continue
		}

		s.logger.Info("Бот добавлен в чат", "chat_id", event.ChatID)

		return s.send(ctx, event.ChatID, TextBotAdded(event.ChatID), nil)
	}

	return nil
}

func (s *BotService) HandleChatMessage(ctx context.Context, event domain.ChatMessageReceived) {
	s.dispatcher.Dispatch(ctx, event)
}

func (s *BotService) sendChatList(ctx context.Context, chatID, ownerID int64) error {
	configs, err := s.selection.ListChats(ctx, ownerID)
	if err != nil {
		return fmt.Errorf("ошибка при получении списка чатов: %w", err)
	}

	if len(configs) == 0 {
		return s.send(ctx, chatID, TextNoChats, nil)
	}

	return s.send(ctx, chatID, TextSelectChat, ChatListKeyboard(configs))
}

func (s *BotService) send(ctx context.Context, chatID int64, text string, keyboard domain.InlineKeyboard) error {
	_, err := s.telegramClient.SendMessage(ctx, chatID, text, keyboard)
	return err
}
