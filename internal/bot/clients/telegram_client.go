package clients

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/central-university-dev/go-reaction-bot/internal/bot/domain"
	domainerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
)

const setMessageReactionMethod = "setMessageReaction"

// variationSelector16 превращает символ в эмодзи-представление. Bot API принимает ❤ только без него.
const variationSelector16 = "\ufe0f"

type TelegramClient struct {
	bot    *tgbotapi.BotAPI
	logger *slog.Logger
}

type reactionType struct {
	Type  string `json:"type"`
	Emoji string `json:"emoji"`
}

// NewTelegramClient создает клиента Bot API. Запросы идут через httpClient,
// что позволяет подставить клиент с circuit breaker.
func NewTelegramClient(token, apiEndpoint string, httpClient tgbotapi.HTTPClient, logger *slog.Logger) (*TelegramClient, error) {
	if apiEndpoint == "" {
		apiEndpoint = tgbotapi.APIEndpoint
	}

	bot, err := tgbotapi.NewBotAPIWithClient(token, apiEndpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании Telegram клиента: %w", err)
	}

	logger.Info("Telegram клиент успешно создан",
		"bot_id", bot.Self.ID,
		"username", bot.Self.UserName,
	)

	return &TelegramClient{
		bot:    bot,
		logger: logger,
	}, nil
}

func (c *TelegramClient) ResolveChat(_ context.Context, chatID int64) (*domain.ChatInfo, error) {
	if c.bot == nil {
		return nil, fmt.Errorf("telegram клиент не инициализирован")
	}

	chat, err := c.bot.GetChat(tgbotapi.ChatInfoConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return nil, &domainerrors.ErrChatResolution{ChatID: chatID, Cause: err}
	}

	return &domain.ChatInfo{
		ID:    chat.ID,
		Title: chat.Title,
		Type:  chat.Type,
	}, nil
}

func (c *TelegramClient) SendMessage(_ context.Context, chatID int64, text string, keyboard domain.InlineKeyboard) (int, error) {
	if c.bot == nil {
		return 0, fmt.Errorf("telegram клиент не инициализирован")
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	msg.DisableWebPagePreview = true

	if markup := toInlineMarkup(keyboard); markup != nil {
		msg.ReplyMarkup = *markup
	}

	sent, err := c.bot.Send(msg)
	if err != nil {
		return 0, fmt.Errorf("ошибка при отправке сообщения: %w", err)
	}

	return sent.MessageID, nil
}

func (c *TelegramClient) EditMessage(_ context.Context, chatID int64, messageID int, text string, keyboard domain.InlineKeyboard) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	edit := tgbotapi.NewEditMessageText(chatID, messageID, text)
	edit.ParseMode = tgbotapi.ModeHTML
	edit.ReplyMarkup = toInlineMarkup(keyboard)

	if _, err := c.bot.Request(edit); err != nil {
		return fmt.Errorf("ошибка при редактировании сообщения: %w", err)
	}

	return nil
}

func (c *TelegramClient) EditKeyboard(_ context.Context, chatID int64, messageID int, keyboard domain.InlineKeyboard) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	markup := toInlineMarkup(keyboard)
	if markup == nil {
		markup = &tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	}

	if _, err := c.bot.Request(tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, *markup)); err != nil {
		return fmt.Errorf("ошибка при обновлении клавиатуры: %w", err)
	}

	return nil
}

func (c *TelegramClient) AnswerCallback(_ context.Context, callbackID, text string, showAlert bool) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	callback := tgbotapi.NewCallback(callbackID, text)
	callback.ShowAlert = showAlert

	if _, err := c.bot.Request(callback); err != nil {
		return fmt.Errorf("ошибка при ответе на нажатие кнопки: %w", err)
	}

	return nil
}

// React ставит реакцию через setMessageReaction. В библиотеке нет типизированного метода,
// поэтому запрос собирается вручную.
func (c *TelegramClient) React(_ context.Context, chatID int64, messageID int, emoji string) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	params := tgbotapi.Params{}
	params.AddNonZero64("chat_id", chatID)
	params.AddNonZero("message_id", messageID)

	reaction := []reactionType{{Type: "emoji", Emoji: NormalizeReactionEmoji(emoji)}}
	if err := params.AddInterface("reaction", reaction); err != nil {
		return &domainerrors.ErrReactionApply{ChatID: chatID, MessageID: messageID, Emoji: emoji, Cause: err}
	}

	if _, err := c.bot.MakeRequest(setMessageReactionMethod, params); err != nil {
		return &domainerrors.ErrReactionApply{ChatID: chatID, MessageID: messageID, Emoji: emoji, Cause: err}
	}

	return nil
}

func (c *TelegramClient) SetMyCommands(_ context.Context, commands []domain.BotCommand) error {
	if c.bot == nil {
		return fmt.Errorf("telegram клиент не инициализирован")
	}

	botAPICommands := make([]tgbotapi.BotCommand, 0, len(commands))
	for _, cmd := range commands {
		botAPICommands = append(botAPICommands, tgbotapi.BotCommand{
			Command:     cmd.Command,
			Description: cmd.Description,
		})
	}

	setCommandsConfig := tgbotapi.NewSetMyCommands(botAPICommands...)

	_, err := c.bot.Request(setCommandsConfig)
	if err != nil {
		return fmt.Errorf("ошибка при установке команд бота: %w", err)
	}

	return nil
}

func (c *TelegramClient) Self() domain.BotIdentity {
	if c.bot == nil {
		return domain.BotIdentity{}
	}

	return domain.BotIdentity{
		ID:       c.bot.Self.ID,
		Username: c.bot.Self.UserName,
	}
}

func (c *TelegramClient) GetBot() *tgbotapi.BotAPI {
	return c.bot
}

func NormalizeReactionEmoji(emoji string) string {
	return strings.ReplaceAll(emoji, variationSelector16, "")
}

func toInlineMarkup(keyboard domain.InlineKeyboard) *tgbotapi.InlineKeyboardMarkup {
	if len(keyboard) == 0 {
		return nil
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))

	for _, row := range keyboard {
		buttons := make([]tgbotapi.InlineKeyboardButton, 0, len(row))

		for _, button := range row {
			if button.URL != "" {
				buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonURL(button.Text, button.URL))
				continue
			}

			buttons = append(buttons, tgbotapi.NewInlineKeyboardButtonData(button.Text, button.CallbackData))
		}

		rows = append(rows, tgbotapi.NewInlineKeyboardRow(buttons...))
	}

	markup := tgbotapi.NewInlineKeyboardMarkup(rows...)

	return &markup
}
