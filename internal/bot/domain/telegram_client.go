package domain

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type BotCommand struct {
	Command     string
	Description string
}

type ChatInfo struct {
	ID    int64
	Title string
	Type  string
}

type BotIdentity struct {
	ID       int64
	Username string
}

// InlineButton описывает кнопку клавиатуры: либо CallbackData, либо URL.
type InlineButton struct {
	Text         string
	CallbackData string
	URL          string
}

type InlineKeyboard [][]InlineButton

type TelegramClientAPI interface {
	ResolveChat(ctx context.Context, chatID int64) (*ChatInfo, error)

	SendMessage(ctx context.Context, chatID int64, text string, keyboard InlineKeyboard) (int, error)

	EditMessage(ctx context.Context, chatID int64, messageID int, text string, keyboard InlineKeyboard) error

	EditKeyboard(ctx context.Context, chatID int64, messageID int, keyboard InlineKeyboard) error

	AnswerCallback(ctx context.Context, callbackID, text string, showAlert bool) error

	React(ctx context.Context, chatID int64, messageID int, emoji string) error

	SetMyCommands(ctx context.Context, commands []BotCommand) error

	Self() BotIdentity

	GetBot() *tgbotapi.BotAPI
}
