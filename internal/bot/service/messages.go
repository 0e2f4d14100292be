package service

import (
	"fmt"
	"html"

	"github.com/central-university-dev/go-reaction-bot/internal/bot/domain"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

const (
	TextStart = "<b>👋 Professional Reaction Bot</b>\n\n" +
		"Here is how to use me:\n" +
		"1. Click the buttons below to add me to a Group or Channel.\n" +
		"2. Once added, I will send the <code>Chat ID</code> in that group.\n" +
		"3. Copy that ID and send it here to connect the chat.\n" +
		"4. Use /chat to configure reactions."

	TextInvalidChatID    = "❌ Invalid ID format. It usually starts with -100."
	TextVerifying        = "🔄 Verifying connection..."
	TextChatNotResolved  = "❌ I cannot find that chat. Make sure I am an Admin there!"
	TextConnectionFailed = "❌ Something went wrong while connecting the chat. Please try again later."
	TextSelectChat       = "👇 Select a connected chat to configure reactions:"
	TextNoChats          = "❌ You haven't connected any chats yet.\nSend me a Group/Channel ID first."
	TextChatNotFound     = "Error: Chat not found."

	buttonAddToGroup   = "➕ Add to Group"
	buttonAddToChannel = "➕ Add to Channel"
	buttonBackToChats  = "🔙 Back to Chats"
	activeMark         = "✅"
)

func TextAlreadyConnected(title string) string {
	return fmt.Sprintf("⚠️ <b>%s</b> is already connected!", html.EscapeString(title))
}

func TextConnected(title string) string {
	return fmt.Sprintf("✅ Successfully connected: <b>%s</b>\nUse /chat to configure reactions.", html.EscapeString(title))
}

func TextBotAdded(chatID int64) string {
	return fmt.Sprintf("<b>✅ Bot Successfully Added!</b>\n\n"+
		"The ID of this chat is: <code>%d</code>\n\n"+
		"➡️ Copy this ID and send it to me in Private Message to connect.", chatID)
}

func TextEmojiPanel(chatID int64) string {
	return fmt.Sprintf("Select reactions for Chat ID <code>%d</code>:", chatID)
}

func TextToggled(emoji string, action models.ToggleAction) string {
	return emoji + " " + string(action)
}

func StartKeyboard(botUsername string) domain.InlineKeyboard {
	return domain.InlineKeyboard{
		{
			{Text: buttonAddToGroup, URL: fmt.Sprintf("https://t.me/%s?startgroup=true", botUsername)},
			{Text: buttonAddToChannel, URL: fmt.Sprintf("https://t.me/%s?startchannel=true", botUsername)},
		},
	}
}

func ChatListKeyboard(configs []*models.ChatConfig) domain.InlineKeyboard {
	keyboard := make(domain.InlineKeyboard, 0, len(configs))

	for _, cfg := range configs {
		title := cfg.ChatTitle
		if title == "" {
			title = "Unknown Chat"
		}

		keyboard = append(keyboard, []domain.InlineButton{
			{Text: "📢 " + title, CallbackData: domain.SelectChatData(cfg.ChatID)},
		})
	}

	return keyboard
}

func EmojiPanelKeyboard(panel *EmojiPanel) domain.InlineKeyboard {
	row := make([]domain.InlineButton, 0, len(panel.Items))

	for _, item := range panel.Items {
		text := item.Emoji
		if item.Active {
			text += " " + activeMark
		}

		row = append(row, domain.InlineButton{
			Text:         text,
			CallbackData: domain.ToggleData(panel.ChatID, item.Emoji),
		})
	}

	return domain.InlineKeyboard{
		row,
		{{Text: buttonBackToChats, CallbackData: domain.CallbackBackToChats}},
	}
}
