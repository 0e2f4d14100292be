package domain

import (
	"strconv"
	"strings"

	"github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
)

const (
	callbackSelectChatPrefix = "select_chat_"
	callbackTogglePrefix     = "toggle_"
	CallbackBackToChats      = "back_to_chats"
)

type CallbackKind int

const (
	CallbackSelectChat CallbackKind = iota + 1
	CallbackToggle
	CallbackBack
)

type CallbackAction struct {
	Kind   CallbackKind
	ChatID int64
	Emoji  string
}

func SelectChatData(chatID int64) string {
	return callbackSelectChatPrefix + strconv.FormatInt(chatID, 10)
}

func ToggleData(chatID int64, emoji string) string {
	return callbackTogglePrefix + strconv.FormatInt(chatID, 10) + "_" + emoji
}

// ParseCallbackData разбирает данные кнопок форматов select_chat_{id}, toggle_{id}_{emoji} и back_to_chats.
func ParseCallbackData(data string) (*CallbackAction, error) {
	switch {
	case data == CallbackBackToChats:
		return &CallbackAction{Kind: CallbackBack}, nil
	case strings.HasPrefix(data, callbackSelectChatPrefix):
		chatID, err := strconv.ParseInt(strings.TrimPrefix(data, callbackSelectChatPrefix), 10, 64)
		if err != nil {
			return nil, &errors.ErrInvalidCallbackData{Data: data}
		}

		return &CallbackAction{Kind: CallbackSelectChat, ChatID: chatID}, nil
	case strings.HasPrefix(data, callbackTogglePrefix):
		rawChatID, emoji, ok := strings.Cut(strings.TrimPrefix(data, callbackTogglePrefix), "_")
		if !ok || emoji == "" {
			return nil, &errors.ErrInvalidCallbackData{Data: data}
		}

		chatID, err := strconv.ParseInt(rawChatID, 10, 64)
		if err != nil {
			return nil, &errors.ErrInvalidCallbackData{Data: data}
		}

		return &CallbackAction{Kind: CallbackToggle, ChatID: chatID, Emoji: emoji}, nil
	default:
		return nil, &errors.ErrInvalidCallbackData{Data: data}
	}
}
