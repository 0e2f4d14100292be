package models

import (
	"slices"
	"time"
)

const (
	EmojiThumbsUp = "👍"
	EmojiHeart    = "❤️"
	EmojiFire     = "🔥"
	EmojiParty    = "🎉"
)

// Catalog содержит все реакции, доступные для выбора, в порядке отображения.
var Catalog = []string{EmojiThumbsUp, EmojiHeart, EmojiFire, EmojiParty}

func IsCatalogEmoji(emoji string) bool {
	return slices.Contains(Catalog, emoji)
}

// ChatConfig связывает владельца, подключенный чат и выбранные для него реакции.
// Пара (OwnerID, ChatID) уникальна.
type ChatConfig struct {
	OwnerID   int64
	ChatID    int64
	ChatTitle string
	Emojis    []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewChatConfig(ownerID, chatID int64, title string) *ChatConfig {
	now := time.Now()

	return &ChatConfig{
		OwnerID:   ownerID,
		ChatID:    chatID,
		ChatTitle: title,
		Emojis:    []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c *ChatConfig) HasEmoji(emoji string) bool {
	return slices.Contains(c.Emojis, emoji)
}

type ToggleAction string

const (
	ToggleAdded   ToggleAction = "Added"
	ToggleRemoved ToggleAction = "Removed"
)

// ToggleEmoji возвращает новый набор реакций: emoji удаляется, если уже есть, иначе добавляется в конец.
// Исходный срез не изменяется.
func ToggleEmoji(emojis []string, emoji string) ([]string, ToggleAction) {
	if slices.Contains(emojis, emoji) {
		result := make([]string, 0, len(emojis))

		for _, e := range emojis {
			if e != emoji {
				result = append(result, e)
			}
		}

		return result, ToggleRemoved
	}

	result := make([]string, 0, len(emojis)+1)
	result = append(result, emojis...)

	return append(result, emoji), ToggleAdded
}
