package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatConfigEventType string

const (
	EventChatConnected ChatConfigEventType = "chat_connected"
	EventEmojisToggled ChatConfigEventType = "emojis_toggled"
)

type ChatConfigEvent struct {
	ID         string              `json:"id"`
	Type       ChatConfigEventType `json:"type"`
	OwnerID    int64               `json:"owner_id"`
	ChatID     int64               `json:"chat_id"`
	ChatTitle  string              `json:"chat_title"`
	Emojis     []string            `json:"emojis"`
	OccurredAt time.Time           `json:"occurred_at"`
}

func NewChatConfigEvent(eventType ChatConfigEventType, cfg *ChatConfig) *ChatConfigEvent {
	emojis := make([]string, len(cfg.Emojis))
	copy(emojis, cfg.Emojis)

	return &ChatConfigEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		OwnerID:    cfg.OwnerID,
		ChatID:     cfg.ChatID,
		ChatTitle:  cfg.ChatTitle,
		Emojis:     emojis,
		OccurredAt: time.Now().UTC(),
	}
}
