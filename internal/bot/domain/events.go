package domain

import "github.com/central-university-dev/go-reaction-bot/internal/domain/models"

// CommandReceived приходит на команду в личном чате с ботом.
type CommandReceived struct {
	Command   models.Command
	MessageID int
}

// TextMessageReceived приходит на обычный текст в личном чате с ботом.
type TextMessageReceived struct {
	ChatID    int64
	UserID    int64
	MessageID int
	Text      string
}

type NewMembersReceived struct {
	ChatID    int64
	MessageID int
	MemberIDs []int64
}

type CallbackActionReceived struct {
	CallbackID string
	Data       string
	ChatID     int64
	MessageID  int
	UserID     int64
}

// ChatMessageReceived приходит на любое сообщение в группе или канале.
type ChatMessageReceived struct {
	ChatID    int64
	MessageID int
}
