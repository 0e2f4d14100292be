package models

type CommandType string

const (
	CommandStart   CommandType = "/start"
	CommandChat    CommandType = "/chat"
	CommandUnknown CommandType = "unknown"
)

type Command struct {
	Type     CommandType
	ChatID   int64
	UserID   int64
	Text     string
	Username string
}

func ParseCommandType(name string) CommandType {
	switch CommandType("/" + name) {
	case CommandStart:
		return CommandStart
	case CommandChat:
		return CommandChat
	default:
		return CommandUnknown
	}
}
