package errors

import (
	"fmt"
)

// ErrInvalidChatIDFormat возникает, когда пользователь прислал идентификатор чата в неверном формате.
type ErrInvalidChatIDFormat struct {
	Input string
}

func (e *ErrInvalidChatIDFormat) Error() string {
	return "неверный формат идентификатора чата: " + e.Input
}

func (e *ErrInvalidChatIDFormat) Is(target error) bool {
	_, ok := target.(*ErrInvalidChatIDFormat)
	return ok
}

// ErrChatResolution возникает, когда Telegram не может найти чат или у бота нет к нему доступа.
type ErrChatResolution struct {
	ChatID int64
	Cause  error
}

func (e *ErrChatResolution) Error() string {
	return fmt.Sprintf("не удалось получить информацию о чате %d: %v", e.ChatID, e.Cause)
}

func (e *ErrChatResolution) Is(target error) bool {
	_, ok := target.(*ErrChatResolution)
	return ok
}

func (e *ErrChatResolution) Unwrap() error {
	return e.Cause
}

type ErrChatConfigAlreadyExists struct {
	OwnerID   int64
	ChatID    int64
	ChatTitle string
}

func (e *ErrChatConfigAlreadyExists) Error() string {
	return fmt.Sprintf("чат %d уже подключен пользователем %d", e.ChatID, e.OwnerID)
}

func (e *ErrChatConfigAlreadyExists) Is(target error) bool {
	_, ok := target.(*ErrChatConfigAlreadyExists)
	return ok
}

type ErrChatConfigNotFound struct {
	OwnerID int64
	ChatID  int64
}

func (e *ErrChatConfigNotFound) Error() string {
	if e.OwnerID == 0 {
		return fmt.Sprintf("настройки чата %d не найдены", e.ChatID)
	}

	return fmt.Sprintf("настройки чата %d для пользователя %d не найдены", e.ChatID, e.OwnerID)
}

func (e *ErrChatConfigNotFound) Is(target error) bool {
	_, ok := target.(*ErrChatConfigNotFound)
	return ok
}

// ErrReactionApply возникает, когда Telegram отклонил установку реакции.
type ErrReactionApply struct {
	ChatID    int64
	MessageID int
	Emoji     string
	Cause     error
}

func (e *ErrReactionApply) Error() string {
	return fmt.Sprintf("не удалось поставить реакцию %s на сообщение %d в чате %d: %v",
		e.Emoji, e.MessageID, e.ChatID, e.Cause)
}

func (e *ErrReactionApply) Is(target error) bool {
	_, ok := target.(*ErrReactionApply)
	return ok
}

func (e *ErrReactionApply) Unwrap() error {
	return e.Cause
}

type ErrUnknownEmoji struct {
	Emoji string
}

func (e *ErrUnknownEmoji) Error() string {
	return "реакция не входит в каталог: " + e.Emoji
}

func (e *ErrUnknownEmoji) Is(target error) bool {
	_, ok := target.(*ErrUnknownEmoji)
	return ok
}

type ErrInvalidCallbackData struct {
	Data string
}

func (e *ErrInvalidCallbackData) Error() string {
	return "некорректные данные кнопки: " + e.Data
}

func (e *ErrInvalidCallbackData) Is(target error) bool {
	_, ok := target.(*ErrInvalidCallbackData)
	return ok
}

type ErrUnknownCommand struct {
	Command string
}

func (e *ErrUnknownCommand) Error() string {
	return "неизвестная команда: " + e.Command
}

type ErrUnknownStoreType struct {
	StoreType string
}

func (e *ErrUnknownStoreType) Error() string {
	return fmt.Sprintf("неизвестный тип хранилища: %s", e.StoreType)
}

type ErrBuildSQLQuery struct {
	Operation string
	Cause     error
}

func (e *ErrBuildSQLQuery) Error() string {
	return fmt.Sprintf("ошибка при построении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrBuildSQLQuery) Unwrap() error {
	return e.Cause
}

type ErrSQLExecution struct {
	Operation string
	Cause     error
}

func (e *ErrSQLExecution) Error() string {
	return fmt.Sprintf("ошибка при выполнении SQL запроса для %s: %v", e.Operation, e.Cause)
}

func (e *ErrSQLExecution) Unwrap() error {
	return e.Cause
}

type ErrSQLScan struct {
	Entity string
	Cause  error
}

func (e *ErrSQLScan) Error() string {
	return fmt.Sprintf("ошибка при сканировании %s: %v", e.Entity, e.Cause)
}

func (e *ErrSQLScan) Unwrap() error {
	return e.Cause
}

type ErrMongoOperation struct {
	Operation string
	Cause     error
}

func (e *ErrMongoOperation) Error() string {
	return fmt.Sprintf("ошибка MongoDB при %s: %v", e.Operation, e.Cause)
}

func (e *ErrMongoOperation) Unwrap() error {
	return e.Cause
}

const (
	OpFindByOwnerAndChat = "find_by_owner_and_chat"
	OpListByOwner        = "list_by_owner"
	OpInsert             = "insert"
	OpUpdateEmojis       = "update_emojis"
	OpToggleEmoji        = "toggle_emoji"
	OpFindFirstByChat    = "find_first_by_chat"
	OpCount              = "count"
)

type HTTPError struct {
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP error: %d", e.StatusCode)
}
