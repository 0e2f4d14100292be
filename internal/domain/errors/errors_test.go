package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
)

func TestErrChatConfigNotFound_IsMatchesAnyInstance(t *testing.T) {
	err := fmt.Errorf("обертка: %w", &domainerrors.ErrChatConfigNotFound{OwnerID: 1, ChatID: -100})

	assert.ErrorIs(t, err, &domainerrors.ErrChatConfigNotFound{})
	assert.NotErrorIs(t, err, &domainerrors.ErrChatConfigAlreadyExists{})
}

func TestErrChatConfigNotFound_Message(t *testing.T) {
	withOwner := &domainerrors.ErrChatConfigNotFound{OwnerID: 7, ChatID: -100}
	withoutOwner := &domainerrors.ErrChatConfigNotFound{ChatID: -100}

	assert.Contains(t, withOwner.Error(), "7")
	assert.NotContains(t, withoutOwner.Error(), "пользователя")
}

func TestErrReactionApply_Unwrap(t *testing.T) {
	cause := errors.New("Bad Request: REACTION_INVALID")
	err := &domainerrors.ErrReactionApply{ChatID: -100, MessageID: 5, Emoji: "🔥", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "🔥")
}

func TestErrChatResolution_As(t *testing.T) {
	var target *domainerrors.ErrChatResolution

	err := fmt.Errorf("подключение: %w", &domainerrors.ErrChatResolution{ChatID: -100, Cause: errors.New("chat not found")})

	assert.True(t, errors.As(err, &target))
	assert.Equal(t, int64(-100), target.ChatID)
}
