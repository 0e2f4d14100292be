package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-reaction-bot/internal/bot/domain"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/service"
	servicemocks "github.com/central-university-dev/go-reaction-bot/internal/bot/service/mocks"
	domainerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

type reaction struct {
	chatID    int64
	messageID int
	emoji     string
}

type recordingReactor struct {
	mu        sync.Mutex
	reactions []reaction
	failOn    map[int]error
}

func (r *recordingReactor) React(_ context.Context, chatID int64, messageID int, emoji string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err, ok := r.failOn[messageID]; ok {
		return err
	}

	r.reactions = append(r.reactions, reaction{chatID: chatID, messageID: messageID, emoji: emoji})

	return nil
}

func TestReactionDispatcher_NotConnectedChat(t *testing.T) {
	repo := servicemocks.NewChatConfigRepository(t)
	repo.On("FindFirstByChat", mock.Anything, testChatID).
		Return(nil, &domainerrors.ErrChatConfigNotFound{ChatID: testChatID})

	reactor := &recordingReactor{}
	dispatcher := service.NewReactionDispatcher(repo, reactor, discardLogger())

	dispatcher.Dispatch(context.Background(), domain.ChatMessageReceived{ChatID: testChatID, MessageID: 1})

	assert.Empty(t, reactor.reactions)
}

func TestReactionDispatcher_EmptySelection(t *testing.T) {
	repo := servicemocks.NewChatConfigRepository(t)
	repo.On("FindFirstByChat", mock.Anything, testChatID).
		Return(&models.ChatConfig{OwnerID: testOwnerID, ChatID: testChatID, Emojis: []string{}}, nil)

	reactor := &recordingReactor{}
	dispatcher := service.NewReactionDispatcher(repo, reactor, discardLogger())

	dispatcher.Dispatch(context.Background(), domain.ChatMessageReceived{ChatID: testChatID, MessageID: 1})

	assert.Empty(t, reactor.reactions)
}

func TestReactionDispatcher_StoreFailureSwallowed(t *testing.T) {
	repo := servicemocks.NewChatConfigRepository(t)
	repo.On("FindFirstByChat", mock.Anything, testChatID).Return(nil, assert.AnError)

	reactor := &recordingReactor{}
	dispatcher := service.NewReactionDispatcher(repo, reactor, discardLogger())

	assert.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), domain.ChatMessageReceived{ChatID: testChatID, MessageID: 1})
	})
	assert.Empty(t, reactor.reactions)
}

func TestReactionDispatcher_UsesPicker(t *testing.T) {
	repo := servicemocks.NewChatConfigRepository(t)
	repo.On("FindFirstByChat", mock.Anything, testChatID).
		Return(&models.ChatConfig{ChatID: testChatID, Emojis: []string{models.EmojiFire, models.EmojiParty}}, nil)

	reactor := &recordingReactor{}
	dispatcher := service.NewReactionDispatcher(repo, reactor, discardLogger()).
		WithPicker(func(n int) int { return n - 1 })

	dispatcher.Dispatch(context.Background(), domain.ChatMessageReceived{ChatID: testChatID, MessageID: 7})

	require.Len(t, reactor.reactions, 1)
	assert.Equal(t, reaction{chatID: testChatID, messageID: 7, emoji: models.EmojiParty}, reactor.reactions[0])
}

func TestReactionDispatcher_Distribution(t *testing.T) {
	const trials = 4000

	selected := []string{models.EmojiThumbsUp, models.EmojiHeart, models.EmojiFire, models.EmojiParty}

	repo := servicemocks.NewChatConfigRepository(t)
	repo.On("FindFirstByChat", mock.Anything, testChatID).
		Return(&models.ChatConfig{ChatID: testChatID, Emojis: selected}, nil)

	reactor := &recordingReactor{}
	dispatcher := service.NewReactionDispatcher(repo, reactor, discardLogger())

	for i := range trials {
		dispatcher.Dispatch(context.Background(), domain.ChatMessageReceived{ChatID: testChatID, MessageID: i})
	}

	require.Len(t, reactor.reactions, trials)

	counts := make(map[string]int)
	for _, r := range reactor.reactions {
		counts[r.emoji]++
	}

	expected := trials / len(selected)
	for _, emoji := range selected {
		assert.InDelta(t, expected, counts[emoji], float64(expected)*0.2, "реакция %s выбирается неравномерно", emoji)
	}

	assert.Len(t, counts, len(selected))
}

func TestReactionDispatcher_ReactionFailureDoesNotStopNextMessages(t *testing.T) {
	repo := servicemocks.NewChatConfigRepository(t)
	repo.On("FindFirstByChat", mock.Anything, testChatID).
		Return(&models.ChatConfig{ChatID: testChatID, Emojis: []string{models.EmojiFire}}, nil)

	reactor := &recordingReactor{failOn: map[int]error{
		1: &domainerrors.ErrReactionApply{ChatID: testChatID, MessageID: 1, Emoji: models.EmojiFire, Cause: assert.AnError},
	}}
	dispatcher := service.NewReactionDispatcher(repo, reactor, discardLogger())

	dispatcher.Dispatch(context.Background(), domain.ChatMessageReceived{ChatID: testChatID, MessageID: 1})
	dispatcher.Dispatch(context.Background(), domain.ChatMessageReceived{ChatID: testChatID, MessageID: 2})

	require.Len(t, reactor.reactions, 1)
	assert.Equal(t, 2, reactor.reactions[0].messageID)
	assert.Equal(t, models.EmojiFire, reactor.reactions[0].emoji)
}
