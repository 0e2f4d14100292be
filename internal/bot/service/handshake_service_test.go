package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-reaction-bot/internal/bot/domain"
	domainmocks "github.com/central-university-dev/go-reaction-bot/internal/bot/domain/mocks"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/service"
	servicemocks "github.com/central-university-dev/go-reaction-bot/internal/bot/service/mocks"
	domainerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

const (
	testOwnerID   = int64(42)
	testChatID    = int64(-1001234567890)
	testChatTitle = "Go Channel"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHandshakeService_Connect_NewChat(t *testing.T) {
	repo := servicemocks.NewChatConfigRepository(t)
	telegramClient := domainmocks.NewTelegramClientAPI(t)
	publisher := servicemocks.NewEventPublisher(t)

	telegramClient.On("ResolveChat", mock.Anything, testChatID).
		Return(&domain.ChatInfo{ID: testChatID, Title: testChatTitle, Type: "channel"}, nil)
	repo.On("FindByOwnerAndChat", mock.Anything, testOwnerID, testChatID).
		Return(nil, &domainerrors.ErrChatConfigNotFound{OwnerID: testOwnerID, ChatID: testChatID})
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(cfg *models.ChatConfig) bool {
		return cfg.OwnerID == testOwnerID && cfg.ChatID == testChatID &&
			cfg.ChatTitle == testChatTitle && len(cfg.Emojis) == 0
	})).Return(nil)
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(event *models.ChatConfigEvent) bool {
		return event.Type == models.EventChatConnected && event.ChatID == testChatID
	})).Return(nil)

	handshake := service.NewHandshakeService(repo, telegramClient, publisher, discardLogger())

	cfg, err := handshake.Connect(context.Background(), testOwnerID, testChatID)

	require.NoError(t, err)
	assert.Equal(t, testChatTitle, cfg.ChatTitle)
	assert.Empty(t, cfg.Emojis)
}

func TestHandshakeService_Connect_AlreadyConnected(t *testing.T) {
	repo := servicemocks.NewChatConfigRepository(t)
	telegramClient := domainmocks.NewTelegramClientAPI(t)

	telegramClient.On("ResolveChat", mock.Anything, testChatID).
		Return(&domain.ChatInfo{ID: testChatID, Title: testChatTitle}, nil)
	repo.On("FindByOwnerAndChat", mock.Anything, testOwnerID, testChatID).
		Return(&models.ChatConfig{OwnerID: testOwnerID, ChatID: testChatID, ChatTitle: "Old title", Emojis: []string{models.EmojiFire}}, nil)

	handshake := service.NewHandshakeService(repo, telegramClient, nil, discardLogger())

	cfg, err := handshake.Connect(context.Background(), testOwnerID, testChatID)

	assert.Nil(t, cfg)

	var alreadyErr *domainerrors.ErrChatConfigAlreadyExists
	require.ErrorAs(t, err, &alreadyErr)
	assert.Equal(t, testChatTitle, alreadyErr.ChatTitle)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestHandshakeService_Connect_Rejected(t *testing.T) {
	repo := servicemocks.NewChatConfigRepository(t)
	telegramClient := domainmocks.NewTelegramClientAPI(t)

	telegramClient.On("ResolveChat", mock.Anything, testChatID).Return(nil, assert.AnError)

	handshake := service.NewHandshakeService(repo, telegramClient, nil, discardLogger())

	cfg, err := handshake.Connect(context.Background(), testOwnerID, testChatID)

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, &domainerrors.ErrChatResolution{})
	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertNotCalled(t, "FindByOwnerAndChat", mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestHandshakeService_Connect_InsertRace(t *testing.T) {
	repo := servicemocks.NewChatConfigRepository(t)
	telegramClient := domainmocks.NewTelegramClientAPI(t)

	telegramClient.On("ResolveChat", mock.Anything, testChatID).
		Return(&domain.ChatInfo{ID: testChatID, Title: testChatTitle}, nil)
	repo.On("FindByOwnerAndChat", mock.Anything, testOwnerID, testChatID).
		Return(nil, &domainerrors.ErrChatConfigNotFound{})
	repo.On("Insert", mock.Anything, mock.Anything).
		Return(&domainerrors.ErrChatConfigAlreadyExists{OwnerID: testOwnerID, ChatID: testChatID})

	handshake := service.NewHandshakeService(repo, telegramClient, nil, discardLogger())

	_, err := handshake.Connect(context.Background(), testOwnerID, testChatID)

	var alreadyErr *domainerrors.ErrChatConfigAlreadyExists
	require.ErrorAs(t, err, &alreadyErr)
	assert.Equal(t, testChatTitle, alreadyErr.ChatTitle)
}

func TestHandshakeService_Connect_StoreFailure(t *testing.T) {
	repo := servicemocks.NewChatConfigRepository(t)
	telegramClient := domainmocks.NewTelegramClientAPI(t)

	telegramClient.On("ResolveChat", mock.Anything, testChatID).
		Return(&domain.ChatInfo{ID: testChatID, Title: testChatTitle}, nil)
	repo.On("FindByOwnerAndChat", mock.Anything, testOwnerID, testChatID).Return(nil, assert.AnError)

	handshake := service.NewHandshakeService(repo, telegramClient, nil, discardLogger())

	_, err := handshake.Connect(context.Background(), testOwnerID, testChatID)

	assert.ErrorIs(t, err, assert.AnError)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestHandshakeService_Connect_PublishFailureIgnored(t *testing.T) {
	repo := servicemocks.NewChatConfigRepository(t)
	telegramClient := domainmocks.NewTelegramClientAPI(t)
	publisher := servicemocks.NewEventPublisher(t)

	telegramClient.On("ResolveChat", mock.Anything, testChatID).
		Return(&domain.ChatInfo{ID: testChatID, Title: testChatTitle}, nil)
	repo.On("FindByOwnerAndChat", mock.Anything, testOwnerID, testChatID).
		Return(nil, &domainerrors.ErrChatConfigNotFound{})
	repo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(assert.AnError)

	handshake := service.NewHandshakeService(repo, telegramClient, publisher, discardLogger())

	cfg, err := handshake.Connect(context.Background(), testOwnerID, testChatID)

	require.NoError(t, err)
	assert.Equal(t, testChatID, cfg.ChatID)
}
