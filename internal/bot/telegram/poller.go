package telegram

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sourcegraph/conc/pool"

	"github.com/central-university-dev/go-reaction-bot/internal/bot/domain"
	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

const (
	updateCommand    = "command"
	updateText       = "text"
	updateCallback   = "callback"
	updateNewMembers = "new_members"
	updateChat       = "chat_message"
	updateSkipped    = "skipped"
)

var allowedUpdates = []string{"message", "channel_post", "callback_query"}

type UpdateHandler interface {
	HandleCommand(ctx context.Context, event domain.CommandReceived) error

	HandleText(ctx context.Context, event domain.TextMessageReceived) error

	HandleCallback(ctx context.Context, event domain.CallbackActionReceived) error

	HandleNewMembers(ctx context.Context, event domain.NewMembersReceived) error

	HandleChatMessage(ctx context.Context, event domain.ChatMessageReceived)
}

type Options struct {
	Workers        int
	PollTimeout    int
	HandlerTimeout time.Duration
}

// Poller получает обновления через long polling и обрабатывает каждое в отдельной задаче пула.
// Порядок обработки обновлений не гарантируется.
type Poller struct {
	telegramClient domain.TelegramClientAPI
	handler        UpdateHandler
	options        Options
	logger         *slog.Logger
	workers        *pool.Pool
	stopChan       chan struct{}
	done           chan struct{}
	stopOnce       sync.Once
	started        atomic.Bool
}

func NewPoller(telegramClient domain.TelegramClientAPI, handler UpdateHandler, options Options, logger *slog.Logger) *Poller {
	if options.Workers <= 0 {
		options.Workers = 1
	}

	if options.HandlerTimeout <= 0 {
		options.HandlerTimeout = 30 * time.Second
	}

	return &Poller{
		telegramClient: telegramClient,
		handler:        handler,
		options:        options,
		logger:         logger,
		workers:        pool.New().WithMaxGoroutines(options.Workers),
		stopChan:       make(chan struct{}),
		done:           make(chan struct{}),
	}
}

func (p *Poller) Start() {
	p.logger.Info("Запуск Telegram поллера", "workers", p.options.Workers)

	p.started.Store(true)

	bot := p.telegramClient.GetBot()
	if bot == nil {
		p.logger.Error("Не удалось получить доступ к API бота")
		close(p.done)

		return
	}

	u := tgbotapi.NewUpdate(0)
	u.Timeout = p.options.PollTimeout
	u.AllowedUpdates = allowedUpdates

	updates := bot.GetUpdatesChan(u)

	go func() {
		defer close(p.done)

		for {
			select {
			case <-p.stopChan:
				p.logger.Info("Получен сигнал остановки поллера")
				return
			case update, ok := <-updates:
				if !ok {
					return
				}

				p.workers.Go(func() {
					p.ProcessUpdate(update)
				})
			}
		}
	}()
}

// Stop прекращает получение обновлений и ждет завершения уже запущенных задач.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		p.logger.Info("Остановка Telegram поллера")
		close(p.stopChan)

		if !p.started.Load() {
			return
		}

		if bot := p.telegramClient.GetBot(); bot != nil {
			bot.StopReceivingUpdates()
		}

		<-p.done
		p.workers.Wait()

		p.logger.Info("Telegram поллер остановлен")
	})
}

// ProcessUpdate синхронно обрабатывает одно обновление. Паника в обработчике не выходит за пределы вызова.
func (p *Poller) ProcessUpdate(update tgbotapi.Update) {
	start := time.Now()
	updateType := updateSkipped

	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("Паника при обработке обновления",
				"panic", r,
				"update_id", update.UpdateID,
			)
		}

		metrics.RecordUpdate(updateType, time.Since(start))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), p.options.HandlerTimeout)
	defer cancel()

	var err error

	switch {
	case update.CallbackQuery != nil:
		updateType = updateCallback
		err = p.handler.HandleCallback(ctx, callbackEvent(update.CallbackQuery))
	case update.Message != nil:
		updateType, err = p.routeMessage(ctx, update.Message)
	case update.ChannelPost != nil:
		updateType = updateChat
		p.handler.HandleChatMessage(ctx, domain.ChatMessageReceived{
			ChatID:    update.ChannelPost.Chat.ID,
			MessageID: update.ChannelPost.MessageID,
		})
	}

	if err != nil {
		p.logger.Error("Ошибка при обработке обновления",
			"error", err,
			"update_id", update.UpdateID,
			"update_type", updateType,
		)
	}
}

func (p *Poller) routeMessage(ctx context.Context, msg *tgbotapi.Message) (string, error) {
	if msg.Chat == nil {
		return updateSkipped, nil
	}

	switch {
	case msg.Chat.IsPrivate():
		if msg.IsCommand() {
			return updateCommand, p.handler.HandleCommand(ctx, domain.CommandReceived{
				Command:   commandFromMessage(msg),
				MessageID: msg.MessageID,
			})
		}

		if msg.Text == "" || msg.From == nil {
			return updateSkipped, nil
		}

		return updateText, p.handler.HandleText(ctx, domain.TextMessageReceived{
			ChatID:    msg.Chat.ID,
			UserID:    msg.From.ID,
			MessageID: msg.MessageID,
			Text:      msg.Text,
		})
	case msg.Chat.IsGroup() || msg.Chat.IsSuperGroup() || msg.Chat.IsChannel():
		if len(msg.NewChatMembers) > 0 {
			memberIDs := make([]int64, 0, len(msg.NewChatMembers))
			for _, member := range msg.NewChatMembers {
				memberIDs = append(memberIDs, member.ID)
			}

			return updateNewMembers, p.handler.HandleNewMembers(ctx, domain.NewMembersReceived{
				ChatID:    msg.Chat.ID,
				MessageID: msg.MessageID,
				MemberIDs: memberIDs,
			})
		}

		if isServiceMessage(msg) {
			return updateSkipped, nil
		}

		p.handler.HandleChatMessage(ctx, domain.ChatMessageReceived{
			ChatID:    msg.Chat.ID,
			MessageID: msg.MessageID,
		})

		return updateChat, nil
	default:
		return updateSkipped, nil
	}
}

// isServiceMessage отсекает служебные сообщения, на которые Telegram не дает ставить реакции.
func isServiceMessage(msg *tgbotapi.Message) bool {
	return msg.LeftChatMember != nil ||
		msg.NewChatTitle != "" ||
		len(msg.NewChatPhoto) > 0 ||
		msg.DeleteChatPhoto ||
		msg.GroupChatCreated ||
		msg.SuperGroupChatCreated ||
		msg.ChannelChatCreated ||
		msg.MigrateToChatID != 0 ||
		msg.MigrateFromChatID != 0 ||
		msg.PinnedMessage != nil ||
		msg.VoiceChatStarted != nil ||
		msg.VoiceChatEnded != nil
}

func commandFromMessage(msg *tgbotapi.Message) models.Command {
	cmd := models.Command{
		Type:   models.ParseCommandType(msg.Command()),
		ChatID: msg.Chat.ID,
		Text:   msg.Text,
	}

	if msg.From != nil {
		cmd.UserID = msg.From.ID
		cmd.Username = msg.From.UserName
	}

	return cmd
}

func callbackEvent(query *tgbotapi.CallbackQuery) domain.CallbackActionReceived {
	event := domain.CallbackActionReceived{
		CallbackID: query.ID,
		Data:       query.Data,
	}

	if query.From != nil {
		event.UserID = query.From.ID
	}

	if query.Message != nil && query.Message.Chat != nil {
		event.ChatID = query.Message.Chat.ID
		event.MessageID = query.Message.MessageID
	}

	return event
}
