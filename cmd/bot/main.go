package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/central-university-dev/go-reaction-bot/internal/api/health"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/cache"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/clients"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/clients/kafka"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/domain"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/repository"
	botservice "github.com/central-university-dev/go-reaction-bot/internal/bot/service"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/telegram"
	"github.com/central-university-dev/go-reaction-bot/internal/common/httputil"
	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
	"github.com/central-university-dev/go-reaction-bot/internal/common/middleware"
	"github.com/central-university-dev/go-reaction-bot/internal/config"
	"github.com/central-university-dev/go-reaction-bot/internal/database"
	"github.com/central-university-dev/go-reaction-bot/internal/scheduler"
	"github.com/central-university-dev/go-reaction-bot/pkg"
)

type storage struct {
	mongoDB *database.MongoDB
	pgDB    *database.PostgresDB
}

func (s *storage) Close() {
	if s.mongoDB != nil {
		s.mongoDB.Close(context.Background())
	}

	if s.pgDB != nil {
		s.pgDB.Close()
	}
}

func openStorage(ctx context.Context, cfg *config.Config, appLogger *slog.Logger) (*storage, error) {
	st := &storage{}

	switch cfg.StoreType {
	case config.MongoStore:
		mongoDB, err := database.NewMongoDB(ctx, cfg, appLogger)
		if err != nil {
			return nil, err
		}

		st.mongoDB = mongoDB

		if err := mongoDB.EnsureIndexes(ctx); err != nil {
			st.Close()
			return nil, err
		}
	case config.SQLStore, config.SquirrelStore:
		pgDB, err := database.NewPostgresDB(ctx, cfg, appLogger)
		if err != nil {
			return nil, err
		}

		st.pgDB = pgDB

		if err := pgDB.EnsureSchema(ctx); err != nil {
			st.Close()
			return nil, err
		}
	}

	return st, nil
}

func setupTelegramCommands(telegramClient domain.TelegramClientAPI, appLogger *slog.Logger) {
	botCommands := []domain.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "chat", Description: "Manage your connected chats"},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := telegramClient.SetMyCommands(ctx, botCommands); err != nil {
		appLogger.Error("Ошибка при регистрации команд бота",
			"error", err,
		)
	} else {
		appLogger.Info("Команды бота успешно зарегистрированы")
	}
}

func setupCache(repo botservice.ChatConfigRepository, cfg *config.Config,
	appLogger *slog.Logger) (botservice.ChatConfigRepository, *cache.RedisChatConfigCache) {
	if cfg.RedisURL == "" {
		return repo, nil
	}

	cacheTTL := cfg.RedisCacheTTL
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}

	redisCache, err := cache.NewRedisChatConfigCache(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB, cacheTTL, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к Redis, работаем без кэша",
			"error", err,
		)

		return repo, nil
	}

	appLogger.Info("Кэш Redis успешно инициализирован")

	return botservice.NewCachedChatConfigRepository(repo, redisCache, appLogger), redisCache
}

func setupPublisher(cfg *config.Config, appLogger *slog.Logger) *kafka.ChatConfigPublisher {
	if !strings.EqualFold(cfg.EventsTransport, "KAFKA") {
		return nil
	}

	brokers := strings.Split(cfg.KafkaBrokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}

	appLogger.Info("Публикация событий в Kafka включена",
		"brokers", brokers,
		"topic", cfg.TopicChatConfigEvents,
	)

	return kafka.NewChatConfigPublisher(brokers, cfg.TopicChatConfigEvents, appLogger)
}

func waitForSignal(errCh <-chan error, appLogger *slog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		appLogger.Info("Получен системный сигнал",
			"signal", sig.String(),
		)
	case err := <-errCh:
		appLogger.Error("Ошибка HTTP сервера",
			"error", err,
		)
	}
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка запуска сервиса: %v\n", err)
		os.Exit(1)
	}
}

//nolint:funlen // Длина функции обусловлена необходимостью последовательной инициализации всех компонентов.
func run() error {
	cfg := config.LoadConfig()

	appLogger := pkg.NewLogger(os.Stdout, cfg.LogLevel)

	if cfg.TelegramBotToken == "" {
		return errors.New("не задан TELEGRAM_BOT_TOKEN")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st, err := openStorage(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при подключении к хранилищу",
			"store_type", cfg.StoreType,
			"error", err,
		)

		return fmt.Errorf("ошибка подключения к хранилищу: %w", err)
	}

	defer st.Close()

	repoFactory := repository.NewFactory(st.mongoDB, st.pgDB, cfg, appLogger)

	chatConfigRepo, err := repoFactory.CreateChatConfigRepository()
	if err != nil {
		appLogger.Error("Ошибка при создании репозитория настроек чатов",
			"error", err,
		)

		return fmt.Errorf("ошибка создания репозитория настроек чатов: %w", err)
	}

	repo, redisCache := setupCache(chatConfigRepo, cfg, appLogger)
	if redisCache != nil {
		defer func() {
			if err := redisCache.Close(); err != nil {
				appLogger.Error("Ошибка при закрытии соединения с Redis",
					"error", err,
				)
			}
		}()
	}

	var publisher botservice.EventPublisher

	if kafkaPublisher := setupPublisher(cfg, appLogger); kafkaPublisher != nil {
		publisher = kafkaPublisher

		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				appLogger.Error("Ошибка при закрытии Kafka продюсера",
					"error", err,
				)
			}
		}()
	}

	httpClient := httputil.CreateTelegramHTTPClient(cfg, appLogger)

	telegramClient, err := clients.NewTelegramClient(cfg.TelegramBotToken, cfg.TelegramAPIEndpoint, httpClient, appLogger)
	if err != nil {
		appLogger.Error("Ошибка при создании Telegram клиента",
			"error", err,
		)

		return fmt.Errorf("ошибка создания Telegram клиента: %w", err)
	}

	setupTelegramCommands(telegramClient, appLogger)

	handshake := botservice.NewHandshakeService(repo, telegramClient, publisher, appLogger.With("component", "handshake"))
	selection := botservice.NewSelectionService(repo, publisher, appLogger.With("component", "selection"))
	dispatcher := botservice.NewReactionDispatcher(repo, telegramClient, appLogger.With("component", "dispatcher"))

	botService := botservice.NewBotService(telegramClient, handshake, selection, dispatcher, appLogger)

	poller := telegram.NewPoller(telegramClient, botService, telegram.Options{
		Workers:        cfg.BotWorkers,
		PollTimeout:    cfg.TelegramPollTimeout,
		HandlerTimeout: cfg.HandlerTimeout,
	}, appLogger.With("component", "poller"))

	statsScheduler := scheduler.NewScheduler(chatConfigRepo, cfg.StatsInterval, appLogger.With("component", "scheduler"))

	rateLimiter := middleware.NewRateLimiter(ctx, cfg.RateLimitRequests, cfg.RateLimitWindow, appLogger)
	healthServer := health.NewServer(cfg.HealthServerPort, rateLimiter, appLogger)
	metricsServer := metrics.NewMetricsServer(cfg.BotMetricsPort, appLogger)

	errCh := make(chan error, 2)

	go func() {
		if err := healthServer.Start(); err != nil {
			errCh <- err
		}
	}()

	go func() {
		if err := metricsServer.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	statsScheduler.Start()
	poller.Start()

	appLogger.Info("Бот запущен",
		"bot", telegramClient.Self().Username,
		"store_type", cfg.StoreType,
	)

	waitForSignal(errCh, appLogger)

	poller.Stop()
	statsScheduler.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Ошибка при остановке health сервера",
			"error", err,
		)
	}

	cancel()

	appLogger.Info("Бот успешно остановлен")

	return nil
}
