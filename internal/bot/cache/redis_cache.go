package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

// ChatConfigCache хранит запись, которую диспетчер реакций находит по идентификатору чата.
// Промах кэша возвращается как (nil, nil).
//
// У каждого чата есть поколение: DeleteChatConfig его увеличивает, а SetChatConfig записывает
// значение только если поколение не изменилось с момента чтения Generation.
type ChatConfigCache interface {
	GetChatConfig(ctx context.Context, chatID int64) (*models.ChatConfig, error)
	Generation(ctx context.Context, chatID int64) (int64, error)
	// SetChatConfig возвращает false, если запись устарела и не была сохранена.
	SetChatConfig(ctx context.Context, cfg *models.ChatConfig, generation int64) (bool, error)
	DeleteChatConfig(ctx context.Context, chatID int64) error
}

type cachedChatConfig struct {
	OwnerID   int64     `json:"owner_id"`
	ChatID    int64     `json:"chat_id"`
	ChatTitle string    `json:"chat_title"`
	Emojis    []string  `json:"emojis"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RedisChatConfigCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisChatConfigCache(redisURL, password string, db int, ttl time.Duration, logger *slog.Logger) (*RedisChatConfigCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ошибка при подключении к Redis: %w", err)
	}

	logger.Info("Соединение с Redis успешно установлено")

	return &RedisChatConfigCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func chatConfigKey(chatID int64) string {
	return fmt.Sprintf("chat_config:%d", chatID)
}

func generationKey(chatID int64) string {
	return fmt.Sprintf("chat_config_gen:%d", chatID)
}

func readGeneration(ctx context.Context, cmd redis.Cmdable, chatID int64) (int64, error) {
	generation, err := cmd.Get(ctx, generationKey(chatID)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}

		return 0, fmt.Errorf("ошибка при получении поколения кэша из Redis: %w", err)
	}

	return generation, nil
}

func (c *RedisChatConfigCache) Generation(ctx context.Context, chatID int64) (int64, error) {
	return readGeneration(ctx, c.client, chatID)
}

func (c *RedisChatConfigCache) GetChatConfig(ctx context.Context, chatID int64) (*models.ChatConfig, error) {
	data, err := c.client.Get(ctx, chatConfigKey(chatID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.logger.Debug("Кэш не найден", "chat_id", chatID)
			return nil, nil
		}

		return nil, fmt.Errorf("ошибка при получении данных из Redis: %w", err)
	}

	var cached cachedChatConfig
	if err := json.Unmarshal(data, &cached); err != nil {
		return nil, fmt.Errorf("ошибка при десериализации данных из Redis: %w", err)
	}

	if cached.Emojis == nil {
		cached.Emojis = []string{}
	}

	return &models.ChatConfig{
		OwnerID:   cached.OwnerID,
		ChatID:    cached.ChatID,
		ChatTitle: cached.ChatTitle,
		Emojis:    cached.Emojis,
		CreatedAt: cached.CreatedAt,
		UpdatedAt: cached.UpdatedAt,
	}, nil
}

// SetChatConfig пишет запись под WATCH ключа поколения. Если поколение успело смениться,
// транзакция не выполняется и в кэш не попадает запись, прочитанная до инвалидации.
func (c *RedisChatConfigCache) SetChatConfig(ctx context.Context, cfg *models.ChatConfig, generation int64) (bool, error) {
	data, err := json.Marshal(cachedChatConfig{
		OwnerID:   cfg.OwnerID,
		ChatID:    cfg.ChatID,
		ChatTitle: cfg.ChatTitle,
		Emojis:    cfg.Emojis,
		CreatedAt: cfg.CreatedAt,
		UpdatedAt: cfg.UpdatedAt,
	})
	if err != nil {
		return false, fmt.Errorf("ошибка при сериализации данных для Redis: %w", err)
	}

	stored := false

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx, cfg.ChatID)
		if err != nil {
			return err
		}

		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, chatConfigKey(cfg.ChatID), data, c.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		stored = true

		return nil
	}, generationKey(cfg.ChatID))

	switch {
	case errors.Is(err, redis.TxFailedErr):
		stored = false
	case err != nil:
		return false, fmt.Errorf("ошибка при сохранении данных в Redis: %w", err)
	}

	if !stored {
		c.logger.Debug("Устаревшие настройки чата не сохранены в кэш",
			"chat_id", cfg.ChatID,
			"generation", generation,
		)

		return false, nil
	}

	c.logger.Debug("Настройки чата сохранены в кэш",
		"chat_id", cfg.ChatID,
		"ttl", c.ttl,
	)

	return true, nil
}

// DeleteChatConfig удаляет запись и увеличивает поколение чата в одной транзакции MULTI/EXEC.
func (c *RedisChatConfigCache) DeleteChatConfig(ctx context.Context, chatID int64) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, chatConfigKey(chatID))
		pipe.Incr(ctx, generationKey(chatID))

		return nil
	})
	if err != nil {
		return fmt.Errorf("ошибка при удалении данных из Redis: %w", err)
	}

	c.logger.Debug("Настройки чата удалены из кэша", "chat_id", chatID)

	return nil
}

func (c *RedisChatConfigCache) Close() error {
	return c.client.Close()
}
