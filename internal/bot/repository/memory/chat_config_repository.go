package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	customerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

type key struct {
	ownerID int64
	chatID  int64
}

// ChatConfigRepository хранит настройки в памяти процесса. Используется для локального запуска и тестов.
type ChatConfigRepository struct {
	mu      sync.RWMutex
	configs map[key]*models.ChatConfig
}

func NewChatConfigRepository() *ChatConfigRepository {
	return &ChatConfigRepository{
		configs: make(map[key]*models.ChatConfig),
	}
}

func clone(cfg *models.ChatConfig) *models.ChatConfig {
	c := *cfg
	c.Emojis = slices.Clone(cfg.Emojis)

	if c.Emojis == nil {
		c.Emojis = []string{}
	}

	return &c
}

func (r *ChatConfigRepository) FindByOwnerAndChat(_ context.Context, ownerID, chatID int64) (*models.ChatConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.configs[key{ownerID: ownerID, chatID: chatID}]
	if !ok {
		return nil, &customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID}
	}

	return clone(cfg), nil
}

func (r *ChatConfigRepository) ListByOwner(_ context.Context, ownerID int64) ([]*models.ChatConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	configs := make([]*models.ChatConfig, 0)

	for k, cfg := range r.configs {
		if k.ownerID == ownerID {
			configs = append(configs, clone(cfg))
		}
	}

	sort.Slice(configs, func(i, j int) bool {
		return configs[i].CreatedAt.Before(configs[j].CreatedAt)
	})

	return configs, nil
}

func (r *ChatConfigRepository) Insert(_ context.Context, cfg *models.ChatConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	k := key{ownerID: cfg.OwnerID, chatID: cfg.ChatID}
	if _, ok := r.configs[k]; ok {
		return &customerrors.ErrChatConfigAlreadyExists{OwnerID: cfg.OwnerID, ChatID: cfg.ChatID, ChatTitle: cfg.ChatTitle}
	}

	r.configs[k] = clone(cfg)

	return nil
}

func (r *ChatConfigRepository) UpdateEmojis(_ context.Context, ownerID, chatID int64, emojis []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, ok := r.configs[key{ownerID: ownerID, chatID: chatID}]
	if !ok {
		return &customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID}
	}

	cfg.Emojis = slices.Clone(emojis)
	if cfg.Emojis == nil {
		cfg.Emojis = []string{}
	}

	cfg.UpdatedAt = time.Now()

	return nil
}

func (r *ChatConfigRepository) ToggleEmoji(
	_ context.Context,
	ownerID, chatID int64,
	emoji string,
) (*models.ChatConfig, models.ToggleAction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cfg, ok := r.configs[key{ownerID: ownerID, chatID: chatID}]
	if !ok {
		return nil, "", &customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID}
	}

	var action models.ToggleAction

	cfg.Emojis, action = models.ToggleEmoji(cfg.Emojis, emoji)
	cfg.UpdatedAt = time.Now()

	return clone(cfg), action, nil
}

// FindFirstByChat возвращает запись владельца с наименьшим идентификатором, чтобы результат не зависел от порядка обхода map.
func (r *ChatConfigRepository) FindFirstByChat(_ context.Context, chatID int64) (*models.ChatConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found *models.ChatConfig

	for k, cfg := range r.configs {
		if k.chatID != chatID {
			continue
		}

		if found == nil || cfg.OwnerID < found.OwnerID {
			found = cfg
		}
	}

	if found == nil {
		return nil, &customerrors.ErrChatConfigNotFound{ChatID: chatID}
	}

	return clone(found), nil
}

func (r *ChatConfigRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.configs)), nil
}
