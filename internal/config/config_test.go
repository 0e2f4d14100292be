package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/central-university-dev/go-reaction-bot/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := config.LoadConfig()

	assert.Equal(t, config.MongoStore, cfg.StoreType)
	assert.Equal(t, "ReactionBotDB", cfg.MongoDatabase)
	assert.Equal(t, "connected_chats", cfg.MongoCollection)
	assert.Equal(t, 60, cfg.TelegramPollTimeout)
	assert.Greater(t, cfg.TelegramRequestTimeout, time.Duration(cfg.TelegramPollTimeout)*time.Second)
	assert.Equal(t, 8080, cfg.HealthServerPort)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("STORE_TYPE", "MEMORY")
	t.Setenv("BOT_WORKERS", "4")
	t.Setenv("REDIS_CACHE_TTL", "30s")

	cfg := config.LoadConfig()

	assert.Equal(t, config.MemoryStore, cfg.StoreType)
	assert.Equal(t, 4, cfg.BotWorkers)
	assert.Equal(t, 30*time.Second, cfg.RedisCacheTTL)
}
