package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/central-university-dev/go-reaction-bot/internal/config"
)

const maxInt32 = 1<<31 - 1

// chatConfigsSchema создает таблицу при первом запуске; повторный вызов ничего не меняет.
const chatConfigsSchema = `
CREATE TABLE IF NOT EXISTS chat_configs (
	owner_id   BIGINT      NOT NULL,
	chat_id    BIGINT      NOT NULL,
	chat_title TEXT        NOT NULL DEFAULT '',
	emojis     TEXT[]      NOT NULL DEFAULT '{}',
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	PRIMARY KEY (owner_id, chat_id)
);

CREATE INDEX IF NOT EXISTS idx_chat_configs_chat_id ON chat_configs (chat_id);
`

type PostgresDB struct {
	Pool   *pgxpool.Pool
	Logger *slog.Logger
}

func NewPostgresDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*PostgresDB, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("ошибка при парсинге строки подключения к PostgreSQL: %w", err)
	}

	var maxConns int32

	switch {
	case cfg.DatabaseMaxConn <= 0:
		maxConns = 0
	case cfg.DatabaseMaxConn >= maxInt32:
		maxConns = maxInt32
	default:
		maxConns = int32(cfg.DatabaseMaxConn)
	}

	if maxConns > 0 {
		poolConfig.MaxConns = maxConns
	}

	poolConfig.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка при создании пула соединений PostgreSQL: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ошибка при проверке соединения с PostgreSQL: %w", err)
	}

	logger.Info("Соединение с PostgreSQL успешно установлено")

	return &PostgresDB{
		Pool:   pool,
		Logger: logger,
	}, nil
}

func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, chatConfigsSchema); err != nil {
		return fmt.Errorf("ошибка при создании схемы chat_configs: %w", err)
	}

	return nil
}

func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
		db.Logger.Info("Соединение с PostgreSQL закрыто")
	}
}
