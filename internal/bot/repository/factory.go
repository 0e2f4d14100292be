package repository

import (
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/central-university-dev/go-reaction-bot/internal/bot/repository/memory"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/repository/mongodb"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/repository/orm"
	sqlrepo "github.com/central-university-dev/go-reaction-bot/internal/bot/repository/sql"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/service"
	"github.com/central-university-dev/go-reaction-bot/internal/config"
	"github.com/central-university-dev/go-reaction-bot/internal/database"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/pkg/txs"
)

type Factory struct {
	mongoDB *database.MongoDB
	pgDB    *database.PostgresDB
	config  *config.Config
	logger  *slog.Logger
}

// NewFactory принимает только то подключение, которое нужно выбранному STORE_TYPE; второе может быть nil.
func NewFactory(mongoDB *database.MongoDB, pgDB *database.PostgresDB, config *config.Config, logger *slog.Logger) *Factory {
	return &Factory{
		mongoDB: mongoDB,
		pgDB:    pgDB,
		config:  config,
		logger:  logger,
	}
}

func (f *Factory) CreateChatConfigRepository() (service.ChatConfigRepository, error) {
	switch f.config.StoreType {
	case config.MongoStore:
		if f.mongoDB == nil {
			return nil, &errors.ErrUnknownStoreType{StoreType: string(f.config.StoreType) + " (нет подключения к MongoDB)"}
		}

		f.logger.Info("Создание MongoDB репозитория настроек чатов")

		return mongodb.NewChatConfigRepository(f.mongoDB), nil
	case config.SQLStore:
		if f.pgDB == nil {
			return nil, &errors.ErrUnknownStoreType{StoreType: string(f.config.StoreType) + " (нет подключения к PostgreSQL)"}
		}

		f.logger.Info("Создание SQL репозитория настроек чатов")

		// READ COMMITTED достаточно: строку сериализует SELECT ... FOR UPDATE.
		txManager := txs.NewTxManager(f.pgDB.Pool, f.logger).WithOptions(pgx.TxOptions{
			IsoLevel:   pgx.ReadCommitted,
			AccessMode: pgx.ReadWrite,
		})

		return sqlrepo.NewChatConfigRepository(f.pgDB, txManager), nil
	case config.SquirrelStore:
		if f.pgDB == nil {
			return nil, &errors.ErrUnknownStoreType{StoreType: string(f.config.StoreType) + " (нет подключения к PostgreSQL)"}
		}

		f.logger.Info("Создание ORM (Squirrel) репозитория настроек чатов")

		return orm.NewChatConfigRepository(f.pgDB), nil
	case config.MemoryStore:
		f.logger.Warn("Создание репозитория настроек чатов в памяти, данные не сохраняются между запусками")

		return memory.NewChatConfigRepository(), nil
	default:
		return nil, &errors.ErrUnknownStoreType{StoreType: string(f.config.StoreType)}
	}
}
