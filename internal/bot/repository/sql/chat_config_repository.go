package sql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
	"github.com/central-university-dev/go-reaction-bot/internal/database"
	customerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
	"github.com/central-university-dev/go-reaction-bot/pkg/txs"
)

const (
	backend = "sql"

	uniqueViolation = "23505"

	chatConfigColumns = "owner_id, chat_id, chat_title, emojis, created_at, updated_at"
)

type ChatConfigRepository struct {
	db        *database.PostgresDB
	txManager txs.Transactor
}

func NewChatConfigRepository(db *database.PostgresDB, txManager txs.Transactor) *ChatConfigRepository {
	return &ChatConfigRepository{
		db:        db,
		txManager: txManager,
	}
}

func scanChatConfig(row pgx.Row) (*models.ChatConfig, error) {
	var cfg models.ChatConfig

	if err := row.Scan(&cfg.OwnerID, &cfg.ChatID, &cfg.ChatTitle, &cfg.Emojis, &cfg.CreatedAt, &cfg.UpdatedAt); err != nil {
		return nil, err
	}

	if cfg.Emojis == nil {
		cfg.Emojis = []string{}
	}

	return &cfg, nil
}

func (r *ChatConfigRepository) FindByOwnerAndChat(ctx context.Context, ownerID, chatID int64) (cfg *models.ChatConfig, err error) {
	defer observe(customerrors.OpFindByOwnerAndChat, time.Now(), &err)

	querier := txs.GetQuerier(ctx, r.db.Pool)

	cfg, err = scanChatConfig(querier.QueryRow(ctx,
		"SELECT "+chatConfigColumns+" FROM chat_configs WHERE owner_id = $1 AND chat_id = $2",
		ownerID, chatID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID}
		}

		return nil, &customerrors.ErrSQLExecution{Operation: customerrors.OpFindByOwnerAndChat, Cause: err}
	}

	return cfg, nil
}

func (r *ChatConfigRepository) ListByOwner(ctx context.Context, ownerID int64) (configs []*models.ChatConfig, err error) {
	defer observe(customerrors.OpListByOwner, time.Now(), &err)

	querier := txs.GetQuerier(ctx, r.db.Pool)

	rows, err := querier.Query(ctx,
		"SELECT "+chatConfigColumns+" FROM chat_configs WHERE owner_id = $1 ORDER BY created_at",
		ownerID)
	if err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: customerrors.OpListByOwner, Cause: err}
	}
	defer rows.Close()

	configs = make([]*models.ChatConfig, 0)

	for rows.Next() {
		cfg, scanErr := scanChatConfig(rows)
		if scanErr != nil {
			return nil, &customerrors.ErrSQLScan{Entity: "настроек чата", Cause: scanErr}
		}

		configs = append(configs, cfg)
	}

	if err = rows.Err(); err != nil {
		return nil, &customerrors.ErrSQLExecution{Operation: customerrors.OpListByOwner, Cause: err}
	}

	return configs, nil
}

func (r *ChatConfigRepository) Insert(ctx context.Context, cfg *models.ChatConfig) (err error) {
	defer observe(customerrors.OpInsert, time.Now(), &err)

	querier := txs.GetQuerier(ctx, r.db.Pool)

	emojis := cfg.Emojis
	if emojis == nil {
		emojis = []string{}
	}

	_, err = querier.Exec(ctx,
		"INSERT INTO chat_configs ("+chatConfigColumns+") VALUES ($1, $2, $3, $4, $5, $6)",
		cfg.OwnerID, cfg.ChatID, cfg.ChatTitle, emojis, cfg.CreatedAt, cfg.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return &customerrors.ErrChatConfigAlreadyExists{OwnerID: cfg.OwnerID, ChatID: cfg.ChatID, ChatTitle: cfg.ChatTitle}
		}

		return &customerrors.ErrSQLExecution{Operation: customerrors.OpInsert, Cause: err}
	}

	return nil
}

func (r *ChatConfigRepository) UpdateEmojis(ctx context.Context, ownerID, chatID int64, emojis []string) (err error) {
	defer observe(customerrors.OpUpdateEmojis, time.Now(), &err)

	querier := txs.GetQuerier(ctx, r.db.Pool)

	if emojis == nil {
		emojis = []string{}
	}

	tag, err := querier.Exec(ctx,
		"UPDATE chat_configs SET emojis = $1, updated_at = $2 WHERE owner_id = $3 AND chat_id = $4",
		emojis, time.Now(), ownerID, chatID)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: customerrors.OpUpdateEmojis, Cause: err}
	}

	if tag.RowsAffected() == 0 {
		return &customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID}
	}

	return nil
}

// ToggleEmoji блокирует строку через SELECT ... FOR UPDATE, поэтому параллельные
// переключения одного чата выполняются по очереди.
func (r *ChatConfigRepository) ToggleEmoji(
	ctx context.Context,
	ownerID, chatID int64,
	emoji string,
) (cfg *models.ChatConfig, action models.ToggleAction, err error) {
	defer observe(customerrors.OpToggleEmoji, time.Now(), &err)

	err = r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		querier := txs.GetQuerier(txCtx, r.db.Pool)

		var current []string

		scanErr := querier.QueryRow(txCtx,
			"SELECT emojis FROM chat_configs WHERE owner_id = $1 AND chat_id = $2 FOR UPDATE",
			ownerID, chatID).Scan(&current)
		if scanErr != nil {
			if errors.Is(scanErr, pgx.ErrNoRows) {
				return &customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID}
			}

			return &customerrors.ErrSQLExecution{Operation: customerrors.OpToggleEmoji, Cause: scanErr}
		}

		var next []string

		next, action = models.ToggleEmoji(current, emoji)

		updated, updateErr := scanChatConfig(querier.QueryRow(txCtx,
			"UPDATE chat_configs SET emojis = $1, updated_at = $2 WHERE owner_id = $3 AND chat_id = $4 RETURNING "+chatConfigColumns,
			next, time.Now(), ownerID, chatID))
		if updateErr != nil {
			return &customerrors.ErrSQLExecution{Operation: customerrors.OpToggleEmoji, Cause: updateErr}
		}

		cfg = updated

		return nil
	})
	if err != nil {
		return nil, "", err
	}

	return cfg, action, nil
}

func (r *ChatConfigRepository) FindFirstByChat(ctx context.Context, chatID int64) (cfg *models.ChatConfig, err error) {
	defer observe(customerrors.OpFindFirstByChat, time.Now(), &err)

	querier := txs.GetQuerier(ctx, r.db.Pool)

	cfg, err = scanChatConfig(querier.QueryRow(ctx,
		"SELECT "+chatConfigColumns+" FROM chat_configs WHERE chat_id = $1 LIMIT 1",
		chatID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &customerrors.ErrChatConfigNotFound{ChatID: chatID}
		}

		return nil, &customerrors.ErrSQLExecution{Operation: customerrors.OpFindFirstByChat, Cause: err}
	}

	return cfg, nil
}

func (r *ChatConfigRepository) Count(ctx context.Context) (count int64, err error) {
	defer observe(customerrors.OpCount, time.Now(), &err)

	querier := txs.GetQuerier(ctx, r.db.Pool)

	if err = querier.QueryRow(ctx, "SELECT COUNT(*) FROM chat_configs").Scan(&count); err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: customerrors.OpCount, Cause: err}
	}

	return count, nil
}

func observe(operation string, start time.Time, err *error) {
	metrics.RecordDatabaseQuery(backend, operation, *err, time.Since(start))
}
