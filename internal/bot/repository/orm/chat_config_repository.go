package orm

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
	"github.com/central-university-dev/go-reaction-bot/internal/database"
	customerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
	"github.com/central-university-dev/go-reaction-bot/pkg/txs"
)

const (
	backend = "squirrel"

	tableChatConfigs = "chat_configs"
	uniqueViolation  = "23505"
)

var chatConfigColumns = []string{"owner_id", "chat_id", "chat_title", "emojis", "created_at", "updated_at"}

type ChatConfigRepository struct {
	db *database.PostgresDB
	sq sq.StatementBuilderType
}

func NewChatConfigRepository(db *database.PostgresDB) *ChatConfigRepository {
	return &ChatConfigRepository{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
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

func (r *ChatConfigRepository) findOne(ctx context.Context, operation string, where sq.Eq, notFound error) (*models.ChatConfig, error) {
	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Select(chatConfigColumns...).
		From(tableChatConfigs).
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: operation, Cause: err}
	}

	cfg, err := scanChatConfig(querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound
		}

		return nil, &customerrors.ErrSQLExecution{Operation: operation, Cause: err}
	}

	return cfg, nil
}

func (r *ChatConfigRepository) FindByOwnerAndChat(ctx context.Context, ownerID, chatID int64) (cfg *models.ChatConfig, err error) {
	defer observe(customerrors.OpFindByOwnerAndChat, time.Now(), &err)

	return r.findOne(ctx, customerrors.OpFindByOwnerAndChat,
		sq.Eq{"owner_id": ownerID, "chat_id": chatID},
		&customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID})
}

func (r *ChatConfigRepository) FindFirstByChat(ctx context.Context, chatID int64) (cfg *models.ChatConfig, err error) {
	defer observe(customerrors.OpFindFirstByChat, time.Now(), &err)

	return r.findOne(ctx, customerrors.OpFindFirstByChat,
		sq.Eq{"chat_id": chatID},
		&customerrors.ErrChatConfigNotFound{ChatID: chatID})
}

func (r *ChatConfigRepository) ListByOwner(ctx context.Context, ownerID int64) (configs []*models.ChatConfig, err error) {
	defer observe(customerrors.OpListByOwner, time.Now(), &err)

	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Select(chatConfigColumns...).
		From(tableChatConfigs).
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, &customerrors.ErrBuildSQLQuery{Operation: customerrors.OpListByOwner, Cause: err}
	}

	rows, err := querier.Query(ctx, query, args...)
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

	query, args, err := r.sq.Insert(tableChatConfigs).
		Columns(chatConfigColumns...).
		Values(cfg.OwnerID, cfg.ChatID, cfg.ChatTitle, emojis, cfg.CreatedAt, cfg.UpdatedAt).
		ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: customerrors.OpInsert, Cause: err}
	}

	if _, err = querier.Exec(ctx, query, args...); err != nil {
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

	query, args, err := r.sq.Update(tableChatConfigs).
		Set("emojis", emojis).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"owner_id": ownerID, "chat_id": chatID}).
		ToSql()
	if err != nil {
		return &customerrors.ErrBuildSQLQuery{Operation: customerrors.OpUpdateEmojis, Cause: err}
	}

	tag, err := querier.Exec(ctx, query, args...)
	if err != nil {
		return &customerrors.ErrSQLExecution{Operation: customerrors.OpUpdateEmojis, Cause: err}
	}

	if tag.RowsAffected() == 0 {
		return &customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID}
	}

	return nil
}

// ToggleEmoji меняет набор одним UPDATE, поэтому Postgres сам упорядочивает параллельные переключения.
func (r *ChatConfigRepository) ToggleEmoji(
	ctx context.Context,
	ownerID, chatID int64,
	emoji string,
) (cfg *models.ChatConfig, action models.ToggleAction, err error) {
	defer observe(customerrors.OpToggleEmoji, time.Now(), &err)

	querier := txs.GetQuerier(ctx, r.db.Pool)

	toggle := sq.Expr(
		"CASE WHEN ?::text = ANY(emojis) THEN array_remove(emojis, ?::text) ELSE array_append(emojis, ?::text) END",
		emoji, emoji, emoji,
	)

	query, args, err := r.sq.Update(tableChatConfigs).
		Set("emojis", toggle).
		Set("updated_at", time.Now()).
		Where(sq.Eq{"owner_id": ownerID, "chat_id": chatID}).
		Suffix("RETURNING owner_id, chat_id, chat_title, emojis, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, "", &customerrors.ErrBuildSQLQuery{Operation: customerrors.OpToggleEmoji, Cause: err}
	}

	cfg, err = scanChatConfig(querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", &customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID}
		}

		return nil, "", &customerrors.ErrSQLExecution{Operation: customerrors.OpToggleEmoji, Cause: err}
	}

	action = models.ToggleRemoved
	if cfg.HasEmoji(emoji) {
		action = models.ToggleAdded
	}

	return cfg, action, nil
}

func (r *ChatConfigRepository) Count(ctx context.Context) (count int64, err error) {
	defer observe(customerrors.OpCount, time.Now(), &err)

	querier := txs.GetQuerier(ctx, r.db.Pool)

	query, args, err := r.sq.Select("COUNT(*)").From(tableChatConfigs).ToSql()
	if err != nil {
		return 0, &customerrors.ErrBuildSQLQuery{Operation: customerrors.OpCount, Cause: err}
	}

	if err = querier.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, &customerrors.ErrSQLExecution{Operation: customerrors.OpCount, Cause: err}
	}

	return count, nil
}

func observe(operation string, start time.Time, err *error) {
	metrics.RecordDatabaseQuery(backend, operation, *err, time.Since(start))
}
