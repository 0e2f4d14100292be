package txs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Transactor interface {
	WithTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error
}

type TxManager struct {
	db      *pgxpool.Pool
	options pgx.TxOptions
	logger  *slog.Logger
}

func NewTxManager(db *pgxpool.Pool, logger *slog.Logger) *TxManager {
	return &TxManager{
		db:     db,
		logger: logger,
	}
}

func (t *TxManager) WithOptions(options pgx.TxOptions) *TxManager {
	return &TxManager{
		db:      t.db,
		options: options,
		logger:  t.logger,
	}
}

func injectTx(ctx context.Context, tx pgx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// WithTransaction выполняет txFunc в транзакции. Если в ctx уже есть транзакция,
// txFunc выполняется в ней, а commit и rollback остаются за внешним вызовом.
func (t *TxManager) WithTransaction(ctx context.Context, txFunc func(ctx context.Context) error) error {
	if HasTx(ctx) {
		return txFunc(ctx)
	}

	tx, err := t.db.BeginTx(ctx, t.options)
	if err != nil {
		t.logger.Error("Ошибка при начале транзакции", "error", err)
		return fmt.Errorf("ошибка при начале транзакции: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("Паника в транзакции, выполняем rollback", "panic", r)

			_ = tx.Rollback(ctx)

			panic(r)
		}
	}()

	if err := txFunc(injectTx(ctx, tx)); err != nil {
		t.logger.Debug("Ошибка в транзакции, выполняем rollback", "error", err)

		if rbErr := tx.Rollback(ctx); rbErr != nil {
			t.logger.Error("Ошибка при rollback транзакции", "error", rbErr)
			return fmt.Errorf("ошибка в транзакции: %w, ошибка rollback: %v", err, rbErr)
		}

		return err
	}

	if err := tx.Commit(ctx); err != nil {
		t.logger.Error("Ошибка при commit транзакции", "error", err)
		return fmt.Errorf("ошибка при commit транзакции: %w", err)
	}

	return nil
}
