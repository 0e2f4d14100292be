package txs_test

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/central-university-dev/go-reaction-bot/pkg/txs"
)

var (
	testPool *pgxpool.Pool
	logger   = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func TestMain(m *testing.M) {
	flag.Parse()

	exitCode := func() int {
		if testing.Short() {
			return m.Run()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		container, err := postgres.Run(ctx,
			"postgres:16",
			postgres.WithDatabase("txdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpassword"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second),
			),
		)
		if err != nil {
			return 1
		}

		defer func() {
			_ = container.Terminate(context.Background())
		}()

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			return 1
		}

		testPool, err = pgxpool.New(ctx, dsn)
		if err != nil {
			return 1
		}
		defer testPool.Close()

		if _, err := testPool.Exec(ctx, "CREATE TABLE tx_items (id BIGINT PRIMARY KEY)"); err != nil {
			return 1
		}

		return m.Run()
	}()

	os.Exit(exitCode)
}

func skipShort(t *testing.T) {
	t.Helper()

	if testing.Short() {
		t.Skip("Пропускаем интеграционный тест в коротком режиме")
	}
}

func cleanItems(t *testing.T) {
	t.Helper()

	_, err := testPool.Exec(context.Background(), "TRUNCATE tx_items")
	require.NoError(t, err)
}

func countItems(t *testing.T) int {
	t.Helper()

	var count int
	require.NoError(t, testPool.QueryRow(context.Background(), "SELECT COUNT(*) FROM tx_items").Scan(&count))

	return count
}

func isolationLevel(ctx context.Context, t *testing.T) string {
	t.Helper()

	var level string
	require.NoError(t, txs.GetQuerier(ctx, testPool).QueryRow(ctx, "SHOW transaction_isolation").Scan(&level))

	return level
}

func TestTxManager_WithOptions_IsolationLevel(t *testing.T) {
	skipShort(t)

	ctx := context.Background()
	base := txs.NewTxManager(testPool, logger)
	serializable := base.WithOptions(pgx.TxOptions{IsoLevel: pgx.Serializable})

	err := base.WithTransaction(ctx, func(txCtx context.Context) error {
		assert.True(t, txs.HasTx(txCtx))
		assert.Equal(t, "read committed", isolationLevel(txCtx, t))

		return nil
	})
	require.NoError(t, err)

	err = serializable.WithTransaction(ctx, func(txCtx context.Context) error {
		assert.Equal(t, "serializable", isolationLevel(txCtx, t))
		return nil
	})
	require.NoError(t, err)

	assert.False(t, txs.HasTx(ctx))
}

func TestTxManager_WithOptions_ReadOnly(t *testing.T) {
	skipShort(t)
	cleanItems(t)

	ctx := context.Background()
	readOnly := txs.NewTxManager(testPool, logger).WithOptions(pgx.TxOptions{AccessMode: pgx.ReadOnly})

	err := readOnly.WithTransaction(ctx, func(txCtx context.Context) error {
		_, err := txs.GetQuerier(txCtx, testPool).Exec(txCtx, "INSERT INTO tx_items (id) VALUES (1)")
		return err
	})

	assert.Error(t, err)
	assert.Equal(t, 0, countItems(t))
}

func TestTxManager_NestedTransactionRollsBackTogether(t *testing.T) {
	skipShort(t)
	cleanItems(t)

	ctx := context.Background()
	manager := txs.NewTxManager(testPool, logger)

	err := manager.WithTransaction(ctx, func(txCtx context.Context) error {
		innerErr := manager.WithTransaction(txCtx, func(innerCtx context.Context) error {
			_, err := txs.GetQuerier(innerCtx, testPool).Exec(innerCtx, "INSERT INTO tx_items (id) VALUES (1)")
			return err
		})
		require.NoError(t, innerErr)

		return assert.AnError
	})

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 0, countItems(t))
}

func TestTxManager_Commit(t *testing.T) {
	skipShort(t)
	cleanItems(t)

	ctx := context.Background()
	manager := txs.NewTxManager(testPool, logger)

	err := manager.WithTransaction(ctx, func(txCtx context.Context) error {
		_, err := txs.GetQuerier(txCtx, testPool).Exec(txCtx, "INSERT INTO tx_items (id) VALUES (1), (2)")
		return err
	})

	require.NoError(t, err)
	assert.Equal(t, 2, countItems(t))
}

func TestTxManager_PanicRollsBack(t *testing.T) {
	skipShort(t)
	cleanItems(t)

	ctx := context.Background()
	manager := txs.NewTxManager(testPool, logger)

	assert.Panics(t, func() {
		_ = manager.WithTransaction(ctx, func(txCtx context.Context) error {
			_, err := txs.GetQuerier(txCtx, testPool).Exec(txCtx, "INSERT INTO tx_items (id) VALUES (1)")
			require.NoError(t, err)

			panic("boom")
		})
	})

	assert.Equal(t, 0, countItems(t))
}
