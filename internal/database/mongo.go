package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/central-university-dev/go-reaction-bot/internal/config"
)

type MongoDB struct {
	Client     *mongo.Client
	Collection *mongo.Collection
	Timeout    time.Duration
	Logger     *slog.Logger
}

func NewMongoDB(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*MongoDB, error) {
	timeout := cfg.MongoTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	mctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(mctx, options.Client().ApplyURI(cfg.MongoURL))
	if err != nil {
		return nil, fmt.Errorf("ошибка при подключении к MongoDB: %w", err)
	}

	if err := client.Ping(mctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ошибка при проверке соединения с MongoDB: %w", err)
	}

	logger.Info("Соединение с MongoDB успешно установлено",
		"database", cfg.MongoDatabase,
		"collection", cfg.MongoCollection,
	)

	return &MongoDB{
		Client:     client,
		Collection: client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection),
		Timeout:    timeout,
		Logger:     logger,
	}, nil
}

// EnsureIndexes создает уникальный индекс (user_id, chat_id) и индекс по chat_id для диспетчера реакций.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	mctx, cancel := context.WithTimeout(ctx, db.Timeout)
	defer cancel()

	_, err := db.Collection.Indexes().CreateMany(mctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "chat_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user_chat"),
		},
		{
			Keys:    bson.D{{Key: "chat_id", Value: 1}},
			Options: options.Index().SetName("idx_chat"),
		},
	})
	if err != nil {
		return fmt.Errorf("ошибка при создании индексов MongoDB: %w", err)
	}

	return nil
}

func (db *MongoDB) Close(ctx context.Context) {
	if db.Client == nil {
		return
	}

	if err := db.Client.Disconnect(ctx); err != nil {
		db.Logger.Error("Ошибка при закрытии соединения с MongoDB", "error", err)
		return
	}

	db.Logger.Info("Соединение с MongoDB закрыто")
}
