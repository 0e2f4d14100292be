package mongodb

import (
	"context"
	"errors"
	"slices"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/central-university-dev/go-reaction-bot/internal/common/metrics"
	"github.com/central-university-dev/go-reaction-bot/internal/database"
	customerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

const backend = "mongo"

// chatConfigDocument повторяет формат коллекции connected_chats.
// Старые документы могут не содержать created_at и updated_at.
type chatConfigDocument struct {
	OwnerID   int64     `bson:"user_id"`
	ChatID    int64     `bson:"chat_id"`
	ChatTitle string    `bson:"chat_title"`
	Emojis    []string  `bson:"emojis"`
	CreatedAt time.Time `bson:"created_at,omitempty"`
	UpdatedAt time.Time `bson:"updated_at,omitempty"`
}

func (d *chatConfigDocument) toModel() *models.ChatConfig {
	emojis := d.Emojis
	if emojis == nil {
		emojis = []string{}
	}

	return &models.ChatConfig{
		OwnerID:   d.OwnerID,
		ChatID:    d.ChatID,
		ChatTitle: d.ChatTitle,
		Emojis:    emojis,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type ChatConfigRepository struct {
	db *database.MongoDB
}

func NewChatConfigRepository(db *database.MongoDB) *ChatConfigRepository {
	return &ChatConfigRepository{db: db}
}

func ownerChatFilter(ownerID, chatID int64) bson.D {
	return bson.D{{Key: "user_id", Value: ownerID}, {Key: "chat_id", Value: chatID}}
}

func (r *ChatConfigRepository) FindByOwnerAndChat(ctx context.Context, ownerID, chatID int64) (cfg *models.ChatConfig, err error) {
	defer observe(customerrors.OpFindByOwnerAndChat, time.Now(), &err)

	mctx, cancel := context.WithTimeout(ctx, r.db.Timeout)
	defer cancel()

	var doc chatConfigDocument

	err = r.db.Collection.FindOne(mctx, ownerChatFilter(ownerID, chatID)).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID}
		}

		return nil, &customerrors.ErrMongoOperation{Operation: customerrors.OpFindByOwnerAndChat, Cause: err}
	}

	return doc.toModel(), nil
}

func (r *ChatConfigRepository) ListByOwner(ctx context.Context, ownerID int64) (configs []*models.ChatConfig, err error) {
	defer observe(customerrors.OpListByOwner, time.Now(), &err)

	mctx, cancel := context.WithTimeout(ctx, r.db.Timeout)
	defer cancel()

	cursor, err := r.db.Collection.Find(mctx, bson.D{{Key: "user_id", Value: ownerID}})
	if err != nil {
		return nil, &customerrors.ErrMongoOperation{Operation: customerrors.OpListByOwner, Cause: err}
	}

	var docs []chatConfigDocument
	if err = cursor.All(mctx, &docs); err != nil {
		return nil, &customerrors.ErrMongoOperation{Operation: customerrors.OpListByOwner, Cause: err}
	}

	configs = make([]*models.ChatConfig, 0, len(docs))
	for i := range docs {
		configs = append(configs, docs[i].toModel())
	}

	return configs, nil
}

func (r *ChatConfigRepository) Insert(ctx context.Context, cfg *models.ChatConfig) (err error) {
	defer observe(customerrors.OpInsert, time.Now(), &err)

	mctx, cancel := context.WithTimeout(ctx, r.db.Timeout)
	defer cancel()

	emojis := cfg.Emojis
	if emojis == nil {
		emojis = []string{}
	}

	_, err = r.db.Collection.InsertOne(mctx, chatConfigDocument{
		OwnerID:   cfg.OwnerID,
		ChatID:    cfg.ChatID,
		ChatTitle: cfg.ChatTitle,
		Emojis:    emojis,
		CreatedAt: cfg.CreatedAt.UTC(),
		UpdatedAt: cfg.UpdatedAt.UTC(),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &customerrors.ErrChatConfigAlreadyExists{OwnerID: cfg.OwnerID, ChatID: cfg.ChatID, ChatTitle: cfg.ChatTitle}
		}

		return &customerrors.ErrMongoOperation{Operation: customerrors.OpInsert, Cause: err}
	}

	return nil
}

func (r *ChatConfigRepository) UpdateEmojis(ctx context.Context, ownerID, chatID int64, emojis []string) (err error) {
	defer observe(customerrors.OpUpdateEmojis, time.Now(), &err)

	mctx, cancel := context.WithTimeout(ctx, r.db.Timeout)
	defer cancel()

	if emojis == nil {
		emojis = []string{}
	}

	result, err := r.db.Collection.UpdateOne(mctx, ownerChatFilter(ownerID, chatID), bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "emojis", Value: emojis},
			{Key: "updated_at", Value: time.Now().UTC()},
		}},
	})
	if err != nil {
		return &customerrors.ErrMongoOperation{Operation: customerrors.OpUpdateEmojis, Cause: err}
	}

	if result.MatchedCount == 0 {
		return &customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID}
	}

	return nil
}

// toggleEmojiPipeline удаляет emoji из массива, если он там есть, иначе добавляет в конец.
// Обновление выполняется одной командой на сервере, поэтому параллельные переключения не теряются.
func toggleEmojiPipeline(emoji string) mongo.Pipeline {
	literal := bson.D{{Key: "$literal", Value: emoji}}
	current := bson.D{{Key: "$ifNull", Value: bson.A{"$emojis", bson.A{}}}}

	return mongo.Pipeline{
		{{Key: "$set", Value: bson.D{
			{Key: "emojis", Value: bson.D{{Key: "$cond", Value: bson.D{
				{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{literal, current}}}},
				{Key: "then", Value: bson.D{{Key: "$filter", Value: bson.D{
					{Key: "input", Value: current},
					{Key: "as", Value: "e"},
					{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$e", literal}}}},
				}}}},
				{Key: "else", Value: bson.D{{Key: "$concatArrays", Value: bson.A{current, bson.A{literal}}}}},
			}}}},
			{Key: "updated_at", Value: "$$NOW"},
		}}},
	}
}

func (r *ChatConfigRepository) ToggleEmoji(
	ctx context.Context,
	ownerID, chatID int64,
	emoji string,
) (cfg *models.ChatConfig, action models.ToggleAction, err error) {
	defer observe(customerrors.OpToggleEmoji, time.Now(), &err)

	mctx, cancel := context.WithTimeout(ctx, r.db.Timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc chatConfigDocument

	err = r.db.Collection.FindOneAndUpdate(mctx, ownerChatFilter(ownerID, chatID), toggleEmojiPipeline(emoji), opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, "", &customerrors.ErrChatConfigNotFound{OwnerID: ownerID, ChatID: chatID}
		}

		return nil, "", &customerrors.ErrMongoOperation{Operation: customerrors.OpToggleEmoji, Cause: err}
	}

	action = models.ToggleRemoved
	if slices.Contains(doc.Emojis, emoji) {
		action = models.ToggleAdded
	}

	return doc.toModel(), action, nil
}

func (r *ChatConfigRepository) FindFirstByChat(ctx context.Context, chatID int64) (cfg *models.ChatConfig, err error) {
	defer observe(customerrors.OpFindFirstByChat, time.Now(), &err)

	mctx, cancel := context.WithTimeout(ctx, r.db.Timeout)
	defer cancel()

	var doc chatConfigDocument

	err = r.db.Collection.FindOne(mctx, bson.D{{Key: "chat_id", Value: chatID}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &customerrors.ErrChatConfigNotFound{ChatID: chatID}
		}

		return nil, &customerrors.ErrMongoOperation{Operation: customerrors.OpFindFirstByChat, Cause: err}
	}

	return doc.toModel(), nil
}

func (r *ChatConfigRepository) Count(ctx context.Context) (count int64, err error) {
	defer observe(customerrors.OpCount, time.Now(), &err)

	mctx, cancel := context.WithTimeout(ctx, r.db.Timeout)
	defer cancel()

	count, err = r.db.Collection.CountDocuments(mctx, bson.D{})
	if err != nil {
		return 0, &customerrors.ErrMongoOperation{Operation: customerrors.OpCount, Cause: err}
	}

	return count, nil
}

func observe(operation string, start time.Time, err *error) {
	metrics.RecordDatabaseQuery(backend, operation, *err, time.Since(start))
}
