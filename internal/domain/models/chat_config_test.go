package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

func TestToggleEmoji(t *testing.T) {
	tests := []struct {
		name     string
		emojis   []string
		emoji    string
		expected []string
		action   models.ToggleAction
	}{
		{
			name:     "добавление в пустой набор",
			emojis:   []string{},
			emoji:    models.EmojiHeart,
			expected: []string{models.EmojiHeart},
			action:   models.ToggleAdded,
		},
		{
			name:     "добавление в конец",
			emojis:   []string{models.EmojiFire},
			emoji:    models.EmojiThumbsUp,
			expected: []string{models.EmojiFire, models.EmojiThumbsUp},
			action:   models.ToggleAdded,
		},
		{
			name:     "удаление из середины сохраняет порядок",
			emojis:   []string{models.EmojiParty, models.EmojiHeart, models.EmojiFire},
			emoji:    models.EmojiHeart,
			expected: []string{models.EmojiParty, models.EmojiFire},
			action:   models.ToggleRemoved,
		},
		{
			name:     "удаление единственной реакции",
			emojis:   []string{models.EmojiHeart},
			emoji:    models.EmojiHeart,
			expected: []string{},
			action:   models.ToggleRemoved,
		},
		{
			name:     "nil набор",
			emojis:   nil,
			emoji:    models.EmojiParty,
			expected: []string{models.EmojiParty},
			action:   models.ToggleAdded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, action := models.ToggleEmoji(tt.emojis, tt.emoji)

			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.action, action)
		})
	}
}

func TestToggleEmoji_DoesNotMutateInput(t *testing.T) {
	original := []string{models.EmojiThumbsUp, models.EmojiFire}

	_, _ = models.ToggleEmoji(original, models.EmojiThumbsUp)

	assert.Equal(t, []string{models.EmojiThumbsUp, models.EmojiFire}, original)
}

func TestToggleEmoji_PairRestoresPreviousState(t *testing.T) {
	start := []string{models.EmojiFire, models.EmojiParty}

	for _, emoji := range models.Catalog {
		once, _ := models.ToggleEmoji(start, emoji)
		twice, _ := models.ToggleEmoji(once, emoji)

		assert.ElementsMatch(t, start, twice, "двойное переключение %s должно вернуть исходный набор", emoji)
	}
}

func TestToggleEmoji_CatalogClosure(t *testing.T) {
	emojis := []string{}

	// Перебираем последовательности переключений и проверяем, что набор остается подмножеством каталога без повторов.
	sequence := []string{
		models.EmojiHeart, models.EmojiFire, models.EmojiHeart, models.EmojiParty,
		models.EmojiThumbsUp, models.EmojiFire, models.EmojiHeart, models.EmojiParty,
		models.EmojiThumbsUp, models.EmojiFire, models.EmojiFire,
	}

	for _, emoji := range sequence {
		emojis, _ = models.ToggleEmoji(emojis, emoji)

		require.LessOrEqual(t, len(emojis), len(models.Catalog))

		seen := make(map[string]struct{}, len(emojis))

		for _, e := range emojis {
			assert.True(t, models.IsCatalogEmoji(e))

			_, dup := seen[e]
			assert.False(t, dup, "повтор реакции %s", e)

			seen[e] = struct{}{}
		}
	}
}

func TestIsCatalogEmoji(t *testing.T) {
	for _, emoji := range models.Catalog {
		assert.True(t, models.IsCatalogEmoji(emoji))
	}

	assert.Len(t, models.Catalog, 4)
	assert.False(t, models.IsCatalogEmoji("😀"))
	assert.False(t, models.IsCatalogEmoji("❤"), "сердце без вариационного селектора не входит в каталог")
	assert.False(t, models.IsCatalogEmoji(""))
}

func TestNewChatConfig(t *testing.T) {
	cfg := models.NewChatConfig(42, -1001234567890, "Test Group")

	assert.Equal(t, int64(42), cfg.OwnerID)
	assert.Equal(t, int64(-1001234567890), cfg.ChatID)
	assert.Equal(t, "Test Group", cfg.ChatTitle)
	assert.NotNil(t, cfg.Emojis)
	assert.Empty(t, cfg.Emojis)
	assert.False(t, cfg.CreatedAt.IsZero())
}

func TestParseCommandType(t *testing.T) {
	assert.Equal(t, models.CommandStart, models.ParseCommandType("start"))
	assert.Equal(t, models.CommandChat, models.ParseCommandType("chat"))
	assert.Equal(t, models.CommandUnknown, models.ParseCommandType("help"))
}

func TestNewChatConfigEvent_CopiesEmojis(t *testing.T) {
	cfg := models.NewChatConfig(1, -100500, "Chat")
	cfg.Emojis = []string{models.EmojiFire}

	event := models.NewChatConfigEvent(models.EventEmojisToggled, cfg)
	cfg.Emojis[0] = models.EmojiParty

	assert.NotEmpty(t, event.ID)
	assert.Equal(t, models.EventEmojisToggled, event.Type)
	assert.Equal(t, []string{models.EmojiFire}, event.Emojis)
}
