package clients_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/central-university-dev/go-reaction-bot/internal/bot/clients"
	"github.com/central-university-dev/go-reaction-bot/internal/bot/domain"
	domainerrors "github.com/central-university-dev/go-reaction-bot/internal/domain/errors"
	"github.com/central-university-dev/go-reaction-bot/internal/domain/models"
)

const testToken = "123:test-token"

type fakeBotAPI struct {
	mu       sync.Mutex
	requests map[string][]map[string][]string
	handlers map[string]string
}

func newFakeBotAPI() *fakeBotAPI {
	return &fakeBotAPI{
		requests: make(map[string][]map[string][]string),
		handlers: map[string]string{
			"getMe": `{"ok":true,"result":{"id":777,"is_bot":true,"first_name":"Reaction","username":"reaction_test_bot"}}`,
		},
	}
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]

	_ = r.ParseForm()

	f.mu.Lock()
	f.requests[method] = append(f.requests[method], r.PostForm)
	body, ok := f.handlers[method]
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if !ok {
		_, _ = io.WriteString(w, `{"ok":true,"result":true}`)
		return
	}

	_, _ = io.WriteString(w, body)
}

func (f *fakeBotAPI) on(method, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.handlers[method] = body
}

func (f *fakeBotAPI) calls(method string) []map[string][]string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.requests[method]
}

func newTestClient(t *testing.T, api *fakeBotAPI) *clients.TelegramClient {
	t.Helper()

	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	client, err := clients.NewTelegramClient(testToken, server.URL+"/bot%s/%s", server.Client(), slog.Default())
	require.NoError(t, err)

	return client
}

func TestTelegramClient_Self(t *testing.T) {
	client := newTestClient(t, newFakeBotAPI())

	self := client.Self()

	assert.Equal(t, int64(777), self.ID)
	assert.Equal(t, "reaction_test_bot", self.Username)
}

func TestTelegramClient_ResolveChat(t *testing.T) {
	api := newFakeBotAPI()
	api.on("getChat", `{"ok":true,"result":{"id":-1001234567890,"type":"supergroup","title":"Test Group"}}`)

	client := newTestClient(t, api)

	info, err := client.ResolveChat(context.Background(), -1001234567890)

	require.NoError(t, err)
	assert.Equal(t, "Test Group", info.Title)
	assert.Equal(t, "supergroup", info.Type)
	assert.Equal(t, "-1001234567890", api.calls("getChat")[0]["chat_id"][0])
}

func TestTelegramClient_ResolveChat_NotFound(t *testing.T) {
	api := newFakeBotAPI()
	api.on("getChat", `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)

	client := newTestClient(t, api)

	info, err := client.ResolveChat(context.Background(), -1009999)

	assert.Nil(t, info)
	assert.ErrorIs(t, err, &domainerrors.ErrChatResolution{})
}

func TestTelegramClient_React_SendsReactionWithoutVariationSelector(t *testing.T) {
	api := newFakeBotAPI()
	client := newTestClient(t, api)

	err := client.React(context.Background(), -1001234567890, 42, models.EmojiHeart)
	require.NoError(t, err)

	calls := api.calls("setMessageReaction")
	require.Len(t, calls, 1)

	assert.Equal(t, "-1001234567890", calls[0]["chat_id"][0])
	assert.Equal(t, "42", calls[0]["message_id"][0])

	var reaction []map[string]string

	require.NoError(t, json.Unmarshal([]byte(calls[0]["reaction"][0]), &reaction))
	require.Len(t, reaction, 1)
	assert.Equal(t, "emoji", reaction[0]["type"])
	assert.Equal(t, "❤", reaction[0]["emoji"])
}

func TestTelegramClient_React_Error(t *testing.T) {
	api := newFakeBotAPI()
	api.on("setMessageReaction", `{"ok":false,"error_code":400,"description":"Bad Request: REACTION_INVALID"}`)

	client := newTestClient(t, api)

	err := client.React(context.Background(), -100, 1, models.EmojiFire)

	var reactionErr *domainerrors.ErrReactionApply

	require.ErrorAs(t, err, &reactionErr)
	assert.Equal(t, models.EmojiFire, reactionErr.Emoji)
}

func TestTelegramClient_SendMessage_WithKeyboard(t *testing.T) {
	api := newFakeBotAPI()
	api.on("sendMessage", `{"ok":true,"result":{"message_id":15,"date":0,"chat":{"id":10,"type":"private"}}}`)

	client := newTestClient(t, api)

	keyboard := domain.InlineKeyboard{
		{{Text: "📢 Test", CallbackData: domain.SelectChatData(-100)}},
		{{Text: "➕ Add to Group", URL: "https://t.me/reaction_test_bot?startgroup=true"}},
	}

	messageID, err := client.SendMessage(context.Background(), 10, "<b>hi</b>", keyboard)

	require.NoError(t, err)
	assert.Equal(t, 15, messageID)

	call := api.calls("sendMessage")[0]
	assert.Equal(t, "HTML", call["parse_mode"][0])
	assert.Contains(t, call["reply_markup"][0], "select_chat_-100")
	assert.Contains(t, call["reply_markup"][0], "startgroup=true")
}

func TestTelegramClient_AnswerCallback(t *testing.T) {
	api := newFakeBotAPI()
	client := newTestClient(t, api)

	err := client.AnswerCallback(context.Background(), "cb-1", "Error: Chat not found.", true)

	require.NoError(t, err)

	call := api.calls("answerCallbackQuery")[0]
	assert.Equal(t, "cb-1", call["callback_query_id"][0])
	assert.Equal(t, "true", call["show_alert"][0])
}

func TestNormalizeReactionEmoji(t *testing.T) {
	assert.Equal(t, "❤", clients.NormalizeReactionEmoji(models.EmojiHeart))
	assert.Equal(t, models.EmojiFire, clients.NormalizeReactionEmoji(models.EmojiFire))
}
