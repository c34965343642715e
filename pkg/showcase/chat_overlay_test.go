package showcase

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyxo/showcase/pkg/showcase/chat"
	"github.com/zyxo/showcase/pkg/showcase/i18n"
)

func newTestOverlay(t *testing.T, client *chat.Client) *chatOverlay {
	t.Helper()
	return newChatOverlay(client, i18n.Must("en"), "ZYXO", slog.New(slog.DiscardHandler))
}

func waitForReply(t *testing.T, o *chatOverlay) {
	t.Helper()
	require.Eventually(t, func() bool { return !o.pending.Load() }, 2*time.Second, 5*time.Millisecond)
	o.drain()
}

func TestChatOverlayStartsWithWelcome(t *testing.T) {
	o := newTestOverlay(t, nil)
	require.Len(t, o.turns, 1)
	assert.Equal(t, chat.RoleModel, o.turns[0].Role)
	assert.Contains(t, o.turns[0].Text, "ZYXO AI assistant")
}

func TestChatOverlayWithoutClientReportsMissingKey(t *testing.T) {
	o := newTestOverlay(t, nil)
	o.typed("  How much is Starter?  ")

	require.True(t, o.submit(context.Background()))
	assert.Empty(t, o.input)
	waitForReply(t, o)

	require.Len(t, o.turns, 3)
	assert.Equal(t, chat.Turn{Role: chat.RoleUser, Text: "How much is Starter?"}, o.turns[1])
	assert.Contains(t, o.turns[2].Text, "API Key is missing")
}

func TestChatOverlaySendsHistoryAfterWelcome(t *testing.T) {
	var (
		mu       sync.Mutex
		contents []int
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		var body struct {
			Contents []json.RawMessage `json:"contents"`
		}
		_ = json.Unmarshal(data, &body)
		mu.Lock()
		contents = append(contents, len(body.Contents))
		mu.Unlock()
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Starter is ₹16,500 + GST."}]}}]}`)
	}))
	t.Cleanup(srv.Close)

	client := chat.NewClient(chat.Settings{
		APIKey:            "test-key",
		BaseURL:           srv.URL,
		HTTPClient:        srv.Client(),
		RequestsPerMinute: 600,
	})
	o := newTestOverlay(t, client)

	o.typed("Price?")
	require.True(t, o.submit(context.Background()))
	waitForReply(t, o)
	assert.Equal(t, "Starter is ₹16,500 + GST.", o.turns[2].Text)

	o.typed("And Business?")
	require.True(t, o.submit(context.Background()))
	waitForReply(t, o)

	mu.Lock()
	defer mu.Unlock()
	// The welcome turn is never sent: first request is the question alone, the second carries
	// the first exchange plus the new question.
	assert.Equal(t, []int{1, 3}, contents)
	assert.Len(t, o.turns, 5)
}

func TestChatOverlayIgnoresEmptyAndConcurrentSubmits(t *testing.T) {
	o := newTestOverlay(t, nil)
	assert.False(t, o.submit(context.Background()), "empty input")

	o.typed("   ")
	assert.False(t, o.submit(context.Background()), "blank input")

	o.pending.Store(true)
	o.typed("hello")
	assert.False(t, o.submit(context.Background()), "reply outstanding")
	assert.Equal(t, "   hello", o.input)
}

func TestChatOverlayInputEditing(t *testing.T) {
	o := newTestOverlay(t, nil)
	o.typed("₹5")
	o.backspace()
	assert.Equal(t, "₹", o.input)
	o.backspace()
	assert.Empty(t, o.input)
	o.backspace()
	assert.Empty(t, o.input)
}
