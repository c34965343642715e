package chat

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyxo/showcase/pkg/showcase/content"
)

type recorded struct {
	path string
	key  string
	body generateRequest
}

type fakeAPI struct {
	mu       sync.Mutex
	requests []recorded
	handler  func(w http.ResponseWriter, model string)
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	var body generateRequest
	_ = json.Unmarshal(data, &body)

	f.mu.Lock()
	f.requests = append(f.requests, recorded{path: r.URL.Path, key: r.Header.Get("x-goog-api-key"), body: body})
	f.mu.Unlock()

	model := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/models/"), ":generateContent")
	f.handler(w, model)
}

func reply(text string) func(http.ResponseWriter, string) {
	return func(w http.ResponseWriter, _ string) {
		_, _ = io.WriteString(w, `{"candidates":[{"content":{"role":"model","parts":[{"text":`+quote(text)+`}]}}]}`)
	}
}

func failWith(status int, body string) func(http.ResponseWriter, string) {
	return func(w http.ResponseWriter, _ string) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newTestClient(t *testing.T, api *fakeAPI, mutate ...func(*Settings)) *Client {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	s := Settings{
		APIKey:            "test-key",
		BaseURL:           srv.URL,
		SystemPrompt:      "be brief",
		RequestsPerMinute: 600,
		HTTPClient:        srv.Client(),
	}
	for _, m := range mutate {
		m(&s)
	}
	return NewClient(s)
}

func TestSendReturnsReply(t *testing.T) {
	api := &fakeAPI{handler: reply("  We build websites.  ")}
	c := newTestClient(t, api)

	history := []Turn{
		{Role: RoleModel, Text: Welcome},
		{Role: RoleUser, Text: "hello"},
		{Role: RoleModel, Text: "hi"},
	}
	got := c.Send(context.Background(), "what do you do?", history)
	assert.Equal(t, "We build websites.", got)

	require.Len(t, api.requests, 1)
	req := api.requests[0]
	assert.Equal(t, "/models/gemini-2.0-flash:generateContent", req.path)
	assert.Equal(t, "test-key", req.key)
	require.NotNil(t, req.body.SystemInstruction)
	assert.Equal(t, "be brief", req.body.SystemInstruction.Parts[0].Text)

	require.Len(t, req.body.Contents, 3, "welcome turn is dropped")
	assert.Equal(t, "user", req.body.Contents[0].Role)
	assert.Equal(t, "hello", req.body.Contents[0].Parts[0].Text)
	assert.Equal(t, "what do you do?", req.body.Contents[2].Parts[0].Text)
}

func TestSendWithoutKey(t *testing.T) {
	c := NewClient(Settings{})
	assert.False(t, c.Configured())
	assert.Equal(t, FailureMissingKey.Message(), c.Send(context.Background(), "hi", nil))
}

func TestSendEmptyResponse(t *testing.T) {
	api := &fakeAPI{handler: reply("   ")}
	c := newTestClient(t, api)
	assert.Equal(t, "I received an empty response. Please try again.", c.Send(context.Background(), "hi", nil))
}

func TestSendClassifiesAPIErrors(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   Failure
	}{
		{"invalid key", 400, `{"error":{"code":400,"message":"API key not valid. Please pass a valid API key.","status":"INVALID_ARGUMENT","details":[{"reason":"API_KEY_INVALID"}]}}`, FailureInvalidKey},
		{"unauthorised", 401, ``, FailureInvalidKey},
		{"permission", 403, `{"error":{"code":403,"message":"denied","status":"PERMISSION_DENIED"}}`, FailurePermission},
		{"quota", 429, `{"error":{"code":429,"message":"quota","status":"RESOURCE_EXHAUSTED"}}`, FailureQuota},
		{"server", 500, `{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`, FailureUnknown},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &fakeAPI{handler: failWith(tc.status, tc.body)}
			c := newTestClient(t, api)
			_, err := c.Reply(context.Background(), "hi", nil)
			require.Error(t, err)
			assert.Equal(t, tc.want, Classify(err))
			assert.Equal(t, tc.want.Message(), c.Send(context.Background(), "hi", nil))
		})
	}
}

func TestReplyFallsBackToNextModel(t *testing.T) {
	api := &fakeAPI{handler: func(w http.ResponseWriter, model string) {
		if model == "primary" {
			failWith(404, `{"error":{"code":404,"message":"models/primary is not found","status":"NOT_FOUND"}}`)(w, model)
			return
		}
		reply("from "+model)(w, model)
	}}
	c := newTestClient(t, api, func(s *Settings) { s.Models = []string{"primary", "backup"} })

	got, err := c.Reply(context.Background(), "hi", nil)
	require.NoError(t, err)
	assert.Equal(t, "from backup", got)
	assert.Len(t, api.requests, 2)
}

func TestReplyAllModelsMissing(t *testing.T) {
	api := &fakeAPI{handler: failWith(404, ``)}
	c := newTestClient(t, api, func(s *Settings) { s.Models = []string{"a", "b"} })
	assert.Equal(t, FailureNotFound.Message(), c.Send(context.Background(), "hi", nil))
	assert.Len(t, api.requests, 2)
}

func TestReplyTimeout(t *testing.T) {
	release := make(chan struct{})
	api := &fakeAPI{handler: func(w http.ResponseWriter, model string) {
		<-release
		reply("late")(w, model)
	}}
	c := newTestClient(t, api, func(s *Settings) { s.Timeout = 20 * time.Millisecond })
	defer close(release)

	_, err := c.Reply(context.Background(), "hi", nil)
	require.Error(t, err)
	assert.Equal(t, FailureTimeout, Classify(err))
}

func TestRateLimit(t *testing.T) {
	api := &fakeAPI{handler: reply("ok")}
	c := newTestClient(t, api, func(s *Settings) { s.RequestsPerMinute = 1 })

	assert.Equal(t, "ok", c.Send(context.Background(), "one", nil))
	assert.Equal(t, FailureQuota.Message(), c.Send(context.Background(), "two", nil))
	assert.Len(t, api.requests, 1)
}

func TestBreakerOpensAfterServerFailures(t *testing.T) {
	api := &fakeAPI{handler: failWith(503, ``)}
	c := newTestClient(t, api)

	for i := 0; i < 3; i++ {
		_, err := c.Reply(context.Background(), "hi", nil)
		require.Error(t, err)
	}
	_, err := c.Reply(context.Background(), "hi", nil)
	assert.Equal(t, FailureOffline, Classify(err))
	assert.Len(t, api.requests, 3)
}

func TestClientErrorsDoNotTripBreaker(t *testing.T) {
	api := &fakeAPI{handler: failWith(403, ``)}
	c := newTestClient(t, api)

	for i := 0; i < 5; i++ {
		_, err := c.Reply(context.Background(), "hi", nil)
		assert.Equal(t, FailurePermission, Classify(err))
	}
	assert.Len(t, api.requests, 5)
}

func TestNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(Settings{APIKey: "k", BaseURL: url})
	_, err := c.Reply(context.Background(), "hi", nil)
	assert.Equal(t, FailureNetwork, Classify(err))
}

func TestLocalisedMessages(t *testing.T) {
	c := NewClient(Settings{Messages: func(f Failure) string { return "!" + f.String() }})
	assert.Equal(t, "!MissingKey", c.Send(context.Background(), "hi", nil))
}

func TestTrimHistory(t *testing.T) {
	assert.Nil(t, TrimHistory(nil))
	assert.Nil(t, TrimHistory([]Turn{{Role: RoleModel, Text: "welcome"}}))
	assert.Nil(t, TrimHistory([]Turn{{Role: RoleModel}, {Role: RoleModel}}))

	h := []Turn{{Role: RoleUser, Text: "a"}, {Role: RoleModel, Text: "b"}}
	assert.Equal(t, h, TrimHistory(h))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, FailureNone, Classify(nil))
	assert.Equal(t, FailureUnknown, Classify(errors.New("weird")))
	assert.Equal(t, FailureTimeout, Classify(context.DeadlineExceeded))
	assert.Equal(t, "ChatFailureQuota", FailureQuota.MessageID())
	assert.Equal(t, "ChatFailureUnknown", Failure(99).MessageID())
}

func TestSystemPrompt(t *testing.T) {
	c, err := content.Default()
	require.NoError(t, err)

	p := SystemPrompt(c)
	assert.Contains(t, p, "ZYXO Digital Solutions")
	assert.Contains(t, p, "- Starter Plan (₹16,500 + GST):")
	assert.Contains(t, p, "24/7 AI Chat Agent")
	assert.Contains(t, p, "No long-term contracts or forced renewals.")
}
