// Package chat talks to the hosted language model behind the showcase's assistant.
//
// Client.Send never fails: every error is turned into a message the overlay can show in place
// of a reply. Client.Reply exposes the underlying error for callers that want it.
package chat

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	_ "github.com/BrandonKowalski/certifiable" // CA bundle for devices without a system trust store
	json "github.com/goccy/go-json"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second
)

// DefaultModels are tried in order; a model the API reports as missing falls through to the next.
var DefaultModels = []string{"gemini-2.0-flash", "gemini-1.5-flash", "gemini-pro"}

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one message of the conversation.
type Turn struct {
	Role Role
	Text string
}

// Settings configures a Client. Zero values pick the defaults.
type Settings struct {
	APIKey       string
	BaseURL      string
	Models       []string
	SystemPrompt string
	Timeout      time.Duration

	// RequestsPerMinute caps outgoing requests. Zero means 10.
	RequestsPerMinute int

	HTTPClient *http.Client
	Logger     *slog.Logger

	// Messages localises failure text. Nil uses Failure.Message.
	Messages func(Failure) string
}

type Client struct {
	settings Settings
	http     *http.Client
	limiter  *rate.Limiter
	breaker  *gobreaker.CircuitBreaker
	logger   *slog.Logger
}

func NewClient(s Settings) *Client {
	if s.BaseURL == "" {
		s.BaseURL = DefaultBaseURL
	}
	if len(s.Models) == 0 {
		s.Models = DefaultModels
	}
	if s.Timeout <= 0 {
		s.Timeout = DefaultTimeout
	}
	if s.RequestsPerMinute <= 0 {
		s.RequestsPerMinute = 10
	}
	if s.Messages == nil {
		s.Messages = Failure.Message
	}

	httpClient := s.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: s.Timeout + 5*time.Second}
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	st := gobreaker.Settings{
		Name:     "chat",
		Interval: 60 * time.Second,
		Timeout:  30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !tripsBreaker(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("chat breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	}

	perRequest := time.Minute / time.Duration(s.RequestsPerMinute)
	return &Client{
		settings: s,
		http:     httpClient,
		limiter:  rate.NewLimiter(rate.Every(perRequest), s.RequestsPerMinute),
		breaker:  gobreaker.NewCircuitBreaker(st),
		logger:   logger,
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool {
	return c.settings.APIKey != ""
}

// Send returns the model's reply, or the message describing why there is none.
func (c *Client) Send(ctx context.Context, message string, history []Turn) string {
	reply, err := c.Reply(ctx, message, history)
	if err != nil {
		failure := Classify(err)
		c.logger.Error("chat request failed", "failure", failure.String(), "error", err)
		return c.settings.Messages(failure)
	}
	return reply
}

// Reply sends message with the preceding history and returns the model's text.
func (c *Client) Reply(ctx context.Context, message string, history []Turn) (string, error) {
	if !c.Configured() {
		return "", ErrNoAPIKey
	}
	if !c.limiter.Allow() {
		return "", ErrRateLimited
	}

	ctx, cancel := context.WithTimeout(ctx, c.settings.Timeout)
	defer cancel()

	body, err := json.Marshal(c.buildRequest(message, history))
	if err != nil {
		return "", fmt.Errorf("chat: encode request: %w", err)
	}

	var lastErr error
	for _, model := range c.settings.Models {
		out, err := c.breaker.Execute(func() (interface{}, error) {
			return c.generate(ctx, model, body)
		})
		if err == nil {
			return out.(string), nil
		}
		lastErr = err
		if Classify(err) != FailureNotFound {
			break
		}
		c.logger.Warn("chat model unavailable, trying next", "model", model)
	}
	return "", lastErr
}

func (c *Client) buildRequest(message string, history []Turn) generateRequest {
	req := generateRequest{}
	if c.settings.SystemPrompt != "" {
		req.SystemInstruction = &contentPart{Parts: []textPart{{Text: c.settings.SystemPrompt}}}
	}
	for _, t := range TrimHistory(history) {
		req.Contents = append(req.Contents, contentPart{Role: string(t.Role), Parts: []textPart{{Text: t.Text}}})
	}
	req.Contents = append(req.Contents, contentPart{Role: string(RoleUser), Parts: []textPart{{Text: message}}})
	return req
}

// TrimHistory drops a leading model turn, such as the welcome message, and discards the
// history entirely if it still does not open with a user turn.
func TrimHistory(history []Turn) []Turn {
	if len(history) > 0 && history[0].Role == RoleModel {
		history = history[1:]
	}
	if len(history) == 0 || history[0].Role != RoleUser {
		return nil
	}
	return history
}

func (c *Client) generate(ctx context.Context, model string, body []byte) (string, error) {
	endpoint := strings.TrimRight(c.settings.BaseURL, "/") + "/models/" + url.PathEscape(model) + ":generateContent"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("chat: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.settings.APIKey)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("chat: read response: %w", err)
	}
	c.logger.Debug("chat response", "model", model, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode/100 != 2 {
		return "", decodeAPIError(resp.StatusCode, data)
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("chat: decode response: %w", err)
	}
	text := strings.TrimSpace(out.text())
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func decodeAPIError(status int, data []byte) error {
	apiErr := &APIError{StatusCode: status, Message: http.StatusText(status)}

	var env errorEnvelope
	if err := json.Unmarshal(data, &env); err == nil && env.Error != nil {
		if env.Error.Message != "" {
			apiErr.Message = env.Error.Message
		}
		apiErr.Status = env.Error.Status
		for _, d := range env.Error.Details {
			if d.Reason != "" {
				apiErr.Reason = d.Reason
				break
			}
		}
	}
	return apiErr
}

type textPart struct {
	Text string `json:"text"`
}

type contentPart struct {
	Role  string     `json:"role,omitempty"`
	Parts []textPart `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *contentPart  `json:"systemInstruction,omitempty"`
	Contents          []contentPart `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content contentPart `json:"content"`
	} `json:"candidates"`
}

func (r generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String()
}

type errorEnvelope struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
		Details []struct {
			Reason string `json:"reason"`
		} `json:"details"`
	} `json:"error"`
}
