package chat

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/sony/gobreaker"
)

var (
	ErrNoAPIKey      = errors.New("chat: api key is missing")
	ErrEmptyResponse = errors.New("chat: empty response")
	ErrRateLimited   = errors.New("chat: client rate limit reached")
)

// APIError is a non-2xx reply from the model API.
type APIError struct {
	StatusCode int
	Status     string // e.g. RESOURCE_EXHAUSTED
	Reason     string // e.g. API_KEY_INVALID
	Message    string
}

func (e *APIError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("chat: api error %d %s: %s", e.StatusCode, e.Status, e.Message)
	}
	return fmt.Sprintf("chat: api error %d: %s", e.StatusCode, e.Message)
}

// Failure is the user-facing category of a failed exchange.
type Failure int

const (
	FailureNone Failure = iota
	FailureMissingKey
	FailureOffline
	FailureEmpty
	FailureNetwork
	FailureInvalidKey
	FailurePermission
	FailureQuota
	FailureNotFound
	FailureTimeout
	FailureUnknown
)

var failureIDs = map[Failure]string{
	FailureNone:       "ChatFailureNone",
	FailureMissingKey: "ChatFailureMissingKey",
	FailureOffline:    "ChatFailureOffline",
	FailureEmpty:      "ChatFailureEmpty",
	FailureNetwork:    "ChatFailureNetwork",
	FailureInvalidKey: "ChatFailureInvalidKey",
	FailurePermission: "ChatFailurePermission",
	FailureQuota:      "ChatFailureQuota",
	FailureNotFound:   "ChatFailureNotFound",
	FailureTimeout:    "ChatFailureTimeout",
	FailureUnknown:    "ChatFailureUnknown",
}

// MessageID is the translation id of the failure's message.
func (f Failure) MessageID() string {
	if id, ok := failureIDs[f]; ok {
		return id
	}
	return failureIDs[FailureUnknown]
}

func (f Failure) String() string {
	return strings.TrimPrefix(f.MessageID(), "ChatFailure")
}

// Message is the English text shown in place of a reply.
func (f Failure) Message() string {
	switch f {
	case FailureNone:
		return ""
	case FailureMissingKey:
		return "Configuration Error: API Key is missing. Please set GEMINI_API_KEY in your environment variables."
	case FailureOffline:
		return "I'm currently offline. Please contact us via WhatsApp."
	case FailureEmpty:
		return "I received an empty response. Please try again."
	case FailureNetwork:
		return "Network Error: Unable to connect to the AI service. Please check your internet connection and try again."
	case FailureInvalidKey:
		return "Configuration Error: The API key is invalid. Please check your settings."
	case FailurePermission:
		return "Access Denied: The API key doesn't have permission for this model."
	case FailureQuota:
		return "I'm getting a lot of questions right now! Please wait 30 seconds and try again."
	case FailureNotFound:
		return "Model not available. The AI service is temporarily unavailable. Please try again later or contact us via WhatsApp."
	case FailureTimeout:
		return "Request timed out. The AI service took too long to respond. Please try again."
	default:
		return "I'm having trouble connecting right now. Please try again in a moment, or contact us directly via WhatsApp for immediate assistance."
	}
}

// Classify maps an error from Reply onto the failure shown to the visitor.
func Classify(err error) Failure {
	if err == nil {
		return FailureNone
	}

	switch {
	case errors.Is(err, ErrNoAPIKey):
		return FailureMissingKey
	case errors.Is(err, ErrEmptyResponse):
		return FailureEmpty
	case errors.Is(err, ErrRateLimited):
		return FailureQuota
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return FailureOffline
	case errors.Is(err, context.DeadlineExceeded):
		return FailureTimeout
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return classifyAPIError(apiErr)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return FailureTimeout
		}
		return FailureNetwork
	}

	return FailureUnknown
}

func classifyAPIError(e *APIError) Failure {
	switch {
	case e.Reason == "API_KEY_INVALID",
		e.StatusCode == http.StatusUnauthorized,
		strings.Contains(e.Message, "API key not valid"):
		return FailureInvalidKey
	case e.Status == "PERMISSION_DENIED", e.StatusCode == http.StatusForbidden:
		return FailurePermission
	case e.Status == "RESOURCE_EXHAUSTED", e.StatusCode == http.StatusTooManyRequests:
		return FailureQuota
	case e.Status == "NOT_FOUND", e.StatusCode == http.StatusNotFound:
		return FailureNotFound
	case e.Status == "DEADLINE_EXCEEDED", e.StatusCode == http.StatusGatewayTimeout:
		return FailureTimeout
	default:
		return FailureUnknown
	}
}

// tripsBreaker reports whether err says the service itself is unhealthy, as opposed to a
// problem with the request or the key.
func tripsBreaker(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= http.StatusInternalServerError
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
