package rollbar

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Transport delivers one serialized item payload. It reports failures as
// [*HTTPError] when a non-2xx response was received and [*TransportError]
// when none was; it does not interpret status codes itself.
type Transport interface {
	Post(ctx context.Context, body []byte, token string) error
}

// TransportFunc adapts a plain function to [Transport].
type TransportFunc func(ctx context.Context, body []byte, token string) error

func (f TransportFunc) Post(ctx context.Context, body []byte, token string) error {
	return f(ctx, body, token)
}

// HTTPTransport posts payloads to the Rollbar item endpoint with resty.
// Resty's own retry mechanism is disabled; retries are driven by [Scope].
type HTTPTransport struct {
	endpoint string
	client   *resty.Client
}

// NewHTTPTransport returns a transport posting to endpoint.
func NewHTTPTransport(endpoint string, timeout time.Duration, headers map[string]string, logger RequestLogger) *HTTPTransport {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeaders(headers).
		SetLogger(logger)

	return &HTTPTransport{
		endpoint: endpoint,
		client:   client,
	}
}

func (t *HTTPTransport) Post(ctx context.Context, body []byte, token string) error {
	response, err := t.client.R().
		SetContext(ctx).
		SetHeader(accessTokenHeader, token).
		SetBody(body).
		Post(t.endpoint)
	if err != nil {
		return &TransportError{Err: err}
	}

	if !response.IsSuccess() {
		return &HTTPError{
			StatusCode: response.StatusCode(),
			Message:    errorMessage(response.Body()),
		}
	}

	return nil
}

// errorMessage extracts the message from a Rollbar error response, falling
// back to the raw body.
func errorMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "(empty error body)"
	}

	var rollbarErr struct {
		Message string `json:"message"`
	}

	if err := json.Unmarshal(body, &rollbarErr); err == nil && rollbarErr.Message != "" {
		return rollbarErr.Message
	}

	return text
}
