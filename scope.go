package rollbar

import (
	"context"
	"errors"
	"fmt"
)

// Scope reports to Rollbar on behalf of one logical origin (a page, a
// module, a service component). It binds the access token, environment and
// scope name once. A Scope is immutable and safe for concurrent use.
//
// The level methods block until the report is accepted or fails. To report
// without blocking, use [Scope.SendAsync] with the desired level.
type Scope struct {
	token       string
	environment string
	scope       string
	options     *Options
	transport   Transport
}

// Result is the outcome of an asynchronous send.
type Result struct {
	UUID string
	Err  error
}

// New returns a Scope reporting with token to environment under the given
// scope name. The arguments are not validated; callers are responsible for
// passing non-empty values.
func New(token, environment, scope string, opts ...Option) *Scope {
	options := newClientOptions()

	for _, opt := range opts {
		opt(options)
	}

	transport := options.transport
	if transport == nil {
		transport = NewHTTPTransport(options.endpoint, options.timeout, options.requestHeaders, options.requestLogger)
	}

	return &Scope{
		token:       token,
		environment: environment,
		scope:       scope,
		options:     options,
		transport:   transport,
	}
}

func (s *Scope) Critical(ctx context.Context, message string, metadata map[string]any) (string, error) {
	return s.Send(ctx, LevelCritical, s.defaultBudget(), message, metadata)
}

func (s *Scope) Error(ctx context.Context, message string, metadata map[string]any) (string, error) {
	return s.Send(ctx, LevelError, s.defaultBudget(), message, metadata)
}

func (s *Scope) Warning(ctx context.Context, message string, metadata map[string]any) (string, error) {
	return s.Send(ctx, LevelWarning, s.defaultBudget(), message, metadata)
}

func (s *Scope) Info(ctx context.Context, message string, metadata map[string]any) (string, error) {
	return s.Send(ctx, LevelInfo, s.defaultBudget(), message, metadata)
}

func (s *Scope) Debug(ctx context.Context, message string, metadata map[string]any) (string, error) {
	return s.Send(ctx, LevelDebug, s.defaultBudget(), message, metadata)
}

// Send reports message at level, retrying rate-limited attempts at most
// budget times. It returns the report UUID, which is identical on every
// attempt and lets the caller find the item in Rollbar.
//
// Most callers should use the level methods instead, which apply the
// configured retry budget.
func (s *Scope) Send(ctx context.Context, level Level, budget int, message string, metadata map[string]any) (string, error) {
	id, body, err := s.prepare(level, budget, message, metadata)
	if err != nil {
		return "", err
	}

	return s.sendWithRetry(ctx, budget, id, body)
}

// SendAsync reports message at level with the configured retry budget on a
// separate goroutine. Exactly one [Result] is delivered on the returned
// channel, which is buffered so that an abandoned channel does not leak the
// goroutine. Cancel ctx to stop further retries.
//
// The payload is built before SendAsync returns; metadata may be reused by
// the caller afterwards.
func (s *Scope) SendAsync(ctx context.Context, level Level, message string, metadata map[string]any) <-chan Result {
	results := make(chan Result, 1)

	budget := s.defaultBudget()

	id, body, err := s.prepare(level, budget, message, metadata)
	if err != nil {
		results <- Result{Err: err}
		close(results)
		return results
	}

	go func() {
		defer close(results)

		sent, sendErr := s.sendWithRetry(ctx, budget, id, body)
		results <- Result{UUID: sent, Err: sendErr}
	}()

	return results
}

func (s *Scope) prepare(level Level, budget int, message string, metadata map[string]any) (string, []byte, error) {
	if s == nil {
		return "", nil, errors.New("rollbar scope is nil")
	}

	if err := s.options.Validate(); err != nil {
		return "", nil, fmt.Errorf("invalid options: %w", err)
	}

	if !level.valid() {
		return "", nil, fmt.Errorf("invalid level %v", level)
	}

	if budget < 0 {
		return "", nil, errors.New("retry budget must be non-negative")
	}

	id := NewIdentifier(SeedMaterial{
		Level:       level,
		Message:     message,
		Token:       s.token,
		Scope:       s.scope,
		Environment: s.environment,
		Metadata:    metadata,
		TimestampMS: s.options.clock.Now().UnixMilli(),
	})

	body, err := BuildPayload(PayloadParams{
		Token:       s.token,
		Environment: s.environment,
		Scope:       s.scope,
		CodeVersion: s.options.codeVersion,
		Endpoint:    s.options.endpoint,
		Level:       level,
		Message:     message,
		UUID:        id,
		Metadata:    metadata,
	})
	if err != nil {
		return "", nil, err
	}

	return id, body, nil
}

func (s *Scope) defaultBudget() int {
	if s == nil {
		return 0
	}

	return s.options.maxRetryAttempts
}
