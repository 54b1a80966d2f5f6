package rollbar

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultMaxRetryAttempts spans Rollbar's one-minute rate limit window
	// at one retry per second.
	DefaultMaxRetryAttempts = 60

	// DefaultRetryDelay is the fixed wait between rate-limited attempts.
	DefaultRetryDelay = time.Second

	// DefaultTimeout bounds a single HTTP attempt.
	DefaultTimeout = 10 * time.Second

	maxRetryDelay = time.Minute

	accessTokenHeader = "X-Rollbar-Access-Token"
)

type Option func(*Options)

type Options struct {
	maxRetryAttempts int
	retryDelay       time.Duration
	codeVersion      string
	endpoint         string
	timeout          time.Duration
	requestLogger    RequestLogger
	retryPolicy      func(error) bool
	requestHeaders   map[string]string
	transport        Transport
	clock            Clock
}

func newClientOptions() *Options {
	return &Options{
		maxRetryAttempts: DefaultMaxRetryAttempts,
		retryDelay:       DefaultRetryDelay,
		endpoint:         DefaultEndpoint,
		timeout:          DefaultTimeout,
		requestLogger:    &NoopLogger{},
		retryPolicy:      DefaultRetryPolicy,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		clock: systemClock{},
	}
}

func WithMaxRetryAttempts(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.maxRetryAttempts = count
		}
	}
}

func WithRetryDelay(delay time.Duration) Option {
	return func(o *Options) {
		if delay >= 0 && delay <= maxRetryDelay {
			o.retryDelay = delay
		}
	}
}

// WithCodeVersion attaches the deployed build (typically a source revision
// hash) to every report.
func WithCodeVersion(version string) Option {
	return func(o *Options) {
		o.codeVersion = strings.TrimSpace(version)
	}
}

// WithEndpoint overrides the ingestion URL, e.g. for a proxy or a test
// server. The URL is also written to data.endpoint of every payload.
func WithEndpoint(endpoint string) Option {
	return func(o *Options) {
		if endpoint = strings.TrimSpace(endpoint); endpoint != "" {
			o.endpoint = endpoint
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" ||
			strings.EqualFold(header, "Content-Type") ||
			strings.EqualFold(header, "Accept") ||
			strings.EqualFold(header, accessTokenHeader) {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithTransport replaces the HTTPS transport, e.g. with a [LogTransport] or
// a platform-specific adapter. Endpoint, timeout and request headers are
// ignored when a custom transport is set.
func WithTransport(transport Transport) Option {
	return func(o *Options) {
		if transport != nil {
			o.transport = transport
		}
	}
}

func WithClock(clock Clock) Option {
	return func(o *Options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// Validate checks the option set. It is run before every send.
func (o *Options) Validate() error {
	if o.maxRetryAttempts < 0 {
		return errors.New("maxRetryAttempts must be non-negative")
	}

	if o.retryDelay < 0 {
		return errors.New("retryDelay must be non-negative")
	}

	if o.retryDelay > maxRetryDelay {
		return fmt.Errorf("retryDelay must not exceed %v", maxRetryDelay)
	}

	if o.timeout <= 0 {
		return errors.New("timeout must be positive")
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	if o.clock == nil {
		return errors.New("clock must not be nil")
	}

	u, err := url.Parse(o.endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("endpoint %q is not an absolute URL", o.endpoint)
	}

	return nil
}
