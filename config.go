package rollbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the environment variable prefix used by [LoadConfig]
// when none is given.
const DefaultEnvPrefix = "ROLLBAR_"

// Config is the environment-driven configuration of a [Scope].
type Config struct {
	AccessToken      string        `koanf:"access_token" validate:"required"`
	Environment      string        `koanf:"environment" validate:"required"`
	CodeVersion      string        `koanf:"code_version"`
	Endpoint         string        `koanf:"endpoint" validate:"omitempty,url"`
	MaxRetryAttempts int           `koanf:"max_retry_attempts" validate:"gte=0"`
	RetryDelay       time.Duration `koanf:"retry_delay" validate:"gte=0,lte=60000000000"`
	Timeout          time.Duration `koanf:"timeout" validate:"gte=0"`
}

// LoadConfig reads the configuration from environment variables named
// <prefix>ACCESS_TOKEN, <prefix>ENVIRONMENT, <prefix>CODE_VERSION,
// <prefix>ENDPOINT, <prefix>MAX_RETRY_ATTEMPTS, <prefix>RETRY_DELAY and
// <prefix>TIMEOUT. Durations use [time.ParseDuration] syntax.
func LoadConfig(prefix string) (*Config, error) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	k := koanf.New(".")

	err := k.Load(env.Provider(prefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, prefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := &Config{
		Endpoint:         DefaultEndpoint,
		MaxRetryAttempts: DefaultMaxRetryAttempts,
		RetryDelay:       DefaultRetryDelay,
		Timeout:          DefaultTimeout,
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Options converts the configuration to [Option] values.
func (c *Config) Options() []Option {
	return []Option{
		WithCodeVersion(c.CodeVersion),
		WithEndpoint(c.Endpoint),
		WithMaxRetryAttempts(c.MaxRetryAttempts),
		WithRetryDelay(c.RetryDelay),
		WithTimeout(c.Timeout),
	}
}

// NewFromConfig returns a Scope for cfg. Options in opts are applied after
// those derived from cfg and take precedence.
func NewFromConfig(cfg *Config, scope string, opts ...Option) *Scope {
	return New(cfg.AccessToken, cfg.Environment, scope, append(cfg.Options(), opts...)...)
}
