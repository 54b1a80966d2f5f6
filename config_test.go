package rollbar

import (
	"context"
	"strings"
	"testing"
	"time"
)

// These tests use t.Setenv and therefore can't run in parallel.

func TestLoadConfig(t *testing.T) {
	t.Setenv("RBTEST_ACCESS_TOKEN", "abc")
	t.Setenv("RBTEST_ENVIRONMENT", "production")
	t.Setenv("RBTEST_CODE_VERSION", "3f2a9c1")
	t.Setenv("RBTEST_MAX_RETRY_ATTEMPTS", "5")
	t.Setenv("RBTEST_RETRY_DELAY", "250ms")

	cfg, err := LoadConfig("RBTEST_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AccessToken != "abc" {
		t.Errorf("expected AccessToken=abc, got %s", cfg.AccessToken)
	}

	if cfg.Environment != "production" {
		t.Errorf("expected Environment=production, got %s", cfg.Environment)
	}

	if cfg.CodeVersion != "3f2a9c1" {
		t.Errorf("expected CodeVersion=3f2a9c1, got %s", cfg.CodeVersion)
	}

	if cfg.MaxRetryAttempts != 5 {
		t.Errorf("expected MaxRetryAttempts=5, got %d", cfg.MaxRetryAttempts)
	}

	if cfg.RetryDelay != 250*time.Millisecond {
		t.Errorf("expected RetryDelay=250ms, got %v", cfg.RetryDelay)
	}

	if cfg.Endpoint != DefaultEndpoint {
		t.Errorf("expected default endpoint, got %s", cfg.Endpoint)
	}

	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", cfg.Timeout)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("RBDEFAULTS_ACCESS_TOKEN", "abc")
	t.Setenv("RBDEFAULTS_ENVIRONMENT", "test")

	cfg, err := LoadConfig("RBDEFAULTS_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MaxRetryAttempts != DefaultMaxRetryAttempts {
		t.Errorf("expected MaxRetryAttempts=%d, got %d", DefaultMaxRetryAttempts, cfg.MaxRetryAttempts)
	}

	if cfg.RetryDelay != DefaultRetryDelay {
		t.Errorf("expected RetryDelay=%v, got %v", DefaultRetryDelay, cfg.RetryDelay)
	}
}

func TestLoadConfig_MissingToken(t *testing.T) {
	t.Setenv("RBMISSING_ENVIRONMENT", "test")

	_, err := LoadConfig("RBMISSING_")

	if err == nil {
		t.Fatal("expected error for missing access token")
	}

	if !strings.Contains(err.Error(), "invalid config") {
		t.Errorf("expected error to contain 'invalid config', got: %v", err)
	}
}

func TestLoadConfig_InvalidEndpoint(t *testing.T) {
	t.Setenv("RBENDPOINT_ACCESS_TOKEN", "abc")
	t.Setenv("RBENDPOINT_ENVIRONMENT", "test")
	t.Setenv("RBENDPOINT_ENDPOINT", "not a url")

	if _, err := LoadConfig("RBENDPOINT_"); err == nil {
		t.Fatal("expected error for invalid endpoint")
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name      string
		key       string
		value     string
		wantError string
	}{
		{"non-numeric retry attempts", "MAX_RETRY_ATTEMPTS", "many", "could not unmarshal config"},
		{"unparsable retry delay", "RETRY_DELAY", "soon", "could not unmarshal config"},
		{"retry delay above one minute", "RETRY_DELAY", "2m", "invalid config"},
		{"negative retry delay", "RETRY_DELAY", "-1s", "invalid config"},
		{"negative timeout", "TIMEOUT", "-5s", "invalid config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RBINVALID_ACCESS_TOKEN", "abc")
			t.Setenv("RBINVALID_ENVIRONMENT", "test")
			t.Setenv("RBINVALID_"+tt.key, tt.value)

			_, err := LoadConfig("RBINVALID_")

			if err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}

			if !strings.Contains(err.Error(), tt.wantError) {
				t.Errorf("expected error to contain %q, got: %v", tt.wantError, err)
			}
		})
	}
}

func TestNewFromConfig_RetryDelayAboveMaximum(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		AccessToken: "abc",
		Environment: "test",
		RetryDelay:  2 * time.Minute,
		Timeout:     DefaultTimeout,
	}

	transport := &scriptedTransport{}
	scope := NewFromConfig(cfg, "Example", WithTransport(transport), WithClock(newFakeClock()))

	if scope.options.retryDelay != DefaultRetryDelay {
		t.Errorf("expected retryDelay=%v, got %v", DefaultRetryDelay, scope.options.retryDelay)
	}

	if _, err := scope.Info(context.Background(), "still sent", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if transport.attempts() != 1 {
		t.Errorf("expected 1 attempt, got %d", transport.attempts())
	}
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()

	cfg := &Config{
		AccessToken:      "abc",
		Environment:      "production",
		CodeVersion:      "3f2a9c1",
		Endpoint:         "https://proxy.example.com/item/",
		MaxRetryAttempts: 3,
		RetryDelay:       2 * time.Second,
		Timeout:          5 * time.Second,
	}

	scope := NewFromConfig(cfg, "Checkout", WithMaxRetryAttempts(7))

	if scope.token != "abc" || scope.environment != "production" || scope.scope != "Checkout" {
		t.Errorf("unexpected scope fields: %+v", scope)
	}

	if scope.options.codeVersion != "3f2a9c1" {
		t.Errorf("expected codeVersion=3f2a9c1, got %s", scope.options.codeVersion)
	}

	if scope.options.endpoint != "https://proxy.example.com/item/" {
		t.Errorf("expected endpoint from config, got %s", scope.options.endpoint)
	}

	if scope.options.maxRetryAttempts != 7 {
		t.Errorf("expected explicit option to win, got maxRetryAttempts=%d", scope.options.maxRetryAttempts)
	}

	if scope.options.retryDelay != 2*time.Second {
		t.Errorf("expected retryDelay=2s, got %v", scope.options.retryDelay)
	}

	if scope.options.timeout != 5*time.Second {
		t.Errorf("expected timeout=5s, got %v", scope.options.timeout)
	}
}
