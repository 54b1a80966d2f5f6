// Package rollbar reports application errors and log events to Rollbar.
//
// Reports are posted to the Rollbar item API over HTTPS using
// [github.com/go-resty/resty/v2]. Each report carries a client-generated
// UUID that stays the same across retries, so Rollbar can recognise a
// retried report as the one it has already seen.
//
// # Basic Usage
//
//	reporter := rollbar.New("post-client-item-token", "production", "checkout",
//	    rollbar.WithCodeVersion("3f2a9c1"),
//	)
//
//	id, err := reporter.Error(ctx, "payment declined", map[string]any{
//	    "OrderID": "123",
//	})
//
// Use [Scope.Critical], [Scope.Error], [Scope.Warning], [Scope.Info] and
// [Scope.Debug] for everyday reporting. [Scope.Send] takes an explicit level
// and retry budget, and [Scope.SendAsync] runs a report on its own goroutine.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained; the
// final option set is validated before each send. [LoadConfig] reads the
// same settings from ROLLBAR_* environment variables.
//
// # Retry Behaviour
//
// [DefaultRetryPolicy] retries only on HTTP 429 (rate limit). Rate-limited
// reports are retried up to [DefaultMaxRetryAttempts] times with a fixed
// [DefaultRetryDelay] between attempts, which spans Rollbar's one-minute
// rate limit window. When the budget is spent a [*RateLimitError] is
// returned. Any other failure is returned after the first attempt, as
// [*HTTPError] for non-2xx responses or [*TransportError] when no response
// was received. Cancelling the context stops further retries.
//
// # Report Identifiers
//
// The UUID of a report is derived from its content and the current time in
// milliseconds (see [NewIdentifier]). It is a deduplication hint, not a
// secure random value.
//
// # Logging
//
// The package does not log on its own. Implement [RequestLogger], or wrap a
// zerolog logger with [NewZerologLogger], and supply it via
// [WithRequestLogger] to see retries and failures. [LogTransport] writes
// reports to a zerolog logger instead of sending them, which is useful
// during local development.
package rollbar
