package rollbar

// DefaultRetryPolicy is the retry condition used by [Scope]. It retries only
// on HTTP 429 (rate limit). Transport errors and every other status code are
// returned to the caller after a single attempt.
//
// Supply a custom function via [WithRetryPolicy] to override this behaviour.
// The retry budget and delay apply to whatever the policy accepts.
func DefaultRetryPolicy(err error) bool {
	return IsRateLimited(err)
}
