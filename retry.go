package rollbar

import (
	"context"
	"errors"
	"fmt"
)

// sendWithRetry posts body until it is accepted, the retry policy rejects the
// failure, the budget is spent or ctx is done. Attempts are sequential and
// all carry the same payload, hence the same report UUID.
func (s *Scope) sendWithRetry(ctx context.Context, budget int, id string, body []byte) (string, error) {
	logger := s.options.requestLogger

	for attempt := 1; ; attempt++ {
		err := s.transport.Post(ctx, body, s.token)
		if err == nil {
			if attempt > 1 {
				logger.Debugf("report %s accepted after %d attempts", id, attempt)
			}

			return id, nil
		}

		if !s.options.retryPolicy(err) {
			logger.Errorf("report %s failed: %v", id, err)
			return "", err
		}

		if budget == 0 {
			logger.Errorf("report %s failed, retry budget spent after %d attempts: %v", id, attempt, err)

			var httpErr *HTTPError
			if IsRateLimited(err) && errors.As(err, &httpErr) {
				return "", &RateLimitError{Attempts: attempt, Err: httpErr}
			}

			return "", err
		}

		logger.Warnf("report %s attempt %d failed, retrying in %v (%d retries left): %v", id, attempt, s.options.retryDelay, budget, err)

		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("report %s abandoned after %d attempts: %w", id, attempt, err)
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("report %s abandoned after %d attempts: %w", id, attempt, ctx.Err())
		case <-s.options.clock.After(s.options.retryDelay):
		}

		budget--
	}
}
