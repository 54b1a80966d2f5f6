package rollbar

import (
	"context"
	"sync"
	"time"
)

type fakeClock struct {
	mu    sync.Mutex
	now   time.Time
	block bool
	waits []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.UnixMilli(1700000000123)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

// After records the requested delay and fires immediately, or never when the
// clock is blocking.
func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.waits = append(c.waits, d)

	if c.block {
		return nil
	}

	ch := make(chan time.Time, 1)
	ch <- c.now.Add(d)
	return ch
}

func (c *fakeClock) recordedWaits() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]time.Duration(nil), c.waits...)
}

// scriptedTransport fails the first failures attempts with err and succeeds
// afterwards. A negative failures value fails every attempt.
type scriptedTransport struct {
	mu       sync.Mutex
	failures int
	err      error
	bodies   [][]byte
	tokens   []string
	onPost   func(attempt int)
}

func (t *scriptedTransport) Post(_ context.Context, body []byte, token string) error {
	t.mu.Lock()
	t.bodies = append(t.bodies, body)
	t.tokens = append(t.tokens, token)
	attempt := len(t.bodies)
	onPost := t.onPost
	t.mu.Unlock()

	if onPost != nil {
		onPost(attempt)
	}

	if t.failures < 0 || attempt <= t.failures {
		return t.err
	}

	return nil
}

func (t *scriptedTransport) attempts() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.bodies)
}
