package rollbar

import "time"

// Clock provides the current time for identifier seeding and the timer used
// between retries. Supply one via [WithClock] to make tests deterministic.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
