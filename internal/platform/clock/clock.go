package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports local wall-clock time. Activity scheduling runs on a
// single civil local-time convention, so the clock is not normalized to UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
