package interfaces

import "time"

// IClock supplies the wall clock to the workflows. Injected so tests can pin
// entry and exit timestamps instead of reading the system clock ad hoc.
type IClock interface {
	Now() time.Time
}

// SystemClock is the production IClock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }
