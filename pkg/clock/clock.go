package clock

import "time"

// Clock supplies the current time. The availability engine reads it once per
// query so tests can pin "now" and get deterministic slot lists.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Real returns a clock backed by the system time.
func Real() Clock { return realClock{} }

// Fixed returns a clock frozen at t.
func Fixed(t time.Time) Clock { return fixedClock{t} }

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }
