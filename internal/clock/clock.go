package clock

import (
	"time"

	bclock "github.com/benbjohnson/clock"
)

// Clock is the time source used by anything that schedules deferred work.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) *bclock.Timer
}

// New returns a Clock backed by the time package.
func New() Clock {
	return bclock.New()
}

// NewMock returns a clock frozen at start. It moves only on Add or Set, and
// timers that become due run their functions on a new goroutine.
func NewMock(start time.Time) *bclock.Mock {
	m := bclock.NewMock()
	m.Set(start)
	return m
}
