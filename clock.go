package instant

import (
	"sync"
	"time"

	"github.com/clipperhouse/ntime"
)

// Clock is a source of the current instant.
type Clock interface {
	Now() Instant
}

// SystemClock reads the operating system's wall and monotonic clocks.
//
// Monotonic readings are relative to a reference point captured on the
// clock's first read and never reset. Instants from different SystemClocks
// have unrelated monotonic readings and should not be compared.
//
// A SystemClock is safe for concurrent use. The zero value is ready to use.
type SystemClock struct {
	once sync.Once
	base ntime.Time
}

// NewSystemClock returns a SystemClock whose reference point is set on first read.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Read returns the wall clock as Unix seconds and nanoseconds, and the
// monotonic clock as nanoseconds since the clock's reference point.
func (c *SystemClock) Read() (sec int64, nsec int32, mono int64) {
	c.once.Do(func() {
		c.base = ntime.Now()
	})
	wall := time.Now()
	mono = int64(ntime.Now() - c.base)
	return wall.Unix(), int32(wall.Nanosecond()), mono
}

// Now returns the current instant, with a monotonic reading.
func (c *SystemClock) Now() Instant {
	return FromReading(c.Read())
}

var system = NewSystemClock()

// Now returns the current instant from the process-wide system clock.
func Now() Instant {
	return system.Now()
}

// Since returns the time elapsed since t. Shorthand for Now().Sub(t).
func Since(t Instant) time.Duration {
	return Now().Sub(t)
}

// Until returns the duration until t. Shorthand for t.Sub(Now()).
func Until(t Instant) time.Duration {
	return t.Sub(Now())
}
