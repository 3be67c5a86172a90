package instant

import (
	"math"
	"time"
)

const (
	minDuration time.Duration = math.MinInt64
	maxDuration time.Duration = math.MaxInt64
)

// Sub returns the duration t-u. If the result exceeds the range of
// time.Duration, the maximum (or minimum) duration is returned.
//
// When both t and u carry monotonic readings, only those readings are
// used. Otherwise the wall clock readings are used.
func (t Instant) Sub(u Instant) time.Duration {
	if t.wall&u.wall&hasMonotonic != 0 {
		te, ue := t.ext, u.ext
		d := time.Duration(te - ue)
		if d < 0 && te > ue {
			return maxDuration // t - u is positive out of range
		}
		if d > 0 && te < ue {
			return minDuration // t - u is negative out of range
		}
		return d
	}

	d := time.Duration(t.sec()-u.sec())*time.Second + time.Duration(t.nsec()-u.nsec())
	switch {
	case u.Add(d).Equal(t):
		return d // d is correct
	case t.Before(u):
		return minDuration // t - u is negative out of range
	default:
		return maxDuration // t - u is positive out of range
	}
}
