package instant

import "time"

// addSec adds d seconds to t.
//
// A monotonic Instant keeps its reading while the packed seconds stay in
// range; the monotonic reading itself is not touched here. Once the packed
// field would overflow, the reading is stripped and d is added to the full
// seconds in ext. That addition is unchecked and wraps at the int64
// bounds, which keeps the verification step in Sub consistent with Add.
func (t *Instant) addSec(d int64) {
	if t.hasMono() {
		sec := t.packedSec() + d
		if 0 <= sec && sec <= maxPackedSec {
			t.setPackedSec(sec)
			return
		}
		// Wall second now out of range for packed field.
		t.stripMono()
	}

	t.ext += d
}

// Add returns t+d.
//
// If t carries a monotonic reading, d is applied to it as well. A monotonic
// reading that would overflow is dropped rather than wrapped, as is one
// whose wall seconds leave the packed range.
func (t Instant) Add(d time.Duration) Instant {
	dsec := int64(d / 1e9)
	nsec := t.nsec() + int32(d%1e9)
	if nsec >= 1e9 {
		dsec++
		nsec -= 1e9
	} else if nsec < 0 {
		dsec--
		nsec += 1e9
	}
	t.setNsec(nsec)
	t.addSec(dsec)
	if t.hasMono() {
		te := t.ext + int64(d)
		if d < 0 && te > t.ext || d > 0 && te < t.ext {
			// Monotonic reading now out of range; degrade to wall-only.
			t.stripMono()
		} else {
			t.ext = te
		}
	}
	return t
}
