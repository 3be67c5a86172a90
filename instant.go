// Package instant provides a compact instant in time that carries both a
// wall clock reading and, optionally, a monotonic clock reading, packed
// into two 64-bit words.
//
// Comparisons and differences use the monotonic reading when both operands
// carry one, so they are immune to wall clock adjustments. When the packed
// wall seconds or the monotonic reading would overflow, the monotonic
// reading is dropped and the instant degrades to wall-only form. Degradation
// is silent and irreversible.
package instant

const (
	secondsPerDay = 24 * 60 * 60

	// seconds from Jan 1 year 1 to Jan 1 1970
	unixToInternal int64 = (1969*365 + 1969/4 - 1969/100 + 1969/400) * secondsPerDay
	internalToUnix int64 = -unixToInternal

	// seconds from Jan 1 year 1 to Jan 1 1885, the base of the packed field
	wallToInternal int64 = (1884*365 + 1884/4 - 1884/100 + 1884/400) * secondsPerDay
)

const (
	hasMonotonic = 1 << 63
	maxWall      = wallToInternal + (1<<33 - 1) // year 2157
	minWall      = wallToInternal               // year 1885
	nsecMask     = 1<<30 - 1
	nsecShift    = 30

	maxPackedSec = 1<<33 - 1
)

// Instant is a point in time with nanosecond precision.
//
// The wall word holds a has-monotonic flag in bit 63, then 33 bits of
// seconds since Jan 1 1885 in bits 30-62, then nanoseconds in bits 0-29.
// When the flag is set, ext holds a monotonic reading in nanoseconds since
// the reading clock's reference point. When the flag is clear, bits 30-62
// are zero and ext holds signed seconds since Jan 1 year 1.
//
// Instant is a value type. Methods take and return copies.
type Instant struct {
	wall uint64
	ext  int64
}

// FromReading builds an Instant from a clock reading: Unix seconds and
// nanoseconds of the wall clock, and a monotonic nanosecond count. If the
// wall seconds fall outside the packed range (years 1885 to 2157), the
// monotonic reading is discarded and a wall-only Instant is returned.
func FromReading(sec int64, nsec int32, mono int64) Instant {
	if nsec < 0 || nsec >= 1e9 {
		var n int64
		sec, n = norm(sec, int64(nsec))
		nsec = int32(n)
	}
	sec += unixToInternal - minWall
	if uint64(sec)>>33 != 0 {
		return Instant{wall: uint64(nsec), ext: sec + minWall}
	}
	return Instant{wall: hasMonotonic | uint64(sec)<<nsecShift | uint64(nsec), ext: mono}
}

// Unix returns the wall-only Instant for the given Unix seconds and
// nanoseconds. nsec outside [0, 999999999] is normalized into sec.
func Unix(sec int64, nsec int64) Instant {
	if nsec < 0 || nsec >= 1e9 {
		sec, nsec = norm(sec, nsec)
	}
	return Instant{wall: uint64(nsec), ext: sec + unixToInternal}
}

// norm carries whole seconds out of nsec so that 0 <= nsec < 1e9.
func norm(sec, nsec int64) (int64, int64) {
	sec += nsec / 1e9
	nsec %= 1e9
	if nsec < 0 {
		sec--
		nsec += 1e9
	}
	return sec, nsec
}

// Codec helpers. All bit manipulation of the wall word happens here.

func (t Instant) hasMono() bool {
	return t.wall&hasMonotonic != 0
}

func (t Instant) nsec() int32 {
	return int32(t.wall & nsecMask)
}

// packedSec returns the 33-bit seconds field; only meaningful with the flag set.
func (t Instant) packedSec() int64 {
	return int64(t.wall << 1 >> (nsecShift + 1))
}

// sec returns seconds since Jan 1 year 1.
func (t Instant) sec() int64 {
	if t.hasMono() {
		return wallToInternal + t.packedSec()
	}
	return t.ext
}

func (t Instant) mono() int64 {
	if !t.hasMono() {
		return 0
	}
	return t.ext
}

func (t *Instant) setNsec(nsec int32) {
	t.wall = t.wall&^nsecMask | uint64(nsec)
}

// setPackedSec stores sec in the packed field; sec must be in [0, maxPackedSec].
func (t *Instant) setPackedSec(sec int64) {
	t.wall = t.wall&nsecMask | uint64(sec)<<nsecShift | hasMonotonic
}

func (t *Instant) stripMono() {
	if t.hasMono() {
		t.ext = t.sec()
		t.wall &= nsecMask
	}
}

// Nanosecond returns the nanosecond offset within the second, in [0, 999999999].
func (t Instant) Nanosecond() int {
	return int(t.nsec())
}

// Seconds returns the wall clock seconds since Jan 1 year 1 UTC.
func (t Instant) Seconds() int64 {
	return t.sec()
}

// Monotonic returns the monotonic reading in nanoseconds, or 0 if t has none.
func (t Instant) Monotonic() int64 {
	return t.mono()
}

// HasMonotonic reports whether t carries a monotonic reading.
func (t Instant) HasMonotonic() bool {
	return t.hasMono()
}

// StripMonotonic returns t without its monotonic reading. The wall clock
// reading is unchanged. Stripping a wall-only Instant returns it as is.
func (t Instant) StripMonotonic() Instant {
	t.stripMono()
	return t
}
