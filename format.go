package instant

import (
	"strconv"
	"time"
)

// Unix returns t as Unix seconds.
func (t Instant) Unix() int64 {
	return t.sec() + internalToUnix
}

// UnixNano returns t as Unix nanoseconds. The result is undefined if it
// does not fit in an int64 (before 1678 or after 2262).
func (t Instant) UnixNano() int64 {
	return t.Unix()*1e9 + int64(t.nsec())
}

// Time converts the wall clock reading of t to a UTC time.Time, for display.
// The monotonic reading is not carried over.
func (t Instant) Time() time.Time {
	return time.Unix(t.Unix(), int64(t.nsec())).UTC()
}

// String formats t for diagnostics, like time.Time does:
//
//	2006-01-02 15:04:05.999999999 +0000 UTC m=+5.000000000
//
// The m= suffix appears only if t carries a monotonic reading.
func (t Instant) String() string {
	s := t.Time().String()
	if !t.hasMono() {
		return s
	}

	m := uint64(t.ext)
	sign := byte('+')
	if t.ext < 0 {
		sign = '-'
		m = -m
	}
	frac := strconv.FormatUint(m%1e9, 10)
	buf := make([]byte, 0, len(s)+32)
	buf = append(buf, s...)
	buf = append(buf, " m="...)
	buf = append(buf, sign)
	buf = strconv.AppendUint(buf, m/1e9, 10)
	buf = append(buf, '.')
	for range 9 - len(frac) {
		buf = append(buf, '0')
	}
	buf = append(buf, frac...)
	return string(buf)
}
