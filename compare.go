package instant

// Before reports whether t is before u.
//
// If both carry monotonic readings, only those are compared. Mixing a
// monotonic and a wall-only Instant compares wall clock readings, which
// are subject to clock adjustment.
func (t Instant) Before(u Instant) bool {
	if t.wall&u.wall&hasMonotonic != 0 {
		return t.ext < u.ext
	}
	ts, us := t.sec(), u.sec()
	return ts < us || ts == us && t.nsec() < u.nsec()
}

// After reports whether t is after u, by the same rule as [Instant.Before].
func (t Instant) After(u Instant) bool {
	return u.Before(t)
}

// Equal reports whether t and u represent the same instant, by the same
// rule as [Instant.Before].
func (t Instant) Equal(u Instant) bool {
	if t.wall&u.wall&hasMonotonic != 0 {
		return t.ext == u.ext
	}
	return t.sec() == u.sec() && t.nsec() == u.nsec()
}

// Compare returns -1 if t is before u, +1 if t is after u, and 0 if they
// are equal.
func (t Instant) Compare(u Instant) int {
	switch {
	case t.Before(u):
		return -1
	case u.Before(t):
		return +1
	default:
		return 0
	}
}
