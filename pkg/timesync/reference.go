package timesync

import "time"

// Reference is the authoritative time value the clock display advances
// from. It is established once at startup and then advanced locally by
// exactly one second per tick; it is never re-fetched.
//
// A Reference is owned by a single goroutine (the display driver) and is
// not safe for concurrent mutation.
type Reference struct {
	now time.Time
}

// NewReference creates a reference starting at the given instant.
func NewReference(t time.Time) *Reference {
	return &Reference{now: t}
}

// Advance moves the reference forward by one second and returns the new
// value. Rollover across minute, hour and day boundaries follows standard
// calendar arithmetic.
func (r *Reference) Advance() time.Time {
	r.now = r.now.Add(time.Second)
	return r.now
}

// Time returns the current reference value.
func (r *Reference) Time() time.Time {
	return r.now
}

// DateString formats the reference as a human-readable date, e.g.
// "Sun Aug 30 2026".
func (r *Reference) DateString() string {
	return r.now.Format("Mon Jan 2 2006")
}
