package schedule

// Interval is a half-open time range [Start, End) in minutes from
// midnight.  Confirmed reservations project onto intervals; these are
// the only intervals that mutually exclude each other.
type Interval struct {
    Start int
    End   int
}

// Duration returns End - Start in minutes.
func (iv Interval) Duration() int { return iv.End - iv.Start }

// Overlaps reports whether two half-open intervals share any minute.
// Equal-boundary adjacency (a.End == b.Start) is not an overlap.  This
// is the single overlap predicate used everywhere; no other tie-break
// exists.
func Overlaps(a, b Interval) bool {
    return max(a.Start, b.Start) < min(a.End, b.End)
}

// FindConflicts returns every confirmed interval that overlaps the
// candidate, preserving input order.  An empty result means the
// candidate may be granted.
func FindConflicts(candidate Interval, confirmed []Interval) []Interval {
    var out []Interval
    for _, iv := range confirmed {
        if Overlaps(candidate, iv) {
            out = append(out, iv)
        }
    }
    return out
}

// NextBookingAfter returns the confirmed interval with the smallest
// start strictly greater than the given point in time, if any.  It is
// used to cap an auto-suggested duration so a newly chosen start does
// not silently swallow a later confirmed booking.
func NextBookingAfter(point int, confirmed []Interval) (Interval, bool) {
    var next Interval
    found := false
    for _, iv := range confirmed {
        if iv.Start <= point {
            continue
        }
        if !found || iv.Start < next.Start {
            next = iv
            found = true
        }
    }
    return next, found
}
