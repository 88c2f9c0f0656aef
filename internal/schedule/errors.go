// Package schedule implements the reservation scheduling core: the
// time grid of a bookable day, interval conflict resolution, and the
// booking policy that bounds how long a requester may book.  Everything
// in this package is a pure function of its inputs; reading existing
// reservations from storage is the caller's responsibility.
package schedule

import "fmt"

// FormatError reports a malformed time or date string.  The offending
// input is retained so handlers can show it back to the user.
type FormatError struct {
    Input string
}

func (e *FormatError) Error() string {
    return fmt.Sprintf("malformed time %q, expected HH:MM", e.Input)
}

// ValidationError reports the first booking-policy check a candidate
// reservation failed.  Reason is a human-readable sentence suitable for
// direct display; checks are never aggregated, so a ValidationError
// always corresponds to exactly one failed rule.
type ValidationError struct {
    Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
