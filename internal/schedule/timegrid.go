package schedule

import (
    "fmt"
    "strconv"
    "strings"
)

const minutesPerDay = 24 * 60

// ToMinutes converts a clock time string ("H:MM" or "HH:MM", 24-hour)
// to its minute offset from midnight.  An empty string converts to 0;
// callers holding optional time fields rely on that degenerate case.
// Any other unparseable input returns a FormatError.
func ToMinutes(s string) (int, error) {
    if s == "" {
        return 0, nil
    }
    hh, mm, ok := strings.Cut(s, ":")
    if !ok {
        return 0, &FormatError{Input: s}
    }
    h, err := strconv.Atoi(hh)
    if err != nil || h < 0 || h > 23 {
        return 0, &FormatError{Input: s}
    }
    m, err := strconv.Atoi(mm)
    if err != nil || len(mm) != 2 || m < 0 || m > 59 {
        return 0, &FormatError{Input: s}
    }
    return h*60 + m, nil
}

// ToTime is the inverse of ToMinutes.  It always produces a zero-padded
// HH:MM string; the offset is taken modulo one day so values past
// midnight wrap rather than producing hour 24 and beyond.  ToTime does
// not clamp to the bookable window — callers clamp.
func ToTime(minutes int) string {
    m := minutes % minutesPerDay
    if m < 0 {
        m += minutesPerDay
    }
    return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Grid describes the bookable window of a day: reservations may occupy
// [Open, Close) where both bounds are minute offsets from midnight.
// SlotMinutes is the step used when enumerating selectable slot starts
// for display; the conflict and validation logic itself works at
// arbitrary minute granularity.
type Grid struct {
    Open        int // first bookable minute, inclusive
    Close       int // first minute past the window, exclusive
    SlotMinutes int
}

// Slots returns the slot start times across the window, stepped at
// SlotMinutes, formatted HH:MM.  A venue open 09:00–22:00 with
// 30-minute slots yields 09:00, 09:30, ..., 21:30.
func (g Grid) Slots() []string {
    if g.SlotMinutes <= 0 || g.Close <= g.Open {
        return nil
    }
    out := make([]string, 0, (g.Close-g.Open)/g.SlotMinutes)
    for m := g.Open; m < g.Close; m += g.SlotMinutes {
        out = append(out, ToTime(m))
    }
    return out
}

// Contains reports whether the half-open interval [start, end) lies
// entirely inside the bookable window.
func (g Grid) Contains(start, end int) bool {
    return start >= g.Open && end <= g.Close
}
