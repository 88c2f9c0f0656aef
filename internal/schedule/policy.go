package schedule

import (
    "strings"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
)

// Duration rule variants.  Under the cap rule repeat requesters may
// book any length up to RepeatMaxMinutes; under the exact rule they
// must book exactly RepeatMaxMinutes, forcing multi-session stacking
// into discrete one-hour increments.
const (
    DurationRuleCap   = "cap"
    DurationRuleExact = "exact"
)

// Repeat-classification scopes.  ScopeDay counts any non-cancelled
// reservation by the requester on the date, regardless of space;
// ScopeSpace narrows the check to the candidate's space.
const (
    RepeatScopeDay   = "day"
    RepeatScopeSpace = "space"
)

const (
    // FirstTimeMaxMinutes bounds a requester's first session of the day.
    FirstTimeMaxMinutes = 120
    // RepeatMaxMinutes bounds each additional session of the same day.
    RepeatMaxMinutes = 60
    // MinSessionMinutes is the shortest session the auto-suggestion is
    // willing to propose; a clamped suggestion below this is rejected.
    MinSessionMinutes = 60
)

// Policy evaluates booking candidates against the venue's rules.  It is
// stateless: requester history and the confirmed interval set are
// passed in by the caller, which reads them from the reservation store.
type Policy struct {
    Grid         Grid
    DurationRule string // DurationRuleCap or DurationRuleExact
    RepeatScope  string // RepeatScopeDay or RepeatScopeSpace
}

// Candidate is a proposed reservation prior to validation.  All fields
// arrive as strings from the transport layer.
type Candidate struct {
    SpaceID   string
    UserName  string
    Purpose   string
    Date      string
    StartTime string
    EndTime   string
}

// normalizeName lower-cases and trims a requester identity for
// comparison.  Matching is deliberately loose: "Kim " and "kim" are the
// same requester.
func normalizeName(s string) string {
    return strings.ToLower(strings.TrimSpace(s))
}

// IsRepeat classifies the requester for the candidate's date.  A
// requester is "repeat" when any non-cancelled reservation under the
// same (normalized) name already exists within the policy's scope.
// history should contain the requester's reservations for the date, as
// returned by the store; cancelled entries are skipped here so callers
// need not pre-filter.
func (p *Policy) IsRepeat(cand Candidate, history []model.Reservation) bool {
    name := normalizeName(cand.UserName)
    for _, r := range history {
        if r.Status == model.StatusCancelled {
            continue
        }
        if r.Date != cand.Date {
            continue
        }
        if normalizeName(r.UserName) != name {
            continue
        }
        if p.RepeatScope == RepeatScopeSpace && r.SpaceID != cand.SpaceID {
            continue
        }
        return true
    }
    return false
}

// Validate runs the ordered policy checks against a candidate and
// returns nil when the candidate may be created.  The checks run in a
// fixed order and the first failure wins:
//
//  1. requester identity non-empty
//  2. purpose non-empty
//  3. end strictly after start
//  4. duration satisfies the duration rule for the classification
//  5. no overlap against the confirmed interval set
//
// Malformed time strings surface as FormatError; every policy failure
// is a ValidationError carrying a display-ready reason.
func (p *Policy) Validate(cand Candidate, isRepeat bool, confirmed []Interval) error {
    if strings.TrimSpace(cand.UserName) == "" {
        return &ValidationError{Reason: "requester name is required"}
    }
    if strings.TrimSpace(cand.Purpose) == "" {
        return &ValidationError{Reason: "purpose is required"}
    }
    start, err := ToMinutes(cand.StartTime)
    if err != nil {
        return err
    }
    end, err := ToMinutes(cand.EndTime)
    if err != nil {
        return err
    }
    if end <= start {
        return &ValidationError{Reason: "end time must be after start time"}
    }
    duration := end - start
    if isRepeat {
        switch p.DurationRule {
        case DurationRuleExact:
            if duration != RepeatMaxMinutes {
                return &ValidationError{Reason: "additional bookings must be exactly 60 minutes"}
            }
        default: // cap
            if duration > RepeatMaxMinutes {
                return &ValidationError{Reason: "additional bookings may be at most 60 minutes"}
            }
        }
    } else if duration > FirstTimeMaxMinutes {
        return &ValidationError{Reason: "first bookings may be at most 120 minutes"}
    }
    if len(FindConflicts(Interval{Start: start, End: end}, confirmed)) > 0 {
        return &ValidationError{Reason: "the requested time overlaps an existing confirmed reservation"}
    }
    return nil
}

// DefaultDuration returns the auto-suggested session length for the
// classification: one hour for repeat requesters, two for first-timers.
func (p *Policy) DefaultDuration(isRepeat bool) int {
    if isRepeat {
        return RepeatMaxMinutes
    }
    return FirstTimeMaxMinutes
}

// SuggestEnd proposes an end time for a session starting at start
// minutes.  The default duration for the classification is clamped to
// the close of the bookable window and to the start of the next
// confirmed booking after start.  When clamping would shrink the
// session below MinSessionMinutes the suggestion is rejected with a
// ValidationError so the caller can prompt for a different start.
func (p *Policy) SuggestEnd(start int, isRepeat bool, confirmed []Interval) (int, error) {
    end := start + p.DefaultDuration(isRepeat)
    if end > p.Grid.Close {
        end = p.Grid.Close
    }
    if next, ok := NextBookingAfter(start, confirmed); ok && end > next.Start {
        end = next.Start
    }
    if end-start < MinSessionMinutes {
        return 0, &ValidationError{Reason: "not enough free time at this start, choose a different slot"}
    }
    return end, nil
}
