package model

import "time"

// Status is the lifecycle state of a reservation.  It is a closed set:
// a reservation is created as StatusPending and an administrator moves
// it to exactly one of the two terminal states.  Using a named type
// instead of bare strings keeps the transition rules in one place.
type Status string

const (
    StatusPending   Status = "pending"   // awaiting an administrator decision
    StatusConfirmed Status = "confirmed" // approved; the slot is granted
    StatusCancelled Status = "cancelled" // rejected; the slot was never granted
)

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
    switch s {
    case StatusPending, StatusConfirmed, StatusCancelled:
        return true
    }
    return false
}

// Terminal reports whether s is a final state.  Confirmed and cancelled
// reservations never change again; history is retained indefinitely.
func (s Status) Terminal() bool {
    return s == StatusConfirmed || s == StatusCancelled
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle transition.  Only pending -> confirmed and
// pending -> cancelled exist; re-opening a decided reservation is not
// supported.
func (s Status) CanTransitionTo(next Status) bool {
    return s == StatusPending && (next == StatusConfirmed || next == StatusCancelled)
}

// Reservation is a dated, timed request to use a Space.  It is the
// central mutable entity of the system.
//
// Fields:
//  ID        – opaque unique identifier, generated at creation, never reused.
//  SpaceID   – reference to a Space in the catalog.
//  UserName  – free-text requester identity; compared case-insensitively
//              and whitespace-trimmed when classifying repeat requesters.
//  Purpose   – free-text description of the intended use, required non-empty.
//  Date      – calendar date in ISO YYYY-MM-DD form.
//  StartTime – clock time HH:MM, 24-hour.
//  EndTime   – clock time HH:MM, strictly after StartTime.
//  Status    – lifecycle state, see Status.
//  CreatedAt – creation timestamp, set once, used for newest-first ordering.
//  IsRead    – whether the requester has acknowledged the latest status
//              change.  Defaults to true on creation and is reset to false
//              whenever an administrator decides the reservation.
type Reservation struct {
    ID        string    `json:"id"`        // reservations.id
    SpaceID   string    `json:"spaceId"`   // reservations.space_id
    UserName  string    `json:"userName"`  // reservations.user_name
    Purpose   string    `json:"purpose"`   // reservations.purpose
    Date      string    `json:"date"`      // reservations.date (YYYY-MM-DD)
    StartTime string    `json:"startTime"` // reservations.start_time (HH:MM)
    EndTime   string    `json:"endTime"`   // reservations.end_time (HH:MM)
    Status    Status    `json:"status"`    // reservations.status
    CreatedAt time.Time `json:"createdAt"` // reservations.created_at
    IsRead    bool      `json:"isRead"`    // reservations.is_read
}
