// Package store defines the reservation system of record: the contract
// the scheduling service depends on, shared sentinel errors, and an
// in-memory implementation used for tests and for running without a
// database.  The MySQL-backed implementation lives in
// internal/repository and satisfies the same interface.
package store

import (
    "context"
    "errors"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
)

// ErrNotFound is returned when no reservation with the requested ID
// exists.  Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("reservation not found")

// ErrInvalidTransition is returned when SetStatus is called on a
// reservation that is not currently pending.  Handlers should translate
// this into an HTTP 409 response.
var ErrInvalidTransition = errors.New("reservation is not pending")

// ReservationStore is the system of record for reservation entities.
// Creation is append-only; deletion does not exist, history is retained
// indefinitely.  Implementations must be safe for concurrent use.
type ReservationStore interface {
    // Create appends a new reservation.  Missing ID and CreatedAt are
    // assigned, status is forced to pending and IsRead to true.  The
    // stored record is returned.
    Create(ctx context.Context, r *model.Reservation) (*model.Reservation, error)

    // GetByID returns the reservation with the given ID or ErrNotFound.
    GetByID(ctx context.Context, id string) (*model.Reservation, error)

    // ListBySpaceAndDate returns reservations for a space on a date in
    // insertion order.  A non-empty status narrows the result to that
    // lifecycle state.
    ListBySpaceAndDate(ctx context.Context, spaceID, date string, status model.Status) ([]model.Reservation, error)

    // ListByUser returns the requester's reservations, matched
    // case-insensitively on the trimmed user name.  A non-empty date
    // narrows the result to that day.
    ListByUser(ctx context.Context, userName, date string) ([]model.Reservation, error)

    // ListAll returns every reservation, newest first.
    ListAll(ctx context.Context) ([]model.Reservation, error)

    // ListByStatus returns reservations in the given state, newest first.
    ListByStatus(ctx context.Context, status model.Status) ([]model.Reservation, error)

    // SetStatus transitions a pending reservation to the given terminal
    // state and resets IsRead to false as a side effect.  It returns
    // ErrNotFound for unknown IDs and ErrInvalidTransition when the
    // reservation has already been decided.
    SetStatus(ctx context.Context, id string, next model.Status) (*model.Reservation, error)

    // MarkRead records that the requester has seen the latest status
    // change.  Unknown IDs return ErrNotFound.
    MarkRead(ctx context.Context, id string) error
}

// AnnouncementStore records admin-posted notices, newest first.
type AnnouncementStore interface {
    Create(ctx context.Context, a *model.Announcement) (*model.Announcement, error)
    List(ctx context.Context) ([]model.Announcement, error)
}

// SettingsStore persists the member-facing notification preferences.
// Get returns defaults when nothing has been saved yet.
type SettingsStore interface {
    Get(ctx context.Context) (model.UserSettings, error)
    Save(ctx context.Context, s model.UserSettings) error
}
