// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationDecidedEvent is published when an administrator approves
// or rejects a reservation.  It carries enough information for
// downstream consumers to log or notify without querying the primary
// store.
type ReservationDecidedEvent struct {
    ReservationID string `json:"reservation_id"`
    SpaceID       string `json:"space_id"`
    SpaceName     string `json:"space_name"`
    UserName      string `json:"user_name"`
    Date          string `json:"date"`
    StartTime     string `json:"start_time"`
    EndTime       string `json:"end_time"`
    Status        string `json:"status"` // confirmed or cancelled
    DecidedAt     string `json:"decided_at"`
}
