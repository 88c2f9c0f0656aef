package service

import (
    "context"
    "errors"
    "fmt"
    "log"
    "sync"
    "time"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/queue"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/schedule"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/store"
)

// ErrSpaceNotFound is returned when a reservation references a space
// that is not in the catalog.  Handlers should translate this into an
// HTTP 404 response.
var ErrSpaceNotFound = errors.New("space not found")

// Publisher emits a decision event after an administrator approves or
// rejects a reservation.  Publishing is best-effort; failures are
// logged and never surfaced to the admin.
type Publisher func(ctx context.Context, event queue.ReservationDecidedEvent) error

// Booking orchestrates the scheduling core against the reservation
// store.  Create and the approve path serialize per (space, date) so
// at most one confirmed transition commits without seeing the latest
// confirmed interval set.
type Booking struct {
    store   store.ReservationStore
    catalog *model.Catalog
    policy  *schedule.Policy

    // recheckOnConfirm re-validates overlap against the live confirmed
    // set when approving.  Disabling it restores creation-time-only
    // checking, under which two overlapping pending requests can both
    // be approved.
    recheckOnConfirm bool

    publish Publisher

    mu    sync.Mutex
    locks map[string]*sync.Mutex // (spaceID, date) -> serialization lock
}

// NewBooking wires a booking service.  publish may be nil when no
// broker is configured.
func NewBooking(st store.ReservationStore, catalog *model.Catalog, policy *schedule.Policy, recheckOnConfirm bool, publish Publisher) *Booking {
    return &Booking{
        store:            st,
        catalog:          catalog,
        policy:           policy,
        recheckOnConfirm: recheckOnConfirm,
        publish:          publish,
        locks:            make(map[string]*sync.Mutex),
    }
}

// lockFor returns the serialization mutex for a space+date pair,
// creating it on first use.  Locks are never removed; the key space is
// bounded by the catalog size times the dates in active use.
func (b *Booking) lockFor(spaceID, date string) *sync.Mutex {
    b.mu.Lock()
    defer b.mu.Unlock()
    key := spaceID + "|" + date
    l, ok := b.locks[key]
    if !ok {
        l = &sync.Mutex{}
        b.locks[key] = l
    }
    return l
}

// confirmedIntervals loads the confirmed reservations for a space+date
// and projects them onto minute intervals.  Rows with unparseable times
// cannot exist through the validated create path; if one appears it is
// reported rather than silently skipped.
func (b *Booking) confirmedIntervals(ctx context.Context, spaceID, date string) ([]schedule.Interval, error) {
    confirmed, err := b.store.ListBySpaceAndDate(ctx, spaceID, date, model.StatusConfirmed)
    if err != nil {
        return nil, err
    }
    out := make([]schedule.Interval, 0, len(confirmed))
    for _, r := range confirmed {
        start, err := schedule.ToMinutes(r.StartTime)
        if err != nil {
            return nil, fmt.Errorf("reservation %s: %w", r.ID, err)
        }
        end, err := schedule.ToMinutes(r.EndTime)
        if err != nil {
            return nil, fmt.Errorf("reservation %s: %w", r.ID, err)
        }
        out = append(out, schedule.Interval{Start: start, End: end})
    }
    return out, nil
}

// Create validates a candidate against the booking policy and appends
// it as a pending reservation.  A failed validation leaves the store
// unchanged.  The create path holds the space+date lock across the
// read-validate-append sequence so two racing candidates see each
// other's effect on the confirmed set.
func (b *Booking) Create(ctx context.Context, cand schedule.Candidate) (*model.Reservation, error) {
    if _, ok := b.catalog.Get(cand.SpaceID); !ok {
        return nil, ErrSpaceNotFound
    }

    l := b.lockFor(cand.SpaceID, cand.Date)
    l.Lock()
    defer l.Unlock()

    history, err := b.store.ListByUser(ctx, cand.UserName, cand.Date)
    if err != nil {
        return nil, err
    }
    isRepeat := b.policy.IsRepeat(cand, history)

    confirmed, err := b.confirmedIntervals(ctx, cand.SpaceID, cand.Date)
    if err != nil {
        return nil, err
    }
    if err := b.policy.Validate(cand, isRepeat, confirmed); err != nil {
        return nil, err
    }

    return b.store.Create(ctx, &model.Reservation{
        SpaceID:   cand.SpaceID,
        UserName:  cand.UserName,
        Purpose:   cand.Purpose,
        Date:      cand.Date,
        StartTime: cand.StartTime,
        EndTime:   cand.EndTime,
    })
}

// Approve transitions a pending reservation to confirmed.  When
// recheckOnConfirm is enabled the candidate is re-validated against the
// confirmed set as it exists now, not as it existed at creation time,
// closing the window in which two overlapping pending requests could
// both be granted.
func (b *Booking) Approve(ctx context.Context, id string) (*model.Reservation, error) {
    res, err := b.store.GetByID(ctx, id)
    if err != nil {
        return nil, err
    }

    l := b.lockFor(res.SpaceID, res.Date)
    l.Lock()
    defer l.Unlock()

    if b.recheckOnConfirm {
        confirmed, err := b.confirmedIntervals(ctx, res.SpaceID, res.Date)
        if err != nil {
            return nil, err
        }
        start, err := schedule.ToMinutes(res.StartTime)
        if err != nil {
            return nil, err
        }
        end, err := schedule.ToMinutes(res.EndTime)
        if err != nil {
            return nil, err
        }
        if len(schedule.FindConflicts(schedule.Interval{Start: start, End: end}, confirmed)) > 0 {
            return nil, &schedule.ValidationError{Reason: "the requested time now overlaps a confirmed reservation"}
        }
    }

    updated, err := b.store.SetStatus(ctx, id, model.StatusConfirmed)
    if err != nil {
        return nil, err
    }
    b.publishDecision(ctx, updated)
    return updated, nil
}

// Reject transitions a pending reservation to cancelled.
func (b *Booking) Reject(ctx context.Context, id string) (*model.Reservation, error) {
    updated, err := b.store.SetStatus(ctx, id, model.StatusCancelled)
    if err != nil {
        return nil, err
    }
    b.publishDecision(ctx, updated)
    return updated, nil
}

func (b *Booking) publishDecision(ctx context.Context, r *model.Reservation) {
    if b.publish == nil {
        return
    }
    spaceName := r.SpaceID
    if sp, ok := b.catalog.Get(r.SpaceID); ok {
        spaceName = sp.Name
    }
    ev := queue.ReservationDecidedEvent{
        ReservationID: r.ID,
        SpaceID:       r.SpaceID,
        SpaceName:     spaceName,
        UserName:      r.UserName,
        Date:          r.Date,
        StartTime:     r.StartTime,
        EndTime:       r.EndTime,
        Status:        string(r.Status),
        DecidedAt:     time.Now().UTC().Format(time.RFC3339),
    }
    if err := b.publish(ctx, ev); err != nil {
        log.Printf("booking: publish decision event failed: %v", err)
    }
}

// Slot is one selectable slot start with its booked flag, for the
// member-facing time picker.
type Slot struct {
    Time   string `json:"time"`
    Booked bool   `json:"booked"`
}

// FreeRange is a maximal free interval within the bookable window.
type FreeRange struct {
    StartTime string `json:"startTime"`
    EndTime   string `json:"endTime"`
}

// Availability describes a space's day: the slot map for the picker
// and the maximal free ranges derived from the confirmed set.
type Availability struct {
    SpaceID string      `json:"spaceId"`
    Date    string      `json:"date"`
    Slots   []Slot      `json:"slots"`
    Free    []FreeRange `json:"free"`
}

// Availability computes the free/booked structure of a space's day
// from its confirmed reservations.
func (b *Booking) Availability(ctx context.Context, spaceID, date string) (*Availability, error) {
    if _, ok := b.catalog.Get(spaceID); !ok {
        return nil, ErrSpaceNotFound
    }
    confirmed, err := b.confirmedIntervals(ctx, spaceID, date)
    if err != nil {
        return nil, err
    }

    grid := b.policy.Grid
    av := &Availability{SpaceID: spaceID, Date: date, Slots: []Slot{}, Free: []FreeRange{}}

    for _, t := range grid.Slots() {
        m, err := schedule.ToMinutes(t)
        if err != nil {
            return nil, err
        }
        slot := schedule.Interval{Start: m, End: m + grid.SlotMinutes}
        av.Slots = append(av.Slots, Slot{
            Time:   t,
            Booked: len(schedule.FindConflicts(slot, confirmed)) > 0,
        })
    }

    // Walk the window collecting maximal runs of free minutes at slot
    // granularity.
    runStart := -1
    for m := grid.Open; m <= grid.Close; m += grid.SlotMinutes {
        free := m < grid.Close &&
            len(schedule.FindConflicts(schedule.Interval{Start: m, End: m + grid.SlotMinutes}, confirmed)) == 0
        switch {
        case free && runStart < 0:
            runStart = m
        case !free && runStart >= 0:
            av.Free = append(av.Free, FreeRange{
                StartTime: schedule.ToTime(runStart),
                EndTime:   schedule.ToTime(m),
            })
            runStart = -1
        }
    }
    return av, nil
}

// SuggestEnd proposes an end time for a session starting at startTime,
// classifying the requester and clamping per the policy.  The empty
// suggestion error is a ValidationError telling the member to pick a
// different start.
func (b *Booking) SuggestEnd(ctx context.Context, spaceID, date, userName, startTime string) (string, error) {
    if _, ok := b.catalog.Get(spaceID); !ok {
        return "", ErrSpaceNotFound
    }
    start, err := schedule.ToMinutes(startTime)
    if err != nil {
        return "", err
    }
    history, err := b.store.ListByUser(ctx, userName, date)
    if err != nil {
        return "", err
    }
    isRepeat := b.policy.IsRepeat(schedule.Candidate{SpaceID: spaceID, UserName: userName, Date: date}, history)
    confirmed, err := b.confirmedIntervals(ctx, spaceID, date)
    if err != nil {
        return "", err
    }
    end, err := b.policy.SuggestEnd(start, isRepeat, confirmed)
    if err != nil {
        return "", err
    }
    return schedule.ToTime(end), nil
}

// List returns all reservations newest first; a non-empty date narrows
// to that day.
func (b *Booking) List(ctx context.Context, date string) ([]model.Reservation, error) {
    all, err := b.store.ListAll(ctx)
    if err != nil {
        return nil, err
    }
    if date == "" {
        return all, nil
    }
    out := make([]model.Reservation, 0, len(all))
    for _, r := range all {
        if r.Date == date {
            out = append(out, r)
        }
    }
    return out, nil
}

// Pending returns undecided reservations, newest first, for the admin
// queue.
func (b *Booking) Pending(ctx context.Context) ([]model.Reservation, error) {
    return b.store.ListByStatus(ctx, model.StatusPending)
}

// Unread returns the requester's decided-but-unacknowledged
// reservations: the admin changed the status and the member has not
// seen it yet.
func (b *Booking) Unread(ctx context.Context, userName string) ([]model.Reservation, error) {
    mine, err := b.store.ListByUser(ctx, userName, "")
    if err != nil {
        return nil, err
    }
    out := make([]model.Reservation, 0)
    for _, r := range mine {
        if !r.IsRead && r.Status.Terminal() {
            out = append(out, r)
        }
    }
    return out, nil
}

// Acknowledge marks a decided reservation as seen by the requester.
func (b *Booking) Acknowledge(ctx context.Context, id string) error {
    return b.store.MarkRead(ctx, id)
}

// Stats summarizes the reservation set for the dashboard.
type Stats struct {
    Pending   int `json:"pending"`
    Confirmed int `json:"confirmed"`
    Cancelled int `json:"cancelled"`
}

// Stats counts reservations per lifecycle state.
func (b *Booking) Stats(ctx context.Context) (Stats, error) {
    all, err := b.store.ListAll(ctx)
    if err != nil {
        return Stats{}, err
    }
    var s Stats
    for _, r := range all {
        switch r.Status {
        case model.StatusPending:
            s.Pending++
        case model.StatusConfirmed:
            s.Confirmed++
        case model.StatusCancelled:
            s.Cancelled++
        }
    }
    return s, nil
}
