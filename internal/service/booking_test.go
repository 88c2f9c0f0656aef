package service_test

import (
    "context"
    "testing"
    "time"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/model"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/queue"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/schedule"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/service"
    "github.com/UnimationKorea/saesoon-campus-0113/internal/store"
)

type tickClock struct {
    t time.Time
}

func (c *tickClock) Now() time.Time {
    c.t = c.t.Add(time.Second)
    return c.t
}

func newBooking(t *testing.T, recheck bool, publish service.Publisher) (*service.Booking, *store.Memory) {
    t.Helper()
    mem := store.NewMemory(&tickClock{t: time.Date(2026, 9, 5, 8, 0, 0, 0, time.UTC)})
    policy := &schedule.Policy{
        Grid:         schedule.Grid{Open: 540, Close: 1320, SlotMinutes: 30},
        DurationRule: schedule.DurationRuleCap,
        RepeatScope:  schedule.RepeatScopeDay,
    }
    return service.NewBooking(mem, model.NewCatalog(model.DefaultSpaces()), policy, recheck, publish), mem
}

func spaceID(t *testing.T) string {
    t.Helper()
    spaces := model.DefaultSpaces()
    require.NotEmpty(t, spaces)
    return spaces[0].ID
}

func candidate(t *testing.T, user, start, end string) schedule.Candidate {
    t.Helper()
    return schedule.Candidate{
        SpaceID:   spaceID(t),
        UserName:  user,
        Purpose:   "choir practice",
        Date:      "2026-09-05",
        StartTime: start,
        EndTime:   end,
    }
}

func TestCreatePending(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    ctx := context.Background()

    r, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:30"))
    require.NoError(t, err)
    assert.NotEmpty(t, r.ID)
    assert.Equal(t, model.StatusPending, r.Status)
    assert.True(t, r.IsRead)
}

func TestCreateUnknownSpace(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    c := candidate(t, "Lee", "10:00", "11:00")
    c.SpaceID = "nope"
    _, err := b.Create(context.Background(), c)
    assert.ErrorIs(t, err, service.ErrSpaceNotFound)
}

func TestCreateRejectsOverlongFirstBooking(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    _, err := b.Create(context.Background(), candidate(t, "Lee", "10:00", "12:30"))
    var ve *schedule.ValidationError
    require.ErrorAs(t, err, &ve)
    assert.Contains(t, ve.Reason, "120")
}

func TestCreateSecondBookingIsCapped(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    ctx := context.Background()

    _, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:00"))
    require.NoError(t, err)

    // Still pending counts as history: the second request is a repeat.
    _, err = b.Create(ctx, candidate(t, "Lee", "14:00", "15:30"))
    var ve *schedule.ValidationError
    require.ErrorAs(t, err, &ve)
    assert.Contains(t, ve.Reason, "60")

    _, err = b.Create(ctx, candidate(t, "Lee", "14:00", "15:00"))
    assert.NoError(t, err)
}

func TestCreatePendingDoesNotBlockOthers(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    ctx := context.Background()

    // A pending request does not reserve the slot; only confirmed
    // reservations mutually exclude.
    _, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:00"))
    require.NoError(t, err)
    _, err = b.Create(ctx, candidate(t, "Park", "10:00", "11:00"))
    assert.NoError(t, err)
}

func TestCreateConflictsWithConfirmed(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    ctx := context.Background()

    first, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:00"))
    require.NoError(t, err)
    _, err = b.Approve(ctx, first.ID)
    require.NoError(t, err)

    _, err = b.Create(ctx, candidate(t, "Park", "10:30", "11:30"))
    var ve *schedule.ValidationError
    require.ErrorAs(t, err, &ve)
    assert.Contains(t, ve.Reason, "overlaps")

    // Back-to-back with the confirmed booking is fine.
    _, err = b.Create(ctx, candidate(t, "Park", "11:00", "12:00"))
    assert.NoError(t, err)
}

func TestApproveAndReject(t *testing.T) {
    var events []queue.ReservationDecidedEvent
    publish := func(ctx context.Context, ev queue.ReservationDecidedEvent) error {
        events = append(events, ev)
        return nil
    }
    b, _ := newBooking(t, true, publish)
    ctx := context.Background()

    r1, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:00"))
    require.NoError(t, err)
    r2, err := b.Create(ctx, candidate(t, "Park", "14:00", "15:00"))
    require.NoError(t, err)

    approved, err := b.Approve(ctx, r1.ID)
    require.NoError(t, err)
    assert.Equal(t, model.StatusConfirmed, approved.Status)
    assert.False(t, approved.IsRead)

    rejected, err := b.Reject(ctx, r2.ID)
    require.NoError(t, err)
    assert.Equal(t, model.StatusCancelled, rejected.Status)

    require.Len(t, events, 2)
    assert.Equal(t, r1.ID, events[0].ReservationID)
    assert.Equal(t, "confirmed", events[0].Status)
    assert.Equal(t, "cancelled", events[1].Status)
    assert.NotEmpty(t, events[0].SpaceName)
}

func TestApproveUnknownID(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    _, err := b.Approve(context.Background(), "missing")
    assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestApproveTwiceConflicts(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    ctx := context.Background()

    r, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:00"))
    require.NoError(t, err)
    _, err = b.Approve(ctx, r.ID)
    require.NoError(t, err)
    _, err = b.Approve(ctx, r.ID)
    assert.ErrorIs(t, err, store.ErrInvalidTransition)
}

func TestRecheckOnConfirmClosesDoubleBooking(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    ctx := context.Background()

    // Two overlapping requests slip in while both are pending.
    r1, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:00"))
    require.NoError(t, err)
    r2, err := b.Create(ctx, candidate(t, "Park", "10:30", "11:30"))
    require.NoError(t, err)

    _, err = b.Approve(ctx, r1.ID)
    require.NoError(t, err)

    // The second approval re-checks against the live confirmed set and
    // refuses, leaving the reservation pending for the admin to reject.
    _, err = b.Approve(ctx, r2.ID)
    var ve *schedule.ValidationError
    require.ErrorAs(t, err, &ve)

    loaded, err := b.List(ctx, "2026-09-05")
    require.NoError(t, err)
    for _, r := range loaded {
        if r.ID == r2.ID {
            assert.Equal(t, model.StatusPending, r.Status)
        }
    }
}

func TestRecheckDisabledAllowsDoubleBooking(t *testing.T) {
    b, _ := newBooking(t, false, nil)
    ctx := context.Background()

    r1, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:00"))
    require.NoError(t, err)
    r2, err := b.Create(ctx, candidate(t, "Park", "10:30", "11:30"))
    require.NoError(t, err)

    _, err = b.Approve(ctx, r1.ID)
    require.NoError(t, err)
    _, err = b.Approve(ctx, r2.ID)
    assert.NoError(t, err)
}

func TestApproveAdjacentPendingSucceeds(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    ctx := context.Background()

    r1, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:00"))
    require.NoError(t, err)
    r2, err := b.Create(ctx, candidate(t, "Park", "11:00", "12:00"))
    require.NoError(t, err)

    _, err = b.Approve(ctx, r1.ID)
    require.NoError(t, err)
    _, err = b.Approve(ctx, r2.ID)
    assert.NoError(t, err)
}

func TestAvailability(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    ctx := context.Background()

    r, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:00"))
    require.NoError(t, err)
    _, err = b.Approve(ctx, r.ID)
    require.NoError(t, err)

    av, err := b.Availability(ctx, spaceID(t), "2026-09-05")
    require.NoError(t, err)
    require.Len(t, av.Slots, 26)

    booked := map[string]bool{}
    for _, s := range av.Slots {
        booked[s.Time] = s.Booked
    }
    assert.False(t, booked["09:30"])
    assert.True(t, booked["10:00"])
    assert.True(t, booked["10:30"])
    assert.False(t, booked["11:00"])

    require.Len(t, av.Free, 2)
    assert.Equal(t, service.FreeRange{StartTime: "09:00", EndTime: "10:00"}, av.Free[0])
    assert.Equal(t, service.FreeRange{StartTime: "11:00", EndTime: "22:00"}, av.Free[1])
}

func TestAvailabilityEmptyDay(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    av, err := b.Availability(context.Background(), spaceID(t), "2026-09-05")
    require.NoError(t, err)
    require.Len(t, av.Free, 1)
    assert.Equal(t, service.FreeRange{StartTime: "09:00", EndTime: "22:00"}, av.Free[0])
}

func TestSuggestEnd(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    ctx := context.Background()

    // First-timer: two hours from the start.
    end, err := b.SuggestEnd(ctx, spaceID(t), "2026-09-05", "Lee", "10:00")
    require.NoError(t, err)
    assert.Equal(t, "12:00", end)

    // After one booking the requester is a repeat and gets one hour.
    _, err = b.Create(ctx, candidate(t, "Lee", "14:00", "15:00"))
    require.NoError(t, err)
    end, err = b.SuggestEnd(ctx, spaceID(t), "2026-09-05", "Lee", "16:00")
    require.NoError(t, err)
    assert.Equal(t, "17:00", end)

    // Clamped against the next confirmed booking.
    r, err := b.Create(ctx, candidate(t, "Park", "11:00", "12:00"))
    require.NoError(t, err)
    _, err = b.Approve(ctx, r.ID)
    require.NoError(t, err)
    end, err = b.SuggestEnd(ctx, spaceID(t), "2026-09-05", "Choi", "10:00")
    require.NoError(t, err)
    assert.Equal(t, "11:00", end)

    _, err = b.SuggestEnd(ctx, spaceID(t), "2026-09-05", "Choi", "10:30")
    var ve *schedule.ValidationError
    assert.ErrorAs(t, err, &ve)
}

func TestUnreadAndAcknowledge(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    ctx := context.Background()

    r1, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:00"))
    require.NoError(t, err)
    r2, err := b.Create(ctx, candidate(t, "Lee", "14:00", "15:00"))
    require.NoError(t, err)

    // Nothing decided yet, nothing unread.
    unread, err := b.Unread(ctx, "Lee")
    require.NoError(t, err)
    assert.Empty(t, unread)

    _, err = b.Approve(ctx, r1.ID)
    require.NoError(t, err)
    _, err = b.Reject(ctx, r2.ID)
    require.NoError(t, err)

    unread, err = b.Unread(ctx, "lee")
    require.NoError(t, err)
    assert.Len(t, unread, 2)

    require.NoError(t, b.Acknowledge(ctx, r1.ID))
    unread, err = b.Unread(ctx, "Lee")
    require.NoError(t, err)
    require.Len(t, unread, 1)
    assert.Equal(t, r2.ID, unread[0].ID)
}

func TestStats(t *testing.T) {
    b, _ := newBooking(t, true, nil)
    ctx := context.Background()

    r1, err := b.Create(ctx, candidate(t, "Lee", "10:00", "11:00"))
    require.NoError(t, err)
    r2, err := b.Create(ctx, candidate(t, "Park", "14:00", "15:00"))
    require.NoError(t, err)
    _, err = b.Create(ctx, candidate(t, "Choi", "16:00", "17:00"))
    require.NoError(t, err)

    _, err = b.Approve(ctx, r1.ID)
    require.NoError(t, err)
    _, err = b.Reject(ctx, r2.ID)
    require.NoError(t, err)

    s, err := b.Stats(ctx)
    require.NoError(t, err)
    assert.Equal(t, service.Stats{Pending: 1, Confirmed: 1, Cancelled: 1}, s)
}
