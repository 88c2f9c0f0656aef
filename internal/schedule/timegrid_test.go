package schedule_test

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/UnimationKorea/saesoon-campus-0113/internal/schedule"
)

func TestToMinutes(t *testing.T) {
    cases := []struct {
        in   string
        want int
    }{
        {"00:00", 0},
        {"09:00", 540},
        {"09:30", 570},
        {"9:30", 570},
        {"22:00", 1320},
        {"23:59", 1439},
    }
    for _, tc := range cases {
        got, err := schedule.ToMinutes(tc.in)
        require.NoError(t, err, "input %q", tc.in)
        assert.Equal(t, tc.want, got, "input %q", tc.in)
    }
}

func TestToMinutesEmptyIsZero(t *testing.T) {
    got, err := schedule.ToMinutes("")
    require.NoError(t, err)
    assert.Equal(t, 0, got)
}

func TestToMinutesRejectsMalformed(t *testing.T) {
    for _, in := range []string{"0930", "24:00", "12:60", "12:5", "ab:cd", ":30", "12:"} {
        _, err := schedule.ToMinutes(in)
        require.Error(t, err, "input %q", in)
        var fe *schedule.FormatError
        assert.ErrorAs(t, err, &fe, "input %q", in)
    }
}

func TestToTime(t *testing.T) {
    assert.Equal(t, "09:30", schedule.ToTime(570))
    assert.Equal(t, "00:00", schedule.ToTime(0))
    assert.Equal(t, "22:00", schedule.ToTime(1320))
    // Past midnight wraps instead of producing hour 24.
    assert.Equal(t, "00:30", schedule.ToTime(1470))
    assert.Equal(t, "23:00", schedule.ToTime(-60))
}

func TestToMinutesToTimeRoundTrip(t *testing.T) {
    for m := 0; m < 24*60; m += 7 {
        got, err := schedule.ToMinutes(schedule.ToTime(m))
        require.NoError(t, err)
        assert.Equal(t, m, got)
    }
}

func TestGridSlots(t *testing.T) {
    g := schedule.Grid{Open: 540, Close: 1320, SlotMinutes: 30}
    slots := g.Slots()
    require.Len(t, slots, 26)
    assert.Equal(t, "09:00", slots[0])
    assert.Equal(t, "09:30", slots[1])
    assert.Equal(t, "21:30", slots[len(slots)-1])
}

func TestGridSlotsDegenerate(t *testing.T) {
    assert.Nil(t, schedule.Grid{Open: 600, Close: 540, SlotMinutes: 30}.Slots())
    assert.Nil(t, schedule.Grid{Open: 540, Close: 1320}.Slots())
}

func TestGridContains(t *testing.T) {
    g := schedule.Grid{Open: 540, Close: 1320, SlotMinutes: 30}
    assert.True(t, g.Contains(540, 1320))
    assert.True(t, g.Contains(600, 660))
    assert.False(t, g.Contains(480, 600))
    assert.False(t, g.Contains(1300, 1330))
}
