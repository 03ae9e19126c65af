package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCost(t *testing.T) {
	l := New(DefaultRules())
	tests := []struct {
		duration float64
		want     float64
	}{
		{1.0, 20.0},
		{0.5, 12.0},
		{2.0, 40.0},
		{1.5, 30.0},
		{0.1, 7.2},
		{0.99, 17.88},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, l.Cost(tt.duration), 1e-9, "duration %v", tt.duration)
	}
}

func TestHire_Success(t *testing.T) {
	l := New(DefaultRules())

	payment, err := l.Hire(3, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 40.0, payment)

	b := l.Boats()[2]
	assert.Equal(t, 3, b.Number)
	assert.Equal(t, 12, b.ReturnHour)
	assert.False(t, b.Available)
	assert.Equal(t, 40.0, b.MoneyTaken)
	assert.Equal(t, 2.0, b.HoursHired)
}

func TestHire_ReturnHourIsFloored(t *testing.T) {
	l := New(DefaultRules())

	_, err := l.Hire(1, 12, 1.5)
	require.NoError(t, err)
	assert.Equal(t, 13, l.Boats()[0].ReturnHour)
}

func TestHire_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		boatID   int
		start    int
		duration float64
		want     error
	}{
		{"boat id zero", 0, 10, 1, ErrInvalidBoatID},
		{"boat id past fleet", 11, 10, 1, ErrInvalidBoatID},
		{"start before opening", 1, 9, 1, ErrInvalidStartHour},
		{"start at closing", 1, 17, 1, ErrInvalidStartHour},
		{"zero duration", 1, 10, 0, ErrInvalidDuration},
		{"negative duration", 1, 10, -1, ErrInvalidDuration},
		{"runs past closing", 1, 16, 2, ErrInvalidDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(DefaultRules())
			before := l.Boats()

			payment, err := l.Hire(tt.boatID, tt.start, tt.duration)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, payment)
			assert.Equal(t, before, l.Boats())
		})
	}
}

func TestHire_EndingExactlyAtClosing(t *testing.T) {
	l := New(DefaultRules())

	payment, err := l.Hire(1, 16, 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, payment)
	assert.Equal(t, 17, l.Boats()[0].ReturnHour)
}

func TestHire_AlreadyHiredBoat(t *testing.T) {
	l := New(DefaultRules())
	_, err := l.Hire(3, 10, 2)
	require.NoError(t, err)
	before := l.Boats()

	_, err = l.Hire(3, 14, 1)
	require.ErrorIs(t, err, ErrBoatUnavailable)
	assert.EqualError(t, err, "Boat 3 is not available at this time.")
	assert.Equal(t, before, l.Boats())
}

func TestHire_StaysUnavailableAfterReturnHour(t *testing.T) {
	l := New(DefaultRules())
	_, err := l.Hire(1, 10, 0.5)
	require.NoError(t, err)

	// Returned at 10 on paper, but nothing hands the boat back.
	assert.Equal(t, 10, l.Boats()[0].ReturnHour)
	_, err = l.Hire(1, 15, 1)
	assert.ErrorIs(t, err, ErrBoatUnavailable)
}

func TestHire_NoBoatsAvailable(t *testing.T) {
	l := New(DefaultRules())
	for id := 1; id <= 10; id++ {
		_, err := l.Hire(id, 10+id%6, 1)
		require.NoError(t, err)
	}

	_, found := l.FindNextAvailable()
	assert.False(t, found)

	_, err := l.Hire(1, 10, 1)
	require.ErrorIs(t, err, ErrNoBoatsAvailable)
	var nb *NoBoatsError
	require.True(t, errors.As(err, &nb))
	assert.True(t, nb.Known)
	assert.Equal(t, 11, nb.NextHour)
	assert.Equal(t, "No boats are currently available. The first available boat will be at 11:00.", err.Error())
}

func TestHire_NoBoatsAvailableCheckedFirst(t *testing.T) {
	l := New(DefaultRules())
	for id := 1; id <= 10; id++ {
		_, err := l.Hire(id, 16, 1)
		require.NoError(t, err)
	}

	_, err := l.Hire(99, 3, -1)
	var nb *NoBoatsError
	require.True(t, errors.As(err, &nb))
	assert.False(t, nb.Known)
	assert.Equal(t, "No boats are currently available, and the next available time is unknown.", err.Error())
}

func TestFindNextAvailable(t *testing.T) {
	l := New(DefaultRules())

	b, ok := l.FindNextAvailable()
	require.True(t, ok)
	assert.Equal(t, 1, b.Number)

	_, err := l.Hire(1, 10, 1)
	require.NoError(t, err)
	b, ok = l.FindNextAvailable()
	require.True(t, ok)
	assert.Equal(t, 2, b.Number)
}

func TestFindNextAvailableTime(t *testing.T) {
	l := New(DefaultRules())
	for id := 1; id <= 10; id++ {
		_, err := l.Hire(id, 16-id%3, 1)
		require.NoError(t, err)
	}
	// Return hours are 16, 15, 17, 16, 15, 17, ...; the earliest is 15.
	hour, ok := l.FindNextAvailableTime(10)
	require.True(t, ok)
	assert.Equal(t, 15, hour)

	hour, ok = l.FindNextAvailableTime(16)
	require.True(t, ok)
	assert.Equal(t, 16, hour)

	_, ok = l.FindNextAvailableTime(17)
	assert.False(t, ok)
}

func TestFindNextAvailableTime_UntouchedFleet(t *testing.T) {
	l := New(DefaultRules())

	hour, ok := l.FindNextAvailableTime(10)
	require.True(t, ok)
	assert.Equal(t, 10, hour)
}

func TestFindNextAvailableTime_KeepsFleetOrder(t *testing.T) {
	l := New(DefaultRules())
	_, err := l.Hire(1, 15, 2)
	require.NoError(t, err)
	_, err = l.Hire(2, 10, 1)
	require.NoError(t, err)

	_, ok := l.FindNextAvailableTime(10)
	require.True(t, ok)

	for i, row := range l.ListAvailability() {
		assert.Equal(t, i+1, row.Number)
	}
}

func TestListAvailability(t *testing.T) {
	l := New(DefaultRules())
	_, err := l.Hire(2, 11, 1.5)
	require.NoError(t, err)
	_, err = l.Hire(4, 10, 3)
	require.NoError(t, err)

	rows := l.ListAvailability()
	require.Len(t, rows, 10)

	assert.True(t, rows[0].Available)
	assert.False(t, rows[1].Available)
	assert.Equal(t, 12, rows[1].ReturnHour)
	assert.Equal(t, 30, rows[1].ReturnMinute)
	assert.False(t, rows[3].Available)
	assert.Equal(t, 13, rows[3].ReturnHour)
	assert.Equal(t, 0, rows[3].ReturnMinute)
}

func TestDailyReport_UntouchedFleet(t *testing.T) {
	r := New(DefaultRules()).DailyReport()

	assert.Zero(t, r.TotalMoneyTaken)
	assert.Zero(t, r.TotalHoursHired)
	assert.Equal(t, 10, r.UnusedBoats)
	assert.Equal(t, 1, r.MostUsedBoat)
	assert.Zero(t, r.MostUsedHours)
}

func TestDailyReport_TieGoesToLowestNumber(t *testing.T) {
	l := New(DefaultRules())
	_, err := l.Hire(5, 10, 2)
	require.NoError(t, err)
	_, err = l.Hire(2, 12, 2)
	require.NoError(t, err)
	_, err = l.Hire(7, 10, 0.5)
	require.NoError(t, err)

	r := l.DailyReport()
	assert.InDelta(t, 92.0, r.TotalMoneyTaken, 1e-9)
	assert.InDelta(t, 4.5, r.TotalHoursHired, 1e-9)
	assert.Equal(t, 7, r.UnusedBoats)
	assert.Equal(t, 2, r.MostUsedBoat)
	assert.Equal(t, 2.0, r.MostUsedHours)
}

func TestTotalsNeverDecrease(t *testing.T) {
	l := New(DefaultRules())
	attempts := []struct {
		id       int
		start    int
		duration float64
	}{
		{1, 10, 1}, {1, 11, 1}, {0, 10, 1}, {2, 16, 2}, {2, 16, 0.5},
		{3, 9, 1}, {4, 12, 4.5}, {4, 10, 1}, {5, 10, -3}, {6, 13, 0.25},
	}

	prev := l.Boats()
	for _, a := range attempts {
		_, _ = l.Hire(a.id, a.start, a.duration)
		_ = l.ListAvailability()
		_, _ = l.FindNextAvailableTime(10)
		cur := l.Boats()
		for i := range cur {
			assert.GreaterOrEqual(t, cur[i].MoneyTaken, prev[i].MoneyTaken)
			assert.GreaterOrEqual(t, cur[i].HoursHired, prev[i].HoursHired)
		}
		prev = cur
	}
}

func TestRulesValidate(t *testing.T) {
	require.NoError(t, DefaultRules().Validate())

	bad := []Rules{
		{FleetSize: 0, OpeningHour: 10, ClosingHour: 17},
		{FleetSize: 10, OpeningHour: 17, ClosingHour: 10},
		{FleetSize: 10, OpeningHour: -1, ClosingHour: 10},
		{FleetSize: 10, OpeningHour: 10, ClosingHour: 25},
		{FleetSize: 10, OpeningHour: 10, ClosingHour: 17, HourlyRate: -1},
	}
	for _, r := range bad {
		assert.Error(t, r.Validate(), "%+v", r)
	}
}

func TestReason(t *testing.T) {
	l := New(DefaultRules())
	_, err := l.Hire(0, 10, 1)
	assert.Equal(t, "INVALID_BOAT_ID", Reason(err))
	assert.Equal(t, "", Reason(nil))
	assert.Equal(t, "NO_BOATS_AVAILABLE", Reason(&NoBoatsError{}))
	assert.Equal(t, "UNKNOWN", Reason(errors.New("boom")))
}
