package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.March, 10, hour, min, 0, 0, time.Local)
}

func TestResolveShift_CheckIn(t *testing.T) {
	cases := []struct {
		name string
		hour int
		want Shift
	}{
		{"early morning", 7, DayShift},
		{"mid morning", 9, DayShift},
		{"just before noon", 11, DayShift},
		{"noon boundary", 12, EveningShift},
		{"afternoon", 15, EveningShift},
		{"evening", 19, EveningShift},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ResolveShift(at(c.hour, 0), EventCheckIn, nil)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestResolveShift_CheckOutPrefersPairedCheckIn(t *testing.T) {
	morningIn := at(8, 0)
	eveningIn := at(18, 5)

	// Late check-out still classifies against the day shift when the
	// paired check-in was in the morning.
	assert.Equal(t, DayShift, ResolveShift(at(19, 0), EventCheckOut, &morningIn))
	assert.Equal(t, EveningShift, ResolveShift(at(21, 0), EventCheckOut, &eveningIn))
}

func TestResolveShift_CheckOutFallbackWithoutCheckIn(t *testing.T) {
	// Same noon rule as check-in when no paired check-in exists.
	assert.Equal(t, DayShift, ResolveShift(at(10, 0), EventCheckOut, nil))
	assert.Equal(t, EveningShift, ResolveShift(at(13, 0), EventCheckOut, nil))
	assert.Equal(t, EveningShift, ResolveShift(at(22, 30), EventCheckOut, nil))
}

func TestClassify_CheckInAgainstDayShift(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want Status
	}{
		{"exactly on time", at(8, 0), StatusExactTime},
		{"fifteen minutes late", at(8, 15), StatusUndertime},
		{"fifteen minutes early", at(7, 45), StatusOvertime},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.at, EventCheckIn, DayShift))
		})
	}
}

func TestClassify_CheckOutAgainstDayShift(t *testing.T) {
	cases := []struct {
		name string
		at   time.Time
		want Status
	}{
		{"exactly at shift end", at(18, 0), StatusExactTime},
		{"stayed late", at(18, 30), StatusOvertime},
		{"left early", at(17, 45), StatusUndertime},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Classify(c.at, EventCheckOut, DayShift))
		})
	}
}

func TestClassify_EveningShiftCheckInAfterStart(t *testing.T) {
	// A 19:00 check-in resolves to the evening shift and is an hour past
	// its 18:00 start.
	eventTime := at(19, 0)
	shift := ResolveShift(eventTime, EventCheckIn, nil)
	assert.Equal(t, EveningShift, shift)
	assert.Equal(t, StatusUndertime, Classify(eventTime, EventCheckIn, shift))
}

func TestClassify_BoundaryUsesEquality(t *testing.T) {
	// One second either side of the boundary flips the status.
	start := at(8, 0)
	assert.Equal(t, StatusExactTime, Classify(start, EventCheckIn, DayShift))
	assert.Equal(t, StatusOvertime, Classify(start.Add(-time.Second), EventCheckIn, DayShift))
	assert.Equal(t, StatusUndertime, Classify(start.Add(time.Second), EventCheckIn, DayShift))
}

func TestClassify_Deterministic(t *testing.T) {
	eventTime := at(9, 30)
	first := Classify(eventTime, EventCheckIn, DayShift)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify(eventTime, EventCheckIn, DayShift))
	}
}
