package attendance

import (
	"time"
)

// Shift is a fixed start/end hour pair a clock event classifies against.
type Shift struct {
	Name      string
	StartHour int
	EndHour   int
}

var (
	DayShift     = Shift{Name: "day", StartHour: 8, EndHour: 18}
	EveningShift = Shift{Name: "evening", StartHour: 18, EndHour: 22}
)

// StartInstant returns the shift's start on the event's calendar day.
func (s Shift) StartInstant(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), s.StartHour, 0, 0, 0, t.Location())
}

// EndInstant returns the shift's end on the event's calendar day.
func (s Shift) EndInstant(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), s.EndHour, 0, 0, 0, t.Location())
}

// ResolveShift picks the shift a clock event belongs to. Check-ins at or
// after noon belong to the evening shift. Check-outs prefer the paired
// check-in's hour; without one they fall back to the same noon rule, so
// both event types always resolve against the same window.
func ResolveShift(eventTime time.Time, eventType EventType, pairedTimeIn *time.Time) Shift {
	hour := eventTime.Hour()
	if eventType == EventCheckOut && pairedTimeIn != nil {
		hour = pairedTimeIn.In(eventTime.Location()).Hour()
	}
	if hour >= 12 {
		return EveningShift
	}
	return DayShift
}

// Classify compares a clock event to its shift boundary. Check-ins compare
// to the shift start: exactly on time is EXACT_TIME, after is UNDERTIME,
// before is OVERTIME. Check-outs compare to the shift end with the
// directions reversed. Pure and deterministic; callers own persistence.
func Classify(eventTime time.Time, eventType EventType, shift Shift) Status {
	var boundary time.Time
	switch eventType {
	case EventCheckOut:
		boundary = shift.EndInstant(eventTime)
	default:
		boundary = shift.StartInstant(eventTime)
	}

	if eventTime.Equal(boundary) {
		return StatusExactTime
	}

	after := eventTime.After(boundary)
	if eventType == EventCheckOut {
		if after {
			return StatusOvertime
		}
		return StatusUndertime
	}
	if after {
		return StatusUndertime
	}
	return StatusOvertime
}
