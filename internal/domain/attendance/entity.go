package attendance

import (
	"time"
)

// Status classifies a clock event against its shift window.
type Status string

const (
	StatusOvertime  Status = "OVERTIME"   // early arrival or late departure
	StatusUndertime Status = "UNDERTIME"  // late arrival or early departure
	StatusExactTime Status = "EXACT_TIME" // boundary match
)

// EventType distinguishes the two clock events.
type EventType string

const (
	EventCheckIn  EventType = "CHECK_IN"
	EventCheckOut EventType = "CHECK_OUT"
)

type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time // work day, truncated to local midnight
	TimeIn     *time.Time
	TimeOut    *time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName     *string
	EmployeePosition *string
}

// HasCheckedIn reports whether the record carries a check-in timestamp.
func (r *Record) HasCheckedIn() bool {
	return r.TimeIn != nil
}

// HasCheckedOut reports whether the record carries a check-out timestamp.
func (r *Record) HasCheckedOut() bool {
	return r.TimeOut != nil
}
