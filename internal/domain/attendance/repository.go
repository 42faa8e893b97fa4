package attendance

import (
	"context"
	"time"
)

// Repository defines data access methods for attendance records.
type Repository interface {
	// Create inserts a new record. The attendance_records table carries a
	// unique constraint on (employee_id, date); a violation is returned as
	// ErrAlreadyCheckedIn so concurrent first check-ins stay race-safe.
	Create(ctx context.Context, record Record) (Record, error)

	// GetByID retrieves a record by ID.
	GetByID(ctx context.Context, id string) (Record, error)

	// GetByEmployeeAndDate retrieves the record for an employee on a work
	// day, or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// Update writes the record's mutable fields.
	Update(ctx context.Context, record Record) error

	// List retrieves records matching the filter with pagination.
	List(ctx context.Context, filter RecordFilter) ([]Record, int64, error)

	// Delete removes a record. Deletion is an explicit operator action only.
	Delete(ctx context.Context, id string) error

	// DeleteMany removes records in bulk, returning the number deleted.
	DeleteMany(ctx context.Context, ids []string) (int64, error)

	// SummarizeByEmployee aggregates per-employee counts over a date range.
	SummarizeByEmployee(ctx context.Context, startDate, endDate time.Time) ([]EmployeeSummary, error)
}

// EmployeeSummary is the per-employee aggregation used by reports.
type EmployeeSummary struct {
	EmployeeID    string
	EmployeeName  string
	DaysPresent   int
	OvertimeDays  int
	UndertimeDays int
	ExactTimeDays int
	FirstActivity *time.Time
	LastActivity  *time.Time
}
