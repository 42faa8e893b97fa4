package report

import (
	"github.com/storemate/storemate-backend-go/internal/pkg/validator"
)

type DateRangeRequest struct {
	StartDate string `json:"start_date"` // YYYY-MM-DD, inclusive
	EndDate   string `json:"end_date"`   // YYYY-MM-DD, inclusive
}

func (r *DateRangeRequest) Validate() error {
	var errs validator.ValidationErrors

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date cannot be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceSummaryRow is one employee's aggregation over the range.
type AttendanceSummaryRow struct {
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  string  `json:"employee_name"`
	DaysPresent   int     `json:"days_present"`
	OvertimeDays  int     `json:"overtime_days"`
	UndertimeDays int     `json:"undertime_days"`
	ExactTimeDays int     `json:"exact_time_days"`
	FirstActivity *string `json:"first_activity,omitempty"`
	LastActivity  *string `json:"last_activity,omitempty"`
}

type AttendanceSummaryResponse struct {
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Rows      []AttendanceSummaryRow `json:"rows"`
}

// SalesSummaryRow is one day's order totals.
type SalesSummaryRow struct {
	Date       string `json:"date"`
	OrderCount int    `json:"order_count"`
	Revenue    string `json:"revenue"` // completed orders only
}

type SalesSummaryResponse struct {
	StartDate string            `json:"start_date"`
	EndDate   string            `json:"end_date"`
	Rows      []SalesSummaryRow `json:"rows"`
}
