package attendance

import (
	"strings"

	"github.com/storemate/storemate-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// QRScanRequest is sent by the QR kiosk: a badge scan resolves to the
// employee ID plus a TOTP code derived from the badge secret.
type QRScanRequest struct {
	EmployeeID string `json:"employee_id"`
	Code       string `json:"code"`
	Event      string `json:"event"` // CHECK_IN or CHECK_OUT
}

func (r *QRScanRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if len(r.Code) != 6 || !validator.IsNumeric(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be a 6-digit number",
		})
	}

	event := strings.ToUpper(r.Event)
	if event != string(EventCheckIn) && event != string(EventCheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "event",
			Message: "event must be one of: CHECK_IN, CHECK_OUT",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     string  `json:"employee_name"`
	EmployeePosition *string `json:"employee_position,omitempty"`
	Date             string  `json:"date"`
	TimeIn           *string `json:"time_in,omitempty"`
	TimeOut          *string `json:"time_out,omitempty"`
	Status           string  `json:"status,omitempty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type RecordFilter struct {
	// Search & Filter
	EmployeeID *string `json:"employee_id,omitempty"`
	Date       *string `json:"date,omitempty"`       // YYYY-MM-DD, full local day
	StartDate  *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"end_date,omitempty"`   // YYYY-MM-DD
	Search     *string `json:"search,omitempty"`     // employee name
	Status     *string `json:"status,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`

	// Sorting
	SortBy    string `json:"sort_by"`    // date, employee_name, time_in, time_out, status
	SortOrder string `json:"sort_order"` // asc, desc
}

func (f *RecordFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1
	}

	if f.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if f.Limit == 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if f.Status != nil && *f.Status != "" {
		validStatuses := []string{string(StatusOvertime), string(StatusUndertime), string(StatusExactTime)}
		if !validator.IsInSlice(strings.ToUpper(*f.Status), validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: OVERTIME, UNDERTIME, EXACT_TIME",
			})
		}
	}

	for field, value := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if value != nil && *value != "" {
			if _, valid := validator.IsValidDate(*value); !valid {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if f.SortBy != "" {
		validSortFields := []string{"date", "employee_name", "time_in", "time_out", "status"}
		if !validator.IsInSlice(f.SortBy, validSortFields) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_by",
				Message: "sort_by must be one of: date, employee_name, time_in, time_out, status",
			})
		}
	} else {
		f.SortBy = "date"
	}

	if f.SortOrder != "" {
		if !validator.IsInSlice(strings.ToLower(f.SortOrder), []string{"asc", "desc"}) {
			errs = append(errs, validator.ValidationError{
				Field:   "sort_order",
				Message: "sort_order must be one of: asc, desc",
			})
		}
	} else {
		f.SortOrder = "desc"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListRecordsResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
	Records    []RecordResponse `json:"records"`
}

// CreateRecordRequest is the operator path for creating a record directly,
// bypassing the classifier when status is provided.
type CreateRecordRequest struct {
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`               // YYYY-MM-DD
	TimeIn     *string `json:"time_in,omitempty"`  // RFC3339
	TimeOut    *string `json:"time_out,omitempty"` // RFC3339
	Status     *string `json:"status,omitempty"`
}

func (r *CreateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.TimeIn != nil && *r.TimeIn != "" {
		if _, valid := validator.IsValidDateTime(*r.TimeIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "time_in",
				Message: "time_in must be an RFC3339 timestamp",
			})
		}
	}

	if r.TimeOut != nil && *r.TimeOut != "" {
		if _, valid := validator.IsValidDateTime(*r.TimeOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "time_out",
				Message: "time_out must be an RFC3339 timestamp",
			})
		}
	}

	if r.Status != nil && *r.Status != "" {
		validStatuses := []string{string(StatusOvertime), string(StatusUndertime), string(StatusExactTime)}
		if !validator.IsInSlice(strings.ToUpper(*r.Status), validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: OVERTIME, UNDERTIME, EXACT_TIME",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateRecordRequest is the operator path for fixing wrong clock times.
type UpdateRecordRequest struct {
	ID      string  `json:"-"`
	Date    *string `json:"date,omitempty"`     // YYYY-MM-DD
	TimeIn  *string `json:"time_in,omitempty"`  // RFC3339
	TimeOut *string `json:"time_out,omitempty"` // RFC3339
	Status  *string `json:"status,omitempty"`
}

func (r *UpdateRecordRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil && *r.Date != "" {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.TimeIn != nil && *r.TimeIn != "" {
		if _, valid := validator.IsValidDateTime(*r.TimeIn); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "time_in",
				Message: "time_in must be an RFC3339 timestamp",
			})
		}
	}

	if r.TimeOut != nil && *r.TimeOut != "" {
		if _, valid := validator.IsValidDateTime(*r.TimeOut); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "time_out",
				Message: "time_out must be an RFC3339 timestamp",
			})
		}
	}

	if r.Status != nil && *r.Status != "" {
		validStatuses := []string{string(StatusOvertime), string(StatusUndertime), string(StatusExactTime)}
		if !validator.IsInSlice(strings.ToUpper(*r.Status), validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: OVERTIME, UNDERTIME, EXACT_TIME",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

func (r *BulkDeleteRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "at least one record id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
