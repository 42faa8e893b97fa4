package attendance

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/storemate/storemate-backend-go/internal/domain/attendance"
	"github.com/storemate/storemate-backend-go/internal/domain/employee"
	"github.com/storemate/storemate-backend-go/internal/pkg/qr"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	employeeRepo   employee.Repository
	loc            *time.Location
}

// NewAttendanceService creates a new instance of attendance.Service. The
// location anchors work days: a record's date is the event's calendar day
// in this timezone.
func NewAttendanceService(attendanceRepo attendance.Repository, employeeRepo employee.Repository, loc *time.Location) attendance.Service {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
	}
}

// now is swapped in tests.
var now = time.Now

// workDay truncates an event time to local midnight.
func (a *AttendanceServiceImpl) workDay(t time.Time) time.Time {
	local := t.In(a.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, a.loc)
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

func toRecordResponse(record attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:               record.ID,
		EmployeeID:       record.EmployeeID,
		EmployeePosition: record.EmployeePosition,
		Date:             record.Date.Format("2006-01-02"),
		TimeIn:           timePtrToString(record.TimeIn),
		TimeOut:          timePtrToString(record.TimeOut),
		Status:           string(record.Status),
		CreatedAt:        record.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        record.UpdatedAt.Format(time.RFC3339),
	}
	if record.EmployeeName != nil {
		resp.EmployeeName = *record.EmployeeName
	}
	return resp
}

// activeEmployee loads an employee and rejects inactive ones. Both the QR
// kiosk path and the credentialed path go through this gate.
func (a *AttendanceServiceImpl) activeEmployee(ctx context.Context, id string) (employee.Employee, error) {
	emp, err := a.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if !emp.IsActive() {
		return employee.Employee{}, employee.ErrEmployeeInactive
	}
	return emp, nil
}

// CheckIn implements attendance.Service.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := a.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	eventTime := now().In(a.loc)
	date := a.workDay(eventTime)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if existing != nil && existing.HasCheckedIn() {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedIn
	}

	shift := attendance.ResolveShift(eventTime, attendance.EventCheckIn, nil)
	status := attendance.Classify(eventTime, attendance.EventCheckIn, shift)

	// An operator may have created today's record ahead of time without a
	// check-in. Fill it in rather than inserting a second row for the day.
	if existing != nil {
		existing.TimeIn = &eventTime
		existing.Status = status

		if err := a.attendanceRepo.Update(ctx, *existing); err != nil {
			return attendance.RecordResponse{}, err
		}

		updated, err := a.attendanceRepo.GetByID(ctx, existing.ID)
		if err != nil {
			return attendance.RecordResponse{}, err
		}

		name := emp.FullName()
		updated.EmployeeName = &name
		updated.EmployeePosition = &emp.Position
		return toRecordResponse(updated), nil
	}

	record := attendance.Record{
		EmployeeID: emp.ID,
		Date:       date,
		TimeIn:     &eventTime,
		Status:     status,
	}

	created, err := a.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	name := emp.FullName()
	created.EmployeeName = &name
	created.EmployeePosition = &emp.Position
	return toRecordResponse(created), nil
}

// CheckOut implements attendance.Service. The record's status is replaced
// with the check-out classification; the check-out result represents the
// completed day.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := a.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	eventTime := now().In(a.loc)
	date := a.workDay(eventTime)

	existing, err := a.attendanceRepo.GetByEmployeeAndDate(ctx, emp.ID, date)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up today's record: %w", err)
	}
	if existing == nil || !existing.HasCheckedIn() {
		return attendance.RecordResponse{}, attendance.ErrNotCheckedIn
	}
	if existing.HasCheckedOut() {
		return attendance.RecordResponse{}, attendance.ErrAlreadyCheckedOut
	}

	shift := attendance.ResolveShift(eventTime, attendance.EventCheckOut, existing.TimeIn)
	status := attendance.Classify(eventTime, attendance.EventCheckOut, shift)

	existing.TimeOut = &eventTime
	existing.Status = status

	if err := a.attendanceRepo.Update(ctx, *existing); err != nil {
		return attendance.RecordResponse{}, err
	}

	updated, err := a.attendanceRepo.GetByID(ctx, existing.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(updated), nil
}

// ScanQR implements attendance.Service. Verifies the badge code before
// delegating to CheckIn or CheckOut.
func (a *AttendanceServiceImpl) ScanQR(ctx context.Context, req attendance.QRScanRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := a.activeEmployee(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if !qr.VerifyCode(req.Code, emp.QRBadgeSecret, now()) {
		return attendance.RecordResponse{}, employee.ErrInvalidBadgeCode
	}

	if attendance.EventType(strings.ToUpper(req.Event)) == attendance.EventCheckOut {
		return a.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: emp.ID})
	}
	return a.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: emp.ID})
}

// ListRecords implements attendance.Service.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) (attendance.ListRecordsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	records, total, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, toRecordResponse(record))
	}

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Records:    responses,
	}, nil
}

// GetRecord implements attendance.Service.
func (a *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.RecordResponse, error) {
	record, err := a.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return toRecordResponse(record), nil
}

// resolveTimes parses optional RFC3339 inputs into the service location.
// Cross-field ordering is checked by callers once both sides are known.
func (a *AttendanceServiceImpl) resolveTimes(timeIn, timeOut *string) (*time.Time, *time.Time, error) {
	var in, out *time.Time
	if timeIn != nil && *timeIn != "" {
		parsed, err := time.Parse(time.RFC3339, *timeIn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse time_in: %w", err)
		}
		local := parsed.In(a.loc)
		in = &local
	}
	if timeOut != nil && *timeOut != "" {
		parsed, err := time.Parse(time.RFC3339, *timeOut)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to parse time_out: %w", err)
		}
		local := parsed.In(a.loc)
		out = &local
	}
	return in, out, nil
}

// checkTimeOrder enforces that a check-out never precedes its check-in.
func checkTimeOrder(timeIn, timeOut *time.Time) error {
	if timeOut == nil {
		return nil
	}
	if timeIn == nil {
		return attendance.ErrTimeOutWithoutTimeIn
	}
	if timeOut.Before(*timeIn) {
		return attendance.ErrTimeOutBeforeTimeIn
	}
	return nil
}

// classifyRecord recomputes status from the record's clock times. The
// check-out classification wins when present.
func classifyRecord(timeIn, timeOut *time.Time) attendance.Status {
	if timeOut != nil {
		shift := attendance.ResolveShift(*timeOut, attendance.EventCheckOut, timeIn)
		return attendance.Classify(*timeOut, attendance.EventCheckOut, shift)
	}
	if timeIn != nil {
		shift := attendance.ResolveShift(*timeIn, attendance.EventCheckIn, nil)
		return attendance.Classify(*timeIn, attendance.EventCheckIn, shift)
	}
	return ""
}

// CreateRecord implements attendance.Service. Status is classified from the
// provided times unless the request pins one explicitly.
func (a *AttendanceServiceImpl) CreateRecord(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	emp, err := a.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, a.loc)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	timeIn, timeOut, err := a.resolveTimes(req.TimeIn, req.TimeOut)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	if err := checkTimeOrder(timeIn, timeOut); err != nil {
		return attendance.RecordResponse{}, err
	}

	status := classifyRecord(timeIn, timeOut)
	if req.Status != nil && *req.Status != "" {
		status = attendance.Status(strings.ToUpper(*req.Status))
	}

	record := attendance.Record{
		EmployeeID: emp.ID,
		Date:       date,
		TimeIn:     timeIn,
		TimeOut:    timeOut,
		Status:     status,
	}

	created, err := a.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	name := emp.FullName()
	created.EmployeeName = &name
	created.EmployeePosition = &emp.Position
	return toRecordResponse(created), nil
}

// UpdateRecord implements attendance.Service. Only provided fields change;
// status is recomputed from the resulting times unless pinned explicitly.
func (a *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	record, err := a.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	if req.Date != nil && *req.Date != "" {
		date, err := time.ParseInLocation("2006-01-02", *req.Date, a.loc)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		record.Date = date
	}

	timeIn, timeOut := record.TimeIn, record.TimeOut
	if req.TimeIn != nil || req.TimeOut != nil {
		newIn, newOut, err := a.resolveTimes(req.TimeIn, req.TimeOut)
		if err != nil {
			return attendance.RecordResponse{}, err
		}
		if req.TimeIn != nil {
			timeIn = newIn
		}
		if req.TimeOut != nil {
			timeOut = newOut
		}
		if err := checkTimeOrder(timeIn, timeOut); err != nil {
			return attendance.RecordResponse{}, err
		}
	}
	record.TimeIn = timeIn
	record.TimeOut = timeOut

	record.Status = classifyRecord(record.TimeIn, record.TimeOut)
	if req.Status != nil && *req.Status != "" {
		record.Status = attendance.Status(strings.ToUpper(*req.Status))
	}

	if err := a.attendanceRepo.Update(ctx, record); err != nil {
		return attendance.RecordResponse{}, err
	}

	updated, err := a.attendanceRepo.GetByID(ctx, record.ID)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	return toRecordResponse(updated), nil
}

// DeleteRecord implements attendance.Service.
func (a *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return a.attendanceRepo.Delete(ctx, id)
}

// BulkDeleteRecords implements attendance.Service. Missing IDs are skipped
// rather than failing the batch.
func (a *AttendanceServiceImpl) BulkDeleteRecords(ctx context.Context, req attendance.BulkDeleteRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}
	return a.attendanceRepo.DeleteMany(ctx, req.IDs)
}
