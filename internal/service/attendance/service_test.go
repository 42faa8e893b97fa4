package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/storemate/storemate-backend-go/internal/domain/attendance"
	"github.com/storemate/storemate-backend-go/internal/domain/employee"
	"github.com/storemate/storemate-backend-go/internal/pkg/qr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Record
	seq     int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: map[string]attendance.Record{}}
}

func (f *fakeAttendanceRepo) Create(_ context.Context, record attendance.Record) (attendance.Record, error) {
	for _, existing := range f.records {
		if existing.EmployeeID == record.EmployeeID && existing.Date.Equal(record.Date) {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
	}
	f.seq++
	record.ID = fmt.Sprintf("rec-%d", f.seq)
	record.CreatedAt = time.Now()
	record.UpdatedAt = record.CreatedAt
	f.records[record.ID] = record
	return record, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Record, error) {
	record, ok := f.records[id]
	if !ok {
		return attendance.Record{}, attendance.ErrRecordNotFound
	}
	return record, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	for _, record := range f.records {
		if record.EmployeeID == employeeID && record.Date.Equal(date) {
			r := record
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, record attendance.Record) error {
	if _, ok := f.records[record.ID]; !ok {
		return attendance.ErrRecordNotFound
	}
	record.UpdatedAt = time.Now()
	f.records[record.ID] = record
	return nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.RecordFilter) ([]attendance.Record, int64, error) {
	var out []attendance.Record
	for _, record := range f.records {
		out = append(out, record)
	}
	return out, int64(len(out)), nil
}

func (f *fakeAttendanceRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.records[id]; !ok {
		return attendance.ErrRecordNotFound
	}
	delete(f.records, id)
	return nil
}

func (f *fakeAttendanceRepo) DeleteMany(_ context.Context, ids []string) (int64, error) {
	var deleted int64
	for _, id := range ids {
		if _, ok := f.records[id]; ok {
			delete(f.records, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeAttendanceRepo) SummarizeByEmployee(_ context.Context, _, _ time.Time) ([]attendance.EmployeeSummary, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	f.employees[e.ID] = e
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(_ context.Context, code string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.EmployeeCode == code {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(_ context.Context, e employee.Employee) error {
	f.employees[e.ID] = e
	return nil
}

func (f *fakeEmployeeRepo) UpdateBadgeSecret(_ context.Context, id string, secret string) error {
	e := f.employees[id]
	e.QRBadgeSecret = secret
	f.employees[id] = e
	return nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.Filter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func setupService(t *testing.T, clock time.Time) (attendance.Service, *fakeAttendanceRepo, *fakeEmployeeRepo) {
	t.Helper()

	secret, _, err := qr.GenerateBadgeSecret("storemate-test", "EMP-0001")
	require.NoError(t, err)

	employees := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:               "emp-1",
			EmployeeCode:     "EMP-0001",
			FirstName:        "Ayu",
			LastName:         "Santoso",
			Position:         "Cashier",
			EmploymentStatus: employee.StatusActive,
			QRBadgeSecret:    secret,
		},
		"emp-2": {
			ID:               "emp-2",
			EmployeeCode:     "EMP-0002",
			FirstName:        "Budi",
			LastName:         "Wijaya",
			Position:         "Stocker",
			EmploymentStatus: employee.StatusInactive,
			QRBadgeSecret:    secret,
		},
	}}
	records := newFakeAttendanceRepo()

	original := now
	now = func() time.Time { return clock }
	t.Cleanup(func() { now = original })

	svc := NewAttendanceService(records, employees, time.Local)
	return svc, records, employees
}

func clockAt(hour, min int) time.Time {
	return time.Date(2025, time.March, 10, hour, min, 0, 0, time.Local)
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("first check-in of the day classifies against the shift start", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(8, 15))

		resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)

		assert.Equal(t, string(attendance.StatusUndertime), resp.Status)
		assert.Equal(t, "2025-03-10", resp.Date)
		assert.Equal(t, "Ayu Santoso", resp.EmployeeName)
		require.NotNil(t, resp.TimeIn)
		assert.Nil(t, resp.TimeOut)
	})

	t.Run("early arrival is overtime", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(7, 45))

		resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusOvertime), resp.Status)
	})

	t.Run("fills in a manual record created without a check-in", func(t *testing.T) {
		svc, records, _ := setupService(t, clockAt(8, 15))

		created, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
			EmployeeID: "emp-1",
			Date:       "2025-03-10",
		})
		require.NoError(t, err)
		require.Nil(t, created.TimeIn)

		resp, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)

		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, string(attendance.StatusUndertime), resp.Status)
		require.NotNil(t, resp.TimeIn)
		assert.Len(t, records.records, 1)
	})

	t.Run("second check-in on the same day is rejected", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(8, 0))

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)

		_, err = svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})

	t.Run("inactive employee cannot check in", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(8, 0))

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-2"})
		assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
	})

	t.Run("unknown employee", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(8, 0))

		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "nope"})
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})
}

func TestCheckOut(t *testing.T) {
	ctx := context.Background()

	checkIn := func(t *testing.T, svc attendance.Service, at time.Time) {
		t.Helper()
		original := now
		now = func() time.Time { return at }
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
		now = original
		require.NoError(t, err)
	}

	t.Run("check-out without check-in is rejected", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(18, 0))

		_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
		assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	})

	t.Run("late departure on day shift is overtime", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(18, 30))
		checkIn(t, svc, clockAt(8, 0))

		resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)

		assert.Equal(t, string(attendance.StatusOvertime), resp.Status)
		require.NotNil(t, resp.TimeOut)
	})

	t.Run("early departure is undertime", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(17, 45))
		checkIn(t, svc, clockAt(8, 0))

		resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusUndertime), resp.Status)
	})

	t.Run("evening check-in resolves the check-out against the evening shift", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(22, 0))
		checkIn(t, svc, clockAt(19, 0))

		resp, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusExactTime), resp.Status)
	})

	t.Run("double check-out is rejected", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(18, 0))
		checkIn(t, svc, clockAt(8, 0))

		_, err := svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
		require.NoError(t, err)

		_, err = svc.CheckOut(ctx, attendance.CheckOutRequest{EmployeeID: "emp-1"})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	})
}

func TestScanQR(t *testing.T) {
	ctx := context.Background()
	clock := clockAt(8, 0)

	t.Run("valid badge code checks the employee in", func(t *testing.T) {
		svc, _, employees := setupService(t, clock)

		code, err := totp.GenerateCode(employees.employees["emp-1"].QRBadgeSecret, clock)
		require.NoError(t, err)

		resp, err := svc.ScanQR(ctx, attendance.QRScanRequest{
			EmployeeID: "emp-1",
			Code:       code,
			Event:      "CHECK_IN",
		})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusExactTime), resp.Status)
	})

	t.Run("wrong code is rejected before any clock event", func(t *testing.T) {
		svc, records, employees := setupService(t, clock)

		code, err := totp.GenerateCode(employees.employees["emp-1"].QRBadgeSecret, clock)
		require.NoError(t, err)
		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}

		_, err = svc.ScanQR(ctx, attendance.QRScanRequest{
			EmployeeID: "emp-1",
			Code:       wrong,
			Event:      "CHECK_IN",
		})
		assert.ErrorIs(t, err, employee.ErrInvalidBadgeCode)
		assert.Empty(t, records.records)
	})

	t.Run("check-out event delegates to CheckOut", func(t *testing.T) {
		svc, _, employees := setupService(t, clock)

		code, err := totp.GenerateCode(employees.employees["emp-1"].QRBadgeSecret, clock)
		require.NoError(t, err)

		_, err = svc.ScanQR(ctx, attendance.QRScanRequest{
			EmployeeID: "emp-1",
			Code:       code,
			Event:      "CHECK_OUT",
		})
		assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	})
}

func TestCreateRecord(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	t.Run("status is classified from the provided times", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(12, 0))

		resp, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
			EmployeeID: "emp-1",
			Date:       "2025-03-10",
			TimeIn:     strPtr(clockAt(8, 0).Format(time.RFC3339)),
			TimeOut:    strPtr(clockAt(18, 30).Format(time.RFC3339)),
		})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusOvertime), resp.Status)
	})

	t.Run("explicit status wins over the classifier", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(12, 0))

		resp, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
			EmployeeID: "emp-1",
			Date:       "2025-03-10",
			TimeIn:     strPtr(clockAt(8, 0).Format(time.RFC3339)),
			Status:     strPtr("EXACT_TIME"),
		})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusExactTime), resp.Status)
	})

	t.Run("time_out before time_in is rejected", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(12, 0))

		_, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
			EmployeeID: "emp-1",
			Date:       "2025-03-10",
			TimeIn:     strPtr(clockAt(18, 0).Format(time.RFC3339)),
			TimeOut:    strPtr(clockAt(8, 0).Format(time.RFC3339)),
		})
		assert.ErrorIs(t, err, attendance.ErrTimeOutBeforeTimeIn)
	})

	t.Run("time_out without time_in is rejected", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(12, 0))

		_, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
			EmployeeID: "emp-1",
			Date:       "2025-03-10",
			TimeOut:    strPtr(clockAt(18, 0).Format(time.RFC3339)),
		})
		assert.ErrorIs(t, err, attendance.ErrTimeOutWithoutTimeIn)
	})
}

func TestUpdateRecord(t *testing.T) {
	ctx := context.Background()

	strPtr := func(s string) *string { return &s }

	seed := func(t *testing.T, svc attendance.Service) string {
		t.Helper()
		resp, err := svc.CreateRecord(ctx, attendance.CreateRecordRequest{
			EmployeeID: "emp-1",
			Date:       "2025-03-10",
			TimeIn:     strPtr(clockAt(8, 0).Format(time.RFC3339)),
			TimeOut:    strPtr(clockAt(18, 0).Format(time.RFC3339)),
		})
		require.NoError(t, err)
		return resp.ID
	}

	t.Run("changing a clock time recomputes the status", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(12, 0))
		id := seed(t, svc)

		resp, err := svc.UpdateRecord(ctx, attendance.UpdateRecordRequest{
			ID:      id,
			TimeOut: strPtr(clockAt(17, 0).Format(time.RFC3339)),
		})
		require.NoError(t, err)
		assert.Equal(t, string(attendance.StatusUndertime), resp.Status)
	})

	t.Run("empty time_out clears the stored value and reclassifies", func(t *testing.T) {
		svc, records, _ := setupService(t, clockAt(12, 0))
		id := seed(t, svc)

		resp, err := svc.UpdateRecord(ctx, attendance.UpdateRecordRequest{
			ID:      id,
			TimeOut: strPtr(""),
		})
		require.NoError(t, err)

		assert.Nil(t, resp.TimeOut)
		assert.Equal(t, string(attendance.StatusExactTime), resp.Status)
		assert.Nil(t, records.records[id].TimeOut)
	})

	t.Run("reordering times is rejected", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(12, 0))
		id := seed(t, svc)

		_, err := svc.UpdateRecord(ctx, attendance.UpdateRecordRequest{
			ID:      id,
			TimeOut: strPtr(clockAt(7, 0).Format(time.RFC3339)),
		})
		assert.ErrorIs(t, err, attendance.ErrTimeOutBeforeTimeIn)
	})

	t.Run("unknown record", func(t *testing.T) {
		svc, _, _ := setupService(t, clockAt(12, 0))

		_, err := svc.UpdateRecord(ctx, attendance.UpdateRecordRequest{ID: "nope"})
		assert.ErrorIs(t, err, attendance.ErrRecordNotFound)
	})
}

func TestBulkDeleteRecords(t *testing.T) {
	ctx := context.Background()

	svc, records, _ := setupService(t, clockAt(8, 0))

	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	var ids []string
	for id := range records.records {
		ids = append(ids, id)
	}
	ids = append(ids, "missing")

	deleted, err := svc.BulkDeleteRecords(ctx, attendance.BulkDeleteRequest{IDs: ids})
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
	assert.Empty(t, records.records)
}
