package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/storemate/storemate-backend-go/internal/domain/attendance"
	"github.com/storemate/storemate-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

// Create implements attendance.Repository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (employee_id, date, time_in, time_out, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.Date,
		record.TimeIn,
		record.TimeOut,
		record.Status,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		// unique (employee_id, date): the losing writer of a concurrent
		// first check-in sees the business error, not a storage error
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.Repository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT r.id, r.employee_id, r.date, r.time_in, r.time_out, r.status,
			   r.created_at, r.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.position AS employee_position
		FROM attendance_records r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE r.id = $1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.TimeIn, &rec.TimeOut, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
		&rec.EmployeeName, &rec.EmployeePosition,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Record{}, attendance.ErrRecordNotFound
		}
		return attendance.Record{}, fmt.Errorf("failed to get attendance record by ID: %w", err)
	}

	return rec, nil
}

// GetByEmployeeAndDate implements attendance.Repository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, time_in, time_out, status, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var rec attendance.Record
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&rec.ID, &rec.EmployeeID, &rec.Date, &rec.TimeIn, &rec.TimeOut, &rec.Status,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record by employee and date: %w", err)
	}

	return &rec, nil
}

// Update implements attendance.Repository. The service merges partial input
// onto the loaded record before calling this, so every column is written:
// a nil time clears its column.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.Record) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records
		SET date = $1, time_in = $2, time_out = $3, status = $4, updated_at = $5
		WHERE id = $6
		RETURNING id`

	var updatedID string
	err := q.QueryRow(ctx, query,
		record.Date, record.TimeIn, record.TimeOut, record.Status, time.Now(), record.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to update attendance record: %w", err)
	}

	return nil
}

// List implements attendance.Repository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.Record, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND r.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (e.first_name || ' ' || e.last_name ILIKE $%d OR e.employee_code ILIKE $%d)", argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	// Date filter covers the full local calendar day
	if filter.Date != nil && *filter.Date != "" {
		baseWhere += fmt.Sprintf(" AND r.date = $%d", argIdx)
		args = append(args, *filter.Date)
		argIdx++
	}

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND r.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND r.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND r.status = $%d", argIdx)
		args = append(args, strings.ToUpper(*filter.Status))
		argIdx++
	}

	countQuery := `
		SELECT COUNT(*)
		FROM attendance_records r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE ` + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	orderByField := "r.date"
	switch filter.SortBy {
	case "employee_name":
		orderByField = "employee_name"
	case "time_in":
		orderByField = "r.time_in"
	case "time_out":
		orderByField = "r.time_out"
	case "status":
		orderByField = "r.status"
	}
	sortOrder := "DESC"
	if strings.ToLower(filter.SortOrder) == "asc" {
		sortOrder = "ASC"
	}

	selectQuery := fmt.Sprintf(`
		SELECT r.id, r.employee_id, r.date, r.time_in, r.time_out, r.status,
			   r.created_at, r.updated_at,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   e.position AS employee_position
		FROM attendance_records r
		LEFT JOIN employees e ON e.id = r.employee_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, baseWhere, orderByField, sortOrder, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Record
	for rows.Next() {
		var rec attendance.Record
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.TimeIn, &rec.TimeOut, &rec.Status,
			&rec.CreatedAt, &rec.UpdatedAt,
			&rec.EmployeeName, &rec.EmployeePosition,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, total, nil
}

// Delete implements attendance.Repository.
func (a *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, a.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}

	return nil
}

// DeleteMany implements attendance.Repository.
func (a *attendanceRepository) DeleteMany(ctx context.Context, ids []string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete attendance records: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

// SummarizeByEmployee implements attendance.Repository.
func (a *attendanceRepository) SummarizeByEmployee(ctx context.Context, startDate, endDate time.Time) ([]attendance.EmployeeSummary, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT e.id,
			   e.first_name || ' ' || e.last_name AS employee_name,
			   COUNT(r.id) AS days_present,
			   COUNT(r.id) FILTER (WHERE r.status = 'OVERTIME') AS overtime_days,
			   COUNT(r.id) FILTER (WHERE r.status = 'UNDERTIME') AS undertime_days,
			   COUNT(r.id) FILTER (WHERE r.status = 'EXACT_TIME') AS exact_time_days,
			   MIN(r.time_in) AS first_activity,
			   MAX(COALESCE(r.time_out, r.time_in)) AS last_activity
		FROM employees e
		JOIN attendance_records r ON r.employee_id = e.id
		WHERE r.date >= $1 AND r.date <= $2
		GROUP BY e.id, employee_name
		ORDER BY employee_name ASC
	`

	rows, err := q.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize attendance: %w", err)
	}
	defer rows.Close()

	var summaries []attendance.EmployeeSummary
	for rows.Next() {
		var s attendance.EmployeeSummary
		err := rows.Scan(
			&s.EmployeeID, &s.EmployeeName,
			&s.DaysPresent, &s.OvertimeDays, &s.UndertimeDays, &s.ExactTimeDays,
			&s.FirstActivity, &s.LastActivity,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance summary: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}
