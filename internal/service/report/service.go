package report

import (
	"context"
	"time"

	"github.com/storemate/storemate-backend-go/internal/domain/attendance"
	"github.com/storemate/storemate-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	reportRepo     report.Repository
	attendanceRepo attendance.Repository
	loc            *time.Location
}

// NewReportService creates a new instance of report.Service.
func NewReportService(reportRepo report.Repository, attendanceRepo attendance.Repository, loc *time.Location) report.Service {
	if loc == nil {
		loc = time.Local
	}
	return &ReportServiceImpl{
		reportRepo:     reportRepo,
		attendanceRepo: attendanceRepo,
		loc:            loc,
	}
}

func (s *ReportServiceImpl) parseRange(req report.DateRangeRequest) (time.Time, time.Time, error) {
	if err := req.Validate(); err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, err := time.ParseInLocation("2006-01-02", req.StartDate, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.ParseInLocation("2006-01-02", req.EndDate, s.loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}

// AttendanceSummary implements report.Service.
func (s *ReportServiceImpl) AttendanceSummary(ctx context.Context, req report.DateRangeRequest) (report.AttendanceSummaryResponse, error) {
	start, end, err := s.parseRange(req)
	if err != nil {
		return report.AttendanceSummaryResponse{}, err
	}

	summaries, err := s.attendanceRepo.SummarizeByEmployee(ctx, start, end)
	if err != nil {
		return report.AttendanceSummaryResponse{}, err
	}

	rows := make([]report.AttendanceSummaryRow, 0, len(summaries))
	for _, summary := range summaries {
		rows = append(rows, report.AttendanceSummaryRow{
			EmployeeID:    summary.EmployeeID,
			EmployeeName:  summary.EmployeeName,
			DaysPresent:   summary.DaysPresent,
			OvertimeDays:  summary.OvertimeDays,
			UndertimeDays: summary.UndertimeDays,
			ExactTimeDays: summary.ExactTimeDays,
			FirstActivity: timePtrToString(summary.FirstActivity),
			LastActivity:  timePtrToString(summary.LastActivity),
		})
	}

	return report.AttendanceSummaryResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Rows:      rows,
	}, nil
}

// SalesSummary implements report.Service.
func (s *ReportServiceImpl) SalesSummary(ctx context.Context, req report.DateRangeRequest) (report.SalesSummaryResponse, error) {
	start, end, err := s.parseRange(req)
	if err != nil {
		return report.SalesSummaryResponse{}, err
	}

	days, err := s.reportRepo.SalesByDay(ctx, start, end)
	if err != nil {
		return report.SalesSummaryResponse{}, err
	}

	rows := make([]report.SalesSummaryRow, 0, len(days))
	for _, day := range days {
		rows = append(rows, report.SalesSummaryRow{
			Date:       day.Date.Format("2006-01-02"),
			OrderCount: day.OrderCount,
			Revenue:    day.Revenue.StringFixed(2),
		})
	}

	return report.SalesSummaryResponse{
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Rows:      rows,
	}, nil
}
