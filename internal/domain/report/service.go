package report

import "context"

// Service defines the typed report endpoints
type Service interface {
	AttendanceSummary(ctx context.Context, req DateRangeRequest) (AttendanceSummaryResponse, error)
	SalesSummary(ctx context.Context, req DateRangeRequest) (SalesSummaryResponse, error)
}
