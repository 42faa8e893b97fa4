package attendance

import (
	"context"
)

// Service defines business logic for attendance operations
type Service interface {
	// CheckIn records the first clock event of an employee's day
	CheckIn(ctx context.Context, req CheckInRequest) (RecordResponse, error)

	// CheckOut closes the employee's open record for today
	CheckOut(ctx context.Context, req CheckOutRequest) (RecordResponse, error)

	// ScanQR verifies a QR badge code and delegates to CheckIn or CheckOut
	ScanQR(ctx context.Context, req QRScanRequest) (RecordResponse, error)

	// ListRecords retrieves records with filters (operator view)
	ListRecords(ctx context.Context, filter RecordFilter) (ListRecordsResponse, error)

	// GetRecord retrieves a single record by ID
	GetRecord(ctx context.Context, id string) (RecordResponse, error)

	// CreateRecord creates a record directly (operator override)
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)

	// UpdateRecord fixes a record's clock times or status (operator override)
	UpdateRecord(ctx context.Context, req UpdateRecordRequest) (RecordResponse, error)

	// DeleteRecord removes a single record
	DeleteRecord(ctx context.Context, id string) error

	// BulkDeleteRecords removes records in bulk
	BulkDeleteRecords(ctx context.Context, req BulkDeleteRequest) (int64, error)
}
