package leaveimport

import (
	"context"
)

// LeaveImportRepository - interface for leave_import_batches and imported
// leave_requests rows
type LeaveImportRepository interface {
	// FindExistingKeys returns the subset of keys already present as
	// duplicate keys of stored leave requests.
	FindExistingKeys(ctx context.Context, companyID string, keys []string) (map[string]bool, error)

	// CreateBatch persists the batch record and its leave requests in one
	// transaction. Rows must already carry internal employee IDs via ids.
	CreateBatch(ctx context.Context, batch ImportBatch, rows []ParsedLeaveImportRow, ids map[string]string) (ImportBatch, error)

	GetBatchByID(ctx context.Context, id string) (ImportBatch, error)
	ListBatchesByCompanyID(ctx context.Context, companyID string) ([]ImportBatch, error)
}
