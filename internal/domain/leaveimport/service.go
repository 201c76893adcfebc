package leaveimport

import (
	"context"
	"io"
)

// MaxImportRows bounds one import batch. Enforced by the orchestrator, not
// by the per-row parser.
const MaxImportRows = 1000

type ImportService interface {
	// ParseRows runs every raw row through the row validator. startRow is
	// the spreadsheet row number of the first data row (1-based, after the
	// header row).
	ParseRows(rows []RawImportRow, startRow int) (BatchParseResult, error)

	// Preview parses without persisting anything (dry run).
	Preview(ctx context.Context, companyID string, rows []RawImportRow, startRow int) (ImportSummary, error)

	// ImportLeaveRequests parses, drops cross-batch duplicates, and persists
	// the surviving rows. Partial success: rejected rows are reported in the
	// summary, they never abort the batch.
	ImportLeaveRequests(ctx context.Context, req ImportRequest) (ImportSummary, error)

	// WriteTemplate writes the downloadable xlsx import template.
	WriteTemplate(w io.Writer) error

	GetBatch(ctx context.Context, id string) (ImportBatch, error)
	ListBatches(ctx context.Context, companyID string) ([]ImportBatch, error)
}
