package leaveimport

import "github.com/cmlabs-hris/leave-import-go/internal/pkg/validator"

// ImportRequest carries one upload into the import service.
type ImportRequest struct {
	CompanyID      string
	CreatedBy      string
	SourceFilePath string
	Rows           []RawImportRow
	// StartRow is the spreadsheet row number of the first data row.
	StartRow int
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if validator.IsEmpty(r.CreatedBy) {
		errs = append(errs, validator.ValidationError{
			Field:   "created_by",
			Message: "created_by is required",
		})
	}

	if r.StartRow < 1 {
		errs = append(errs, validator.ValidationError{
			Field:   "start_row",
			Message: "start_row must be a positive integer",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ImportSummary is the partial-success report for one batch.
type ImportSummary struct {
	BatchID        string             `json:"batch_id,omitempty"`
	TotalRows      int                `json:"total_rows"`
	ImportedCount  int                `json:"imported_count"`
	DuplicateCount int                `json:"duplicate_count"`
	RejectedCount  int                `json:"rejected_count"`
	Errors         []LeaveImportError `json:"errors,omitempty"`
}

type ImportBatchResponse struct {
	ID             string `json:"batch_id"`
	CompanyID      string `json:"company_id"`
	SourceFilePath string `json:"source_file_path"`
	TotalRows      int    `json:"total_rows"`
	ImportedCount  int    `json:"imported_count"`
	DuplicateCount int    `json:"duplicate_count"`
	RejectedCount  int    `json:"rejected_count"`
	CreatedBy      string `json:"created_by"`
	CreatedAt      string `json:"created_at"`
}

func ToImportBatchResponse(b ImportBatch) ImportBatchResponse {
	return ImportBatchResponse{
		ID:             b.ID,
		CompanyID:      b.CompanyID,
		SourceFilePath: b.SourceFilePath,
		TotalRows:      b.TotalRows,
		ImportedCount:  b.ImportedCount,
		DuplicateCount: b.DuplicateCount,
		RejectedCount:  b.RejectedCount,
		CreatedBy:      b.CreatedBy,
		CreatedAt:      b.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
