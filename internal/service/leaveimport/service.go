package leaveimport

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
	"github.com/cmlabs-hris/leave-import-go/internal/pkg/database"
	"github.com/cmlabs-hris/leave-import-go/internal/pkg/spreadsheet"
)

// Rows are independent, so parsing fans out across a small worker pool.
const parseWorkers = 8

type ImportServiceImpl struct {
	db *database.DB
	leaveimport.LeaveImportRepository
	employee.EmployeeRepository
}

func NewImportService(db *database.DB, importRepository leaveimport.LeaveImportRepository, employeeRepository employee.EmployeeRepository) *ImportServiceImpl {
	return &ImportServiceImpl{
		db:                    db,
		LeaveImportRepository: importRepository,
		EmployeeRepository:    employeeRepository,
	}
}

// ParseRows feeds every raw row through the row validator. Results are
// slotted by index, so row numbers stay correct no matter which worker
// parsed which row.
func (s *ImportServiceImpl) ParseRows(rows []leaveimport.RawImportRow, startRow int) (leaveimport.BatchParseResult, error) {
	if len(rows) == 0 {
		return leaveimport.BatchParseResult{}, leaveimport.ErrNoDataRows
	}
	if len(rows) > leaveimport.MaxImportRows {
		return leaveimport.BatchParseResult{}, leaveimport.ErrTooManyRows
	}

	results := make([]leaveimport.RowResult, len(rows))
	g := new(errgroup.Group)
	g.SetLimit(parseWorkers)
	for i, row := range rows {
		i, row := i, row
		g.Go(func() error {
			results[i] = ParseRow(row, startRow+i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return leaveimport.BatchParseResult{}, err
	}

	var out leaveimport.BatchParseResult
	for _, res := range results {
		if res.Data != nil {
			out.Rows = append(out.Rows, *res.Data)
		} else {
			out.Errors = append(out.Errors, *res.Err)
		}
	}
	return out, nil
}

// Preview runs the full import pipeline without persisting anything.
func (s *ImportServiceImpl) Preview(ctx context.Context, companyID string, rows []leaveimport.RawImportRow, startRow int) (leaveimport.ImportSummary, error) {
	parsed, err := s.ParseRows(rows, startRow)
	if err != nil {
		return leaveimport.ImportSummary{}, err
	}

	resolved, ids, resolveErrs := s.resolveEmployees(ctx, companyID, parsed.Rows)

	keep, duplicates, err := s.dropDuplicates(ctx, companyID, resolved, ids)
	if err != nil {
		return leaveimport.ImportSummary{}, err
	}

	errs := append(parsed.Errors, resolveErrs...)
	sortErrors(errs)

	return leaveimport.ImportSummary{
		TotalRows:      len(rows),
		ImportedCount:  len(keep),
		DuplicateCount: duplicates,
		RejectedCount:  len(errs),
		Errors:         errs,
	}, nil
}

// ImportLeaveRequests parses a batch, drops rows whose duplicate key already
// exists, and persists the remainder in one transaction. Rejected rows are
// reported in the summary; they never abort the batch.
func (s *ImportServiceImpl) ImportLeaveRequests(ctx context.Context, req leaveimport.ImportRequest) (leaveimport.ImportSummary, error) {
	if err := req.Validate(); err != nil {
		return leaveimport.ImportSummary{}, err
	}

	parsed, err := s.ParseRows(req.Rows, req.StartRow)
	if err != nil {
		return leaveimport.ImportSummary{}, err
	}

	resolved, ids, resolveErrs := s.resolveEmployees(ctx, req.CompanyID, parsed.Rows)

	keep, duplicates, err := s.dropDuplicates(ctx, req.CompanyID, resolved, ids)
	if err != nil {
		return leaveimport.ImportSummary{}, err
	}

	errs := append(parsed.Errors, resolveErrs...)
	sortErrors(errs)

	batch := leaveimport.ImportBatch{
		ID:             uuid.NewString(),
		CompanyID:      req.CompanyID,
		SourceFilePath: req.SourceFilePath,
		TotalRows:      len(req.Rows),
		ImportedCount:  len(keep),
		DuplicateCount: duplicates,
		RejectedCount:  len(errs),
		CreatedBy:      req.CreatedBy,
	}
	created, err := s.LeaveImportRepository.CreateBatch(ctx, batch, keep, ids)
	if err != nil {
		return leaveimport.ImportSummary{}, fmt.Errorf("failed to persist import batch: %w", err)
	}

	return leaveimport.ImportSummary{
		BatchID:        created.ID,
		TotalRows:      len(req.Rows),
		ImportedCount:  len(keep),
		DuplicateCount: duplicates,
		RejectedCount:  len(errs),
		Errors:         errs,
	}, nil
}

func (s *ImportServiceImpl) WriteTemplate(w io.Writer) error {
	return spreadsheet.WriteTemplate(w, TemplateColumns, [][]string{sampleRow})
}

func (s *ImportServiceImpl) GetBatch(ctx context.Context, id string) (leaveimport.ImportBatch, error) {
	return s.LeaveImportRepository.GetBatchByID(ctx, id)
}

func (s *ImportServiceImpl) ListBatches(ctx context.Context, companyID string) ([]leaveimport.ImportBatch, error) {
	return s.LeaveImportRepository.ListBatchesByCompanyID(ctx, companyID)
}

// resolveEmployees maps spreadsheet employee codes to internal IDs in one
// batch lookup. Rows referencing unknown or inactive employees become
// row-scoped errors.
func (s *ImportServiceImpl) resolveEmployees(ctx context.Context, companyID string, rows []leaveimport.ParsedLeaveImportRow) ([]leaveimport.ParsedLeaveImportRow, map[string]string, []leaveimport.LeaveImportError) {
	if len(rows) == 0 {
		return nil, map[string]string{}, nil
	}

	seen := make(map[string]bool, len(rows))
	codes := make([]string, 0, len(rows))
	for _, row := range rows {
		if !seen[row.EmployeeID] {
			seen[row.EmployeeID] = true
			codes = append(codes, row.EmployeeID)
		}
	}

	employees, err := s.EmployeeRepository.GetByEmployeeCodes(ctx, companyID, codes)
	if err != nil {
		// Bulk lookup failure is a system error; report it against every row.
		errs := make([]leaveimport.LeaveImportError, 0, len(rows))
		for _, row := range rows {
			errs = append(errs, leaveimport.LeaveImportError{
				RowNumber:  row.RowNumber,
				EmployeeID: row.EmployeeID,
				Reason:     "Employee lookup failed",
			})
		}
		return nil, map[string]string{}, errs
	}

	ids := make(map[string]string, len(employees))
	var resolved []leaveimport.ParsedLeaveImportRow
	var errs []leaveimport.LeaveImportError
	for _, row := range rows {
		emp, ok := employees[row.EmployeeID]
		if !ok || !emp.IsActive {
			errs = append(errs, leaveimport.LeaveImportError{
				RowNumber:  row.RowNumber,
				EmployeeID: row.EmployeeID,
				Reason:     "Employee ID not found",
			})
			continue
		}
		ids[row.EmployeeID] = emp.ID
		resolved = append(resolved, row)
	}
	return resolved, ids, errs
}

// dropDuplicates removes rows whose duplicate key matches a stored leave
// request or an earlier row of the same batch.
func (s *ImportServiceImpl) dropDuplicates(ctx context.Context, companyID string, rows []leaveimport.ParsedLeaveImportRow, ids map[string]string) ([]leaveimport.ParsedLeaveImportRow, int, error) {
	if len(rows) == 0 {
		return nil, 0, nil
	}

	keys := make([]string, 0, len(rows))
	for _, row := range rows {
		keys = append(keys, BuildDuplicateKey(ids[row.EmployeeID], row.LeaveType, row.StartDate, row.EndDate))
	}

	existing, err := s.LeaveImportRepository.FindExistingKeys(ctx, companyID, keys)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to check duplicate keys: %w", err)
	}

	seen := make(map[string]bool, len(rows))
	var keep []leaveimport.ParsedLeaveImportRow
	duplicates := 0
	for i, row := range rows {
		key := keys[i]
		if existing[key] || seen[key] {
			duplicates++
			continue
		}
		seen[key] = true
		keep = append(keep, row)
	}
	return keep, duplicates, nil
}

func sortErrors(errs []leaveimport.LeaveImportError) {
	sort.Slice(errs, func(i, j int) bool {
		return errs[i].RowNumber < errs[j].RowNumber
	})
}
