package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
	"github.com/cmlabs-hris/leave-import-go/internal/pkg/database"
	svc "github.com/cmlabs-hris/leave-import-go/internal/service/leaveimport"
)

type leaveImportRepositoryImpl struct {
	db *database.DB
}

func NewLeaveImportRepository(db *database.DB) leaveimport.LeaveImportRepository {
	return &leaveImportRepositoryImpl{db: db}
}

// FindExistingKeys implements leaveimport.LeaveImportRepository.
func (r *leaveImportRepositoryImpl) FindExistingKeys(ctx context.Context, companyID string, keys []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(keys))
	if len(keys) == 0 {
		return existing, nil
	}

	q := GetQuerier(ctx, r.db)
	query := `
		SELECT duplicate_key
		FROM leave_requests
		WHERE company_id = $1 AND duplicate_key = ANY($2)
	`
	rows, err := q.Query(ctx, query, companyID, keys)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		existing[key] = true
	}
	return existing, rows.Err()
}

// CreateBatch implements leaveimport.LeaveImportRepository. The batch record
// and every leave request land in one transaction so a failed insert never
// leaves a half-imported batch behind.
func (r *leaveImportRepositoryImpl) CreateBatch(ctx context.Context, batch leaveimport.ImportBatch, rows []leaveimport.ParsedLeaveImportRow, ids map[string]string) (leaveimport.ImportBatch, error) {
	err := WithTransaction(ctx, r.db, func(txCtx context.Context, tx pgx.Tx) error {
		insertBatch := `
			INSERT INTO leave_import_batches
				(id, company_id, source_file_path, total_rows, imported_count, duplicate_count, rejected_count, created_by, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
			RETURNING created_at
		`
		err := tx.QueryRow(txCtx, insertBatch,
			batch.ID,
			batch.CompanyID,
			batch.SourceFilePath,
			batch.TotalRows,
			batch.ImportedCount,
			batch.DuplicateCount,
			batch.RejectedCount,
			batch.CreatedBy,
		).Scan(&batch.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert import batch: %w", err)
		}

		insertRequest := `
			INSERT INTO leave_requests
				(id, company_id, batch_id, employee_id, leave_type, start_date, end_date, reason,
				 is_half_day, is_paid_leave, status, review_notes, reviewed_at, applied_days,
				 duplicate_key, source_row, created_at)
			VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW())
		`
		pending := &pgx.Batch{}
		for _, row := range rows {
			key := svc.BuildDuplicateKey(ids[row.EmployeeID], row.LeaveType, row.StartDate, row.EndDate)
			pending.Queue(insertRequest,
				batch.CompanyID,
				batch.ID,
				ids[row.EmployeeID],
				string(row.LeaveType),
				row.StartDate,
				row.EndDate,
				row.Reason,
				row.IsHalfDay,
				row.IsPaidLeave,
				string(row.Status),
				row.ReviewNotes,
				row.ReviewedAt,
				row.AppliedDays,
				key,
				row.RowNumber,
			)
		}
		results := tx.SendBatch(txCtx, pending)
		defer results.Close()
		for range rows {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("insert leave request: %w", err)
			}
		}
		return results.Close()
	})
	if err != nil {
		return leaveimport.ImportBatch{}, err
	}
	return batch, nil
}

const batchColumns = `
	b.id, b.company_id, b.source_file_path, b.total_rows, b.imported_count,
	b.duplicate_count, b.rejected_count, b.created_by, b.created_at
`

func scanBatch(row pgx.Row) (leaveimport.ImportBatch, error) {
	var b leaveimport.ImportBatch
	var createdAt time.Time
	err := row.Scan(
		&b.ID,
		&b.CompanyID,
		&b.SourceFilePath,
		&b.TotalRows,
		&b.ImportedCount,
		&b.DuplicateCount,
		&b.RejectedCount,
		&b.CreatedBy,
		&createdAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return leaveimport.ImportBatch{}, leaveimport.ErrBatchNotFound
	}
	b.CreatedAt = createdAt
	return b, err
}

// GetBatchByID implements leaveimport.LeaveImportRepository.
func (r *leaveImportRepositoryImpl) GetBatchByID(ctx context.Context, id string) (leaveimport.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + batchColumns + ` FROM leave_import_batches b WHERE b.id = $1`
	return scanBatch(q.QueryRow(ctx, query, id))
}

// ListBatchesByCompanyID implements leaveimport.LeaveImportRepository.
func (r *leaveImportRepositoryImpl) ListBatchesByCompanyID(ctx context.Context, companyID string) ([]leaveimport.ImportBatch, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + batchColumns + `
		FROM leave_import_batches b
		WHERE b.company_id = $1
		ORDER BY b.created_at DESC
	`
	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []leaveimport.ImportBatch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}
	return batches, rows.Err()
}
