package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/employee"
	"github.com/cmlabs-hris/leave-import-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `
	e.id, e.company_id, e.employee_code, e.full_name, e.is_active,
	e.hire_date, e.created_at, e.updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID,
		&e.CompanyID,
		&e.EmployeeCode,
		&e.FullName,
		&e.IsActive,
		&e.HireDate,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `SELECT ` + employeeColumns + ` FROM employees e WHERE e.id = $1 AND e.deleted_at IS NULL`
	return scanEmployee(q.QueryRow(ctx, query, id))
}

// GetByEmployeeCode implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeCode(ctx context.Context, companyID string, employeeCode string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.company_id = $1 AND e.employee_code = $2 AND e.deleted_at IS NULL
	`
	return scanEmployee(q.QueryRow(ctx, query, companyID, employeeCode))
}

// GetByEmployeeCodes implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByEmployeeCodes(ctx context.Context, companyID string, codes []string) (map[string]employee.Employee, error) {
	result := make(map[string]employee.Employee, len(codes))
	if len(codes) == 0 {
		return result, nil
	}

	q := GetQuerier(ctx, r.db)
	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		WHERE e.company_id = $1 AND e.employee_code = ANY($2) AND e.deleted_at IS NULL
	`
	rows, err := q.Query(ctx, query, companyID, codes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		result[e.EmployeeCode] = e
	}
	return result, rows.Err()
}
