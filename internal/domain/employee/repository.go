package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, companyID string, employeeCode string) (Employee, error)
	// GetByEmployeeCodes resolves a batch of external codes in one query,
	// keyed by code. Codes with no match are simply absent from the map.
	GetByEmployeeCodes(ctx context.Context, companyID string, codes []string) (map[string]Employee, error)
}
