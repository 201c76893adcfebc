package employee

import "time"

// Employee is the slice of the employee record the leave importer needs:
// resolving external employee codes from spreadsheets to internal IDs.
type Employee struct {
	ID           string
	CompanyID    string
	EmployeeCode string
	FullName     string
	IsActive     bool
	HireDate     time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
