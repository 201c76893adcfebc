package leaveimport

import "time"

// Header is the canonical column-name enum a raw spreadsheet header resolves to.
type Header string

const (
	HeaderEmployeeID  Header = "employee_id"
	HeaderLeaveType   Header = "leave_type"
	HeaderStartDate   Header = "start_date"
	HeaderEndDate     Header = "end_date"
	HeaderReason      Header = "reason"
	HeaderStatus      Header = "status"
	HeaderHalfDay     Header = "half_day"
	HeaderPaidLeave   Header = "paid_leave"
	HeaderReviewNotes Header = "review_notes"
	HeaderReviewedAt  Header = "reviewed_at"
)

// RequiredHeaders must all be present in an uploaded sheet.
var RequiredHeaders = []Header{
	HeaderEmployeeID,
	HeaderLeaveType,
	HeaderStartDate,
	HeaderEndDate,
	HeaderReason,
	HeaderStatus,
}

// OptionalHeaders may be omitted; the row parser applies defaults.
var OptionalHeaders = []Header{
	HeaderHalfDay,
	HeaderPaidLeave,
	HeaderReviewNotes,
	HeaderReviewedAt,
}

type LeaveType string

const (
	LeaveTypeCasual  LeaveType = "CASUAL"
	LeaveTypePaid    LeaveType = "PAID"
	LeaveTypeCompOff LeaveType = "COMP_OFF"
)

type LeaveStatus string

const (
	LeaveStatusPending   LeaveStatus = "PENDING"
	LeaveStatusApproved  LeaveStatus = "APPROVED"
	LeaveStatusRejected  LeaveStatus = "REJECTED"
	LeaveStatusCancelled LeaveStatus = "CANCELLED"
)

// RawImportRow maps canonical headers to untyped cell values for one
// spreadsheet line. Values may be string, float64, bool, time.Time or nil
// depending on how the reader produced them.
type RawImportRow map[Header]any

// ParsedLeaveImportRow is one validated, typed leave request ready for
// persistence. StartDate and EndDate are normalized to UTC midnight.
type ParsedLeaveImportRow struct {
	RowNumber   int
	EmployeeID  string
	LeaveType   LeaveType
	StartDate   time.Time
	EndDate     time.Time
	Reason      string
	IsHalfDay   bool
	IsPaidLeave bool
	Status      LeaveStatus
	ReviewNotes *string
	ReviewedAt  *time.Time
	AppliedDays float64
}

// LeaveImportError is a row-scoped, user-facing validation failure.
// EmployeeID is filled once the row got far enough for it to be known.
type LeaveImportError struct {
	RowNumber  int    `json:"row"`
	EmployeeID string `json:"employee_id,omitempty"`
	Reason     string `json:"reason"`
}

// RowResult is the tagged per-row outcome: exactly one of Data or Err is
// non-nil, never both, never neither.
type RowResult struct {
	Data *ParsedLeaveImportRow
	Err  *LeaveImportError
}

// BatchParseResult collects per-row outcomes for one upload.
type BatchParseResult struct {
	Rows   []ParsedLeaveImportRow
	Errors []LeaveImportError
}

// ImportBatch records one processed upload for auditing.
type ImportBatch struct {
	ID             string
	CompanyID      string
	SourceFilePath string
	TotalRows      int
	ImportedCount  int
	DuplicateCount int
	RejectedCount  int
	CreatedBy      string
	CreatedAt      time.Time
}
