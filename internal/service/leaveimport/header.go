package leaveimport

import (
	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
)

// headerAliases maps normalized header tokens to canonical headers. Built
// once, read-only during parsing.
var headerAliases = map[string]leaveimport.Header{
	"employee id":   leaveimport.HeaderEmployeeID,
	"employeeid":    leaveimport.HeaderEmployeeID,
	"employee code": leaveimport.HeaderEmployeeID,
	"emp id":        leaveimport.HeaderEmployeeID,
	"empid":         leaveimport.HeaderEmployeeID,
	"staff id":      leaveimport.HeaderEmployeeID,

	"leave type":     leaveimport.HeaderLeaveType,
	"leavetype":      leaveimport.HeaderLeaveType,
	"type":           leaveimport.HeaderLeaveType,
	"leave category": leaveimport.HeaderLeaveType,

	"start date": leaveimport.HeaderStartDate,
	"startdate":  leaveimport.HeaderStartDate,
	"from":       leaveimport.HeaderStartDate,
	"from date":  leaveimport.HeaderStartDate,
	"leave from": leaveimport.HeaderStartDate,

	"end date": leaveimport.HeaderEndDate,
	"enddate":  leaveimport.HeaderEndDate,
	"to":       leaveimport.HeaderEndDate,
	"to date":  leaveimport.HeaderEndDate,
	"leave to": leaveimport.HeaderEndDate,

	"reason":       leaveimport.HeaderReason,
	"leave reason": leaveimport.HeaderReason,
	"description":  leaveimport.HeaderReason,

	"status":          leaveimport.HeaderStatus,
	"leave status":    leaveimport.HeaderStatus,
	"approval status": leaveimport.HeaderStatus,

	"half day":    leaveimport.HeaderHalfDay,
	"halfday":     leaveimport.HeaderHalfDay,
	"is half day": leaveimport.HeaderHalfDay,

	"paid leave":    leaveimport.HeaderPaidLeave,
	"paidleave":     leaveimport.HeaderPaidLeave,
	"is paid":       leaveimport.HeaderPaidLeave,
	"is paid leave": leaveimport.HeaderPaidLeave,

	"review notes":   leaveimport.HeaderReviewNotes,
	"reviewnotes":    leaveimport.HeaderReviewNotes,
	"reviewer notes": leaveimport.HeaderReviewNotes,
	"approver notes": leaveimport.HeaderReviewNotes,

	"reviewed at": leaveimport.HeaderReviewedAt,
	"reviewedat":  leaveimport.HeaderReviewedAt,
	"reviewed on": leaveimport.HeaderReviewedAt,
	"review date": leaveimport.HeaderReviewedAt,
	"approved at": leaveimport.HeaderReviewedAt,
}

// ResolveHeader maps arbitrary column-header text to its canonical header.
// "Employee ID", "employee_id" and "EmployeeId" all resolve identically.
func ResolveHeader(v any) (leaveimport.Header, bool) {
	h, ok := headerAliases[normalizeToken(v)]
	return h, ok
}
