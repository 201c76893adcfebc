package leaveimport

import (
	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
)

// Normalized token -> leave type. Canonical spellings resolve alongside the
// synonyms ("COMP_OFF" normalizes to "comp off").
var leaveTypeAliases = map[string]leaveimport.LeaveType{
	"casual":        leaveimport.LeaveTypeCasual,
	"casual leave":  leaveimport.LeaveTypeCasual,
	"cl":            leaveimport.LeaveTypeCasual,
	"paid":          leaveimport.LeaveTypePaid,
	"paid leave":    leaveimport.LeaveTypePaid,
	"pl":            leaveimport.LeaveTypePaid,
	"comp off":      leaveimport.LeaveTypeCompOff,
	"compoff":       leaveimport.LeaveTypeCompOff,
	"comp off leave": leaveimport.LeaveTypeCompOff,
	"compensatory off": leaveimport.LeaveTypeCompOff,
}

var leaveStatusAliases = map[string]leaveimport.LeaveStatus{
	"pending":          leaveimport.LeaveStatusPending,
	"waiting approval": leaveimport.LeaveStatusPending,
	"awaiting approval": leaveimport.LeaveStatusPending,
	"approved":  leaveimport.LeaveStatusApproved,
	"accepted":  leaveimport.LeaveStatusApproved,
	"rejected":  leaveimport.LeaveStatusRejected,
	"declined":  leaveimport.LeaveStatusRejected,
	"denied":    leaveimport.LeaveStatusRejected,
	"cancelled": leaveimport.LeaveStatusCancelled,
	"canceled":  leaveimport.LeaveStatusCancelled,
	"withdrawn": leaveimport.LeaveStatusCancelled,
}

// ParseLeaveType resolves a free-text leave-type token. Unknown tokens are
// rejected, never defaulted.
func ParseLeaveType(v any) (leaveimport.LeaveType, bool) {
	lt, ok := leaveTypeAliases[normalizeToken(v)]
	return lt, ok
}

// ParseLeaveStatus resolves a free-text status token.
func ParseLeaveStatus(v any) (leaveimport.LeaveStatus, bool) {
	st, ok := leaveStatusAliases[normalizeToken(v)]
	return st, ok
}
