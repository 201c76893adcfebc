package leaveimport

import (
	"time"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
)

// ParseRow validates one raw row into a typed record or exactly one error.
// Checks run in a fixed order and the first failure wins, so every reported
// error is individually correctable. Error reasons are plain sentences shown
// directly to end users.
func ParseRow(row leaveimport.RawImportRow, rowNumber int) leaveimport.RowResult {
	fail := func(employeeID, reason string) leaveimport.RowResult {
		return leaveimport.RowResult{Err: &leaveimport.LeaveImportError{
			RowNumber:  rowNumber,
			EmployeeID: employeeID,
			Reason:     reason,
		}}
	}

	employeeID := CellString(row[leaveimport.HeaderEmployeeID])
	if employeeID == "" {
		return fail("", "Employee ID is required")
	}

	leaveType, ok := ParseLeaveType(row[leaveimport.HeaderLeaveType])
	if !ok {
		return fail(employeeID, "Invalid Leave Type")
	}

	status, ok := ParseLeaveStatus(row[leaveimport.HeaderStatus])
	if !ok {
		return fail(employeeID, "Invalid Status")
	}

	startDate, ok := ParseCellDate(row[leaveimport.HeaderStartDate])
	if !ok {
		return fail(employeeID, "Invalid Start Date")
	}

	endDate, ok := ParseCellDate(row[leaveimport.HeaderEndDate])
	if !ok {
		return fail(employeeID, "Invalid End Date")
	}

	startDate = NormalizeDateOnly(startDate)
	endDate = NormalizeDateOnly(endDate)
	if startDate.After(endDate) {
		return fail(employeeID, "Start Date must be on or before End Date")
	}

	reason := CellString(row[leaveimport.HeaderReason])
	if reason == "" {
		return fail(employeeID, "Reason is required")
	}

	isHalfDay, ok := ParseOptionalBool(row[leaveimport.HeaderHalfDay], false)
	if !ok {
		return fail(employeeID, "Invalid Half Day value")
	}
	if isHalfDay && !startDate.Equal(endDate) {
		return fail(employeeID, "Half Day leave must have the same Start Date and End Date")
	}

	isPaidLeave, ok := ParseOptionalBool(row[leaveimport.HeaderPaidLeave], true)
	if !ok {
		return fail(employeeID, "Invalid Paid Leave value")
	}

	// Reviewed At is the only field where absent and present-but-invalid
	// differ: empty means no review yet, garbage is an error.
	var reviewedAt *time.Time
	if !IsEmptyCell(row[leaveimport.HeaderReviewedAt]) {
		t, ok := ParseCellDate(row[leaveimport.HeaderReviewedAt])
		if !ok {
			return fail(employeeID, "Invalid Reviewed At value")
		}
		reviewedAt = &t
	}

	var reviewNotes *string
	if notes := CellString(row[leaveimport.HeaderReviewNotes]); notes != "" {
		reviewNotes = &notes
	}

	return leaveimport.RowResult{Data: &leaveimport.ParsedLeaveImportRow{
		RowNumber:   rowNumber,
		EmployeeID:  employeeID,
		LeaveType:   leaveType,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      reason,
		IsHalfDay:   isHalfDay,
		IsPaidLeave: isPaidLeave,
		Status:      status,
		ReviewNotes: reviewNotes,
		ReviewedAt:  reviewedAt,
		AppliedDays: CalculateAppliedDays(startDate, endDate, isHalfDay),
	}}
}
