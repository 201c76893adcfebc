package leaveimport

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
)

func validRow() leaveimport.RawImportRow {
	return leaveimport.RawImportRow{
		leaveimport.HeaderEmployeeID: "EMP001",
		leaveimport.HeaderLeaveType:  "Casual",
		leaveimport.HeaderStartDate:  "2026-02-11",
		leaveimport.HeaderEndDate:    "2026-02-11",
		leaveimport.HeaderReason:     "Family event",
		leaveimport.HeaderStatus:     "Pending",
		leaveimport.HeaderHalfDay:    "No",
		leaveimport.HeaderPaidLeave:  "Yes",
	}
}

func TestParseRow_Valid(t *testing.T) {
	res := ParseRow(validRow(), 2)
	if res.Err != nil {
		t.Fatalf("ParseRow returned error: %+v", res.Err)
	}
	row := res.Data

	if row.RowNumber != 2 {
		t.Errorf("RowNumber = %d, want 2", row.RowNumber)
	}
	if row.EmployeeID != "EMP001" {
		t.Errorf("EmployeeID = %q, want EMP001", row.EmployeeID)
	}
	if row.LeaveType != leaveimport.LeaveTypeCasual {
		t.Errorf("LeaveType = %v, want CASUAL", row.LeaveType)
	}
	if row.Status != leaveimport.LeaveStatusPending {
		t.Errorf("Status = %v, want PENDING", row.Status)
	}
	if row.AppliedDays != 1 {
		t.Errorf("AppliedDays = %v, want 1", row.AppliedDays)
	}
	if row.IsHalfDay {
		t.Error("IsHalfDay = true, want false")
	}
	if !row.IsPaidLeave {
		t.Error("IsPaidLeave = false, want true")
	}
	if row.ReviewNotes != nil || row.ReviewedAt != nil {
		t.Error("ReviewNotes/ReviewedAt should be nil for empty cells")
	}
	if !row.StartDate.Equal(date(2026, time.February, 11)) {
		t.Errorf("StartDate = %v, want 2026-02-11 UTC midnight", row.StartDate)
	}
}

func TestParseRow_Errors(t *testing.T) {
	cases := []struct {
		name       string
		mutate     func(leaveimport.RawImportRow)
		wantReason string
	}{
		{
			"missing employee id",
			func(r leaveimport.RawImportRow) { r[leaveimport.HeaderEmployeeID] = "  " },
			"Employee ID is required",
		},
		{
			"unknown leave type",
			func(r leaveimport.RawImportRow) { r[leaveimport.HeaderLeaveType] = "Sabbatical" },
			"Invalid Leave Type",
		},
		{
			"unknown status",
			func(r leaveimport.RawImportRow) { r[leaveimport.HeaderStatus] = "maybe" },
			"Invalid Status",
		},
		{
			"bad start date",
			func(r leaveimport.RawImportRow) { r[leaveimport.HeaderStartDate] = "soon" },
			"Invalid Start Date",
		},
		{
			"bad end date",
			func(r leaveimport.RawImportRow) { r[leaveimport.HeaderEndDate] = "later" },
			"Invalid End Date",
		},
		{
			"start after end",
			func(r leaveimport.RawImportRow) {
				r[leaveimport.HeaderStartDate] = "2026-03-05"
				r[leaveimport.HeaderEndDate] = "2026-03-01"
			},
			"Start Date must be on or before End Date",
		},
		{
			"missing reason",
			func(r leaveimport.RawImportRow) { r[leaveimport.HeaderReason] = "" },
			"Reason is required",
		},
		{
			"bad half day flag",
			func(r leaveimport.RawImportRow) { r[leaveimport.HeaderHalfDay] = "perhaps" },
			"Invalid Half Day value",
		},
		{
			"half day spanning two days",
			func(r leaveimport.RawImportRow) {
				r[leaveimport.HeaderHalfDay] = "Yes"
				r[leaveimport.HeaderEndDate] = "2026-02-12"
			},
			"Half Day leave must have the same Start Date and End Date",
		},
		{
			"bad paid leave flag",
			func(r leaveimport.RawImportRow) { r[leaveimport.HeaderPaidLeave] = "2" },
			"Invalid Paid Leave value",
		},
		{
			"bad reviewed at",
			func(r leaveimport.RawImportRow) { r[leaveimport.HeaderReviewedAt] = "not-a-date" },
			"Invalid Reviewed At value",
		},
	}
	for _, c := range cases {
		row := validRow()
		c.mutate(row)
		res := ParseRow(row, 5)
		if res.Err == nil {
			t.Fatalf("%s: expected error, got %+v", c.name, res.Data)
		}
		if res.Err.Reason != c.wantReason {
			t.Errorf("%s: reason = %q, want %q", c.name, res.Err.Reason, c.wantReason)
		}
		if res.Err.RowNumber != 5 {
			t.Errorf("%s: row number = %d, want 5", c.name, res.Err.RowNumber)
		}
	}
}

// The first failing check wins; the error carries the employee id once known.
func TestParseRow_FirstErrorWins(t *testing.T) {
	row := validRow()
	row[leaveimport.HeaderLeaveType] = "Sabbatical"
	row[leaveimport.HeaderStartDate] = "garbage"
	row[leaveimport.HeaderReason] = ""

	res := ParseRow(row, 3)
	if res.Err == nil {
		t.Fatal("expected error")
	}
	if res.Err.Reason != "Invalid Leave Type" {
		t.Errorf("reason = %q, want the first failing check", res.Err.Reason)
	}
	if res.Err.EmployeeID != "EMP001" {
		t.Errorf("EmployeeID = %q, want EMP001", res.Err.EmployeeID)
	}
}

func TestParseRow_HalfDay(t *testing.T) {
	row := validRow()
	row[leaveimport.HeaderHalfDay] = "Yes"

	res := ParseRow(row, 2)
	if res.Err != nil {
		t.Fatalf("ParseRow returned error: %+v", res.Err)
	}
	if !res.Data.IsHalfDay {
		t.Error("IsHalfDay = false, want true")
	}
	if res.Data.AppliedDays != 0.5 {
		t.Errorf("AppliedDays = %v, want 0.5", res.Data.AppliedDays)
	}
}

// Serial and string cells for the same day must agree (scenario: start as
// serial 45000, end as "2/15/2023").
func TestParseRow_MixedDateRepresentations(t *testing.T) {
	row := validRow()
	row[leaveimport.HeaderStartDate] = 45000.0 // 2023-03-15... after 2/15
	row[leaveimport.HeaderEndDate] = "2/15/2023"

	res := ParseRow(row, 2)
	if res.Err == nil {
		t.Fatal("expected ordering error, serial 45000 is after 2023-02-15")
	}
	if res.Err.Reason != "Start Date must be on or before End Date" {
		t.Errorf("reason = %q", res.Err.Reason)
	}

	// Swapped, the same cells form a valid span of 2023 calendar dates.
	row[leaveimport.HeaderStartDate] = "2/15/2023"
	row[leaveimport.HeaderEndDate] = 45000.0
	res = ParseRow(row, 2)
	if res.Err != nil {
		t.Fatalf("ParseRow returned error: %+v", res.Err)
	}
	if !res.Data.StartDate.Equal(date(2023, time.February, 15)) {
		t.Errorf("StartDate = %v, want 2023-02-15", res.Data.StartDate)
	}
	if !res.Data.EndDate.Equal(date(2023, time.March, 15)) {
		t.Errorf("EndDate = %v, want 2023-03-15", res.Data.EndDate)
	}
	if res.Data.AppliedDays != 29 {
		t.Errorf("AppliedDays = %v, want 29", res.Data.AppliedDays)
	}
}

func TestParseRow_OptionalFields(t *testing.T) {
	row := validRow()
	row[leaveimport.HeaderReviewNotes] = "  looks fine  "
	row[leaveimport.HeaderReviewedAt] = "2026-02-12"
	row[leaveimport.HeaderStatus] = "Approved"

	res := ParseRow(row, 2)
	if res.Err != nil {
		t.Fatalf("ParseRow returned error: %+v", res.Err)
	}
	if res.Data.ReviewNotes == nil || *res.Data.ReviewNotes != "looks fine" {
		t.Errorf("ReviewNotes = %v, want trimmed string", res.Data.ReviewNotes)
	}
	if res.Data.ReviewedAt == nil {
		t.Fatal("ReviewedAt = nil, want date")
	}
	if !NormalizeDateOnly(*res.Data.ReviewedAt).Equal(date(2026, time.February, 12)) {
		t.Errorf("ReviewedAt = %v, want 2026-02-12", res.Data.ReviewedAt)
	}

	// Empty Reviewed At is absence, not an error.
	row[leaveimport.HeaderReviewedAt] = ""
	res = ParseRow(row, 2)
	if res.Err != nil {
		t.Fatalf("ParseRow returned error: %+v", res.Err)
	}
	if res.Data.ReviewedAt != nil {
		t.Errorf("ReviewedAt = %v, want nil", res.Data.ReviewedAt)
	}
}

// Exactly one of data and error per row, never both, never neither.
func TestParseRow_ExactlyOneOutcome(t *testing.T) {
	rows := []leaveimport.RawImportRow{
		validRow(),
		{},
		{leaveimport.HeaderEmployeeID: "EMP002"},
		func() leaveimport.RawImportRow {
			r := validRow()
			r[leaveimport.HeaderStartDate] = "nope"
			return r
		}(),
	}
	for i, row := range rows {
		res := ParseRow(row, i+2)
		if (res.Data == nil) == (res.Err == nil) {
			t.Errorf("row %d: data=%v err=%v, want exactly one", i, res.Data, res.Err)
		}
	}
}

func TestParseRow_MissingEmployeeIDOmitsItFromError(t *testing.T) {
	res := ParseRow(leaveimport.RawImportRow{}, 7)
	if res.Err == nil {
		t.Fatal("expected error")
	}
	if res.Err.EmployeeID != "" {
		t.Errorf("EmployeeID = %q, want empty", res.Err.EmployeeID)
	}
	if res.Err.Reason != "Employee ID is required" {
		t.Errorf("reason = %q", res.Err.Reason)
	}
}
