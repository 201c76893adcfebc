package leaveimport

import (
	"testing"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
)

func TestResolveHeader_Variants(t *testing.T) {
	cases := []struct {
		input any
		want  leaveimport.Header
	}{
		{"Employee ID", leaveimport.HeaderEmployeeID},
		{"employee_id", leaveimport.HeaderEmployeeID},
		{"EmployeeId", leaveimport.HeaderEmployeeID},
		{"  EMPLOYEE-ID ", leaveimport.HeaderEmployeeID},
		{"Leave Type", leaveimport.HeaderLeaveType},
		{"leave_type", leaveimport.HeaderLeaveType},
		{"Start Date", leaveimport.HeaderStartDate},
		{"start_date", leaveimport.HeaderStartDate},
		{"From", leaveimport.HeaderStartDate},
		{"End Date", leaveimport.HeaderEndDate},
		{"To", leaveimport.HeaderEndDate},
		{"Reason", leaveimport.HeaderReason},
		{"Status", leaveimport.HeaderStatus},
		{"Approval Status", leaveimport.HeaderStatus},
		{"Half Day", leaveimport.HeaderHalfDay},
		{"half_day", leaveimport.HeaderHalfDay},
		{"Paid Leave", leaveimport.HeaderPaidLeave},
		{"Review Notes", leaveimport.HeaderReviewNotes},
		{"Reviewed At", leaveimport.HeaderReviewedAt},
		{"reviewed_at", leaveimport.HeaderReviewedAt},
	}
	for _, c := range cases {
		got, ok := ResolveHeader(c.input)
		if !ok {
			t.Fatalf("ResolveHeader(%v) not ok", c.input)
		}
		if got != c.want {
			t.Errorf("ResolveHeader(%v) = %v, want %v", c.input, got, c.want)
		}
	}
}

// "Employee ID", "employee_id" and "EmployeeId" are the same column.
func TestResolveHeader_EquivalentSpellings(t *testing.T) {
	spellings := []string{"Employee ID", "employee_id", "EmployeeId", "EMPLOYEE_ID"}
	first, ok := ResolveHeader(spellings[0])
	if !ok {
		t.Fatalf("ResolveHeader(%q) not ok", spellings[0])
	}
	for _, s := range spellings[1:] {
		got, ok := ResolveHeader(s)
		if !ok || got != first {
			t.Errorf("ResolveHeader(%q) = %v, %v; want %v, true", s, got, ok, first)
		}
	}
}

func TestResolveHeader_Unknown(t *testing.T) {
	inputs := []any{"Salary", "Manager", "", nil, 42.0}
	for _, in := range inputs {
		if got, ok := ResolveHeader(in); ok {
			t.Errorf("ResolveHeader(%v) = %v, want not ok", in, got)
		}
	}
}
