package leaveimport

import (
	"testing"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
)

func TestParseLeaveType(t *testing.T) {
	cases := []struct {
		input any
		want  leaveimport.LeaveType
	}{
		{"Casual", leaveimport.LeaveTypeCasual},
		{"casual leave", leaveimport.LeaveTypeCasual},
		{"CASUAL", leaveimport.LeaveTypeCasual},
		{"Paid", leaveimport.LeaveTypePaid},
		{"Paid Leave", leaveimport.LeaveTypePaid},
		{"Comp Off", leaveimport.LeaveTypeCompOff},
		{"compoff", leaveimport.LeaveTypeCompOff},
		{"comp-off", leaveimport.LeaveTypeCompOff},
		{"COMP_OFF", leaveimport.LeaveTypeCompOff},
		{"Compensatory Off", leaveimport.LeaveTypeCompOff},
	}
	for _, c := range cases {
		got, ok := ParseLeaveType(c.input)
		if !ok {
			t.Fatalf("ParseLeaveType(%v) not ok", c.input)
		}
		if got != c.want {
			t.Errorf("ParseLeaveType(%v) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseLeaveType_Unknown(t *testing.T) {
	inputs := []any{"Sabbatical", "sick", "", nil, 3.0}
	for _, in := range inputs {
		if got, ok := ParseLeaveType(in); ok {
			t.Errorf("ParseLeaveType(%v) = %v, want not ok", in, got)
		}
	}
}

func TestParseLeaveStatus(t *testing.T) {
	cases := []struct {
		input any
		want  leaveimport.LeaveStatus
	}{
		{"Pending", leaveimport.LeaveStatusPending},
		{"waiting approval", leaveimport.LeaveStatusPending},
		{"waiting_approval", leaveimport.LeaveStatusPending},
		{"Approved", leaveimport.LeaveStatusApproved},
		{"accepted", leaveimport.LeaveStatusApproved},
		{"Rejected", leaveimport.LeaveStatusRejected},
		{"Declined", leaveimport.LeaveStatusRejected},
		{"Cancelled", leaveimport.LeaveStatusCancelled},
		{"canceled", leaveimport.LeaveStatusCancelled},
		{"Withdrawn", leaveimport.LeaveStatusCancelled},
	}
	for _, c := range cases {
		got, ok := ParseLeaveStatus(c.input)
		if !ok {
			t.Fatalf("ParseLeaveStatus(%v) not ok", c.input)
		}
		if got != c.want {
			t.Errorf("ParseLeaveStatus(%v) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestParseLeaveStatus_Unknown(t *testing.T) {
	inputs := []any{"Maybe", "open", "", nil}
	for _, in := range inputs {
		if got, ok := ParseLeaveStatus(in); ok {
			t.Errorf("ParseLeaveStatus(%v) = %v, want not ok", in, got)
		}
	}
}
