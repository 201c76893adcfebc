package leaveimport

import (
	"math"
	"strings"
	"time"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
)

// CalculateAppliedDays computes the days debited for a request: half-day
// leaves are fixed at 0.5, otherwise the inclusive span between the
// UTC-normalized dates.
func CalculateAppliedDays(start, end time.Time, isHalfDay bool) float64 {
	if isHalfDay {
		return 0.5
	}
	s := NormalizeDateOnly(start)
	e := NormalizeDateOnly(end)
	return math.Floor(e.Sub(s).Hours()/24) + 1
}

// BuildDuplicateKey builds the stable identity of a leave span:
// employeeID|leaveType|startISO|endISO on date-only normalized values. Equal
// keys denote the same logical leave regardless of source formatting.
func BuildDuplicateKey(employeeID string, leaveType leaveimport.LeaveType, start, end time.Time) string {
	return strings.Join([]string{
		employeeID,
		string(leaveType),
		NormalizeDateOnly(start).Format("2006-01-02"),
		NormalizeDateOnly(end).Format("2006-01-02"),
	}, "|")
}
