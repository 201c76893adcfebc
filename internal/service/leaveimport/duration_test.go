package leaveimport

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/leave-import-go/internal/domain/leaveimport"
)

func TestCalculateAppliedDays(t *testing.T) {
	cases := []struct {
		name      string
		start     time.Time
		end       time.Time
		isHalfDay bool
		want      float64
	}{
		{"single day", date(2026, time.February, 11), date(2026, time.February, 11), false, 1},
		{"inclusive span", date(2026, time.February, 11), date(2026, time.February, 13), false, 3},
		{"across month boundary", date(2026, time.January, 30), date(2026, time.February, 2), false, 4},
		{"half day", date(2026, time.February, 11), date(2026, time.February, 11), true, 0.5},
		{"time of day ignored", time.Date(2026, time.February, 11, 23, 0, 0, 0, time.UTC), time.Date(2026, time.February, 12, 1, 0, 0, 0, time.UTC), false, 2},
	}
	for _, c := range cases {
		got := CalculateAppliedDays(c.start, c.end, c.isHalfDay)
		if got != c.want {
			t.Errorf("%s: CalculateAppliedDays = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestBuildDuplicateKey(t *testing.T) {
	start := time.Date(2026, time.February, 11, 9, 30, 0, 0, time.UTC)
	end := time.Date(2026, time.February, 13, 18, 0, 0, 0, time.UTC)

	got := BuildDuplicateKey("emp-internal-1", leaveimport.LeaveTypeCasual, start, end)
	want := "emp-internal-1|CASUAL|2026-02-11|2026-02-13"
	if got != want {
		t.Errorf("BuildDuplicateKey = %q, want %q", got, want)
	}

	// Time of day never affects key equality.
	midnight := BuildDuplicateKey("emp-internal-1", leaveimport.LeaveTypeCasual,
		date(2026, time.February, 11), date(2026, time.February, 13))
	if got != midnight {
		t.Errorf("keys differ by time of day: %q vs %q", got, midnight)
	}

	other := BuildDuplicateKey("emp-internal-1", leaveimport.LeaveTypePaid, start, end)
	if got == other {
		t.Errorf("keys for different leave types collide: %q", got)
	}
}
