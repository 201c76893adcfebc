package leaveimport

import (
	"testing"
	"time"
)

func TestIsEmptyCell(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"whitespace string", "   \t ", true},
		{"text", "abc", false},
		{"zero is not empty", 0.0, false},
		{"false is not empty", false, false},
		{"date is not empty", time.Now(), false},
	}
	for _, c := range cases {
		got := IsEmptyCell(c.input)
		if got != c.want {
			t.Errorf("%s: IsEmptyCell(%v) = %v, want %v", c.name, c.input, got, c.want)
		}
	}
}

func TestCellString(t *testing.T) {
	cases := []struct {
		input any
		want  string
	}{
		{" EMP001 ", "EMP001"},
		{"", ""},
		{nil, ""},
		{true, "true"},
		{false, "false"},
		{42.0, "42"},
		{42.5, "42.5"},
		{7, "7"},
		{int64(9), "9"},
		{time.Now(), ""},
		{struct{}{}, ""},
	}
	for _, c := range cases {
		got := CellString(c.input)
		if got != c.want {
			t.Errorf("CellString(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		input any
		want  string
	}{
		{"Employee ID", "employee id"},
		{"employee_id", "employee id"},
		{"  Comp-Off  ", "comp off"},
		{"CASUAL   LEAVE", "casual leave"},
		{"half_day-flag", "half day flag"},
	}
	for _, c := range cases {
		got := normalizeToken(c.input)
		if got != c.want {
			t.Errorf("normalizeToken(%v) = %q, want %q", c.input, got, c.want)
		}
	}
}
