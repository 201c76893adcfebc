package leaveimport

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Day 0 of the spreadsheet serial convention is 1899-12-30 UTC.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const millisPerDay = 86_400_000

var (
	numericCellRegex = regexp.MustCompile(`^\d+(\.\d+)?$`)
	isoDateRegex     = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	// Month-first, matching how the sheets this importer receives are filled in.
	slashDateRegex = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
)

// Layouts tried when a string matches none of the explicit patterns.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006/01/02",
	"Jan 2, 2006",
	"2 Jan 2006",
	"January 2, 2006",
}

// ParseCellDate converts a raw cell into a calendar date. Native dates pass
// through, numbers are treated as spreadsheet serials, and strings are tried
// as serials, ISO dates, month-first slash or hyphen dates, then the generic
// layout list. The same calendar day results regardless of which path fired.
func ParseCellDate(v any) (time.Time, bool) {
	switch val := v.(type) {
	case time.Time:
		if val.IsZero() {
			return time.Time{}, false
		}
		return val, true
	case float64:
		return fromSerial(val)
	case float32:
		return fromSerial(float64(val))
	case int:
		return fromSerial(float64(val))
	case int64:
		return fromSerial(float64(val))
	case string:
		return parseDateString(val)
	default:
		return time.Time{}, false
	}
}

func fromSerial(serial float64) (time.Time, bool) {
	if serial < 0 || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}
	days := math.Trunc(serial)
	frac := serial - days
	ms := int64(days)*millisPerDay + int64(math.Round(frac*millisPerDay))
	return serialEpoch.Add(time.Duration(ms) * time.Millisecond), true
}

func parseDateString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	// Serials survive a round trip through strings ("45000" vs 45000).
	if numericCellRegex.MatchString(s) {
		serial, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return time.Time{}, false
		}
		return fromSerial(serial)
	}

	if m := isoDateRegex.FindStringSubmatch(s); m != nil {
		return dateFromParts(m[1], m[2], m[3])
	}
	if m := slashDateRegex.FindStringSubmatch(s); m != nil {
		return dateFromParts(m[3], m[1], m[2])
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func dateFromParts(year, month, day string) (time.Time, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (Feb 30 becomes Mar 2); reject it.
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// NormalizeDateOnly strips time-of-day to UTC midnight of the same calendar
// day. Idempotent; every comparison and duplicate key goes through it.
func NormalizeDateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
