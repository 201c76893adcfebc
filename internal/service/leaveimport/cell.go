package leaveimport

import (
	"regexp"
	"strconv"
	"strings"
)

// IsEmptyCell reports whether a raw cell carries no value. Only nil and
// whitespace-only strings are empty; zero and false are real values.
func IsEmptyCell(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	default:
		return false
	}
}

// CellString coerces a raw cell to a safe string: strings are trimmed,
// numbers and booleans are stringified, everything else becomes "".
func CellString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return ""
	}
}

var tokenSeparators = regexp.MustCompile(`[\s_-]+`)

// normalizeToken folds a cell into the form the alias tables are keyed by:
// lowercase, with runs of whitespace, underscores and hyphens collapsed to
// single spaces.
func normalizeToken(v any) string {
	s := strings.ToLower(CellString(v))
	return strings.TrimSpace(tokenSeparators.ReplaceAllString(s, " "))
}
