package leaveimport

import "strings"

var (
	trueTokens  = map[string]bool{"true": true, "yes": true, "y": true, "1": true}
	falseTokens = map[string]bool{"false": true, "no": true, "n": true, "0": true}
)

// ParseOptionalBool interprets yes/no style cells. Empty cells take the
// default; native booleans pass through; numeric cells only accept exactly
// 1 or 0 (anything else is ambiguous and rejected); strings are matched
// against the fixed true/false token sets. The second return is false when
// the cell held a value that could not be interpreted.
func ParseOptionalBool(v any, def bool) (bool, bool) {
	if IsEmptyCell(v) {
		return def, true
	}

	switch val := v.(type) {
	case bool:
		return val, true
	case float64:
		return numericBool(val)
	case float32:
		return numericBool(float64(val))
	case int:
		return numericBool(float64(val))
	case int64:
		return numericBool(float64(val))
	}

	token := strings.ReplaceAll(normalizeToken(v), " ", "")
	if trueTokens[token] {
		return true, true
	}
	if falseTokens[token] {
		return false, true
	}
	return false, false
}

func numericBool(v float64) (bool, bool) {
	switch v {
	case 1:
		return true, true
	case 0:
		return false, true
	default:
		return false, false
	}
}
