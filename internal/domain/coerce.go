package domain

import (
	"strconv"
	"strings"
)

// The document store keeps price and minimum_nights as text. These helpers
// interpret a stored value as a number; the false return means "unrepresentable"
// and callers treat the value as filtered out, never as an error.

func CoerceFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimPrefix(x, "$")), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func CoerceInt(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case float64:
		return int64(x), x == float64(int64(x))
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
