package util

import (
	"encoding/json"
	"strconv"
	"strings"
)

// AnyToFloat converts loosely typed JSON values to float64. Decoded JSON
// numbers arrive as float64 already; integer types and numeric strings are
// accepted for clients that quote their arguments.
func AnyToFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// FormatFloat renders a float the way a calculator should print it: the
// shortest decimal form that round-trips, so integral values come out bare
// ("28", not "28.000000").
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
