package legacy

import (
	"strconv"
	"strings"
)

// Record is a loosely typed legacy record as exported by the old system.
// Accessors never panic: missing or mistyped fields yield zero values so the
// transform layer can default them.
type Record map[string]any

// String returns the field as a string, or "" when absent or not a scalar.
func (r Record) String(key string) string {
	if r == nil {
		return ""
	}
	switch v := r[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		// JSON numbers decode as float64; legacy exports mix numeric and
		// string encodings for the same field.
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	}
	return ""
}

// RawString returns the field as a string without whitespace normalization.
// Identity fields (CPF, e-mail) are matched byte-for-byte, so their values
// have to survive the transform exactly as exported.
func (r Record) RawString(key string) string {
	if r == nil {
		return ""
	}
	if v, ok := r[key].(string); ok {
		return v
	}
	return r.String(key)
}

// Int returns the field as an int, or 0 when absent or unparseable.
func (r Record) Int(key string) int {
	if r == nil {
		return 0
	}
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// Float returns the field as a float64, or 0 when absent or unparseable.
// Monetary fields keep their fractional part.
func (r Record) Float(key string) float64 {
	if r == nil {
		return 0
	}
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

// Bool returns the field as a bool. Legacy exports encode flags as booleans,
// "true"/"false" strings, or 0/1 numbers.
func (r Record) Bool(key string) bool {
	if r == nil {
		return false
	}
	switch v := r[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	case float64:
		return v != 0
	}
	return false
}

// Child returns a nested record, or nil when the field is absent or not an
// object. A nil Record is safe to call accessors on.
func (r Record) Child(key string) Record {
	if r == nil {
		return nil
	}
	if m, ok := r[key].(map[string]any); ok {
		return Record(m)
	}
	return nil
}
