// Package coerce holds the runtime type guards shared by the validator and
// format packages. Both accept loosely typed input coming straight from form
// fields, so every helper reports success with a boolean instead of an error.
package coerce

import (
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// zoneLayouts carry an explicit offset and are parsed as-is.
var zoneLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

// localLayouts have no zone information and are interpreted in time.Local.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

// String returns the underlying string of v when v is a string or a named
// string type.
func String(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

// Float converts any Go numeric kind or a numeric string to float64.
// NaN, infinities, empty and partially numeric strings are rejected.
func Float(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}

	var f float64
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Timestamps must fall within years 1 to 9999 so they render as dd/mm/yyyy.
const (
	minTimestampMillis = -62135596800000 // 0001-01-01T00:00:00Z
	maxTimestampMillis = 253402300799999 // 9999-12-31T23:59:59.999Z
)

// Time converts v into a time.Time. Zero times and nil pointers are rejected.
// When allowTimestamp is set, integer and float kinds are read as Unix
// milliseconds; values outside the timestamp range are rejected.
func Time(v any, allowTimestamp bool) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return t, !t.IsZero()
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	}

	if s, ok := String(v); ok {
		return ParseDate(s)
	}

	if !allowTimestamp {
		return time.Time{}, false
	}
	ms, ok := Float(v)
	if !ok || ms < minTimestampMillis || ms > maxTimestampMillis {
		return time.Time{}, false
	}
	return time.UnixMilli(int64(ms)), true
}

// ParseDate parses the date and date-time layouts accepted by form inputs.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range zoneLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.In(time.Local), true
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
