package robot

import (
	"fmt"
	"math"
)

// ValidNumber reports whether v is a usable numeric value. NaN and the
// infinities are not.
func ValidNumber(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64:
		return true
	case float32:
		return !math.IsNaN(float64(n)) && !math.IsInf(float64(n), 0)
	case float64:
		return !math.IsNaN(n) && !math.IsInf(n, 0)
	}
	return false
}

// ValidText reports whether v is a string. Emptiness is not checked here;
// callers that need a non-empty string check separately.
func ValidText(v any) bool {
	_, ok := v.(string)
	return ok
}

// ValidRecord reports whether v is a plain key-value record, as opposed to
// nil, an array, or a primitive.
func ValidRecord(v any) bool {
	m, ok := v.(map[string]any)
	return ok && m != nil
}

// PlacementFromRecord reads the x, y and direction fields of a decoded
// placement record, e.g. one unmarshalled from JSON. The record must be a
// non-empty key-value record with finite integral coordinates and a
// direction name; anything else is rejected without partial results.
func PlacementFromRecord(v any) (x, y int, direction string, err error) {
	if !ValidRecord(v) {
		return 0, 0, "", fmt.Errorf("%w: placement must be a record", ErrInvalidInput)
	}
	rec := v.(map[string]any)
	if len(rec) == 0 {
		return 0, 0, "", fmt.Errorf("%w: empty placement record", ErrInvalidInput)
	}
	x, err = intField(rec, "x")
	if err != nil {
		return 0, 0, "", err
	}
	y, err = intField(rec, "y")
	if err != nil {
		return 0, 0, "", err
	}
	d, ok := rec["direction"]
	if !ok || !ValidText(d) {
		return 0, 0, "", fmt.Errorf("%w: placement needs a direction name", ErrInvalidInput)
	}
	direction = d.(string)
	if _, err := ParseOrientation(direction); err != nil {
		return 0, 0, "", err
	}
	return x, y, direction, nil
}

func intField(rec map[string]any, key string) (int, error) {
	v, ok := rec[key]
	if !ok || !ValidNumber(v) {
		return 0, fmt.Errorf("%w: placement field %q must be a number", ErrInvalidInput, key)
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%w: placement field %q must be an integer", ErrInvalidInput, key)
		}
		return int(n), nil
	case float32:
		f := float64(n)
		if f != math.Trunc(f) {
			return 0, fmt.Errorf("%w: placement field %q must be an integer", ErrInvalidInput, key)
		}
		return int(f), nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	}
	return 0, fmt.Errorf("%w: placement field %q must be a number", ErrInvalidInput, key)
}
