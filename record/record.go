// Package record - field access helpers shared by every cascade processor.
//
// Design principles:
//   - Deterministic, side-effect free functions; no logging, no panics.
//   - Malformed data degrades to documented values (NaN, false), never aborts.
package record

import (
	"fmt"
	"math"
	"reflect"
)

// Number coerces v to float64. It accepts the int/uint/float families and
// reports false for everything else (strings, nil, nested values).
//
// Complexity: O(1).
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}

// Key returns r's key-field value (nil when the field is absent).
func Key(r Record, fields Fields) any {
	return r[fields.WithDefaults().Key]
}

// Value returns r's value field coerced to float64, or NaN when the field
// is missing or not numeric. NaN propagation is the documented degenerate
// behavior of non-validating operations; quality.Validate reports the
// underlying problem as data.
func Value(r Record, fields Fields) float64 {
	v, ok := Number(r[fields.WithDefaults().Value])
	if !ok {
		return math.NaN()
	}

	return v
}

// Clone returns a shallow copy of r: a fresh map with the same field
// values. Nested values are shared, per the never-mutate contract.
//
// Complexity: O(fields).
func Clone(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}

	return out
}

// Identity normalizes a key-field value for use as a Go map key.
// Comparable dynamic types pass through unchanged; non-comparable ones
// (slices, maps, funcs) fall back to their fmt.Sprint text so keyed
// operations cannot panic. quality.Validate flags such keys.
func Identity(key any) any {
	if key == nil {
		return nil
	}
	if !isComparable(key) {
		return fmt.Sprint(key)
	}

	return key
}

// isComparable reports whether key's dynamic type supports ==.
func isComparable(key any) bool {
	return reflect.TypeOf(key).Comparable()
}
