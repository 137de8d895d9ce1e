// Package record core types: Record, Fields, Pair, Accessor and the
// sentinel errors shared by the permutation and projection operations.
package record

import (
	"errors"
)

// Sentinel errors for record operations.
var (
	// ErrIndexRange indicates a permutation index outside [0, len(data)).
	ErrIndexRange = errors.New("record: index out of range")
)

// Default field names used when a Fields member is left empty.
const (
	// DefaultKeyField is the default name of the identity/label field.
	DefaultKeyField = "label"

	// DefaultValueField is the default name of the numeric magnitude field.
	DefaultValueField = "value"
)

// Record is an open mapping from field name to value. Values may be
// numbers (any Go numeric type), strings, or nested values. The engine
// never mutates a Record it receives.
type Record = map[string]any

// Fields names the two semantically distinguished fields of a Record.
// A zero Fields (or an empty member) resolves to the defaults, so the
// zero value is always usable.
type Fields struct {
	// Key is the name of the identity/label field. Empty ⇒ "label".
	Key string

	// Value is the name of the numeric magnitude field. Empty ⇒ "value".
	Value string
}

// DefaultFields returns the default field convention:
// Key="label", Value="value".
func DefaultFields() Fields {
	return Fields{Key: DefaultKeyField, Value: DefaultValueField}
}

// WithDefaults resolves empty members to the default field names.
// All package entry points call it exactly once, at entry.
func (f Fields) WithDefaults() Fields {
	if f.Key == "" {
		f.Key = DefaultKeyField
	}
	if f.Value == "" {
		f.Value = DefaultValueField
	}

	return f
}

// Pair is the minimal key/value projection of a Record.
type Pair struct {
	// Key is the record's key-field value, carried as-is.
	Key any

	// Value is the numeric magnitude (accessor result or value field).
	Value float64
}

// Accessor derives a numeric value from a Record, overriding the
// value-field lookup in Pairs.
type Accessor func(Record) float64
