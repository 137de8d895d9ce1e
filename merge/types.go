// Package merge core types: the Strategy and Conflict enumerations,
// merge Options, and sentinel errors.
package merge

import (
	"errors"

	"github.com/katalvlaran/cascade/record"
)

// Sentinel errors for merge operations.
var (
	// ErrUnknownStrategy indicates an unrecognized merge Strategy value.
	ErrUnknownStrategy = errors.New("merge: unknown merge strategy")

	// ErrUnknownConflict indicates an unrecognized Conflict value.
	ErrUnknownConflict = errors.New("merge: unknown conflict resolution")

	// ErrBadThreshold indicates a similarity threshold that is negative,
	// NaN, or infinite.
	ErrBadThreshold = errors.New("merge: similarity threshold must be finite and non-negative")
)

// SimilarKeySeparator joins member keys on a cluster's representative.
const SimilarKeySeparator = " + "

// Strategy selects how repeated sightings of a key fold together.
type Strategy int

const (
	// Combine merges every field structurally; per-field conflicts are
	// resolved by the configured Conflict.
	Combine Strategy = iota
	// Override replaces the whole record with the latest sighting.
	Override
	// Average keeps the running mean of the value field.
	Average
	// Sum keeps the running sum of the value field.
	Sum
)

// String implements fmt.Stringer for Strategy.
func (s Strategy) String() string {
	switch s {
	case Combine:
		return "combine"
	case Override:
		return "override"
	case Average:
		return "average"
	case Sum:
		return "sum"
	default:
		return "unknown"
	}
}

// Conflict resolves a per-field collision under the Combine strategy.
type Conflict int

const (
	// First keeps the already-accumulated field value.
	First Conflict = iota
	// Last overwrites with the newcomer's field value.
	Last
	// Max keeps the numerically larger value when both sides are numbers,
	// else falls back to Last.
	Max
	// Min keeps the numerically smaller value when both sides are numbers,
	// else falls back to Last.
	Min
)

// String implements fmt.Stringer for Conflict.
func (c Conflict) String() string {
	switch c {
	case First:
		return "first"
	case Last:
		return "last"
	case Max:
		return "max"
	case Min:
		return "min"
	default:
		return "unknown"
	}
}

// Options configures Datasets.
type Options struct {
	// Strategy selects the fold applied on repeated keys.
	Strategy Strategy

	// Conflict resolves per-field collisions (Combine strategy only).
	Conflict Conflict

	// Fields names the key/value fields; zero value resolves to defaults.
	Fields record.Fields
}

// withDefaults resolves zero-valued members once at entry.
func (o Options) withDefaults() Options {
	o.Fields = o.Fields.WithDefaults()

	return o
}
