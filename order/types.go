// Package order core types: the Strategy and Direction enumerations,
// arrangement Options, and sentinel errors.
package order

import (
	"errors"

	"github.com/katalvlaran/cascade/record"
)

// Sentinel errors for order operations.
var (
	// ErrUnknownStrategy indicates an unrecognized Strategy value.
	ErrUnknownStrategy = errors.New("order: unknown sorting strategy")

	// ErrUnknownDirection indicates an unrecognized Direction value.
	ErrUnknownDirection = errors.New("order: unknown sorting direction")
)

// Strategy selects the comparator used inside each group.
type Strategy int

const (
	// ByValue compares the configured field numerically.
	ByValue Strategy = iota
	// ByCumulative compares running sums computed in original input order.
	ByCumulative
	// ByMagnitude compares absolute values of the configured field.
	ByMagnitude
	// ByAlphabetical compares the configured field's text lexicographically.
	ByAlphabetical
)

// String implements fmt.Stringer for Strategy.
func (s Strategy) String() string {
	switch s {
	case ByValue:
		return "value"
	case ByCumulative:
		return "cumulative"
	case ByMagnitude:
		return "magnitude"
	case ByAlphabetical:
		return "alphabetical"
	default:
		return "unknown"
	}
}

// Direction selects ascending or descending order.
type Direction int

const (
	// Ascending keeps the comparator as-is.
	Ascending Direction = iota
	// Descending negates the comparator.
	Descending
)

// String implements fmt.Stringer for Direction.
func (d Direction) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Options configures Arrange.
type Options struct {
	// Field is the record field the comparator reads.
	// Empty resolves to the default value field ("value").
	Field string

	// Direction applies the comparator ascending or descending.
	Direction Direction

	// Strategy selects the comparator (see the Strategy constants).
	Strategy Strategy

	// GroupBy, when non-empty, partitions the input by that field's text
	// before sorting; groups keep their first-seen order.
	GroupBy string
}

// withDefaults resolves zero-valued members once at entry.
func (o Options) withDefaults() Options {
	if o.Field == "" {
		o.Field = record.DefaultValueField
	}

	return o
}
