// Package quality - structural validation of sequential chart data.
//
// Design principles:
//   - Accumulate every failure; never stop at the first, never panic.
//   - Findings are data: the Report is the result, not an error.
package quality

import (
	"fmt"
	"math"
	"reflect"

	"github.com/katalvlaran/cascade/record"
)

// Validate checks data for the structural problems that degrade the
// non-validating operations:
//
//	(a) key and value fields present on every record;
//	(b) value fields coerce to finite numbers (NaN/±Inf rejected);
//	(c) key-field values unique across the dataset;
//	(d) keys of non-comparable dynamic type (identity degrades to text).
//
// All failures accumulate into Report.Errors in scan order; Validate
// never returns an error itself.
//
// Complexity: O(n) time, O(n) space (seen-key set).
func Validate(data []record.Record, fields record.Fields) Report {
	fields = fields.WithDefaults()

	var errs []string
	seen := make(map[any]bool, len(data))

	for i, r := range data {
		key, hasKey := r[fields.Key]
		if !hasKey {
			errs = append(errs, fmt.Sprintf("record %d: missing key field %q", i, fields.Key))
		}

		raw, hasValue := r[fields.Value]
		switch {
		case !hasValue:
			errs = append(errs, fmt.Sprintf("record %d: missing value field %q", i, fields.Value))
		default:
			if v, ok := record.Number(raw); !ok {
				errs = append(errs, fmt.Sprintf("record %d: value field %q is not numeric (%T)", i, fields.Value, raw))
			} else if math.IsNaN(v) || math.IsInf(v, 0) {
				errs = append(errs, fmt.Sprintf("record %d: value field %q is not finite (%v)", i, fields.Value, v))
			}
		}

		if !hasKey {
			continue
		}
		if key != nil && !reflect.TypeOf(key).Comparable() {
			errs = append(errs, fmt.Sprintf("record %d: key field %q has non-comparable type %T; identity degrades to text", i, fields.Key, key))
		}
		id := record.Identity(key)
		if seen[id] {
			// Message wording is a compatibility contract; keep it stable.
			errs = append(errs, fmt.Sprintf("duplicate key: %v", key))
		}
		seen[id] = true
	}

	return Report{IsValid: len(errs) == 0, Errors: errs}
}
