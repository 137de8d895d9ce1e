// Package record defines the shared data model for cascade: open-ended
// labeled records, the configurable key/value field convention, and the
// two smallest processors built directly on it (index permutation and
// key/value pair projection).
//
// 🚀 What is a Record?
//
//	A Record is an open map from field name to value. Two fields carry
//	special meaning, chosen by configuration rather than by fixed name:
//	  • the key field   — identity/label of a data point ("label" by default)
//	  • the value field — its numeric magnitude ("value" by default)
//	Every other field is opaque payload, carried through untouched.
//
// ✨ Guarantees:
//   - Records are never mutated in place: every operation returns fresh
//     records and slices; callers keep full ownership of their inputs.
//   - All operations are pure functions — safe for unsynchronized
//     concurrent use.
//   - Missing or non-numeric value fields read as NaN in non-validating
//     operations (degenerate output, never a panic); use quality.Validate
//     to surface such problems as data.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/cascade/record"
//
//	data := []record.Record{
//	  {"label": "Q1", "value": 120.0},
//	  {"label": "Q2", "value": 95.5},
//	}
//	pairs := record.Pairs(data, nil, record.DefaultFields())
//	subset, err := record.Permute(data, []int{1, 0, 1})
//
// Performance: all operations are O(n) in the number of records.
package record
