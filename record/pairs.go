// Package record - projection of records into key/value pairs.
package record

// Pairs projects data into {Key, Value} pairs: Key is each record's
// key-field value; Value is accessor(record) when accessor is non-nil,
// else the record's value field (NaN when missing or non-numeric).
//
// Output length always equals len(data); nothing is filtered.
//
// Complexity: O(n) time and space.
func Pairs(data []Record, accessor Accessor, fields Fields) []Pair {
	fields = fields.WithDefaults()

	out := make([]Pair, len(data))
	for i, r := range data {
		out[i].Key = r[fields.Key]
		if accessor != nil {
			out[i].Value = accessor(r)
		} else {
			out[i].Value = Value(r, fields)
		}
	}

	return out
}
