// Package record defines the flat, schema-free record model.
//
// A Record is an open-ended mapping from field name to field value. Different
// records may carry different field sets; values are opaque strings and are
// never coerced or normalized. Records have no identity beyond their position
// in a store and their field contents.
package record

import "maps"

// Record is one flat set of named string fields.
//
// Record is a reference type: handing a Record to a store and mutating it
// afterwards mutates the stored record. Use Clone when that is not wanted.
type Record map[string]string

// Get returns the value of field key and whether the field is present.
func (r Record) Get(key string) (string, bool) {
	v, ok := r[key]
	return v, ok
}

// Set assigns value to field key, creating the field if absent.
//
// This is unconditional field assignment: it cannot fail, and it does not
// validate that the field existed before.
func (r Record) Set(key, value string) {
	r[key] = value
}

// Matches reports whether field key is present and its value equals value
// exactly. No normalization, no type coercion.
func (r Record) Matches(key, value string) bool {
	v, ok := r[key]
	return ok && v == value
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	return maps.Clone(r)
}

// Equal reports whether two records carry identical field mappings.
func (r Record) Equal(other Record) bool {
	return maps.Equal(r, other)
}
