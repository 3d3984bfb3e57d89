package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// For the record payloads flatstore persists (slices of string-to-string
// maps), JSON is stable and portable across implementations of the legacy
// file format.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) { return json.Marshal(v) }

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// Default is the default codec used by the library.
//
// Both built-in codecs emit plain JSON, so snapshots written with one decode
// with the other; Default only selects the implementation.
var Default Codec = GoJSON{}
