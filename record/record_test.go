package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord_GetSet(t *testing.T) {
	r := Record{"name": "Alice"}

	v, ok := r.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "Alice", v)

	_, ok = r.Get("age")
	assert.False(t, ok)

	// Set creates absent fields
	r.Set("age", "30")
	v, ok = r.Get("age")
	assert.True(t, ok)
	assert.Equal(t, "30", v)

	// Set overwrites existing fields
	r.Set("age", "31")
	assert.Equal(t, "31", r["age"])
}

func TestRecord_Matches(t *testing.T) {
	r := Record{"name": "Alice", "age": "30"}

	assert.True(t, r.Matches("name", "Alice"))
	assert.False(t, r.Matches("name", "alice")) // exact string equality
	assert.False(t, r.Matches("city", ""))      // absent field never matches
	assert.False(t, Record(nil).Matches("name", "Alice"))
}

func TestRecord_Clone(t *testing.T) {
	r := Record{"name": "Bob"}
	c := r.Clone()

	c.Set("name", "Carol")
	assert.Equal(t, "Bob", r["name"])
	assert.Equal(t, "Carol", c["name"])

	assert.Nil(t, Record(nil).Clone())
}

func TestRecord_Equal(t *testing.T) {
	assert.True(t, Record{"a": "1"}.Equal(Record{"a": "1"}))
	assert.False(t, Record{"a": "1"}.Equal(Record{"a": "2"}))
	assert.False(t, Record{"a": "1"}.Equal(Record{"a": "1", "b": "2"}))
	assert.True(t, Record(nil).Equal(Record{}))
}
