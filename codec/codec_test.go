package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	c, ok := ByName("json")
	require.True(t, ok)
	assert.Equal(t, "json", c.Name())

	c, ok = ByName("go-json")
	require.True(t, ok)
	assert.Equal(t, "go-json", c.Name())

	_, ok = ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecsAgree(t *testing.T) {
	// Both codecs must produce interchangeable payloads for record sequences.
	in := []map[string]string{
		{"name": "Alice", "age": "30"},
		{"name": "Bob"},
	}

	for _, enc := range []Codec{JSON{}, GoJSON{}} {
		data, err := enc.Marshal(in)
		require.NoError(t, err)

		for _, dec := range []Codec{JSON{}, GoJSON{}} {
			var out []map[string]string
			require.NoError(t, dec.Unmarshal(data, &out))
			assert.Equal(t, in, out, "%s -> %s", enc.Name(), dec.Name())
		}
	}
}

func TestMustMarshal(t *testing.T) {
	b := MustMarshal(nil, map[string]string{"a": "1"})
	assert.JSONEq(t, `{"a":"1"}`, string(b))

	assert.Panics(t, func() {
		MustMarshal(JSON{}, make(chan int))
	})
}
