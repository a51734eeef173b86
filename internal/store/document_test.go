package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"bare object", `{"name":"A"}`, 1},
		{"single element array", `[{"name":"A"}]`, 1},
		{"array", `[{"name":"A"},{"name":"B"}]`, 2},
		{"empty array", `[]`, 0},
		{"surrounding whitespace", "\n  {\"name\":\"A\"}\n", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := decodeDocument([]byte(tt.input))
			require.NoError(t, err)
			assert.Len(t, entries, tt.want)
			assert.NotNil(t, entries)
		})
	}
}

func TestEncodeDocument_Collapse(t *testing.T) {
	one := []json.RawMessage{json.RawMessage(`{"name":"A","buttons":[]}`)}
	data, err := encodeDocument(one)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"A\",\n  \"buttons\": []\n}", string(data))

	two := append(one, json.RawMessage(`{"name":"B"}`))
	data, err = encodeDocument(two)
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"name\": \"A\",\n    \"buttons\": []\n  },\n  {\n    \"name\": \"B\"\n  }\n]", string(data))

	data, err = encodeDocument(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestRoundTrip_SingleEntryIsBare(t *testing.T) {
	data, err := encodeDocument([]json.RawMessage{json.RawMessage(`{"name":"A"}`)})
	require.NoError(t, err)

	var bare map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &bare), "single entry must be written as an object")
	assert.Equal(t, "A", bare["name"])

	entries, err := decodeDocument(data)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.JSONEq(t, `{"name":"A"}`, string(entries[0]))
}

func TestMatchingIndices_Descending(t *testing.T) {
	entries := []json.RawMessage{
		json.RawMessage(`{"name":"x"}`),
		json.RawMessage(`{"name":"y"}`),
		json.RawMessage(`{"name":"x"}`),
		json.RawMessage(`{}`),
		json.RawMessage(`{"name":"x"}`),
	}
	assert.Equal(t, []int{4, 2, 0}, matchingIndices(entries, "x"))
	assert.Empty(t, matchingIndices(entries, "z"))
}
