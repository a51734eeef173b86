package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrFormat is returned when the store file is not a configuration object or
// an array of configuration objects.
var ErrFormat = errors.New("invalid store format")

// decodeDocument normalizes a store document into its entries. A bare object
// becomes a one-element sequence. Entries are kept as raw JSON so that the
// ones an operation does not target are written back as they were read.
func decodeDocument(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrFormat)
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrFormat)
	}

	switch trimmed[0] {
	case '{':
		return []json.RawMessage{json.RawMessage(trimmed)}, nil
	case '[':
		var entries []json.RawMessage
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFormat, err)
		}
		for i, entry := range entries {
			if !isObject(entry) {
				return nil, fmt.Errorf("%w: entry %d is not an object", ErrFormat, i)
			}
		}
		if entries == nil {
			entries = []json.RawMessage{}
		}
		return entries, nil
	}

	return nil, fmt.Errorf("%w: document is neither an object nor an array", ErrFormat)
}

// encodeDocument serializes entries with 2-space indentation. Exactly one
// entry is written as a bare object, anything else as an array.
func encodeDocument(entries []json.RawMessage) ([]byte, error) {
	var value interface{}
	switch len(entries) {
	case 1:
		value = entries[0]
	case 0:
		value = []json.RawMessage{}
	default:
		value = entries
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return nil, fmt.Errorf("failed to encode store: %w", err)
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func isObject(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// entryName returns the entry's "name" when it is present and a string.
// Entries without one never match a name.
func entryName(raw json.RawMessage) (string, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return "", false
	}
	value, ok := fields["name"]
	if !ok {
		return "", false
	}
	var name string
	if err := json.Unmarshal(value, &name); err != nil {
		return "", false
	}
	return name, true
}

// matchingIndices returns the positions of every entry named name in
// descending order, so removing them one by one never shifts a pending index.
func matchingIndices(entries []json.RawMessage, name string) []int {
	var indices []int
	for i := len(entries) - 1; i >= 0; i-- {
		if n, ok := entryName(entries[i]); ok && n == name {
			indices = append(indices, i)
		}
	}
	return indices
}
