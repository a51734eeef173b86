package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/billie-coop/macrodeck/internal/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, initial string) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "macrodeck", "config.json")
	if initial != "" {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(initial), 0o644))
	}
	return New(path, nil)
}

func readFile(t *testing.T, s *Store) string {
	t.Helper()
	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	return string(data)
}

// readEntries decodes the file into generic values so tests can compare
// entries written by hand with entries written by the store.
func readEntries(t *testing.T, s *Store) []map[string]interface{} {
	t.Helper()
	var doc interface{}
	require.NoError(t, json.Unmarshal([]byte(readFile(t, s)), &doc))
	switch v := doc.(type) {
	case map[string]interface{}:
		return []map[string]interface{}{v}
	case []interface{}:
		out := make([]map[string]interface{}, len(v))
		for i, e := range v {
			out[i] = e.(map[string]interface{})
		}
		return out
	}
	t.Fatalf("unexpected document %T", doc)
	return nil
}

func names(entries []map[string]interface{}) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i], _ = e["name"].(string)
	}
	return out
}

func config(name string, macros ...string) deck.Configuration {
	cfg := deck.NewConfiguration()
	cfg.Name = name
	for _, m := range macros {
		cfg.Buttons = append(cfg.Buttons, deck.NewButtonSpec(m))
	}
	return cfg
}

func TestSaveAsNew_ReplacesEverything(t *testing.T) {
	tests := []struct {
		name    string
		initial string
	}{
		{"missing file", ""},
		{"bare object", `{"name":"Old","buttons":[]}`},
		{"array", `[{"name":"A"},{"name":"B"},{"name":"C"}]`},
		{"corrupt", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t, tt.initial)
			require.NoError(t, s.SaveAsNew(config("Desk")))

			want := "{\n" +
				"  \"name\": \"Desk\",\n" +
				"  \"size\": \"1x1\",\n" +
				"  \"rotation\": \"horizontal\",\n" +
				"  \"bg\": \"#ffffff\",\n" +
				"  \"buttons\": []\n" +
				"}"
			assert.Equal(t, want, readFile(t, s))

			got, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, []deck.Configuration{config("Desk")}, got)
		})
	}
}

func TestOverwrite_ReplacesMatchesInPlace(t *testing.T) {
	s := newTestStore(t, `[{"name":"A","buttons":[]},{"name":"B","buttons":[]}]`)

	n, err := s.Overwrite(config("A", "x"))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries := readEntries(t, s)
	require.Len(t, entries, 2)
	assert.Equal(t, []string{"A", "B"}, names(entries))

	buttons := entries[0]["buttons"].([]interface{})
	require.Len(t, buttons, 1)
	assert.Equal(t, "x", buttons[0].(map[string]interface{})["macro"])

	assert.Equal(t, map[string]interface{}{"name": "B", "buttons": []interface{}{}}, entries[1])
}

func TestOverwrite_AllMatchesKeepPositions(t *testing.T) {
	s := newTestStore(t, `[{"name":"A"},{"name":"B","extra":true},{"name":"A"},{"name":"C"}]`)

	n, err := s.Overwrite(config("A", "m"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	entries := readEntries(t, s)
	assert.Equal(t, []string{"A", "B", "A", "C"}, names(entries))
	assert.Equal(t, "1x1", entries[0]["size"])
	assert.Equal(t, "1x1", entries[2]["size"])
	assert.Equal(t, map[string]interface{}{"name": "B", "extra": true}, entries[1])
	assert.Equal(t, map[string]interface{}{"name": "C"}, entries[3])
}

func TestOverwrite_NoMatchLeavesStoreUnchanged(t *testing.T) {
	initial := `[{"name":"A"},{"name":"B"}]`
	s := newTestStore(t, initial)

	n, err := s.Overwrite(config("Z"))
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, initial, readFile(t, s))

	empty := newTestStore(t, "")
	n, err = empty.Overwrite(config("Z"))
	require.NoError(t, err)
	assert.Zero(t, n)
	_, err = os.Stat(empty.Path())
	assert.True(t, os.IsNotExist(err), "no store should be created")
}

func TestOverwrite_SingleEntryStaysBare(t *testing.T) {
	s := newTestStore(t, `{"name":"A"}`)

	_, err := s.Overwrite(config("A", "x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(readFile(t, s), "{"))
}

func TestAppend(t *testing.T) {
	s := newTestStore(t, `[{"name":"A"},{"name":"B"}]`)

	require.NoError(t, s.Append(config("A")))

	entries := readEntries(t, s)
	assert.Equal(t, []string{"A", "B", "A"}, names(entries))
	assert.Equal(t, map[string]interface{}{"name": "A"}, entries[0])
}

func TestAppend_BareObjectBecomesArray(t *testing.T) {
	s := newTestStore(t, `{"name":"A"}`)

	require.NoError(t, s.Append(config("B")))
	assert.True(t, strings.HasPrefix(readFile(t, s), "["))
	assert.Equal(t, []string{"A", "B"}, names(readEntries(t, s)))
}

func TestAppend_EmptyStoreWritesBareObject(t *testing.T) {
	s := newTestStore(t, "")

	require.NoError(t, s.Append(config("A")))
	assert.True(t, strings.HasPrefix(readFile(t, s), "{"))
}

func TestDelete_RemovesAllMatches(t *testing.T) {
	s := newTestStore(t, `[{"name":"A"},{"name":"B"},{"name":"A"},{"name":"C"},{"name":"A"}]`)

	n, err := s.Delete("A")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"B", "C"}, names(readEntries(t, s)))
}

func TestDelete_CollapsesToBareObject(t *testing.T) {
	s := newTestStore(t, `[{"name":"A"},{"name":"B"}]`)

	_, err := s.Delete("A")
	require.NoError(t, err)

	content := readFile(t, s)
	assert.True(t, strings.HasPrefix(content, "{"))
	assert.JSONEq(t, `{"name":"B"}`, content)
}

func TestDelete_LastEntryLeavesEmptyArray(t *testing.T) {
	s := newTestStore(t, `{"name":"A"}`)

	n, err := s.Delete("A")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "[]", readFile(t, s))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDelete_NoMatch(t *testing.T) {
	initial := `[{"name":"A"},{"title":"untitled"}]`
	s := newTestStore(t, initial)

	n, err := s.Delete("B")
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, initial, readFile(t, s))
}

func TestNamesSkipEntriesWithoutStringName(t *testing.T) {
	s := newTestStore(t, `[{"name":"A"},{"title":"x"},{"name":7},{"name":"B"}]`)

	got, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, got)

	n, err := s.Delete("7")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFind(t *testing.T) {
	s := newTestStore(t, `[{"name":"A","size":"2x3","rotation":"vertical","bg":"#000000","buttons":[{"macro":"x","scale":1.5}]}]`)

	cfg, err := s.Find("A")
	require.NoError(t, err)
	assert.Equal(t, "2x3", cfg.Size)
	assert.Equal(t, deck.Vertical, cfg.Rotation)
	require.Len(t, cfg.Buttons, 1)
	assert.Equal(t, deck.Scale(1.5), cfg.Buttons[0].Scale)

	_, err = s.Find("missing")
	assert.ErrorIs(t, err, deck.ErrNotFound)
}

func TestMalformedStore(t *testing.T) {
	for _, doc := range []string{`42`, `"text"`, `null`, `true`, `[1,2]`, `[{"name":"A"},"B"]`, `{broken`, `   `} {
		t.Run(doc, func(t *testing.T) {
			s := newTestStore(t, doc)

			_, err := s.Load()
			assert.ErrorIs(t, err, ErrFormat)

			_, err = s.Overwrite(config("A"))
			assert.ErrorIs(t, err, ErrFormat)
			assert.ErrorIs(t, s.Append(config("A")), ErrFormat)
			_, err = s.Delete("A")
			assert.ErrorIs(t, err, ErrFormat)

			assert.Equal(t, doc, readFile(t, s), "malformed store must not be rewritten")
		})
	}
}

func TestWritesDoNotEscapeHTML(t *testing.T) {
	s := newTestStore(t, "")

	require.NoError(t, s.SaveAsNew(config("<A&B>")))
	assert.Contains(t, readFile(t, s), `"name": "<A&B>"`)
}

func TestApply(t *testing.T) {
	s := newTestStore(t, `[{"name":"A"},{"name":"B"}]`)

	res, err := s.Apply(Overwrite, config("B"))
	require.NoError(t, err)
	assert.Equal(t, Result{Action: Overwrite, Name: "B", Affected: 1}, res)

	res, err = s.Apply(Append, config("C"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Affected)

	res, err = s.Apply(Delete, config("A"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Affected)
	assert.Equal(t, []string{"B", "C"}, names(readEntries(t, s)))

	res, err = s.Apply(SaveAsNew, config("D"))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Affected)
	assert.Equal(t, []string{"D"}, names(readEntries(t, s)))

	_, err = s.Apply(Action("merge"), config("D"))
	assert.Error(t, err)
}

func TestActionLabels(t *testing.T) {
	for _, a := range Actions {
		assert.NotEmpty(t, a.Label())
		assert.NotEmpty(t, a.Describe())
	}
	assert.Equal(t, "Save As New", SaveAsNew.Label())
}

func TestRenderMatchesSaveAsNew(t *testing.T) {
	s := newTestStore(t, `[{"name":"A"}]`)
	cfg := config("Studio", "mute")

	doc, err := Render(cfg)
	require.NoError(t, err)
	require.NoError(t, s.SaveAsNew(cfg))
	assert.Equal(t, readFile(t, s), string(doc))
	assert.True(t, strings.HasPrefix(string(doc), "{\n  \"name\": \"Studio\""))
	assert.Contains(t, string(doc), `"scale": 1.0`)
}
