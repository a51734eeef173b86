package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func typeKeys(in *Input, keys ...string) {
	for _, k := range keys {
		in.HandleKey(k)
	}
}

func TestInput_Editing(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"typing", []string{"m", "u", "t", "e"}, "mute"},
		{"space", []string{"a", "space", "b"}, "a b"},
		{"backspace", []string{"a", "b", "backspace"}, "a"},
		{"insert in middle", []string{"a", "c", "left", "b"}, "abc"},
		{"home and delete", []string{"x", "a", "home", "delete"}, "a"},
		{"clear before cursor", []string{"a", "b", "ctrl+u", "c"}, "c"},
		{"unicode", []string{"é", "ü", "backspace"}, "é"},
		{"named keys ignored", []string{"a", "tab", "enter", "up"}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := New("Macro")
			in.Focus()
			typeKeys(in, tt.keys...)
			assert.Equal(t, tt.want, in.Value())
		})
	}
}

func TestInput_IgnoresKeysWhenBlurred(t *testing.T) {
	in := New("Name")
	assert.False(t, in.HandleKey("a"))
	assert.Empty(t, in.Value())
}

func TestInput_CharLimit(t *testing.T) {
	in := New("Rows")
	in.SetCharLimit(3)
	in.Focus()
	typeKeys(in, "1", "2", "3", "4")
	assert.Equal(t, "123", in.Value())

	in.SetValue("98765")
	assert.Equal(t, "987", in.Value())
}

func TestInput_View(t *testing.T) {
	in := New("Name")
	in.SetPlaceholder("BraveOtter")
	assert.Contains(t, in.View(), "BraveOtter")
	assert.Equal(t, "BraveOtter", in.Placeholder())

	in.SetValue("Studio")
	in.Focus()
	assert.Contains(t, in.View(), "Studio")
	assert.Equal(t, "Name", in.Label())
	assert.True(t, in.Focused())
}
