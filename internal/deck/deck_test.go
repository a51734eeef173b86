package deck

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfiguration_Defaults(t *testing.T) {
	cfg := NewConfiguration()

	assert.Equal(t, "", cfg.Name)
	assert.Equal(t, "1x1", cfg.Size)
	assert.Equal(t, Horizontal, cfg.Rotation)
	assert.Equal(t, "#ffffff", cfg.Bg)
	assert.NotNil(t, cfg.Buttons)
	assert.Empty(t, cfg.Buttons)
}

func TestConfiguration_JSONKeyOrder(t *testing.T) {
	cfg := NewConfiguration()
	cfg.Name = "Desk"
	cfg.Buttons = append(cfg.Buttons, NewButtonSpec("mute"))

	data, err := json.Marshal(cfg)
	require.NoError(t, err)

	want := `{"name":"Desk","size":"1x1","rotation":"horizontal","bg":"#ffffff","buttons":[` +
		`{"macro":"mute","text":"","bg":"#007bff","fg":"#ffffff","scale":1.0,` +
		`"img-height":"","img-width":"","img-radius":"","radius":"","active":"#0047a6"}]}`
	assert.Equal(t, want, string(data))
}

func TestConfiguration_CloneIsDeep(t *testing.T) {
	cfg := NewConfiguration()
	cfg.Buttons = append(cfg.Buttons, NewButtonSpec("a"))

	clone := cfg.Clone()
	clone.Buttons[0].Macro = "b"

	assert.Equal(t, "a", cfg.Buttons[0].Macro)

	var empty Configuration
	assert.NotNil(t, empty.Clone().Buttons)
}

func TestScale_JSON(t *testing.T) {
	tests := []struct {
		scale Scale
		want  string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{1.5, "1.5"},
		{2, "2.0"},
		{0.25, "0.25"},
	}

	for _, tt := range tests {
		data, err := json.Marshal(tt.scale)
		require.NoError(t, err)
		assert.Equal(t, tt.want, string(data))

		var back Scale
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, tt.scale, back)
	}

	var s Scale
	assert.Error(t, json.Unmarshal([]byte(`"big"`), &s))
}

func TestParseScale(t *testing.T) {
	s, err := ParseScale("")
	require.NoError(t, err)
	assert.Equal(t, DefaultScale, s)

	s, err = ParseScale(" 1.75 ")
	require.NoError(t, err)
	assert.Equal(t, Scale(1.75), s)

	for _, bad := range []string{"-0.1", "2.01", "abc", "NaN", "nan", "+Inf", "-Inf"} {
		_, err := ParseScale(bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestParseSize(t *testing.T) {
	rows, cols, err := ParseSize("3x4")
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)

	for _, bad := range []string{"", "3", "0x1", "1x101", "ax2", "2x"} {
		_, _, err := ParseSize(bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}

	assert.Equal(t, "7x2", FormatSize(7, 2))
}

func TestParseRotation(t *testing.T) {
	r, err := ParseRotation("Vertical")
	require.NoError(t, err)
	assert.Equal(t, Vertical, r)
	assert.Equal(t, Horizontal, r.Toggle())
	assert.Equal(t, Vertical, Horizontal.Toggle())

	_, err = ParseRotation("diagonal")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestNormalizeColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#FFFFFF", "#ffffff"},
		{"007BFF", "#007bff"},
		{"#abc", "#aabbcc"},
		{" #0047a6 ", "#0047a6"},
	}
	for _, tt := range tests {
		got, err := NormalizeColor("bg", tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []string{"", "#12345", "#1234567", "#zzzzzz", "blue"} {
		_, err := NormalizeColor("bg", bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestNormalizeDimension(t *testing.T) {
	for _, ok := range []string{"", "auto", "AUTO", "50%", "12px", "12.5px"} {
		_, err := NormalizeDimension("radius", ok)
		assert.NoError(t, err, ok)
	}
	for _, bad := range []string{"12", "px", "-3px", "big"} {
		_, err := NormalizeDimension("radius", bad)
		assert.ErrorIs(t, err, ErrValidation, bad)
	}
}

func TestButtonSpec_Validate(t *testing.T) {
	assert.NoError(t, NewButtonSpec("mute").Validate())

	err := NewButtonSpec("   ").Validate()
	require.Error(t, err)
	assert.Equal(t, "macro field required", err.Error())

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "macro", verr.Field)

	b := NewButtonSpec("x")
	b.Scale = 3
	assert.ErrorIs(t, b.Validate(), ErrValidation)

	b.Scale = Scale(math.NaN())
	assert.ErrorIs(t, b.Validate(), ErrValidation)
}

func TestScale_MarshalRejectsNonFinite(t *testing.T) {
	for _, s := range []Scale{Scale(math.NaN()), Scale(math.Inf(1))} {
		b := NewButtonSpec("x")
		b.Scale = s
		_, err := json.Marshal(b)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestNotFoundError(t *testing.T) {
	err := error(&NotFoundError{Kind: "button"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Equal(t, "no button found", err.Error())

	named := &NotFoundError{Kind: "configuration", Name: "A"}
	assert.Equal(t, `configuration "A" not found`, named.Error())
}
