package deck

import (
	"fmt"
	"strconv"
	"strings"
)

// Rotation is the orientation the deck is rendered in.
type Rotation string

const (
	Horizontal Rotation = "horizontal"
	Vertical   Rotation = "vertical"
)

// Grid limits for rows and columns.
const (
	MinGrid = 1
	MaxGrid = 100
)

// Default colors used by a fresh form.
const (
	DefaultBackground       = "#ffffff"
	DefaultButtonForeground = "#ffffff"
	DefaultButtonBackground = "#007bff"
	DefaultButtonActive     = "#0047a6"
	DefaultScale            = Scale(1)
)

// Configuration is one named deck layout.
//
// Field order matches the key order of the documents the deck runtime reads.
type Configuration struct {
	Name     string       `json:"name"`
	Size     string       `json:"size"`
	Rotation Rotation     `json:"rotation"`
	Bg       string       `json:"bg"`
	Buttons  []ButtonSpec `json:"buttons"`
}

// ButtonSpec describes a single button on the deck and the macro it runs.
type ButtonSpec struct {
	Macro     string `json:"macro"`
	Text      string `json:"text"`
	Bg        string `json:"bg"`
	Fg        string `json:"fg"`
	Scale     Scale  `json:"scale"`
	ImgHeight string `json:"img-height"`
	ImgWidth  string `json:"img-width"`
	ImgRadius string `json:"img-radius"`
	Radius    string `json:"radius"`
	Active    string `json:"active"`
}

// NewConfiguration returns the configuration a new form starts with.
func NewConfiguration() Configuration {
	return Configuration{
		Size:     FormatSize(MinGrid, MinGrid),
		Rotation: Horizontal,
		Bg:       DefaultBackground,
		Buttons:  []ButtonSpec{},
	}
}

// NewButtonSpec returns a button with the default colors and scale.
func NewButtonSpec(macro string) ButtonSpec {
	return ButtonSpec{
		Macro:  macro,
		Bg:     DefaultButtonBackground,
		Fg:     DefaultButtonForeground,
		Active: DefaultButtonActive,
		Scale:  DefaultScale,
	}
}

// Clone returns a deep copy. The button list of the copy is never nil.
func (c Configuration) Clone() Configuration {
	out := c
	out.Buttons = make([]ButtonSpec, len(c.Buttons))
	copy(out.Buttons, c.Buttons)
	return out
}

// Grid parses the size field.
func (c Configuration) Grid() (rows, cols int, err error) {
	return ParseSize(c.Size)
}

// FormatSize renders a grid as "<rows>x<cols>".
func FormatSize(rows, cols int) string {
	return fmt.Sprintf("%dx%d", rows, cols)
}

// ParseSize parses "<rows>x<cols>" and checks both values are within the grid limits.
func ParseSize(size string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.TrimSpace(size), "x")
	if !ok {
		return 0, 0, &ValidationError{Field: "size", Message: fmt.Sprintf("%q is not <rows>x<cols>", size)}
	}
	if rows, err = ParseGridValue("rows", r); err != nil {
		return 0, 0, err
	}
	if cols, err = ParseGridValue("cols", c); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// ParseGridValue parses a single row or column count.
func ParseGridValue(field, value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("%q is not a number", value)}
	}
	if n < MinGrid || n > MaxGrid {
		return 0, &ValidationError{Field: field, Message: fmt.Sprintf("must be between %d and %d", MinGrid, MaxGrid)}
	}
	return n, nil
}

// ParseRotation accepts the rotation names case-insensitively.
func ParseRotation(value string) (Rotation, error) {
	switch Rotation(strings.ToLower(strings.TrimSpace(value))) {
	case Horizontal:
		return Horizontal, nil
	case Vertical:
		return Vertical, nil
	}
	return "", &ValidationError{Field: "rotation", Message: fmt.Sprintf("%q is not horizontal or vertical", value)}
}

// Toggle returns the other rotation.
func (r Rotation) Toggle() Rotation {
	if r == Vertical {
		return Horizontal
	}
	return Vertical
}
