// Package session holds the configuration being edited in the form.
//
// A Session is created empty when the form opens, mutated by field edits and
// button add/remove, and turned into an immutable deck.Configuration by
// Finalize when the user submits.
package session

import (
	"strings"

	"github.com/billie-coop/macrodeck/internal/deck"
)

// Session is the in-progress configuration.
type Session struct {
	name         string
	fallbackName string
	rows, cols   int
	rotation     deck.Rotation
	bg           string
	buttons      []deck.ButtonSpec
}

// New creates an empty session. fallbackName is used by Finalize when the
// name field is blank; it is generated once so the user can see it up front.
func New(fallbackName string) *Session {
	return &Session{
		fallbackName: fallbackName,
		rows:         deck.MinGrid,
		cols:         deck.MinGrid,
		rotation:     deck.Horizontal,
		bg:           deck.DefaultBackground,
		buttons:      []deck.ButtonSpec{},
	}
}

// FallbackName returns the name used when the name field is blank.
func (s *Session) FallbackName() string {
	return s.fallbackName
}

// Name returns the name field as entered.
func (s *Session) Name() string {
	return s.name
}

// SetName sets the name field.
func (s *Session) SetName(name string) {
	s.name = name
}

// Grid returns the grid dimensions.
func (s *Session) Grid() (rows, cols int) {
	return s.rows, s.cols
}

// SetGrid sets the grid dimensions.
func (s *Session) SetGrid(rows, cols int) error {
	if rows < deck.MinGrid || rows > deck.MaxGrid {
		return &deck.ValidationError{Field: "rows", Message: "out of range"}
	}
	if cols < deck.MinGrid || cols > deck.MaxGrid {
		return &deck.ValidationError{Field: "cols", Message: "out of range"}
	}
	s.rows, s.cols = rows, cols
	return nil
}

// Rotation returns the rotation.
func (s *Session) Rotation() deck.Rotation {
	return s.rotation
}

// SetRotation parses and sets the rotation.
func (s *Session) SetRotation(value string) error {
	r, err := deck.ParseRotation(value)
	if err != nil {
		return err
	}
	s.rotation = r
	return nil
}

// Background returns the deck background color.
func (s *Session) Background() string {
	return s.bg
}

// SetBackground validates and sets the deck background color.
func (s *Session) SetBackground(value string) error {
	c, err := deck.NormalizeColor("bg", value)
	if err != nil {
		return err
	}
	s.bg = c
	return nil
}

// Buttons returns a copy of the button list.
func (s *Session) Buttons() []deck.ButtonSpec {
	out := make([]deck.ButtonSpec, len(s.buttons))
	copy(out, s.buttons)
	return out
}

// AddButton appends spec. The macro name is required; duplicates are allowed.
func (s *Session) AddButton(spec deck.ButtonSpec) error {
	spec.Macro = strings.TrimSpace(spec.Macro)
	spec.Text = strings.TrimSpace(spec.Text)
	if err := spec.Validate(); err != nil {
		return err
	}
	s.buttons = append(s.buttons, spec)
	return nil
}

// RemoveButton removes every button bound to macro and returns how many were
// removed. An empty button list is reported as a NotFoundError.
func (s *Session) RemoveButton(macro string) (int, error) {
	if len(s.buttons) == 0 {
		return 0, &deck.NotFoundError{Kind: "button"}
	}

	var matches []int
	for i := len(s.buttons) - 1; i >= 0; i-- {
		if s.buttons[i].Macro == macro {
			matches = append(matches, i)
		}
	}
	for _, i := range matches {
		s.buttons = append(s.buttons[:i], s.buttons[i+1:]...)
	}
	return len(matches), nil
}

// LoadFrom replaces the session contents with an existing configuration.
func (s *Session) LoadFrom(cfg deck.Configuration) error {
	rows, cols, err := cfg.Grid()
	if err != nil {
		return err
	}
	rotation, err := deck.ParseRotation(string(cfg.Rotation))
	if err != nil {
		return err
	}
	bg, err := deck.NormalizeColor("bg", cfg.Bg)
	if err != nil {
		return err
	}

	s.name = cfg.Name
	s.rows, s.cols = rows, cols
	s.rotation = rotation
	s.bg = bg
	s.buttons = cfg.Clone().Buttons
	return nil
}

// Finalize returns the configuration to hand to the store. A blank name is
// replaced by the fallback name.
func (s *Session) Finalize() deck.Configuration {
	name := strings.TrimSpace(s.name)
	if name == "" {
		name = s.fallbackName
	}

	cfg := deck.Configuration{
		Name:     name,
		Size:     deck.FormatSize(s.rows, s.cols),
		Rotation: s.rotation,
		Bg:       s.bg,
		Buttons:  s.buttons,
	}
	return cfg.Clone()
}
