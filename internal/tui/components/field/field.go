// Package field provides the single-line text input used by the form and
// its dialogs.
package field

import (
	"unicode/utf8"

	"github.com/billie-coop/macrodeck/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Input is a basic text input field
type Input struct {
	label       string
	value       []rune
	placeholder string
	focused     bool
	cursorPos   int
	charLimit   int
}

// New creates a new input with a label
func New(label string) *Input {
	return &Input{label: label}
}

// Label returns the field label
func (t *Input) Label() string {
	return t.label
}

// Value returns the current value
func (t *Input) Value() string {
	return string(t.value)
}

// SetValue sets the value and moves the cursor to the end
func (t *Input) SetValue(value string) {
	t.value = []rune(value)
	if t.charLimit > 0 && len(t.value) > t.charLimit {
		t.value = t.value[:t.charLimit]
	}
	t.cursorPos = len(t.value)
}

// SetPlaceholder sets the placeholder text
func (t *Input) SetPlaceholder(placeholder string) {
	t.placeholder = placeholder
}

// Placeholder returns the placeholder text
func (t *Input) Placeholder() string {
	return t.placeholder
}

// SetCharLimit caps the value length. Zero means unlimited.
func (t *Input) SetCharLimit(n int) {
	t.charLimit = n
}

// Focus focuses the input
func (t *Input) Focus() {
	t.focused = true
}

// Blur removes focus
func (t *Input) Blur() {
	t.focused = false
}

// Focused reports whether the input has focus
func (t *Input) Focused() bool {
	return t.focused
}

// Update handles input events
func (t *Input) Update(msg tea.Msg) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		t.HandleKey(keyMsg.String())
	}
}

// HandleKey applies a key press by name and reports whether it was consumed
func (t *Input) HandleKey(key string) bool {
	if !t.focused {
		return false
	}

	switch key {
	case "backspace":
		if t.cursorPos > 0 {
			t.value = append(t.value[:t.cursorPos-1], t.value[t.cursorPos:]...)
			t.cursorPos--
		}
	case "delete":
		if t.cursorPos < len(t.value) {
			t.value = append(t.value[:t.cursorPos], t.value[t.cursorPos+1:]...)
		}
	case "left":
		if t.cursorPos > 0 {
			t.cursorPos--
		}
	case "right":
		if t.cursorPos < len(t.value) {
			t.cursorPos++
		}
	case "home", "ctrl+a":
		t.cursorPos = 0
	case "end", "ctrl+e":
		t.cursorPos = len(t.value)
	case "ctrl+u":
		t.value = t.value[t.cursorPos:]
		t.cursorPos = 0
	case "space":
		return t.insert(' ')
	default:
		// Regular character input
		if utf8.RuneCountInString(key) != 1 {
			return false
		}
		r, _ := utf8.DecodeRuneInString(key)
		return t.insert(r)
	}

	return true
}

func (t *Input) insert(r rune) bool {
	if t.charLimit > 0 && len(t.value) >= t.charLimit {
		return true
	}
	t.value = append(t.value[:t.cursorPos], append([]rune{r}, t.value[t.cursorPos:]...)...)
	t.cursorPos++
	return true
}

// View renders the input
func (t *Input) View() string {
	theme := styles.CurrentTheme()
	style := lipgloss.NewStyle().Foreground(theme.FgBase)

	if !t.focused {
		if len(t.value) == 0 && t.placeholder != "" {
			return style.Foreground(theme.FgSubtle).Render(t.placeholder)
		}
		return style.Render(string(t.value))
	}

	cursorStyle := lipgloss.NewStyle().
		Background(theme.Accent).
		Foreground(theme.FgInverted)

	// Show cursor
	if t.cursorPos < len(t.value) {
		before := string(t.value[:t.cursorPos])
		after := string(t.value[t.cursorPos+1:])
		cursor := cursorStyle.Render(string(t.value[t.cursorPos]))
		return style.Render(before) + cursor + style.Render(after)
	}

	if len(t.value) == 0 && t.placeholder != "" {
		return cursorStyle.Render(" ") + style.Foreground(theme.FgSubtle).Render(t.placeholder)
	}
	return style.Render(string(t.value)) + cursorStyle.Render(" ")
}
