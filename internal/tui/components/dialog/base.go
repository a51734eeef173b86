package dialog

import (
	"github.com/billie-coop/macrodeck/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// BaseDialog provides common dialog functionality
type BaseDialog struct {
	title  string
	isOpen bool
	err    string

	width  int
	height int
}

// NewBaseDialog creates a new base dialog
func NewBaseDialog(title string) *BaseDialog {
	return &BaseDialog{title: title}
}

// IsOpen returns whether the dialog is open
func (d *BaseDialog) IsOpen() bool {
	return d.isOpen
}

// open marks the dialog open and clears any previous error
func (d *BaseDialog) open() {
	d.isOpen = true
	d.err = ""
}

// Close closes the dialog
func (d *BaseDialog) Close() {
	d.isOpen = false
}

// SetSize sets the area the dialog is centered in
func (d *BaseDialog) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// SetError shows a validation message inside the dialog
func (d *BaseDialog) SetError(msg string) {
	d.err = msg
}

// Error returns the validation message currently shown
func (d *BaseDialog) Error() string {
	return d.err
}

// RenderDialog renders the dialog with overlay
func (d *BaseDialog) RenderDialog(content string) string {
	if !d.isOpen {
		return ""
	}

	theme := styles.CurrentTheme()

	parts := []string{}
	if d.title != "" {
		parts = append(parts, theme.S().Title.MarginBottom(1).Render(d.title))
	}
	parts = append(parts, content)
	if d.err != "" {
		parts = append(parts, "", theme.S().Error.Render(styles.ErrorIcon+" "+d.err))
	}

	dialog := theme.S().BorderFocused.
		Padding(1, 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))

	if d.width == 0 || d.height == 0 {
		return dialog
	}

	// Center the dialog on the overlay
	return lipgloss.Place(
		d.width,
		d.height,
		lipgloss.Center,
		lipgloss.Center,
		dialog,
	)
}

// keyOf extracts the key name from a message, or "" for non-key messages
func keyOf(msg tea.Msg) string {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return keyMsg.String()
	}
	return ""
}

// emit wraps a result message in a command
func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
