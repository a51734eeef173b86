package status

import (
	"fmt"
	"time"

	"github.com/billie-coop/macrodeck/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/rivo/uniseg"
)

// MessageType represents the type of status message
type MessageType int

const (
	Info MessageType = iota
	Warning
	Error
	Success
)

// StatusMessage represents a status bar message
type StatusMessage struct {
	Content   string
	Type      MessageType
	Timestamp time.Time
}

// Component implements a status bar that shows temporary messages
type Component struct {
	message     *StatusMessage
	width       int
	leftContent string

	// Timer for clearing messages
	clearAfter time.Duration
}

// New creates a new status bar component
func New() *Component {
	return &Component{
		clearAfter: 5 * time.Second,
	}
}

// SetMessage sets a status message with the given type
func (c *Component) SetMessage(content string, msgType MessageType) tea.Cmd {
	stamp := time.Now()
	c.message = &StatusMessage{
		Content:   content,
		Type:      msgType,
		Timestamp: stamp,
	}

	return tea.Tick(c.clearAfter, func(time.Time) tea.Msg {
		return clearMessageMsg{timestamp: stamp}
	})
}

// ShowInfo shows an info message
func (c *Component) ShowInfo(message string) tea.Cmd {
	return c.SetMessage(message, Info)
}

// ShowWarning shows a warning message
func (c *Component) ShowWarning(message string) tea.Cmd {
	return c.SetMessage(message, Warning)
}

// ShowError shows an error message
func (c *Component) ShowError(message string) tea.Cmd {
	return c.SetMessage(message, Error)
}

// ShowSuccess shows a success message
func (c *Component) ShowSuccess(message string) tea.Cmd {
	return c.SetMessage(message, Success)
}

// Message returns the message currently shown, or nil
func (c *Component) Message() *StatusMessage {
	return c.message
}

// SetLeftContent sets the left side content (usually the store path)
func (c *Component) SetLeftContent(content string) {
	c.leftContent = content
}

// SetWidth sets the width of the bar
func (c *Component) SetWidth(width int) {
	c.width = width
}

// clearMessageMsg is sent when a status message should be cleared
type clearMessageMsg struct {
	timestamp time.Time
}

// Update clears expired messages
func (c *Component) Update(msg tea.Msg) tea.Cmd {
	if msg, ok := msg.(clearMessageMsg); ok {
		// Only clear if this is for the current message
		if c.message != nil && msg.timestamp.Equal(c.message.Timestamp) {
			c.message = nil
		}
	}
	return nil
}

// View renders the bar
func (c *Component) View() string {
	if c.width == 0 {
		return ""
	}

	theme := styles.CurrentTheme()

	statusStyle := lipgloss.NewStyle().
		Width(c.width).
		Height(1).
		Background(theme.BgSubtle).
		Foreground(theme.FgBase).
		Padding(0, 1)

	leftContent := c.leftContent
	rightContent, rightStyle := c.formatMessage()

	availableWidth := c.width - 2 // padding

	if width(leftContent)+width(rightContent) > availableWidth {
		rightContent = truncate(rightContent, 40)
		if remaining := availableWidth - width(rightContent); remaining > 3 {
			leftContent = truncate(leftContent, remaining)
		}
	}

	content := leftContent
	if rightContent != "" {
		spacesNeeded := availableWidth - width(leftContent) - width(rightContent)
		if spacesNeeded > 0 {
			content += fmt.Sprintf("%*s", spacesNeeded, "")
		} else {
			content += " "
		}
		content += rightStyle.Render(rightContent)
	}

	return statusStyle.Render(content)
}

// formatMessage returns the plain message text and the style it is shown in
func (c *Component) formatMessage() (string, lipgloss.Style) {
	s := styles.CurrentTheme().S()
	if c.message == nil {
		return "", s.Text
	}

	switch c.message.Type {
	case Success:
		return styles.CheckIcon + " " + c.message.Content, s.Success
	case Warning:
		return styles.WarningIcon + " " + c.message.Content, s.Warning
	case Error:
		return styles.ErrorIcon + " " + c.message.Content, s.Error
	default:
		return styles.InfoIcon + " " + c.message.Content, s.Info
	}
}

func width(s string) int {
	return lipgloss.Width(s)
}

// truncate shortens plain text to limit cells, ending in "..."
func truncate(s string, limit int) string {
	if width(s) <= limit || limit <= 3 {
		return s
	}

	out := ""
	cells := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if cells+w > limit-3 {
			break
		}
		out += g.Str()
		cells += w
	}
	return out + "..."
}
