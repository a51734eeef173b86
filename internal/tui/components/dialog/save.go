package dialog

import (
	"fmt"

	"github.com/billie-coop/macrodeck/internal/store"
	"github.com/billie-coop/macrodeck/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// SaveDialog asks how a finished configuration goes into the store
type SaveDialog struct {
	*BaseDialog

	name     string
	selected int
}

// NewSaveDialog creates the save choice dialog
func NewSaveDialog() *SaveDialog {
	return &SaveDialog{
		BaseDialog: NewBaseDialog("Save Configuration"),
	}
}

// Open shows the choices for the configuration named name
func (d *SaveDialog) Open(name string) {
	d.open()
	d.name = name
	// Overwrite is the safe default: it never touches other names
	d.selected = indexOf(store.Overwrite)
}

// Selected returns the highlighted action
func (d *SaveDialog) Selected() store.Action {
	return store.Actions[d.selected]
}

// Update handles messages
func (d *SaveDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.isOpen {
		return nil
	}
	if k := keyOf(msg); k != "" {
		return d.HandleKey(k)
	}
	return nil
}

// HandleKey applies a key press by name
func (d *SaveDialog) HandleKey(key string) tea.Cmd {
	if !d.isOpen {
		return nil
	}

	switch key {
	case "esc", "q":
		d.Close()
		return emit(CancelledMsg{Title: d.title})
	case "up", "left", "shift+tab", "k", "h":
		d.selected = (d.selected - 1 + len(store.Actions)) % len(store.Actions)
	case "down", "right", "tab", "j", "l":
		d.selected = (d.selected + 1) % len(store.Actions)
	case "s":
		return d.choose(store.SaveAsNew)
	case "o":
		return d.choose(store.Overwrite)
	case "a":
		return d.choose(store.Append)
	case "d":
		return d.choose(store.Delete)
	case "enter", "space":
		return d.choose(d.Selected())
	}
	return nil
}

func (d *SaveDialog) choose(action store.Action) tea.Cmd {
	d.selected = indexOf(action)
	d.Close()
	return emit(SaveChosenMsg{Action: action})
}

// View renders the dialog
func (d *SaveDialog) View() string {
	if !d.isOpen {
		return ""
	}

	s := styles.CurrentTheme().S()

	question := s.Subtitle.Render(fmt.Sprintf("Save %q as…", d.name))

	buttons := make([]string, 0, len(store.Actions))
	for i, action := range store.Actions {
		style := s.Button
		if i == d.selected {
			style = s.ButtonFocused
		}
		buttons = append(buttons, style.Width(17).Align(lipgloss.Center).Render(action.Label()))
	}

	selected := d.Selected()
	description := s.Muted.Render(selected.Describe())
	if selected == store.SaveAsNew {
		description = s.Warning.Render(styles.WarningIcon + " " + selected.Describe())
	}

	helpText := s.Subtle.Italic(true).Render("↑/↓ choose • Enter confirm • s/o/a/d shortcut • Esc cancel")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		question,
		"",
		lipgloss.JoinVertical(lipgloss.Center, buttons...),
		"",
		description,
		"",
		helpText,
	)

	return d.RenderDialog(content)
}

func indexOf(action store.Action) int {
	for i, a := range store.Actions {
		if a == action {
			return i
		}
	}
	return 0
}
