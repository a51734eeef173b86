package dialog

import (
	"strings"

	"github.com/billie-coop/macrodeck/internal/tui/components/field"
	"github.com/billie-coop/macrodeck/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// RemoveDialog asks which macro's buttons to remove
type RemoveDialog struct {
	*BaseDialog

	input   *field.Input
	current []string
	pick    int
}

// NewRemoveDialog creates the remove dialog
func NewRemoveDialog() *RemoveDialog {
	in := field.New("Macro")
	in.SetPlaceholder("macro to remove")
	return &RemoveDialog{
		BaseDialog: NewBaseDialog("Remove Macro"),
		input:      in,
	}
}

// Open shows the dialog for the macros currently on the deck, in button order
func (d *RemoveDialog) Open(current []string) {
	d.open()
	d.current = uniqueInOrder(current)
	d.pick = -1
	d.input.SetValue("")
	d.input.Focus()
}

// Update handles messages
func (d *RemoveDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.isOpen {
		return nil
	}
	if k := keyOf(msg); k != "" {
		return d.HandleKey(k)
	}
	return nil
}

// HandleKey applies a key press by name
func (d *RemoveDialog) HandleKey(key string) tea.Cmd {
	if !d.isOpen {
		return nil
	}

	switch key {
	case "esc":
		d.Close()
		return emit(CancelledMsg{Title: d.title})
	case "tab", "down":
		d.cycle(1)
	case "shift+tab", "up":
		d.cycle(-1)
	case "enter":
		macro := strings.TrimSpace(d.input.Value())
		if macro == "" {
			d.SetError("macro field required")
			return nil
		}
		d.Close()
		return emit(RemoveRequestedMsg{Macro: macro})
	default:
		d.input.HandleKey(key)
	}
	return nil
}

func (d *RemoveDialog) cycle(step int) {
	if len(d.current) == 0 {
		return
	}
	if d.pick < 0 && step < 0 {
		d.pick = len(d.current) - 1
	} else {
		d.pick = (d.pick + step + len(d.current)) % len(d.current)
	}
	d.input.SetValue(d.current[d.pick])
}

// Value returns the macro name entered
func (d *RemoveDialog) Value() string {
	return d.input.Value()
}

// View renders the dialog
func (d *RemoveDialog) View() string {
	if !d.isOpen {
		return ""
	}

	s := styles.CurrentTheme().S()

	onDeck := s.Muted.Render("no buttons on this deck yet")
	if len(d.current) > 0 {
		onDeck = s.Muted.Render("on deck: ") + s.Bold.Render(strings.Join(d.current, ", "))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.LabelFocused.Render(d.input.Label())+" "+d.input.View(),
		"",
		onDeck,
		s.Warning.Render("every button bound to this macro is removed"),
		"",
		s.Subtle.Italic(true).Render("Tab pick • Enter remove • Esc cancel"),
	)
	return d.RenderDialog(content)
}

func uniqueInOrder(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		if seen[item] {
			continue
		}
		seen[item] = true
		out = append(out, item)
	}
	return out
}
