package dialog

import (
	"strings"

	"github.com/billie-coop/macrodeck/internal/deck"
	"github.com/billie-coop/macrodeck/internal/macros"
	"github.com/billie-coop/macrodeck/internal/tui/components/field"
	"github.com/billie-coop/macrodeck/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

// Field positions in the macro dialog.
const (
	macroField = iota
	textField
	fgField
	bgField
	activeField
	scaleField
	imgHeightField
	imgWidthField
	imgRadiusField
	radiusField
)

// MacroDialog collects the settings of one button
type MacroDialog struct {
	*BaseDialog

	inputs   []*field.Input
	focus    int
	macros   []string
	suggests int
}

// NewMacroDialog creates the button dialog
func NewMacroDialog() *MacroDialog {
	d := &MacroDialog{
		BaseDialog: NewBaseDialog("Macro Config"),
		inputs: []*field.Input{
			macroField:     field.New("Macro"),
			textField:      field.New("Button text"),
			fgField:        field.New("Text color"),
			bgField:        field.New("Background"),
			activeField:    field.New("Active bg"),
			scaleField:     field.New("Scale"),
			imgHeightField: field.New("Img height"),
			imgWidthField:  field.New("Img width"),
			imgRadiusField: field.New("Img radius"),
			radiusField:    field.New("Radius"),
		},
	}

	d.inputs[macroField].SetPlaceholder("Macro")
	d.inputs[textField].SetPlaceholder("Button text")
	d.inputs[scaleField].SetPlaceholder("0 - 2")
	d.inputs[scaleField].SetCharLimit(6)
	d.inputs[imgHeightField].SetPlaceholder("%, px, auto")
	d.inputs[imgWidthField].SetPlaceholder("%, px, auto")
	d.inputs[imgRadiusField].SetPlaceholder("%, px")
	d.inputs[radiusField].SetPlaceholder("%, px")
	for _, i := range []int{fgField, bgField, activeField} {
		d.inputs[i].SetPlaceholder("#rrggbb")
		d.inputs[i].SetCharLimit(7)
	}

	return d
}

// Open resets the form to the default button and offers macros as suggestions
func (d *MacroDialog) Open(names []string) {
	d.open()
	d.macros = names
	d.suggests = -1

	defaults := deck.NewButtonSpec("")
	values := []string{
		macroField:     "",
		textField:      "",
		fgField:        defaults.Fg,
		bgField:        defaults.Bg,
		activeField:    defaults.Active,
		scaleField:     defaults.Scale.String(),
		imgHeightField: "",
		imgWidthField:  "",
		imgRadiusField: "",
		radiusField:    "",
	}
	for i, v := range values {
		d.inputs[i].SetValue(v)
	}
	d.setFocus(macroField)
}

// Update handles messages
func (d *MacroDialog) Update(msg tea.Msg) tea.Cmd {
	if !d.isOpen {
		return nil
	}
	if k := keyOf(msg); k != "" {
		return d.HandleKey(k)
	}
	return nil
}

// HandleKey applies a key press by name
func (d *MacroDialog) HandleKey(key string) tea.Cmd {
	if !d.isOpen {
		return nil
	}

	switch key {
	case "esc":
		d.Close()
		return emit(CancelledMsg{Title: d.title})
	case "tab", "down":
		d.setFocus((d.focus + 1) % len(d.inputs))
	case "shift+tab", "up":
		d.setFocus((d.focus - 1 + len(d.inputs)) % len(d.inputs))
	case "ctrl+n":
		d.cycleSuggestion(1)
	case "ctrl+p":
		d.cycleSuggestion(-1)
	case "enter":
		return d.submit()
	default:
		if d.inputs[d.focus].HandleKey(key) && d.focus == macroField {
			d.suggests = -1
		}
	}
	return nil
}

// Suggestions returns the known macros matching what was typed so far
func (d *MacroDialog) Suggestions() []string {
	if d.suggests >= 0 {
		// Keep cycling through the list the cycle started from
		return macros.Filter(d.macros, "")
	}
	return macros.Filter(d.macros, d.inputs[macroField].Value())
}

func (d *MacroDialog) cycleSuggestion(step int) {
	suggestions := d.Suggestions()
	if len(suggestions) == 0 {
		return
	}
	if d.suggests < 0 {
		d.suggests = 0
		if step < 0 {
			d.suggests = len(suggestions) - 1
		}
	} else {
		d.suggests = (d.suggests + step + len(suggestions)) % len(suggestions)
	}
	d.inputs[macroField].SetValue(suggestions[d.suggests])
	d.setFocus(macroField)
}

func (d *MacroDialog) setFocus(i int) {
	d.inputs[d.focus].Blur()
	d.focus = i
	d.inputs[d.focus].Focus()
}

// Spec builds the button from the current field values
func (d *MacroDialog) Spec() (deck.ButtonSpec, error) {
	spec := deck.NewButtonSpec(strings.TrimSpace(d.inputs[macroField].Value()))
	if spec.Macro == "" {
		return spec, &deck.ValidationError{Field: "macro", Message: "required"}
	}
	spec.Text = strings.TrimSpace(d.inputs[textField].Value())

	var err error
	if spec.Fg, err = deck.NormalizeColor("text color", d.inputs[fgField].Value()); err != nil {
		return spec, err
	}
	if spec.Bg, err = deck.NormalizeColor("background", d.inputs[bgField].Value()); err != nil {
		return spec, err
	}
	if spec.Active, err = deck.NormalizeColor("active", d.inputs[activeField].Value()); err != nil {
		return spec, err
	}
	if spec.Scale, err = deck.ParseScale(d.inputs[scaleField].Value()); err != nil {
		return spec, err
	}
	if spec.ImgHeight, err = deck.NormalizeDimension("img-height", d.inputs[imgHeightField].Value()); err != nil {
		return spec, err
	}
	if spec.ImgWidth, err = deck.NormalizeDimension("img-width", d.inputs[imgWidthField].Value()); err != nil {
		return spec, err
	}
	if spec.ImgRadius, err = deck.NormalizeDimension("img-radius", d.inputs[imgRadiusField].Value()); err != nil {
		return spec, err
	}
	if spec.Radius, err = deck.NormalizeDimension("radius", d.inputs[radiusField].Value()); err != nil {
		return spec, err
	}
	return spec, nil
}

func (d *MacroDialog) submit() tea.Cmd {
	spec, err := d.Spec()
	if err != nil {
		// Stay open so the user can fix the field
		d.SetError(err.Error())
		return nil
	}
	d.Close()
	return emit(ButtonSubmittedMsg{Spec: spec})
}

// View renders the dialog
func (d *MacroDialog) View() string {
	if !d.isOpen {
		return ""
	}

	s := styles.CurrentTheme().S()

	rows := make([]string, 0, len(d.inputs)+3)
	for i, in := range d.inputs {
		label := s.Label.Render(in.Label())
		if i == d.focus {
			label = s.LabelFocused.Render(in.Label())
		}
		value := in.View()
		switch i {
		case fgField, bgField, activeField:
			if c, err := deck.NormalizeColor(in.Label(), in.Value()); err == nil {
				value += " " + lipgloss.NewStyle().Background(styles.ParseHex(c)).Render("  ")
			}
		}
		rows = append(rows, label+" "+value)
	}

	if suggestions := d.Suggestions(); len(suggestions) > 0 && d.focus == macroField {
		shown := suggestions
		if len(shown) > 5 {
			shown = shown[:5]
		}
		rows = append(rows, "", s.Muted.Render("macros: "+strings.Join(shown, ", ")))
	}

	rows = append(rows, "", s.Subtle.Italic(true).Render("Tab next • Ctrl+N/P pick macro • Enter save macro • Esc cancel"))

	return d.RenderDialog(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
