// Package tui is the terminal form for building macro deck configurations.
//
// The root Model owns the editing session and routes key presses either to
// the open dialog or to the focused form field. Store and catalog I/O runs in
// commands whose results come back as messages.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/billie-coop/macrodeck/internal/config"
	"github.com/billie-coop/macrodeck/internal/deck"
	"github.com/billie-coop/macrodeck/internal/logging"
	"github.com/billie-coop/macrodeck/internal/macros"
	"github.com/billie-coop/macrodeck/internal/session"
	"github.com/billie-coop/macrodeck/internal/store"
	"github.com/billie-coop/macrodeck/internal/tui/components/dialog"
	"github.com/billie-coop/macrodeck/internal/tui/components/field"
	"github.com/billie-coop/macrodeck/internal/tui/components/status"
	"github.com/billie-coop/macrodeck/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
)

const component = "tui"

// Form positions. The text fields come first and index Model.inputs.
const (
	nameFocus = iota
	rowsFocus
	colsFocus
	bgFocus
	rotationFocus
	focusCount
)

// Options wires the model to its collaborators
type Options struct {
	Session *session.Session
	Store   *store.Store
	Catalog *macros.Catalog
	// Settings is optional; when set the chosen theme is persisted.
	Settings *config.Manager
	Logger   *logging.Logger
}

// Model is the root form model
type Model struct {
	width  int
	height int
	keys   KeyMap

	session  *session.Session
	store    *store.Store
	catalog  *macros.Catalog
	settings *config.Manager
	log      *logging.Logger

	inputs []*field.Input
	focus  int

	macroDialog  *dialog.MacroDialog
	removeDialog *dialog.RemoveDialog
	saveDialog   *dialog.SaveDialog
	statusBar    *status.Component

	macros      []string
	names       []string
	nameIdx     int
	showPreview bool
	busy        bool

	// dirty is set when the buttons changed since the last load or save.
	dirty     bool
	quitArmed bool
}

// New creates the form model
func New(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	m := &Model{
		keys:         DefaultKeyMap(),
		session:      opts.Session,
		store:        opts.Store,
		catalog:      opts.Catalog,
		settings:     opts.Settings,
		log:          log,
		inputs:       make([]*field.Input, rotationFocus),
		macroDialog:  dialog.NewMacroDialog(),
		removeDialog: dialog.NewRemoveDialog(),
		saveDialog:   dialog.NewSaveDialog(),
		statusBar:    status.New(),
		nameIdx:      -1,
	}

	m.inputs[nameFocus] = field.New("Name")
	m.inputs[nameFocus].SetPlaceholder(m.session.FallbackName())
	m.inputs[rowsFocus] = field.New("Rows")
	m.inputs[rowsFocus].SetCharLimit(3)
	m.inputs[colsFocus] = field.New("Columns")
	m.inputs[colsFocus].SetCharLimit(3)
	m.inputs[bgFocus] = field.New("Background")
	m.inputs[bgFocus].SetPlaceholder("#rrggbb")
	m.inputs[bgFocus].SetCharLimit(7)

	m.refreshFields()
	m.setFocus(nameFocus)
	m.statusBar.SetLeftContent(m.store.Path())

	return m
}

// Init loads the macro catalog and the stored names
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadMacrosCmd(), m.loadNamesCmd())
}

// Update handles all messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.SetWidth(msg.Width)
		m.macroDialog.SetSize(msg.Width, msg.Height)
		m.removeDialog.SetSize(msg.Width, msg.Height)
		m.saveDialog.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg.String())

	case macrosLoadedMsg:
		m.macros = msg.macros
		if msg.err != nil {
			m.log.Warning(component, "macro catalog unavailable", map[string]interface{}{"error": msg.err.Error()})
			return m, m.statusBar.ShowWarning(msg.err.Error())
		}
		return m, nil

	case namesLoadedMsg:
		m.names = msg.names
		m.nameIdx = -1
		if msg.err != nil {
			m.log.Error(component, "failed to list stored configurations", msg.err, nil)
			return m, m.statusBar.ShowError(msg.err.Error())
		}
		return m, nil

	case configLoadedMsg:
		return m, m.handleConfigLoaded(msg)

	case storeResultMsg:
		return m, m.handleStoreResult(msg)

	case dialog.ButtonSubmittedMsg:
		return m, m.addButton(msg.Spec)

	case dialog.RemoveRequestedMsg:
		return m, m.removeButton(msg.Macro)

	case dialog.SaveChosenMsg:
		return m, m.save(msg.Action)

	case dialog.CancelledMsg:
		return m, nil
	}

	return m, m.statusBar.Update(msg)
}

// handleKey applies a key press by name
func (m *Model) handleKey(k string) tea.Cmd {
	if d := m.activeDialog(); d != nil {
		return d.HandleKey(k)
	}

	// Quitting with unsaved buttons takes a second press
	armed := m.quitArmed
	m.quitArmed = false

	switch {
	case matches(k, m.keys.Quit):
		if m.dirty && !armed {
			m.quitArmed = true
			return m.statusBar.ShowWarning("unsaved buttons, press " + k + " again to quit")
		}
		return tea.Quit
	case matches(k, m.keys.Add):
		m.macroDialog.Open(m.macros)
		return nil
	case matches(k, m.keys.Remove):
		m.removeDialog.Open(macroNames(m.session.Buttons()))
		return nil
	case matches(k, m.keys.Save):
		return m.openSave()
	case matches(k, m.keys.Preview):
		if err := m.commitAll(); err != nil {
			return m.statusBar.ShowError(err.Error())
		}
		m.showPreview = !m.showPreview
		return nil
	case matches(k, m.keys.NextName):
		return m.cycleName()
	case matches(k, m.keys.Load):
		return m.loadByName()
	case matches(k, m.keys.Theme):
		return m.cycleTheme()
	case m.focus == rotationFocus && matches(k, m.keys.Rotate):
		// Toggle cannot produce an invalid rotation
		_ = m.session.SetRotation(string(m.session.Rotation().Toggle()))
		return nil
	case matches(k, m.keys.Next):
		return m.moveFocus(1)
	case matches(k, m.keys.Prev):
		return m.moveFocus(-1)
	}

	if m.focus < len(m.inputs) {
		m.inputs[m.focus].HandleKey(k)
	}
	return nil
}

func (m *Model) activeDialog() dialog.Dialog {
	switch {
	case m.macroDialog.IsOpen():
		return m.macroDialog
	case m.removeDialog.IsOpen():
		return m.removeDialog
	case m.saveDialog.IsOpen():
		return m.saveDialog
	}
	return nil
}

func (m *Model) setFocus(i int) {
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Blur()
	}
	m.focus = i
	if m.focus < len(m.inputs) {
		m.inputs[m.focus].Focus()
	}
}

// moveFocus commits the focused field and moves by step. An invalid value
// keeps the focus where it is.
func (m *Model) moveFocus(step int) tea.Cmd {
	if err := m.commitField(m.focus); err != nil {
		return m.statusBar.ShowError(err.Error())
	}
	m.setFocus((m.focus + step + focusCount) % focusCount)
	return nil
}

// commitField copies a form field into the session
func (m *Model) commitField(i int) error {
	switch i {
	case nameFocus:
		m.session.SetName(m.inputs[nameFocus].Value())
	case rowsFocus, colsFocus:
		rows, cols := m.session.Grid()
		n, err := deck.ParseGridValue(strings.ToLower(m.inputs[i].Label()), m.inputs[i].Value())
		if err != nil {
			return err
		}
		if i == rowsFocus {
			rows = n
		} else {
			cols = n
		}
		if err := m.session.SetGrid(rows, cols); err != nil {
			return err
		}
		m.inputs[i].SetValue(strconv.Itoa(n))
	case bgFocus:
		if err := m.session.SetBackground(m.inputs[bgFocus].Value()); err != nil {
			return err
		}
		m.inputs[bgFocus].SetValue(m.session.Background())
	}
	return nil
}

// commitAll commits every field, focusing the first invalid one
func (m *Model) commitAll() error {
	for i := range m.inputs {
		if err := m.commitField(i); err != nil {
			m.setFocus(i)
			return err
		}
	}
	return nil
}

// refreshFields copies the session into the form fields
func (m *Model) refreshFields() {
	rows, cols := m.session.Grid()
	m.inputs[nameFocus].SetValue(m.session.Name())
	m.inputs[rowsFocus].SetValue(strconv.Itoa(rows))
	m.inputs[colsFocus].SetValue(strconv.Itoa(cols))
	m.inputs[bgFocus].SetValue(m.session.Background())
}

func (m *Model) addButton(spec deck.ButtonSpec) tea.Cmd {
	if err := m.session.AddButton(spec); err != nil {
		return m.statusBar.ShowError(err.Error())
	}
	m.dirty = true
	m.log.Debug(component, "button added", map[string]interface{}{"macro": spec.Macro})
	return m.statusBar.ShowSuccess(fmt.Sprintf("added button for %s", spec.Macro))
}

func (m *Model) removeButton(macro string) tea.Cmd {
	n, err := m.session.RemoveButton(macro)
	switch {
	case errors.Is(err, deck.ErrNotFound):
		return m.statusBar.ShowWarning(err.Error())
	case err != nil:
		return m.statusBar.ShowError(err.Error())
	case n == 0:
		return m.statusBar.ShowWarning(fmt.Sprintf("no button bound to %s", macro))
	}
	m.dirty = true
	m.log.Debug(component, "buttons removed", map[string]interface{}{"macro": macro, "count": n})
	return m.statusBar.ShowSuccess(fmt.Sprintf("removed %d button(s) for %s", n, macro))
}

func (m *Model) openSave() tea.Cmd {
	if m.busy {
		return m.statusBar.ShowWarning("a save is already running")
	}
	if err := m.commitAll(); err != nil {
		return m.statusBar.ShowError(err.Error())
	}
	m.saveDialog.Open(m.session.Finalize().Name)
	return nil
}

func (m *Model) save(action store.Action) tea.Cmd {
	if m.busy {
		return m.statusBar.ShowWarning("a save is already running")
	}
	m.busy = true
	cfg := m.session.Finalize()
	m.log.Info(component, "saving configuration", map[string]interface{}{"action": string(action), "name": cfg.Name})
	return m.applyCmd(action, cfg)
}

func (m *Model) handleStoreResult(msg storeResultMsg) tea.Cmd {
	m.busy = false
	if msg.err != nil {
		if errors.Is(msg.err, store.ErrFormat) {
			return m.statusBar.ShowError(fmt.Sprintf("%s left unchanged: %v", m.store.Path(), msg.err))
		}
		return m.statusBar.ShowError(msg.err.Error())
	}

	text, ok := describeResult(msg.result)
	show := m.statusBar.ShowSuccess
	if !ok {
		show = m.statusBar.ShowWarning
	}
	if ok && msg.result.Action != store.Delete {
		m.dirty = false
	}
	return tea.Batch(show(text), m.loadNamesCmd())
}

// describeResult summarizes a save. ok is false when the store was left unchanged.
func describeResult(r store.Result) (text string, ok bool) {
	switch r.Action {
	case store.SaveAsNew:
		return fmt.Sprintf("store replaced with %s", r.Name), true
	case store.Append:
		return fmt.Sprintf("appended %s", r.Name), true
	case store.Overwrite:
		if r.Affected == 0 {
			return fmt.Sprintf("no configuration named %s, store unchanged", r.Name), false
		}
		return fmt.Sprintf("overwrote %d configuration(s) named %s", r.Affected, r.Name), true
	case store.Delete:
		if r.Affected == 0 {
			return fmt.Sprintf("no configuration named %s, store unchanged", r.Name), false
		}
		return fmt.Sprintf("deleted %d configuration(s) named %s", r.Affected, r.Name), true
	}
	return string(r.Action), true
}

// cycleName fills the name field with the next stored name
func (m *Model) cycleName() tea.Cmd {
	if len(m.names) == 0 {
		return m.statusBar.ShowInfo("no stored configurations")
	}
	m.nameIdx = (m.nameIdx + 1) % len(m.names)
	m.inputs[nameFocus].SetValue(m.names[m.nameIdx])
	m.session.SetName(m.names[m.nameIdx])
	return nil
}

// loadByName replaces the session with the stored configuration named in the name field
func (m *Model) loadByName() tea.Cmd {
	name := strings.TrimSpace(m.inputs[nameFocus].Value())
	if name == "" {
		err := &deck.ValidationError{Field: "name", Message: "required"}
		return m.statusBar.ShowError(err.Error())
	}
	return m.loadConfigCmd(name)
}

func (m *Model) handleConfigLoaded(msg configLoadedMsg) tea.Cmd {
	if msg.err != nil {
		if errors.Is(msg.err, deck.ErrNotFound) {
			return m.statusBar.ShowWarning(msg.err.Error())
		}
		return m.statusBar.ShowError(msg.err.Error())
	}
	if err := m.session.LoadFrom(msg.cfg); err != nil {
		return m.statusBar.ShowError(fmt.Sprintf("%s: %v", msg.name, err))
	}
	m.refreshFields()
	m.dirty = false
	m.log.Info(component, "configuration loaded", map[string]interface{}{"name": msg.name, "buttons": len(msg.cfg.Buttons)})
	return m.statusBar.ShowSuccess(fmt.Sprintf("loaded %s with %d button(s)", msg.name, len(msg.cfg.Buttons)))
}

// cycleTheme switches to the next registered theme
func (m *Model) cycleTheme() tea.Cmd {
	manager := styles.DefaultManager()
	themes := manager.List()
	current := manager.Current().Name

	next := themes[0]
	for i, name := range themes {
		if name == current {
			next = themes[(i+1)%len(themes)]
			break
		}
	}
	if err := manager.SetTheme(next); err != nil {
		return m.statusBar.ShowError(err.Error())
	}

	if m.settings != nil {
		if err := m.settings.Set("theme", next); err != nil {
			m.log.Warning(component, "failed to persist theme", map[string]interface{}{"error": err.Error()})
		}
	}
	return m.statusBar.ShowInfo("theme: " + next)
}

func macroNames(buttons []deck.ButtonSpec) []string {
	names := make([]string, 0, len(buttons))
	for _, b := range buttons {
		names = append(names, b.Macro)
	}
	return names
}

// View renders the form
func (m *Model) View() tea.View {
	return tea.NewView(m.render())
}

func (m *Model) render() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	// Dialogs take over the screen
	if d := m.activeDialog(); d != nil {
		return d.View()
	}

	theme := styles.CurrentTheme()
	s := theme.S()

	header := styles.ApplyGradient("Macro Deck Builder", theme.Primary, theme.Secondary) +
		" " + s.Badge.Render(theme.Name)

	formWidth, previewWidth, sideBySide := m.layout()
	form := s.BorderFocused.
		Width(formWidth).
		Padding(0, 1).
		Render(m.renderForm())

	body := form
	if m.showPreview {
		preview := s.Border.
			Width(previewWidth).
			Render(renderPreview(m.session.Finalize(), previewWidth-2))
		if sideBySide {
			body = lipgloss.JoinHorizontal(lipgloss.Top, form, preview)
		} else {
			body = lipgloss.JoinVertical(lipgloss.Left, form, preview)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		s.Subtle.Render(m.helpLine()),
		m.statusBar.View(),
	)
}

func (m *Model) renderForm() string {
	s := styles.CurrentTheme().S()

	rows := make([]string, 0, focusCount+len(m.session.Buttons())+3)
	for i, in := range m.inputs {
		label := s.Label.Render(in.Label())
		if i == m.focus {
			label = s.LabelFocused.Render(in.Label())
		}
		value := in.View()
		if i == bgFocus {
			value += " " + styles.Swatch(m.session.Background())
		}
		rows = append(rows, label+" "+value)
	}

	label := s.Label.Render("Rotation")
	if m.focus == rotationFocus {
		label = s.LabelFocused.Render("Rotation")
	}
	rows = append(rows, label+" "+styles.RotationIcon+" "+string(m.session.Rotation()))

	buttons := m.session.Buttons()
	rows = append(rows, "", s.Subtitle.Render(fmt.Sprintf("Buttons (%d)", len(buttons))))
	if len(buttons) == 0 {
		rows = append(rows, s.Muted.Render("no buttons yet"))
	}
	for _, b := range buttons {
		bg := styles.ParseHex(b.Bg)
		chip := lipgloss.NewStyle().
			Background(bg).
			Foreground(styles.Contrast(bg)).
			Padding(0, 1).
			Render(b.Macro)
		line := styles.ButtonIcon + " " + chip
		if b.Text != "" {
			line += " " + s.Muted.Render(b.Text)
		}
		rows = append(rows, line)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) helpLine() string {
	parts := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
