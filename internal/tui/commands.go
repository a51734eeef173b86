package tui

import (
	"github.com/billie-coop/macrodeck/internal/deck"
	"github.com/billie-coop/macrodeck/internal/store"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// loadMacrosCmd lists the macro catalog
func (m *Model) loadMacrosCmd() tea.Cmd {
	catalog := m.catalog
	return func() tea.Msg {
		macros, err := catalog.List()
		return macrosLoadedMsg{macros: macros, err: err}
	}
}

// loadNamesCmd lists the stored configuration names
func (m *Model) loadNamesCmd() tea.Cmd {
	st := m.store
	return func() tea.Msg {
		names, err := st.Names()
		return namesLoadedMsg{names: names, err: err}
	}
}

// loadConfigCmd reads the stored configuration called name
func (m *Model) loadConfigCmd(name string) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		cfg, err := st.Find(name)
		return configLoadedMsg{name: name, cfg: cfg, err: err}
	}
}

// applyCmd runs a save action for cfg against the store
func (m *Model) applyCmd(action store.Action, cfg deck.Configuration) tea.Cmd {
	st := m.store
	return func() tea.Msg {
		result, err := st.Apply(action, cfg)
		return storeResultMsg{action: action, result: result, err: err}
	}
}
