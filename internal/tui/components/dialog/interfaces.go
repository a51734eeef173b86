package dialog

import (
	"github.com/billie-coop/macrodeck/internal/deck"
	"github.com/billie-coop/macrodeck/internal/store"
	tea "github.com/charmbracelet/bubbletea/v2"
)

// Dialog represents a modal dialog component
type Dialog interface {
	Update(tea.Msg) tea.Cmd
	View() string

	SetSize(width, height int)
	IsOpen() bool
	Close()

	// HandleKey applies a key press by name
	HandleKey(key string) tea.Cmd
}

// ButtonSubmittedMsg is sent when the macro dialog is submitted
type ButtonSubmittedMsg struct {
	Spec deck.ButtonSpec
}

// RemoveRequestedMsg is sent when the remove dialog is submitted
type RemoveRequestedMsg struct {
	Macro string
}

// SaveChosenMsg is sent when a save action is picked
type SaveChosenMsg struct {
	Action store.Action
}

// CancelledMsg is sent when a dialog is closed without a result
type CancelledMsg struct {
	Title string
}
