package tui

import (
	"github.com/billie-coop/macrodeck/internal/deck"
	"github.com/billie-coop/macrodeck/internal/store"
)

// macrosLoadedMsg carries the macro catalog listing
type macrosLoadedMsg struct {
	macros []string
	err    error
}

// namesLoadedMsg carries the names of the stored configurations
type namesLoadedMsg struct {
	names []string
	err   error
}

// configLoadedMsg carries a stored configuration picked by name
type configLoadedMsg struct {
	name string
	cfg  deck.Configuration
	err  error
}

// storeResultMsg reports a finished save action
type storeResultMsg struct {
	action store.Action
	result store.Result
	err    error
}
