package store

import (
	"fmt"

	"github.com/billie-coop/macrodeck/internal/deck"
)

// Action is one of the save choices offered when a configuration is submitted.
type Action string

const (
	SaveAsNew Action = "save_as_new"
	Overwrite Action = "overwrite"
	Append    Action = "append"
	Delete    Action = "delete"
)

// Actions lists the save choices in the order they are offered.
var Actions = []Action{SaveAsNew, Overwrite, Append, Delete}

// Label returns the human readable name of the action.
func (a Action) Label() string {
	switch a {
	case SaveAsNew:
		return "Save As New"
	case Overwrite:
		return "Overwrite"
	case Append:
		return "Append"
	case Delete:
		return "Delete"
	}
	return string(a)
}

// Describe explains what the action does to the store.
func (a Action) Describe() string {
	switch a {
	case SaveAsNew:
		return "replace the whole store with this configuration"
	case Overwrite:
		return "replace every configuration with this name"
	case Append:
		return "add this configuration after the existing ones"
	case Delete:
		return "remove every configuration with this name"
	}
	return ""
}

// Result reports what an applied action did.
type Result struct {
	Action Action
	Name   string
	// Affected is the number of entries replaced, added or removed.
	Affected int
}

// Apply runs action against the store for cfg. Delete uses cfg.Name.
func (s *Store) Apply(action Action, cfg deck.Configuration) (Result, error) {
	res := Result{Action: action, Name: cfg.Name}

	var err error
	switch action {
	case SaveAsNew:
		err = s.SaveAsNew(cfg)
		res.Affected = 1
	case Overwrite:
		res.Affected, err = s.Overwrite(cfg)
	case Append:
		err = s.Append(cfg)
		res.Affected = 1
	case Delete:
		res.Affected, err = s.Delete(cfg.Name)
	default:
		return res, fmt.Errorf("unknown save action %q", action)
	}

	if err != nil {
		s.log.Error(component, "save action failed", err, map[string]interface{}{"action": string(action), "name": cfg.Name})
		return Result{Action: action, Name: cfg.Name}, err
	}
	return res, nil
}
