// Package main is the entry point for the macro deck configuration builder.
package main

import (
	"fmt"
	"os"

	"github.com/billie-coop/macrodeck/internal/config"
	"github.com/billie-coop/macrodeck/internal/logging"
	"github.com/billie-coop/macrodeck/internal/macros"
	"github.com/billie-coop/macrodeck/internal/namegen"
	"github.com/billie-coop/macrodeck/internal/session"
	"github.com/billie-coop/macrodeck/internal/store"
	"github.com/billie-coop/macrodeck/internal/tui"
	"github.com/billie-coop/macrodeck/internal/tui/styles"
	tea "github.com/charmbracelet/bubbletea/v2"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	baseDir, err := config.DefaultBaseDir()
	if err != nil {
		return err
	}

	settings := config.NewManager(baseDir)
	if err := settings.Load(); err != nil {
		return err
	}
	cfg := settings.Get()

	log, closer, err := logging.Open(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer closer.Close()

	styles.SetDefaultManager(styles.NewManager(cfg.Theme))

	log.Info("main", "builder started", map[string]interface{}{
		"store":  cfg.StorePath,
		"macros": cfg.MacroDir,
	})

	model := tui.New(tui.Options{
		Session:  session.New(namegen.New().Name()),
		Store:    store.New(cfg.StorePath, log),
		Catalog:  macros.NewCatalog(cfg.MacroDir),
		Settings: settings,
		Logger:   log,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("main", "program exited with error", err, nil)
		return err
	}

	log.Info("main", "builder stopped", nil)
	return nil
}
