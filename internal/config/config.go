package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// HomeEnv relocates the base directory when set.
const HomeEnv = "MACRODECK_HOME"

// settingsFile is the builder's own settings, kept next to the store.
const settingsFile = "builder.json"

var envPattern = regexp.MustCompile(`\$\{([^}]+)\}|\$([A-Za-z_][A-Za-z0-9_]*)`)

// Config represents the builder settings
type Config struct {
	// Deck files
	StorePath string `json:"store_path"`
	MacroDir  string `json:"macro_dir"`

	// Logging
	LogPath  string `json:"log_path"`
	LogLevel string `json:"log_level"`

	// UI preferences
	Theme string `json:"theme"`
}

// DefaultConfig returns the settings for a base directory
func DefaultConfig(baseDir string) *Config {
	return &Config{
		StorePath: filepath.Join(baseDir, "config.json"),
		MacroDir:  filepath.Join(baseDir, "macros"),
		LogPath:   filepath.Join(baseDir, "logs", "builder.log"),
		LogLevel:  "info",
		Theme:     "deck",
	}
}

// DefaultBaseDir returns $MACRODECK_HOME, or ~/.config/macrodeck
func DefaultBaseDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return expandString(dir), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "macrodeck"), nil
}

// Manager handles settings loading and saving.
// Values are saved as written; Get returns them expanded.
type Manager struct {
	baseDir    string
	configPath string
	raw        *Config
	config     *Config
}

// NewManager creates a settings manager rooted at baseDir
func NewManager(baseDir string) *Manager {
	m := &Manager{
		baseDir:    baseDir,
		configPath: filepath.Join(baseDir, settingsFile),
		raw:        DefaultConfig(baseDir),
	}
	m.refresh()
	return m
}

// Path returns the settings file location
func (m *Manager) Path() string {
	return m.configPath
}

// Load reads the settings from disk, writing defaults on first run
func (m *Manager) Load() error {
	if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := os.ReadFile(m.configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.Save()
		}
		return fmt.Errorf("failed to read settings file: %w", err)
	}

	// Missing keys keep their defaults
	config := *DefaultConfig(m.baseDir)
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("failed to parse settings JSON: %w", err)
	}

	m.raw = &config
	m.refresh()
	return nil
}

// Save writes the current settings to disk
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.raw, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(m.configPath), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(m.configPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Get returns the current settings
func (m *Manager) Get() *Config {
	return m.config
}

// Set updates a settings value and saves
func (m *Manager) Set(key, value string) error {
	switch key {
	case "store_path":
		m.raw.StorePath = value
	case "macro_dir":
		m.raw.MacroDir = value
	case "log_path":
		m.raw.LogPath = value
	case "log_level":
		m.raw.LogLevel = value
	case "theme":
		m.raw.Theme = value
	default:
		return fmt.Errorf("unknown settings key: %s", key)
	}

	m.refresh()
	return m.Save()
}

// refresh rebuilds the expanded settings from the raw ones
func (m *Manager) refresh() {
	config := *m.raw
	m.expandPaths(&config)
	m.config = &config
}

// expandPaths expands variables in every path and anchors relative paths
// at the base directory
func (m *Manager) expandPaths(config *Config) {
	config.StorePath = m.resolve(config.StorePath)
	config.MacroDir = m.resolve(config.MacroDir)
	config.LogPath = m.resolve(config.LogPath)
	config.LogLevel = expandString(config.LogLevel)
	config.Theme = expandString(config.Theme)
}

func (m *Manager) resolve(path string) string {
	path = expandString(path)
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

// expandString expands environment variables and a leading ~.
// Supports $VAR and ${VAR} syntax; unknown variables are left as written.
func expandString(s string) string {
	s = envPattern.ReplaceAllStringFunc(s, func(match string) string {
		var varName string
		if strings.HasPrefix(match, "${") {
			varName = match[2 : len(match)-1]
		} else {
			varName = match[1:]
		}

		if value := os.Getenv(varName); value != "" {
			return value
		}
		return match
	})

	if s == "~" || strings.HasPrefix(s, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			s = filepath.Join(home, strings.TrimPrefix(s, "~"))
		}
	}
	return s
}
