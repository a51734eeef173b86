package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/billie-coop/macrodeck/internal/deck"
	"github.com/billie-coop/macrodeck/internal/logging"
)

const component = "store"

// Store reads and rewrites the deck configuration document.
//
// Every operation reads the whole file, transforms the normalized entry list
// and writes the whole file back. There is no locking and no
// temp-file-and-rename: concurrent writers race and the last one wins.
type Store struct {
	path string
	log  *logging.Logger
}

// New creates a store for the document at path.
func New(path string, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{path: path, log: log}
}

// Path returns the document location.
func (s *Store) Path() string {
	return s.path
}

// Load returns every configuration in document order.
// A missing file is an empty store.
func (s *Store) Load() ([]deck.Configuration, error) {
	entries, err := s.read()
	if err != nil {
		return nil, err
	}

	configs := make([]deck.Configuration, 0, len(entries))
	for i, entry := range entries {
		var cfg deck.Configuration
		if err := json.Unmarshal(entry, &cfg); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrFormat, i, err)
		}
		configs = append(configs, cfg.Clone())
	}
	return configs, nil
}

// Names returns the name of every entry that has one, in document order.
func (s *Store) Names() ([]string, error) {
	entries, err := s.read()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if name, ok := entryName(entry); ok {
			names = append(names, name)
		}
	}
	return names, nil
}

// Find returns the first configuration named name.
func (s *Store) Find(name string) (deck.Configuration, error) {
	configs, err := s.Load()
	if err != nil {
		return deck.Configuration{}, err
	}
	for _, cfg := range configs {
		if cfg.Name == name {
			return cfg, nil
		}
	}
	return deck.Configuration{}, &deck.NotFoundError{Kind: "configuration", Name: name}
}

// SaveAsNew replaces the whole document with cfg.
//
// Despite the name, every configuration already in the store is discarded.
// The existing file is not read, so this also recovers a corrupt store.
func (s *Store) SaveAsNew(cfg deck.Configuration) error {
	entry, err := marshalEntry(cfg)
	if err != nil {
		return err
	}
	if err := s.write([]json.RawMessage{entry}); err != nil {
		return err
	}
	s.log.Info(component, "replaced store", map[string]interface{}{"name": cfg.Name, "path": s.path})
	return nil
}

// Overwrite replaces, in place, every entry named cfg.Name and returns how
// many were replaced. When nothing matches the document is left untouched.
func (s *Store) Overwrite(cfg deck.Configuration) (int, error) {
	entry, err := marshalEntry(cfg)
	if err != nil {
		return 0, err
	}

	replaced := 0
	err = s.update(func(entries []json.RawMessage) ([]json.RawMessage, bool) {
		for _, i := range matchingIndices(entries, cfg.Name) {
			entries[i] = entry
			replaced++
		}
		return entries, replaced > 0
	})
	if err != nil {
		return 0, err
	}

	s.log.Info(component, "overwrote configuration", map[string]interface{}{"name": cfg.Name, "replaced": replaced})
	return replaced, nil
}

// Append adds cfg after the last entry. Names are not checked for uniqueness.
func (s *Store) Append(cfg deck.Configuration) error {
	entry, err := marshalEntry(cfg)
	if err != nil {
		return err
	}

	size := 0
	err = s.update(func(entries []json.RawMessage) ([]json.RawMessage, bool) {
		entries = append(entries, entry)
		size = len(entries)
		return entries, true
	})
	if err != nil {
		return err
	}

	s.log.Info(component, "appended configuration", map[string]interface{}{"name": cfg.Name, "entries": size})
	return nil
}

// Delete removes every entry named name and returns how many were removed.
// When nothing matches the document is left untouched.
func (s *Store) Delete(name string) (int, error) {
	removed := 0
	err := s.update(func(entries []json.RawMessage) ([]json.RawMessage, bool) {
		for _, i := range matchingIndices(entries, name) {
			entries = append(entries[:i], entries[i+1:]...)
			removed++
		}
		return entries, removed > 0
	})
	if err != nil {
		return 0, err
	}

	s.log.Info(component, "deleted configuration", map[string]interface{}{"name": name, "removed": removed})
	return removed, nil
}

// read loads and normalizes the document. A missing file is an empty store.
func (s *Store) read() ([]json.RawMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []json.RawMessage{}, nil
		}
		return nil, fmt.Errorf("failed to read store: %w", err)
	}

	entries, err := decodeDocument(data)
	if err != nil {
		s.log.Error(component, "store is malformed", err, map[string]interface{}{"path": s.path})
		return nil, fmt.Errorf("%s: %w", s.path, err)
	}
	return entries, nil
}

// update is the read-transform-write cycle shared by the merge operations.
// transform reports whether it changed anything; unchanged documents are not
// rewritten.
func (s *Store) update(transform func([]json.RawMessage) ([]json.RawMessage, bool)) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	entries, err := s.read()
	if err != nil {
		return err
	}

	entries, changed := transform(entries)
	if !changed {
		return nil
	}
	return s.write(entries)
}

func (s *Store) write(entries []json.RawMessage) error {
	data, err := encodeDocument(entries)
	if err != nil {
		return err
	}

	if err := s.ensureDir(); err != nil {
		return err
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store: %w", err)
	}

	s.log.Debug(component, "wrote store", map[string]interface{}{"path": s.path, "entries": len(entries), "bytes": len(data)})
	return nil
}

func (s *Store) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	return nil
}

func marshalEntry(cfg deck.Configuration) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(cfg.Clone()); err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Render returns the document a store holding only cfg would contain.
func Render(cfg deck.Configuration) ([]byte, error) {
	entry, err := marshalEntry(cfg)
	if err != nil {
		return nil, err
	}
	return encodeDocument([]json.RawMessage{entry})
}
