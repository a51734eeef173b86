// Package macros lists the macro definitions a button can be bound to.
package macros

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const definitionExt = ".json"

// Catalog reads macro names from a directory of <name>.json definitions.
// The definitions themselves are never opened.
type Catalog struct {
	dir string
}

// NewCatalog creates a catalog for dir.
func NewCatalog(dir string) *Catalog {
	return &Catalog{dir: dir}
}

// Dir returns the macro directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// List returns the sorted macro names. A missing directory has no macros.
func (c *Catalog) List() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read macro directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != definitionExt {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), definitionExt)
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

// Complete returns the macros starting with prefix, case-insensitively.
func (c *Catalog) Complete(prefix string) ([]string, error) {
	all, err := c.List()
	if err != nil {
		return nil, err
	}
	return Filter(all, prefix), nil
}

// Filter returns the names starting with prefix, case-insensitively, in order.
func Filter(names []string, prefix string) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	matches := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			matches = append(matches, name)
		}
	}
	return matches
}
