// Package store persists deck configurations in a single JSON document.
//
// The document at the store path holds either one configuration object or an
// array of configuration objects:
//
//	~/.config/macrodeck/
//	├── config.json        # the store
//	└── macros/            # macro definitions, one <name>.json per macro
//
// On read the document is normalized to a sequence (a bare object becomes a
// one-element sequence). On write a sequence of exactly one entry is collapsed
// back to a bare object, since the deck runtime expects that shape. Both
// directions go through the helpers in document.go so every operation applies
// the same rule.
//
// Configurations are identified by their "name" field, which is not unique:
//
//   - SaveAsNew replaces the whole document with one configuration.
//   - Overwrite replaces every entry with the same name, in place.
//   - Append adds an entry at the end, even if the name already exists.
//   - Delete removes every entry with the given name.
//
// Documents that are valid JSON but neither an object nor an array of
// objects are rejected with ErrFormat instead of being coerced.
//
// Example usage:
//
//	s := store.New(path, logger)
//	if _, err := s.Overwrite(cfg); err != nil {
//		return err
//	}
package store
