// Package config provides the builder's own settings: where the deck store,
// the macro definitions and the log file live.
//
// Settings are kept in a single JSON file in the base directory, which is
// ~/.config/macrodeck unless MACRODECK_HOME points elsewhere:
//
//	~/.config/macrodeck/
//	├── builder.json       # these settings
//	├── config.json        # the deck store
//	├── macros/            # macro definitions
//	└── logs/builder.log
//
// The settings file contains simple key-value settings:
//
//	{
//	  "store_path": "/home/me/.config/macrodeck/config.json",
//	  "macro_dir": "/home/me/.config/macrodeck/macros",
//	  "log_path": "/home/me/.config/macrodeck/logs/builder.log",
//	  "log_level": "info",
//	  "theme": "deck"
//	}
//
// Relative paths are resolved against the base directory. Values can reference
// environment variables using $VAR or ${VAR} syntax, and paths may start with ~.
//
// Example usage:
//
//	base, err := config.DefaultBaseDir()
//	if err != nil {
//		log.Fatal(err)
//	}
//	manager := config.NewManager(base)
//	if err := manager.Load(); err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println("Store:", manager.Get().StorePath)
package config
