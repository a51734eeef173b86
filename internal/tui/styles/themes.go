package styles

// DefaultThemeName is used when the settings name an unknown theme.
const DefaultThemeName = "deck"

// NewDeckTheme creates the default theme, built around the default button colors
func NewDeckTheme() *Theme {
	return &Theme{
		Name:   "deck",
		IsDark: true,

		Primary:   ParseHex("#007bff"), // Default button background
		Secondary: ParseHex("#5eb3f6"),
		Accent:    ParseHex("#f39c12"),

		BgBase:    ParseHex("#1e2430"),
		BgSubtle:  ParseHex("#2c3444"),
		BgOverlay: ParseHex("#111111"),

		FgBase:     ParseHex("#f5f6fa"),
		FgMuted:    ParseHex("#a0a0a0"),
		FgSubtle:   ParseHex("#6f6f70"),
		FgInverted: ParseHex("#ffffff"),

		Border:      ParseHex("#4a5568"),
		BorderFocus: ParseHex("#0047a6"), // Default active color

		Success: ParseHex("#27ae60"),
		Error:   ParseHex("#e74c3c"),
		Warning: ParseHex("#f39c12"),
		Info:    ParseHex("#3498db"),
	}
}

// NewOceanTheme creates a calmer blue-green theme
func NewOceanTheme() *Theme {
	return &Theme{
		Name:   "ocean",
		IsDark: true,

		Primary:   ParseHex("#0e7490"),
		Secondary: ParseHex("#67e8f9"),
		Accent:    ParseHex("#2dd4bf"),

		BgBase:    ParseHex("#0b1620"),
		BgSubtle:  ParseHex("#13293d"),
		BgOverlay: ParseHex("#050a0f"),

		FgBase:     ParseHex("#e6f1f5"),
		FgMuted:    ParseHex("#8aa4b1"),
		FgSubtle:   ParseHex("#5b7382"),
		FgInverted: ParseHex("#0b1620"),

		Border:      ParseHex("#24475f"),
		BorderFocus: ParseHex("#2dd4bf"),

		Success: ParseHex("#34d399"),
		Error:   ParseHex("#f87171"),
		Warning: ParseHex("#fbbf24"),
		Info:    ParseHex("#60a5fa"),
	}
}
