package styles

const (
	CheckIcon   string = "✓"
	ErrorIcon   string = "✗"
	WarningIcon string = "⚠"
	InfoIcon    string = "ℹ"

	// Form markers
	CursorIcon   string = "▸"
	ButtonIcon   string = "■"
	RotationIcon string = "⟳"
)
