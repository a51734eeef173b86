package tui

// Form and preview sizing.
const (
	formWidth       = 52
	minPreviewWidth = 40
)

// layout calculates the form and preview widths. When the window is too
// narrow the preview is stacked under the form at full width.
func (m *Model) layout() (form, preview int, sideBySide bool) {
	form = formWidth
	if m.width < form+2 {
		form = m.width - 2
	}

	preview = m.width - form - 4 // two borders
	if preview >= minPreviewWidth {
		return form, preview, true
	}
	return form, m.width - 2, false
}
