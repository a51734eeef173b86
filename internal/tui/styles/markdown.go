package styles

import (
	"github.com/charmbracelet/glamour/v2"
)

// RenderMarkdown renders md with the current theme, wrapped at width.
// Rendering failures fall back to the raw markdown.
func RenderMarkdown(md string, width int) string {
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(CurrentTheme().S().Markdown),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
