package tui

import (
	"fmt"
	"strings"

	"github.com/billie-coop/macrodeck/internal/deck"
	"github.com/billie-coop/macrodeck/internal/store"
	"github.com/billie-coop/macrodeck/internal/tui/styles"
)

const maxPreviewGrid = 12

// previewMarkdown describes cfg as markdown: a summary, the grid as it will
// fill on the deck, and the button table.
func previewMarkdown(cfg deck.Configuration) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", cfg.Name)
	fmt.Fprintf(&b, "**Size** %s · **Rotation** %s · **Background** `%s`\n\n", cfg.Size, cfg.Rotation, cfg.Bg)

	rows, cols, err := cfg.Grid()
	if err == nil && (rows > maxPreviewGrid || cols > maxPreviewGrid) {
		fmt.Fprintf(&b, "_grid larger than %dx%d is not drawn_\n\n", maxPreviewGrid, maxPreviewGrid)
	} else if err == nil {
		b.WriteString("## Layout\n\n")
		b.WriteString(gridMarkdown(cfg.Buttons, rows, cols))
		b.WriteString("\n")
		if extra := len(cfg.Buttons) - rows*cols; extra > 0 {
			fmt.Fprintf(&b, "_%d button(s) do not fit the grid_\n\n", extra)
		}
	}

	b.WriteString("## Buttons\n\n")
	if len(cfg.Buttons) == 0 {
		b.WriteString("_none yet, press ctrl+a to add one_\n")
		return b.String()
	}

	b.WriteString("| # | Macro | Text | Bg | Fg | Active | Scale | Radius |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for i, btn := range cfg.Buttons {
		fmt.Fprintf(&b, "| %d | %s | %s | `%s` | `%s` | `%s` | %s | %s |\n",
			i+1, cell(btn.Macro), cell(btn.Text), btn.Bg, btn.Fg, btn.Active, btn.Scale, cell(btn.Radius))
	}
	return b.String()
}

// gridMarkdown lays buttons out row by row as a markdown table
func gridMarkdown(buttons []deck.ButtonSpec, rows, cols int) string {
	var b strings.Builder

	b.WriteString("|")
	for c := 0; c < cols; c++ {
		fmt.Fprintf(&b, " %d |", c+1)
	}
	b.WriteString("\n|")
	for c := 0; c < cols; c++ {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for r := 0; r < rows; r++ {
		b.WriteString("|")
		for c := 0; c < cols; c++ {
			label := "·"
			if i := r*cols + c; i < len(buttons) {
				label = buttons[i].Text
				if label == "" {
					label = buttons[i].Macro
				}
			}
			fmt.Fprintf(&b, " %s |", cell(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// cell escapes text for use inside a table cell
func cell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", `\|`)
}

// renderPreview renders the configuration summary at width, followed by the
// JSON the store would hold for it
func renderPreview(cfg deck.Configuration, width int) string {
	out := styles.RenderMarkdown(previewMarkdown(cfg), width)

	doc, err := store.Render(cfg)
	if err != nil {
		s := styles.CurrentTheme().S()
		return out + "\n" + s.Error.Render(styles.ErrorIcon+" cannot be saved: "+err.Error())
	}
	return out + "\n" + styles.HighlightJSON(string(doc))
}
