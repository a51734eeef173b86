package styles

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
)

// GetChromaTheme returns syntax highlighting rules matching the current theme
func GetChromaTheme() chroma.StyleEntries {
	t := CurrentTheme()

	return chroma.StyleEntries{
		chroma.Text:            ColorToHex(t.FgBase),
		chroma.Error:           ColorToHex(t.Error),
		chroma.Punctuation:     ColorToHex(t.FgSubtle),
		chroma.NameTag:         ColorToHex(t.Primary) + " bold",
		chroma.Keyword:         ColorToHex(t.Accent),
		chroma.KeywordConstant: ColorToHex(t.Accent),
		chroma.LiteralNumber:   ColorToHex(t.Warning),
		chroma.LiteralString:   ColorToHex(t.Success),
		chroma.Background:      "bg:" + ColorToHex(t.BgSubtle),
	}
}

// HighlightJSON colors a JSON document with the current theme. Highlighting
// failures return the source unchanged.
func HighlightJSON(src string) string {
	lexer := lexers.Get("json")
	formatter := formatters.Get("terminal16m")
	if lexer == nil || formatter == nil {
		return src
	}

	style, err := chroma.NewStyle(CurrentTheme().Name, GetChromaTheme())
	if err != nil {
		return src
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, src)
	if err != nil {
		return src
	}

	var b strings.Builder
	if err := formatter.Format(&b, style, it); err != nil {
		return src
	}
	return b.String()
}
