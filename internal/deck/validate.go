package deck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// dimensionPattern matches "", "auto", "<n>%" and "<n>px".
var dimensionPattern = regexp.MustCompile(`^(auto|\d+(\.\d+)?(%|px))?$`)

// NormalizeColor parses a hex color ("#rgb" or "#rrggbb", leading # optional)
// and returns it as lowercase "#rrggbb".
func NormalizeColor(field, value string) (string, error) {
	v := strings.TrimSpace(value)
	if v != "" && !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	c, err := colorful.Hex(v)
	if err != nil || (len(v) != 4 && len(v) != 7) {
		return "", &ValidationError{Field: field, Message: fmt.Sprintf("%q is not a #RRGGBB color", value)}
	}
	return c.Hex(), nil
}

// NormalizeDimension validates an image or border dimension.
// Empty means "let the runtime decide".
func NormalizeDimension(field, value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if !dimensionPattern.MatchString(v) {
		return "", &ValidationError{Field: field, Message: fmt.Sprintf("%q must be a percentage, pixels or auto", value)}
	}
	return v, nil
}

// Validate checks a button the way the macro form does before it is added.
func (b ButtonSpec) Validate() error {
	if strings.TrimSpace(b.Macro) == "" {
		return &ValidationError{Field: "macro", Message: "required"}
	}
	if !b.Scale.InRange() {
		return &ValidationError{Field: "scale", Message: fmt.Sprintf("must be between %s and %s", MinScale, MaxScale)}
	}
	return nil
}
