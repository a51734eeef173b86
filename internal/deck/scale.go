package deck

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Scale bounds.
const (
	MinScale Scale = 0
	MaxScale Scale = 2
)

// Scale is a button's size multiplier.
//
// It always serializes with a fractional part so that 1 is written as 1.0,
// matching the documents the deck runtime already reads.
type Scale float64

// MarshalJSON implements json.Marshaler.
func (s Scale) MarshalJSON() ([]byte, error) {
	if math.IsNaN(float64(s)) || math.IsInf(float64(s), 0) {
		return nil, &ValidationError{Field: "scale", Message: "must be a finite number"}
	}
	out := strconv.FormatFloat(float64(s), 'f', -1, 64)
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return []byte(out), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scale) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("scale: %w", err)
	}
	*s = Scale(f)
	return nil
}

// String renders the scale with two decimals.
func (s Scale) String() string {
	return strconv.FormatFloat(float64(s), 'f', 2, 64)
}

// ParseScale parses a scale and checks it is within [MinScale, MaxScale].
func ParseScale(value string) (Scale, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return DefaultScale, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, &ValidationError{Field: "scale", Message: fmt.Sprintf("%q is not a number", value)}
	}
	s := Scale(f)
	if !s.InRange() {
		return 0, &ValidationError{Field: "scale", Message: fmt.Sprintf("must be between %s and %s", MinScale, MaxScale)}
	}
	return s, nil
}

// InRange reports whether s is a number within [MinScale, MaxScale].
func (s Scale) InRange() bool {
	return !math.IsNaN(float64(s)) && s >= MinScale && s <= MaxScale
}
