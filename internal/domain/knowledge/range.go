package knowledge

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedRange indicates a reference range string that does not parse
// into two numbers. This is a data-integrity defect and is checked once at
// startup via Validate, never per request.
var ErrMalformedRange = errors.New("malformed reference range")

// Range is the closed reference interval for a component.
type Range struct {
	Min float64
	Max float64
}

// ParseRange reads the canonical "min-max" representation. Commas are
// stripped first and a trailing unit after either bound is ignored, so
// "150,000-450,000 per microliter" parses to [150000, 450000].
func ParseRange(s string) (Range, error) {
	clean := strings.ReplaceAll(s, ",", "")
	parts := strings.SplitN(clean, "-", 2)
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("%w: %q", ErrMalformedRange, s)
	}
	min, err := leadingFloat(parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformedRange, s, err)
	}
	max, err := leadingFloat(parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("%w: %q: %v", ErrMalformedRange, s, err)
	}
	if min >= max {
		return Range{}, fmt.Errorf("%w: %q: min is not below max", ErrMalformedRange, s)
	}
	return Range{Min: min, Max: max}, nil
}

// leadingFloat parses the decimal number at the start of s, ignoring any
// unit suffix such as "g/dL" or "%".
func leadingFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (s[end] == '.' || (s[end] >= '0' && s[end] <= '9')) {
		end++
	}
	if end == 0 {
		return 0, fmt.Errorf("no number in %q", s)
	}
	return strconv.ParseFloat(s[:end], 64)
}

// Classify places a value relative to the interval. Values equal to either
// bound are normal; the range is inclusive.
func (r Range) Classify(v float64) Status {
	switch {
	case v > r.Max:
		return StatusHigh
	case v < r.Min:
		return StatusLow
	default:
		return StatusNormal
	}
}

// FormatBound renders an interval bound without a trailing zero fraction.
func FormatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
