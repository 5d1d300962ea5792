package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
	"github.com/jacksonferrigno/dxter/internal/domain/respond"
)

// Result of resolving a numeric claim against the knowledge base.
type Result struct {
	Component knowledge.Component
	Status    knowledge.Status
	Value     float64
	Response  string
}

var numberPattern = regexp.MustCompile(`\d+(\.\d+)?`)

// ExtractNumber returns the first decimal number in the utterance. Commas
// are stripped first so "platelets at 450,000" yields 450000, not 450.
func ExtractNumber(text string) (float64, bool) {
	clean := strings.ReplaceAll(text, ",", "")
	match := numberPattern.FindString(clean)
	if match == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// AnalyzeNumeric resolves a measured value to a component and status. The
// utterance is used only to disambiguate the component; no match means the
// number is not about a known component and the caller falls through to the
// classifier. Pure over the knowledge base and its inputs.
func AnalyzeNumeric(base *knowledge.Base, text string, value float64) (Result, bool) {
	c, ok := base.Match(text)
	if !ok {
		return Result{}, false
	}
	info, ok := base.Lookup(c)
	if !ok {
		return Result{}, false
	}
	r, err := base.Range(c)
	if err != nil {
		// Validate runs at startup, so a malformed range cannot reach
		// here; treat it as no-match rather than panicking.
		return Result{}, false
	}
	status := r.Classify(value)
	return Result{
		Component: c,
		Status:    status,
		Value:     value,
		Response:  respond.NumericAnalysis(c, info, status, value),
	}, true
}
