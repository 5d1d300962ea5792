package analysis

import (
	"regexp"
	"strings"

	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
	"github.com/jacksonferrigno/dxter/internal/domain/respond"
)

var treatmentPattern = regexp.MustCompile(`(?i)how.*treat|treatment`)

// IsTreatmentQuestion reports whether the utterance asks about treatment.
func IsTreatmentQuestion(text string) bool {
	return treatmentPattern.MatchString(text)
}

// Resolution records what a treatment answer was about, so the caller can
// persist it back into the conversation context.
type Resolution struct {
	Component knowledge.Component
	Status    knowledge.Status
}

// ResolveTreatment answers a treatment question. The utterance overrides
// context: a component named in the text wins over lastComponent, and a
// literal "low" or "high" token wins over lastStatus ("low" is checked
// first). When neither source yields a component and status the result is a
// clarification prompt and a nil resolution.
func ResolveTreatment(base *knowledge.Base, text string, lastComponent knowledge.Component, lastStatus knowledge.Status) (string, *Resolution) {
	component := lastComponent
	status := lastStatus

	if c, ok := base.Match(text); ok {
		component = c
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "low") {
		status = knowledge.StatusLow
	} else if strings.Contains(lower, "high") {
		status = knowledge.StatusHigh
	}

	if component == "" || status == "" {
		return respond.TreatmentClarification, nil
	}

	info, ok := base.Lookup(component)
	if !ok {
		return respond.TreatmentClarification, nil
	}

	return respond.Treatment(component, status, info.Treatment[status]),
		&Resolution{Component: component, Status: status}
}
