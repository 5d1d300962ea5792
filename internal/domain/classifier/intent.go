package classifier

import (
	"strings"

	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
)

// Kind is what a parsed intent asks for.
type Kind string

const (
	// KindUnknown covers empty, malformed, and unrecognized labels. It is
	// a legitimate outcome, answered with a generic fallback.
	KindUnknown Kind = "unknown"

	KindBasic        Kind = "basic"         // {component}
	KindStatusDetail Kind = "status_detail" // {component}.low | {component}.high
	KindRange        Kind = "range"         // {component}.range
	KindMaintain     Kind = "maintain"      // {component}.followup
	KindImprove      Kind = "improve"       // {component}.followup.{low|high}
	KindTreatment    Kind = "treatment"     // {component}.treatment.{status}
	KindAnalyze      Kind = "analyze"       // {component}.analyze
	KindContextual   Kind = "contextual"    // blood.context
	KindOverview     Kind = "overview"      // blood.normal
)

// Intent is the tagged form of a dotted wire label. Component and Status
// are set only where the kind implies them.
type Intent struct {
	Kind      Kind
	Component knowledge.Component
	Status    knowledge.Status
}

// ParseIntent decodes a dotted label such as "hemoglobin.treatment.low" or
// "blood.context". Anything it cannot place comes back as KindUnknown;
// malformed labels never error.
func ParseIntent(label string) Intent {
	parts := strings.Split(strings.TrimSpace(strings.ToLower(label)), ".")
	if len(parts) == 0 || parts[0] == "" {
		return Intent{Kind: KindUnknown}
	}

	if parts[0] == "blood" {
		if len(parts) != 2 {
			return Intent{Kind: KindUnknown}
		}
		switch parts[1] {
		case "context":
			return Intent{Kind: KindContextual}
		case "normal":
			return Intent{Kind: KindOverview}
		}
		return Intent{Kind: KindUnknown}
	}

	c, ok := knowledge.ParseComponent(parts[0])
	if !ok {
		return Intent{Kind: KindUnknown}
	}

	switch len(parts) {
	case 1:
		return Intent{Kind: KindBasic, Component: c}
	case 2:
		switch parts[1] {
		case "low":
			return Intent{Kind: KindStatusDetail, Component: c, Status: knowledge.StatusLow}
		case "high":
			return Intent{Kind: KindStatusDetail, Component: c, Status: knowledge.StatusHigh}
		case "range":
			return Intent{Kind: KindRange, Component: c}
		case "followup":
			return Intent{Kind: KindMaintain, Component: c}
		case "analyze":
			return Intent{Kind: KindAnalyze, Component: c}
		}
	case 3:
		switch parts[1] {
		case "followup":
			switch parts[2] {
			case "low":
				return Intent{Kind: KindImprove, Component: c, Status: knowledge.StatusLow}
			case "high":
				return Intent{Kind: KindImprove, Component: c, Status: knowledge.StatusHigh}
			}
		case "treatment":
			switch parts[2] {
			case "low":
				return Intent{Kind: KindTreatment, Component: c, Status: knowledge.StatusLow}
			case "high":
				return Intent{Kind: KindTreatment, Component: c, Status: knowledge.StatusHigh}
			case "normal":
				return Intent{Kind: KindTreatment, Component: c, Status: knowledge.StatusNormal}
			}
		}
	}
	return Intent{Kind: KindUnknown}
}

// String re-encodes the intent into its dotted wire form, for logging and
// chat history rows.
func (i Intent) String() string {
	switch i.Kind {
	case KindBasic:
		return string(i.Component)
	case KindStatusDetail:
		return string(i.Component) + "." + string(i.Status)
	case KindRange:
		return string(i.Component) + ".range"
	case KindMaintain:
		return string(i.Component) + ".followup"
	case KindImprove:
		return string(i.Component) + ".followup." + string(i.Status)
	case KindTreatment:
		return string(i.Component) + ".treatment." + string(i.Status)
	case KindAnalyze:
		return string(i.Component) + ".analyze"
	case KindContextual:
		return "blood.context"
	case KindOverview:
		return "blood.normal"
	default:
		return "unknown"
	}
}
