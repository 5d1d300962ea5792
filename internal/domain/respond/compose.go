package respond

import (
	"strings"

	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
)

// Fixed responses used by the orchestration shortcuts.
const (
	Greeting      = "Hey there! I can help you understand your blood test results and provide general treatment suggestions. What would you like to know?"
	Farewell      = "You're welcome! Stay healthy!"
	NotUnderstood = "I'm not sure how to respond to that question."

	// TreatmentClarification is returned when neither the utterance nor the
	// conversation context pins down a component and status.
	TreatmentClarification = "Could you specify which blood component you'd like treatment recommendations for? For example: 'How to treat low hemoglobin?'"

	// NoTreatment covers components whose recommendation list for the
	// resolved status is empty.
	NoTreatment = "I don't have specific treatment recommendations for this condition."

	// ContextClarification is returned for pronoun-style follow-ups that
	// arrive before anything has been analyzed.
	ContextClarification = "I don't have a previous result to refer to. Could you tell me which blood component you're asking about?"
)

// NumericAnalysis renders the response for a directly measured value.
func NumericAnalysis(c knowledge.Component, info knowledge.ComponentInfo, status knowledge.Status, value float64) string {
	var b strings.Builder
	b.WriteString("**" + strings.ToUpper(string(c)) + " Analysis**\n\n")
	b.WriteString("Your value: " + FormatValue(value) + " is " + strings.ToUpper(string(status)) + "\n")
	b.WriteString("Normal range: " + info.NormalRange + "\n\n")
	b.WriteString(info.Meanings[status])
	section(&b, "Common causes of "+string(status)+" "+string(c)+":", info.Causes[status])
	b.WriteString("\n\nInterested in:\n• Treatment options\n• Dietary recommendations\n• Risk factors\n• Follow-up testing?")
	return b.String()
}

// Basic renders the overview answer for a component with no status qualifier.
func Basic(c knowledge.Component, info knowledge.ComponentInfo) string {
	var b strings.Builder
	b.WriteString("**" + strings.ToUpper(string(c)) + "**\n\n")
	b.WriteString(info.Description + "\n\n")
	b.WriteString("Normal Range: " + info.NormalRange + "\n")
	b.WriteString("Function: " + info.Function + "\n")
	b.WriteString("Key Points:\n")
	b.WriteString("• Low: " + info.Meanings[knowledge.StatusLow] + "\n")
	b.WriteString("• High: " + info.Meanings[knowledge.StatusHigh] + "\n\n")
	b.WriteString("Want to know more about:\n• Normal ranges\n• Symptoms\n• Treatments?")
	return b.String()
}

// StatusDetail renders the meaning, symptoms and causes of a component at a
// given status. Empty lists omit their section entirely.
func StatusDetail(c knowledge.Component, info knowledge.ComponentInfo, status knowledge.Status) string {
	var b strings.Builder
	b.WriteString("**" + title(string(status)) + " " + strings.ToUpper(string(c)) + "**\n\n")
	b.WriteString(info.Meanings[status] + "\n")
	b.WriteString("Normal Range: " + info.NormalRange)
	section(&b, "Common Symptoms:", info.Symptoms[status])
	section(&b, "Common Causes:", info.Causes[status])
	b.WriteString("\nMore about:\n• Improvement strategies\n• Prevention\n• Follow-up?")
	return b.String()
}

// Maintenance renders the keep-it-normal guidance.
func Maintenance(c knowledge.Component, info knowledge.ComponentInfo) string {
	var b strings.Builder
	b.WriteString("To maintain healthy " + string(c) + " levels:")
	section(&b, "Diet:", info.Maintenance.Diet)
	section(&b, "Lifestyle:", info.Maintenance.Lifestyle)
	section(&b, "Monitoring:", info.Maintenance.Monitoring)
	return b.String()
}

// Improvement renders the action plan for moving a value in one direction.
func Improvement(c knowledge.Component, info knowledge.ComponentInfo, dir knowledge.Direction) string {
	verb := "raise"
	actions := info.Improvement.Increase
	if dir == knowledge.DirectionDecrease {
		verb = "lower"
		actions = info.Improvement.Decrease
	}
	var b strings.Builder
	b.WriteString("To " + verb + " your " + string(c) + " levels:")
	section(&b, "Actions:", actions)
	b.WriteString("\nTimeline: " + info.Improvement.Timeline + "\n")
	b.WriteString("Regular monitoring is recommended.")
	return b.String()
}

// Range restates the reference interval with its low and high cutoffs.
func Range(c knowledge.Component, info knowledge.ComponentInfo, r knowledge.Range) string {
	var b strings.Builder
	b.WriteString("**Normal Range for " + strings.ToUpper(string(c)) + "**\n\n")
	b.WriteString("The normal range is " + info.NormalRange + "\n\n")
	b.WriteString("• Below " + knowledge.FormatBound(r.Min) + ": Considered low\n")
	b.WriteString("• Above " + knowledge.FormatBound(r.Max) + ": Considered high\n\n")
	b.WriteString("Would you like to know more about:\n• What affects these levels?\n• How to maintain normal levels?\n• When to be concerned?")
	return b.String()
}

// Treatment renders the recommendation list for a status. The list is
// rendered in source order.
func Treatment(c knowledge.Component, status knowledge.Status, recommendations []string) string {
	if len(recommendations) == 0 {
		return NoTreatment
	}
	var b strings.Builder
	b.WriteString("Here are treatment recommendations for " + string(status) + " " + string(c) + ":\n")
	bullets(&b, recommendations)
	return b.String()
}

// Contextual answers a pronoun-style follow-up from the remembered component
// and status. Missing context yields a clarification, never an error.
func Contextual(c knowledge.Component, info knowledge.ComponentInfo, status knowledge.Status) string {
	if c == "" || status == "" {
		return ContextClarification
	}
	var b strings.Builder
	b.WriteString("Based on your " + string(c) + " being " + string(status) + ", this means: " + info.Meanings[status])
	b.WriteString("\n\nWould you like to know more about:\n• Treatment options\n• Possible causes\n• Next steps?")
	return b.String()
}

// Overview lists every component with its reference interval, for the
// "what are normal blood values" family of questions.
func Overview(base *knowledge.Base) string {
	var b strings.Builder
	b.WriteString("**Normal Blood Values**\n")
	for _, c := range base.Components() {
		info, ok := base.Lookup(c)
		if !ok {
			continue
		}
		b.WriteString("\n• " + strings.ToUpper(string(c)) + ": " + info.NormalRange)
	}
	b.WriteString("\n\nAsk about any component for more detail.")
	return b.String()
}

// section writes a blank-line separated heading plus bullets, or nothing at
// all when items is empty.
func section(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n\n" + heading + "\n")
	bullets(b, items)
}

// bullets writes one item per line in source order.
func bullets(b *strings.Builder, items []string) {
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("• " + item)
	}
}

// FormatValue renders a measured value with thousands grouping in the
// integer part, matching how results are usually written ("450,000").
func FormatValue(v float64) string {
	s := knowledge.FormatBound(v)
	intPart, frac, hasFrac := strings.Cut(s, ".")
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if hasFrac {
		b.WriteString("." + frac)
	}
	return b.String()
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
