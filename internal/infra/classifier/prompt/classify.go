package prompt

import "fmt"

// GetSystemPrompt provides strict directions and schema for JSON output.
func GetSystemPrompt() string {
	return `You are an intent classifier for a blood test assistant. You must produce one valid JSON object only (no markdown, no commentary) that follows the schema below. Do not include code fences.

Requirements:
- Output must be a single JSON object.
- intent must be a dotted label built from a component and a qualifier.
- Components: wbc, hemoglobin, platelets, hematocrit, mcv, mch.
- Qualifiers: "{component}" (overview), "{component}.low", "{component}.high", "{component}.range", "{component}.followup" (maintain), "{component}.followup.low" (raise), "{component}.followup.high" (lower), "{component}.treatment.low", "{component}.treatment.high", "{component}.analyze" (a measured value), "blood.context" (pronoun follow-up), "blood.normal" (general normal values).
- If the utterance fits none of these, use intent "unknown".
- score is your confidence in [0,1].
- entities lists recognized spans, each as {"entity": "<component|status|value>", "value": "<text>"}. May be empty.

Schema (example with empty values):
{
  "intent": "<string>",
  "score": 0.0,
  "entities": [
    {"entity": "<string>", "value": "<string>"}
  ]
}`
}

// GetUserPrompt builds a compact user message around the utterance.
func GetUserPrompt(locale, utterance string) string {
	return fmt.Sprintf("Classify this %s utterance and respond with the JSON per schema. Utterance: %s", locale, utterance)
}
