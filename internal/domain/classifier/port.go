package classifier

import "context"

// Entity is a span the classifier attributed to a known concept.
type Entity struct {
	Entity string `json:"entity"`
	Value  string `json:"value"`
}

// Result is the raw classifier verdict. Intent is the dotted wire label;
// callers parse it once via ParseIntent and never match on string fragments
// themselves.
type Result struct {
	Intent   string   `json:"intent"`
	Score    float64  `json:"score"`
	Entities []Entity `json:"entities,omitempty"`
}

type Client interface {
	Classify(ctx context.Context, locale, utterance string) (Result, error)
}
