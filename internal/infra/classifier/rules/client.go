package rules

import (
	"context"
	"strings"

	"github.com/jacksonferrigno/dxter/internal/domain/classifier"
	"github.com/jacksonferrigno/dxter/internal/domain/knowledge"
)

// Client is a deterministic keyword classifier. It is the default provider
// so the service answers sensibly without an external model; a hosted
// classifier can be swapped in through configuration.
type Client struct {
	base *knowledge.Base
}

func NewClient(base *knowledge.Base) *Client {
	return &Client{base: base}
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func (c *Client) Classify(_ context.Context, _ string, utterance string) (classifier.Result, error) {
	lower := strings.ToLower(utterance)

	component, hasComponent := c.base.Match(lower)
	if !hasComponent {
		switch {
		case containsAny(lower, "that mean", "this mean", "is it serious", "worry about", "dangerous", "causing it", "cause this", "would that happen"):
			return verdict("blood.context", 0.85), nil
		case strings.Contains(lower, "blood") && containsAny(lower, "normal", "values", "levels", "results"):
			return verdict("blood.normal", 0.85), nil
		}
		return verdict("unknown", 0.2), nil
	}

	status := ""
	if containsAny(lower, "low", "below", "dropped", "deficien") {
		status = "low"
	} else if containsAny(lower, "high", "elevated", "above") {
		status = "high"
	}

	name := string(component)
	switch {
	case containsAny(lower, "treat", "what should i do", "what helps"):
		if status == "" {
			// A treatment ask with no direction falls back to context
			// downstream, so surface it as a pronoun-style follow-up.
			return entityVerdict("blood.context", 0.7, component, status), nil
		}
		return entityVerdict(name+".treatment."+status, 0.9, component, status), nil
	case containsAny(lower, "normal range", "reference range", "what should", "healthy", "normal levels", "what is normal"):
		return entityVerdict(name+".range", 0.9, component, ""), nil
	case containsAny(lower, "maintain", "keep", "stable", "prevent", "how long", "timeline", "normalize"):
		return entityVerdict(name+".followup", 0.85, component, ""), nil
	case containsAny(lower, "increase", "raise", "boost"):
		return entityVerdict(name+".followup.low", 0.85, component, "low"), nil
	case containsAny(lower, "lower", "reduce", "decrease"):
		return entityVerdict(name+".followup.high", 0.85, component, "high"), nil
	case status != "":
		return entityVerdict(name+"."+status, 0.85, component, status), nil
	}
	return entityVerdict(name, 0.7, component, ""), nil
}

func verdict(intent string, score float64) classifier.Result {
	return classifier.Result{Intent: intent, Score: score}
}

func entityVerdict(intent string, score float64, component knowledge.Component, status string) classifier.Result {
	res := classifier.Result{Intent: intent, Score: score}
	res.Entities = append(res.Entities, classifier.Entity{Entity: "component", Value: string(component)})
	if status != "" {
		res.Entities = append(res.Entities, classifier.Entity{Entity: "status", Value: status})
	}
	return res
}
