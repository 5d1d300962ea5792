package knowledge

import (
	"fmt"
	"strings"
)

// Base is the process-wide read-only knowledge base. It is safe for
// concurrent use; nothing mutates it after construction.
type Base struct {
	order []Component
	info  map[Component]ComponentInfo
}

// NewBase builds a knowledge base from an explicit component order and the
// per-component records. Call Validate before serving requests.
func NewBase(order []Component, info map[Component]ComponentInfo) *Base {
	return &Base{order: order, info: info}
}

// Default returns the built-in knowledge base.
func Default() *Base {
	return NewBase(componentOrder, componentData)
}

// Components returns the declaration-order component list.
func (b *Base) Components() []Component {
	out := make([]Component, len(b.order))
	copy(out, b.order)
	return out
}

// Lookup returns the reference record for a component.
func (b *Base) Lookup(c Component) (ComponentInfo, bool) {
	info, ok := b.info[c]
	return info, ok
}

// Match returns the first component, in declaration order, whose name occurs
// case-insensitively as a substring of text. First match wins; there is no
// best-match scoring, so overlapping names resolve by declaration order.
func (b *Base) Match(text string) (Component, bool) {
	lower := strings.ToLower(text)
	for _, c := range b.order {
		if strings.Contains(lower, string(c)) {
			return c, true
		}
	}
	return "", false
}

// Range parses the reference interval for a component.
func (b *Base) Range(c Component) (Range, error) {
	info, ok := b.info[c]
	if !ok {
		return Range{}, fmt.Errorf("no reference record for component %q", c)
	}
	return ParseRange(info.NormalRange)
}

// Validate checks the knowledge base invariants: every declared component
// has exactly one record, every range parses with min below max, and every
// status-keyed map carries all three statuses. A failure here is fatal at
// startup; per-request code relies on these guarantees.
func (b *Base) Validate() error {
	if len(b.order) == 0 {
		return fmt.Errorf("knowledge base declares no components")
	}
	statuses := []Status{StatusLow, StatusHigh, StatusNormal}
	for _, c := range b.order {
		info, ok := b.info[c]
		if !ok {
			return fmt.Errorf("component %q has no reference record", c)
		}
		if _, err := ParseRange(info.NormalRange); err != nil {
			return fmt.Errorf("component %q: %w", c, err)
		}
		for _, st := range statuses {
			if _, ok := info.Meanings[st]; !ok {
				return fmt.Errorf("component %q: missing %s meaning", c, st)
			}
			if _, ok := info.Symptoms[st]; !ok {
				return fmt.Errorf("component %q: missing %s symptoms", c, st)
			}
			if _, ok := info.Causes[st]; !ok {
				return fmt.Errorf("component %q: missing %s causes", c, st)
			}
			if _, ok := info.Treatment[st]; !ok {
				return fmt.Errorf("component %q: missing %s treatment", c, st)
			}
		}
	}
	return nil
}
