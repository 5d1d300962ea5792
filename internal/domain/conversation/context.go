package conversation

import "github.com/jacksonferrigno/dxter/internal/domain/knowledge"

// Context is the per-session conversational state. Values are snapshots:
// readers get a copy and mutation happens only through Store.Update, so a
// Context in hand never changes underneath its holder.
type Context struct {
	Component    knowledge.Component `json:"component,omitempty"`
	Value        *float64            `json:"value,omitempty"`
	Status       knowledge.Status    `json:"status,omitempty"`
	LastIntent   string              `json:"last_intent,omitempty"`
	LastQuestion string              `json:"last_question,omitempty"`
}

// Update carries the fields a turn wants to merge into the session context.
// Nil or zero fields leave the existing value untouched, so a follow-up turn
// that names no component keeps the component of the turn before it.
type Update struct {
	Component    knowledge.Component
	Value        *float64
	Status       knowledge.Status
	LastIntent   string
	LastQuestion string
}

// merge applies u on top of c and returns the result. Neither input is
// mutated.
func merge(c Context, u Update) Context {
	if u.Component != "" {
		c.Component = u.Component
	}
	if u.Value != nil {
		v := *u.Value
		c.Value = &v
	}
	if u.Status != "" {
		c.Status = u.Status
	}
	if u.LastIntent != "" {
		c.LastIntent = u.LastIntent
	}
	if u.LastQuestion != "" {
		c.LastQuestion = u.LastQuestion
	}
	return c
}
