package knowledge

// Component identifies a measurable blood constituent.
type Component string

const (
	WBC        Component = "wbc"
	Hemoglobin Component = "hemoglobin"
	Platelets  Component = "platelets"
	Hematocrit Component = "hematocrit"
	MCV        Component = "mcv"
	MCH        Component = "mch"
)

// componentOrder is the declaration order of the knowledge base. Substring
// disambiguation walks this slice, so the order is part of the contract.
var componentOrder = []Component{WBC, Hemoglobin, Platelets, Hematocrit, MCV, MCH}

// ParseComponent maps a lowercase name onto the component enum.
func ParseComponent(s string) (Component, bool) {
	for _, c := range componentOrder {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

// Status classifies a measured value against the reference interval.
// It is always derived from a comparison, never authored.
type Status string

const (
	StatusLow    Status = "low"
	StatusHigh   Status = "high"
	StatusNormal Status = "normal"
)

// Direction of an improvement plan.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// Maintenance holds guidance for keeping a component in range.
type Maintenance struct {
	Diet       []string
	Lifestyle  []string
	Monitoring []string
}

// Improvement holds action lists for moving a component toward its range.
type Improvement struct {
	Increase []string
	Decrease []string
	Timeline string
}

// ComponentInfo is the clinical reference record for one component.
// Status-keyed maps carry entries for all three statuses; lists may be
// empty (e.g. causes of a normal value) and callers must not assume
// otherwise.
type ComponentInfo struct {
	Description string
	NormalRange string
	Function    string
	Meanings    map[Status]string
	Symptoms    map[Status][]string
	Causes      map[Status][]string
	Treatment   map[Status][]string
	Maintenance Maintenance
	Improvement Improvement
}
