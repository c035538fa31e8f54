// Package usage implements the data element usage analysis: given the data
// elements of a tag property and the pool of objects that may reference them,
// it finds which objects reference which element by name and which elements
// are referenced nowhere.
package usage

// Kind identifies the declared type of a configuration object.
type Kind string

// Declared object kinds, as reported by the Reactor API.
const (
	KindDataElements   Kind = "data_elements"
	KindExtensions     Kind = "extensions"
	KindRuleComponents Kind = "rule_components"
)

// Human-facing rule component sub-kinds, derived from the delegate
// descriptor ID at classification time.
const (
	KindRuleActions    Kind = "rule_actions"
	KindRuleConditions Kind = "rule_conditions"
	KindRuleEvents     Kind = "rule_events"
)

// Entity is a named data element under usage analysis.
type Entity struct {
	// ID is the stable unique key of the record; it is used for
	// self-match exclusion, never for matching.
	ID         string
	Name       string
	Attributes map[string]any
}

// Candidate is any configuration object whose serialized attributes may
// reference an Entity's name.
type Candidate struct {
	ID   string
	Kind Kind
	Name string
	// Attributes is the opaque configuration payload searched for
	// references.
	Attributes map[string]any
	// DelegateDescriptorID and RuleName are set only for rule components.
	DelegateDescriptorID string
	RuleName             string
}

// UsageRecord is one row of the final report: a single reference from one
// configuration object to one data element.
type UsageRecord struct {
	EntityName string `json:"data_element_name"`
	Kind       Kind   `json:"usage_in_type"`
	Name       string `json:"usage_in_name"`
	// RuleName is set only when Kind is a rule component sub-kind.
	RuleName string `json:"usage_in_rule_name,omitempty"`
}

// Diagnostic describes a candidate that had to be skipped during a run.
type Diagnostic struct {
	CandidateID   string
	CandidateName string
	// Stage is the analysis stage that skipped the candidate.
	Stage string
	Err   error
}

// Analysis stages referenced by diagnostics.
const (
	StagePattern   = "pattern"
	StageSerialize = "serialize"
	StageClassify  = "classify"
)

// Report is the complete result of one analysis run.
type Report struct {
	// Hits maps an entity name to the candidates referencing it, in
	// candidate iteration order. Entities without hits have no key.
	Hits map[string][]Candidate
	// HitOrder lists the keys of Hits in entity iteration order, since
	// map iteration order is not stable.
	HitOrder []string
	// Unused lists the entity names with zero hits, in entity iteration
	// order. Together with the keys of Hits it partitions the full
	// entity name set.
	Unused []string
	// Diagnostics lists the candidates skipped during aggregation.
	Diagnostics []Diagnostic
}

// Used reports whether the named entity has at least one hit.
func (r Report) Used(entityName string) bool {
	return len(r.Hits[entityName]) > 0
}
