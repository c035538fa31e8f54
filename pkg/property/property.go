// Package property defines the typed records of a tag property as returned
// by the Reactor API, and their conversion into the views the usage analysis
// consumes.
package property

import (
	"strings"

	"github.com/avdberg/tagaudit/pkg/usage"
)

// Company represents a Reactor company resource.
type Company struct {
	ID   string
	Name string
}

// Property represents a Reactor property resource.
type Property struct {
	ID       string
	Name     string
	Platform string
}

// DataElement represents a data element resource of a property.
type DataElement struct {
	ID         string
	Name       string
	Attributes map[string]any
}

// Rule represents a rule resource of a property.
type Rule struct {
	ID      string
	Name    string
	Enabled bool
}

// RuleComponent represents one action, condition or event of a rule. The
// owning rule's name is resolved by the fetch layer, since the API only
// links components to rules by ID.
type RuleComponent struct {
	ID                   string
	Name                 string
	DelegateDescriptorID string
	RuleID               string
	RuleName             string
	Attributes           map[string]any
}

// Extension represents an installed extension resource of a property.
type Extension struct {
	ID         string
	Name       string
	Attributes map[string]any
}

// Entities converts data elements into the entities under analysis.
func Entities(dataElements []DataElement) []usage.Entity {
	entities := make([]usage.Entity, 0, len(dataElements))
	for _, dataElement := range dataElements {
		entities = append(entities, usage.Entity{
			ID:         dataElement.ID,
			Name:       dataElement.Name,
			Attributes: dataElement.Attributes,
		})
	}
	return entities
}

// Candidates builds the full candidate pool for an analysis run: all data
// elements, all rule components, then all extensions, in that order.
func Candidates(
	dataElements []DataElement,
	ruleComponents []RuleComponent,
	extensions []Extension,
) []usage.Candidate {
	candidates := make([]usage.Candidate, 0, len(dataElements)+len(ruleComponents)+len(extensions))

	for _, dataElement := range dataElements {
		candidates = append(candidates, usage.Candidate{
			ID:         dataElement.ID,
			Kind:       usage.KindDataElements,
			Name:       dataElement.Name,
			Attributes: dataElement.Attributes,
		})
	}
	for _, component := range ruleComponents {
		candidates = append(candidates, usage.Candidate{
			ID:                   component.ID,
			Kind:                 usage.KindRuleComponents,
			Name:                 component.Name,
			Attributes:           component.Attributes,
			DelegateDescriptorID: component.DelegateDescriptorID,
			RuleName:             component.RuleName,
		})
	}
	for _, extension := range extensions {
		candidates = append(candidates, usage.Candidate{
			ID:         extension.ID,
			Kind:       usage.KindExtensions,
			Name:       extension.Name,
			Attributes: extension.Attributes,
		})
	}

	return candidates
}

// ComponentCounts summarizes rule components by sub-kind for display.
type ComponentCounts struct {
	Actions    int
	Conditions int
	Events     int
	Other      int
}

// CountComponents tallies rule components by the marker in their delegate
// descriptor ID. Components without a recognized marker land in Other.
func CountComponents(ruleComponents []RuleComponent) ComponentCounts {
	var counts ComponentCounts
	for _, component := range ruleComponents {
		switch {
		case strings.Contains(component.DelegateDescriptorID, "::actions::"):
			counts.Actions++
		case strings.Contains(component.DelegateDescriptorID, "::conditions::"):
			counts.Conditions++
		case strings.Contains(component.DelegateDescriptorID, "::events::"):
			counts.Events++
		default:
			counts.Other++
		}
	}
	return counts
}
