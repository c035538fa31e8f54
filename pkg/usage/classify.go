package usage

import (
	"fmt"
	"regexp"
)

// componentKindRegexp extracts the component sub-kind from a delegate
// descriptor ID such as "core::actions::custom-code".
var componentKindRegexp = regexp.MustCompile(`::(actions|conditions|events)::`)

// Classify shapes the hit candidates of one entity into normalized usage
// records. Rule components are reported under their sub-kind (rule_actions,
// rule_conditions or rule_events, taken from the delegate descriptor ID)
// together with the owning rule's name; every other kind passes through
// verbatim with no rule name. A rule component whose descriptor lacks the
// component marker is a data integrity problem: it is skipped with a
// diagnostic instead of failing the run.
func Classify(entityName string, hits []Candidate) ([]UsageRecord, []Diagnostic) {
	records := make([]UsageRecord, 0, len(hits))
	var diagnostics []Diagnostic

	for _, hit := range hits {
		record := UsageRecord{
			EntityName: entityName,
			Kind:       hit.Kind,
			Name:       hit.Name,
		}

		if hit.Kind == KindRuleComponents {
			subKind, err := componentKind(hit.DelegateDescriptorID)
			if err != nil {
				diagnostics = append(diagnostics, Diagnostic{
					CandidateID:   hit.ID,
					CandidateName: hit.Name,
					Stage:         StageClassify,
					Err:           err,
				})
				continue
			}
			record.Kind = subKind
			record.RuleName = hit.RuleName
		}

		records = append(records, record)
	}

	return records, diagnostics
}

// ClassifyReport flattens a report into usage records, keeping entity
// iteration order and per-entity candidate order.
func ClassifyReport(report Report) ([]UsageRecord, []Diagnostic) {
	var records []UsageRecord
	var diagnostics []Diagnostic

	for _, entityName := range report.HitOrder {
		entityRecords, entityDiagnostics := Classify(entityName, report.Hits[entityName])
		records = append(records, entityRecords...)
		diagnostics = append(diagnostics, entityDiagnostics...)
	}

	return records, diagnostics
}

// componentKind maps a delegate descriptor ID to the rule component
// sub-kind it describes.
func componentKind(delegateDescriptorID string) (Kind, error) {
	matches := componentKindRegexp.FindStringSubmatch(delegateDescriptorID)
	if matches == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownDescriptor, delegateDescriptorID)
	}
	return Kind("rule_" + matches[1]), nil
}
