package usage

import (
	gocache "github.com/patrickmn/go-cache"
)

// FindUsageParams contains parameters for a usage analysis run.
type FindUsageParams struct {
	Entities []Entity
	// Candidates is the full pool of objects to search, including the
	// entities themselves.
	Candidates []Candidate
	// Markers overrides the enclosing marker set; nil means
	// DefaultMarkers().
	Markers []string
}

// serializeResult is the memoized outcome of serializing one candidate.
type serializeResult struct {
	payload string
	err     error
}

// FindUsage runs the all-pairs containment search between entity names and
// candidate payloads. For each entity its pattern is built once, then tested
// against every candidate except the entity's own record; hits are collected
// per entity in candidate order. Entities with zero hits end up in the
// report's Unused list, so the Unused list and the keys of Hits always
// partition the entity name set.
//
// A candidate whose payload cannot be serialized is skipped with a single
// diagnostic and never aborts the run. Serialization is referentially
// transparent per candidate, so results are memoized by record ID across
// entities; the memo is thread-safe should the per-entity loop ever be
// fanned out.
func FindUsage(params FindUsageParams) Report {
	report := Report{Hits: make(map[string][]Candidate)}

	markers := params.Markers
	if markers == nil {
		markers = DefaultMarkers()
	}

	memo := gocache.New(gocache.NoExpiration, gocache.NoExpiration)

	for _, entity := range params.Entities {
		pattern, err := BuildPattern(entity.Name, markers)
		if err != nil {
			report.Diagnostics = append(report.Diagnostics, Diagnostic{
				CandidateID:   entity.ID,
				CandidateName: entity.Name,
				Stage:         StagePattern,
				Err:           err,
			})
			report.Unused = append(report.Unused, entity.Name)
			continue
		}

		for _, candidate := range params.Candidates {
			// Identity comparison by record ID: an entity never
			// counts as its own reference, and two distinct
			// records with equal payloads must stay distinct.
			if candidate.ID == entity.ID {
				continue
			}

			payload, firstFailure, serr := serializeMemoized(memo, candidate)
			if serr != nil {
				if firstFailure {
					report.Diagnostics = append(report.Diagnostics, Diagnostic{
						CandidateID:   candidate.ID,
						CandidateName: candidate.Name,
						Stage:         StageSerialize,
						Err:           serr,
					})
				}
				continue
			}

			if Matches(pattern, payload) {
				report.Hits[entity.Name] = append(report.Hits[entity.Name], candidate)
			}
		}

		if report.Used(entity.Name) {
			report.HitOrder = append(report.HitOrder, entity.Name)
		} else {
			report.Unused = append(report.Unused, entity.Name)
		}
	}

	return report
}

// serializeMemoized serializes a candidate at most once per run. The
// firstFailure return reports whether a failure was seen for the first time,
// so the caller emits one diagnostic per skipped candidate rather than one
// per entity.
func serializeMemoized(memo *gocache.Cache, candidate Candidate) (payload string, firstFailure bool, err error) {
	if cached, found := memo.Get(candidate.ID); found {
		result, ok := cached.(serializeResult)
		if ok {
			return result.payload, false, result.err
		}
	}

	payload, err = Serialize(candidate)
	memo.Set(candidate.ID, serializeResult{payload: payload, err: err}, gocache.NoExpiration)

	return payload, err != nil, err
}
