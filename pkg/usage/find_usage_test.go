//go:build unit

package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUsage_RuleActionReference(t *testing.T) {
	entities := []Entity{
		{ID: "DE1", Name: "userId"},
	}
	candidates := []Candidate{
		{ID: "DE1", Kind: KindDataElements, Name: "userId", Attributes: map[string]any{"path": "user.id"}},
		{
			ID:                   "RC1",
			Kind:                 KindRuleComponents,
			Name:                 "Set userId var",
			DelegateDescriptorID: "core::actions::setVar",
			RuleName:             "Set User",
			Attributes: map[string]any{
				"settings": `{"value":"%userId%"}`,
			},
		},
	}

	report := FindUsage(FindUsageParams{Entities: entities, Candidates: candidates})

	require.Contains(t, report.Hits, "userId")
	require.Len(t, report.Hits["userId"], 1)
	assert.Equal(t, "RC1", report.Hits["userId"][0].ID)
	assert.Empty(t, report.Unused)
	assert.Empty(t, report.Diagnostics)

	records, diagnostics := ClassifyReport(report)
	require.Len(t, records, 1)
	assert.Empty(t, diagnostics)
	assert.Equal(t, UsageRecord{
		EntityName: "userId",
		Kind:       KindRuleActions,
		Name:       "Set userId var",
		RuleName:   "Set User",
	}, records[0])
}

func TestFindUsage_NoReferences(t *testing.T) {
	entities := []Entity{
		{ID: "DE1", Name: "a"},
		{ID: "DE2", Name: "b"},
	}
	candidates := []Candidate{
		{ID: "DE1", Kind: KindDataElements, Name: "a", Attributes: map[string]any{"path": "x"}},
		{ID: "DE2", Kind: KindDataElements, Name: "b", Attributes: map[string]any{"path": "y"}},
		{ID: "EX1", Kind: KindExtensions, Name: "core", Attributes: map[string]any{"version": "1.0"}},
	}

	report := FindUsage(FindUsageParams{Entities: entities, Candidates: candidates})

	assert.Empty(t, report.Hits)
	assert.Equal(t, []string{"a", "b"}, report.Unused)
	assert.Empty(t, report.Diagnostics)
}

func TestFindUsage_PartitionInvariant(t *testing.T) {
	entities := []Entity{
		{ID: "DE1", Name: "used"},
		{ID: "DE2", Name: "unused"},
		{ID: "DE3", Name: "also used"},
	}
	candidates := []Candidate{
		{ID: "DE1", Kind: KindDataElements, Name: "used", Attributes: map[string]any{}},
		{ID: "DE2", Kind: KindDataElements, Name: "unused", Attributes: map[string]any{}},
		{ID: "DE3", Kind: KindDataElements, Name: "also used", Attributes: map[string]any{}},
		{ID: "EX1", Kind: KindExtensions, Name: "core", Attributes: map[string]any{
			"settings": `read %used% then "also used"`,
		}},
	}

	report := FindUsage(FindUsageParams{Entities: entities, Candidates: candidates})

	// Every entity name is either a key of Hits or in Unused, never both.
	seen := make(map[string]int)
	for name := range report.Hits {
		seen[name]++
	}
	for _, name := range report.Unused {
		seen[name]++
	}
	for _, entity := range entities {
		assert.Equal(t, 1, seen[entity.Name], "entity %q must appear exactly once", entity.Name)
	}
	assert.Equal(t, []string{"used", "also used"}, report.HitOrder)
	assert.Equal(t, []string{"unused"}, report.Unused)
}

func TestFindUsage_SelfMatchExcluded(t *testing.T) {
	// The entity's own payload mentions its own name in marker form; its
	// own record must still not count as a reference.
	entities := []Entity{
		{ID: "DE1", Name: "pageName"},
	}
	candidates := []Candidate{
		{ID: "DE1", Kind: KindDataElements, Name: "pageName", Attributes: map[string]any{
			"settings": `default is "pageName"`,
		}},
	}

	report := FindUsage(FindUsageParams{Entities: entities, Candidates: candidates})

	assert.Empty(t, report.Hits)
	assert.Equal(t, []string{"pageName"}, report.Unused)
}

func TestFindUsage_SameNameDistinctRecordStillMatches(t *testing.T) {
	// Identity is by record ID, not by name: a second record that happens
	// to reference the same name is a genuine hit.
	entities := []Entity{
		{ID: "DE1", Name: "pageName"},
	}
	candidates := []Candidate{
		{ID: "DE9", Kind: KindDataElements, Name: "other", Attributes: map[string]any{
			"settings": `uses "pageName"`,
		}},
	}

	report := FindUsage(FindUsageParams{Entities: entities, Candidates: candidates})

	require.Len(t, report.Hits["pageName"], 1)
	assert.Equal(t, "DE9", report.Hits["pageName"][0].ID)
}

func TestFindUsage_SerializationFailureIsSkippedOnce(t *testing.T) {
	entities := []Entity{
		{ID: "DE1", Name: "a"},
		{ID: "DE2", Name: "b"},
	}
	candidates := []Candidate{
		{ID: "DE1", Kind: KindDataElements, Name: "a", Attributes: map[string]any{}},
		{ID: "DE2", Kind: KindDataElements, Name: "b", Attributes: map[string]any{}},
		// No attributes payload at all: extraction failure.
		{ID: "RC1", Kind: KindRuleComponents, Name: "broken"},
		{ID: "EX1", Kind: KindExtensions, Name: "core", Attributes: map[string]any{
			"settings": `%a%`,
		}},
	}

	report := FindUsage(FindUsageParams{Entities: entities, Candidates: candidates})

	// The run completes, the healthy candidate still matches, and the
	// broken candidate is reported exactly once even though both
	// entities encountered it.
	require.Len(t, report.Hits["a"], 1)
	assert.Equal(t, []string{"b"}, report.Unused)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, "RC1", report.Diagnostics[0].CandidateID)
	assert.Equal(t, StageSerialize, report.Diagnostics[0].Stage)
	assert.ErrorIs(t, report.Diagnostics[0].Err, ErrNoAttributes)
}

func TestFindUsage_Idempotent(t *testing.T) {
	entities := []Entity{
		{ID: "DE1", Name: "userId"},
		{ID: "DE2", Name: "sessionId"},
	}
	candidates := []Candidate{
		{ID: "DE1", Kind: KindDataElements, Name: "userId", Attributes: map[string]any{}},
		{ID: "DE2", Kind: KindDataElements, Name: "sessionId", Attributes: map[string]any{
			"settings": `fallback to %userId%`,
		}},
		{ID: "EX1", Kind: KindExtensions, Name: "core", Attributes: map[string]any{
			"settings": `'sessionId' and "userId"`,
		}},
	}

	params := FindUsageParams{Entities: entities, Candidates: candidates}
	first := FindUsage(params)
	second := FindUsage(params)

	assert.Equal(t, first, second)
}

func TestFindUsage_EmptyInputs(t *testing.T) {
	report := FindUsage(FindUsageParams{})
	assert.Empty(t, report.Hits)
	assert.Empty(t, report.Unused)
	assert.Empty(t, report.Diagnostics)

	report = FindUsage(FindUsageParams{
		Entities: []Entity{{ID: "DE1", Name: "lonely"}},
	})
	assert.Empty(t, report.Hits)
	assert.Equal(t, []string{"lonely"}, report.Unused)
}
