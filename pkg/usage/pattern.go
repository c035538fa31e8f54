package usage

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMarkers returns the enclosing markers recognized around a data
// element name: percent signs, quotes, and backslash-escaped quotes as they
// appear inside nested serialized strings. The set matches the serialization
// conventions of the tag runtime (`%name%`, `"name"`, `'name'`, `\"name\"`,
// `\'name\'`); callers may supply their own set, but this default must stay
// stable for results to stay comparable between runs.
func DefaultMarkers() []string {
	return []string{"%", `"`, `'`, `\"`, `\'`}
}

// BuildPattern builds the regular expression matching entityName only when
// it is immediately enclosed by one of the markers on both sides. The name
// itself is always treated as a literal, so names containing regex
// metacharacters are safe. Requiring markers on both sides keeps a name from
// matching as a substring of a longer identifier.
//
// Known limitation: names constructed dynamically at the point of use (for
// example by string concatenation) carry no enclosing marker and are never
// matched.
func BuildPattern(entityName string, markers []string) (*regexp.Regexp, error) {
	if entityName == "" {
		return nil, ErrEmptyEntityName
	}
	if len(markers) == 0 {
		return nil, ErrNoMarkers
	}

	quoted := make([]string, len(markers))
	for i, marker := range markers {
		quoted[i] = regexp.QuoteMeta(marker)
	}
	enclosing := "(" + strings.Join(quoted, "|") + ")"

	pattern, err := regexp.Compile(enclosing + regexp.QuoteMeta(entityName) + enclosing)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern for %q: %w", entityName, err)
	}

	return pattern, nil
}

// Matches reports whether the serialized payload contains an enclosed
// occurrence of the pattern's entity name.
func Matches(pattern *regexp.Regexp, serializedPayload string) bool {
	return pattern.MatchString(serializedPayload)
}
