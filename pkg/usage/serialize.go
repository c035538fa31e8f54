package usage

import (
	"encoding/json"
	"fmt"
)

// Serialize renders a candidate's attributes payload as a single searchable
// string. JSON rendering is used because it is deterministic (object keys
// are sorted) and keeps every leaf string value verbatim inside double
// quotes, with any quote the value itself contains escaped to `\"`. Both
// forms are part of the default marker set.
func Serialize(candidate Candidate) (string, error) {
	if candidate.Attributes == nil {
		return "", fmt.Errorf("%w: %s", ErrNoAttributes, candidate.describe())
	}

	payload, err := json.Marshal(candidate.Attributes)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrUnserializablePayload, candidate.describe(), err)
	}

	return string(payload), nil
}

// describe returns a short identifier for error messages.
func (c Candidate) describe() string {
	if c.Name != "" {
		return fmt.Sprintf("%s %q", c.Kind, c.Name)
	}
	return fmt.Sprintf("%s %s", c.Kind, c.ID)
}
