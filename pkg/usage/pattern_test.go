//go:build unit

package usage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPattern_DelimiterSensitivity(t *testing.T) {
	pattern, err := BuildPattern("foo", DefaultMarkers())
	require.NoError(t, err)

	tests := []struct {
		name    string
		payload string
		want    bool
	}{
		{
			name:    "percent enclosed",
			payload: `token is %foo% here`,
			want:    true,
		},
		{
			name:    "double quoted",
			payload: `{"source":"foo"}`,
			want:    true,
		},
		{
			name:    "single quoted",
			payload: `_satellite.getVar('foo');`,
			want:    true,
		},
		{
			name:    "escaped double quotes",
			payload: `{"settings":"{\"element\":\"foo\"}"}`,
			want:    true,
		},
		{
			name:    "escaped single quotes",
			payload: `{"code":"getVar(\'foo\')"}`,
			want:    true,
		},
		{
			name:    "suffix of longer identifier",
			payload: `"barfoo"`,
			want:    false,
		},
		{
			name:    "prefix of longer identifier",
			payload: `"foobar"`,
			want:    false,
		},
		{
			name:    "no enclosing marker",
			payload: `var foo = 1;`,
			want:    false,
		},
		{
			name:    "marker on one side only",
			payload: `"foo bar`,
			want:    false,
		},
		{
			name:    "empty payload",
			payload: "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(pattern, tt.payload))
		})
	}
}

func TestBuildPattern_NameIsLiteral(t *testing.T) {
	// Regex metacharacters in the name must never be interpreted.
	pattern, err := BuildPattern("page.name (v2)", DefaultMarkers())
	require.NoError(t, err)

	assert.True(t, Matches(pattern, `"page.name (v2)"`))
	assert.False(t, Matches(pattern, `"pageXname (v2)"`))
	assert.False(t, Matches(pattern, `"page.name v2"`))
}

func TestBuildPattern_CustomMarkers(t *testing.T) {
	pattern, err := BuildPattern("foo", []string{"{{", "}}"})
	require.NoError(t, err)

	assert.True(t, Matches(pattern, `value: {{foo}}`))
	assert.False(t, Matches(pattern, `value: %foo%`))
}

func TestBuildPattern_EmptyName(t *testing.T) {
	_, err := BuildPattern("", DefaultMarkers())
	assert.ErrorIs(t, err, ErrEmptyEntityName)
}

func TestBuildPattern_EmptyMarkers(t *testing.T) {
	_, err := BuildPattern("foo", nil)
	assert.ErrorIs(t, err, ErrNoMarkers)
}
