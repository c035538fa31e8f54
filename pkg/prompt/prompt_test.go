//go:build unit

package prompt

import (
	"bufio"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avdberg/tagaudit/pkg/property"
)

func newTestPrompt(input string) Prompter {
	return newPromptWithReader(bufio.NewReader(strings.NewReader(input)))
}

func TestPromptForValue(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		defaultValue string
		want         string
	}{
		{name: "value entered", input: "my property\n", defaultValue: "other", want: "my property"},
		{name: "empty falls back to default", input: "\n", defaultValue: "other", want: "other"},
		{name: "whitespace trimmed", input: "  spaced  \n", want: "spaced"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := newTestPrompt(tt.input).PromptForValue("Property name", tt.defaultValue)
			require.NoError(t, err)
			assert.Equal(t, tt.want, value)
		})
	}
}

func TestPromptForConfirmation(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
		wantErr    error
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "full yes", input: "yes\n", want: true},
		{name: "no", input: "n\n", defaultYes: true, want: false},
		{name: "empty uses default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty uses default no", input: "\n", want: false},
		{name: "garbage", input: "maybe\n", wantErr: ErrInvalidConfirmationInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmed, err := newTestPrompt(tt.input).PromptForConfirmation("Overwrite?", tt.defaultYes)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, confirmed)
		})
	}
}

func TestSelectProperty_EdgeCases(t *testing.T) {
	p := newTestPrompt("")

	_, err := p.SelectProperty(nil)
	assert.ErrorIs(t, err, ErrNoProperties)

	only := property.Property{ID: "PR1", Name: "my demo property"}
	selected, err := p.SelectProperty([]property.Property{only})
	require.NoError(t, err)
	assert.Equal(t, only, selected)
}

func TestSelectModel_FilterAndSelect(t *testing.T) {
	model := initialSelectModel([]property.Property{
		{ID: "PR1", Name: "marketing site"},
		{ID: "PR2", Name: "mobile app"},
		{ID: "PR3", Name: "marketing emails"},
	})

	// Type "mark" to narrow to the two marketing properties.
	var updated tea.Model = model
	for _, r := range "mark" {
		updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	m, ok := updated.(selectModel)
	require.True(t, ok)
	require.Len(t, m.filtered, 2)

	// Move down and select the second match.
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	updated, _ = updated.(selectModel).Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(selectModel)

	require.NotNil(t, m.selected)
	assert.Equal(t, "PR3", m.selected.ID)
}

func TestSelectModel_QuitWithoutSelection(t *testing.T) {
	model := initialSelectModel([]property.Property{
		{ID: "PR1", Name: "marketing site"},
		{ID: "PR2", Name: "mobile app"},
	})

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m := updated.(selectModel)

	assert.True(t, m.quitting)
	assert.Nil(t, m.selected)
	assert.NotNil(t, cmd)
}
