// Package prompt provides interactive prompt functionality for tagaudit.
package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/avdberg/tagaudit/pkg/property"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// SelectProperty prompts the user to pick one property from a list.
	SelectProperty(properties []property.Property) (property.Property, error)

	// PromptForValue prompts the user for a single line value with a
	// default.
	PromptForValue(label, defaultValue string) (string, error)

	// PromptForConfirmation prompts the user for confirmation with a
	// default value.
	PromptForConfirmation(message string, defaultYes bool) (bool, error)
}

type realPrompt struct {
	reader *bufio.Reader
}

// NewPrompt creates a new Prompter instance reading from stdin.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
	}
}

// newPromptWithReader creates a Prompter over an arbitrary reader, used in
// tests.
func newPromptWithReader(reader *bufio.Reader) Prompter {
	return &realPrompt{reader: reader}
}

// SelectProperty prompts the user to pick one property from a list.
func (p *realPrompt) SelectProperty(properties []property.Property) (property.Property, error) {
	if len(properties) == 0 {
		return property.Property{}, ErrNoProperties
	}
	if len(properties) == 1 {
		return properties[0], nil
	}

	// Use Bubble Tea selector for interactive selection
	return selectPropertyBubbleTea(properties)
}

// PromptForValue prompts the user for a single line value with a default.
func (p *realPrompt) PromptForValue(label, defaultValue string) (string, error) {
	if defaultValue != "" {
		fmt.Printf("%s [default: %s]: ", label, defaultValue)
	} else {
		fmt.Printf("%s: ", label)
	}

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(input)

	if input == "" {
		return defaultValue, nil
	}

	return input, nil
}

// PromptForConfirmation prompts the user for confirmation with a default value.
func (p *realPrompt) PromptForConfirmation(message string, defaultYes bool) (bool, error) {
	var defaultText string
	if defaultYes {
		defaultText = "[Y/n]"
	} else {
		defaultText = "[y/N]"
	}

	fmt.Printf("%s %s: ", message, defaultText)

	input, err := p.reader.ReadString('\n')
	if err != nil {
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	// Trim whitespace and newlines
	input = strings.TrimSpace(strings.ToLower(input))

	if input == "" {
		return defaultYes, nil
	}

	switch input {
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, ErrInvalidConfirmationInput
	}
}
