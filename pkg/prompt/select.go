package prompt

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avdberg/tagaudit/pkg/property"
)

// selectModel represents the Bubble Tea model for property selection.
type selectModel struct {
	properties []property.Property
	filtered   []property.Property
	cursor     int
	filter     string
	selected   *property.Property
	quitting   bool
}

// initialSelectModel creates a new select model.
func initialSelectModel(properties []property.Property) selectModel {
	return selectModel{
		properties: properties,
		filtered:   properties,
	}
}

// Init initializes the model.
func (m selectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := keyMsg.String(); key {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		if len(m.filtered) > 0 && m.cursor < len(m.filtered) {
			selected := m.filtered[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	case "up", "ctrl+p":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "ctrl+n":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
		}
	case "backspace":
		if len(m.filter) > 0 {
			m.filter = m.filter[:len(m.filter)-1]
			m.applyFilter()
		}
	case "esc":
		m.filter = ""
		m.applyFilter()
	default:
		// Regular character input narrows the list.
		if len(key) == 1 {
			m.filter += key
			m.applyFilter()
		}
	}

	return m, nil
}

// applyFilter recomputes the visible properties from the current filter.
func (m *selectModel) applyFilter() {
	if m.filter == "" {
		m.filtered = m.properties
	} else {
		filterLower := strings.ToLower(m.filter)
		m.filtered = nil
		for _, prop := range m.properties {
			if strings.Contains(strings.ToLower(prop.Name), filterLower) {
				m.filtered = append(m.filtered, prop)
			}
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}

// View renders the UI.
func (m selectModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var s strings.Builder

	s.WriteString("? Choose a property:  [Use arrows to move, type to filter]\n\n")

	if m.filter != "" {
		s.WriteString(fmt.Sprintf("Filter: %s\n\n", m.filter))
	}

	for i, prop := range m.filtered {
		cursor := " "
		if m.cursor == i {
			cursor = ">"
		}
		if prop.Platform != "" {
			s.WriteString(fmt.Sprintf("%s %s (%s)\n", cursor, prop.Name, prop.Platform))
		} else {
			s.WriteString(fmt.Sprintf("%s %s\n", cursor, prop.Name))
		}
	}

	s.WriteString("\nPress Enter to select, Ctrl+C or q to quit")
	if m.filter != "" {
		s.WriteString(", Esc to clear filter")
	}

	return s.String()
}

// selectPropertyBubbleTea runs the Bubble Tea program for property selection.
func selectPropertyBubbleTea(properties []property.Property) (property.Property, error) {
	p := tea.NewProgram(initialSelectModel(properties))

	finalModel, err := p.Run()
	if err != nil {
		return property.Property{}, fmt.Errorf("failed to run selection program: %w", err)
	}

	model, ok := finalModel.(selectModel)
	if !ok {
		return property.Property{}, fmt.Errorf("unexpected model type")
	}

	if model.selected == nil {
		return property.Property{}, ErrNoSelection
	}

	return *model.selected, nil
}
