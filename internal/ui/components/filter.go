package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
)

// FilterInput wraps bubbles/textinput as an incremental list filter.
type FilterInput struct {
	Model textinput.Model
}

// NewFilterInput creates a focused filter input.
func NewFilterInput(placeholder string, charLimit int) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "/ "
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return FilterInput{Model: ti}
}

// Init returns the initial command.
func (f FilterInput) Init() tea.Cmd {
	return f.Model.Focus()
}

// Update handles messages.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input.
func (f FilterInput) View() string {
	return f.Model.View()
}

// Value returns the current query.
func (f FilterInput) Value() string {
	return f.Model.Value()
}

// Matches reports whether every whitespace-separated term of the query
// occurs in one of fields, case-insensitively. An empty query matches.
func (f FilterInput) Matches(fields ...string) bool {
	return MatchTerms(f.Value(), fields...)
}

// MatchTerms is the matching rule behind FilterInput.Matches.
func MatchTerms(query string, fields ...string) bool {
	hay := strings.ToLower(strings.Join(fields, " "))
	for _, term := range strings.Fields(strings.ToLower(query)) {
		if !strings.Contains(hay, term) {
			return false
		}
	}
	return true
}
