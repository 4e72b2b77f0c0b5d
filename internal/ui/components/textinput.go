package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anandk/termquest/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput for incremental filtering.
type SearchInput struct {
	Model textinput.Model
}

// NewSearchInput creates a new styled search input.
func NewSearchInput(placeholder string) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	ti.Focus()
	return SearchInput{Model: ti}
}

// Init returns the initial command.
func (s SearchInput) Init() tea.Cmd {
	return s.Model.Focus()
}

// Update handles messages.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the search input with a leading glyph.
func (s SearchInput) View() string {
	glyph := lipgloss.NewStyle().Foreground(theme.Primary).Render("/ ")
	return glyph + s.Model.View()
}

// Value returns the current query text.
func (s SearchInput) Value() string {
	return s.Model.Value()
}

// Reset clears the query.
func (s *SearchInput) Reset() {
	s.Model.SetValue("")
}
