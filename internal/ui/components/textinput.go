package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nauta-treinamentos/nauta/internal/ui/theme"
)

// SearchInput wraps bubbles/textinput with Nauta styling, used to filter
// course listings.
type SearchInput struct {
	Model   textinput.Model
	focused bool
}

// NewSearchInput creates a styled search input.
func NewSearchInput(placeholder string) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 64
	return SearchInput{Model: ti}
}

// Focus puts the input into typing mode.
func (s *SearchInput) Focus() tea.Cmd {
	s.focused = true
	return s.Model.Focus()
}

// Blur leaves typing mode, keeping the current query.
func (s *SearchInput) Blur() {
	s.focused = false
	s.Model.Blur()
}

// Focused reports whether keystrokes go to the input.
func (s SearchInput) Focused() bool {
	return s.focused
}

// Update handles messages while focused.
func (s SearchInput) Update(msg tea.Msg) (SearchInput, tea.Cmd) {
	if !s.focused {
		return s, nil
	}
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the input with a search prompt.
func (s SearchInput) View() string {
	prompt := lipgloss.NewStyle().Foreground(theme.TextDim).Render("⌕ ")
	return prompt + s.Model.View()
}

// Query returns the current search text, trimmed and lowercased.
func (s SearchInput) Query() string {
	return strings.ToLower(strings.TrimSpace(s.Model.Value()))
}

// Matches reports whether the given text contains the current query.
// An empty query matches everything.
func (s SearchInput) Matches(text string) bool {
	q := s.Query()
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(text), q)
}
