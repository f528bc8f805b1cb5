// Package home is the landing screen: the course catalog with the learner's
// progress, a search box, and entry points to the player and certificates.
package home

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nauta-treinamentos/nauta/internal/certificates"
	"github.com/nauta-treinamentos/nauta/internal/player"
	"github.com/nauta-treinamentos/nauta/internal/router"
	"github.com/nauta-treinamentos/nauta/internal/screen"
	certscreen "github.com/nauta-treinamentos/nauta/internal/screens/certificates"
	playerscreen "github.com/nauta-treinamentos/nauta/internal/screens/player"
	"github.com/nauta-treinamentos/nauta/internal/ui/components"
	"github.com/nauta-treinamentos/nauta/internal/ui/layout"
	"github.com/nauta-treinamentos/nauta/internal/ui/theme"
)

// Model is the home screen.
type Model struct {
	engine *player.Engine
	issuer *certificates.Issuer

	overviews []player.CourseOverview
	cursor    int
	search    components.SearchInput
	err       error
}

// New creates the home screen.
func New(engine *player.Engine, issuer *certificates.Issuer) *Model {
	return &Model{
		engine: engine,
		issuer: issuer,
		search: components.NewSearchInput("buscar curso..."),
	}
}

func (m *Model) Init() tea.Cmd {
	m.reload()
	return nil
}

func (m *Model) Title() string { return "Meus Cursos" }

// KeyHints implements screen.KeyHintProvider.
func (m *Model) KeyHints() []layout.KeyHint {
	if m.search.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "/", Description: "Search"},
		{Key: "c", Description: "Certificates"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// reload refreshes the catalog-plus-progress join.
func (m *Model) reload() {
	overviews, err := m.engine.Overviews(context.Background())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.overviews = overviews
	if m.cursor >= len(m.visible()) {
		m.cursor = 0
	}
}

// visible returns the overviews matching the search query.
func (m *Model) visible() []player.CourseOverview {
	var result []player.CourseOverview
	for _, o := range m.overviews {
		if m.search.Matches(o.Course.Name) || m.search.Matches(o.Course.Category) {
			result = append(result, o)
		}
	}
	return result
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m.search.Focused() {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "enter":
				m.search.Blur()
				m.cursor = 0
				return m, nil
			case "esc":
				m.search.Blur()
				m.search.Model.SetValue("")
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	visible := m.visible()
	switch kmsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(visible)-1 {
			m.cursor++
		}
	case "/":
		return m, m.search.Focus()
	case "c":
		return m, func() tea.Msg {
			return router.PushScreenMsg{Screen: certscreen.New(m.issuer)}
		}
	case "enter":
		if m.cursor < len(visible) {
			courseID := visible[m.cursor].Course.ID
			return m, func() tea.Msg {
				return router.PushScreenMsg{Screen: playerscreen.New(m.engine, courseID)}
			}
		}
	case "r":
		m.reload()
	}

	return m, nil
}

func (m *Model) View(width, height int) string {
	if m.err != nil {
		return theme.Incorrect.Render("Error: " + m.err.Error())
	}

	var s string
	s += "\n  " + m.search.View() + "\n\n"

	visible := m.visible()
	if len(visible) == 0 {
		s += theme.Hint.Render("  Nenhum curso encontrado.")
		return s
	}

	barWidth := width / 3
	if barWidth > 40 {
		barWidth = 40
	}

	for i, o := range visible {
		cursor := "  "
		nameStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == m.cursor {
			cursor = "▸ "
			nameStyle = theme.Selected
		}

		line := "  " + cursor + nameStyle.Render(o.Course.Name)
		meta := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("      %s · %s", o.Course.Category, o.Course.Duration))

		var status string
		switch {
		case o.Done:
			status = "      " + theme.Correct.Render("✓ Concluído")
		case o.Started:
			status = "      " +
				components.NewProgressBar("", float64(o.Percent)/100, true, barWidth).View()
		default:
			status = "      " + theme.Hint.Render("Não iniciado")
		}

		s += line + "\n" + meta + "\n" + status + "\n\n"
	}

	return s
}
