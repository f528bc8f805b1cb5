// Package certificates lists the learner's issued certificates.
package certificates

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nauta-treinamentos/nauta/internal/certificates"
	"github.com/nauta-treinamentos/nauta/internal/screen"
	"github.com/nauta-treinamentos/nauta/internal/store"
	"github.com/nauta-treinamentos/nauta/internal/ui/layout"
	"github.com/nauta-treinamentos/nauta/internal/ui/theme"
)

// Model is the certificates screen.
type Model struct {
	issuer *certificates.Issuer
	certs  []store.Certificate
	err    error
}

// New creates the certificates screen.
func New(issuer *certificates.Issuer) *Model {
	return &Model{issuer: issuer}
}

func (m *Model) Init() tea.Cmd {
	m.certs, m.err = m.issuer.List(context.Background())
	return nil
}

func (m *Model) Title() string { return "Meus Certificados" }

// KeyHints implements screen.KeyHintProvider.
func (m *Model) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return m, nil
}

func (m *Model) View(width, height int) string {
	if m.err != nil {
		return theme.Incorrect.Render("Error: " + m.err.Error())
	}
	if len(m.certs) == 0 {
		return "\n" + theme.Hint.Render("  Nenhum certificado ainda. Conclua um curso para receber o seu!")
	}

	var s string
	s += "\n"
	for _, cert := range m.certs {
		card := theme.Card.Render(
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("🏅 "+cert.CourseName) + "\n" +
				theme.Body.Render(fmt.Sprintf("Emitido em %s", cert.IssuedAt.Format("02/01/2006"))) + "\n" +
				theme.Hint.Render("Certificado "+cert.PublicID),
		)
		s += card + "\n"
	}
	return s
}
