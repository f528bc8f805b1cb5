package player

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/nauta-treinamentos/nauta/internal/catalog"
	"github.com/nauta-treinamentos/nauta/internal/ui/components"
	"github.com/nauta-treinamentos/nauta/internal/ui/theme"
)

const sidebarWidth = 34

func (m *Model) View(width, height int) string {
	if m.err != nil {
		return theme.Incorrect.Render("Error: " + m.err.Error())
	}
	if m.record == nil {
		return theme.Hint.Render("  Carregando curso...")
	}

	sidebar := m.viewSidebar(height)

	contentWidth := width - sidebarWidth - 4
	if contentWidth < 20 {
		contentWidth = 20
	}
	var content string
	switch m.mode {
	case modeQuizAnswering:
		content = m.viewQuiz(contentWidth, false)
	case modeQuizResult:
		content = m.viewQuiz(contentWidth, true)
	default:
		content = m.viewLesson(contentWidth)
	}
	contentBox := lipgloss.NewStyle().
		Width(contentWidth).
		Padding(1, 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, contentBox)
}

// viewSidebar renders the syllabus with completion markers.
func (m *Model) viewSidebar(height int) string {
	var b strings.Builder

	bar := components.NewProgressBar("", float64(m.record.ProgressPercent)/100, true, sidebarWidth-6)
	b.WriteString(" " + bar.View() + "\n")
	if m.record.IsCompleted {
		b.WriteString(" " + theme.Correct.Render("✓ Curso concluído") + "\n")
	}
	b.WriteString("\n")

	for _, s := range m.course.Sections {
		b.WriteString(" " + lipgloss.NewStyle().
			Foreground(theme.Secondary).Bold(true).
			Render(truncate(s.Title, sidebarWidth-3)) + "\n")
		for _, l := range s.Lessons {
			marker := "○"
			markerStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
			if m.record.CompletedLessons[l.ID] {
				marker = "✓"
				markerStyle = lipgloss.NewStyle().Foreground(theme.Success)
			}

			titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
			prefix := "  "
			if l.ID == m.current.Lesson.ID {
				prefix = " ▸"
				titleStyle = theme.Selected
			}

			line := fmt.Sprintf("%s %s %s %s",
				prefix,
				markerStyle.Render(marker),
				l.Kind.Icon(),
				titleStyle.Render(truncate(l.Title, sidebarWidth-10)))
			b.WriteString(line + "\n")
		}
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(theme.Border).
		Render(b.String())
}

// viewLesson renders the current lesson's content pane.
func (m *Model) viewLesson(width int) string {
	var b strings.Builder

	l := m.current.Lesson
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(l.Title) + "\n")
	if l.Duration != "" {
		b.WriteString(theme.Hint.Render(l.Duration) + "\n")
	}
	b.WriteString("\n")

	switch l.Kind {
	case catalog.KindVideo:
		b.WriteString(theme.Body.Render("▶ Vídeo-aula.") + "\n\n")
		b.WriteString(theme.Hint.Render("Avance para a próxima aula para marcá-la como concluída.") + "\n")
	case catalog.KindText:
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.Text).
			Width(width-4).
			Render(l.Content) + "\n")
	case catalog.KindQuiz:
		quiz, err := m.engine.Quiz(l.QuizID)
		if err != nil {
			return theme.Incorrect.Render(err.Error())
		}
		state := m.record.QuizState(l.QuizID)
		b.WriteString(theme.Body.Render(quiz.Title) + "\n\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Questões: %d", len(quiz.Questions))) + "\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Nota mínima: %d%%", quiz.PassingScore)) + "\n")
		b.WriteString(theme.Body.Render(fmt.Sprintf("Tentativas: %d de %d", state.AttemptsMade, quiz.MaxAttempts)) + "\n")
		if state.AttemptsMade > 0 {
			b.WriteString(theme.Body.Render(fmt.Sprintf("Melhor nota: %d%%", state.BestScore)) + "\n")
		}
		b.WriteString("\n")
		switch {
		case state.Passed:
			b.WriteString(theme.Correct.Render("✓ Aprovado") + "\n")
		case state.AttemptsMade >= quiz.MaxAttempts:
			b.WriteString(theme.Incorrect.Render("Tentativas esgotadas.") + "\n")
		default:
			b.WriteString(components.NewButton("Iniciar avaliação", true, nil).View() + "\n")
		}
	}

	if m.notice != "" {
		b.WriteString("\n" + theme.Hint.Render(m.notice) + "\n")
	}
	return b.String()
}

// viewQuiz renders the answering and review panes.
func (m *Model) viewQuiz(width int, review bool) string {
	var b strings.Builder

	quiz := m.attempt.Quiz()
	total := len(quiz.Questions)

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(quiz.Title) + "\n")
	if review {
		score := theme.Incorrect
		verdict := "Reprovado"
		if m.result.Passed {
			score = theme.Correct
			verdict = "Aprovado"
		}
		b.WriteString(score.Render(fmt.Sprintf("%s — nota %d%%", verdict, m.result.Score)))
		b.WriteString(theme.Hint.Render(fmt.Sprintf("   melhor nota %d%% · tentativa %d de %d",
			m.result.BestScore, m.result.AttemptsMade, quiz.MaxAttempts)) + "\n")
		if !m.result.Passed && m.result.AttemptsLeft > 0 {
			b.WriteString(theme.Hint.Render(fmt.Sprintf("Restam %d tentativa(s) — pressione r para refazer.", m.result.AttemptsLeft)) + "\n")
		}
		if !m.result.Passed && m.result.AttemptsLeft == 0 {
			b.WriteString(theme.Incorrect.Render("Tentativas esgotadas.") + "\n")
		}
	} else {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Tentativa %d de %d · %d de %d respondidas",
			m.attempt.AttemptsUsed()+1, quiz.MaxAttempts, m.attempt.Answered(), total)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Questão %d de %d", m.questionIdx+1, total)) + "\n\n")
	b.WriteString(m.options.View())

	if !review {
		b.WriteString("\n")
		b.WriteString(components.NewButton("Enviar respostas", m.attempt.AllAnswered(), nil).View() + "\n")
	}

	if m.notice != "" {
		b.WriteString("\n" + theme.Hint.Render(m.notice) + "\n")
	}
	return b.String()
}

func truncate(s string, max int) string {
	if max <= 1 || len([]rune(s)) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
