// Package player renders the course player: the syllabus sidebar, the
// current lesson's content, and the quiz flow with per-question review.
package player

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/nauta-treinamentos/nauta/internal/catalog"
	"github.com/nauta-treinamentos/nauta/internal/player"
	"github.com/nauta-treinamentos/nauta/internal/progress"
	"github.com/nauta-treinamentos/nauta/internal/screen"
	"github.com/nauta-treinamentos/nauta/internal/ui/components"
	"github.com/nauta-treinamentos/nauta/internal/ui/layout"
)

// mode is the player's current interaction mode.
type mode int

const (
	modeLesson mode = iota
	modeQuizAnswering
	modeQuizResult
)

// Model is the course player screen.
type Model struct {
	engine   *player.Engine
	courseID string

	course catalog.CourseDefinition
	record *progress.LearnerProgress

	current player.LessonRef
	mode    mode

	// Quiz state, valid in the quiz modes.
	attempt     *player.Attempt
	result      *player.QuizResult
	questionIdx int
	options     components.OptionList

	notice string
	err    error
}

// New creates a player for the given course. Loading happens in Init.
func New(engine *player.Engine, courseID string) *Model {
	return &Model{engine: engine, courseID: courseID}
}

func (m *Model) Init() tea.Cmd {
	course, err := m.engine.Course(m.courseID)
	if err != nil {
		m.err = err
		return nil
	}
	record, err := m.engine.EnsureProgress(context.Background(), m.courseID)
	if err != nil {
		m.err = err
		return nil
	}
	m.course = course
	m.record = record
	m.current = m.resumePoint()
	return nil
}

func (m *Model) Title() string {
	if m.course.Name == "" {
		return "Curso"
	}
	return m.course.Name
}

// resumePoint returns the first incomplete lesson, or the first lesson when
// everything is already done.
func (m *Model) resumePoint() player.LessonRef {
	var first player.LessonRef
	firstSet := false
	for _, s := range m.course.Sections {
		for _, l := range s.Lessons {
			ref := player.LessonRef{SectionID: s.ID, Lesson: l}
			if !firstSet {
				first, firstSet = ref, true
			}
			if !m.record.CompletedLessons[l.ID] {
				return ref
			}
		}
	}
	return first
}

// KeyHints implements screen.KeyHintProvider.
func (m *Model) KeyHints() []layout.KeyHint {
	switch m.mode {
	case modeQuizAnswering:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Option"},
			{Key: "Enter", Description: "Choose"},
			{Key: "←→", Description: "Question"},
			{Key: "s", Description: "Submit"},
			{Key: "Esc", Description: "Leave quiz"},
		}
	case modeQuizResult:
		return []layout.KeyHint{
			{Key: "←→", Description: "Review"},
			{Key: "r", Description: "Retry"},
			{Key: "Enter", Description: "Continue"},
		}
	default:
		return []layout.KeyHint{
			{Key: "←→", Description: "Lesson"},
			{Key: "↑↓", Description: "Browse"},
			{Key: "m", Description: "Toggle done"},
			{Key: "Enter", Description: "Start quiz"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// HandleEsc implements screen.EscHandler: esc leaves a quiz before leaving
// the player.
func (m *Model) HandleEsc() (bool, tea.Cmd) {
	if m.mode == modeLesson {
		return false, nil
	}
	m.exitQuiz()
	return true, nil
}

func (m *Model) exitQuiz() {
	m.mode = modeLesson
	m.attempt = nil
	m.result = nil
	m.notice = ""
}

func (m *Model) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.err != nil {
		return m, nil
	}
	m.notice = ""

	switch m.mode {
	case modeQuizAnswering:
		return m.updateAnswering(kmsg)
	case modeQuizResult:
		return m.updateResult(kmsg)
	default:
		return m.updateLesson(kmsg)
	}
}

func (m *Model) updateLesson(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()
	switch kmsg.String() {
	case "right", "l", "n":
		result, err := m.engine.Advance(ctx, m.courseID, m.current.SectionID, m.current.Lesson.ID)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.record = result.Record
		if result.OK {
			m.current = result.Ref
		} else {
			m.notice = "Fim do curso."
		}
	case "left", "h", "p":
		result, err := m.engine.Retreat(ctx, m.courseID, m.current.SectionID, m.current.Lesson.ID)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.record = result.Record
		if result.OK {
			m.current = result.Ref
		} else {
			m.notice = "Início do curso."
		}
	case "down", "j":
		// Browse without completing, unlike advancing.
		if next, ok := player.NextLesson(m.course, m.current.SectionID, m.current.Lesson.ID); ok {
			ref, err := m.engine.SelectLesson(m.courseID, next.SectionID, next.Lesson.ID)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.current = ref
		}
	case "up", "k":
		if prev, ok := player.PreviousLesson(m.course, m.current.SectionID, m.current.Lesson.ID); ok {
			ref, err := m.engine.SelectLesson(m.courseID, prev.SectionID, prev.Lesson.ID)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.current = ref
		}
	case "m":
		if m.current.Lesson.Kind == catalog.KindQuiz {
			m.notice = "Aulas de quiz são concluídas ao passar na avaliação."
			return m, nil
		}
		record, err := m.engine.ToggleLesson(ctx, m.courseID, m.current.Lesson.ID)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.record = record
	case "enter":
		if m.current.Lesson.Kind == catalog.KindQuiz {
			m.startQuiz(ctx)
		}
	}
	return m, nil
}

func (m *Model) startQuiz(ctx context.Context) {
	attempt, err := m.engine.StartQuiz(ctx, m.courseID, m.current.Lesson.QuizID)
	if err != nil {
		m.err = err
		return
	}
	if attempt.AttemptsLeft() == 0 {
		state := m.record.QuizState(m.current.Lesson.QuizID)
		if state.Passed {
			m.notice = "Avaliação já aprovada."
		} else {
			m.notice = "Tentativas esgotadas para esta avaliação."
		}
		return
	}
	m.attempt = attempt
	m.result = nil
	m.questionIdx = 0
	m.mode = modeQuizAnswering
	m.rebuildOptions()
}

// rebuildOptions syncs the option list with the current question and any
// selection already made in this attempt.
func (m *Model) rebuildOptions() {
	questions := m.attempt.Quiz().Questions
	if m.questionIdx >= len(questions) {
		m.options = components.OptionList{}
		return
	}
	q := questions[m.questionIdx]
	choices := make([]components.Choice, 0, len(q.Options))
	for _, opt := range q.Options {
		choices = append(choices, components.Choice{ID: opt.ID, Text: opt.Text})
	}
	list := components.NewOptionList(q.Text, choices)
	if selected, ok := m.attempt.Selection(q.ID); ok {
		list.ChosenID = selected
		for i, c := range choices {
			if c.ID == selected {
				list.Cursor = i
			}
		}
	}
	if m.result != nil {
		list.Review = true
		list.ShowExplanation = true
		qr := m.result.Questions[m.questionIdx]
		list.ChosenID = qr.SelectedOptionID
		list.CorrectID = qr.CorrectOptionID
		list.Explanation = qr.Explanation
	}
	m.options = list
}

func (m *Model) updateAnswering(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	questions := m.attempt.Quiz().Questions
	switch kmsg.String() {
	case "right", "tab":
		if m.questionIdx < len(questions)-1 {
			m.questionIdx++
			m.rebuildOptions()
		}
	case "left", "shift+tab":
		if m.questionIdx > 0 {
			m.questionIdx--
			m.rebuildOptions()
		}
	case "s":
		m.submit()
	default:
		var cmd tea.Cmd
		m.options, cmd = m.options.Update(kmsg)
		if m.options.ChosenID != "" && m.questionIdx < len(questions) {
			q := questions[m.questionIdx]
			if err := m.attempt.Select(q.ID, m.options.ChosenID); err != nil {
				m.notice = err.Error()
			}
		}
		return m, cmd
	}
	return m, nil
}

func (m *Model) submit() {
	if !m.attempt.AllAnswered() {
		m.notice = "Responda todas as questões antes de enviar."
		return
	}
	result, err := m.engine.SubmitQuiz(context.Background(), m.attempt)
	if err != nil {
		if errors.Is(err, player.ErrAttemptsExhausted) {
			m.notice = "Tentativas esgotadas para esta avaliação."
			m.exitQuiz()
			return
		}
		m.err = err
		return
	}
	m.result = result
	record, err := m.engine.Progress(context.Background(), m.courseID)
	if err == nil && record != nil {
		m.record = record
	}
	m.questionIdx = 0
	m.mode = modeQuizResult
	m.rebuildOptions()
}

func (m *Model) updateResult(kmsg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch kmsg.String() {
	case "right", "tab":
		if m.questionIdx < len(m.result.Questions)-1 {
			m.questionIdx++
			m.rebuildOptions()
		}
	case "left", "shift+tab":
		if m.questionIdx > 0 {
			m.questionIdx--
			m.rebuildOptions()
		}
	case "r":
		if err := m.attempt.Retry(); err != nil {
			if errors.Is(err, player.ErrAttemptsExhausted) {
				m.notice = "Tentativas esgotadas para esta avaliação."
			} else {
				m.notice = err.Error()
			}
			return m, nil
		}
		m.result = nil
		m.questionIdx = 0
		m.mode = modeQuizAnswering
		m.rebuildOptions()
	case "enter":
		m.exitQuiz()
	}
	return m, nil
}
