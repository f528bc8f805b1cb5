package player

import (
	"fmt"
	"math"

	"github.com/nauta-treinamentos/nauta/internal/catalog"
)

// AttemptPhase is the lifecycle phase of a quiz attempt.
type AttemptPhase int

const (
	// PhaseAnswering means selections can still change; no result exists.
	PhaseAnswering AttemptPhase = iota
	// PhaseSubmitted means the attempt has been scored; selections are frozen.
	PhaseSubmitted
)

// Attempt is one live pass through a quiz. It moves Answering -> Submitted
// via Engine.SubmitQuiz and back via Retry while attempts remain.
type Attempt struct {
	quiz       catalog.QuizDefinition
	courseID   string
	phase      AttemptPhase
	selections map[string]string // question id -> selected option id
	used       int               // attempts recorded so far, including this one once submitted
	result     *QuizResult
}

// QuestionResult is the per-question feedback in a scored attempt.
type QuestionResult struct {
	QuestionID       string
	SelectedOptionID string
	CorrectOptionID  string
	Correct          bool
	Explanation      string
}

// QuizResult is the outcome of one scored submission plus the cumulative
// quiz state after it.
type QuizResult struct {
	Score        int // round(100 * correct / total)
	Passed       bool
	PassedEver   bool // sticky across attempts
	BestScore    int
	AttemptsMade int
	AttemptsLeft int
	Questions    []QuestionResult
}

// Phase returns the attempt's current lifecycle phase.
func (a *Attempt) Phase() AttemptPhase { return a.phase }

// Quiz returns the quiz definition this attempt runs against.
func (a *Attempt) Quiz() catalog.QuizDefinition { return a.quiz }

// CourseID returns the course this attempt belongs to.
func (a *Attempt) CourseID() string { return a.courseID }

// Result returns the scored result, or nil while answering.
func (a *Attempt) Result() *QuizResult { return a.result }

// AttemptsUsed returns how many scored submissions the learner has recorded
// for this quiz, including this attempt once submitted.
func (a *Attempt) AttemptsUsed() int { return a.used }

// AttemptsLeft returns how many scored submissions remain.
func (a *Attempt) AttemptsLeft() int {
	left := a.quiz.MaxAttempts - a.used
	if left < 0 {
		return 0
	}
	return left
}

// Selection returns the currently selected option for a question, if any.
func (a *Attempt) Selection(questionID string) (string, bool) {
	optionID, ok := a.selections[questionID]
	return optionID, ok
}

// Answered returns how many questions have a selection.
func (a *Attempt) Answered() int { return len(a.selections) }

// AllAnswered reports whether every question has a selection.
func (a *Attempt) AllAnswered() bool { return len(a.selections) == len(a.quiz.Questions) }

// Select records the learner's choice for a question. Choosing a different
// option replaces the previous choice. Selections are rejected after
// submission, for unknown questions, and for options the question does not
// offer.
func (a *Attempt) Select(questionID, optionID string) error {
	if a.phase != PhaseAnswering {
		return fmt.Errorf("select after submission: %w", ErrInvalidReference)
	}
	var question catalog.Question
	found := false
	for _, q := range a.quiz.Questions {
		if q.ID == questionID {
			question, found = q, true
			break
		}
	}
	if !found {
		return fmt.Errorf("question %q: %w", questionID, ErrInvalidReference)
	}
	if !question.HasOption(optionID) {
		return fmt.Errorf("question %q option %q: %w", questionID, optionID, ErrInvalidReference)
	}
	a.selections[questionID] = optionID
	return nil
}

// Retry starts a fresh answering pass: selections cleared, result dropped.
// Fails with ErrAttemptsExhausted when no attempts remain.
func (a *Attempt) Retry() error {
	if a.AttemptsLeft() == 0 {
		return ErrAttemptsExhausted
	}
	a.phase = PhaseAnswering
	a.selections = make(map[string]string)
	a.result = nil
	return nil
}

// score grades the current selections. Unanswered questions count as wrong.
// A quiz with no questions scores 0 and never passes.
func (a *Attempt) score() (score int, passed bool, questions []QuestionResult) {
	total := len(a.quiz.Questions)
	correct := 0
	questions = make([]QuestionResult, 0, total)
	for _, q := range a.quiz.Questions {
		selected := a.selections[q.ID]
		ok := selected != "" && selected == q.CorrectOptionID
		if ok {
			correct++
		}
		questions = append(questions, QuestionResult{
			QuestionID:       q.ID,
			SelectedOptionID: selected,
			CorrectOptionID:  q.CorrectOptionID,
			Correct:          ok,
			Explanation:      q.Explanation,
		})
	}
	if total == 0 {
		return 0, false, questions
	}
	score = int(math.Round(100 * float64(correct) / float64(total)))
	return score, score >= a.quiz.PassingScore, questions
}
