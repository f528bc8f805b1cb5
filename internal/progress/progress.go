// Package progress defines the learner's per-course progress record and the
// store contract used to persist it. Records are owned by the player engine;
// the store only loads and saves whole records.
package progress

import (
	"time"
)

// QuizAttemptState tracks a learner's history with one quiz inside a course.
// Passed is sticky: once true it never reverts, regardless of later attempts.
// BestScore only ever increases.
type QuizAttemptState struct {
	QuizID       string `json:"quizId"`
	AttemptsMade int    `json:"attemptsMade"`
	BestScore    int    `json:"bestScore"`
	Passed       bool   `json:"passed"`
}

// LearnerProgress is the per-learner, per-course progress record.
type LearnerProgress struct {
	CourseID         string                      `json:"courseId"`
	CompletedLessons map[string]bool             `json:"completedLessons"`
	QuizStates       map[string]QuizAttemptState `json:"quizStates"`
	ProgressPercent  int                         `json:"progressPercent"`
	IsCompleted      bool                        `json:"isCompleted"`
	UpdatedAt        time.Time                   `json:"updatedAt"`
}

// NewLearnerProgress returns a zeroed record for the course: no lessons
// complete, no quiz attempts, 0 percent.
func NewLearnerProgress(courseID string) *LearnerProgress {
	return &LearnerProgress{
		CourseID:         courseID,
		CompletedLessons: make(map[string]bool),
		QuizStates:       make(map[string]QuizAttemptState),
	}
}

// Clone returns a deep copy, so callers can mutate without aliasing the
// store's view of the record.
func (p *LearnerProgress) Clone() *LearnerProgress {
	c := *p
	c.CompletedLessons = make(map[string]bool, len(p.CompletedLessons))
	for k, v := range p.CompletedLessons {
		c.CompletedLessons[k] = v
	}
	c.QuizStates = make(map[string]QuizAttemptState, len(p.QuizStates))
	for k, v := range p.QuizStates {
		c.QuizStates[k] = v
	}
	return &c
}

// CompletedCount returns the number of lessons marked complete.
func (p *LearnerProgress) CompletedCount() int {
	n := 0
	for _, done := range p.CompletedLessons {
		if done {
			n++
		}
	}
	return n
}

// QuizState returns the attempt state for a quiz, zeroed if none recorded.
func (p *LearnerProgress) QuizState(quizID string) QuizAttemptState {
	if s, ok := p.QuizStates[quizID]; ok {
		return s
	}
	return QuizAttemptState{QuizID: quizID}
}
