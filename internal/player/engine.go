// Package player implements the course-progression and quiz-evaluation
// engine: lesson navigation with completion-on-advance, progress and
// completion derivation, and the quiz attempt state machine. All state
// changes go through a read-modify-write cycle against the progress store.
package player

import (
	"context"
	"fmt"

	"github.com/nauta-treinamentos/nauta/internal/catalog"
	"github.com/nauta-treinamentos/nauta/internal/progress"
)

// CompletionFunc is invoked exactly once per false-to-true completion
// transition of a course, after the updated record has been saved.
type CompletionFunc func(ctx context.Context, course catalog.CourseDefinition, record *progress.LearnerProgress) error

// Engine consolidates navigation, completion evaluation and quiz grading
// over a catalog and a progress store.
type Engine struct {
	catalog     *catalog.Catalog
	store       progress.Store
	onCompleted CompletionFunc
}

// New returns an engine over the given catalog and store.
func New(cat *catalog.Catalog, store progress.Store) *Engine {
	return &Engine{catalog: cat, store: store}
}

// OnCourseCompleted registers the course-completed callback.
func (e *Engine) OnCourseCompleted(fn CompletionFunc) {
	e.onCompleted = fn
}

// Catalog exposes the engine's catalog for read-only presentation.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Course resolves a course id.
func (e *Engine) Course(id string) (catalog.CourseDefinition, error) {
	course, ok := e.catalog.Course(id)
	if !ok {
		return catalog.CourseDefinition{}, fmt.Errorf("course %q: %w", id, ErrNotFound)
	}
	return course, nil
}

// Quiz resolves a quiz id.
func (e *Engine) Quiz(id string) (catalog.QuizDefinition, error) {
	quiz, ok := e.catalog.Quiz(id)
	if !ok {
		return catalog.QuizDefinition{}, fmt.Errorf("quiz %q: %w", id, ErrNotFound)
	}
	return quiz, nil
}

// Progress returns the stored record for a course, or nil if the learner
// has not started it.
func (e *Engine) Progress(ctx context.Context, courseID string) (*progress.LearnerProgress, error) {
	if _, err := e.Course(courseID); err != nil {
		return nil, err
	}
	return e.store.Get(ctx, courseID)
}

// EnsureProgress returns the record for a course, creating and persisting a
// zeroed one if none exists yet.
func (e *Engine) EnsureProgress(ctx context.Context, courseID string) (*progress.LearnerProgress, error) {
	if _, err := e.Course(courseID); err != nil {
		return nil, err
	}
	record, err := e.store.Get(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}
	record = progress.NewLearnerProgress(courseID)
	if err := e.store.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("init progress: %w", err)
	}
	return record, nil
}

// ResetProgress deletes the stored record for a course.
func (e *Engine) ResetProgress(ctx context.Context, courseID string) error {
	if _, err := e.Course(courseID); err != nil {
		return err
	}
	return e.store.Delete(ctx, courseID)
}

// SelectLesson jumps directly to a lesson without touching progress. Foreign
// section or lesson ids are rejected.
func (e *Engine) SelectLesson(courseID, sectionID, lessonID string) (LessonRef, error) {
	course, err := e.Course(courseID)
	if err != nil {
		return LessonRef{}, err
	}
	lesson, ok := course.FindLesson(sectionID, lessonID)
	if !ok {
		return LessonRef{}, fmt.Errorf("lesson %s/%s in course %q: %w", sectionID, lessonID, courseID, ErrInvalidReference)
	}
	return LessonRef{SectionID: sectionID, Lesson: lesson}, nil
}

// NavResult is the outcome of a navigation step. OK is false at a course
// boundary; Record reflects any completion applied by the step.
type NavResult struct {
	Ref    LessonRef
	OK     bool
	Record *progress.LearnerProgress
}

// Advance moves from the given lesson to the next one. A video or text
// current lesson is marked complete as a side effect, including at the last
// lesson of the course where navigation itself stays put. Quiz lessons are
// never completed by navigation; only a passing submission completes them.
func (e *Engine) Advance(ctx context.Context, courseID, sectionID, lessonID string) (NavResult, error) {
	course, err := e.Course(courseID)
	if err != nil {
		return NavResult{}, err
	}
	current, ok := course.FindLesson(sectionID, lessonID)
	if !ok {
		return NavResult{}, fmt.Errorf("lesson %s/%s in course %q: %w", sectionID, lessonID, courseID, ErrInvalidReference)
	}

	record, err := e.EnsureProgress(ctx, courseID)
	if err != nil {
		return NavResult{}, err
	}
	if current.Kind != catalog.KindQuiz {
		if err := e.completeLesson(ctx, course, record, current.ID); err != nil {
			return NavResult{}, err
		}
	}

	ref, ok := NextLesson(course, sectionID, lessonID)
	return NavResult{Ref: ref, OK: ok, Record: record}, nil
}

// Retreat moves to the previous lesson. It never alters progress.
func (e *Engine) Retreat(ctx context.Context, courseID, sectionID, lessonID string) (NavResult, error) {
	course, err := e.Course(courseID)
	if err != nil {
		return NavResult{}, err
	}
	if _, ok := course.FindLesson(sectionID, lessonID); !ok {
		return NavResult{}, fmt.Errorf("lesson %s/%s in course %q: %w", sectionID, lessonID, courseID, ErrInvalidReference)
	}
	record, err := e.EnsureProgress(ctx, courseID)
	if err != nil {
		return NavResult{}, err
	}
	ref, ok := PreviousLesson(course, sectionID, lessonID)
	return NavResult{Ref: ref, OK: ok, Record: record}, nil
}

// ToggleLesson flips a lesson's completed flag by hand and re-derives
// percent and completion. Unmarking can flip a completed course back to
// incomplete; certificates already issued stay issued.
func (e *Engine) ToggleLesson(ctx context.Context, courseID, lessonID string) (*progress.LearnerProgress, error) {
	course, err := e.Course(courseID)
	if err != nil {
		return nil, err
	}
	if !course.ContainsLesson(lessonID) {
		return nil, fmt.Errorf("lesson %q in course %q: %w", lessonID, courseID, ErrInvalidReference)
	}
	record, err := e.EnsureProgress(ctx, courseID)
	if err != nil {
		return nil, err
	}

	if record.CompletedLessons[lessonID] {
		delete(record.CompletedLessons, lessonID)
	} else {
		record.CompletedLessons[lessonID] = true
	}
	justCompleted := recompute(course, record)
	if err := e.store.Save(ctx, record); err != nil {
		return nil, err
	}
	if err := e.fireCompleted(ctx, justCompleted, course, record); err != nil {
		return nil, err
	}
	return record, nil
}

// StartQuiz opens a new answering pass for a quiz within a course. The quiz
// must be reachable from the course, either as a quiz lesson or as its
// final quiz. Starting is allowed even with no attempts left so the learner
// can review questions; SubmitQuiz enforces the cap.
func (e *Engine) StartQuiz(ctx context.Context, courseID, quizID string) (*Attempt, error) {
	course, err := e.Course(courseID)
	if err != nil {
		return nil, err
	}
	quiz, err := e.Quiz(quizID)
	if err != nil {
		return nil, err
	}
	if !courseReferencesQuiz(course, quizID) {
		return nil, fmt.Errorf("quiz %q in course %q: %w", quizID, courseID, ErrInvalidReference)
	}
	record, err := e.EnsureProgress(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return &Attempt{
		quiz:       quiz,
		courseID:   courseID,
		phase:      PhaseAnswering,
		selections: make(map[string]string),
		used:       record.QuizState(quizID).AttemptsMade,
	}, nil
}

// SubmitQuiz scores the attempt and records the outcome: attempt count
// incremented, best score raised monotonically, pass made sticky, and the
// quiz's lesson marked complete on a pass. Submitting past the attempt cap
// fails with ErrAttemptsExhausted and changes nothing.
func (e *Engine) SubmitQuiz(ctx context.Context, attempt *Attempt) (*QuizResult, error) {
	if attempt.phase != PhaseAnswering {
		return nil, fmt.Errorf("attempt already submitted: %w", ErrInvalidReference)
	}
	course, err := e.Course(attempt.courseID)
	if err != nil {
		return nil, err
	}

	record, err := e.EnsureProgress(ctx, attempt.courseID)
	if err != nil {
		return nil, err
	}
	state := record.QuizState(attempt.quiz.ID)
	if state.AttemptsMade >= attempt.quiz.MaxAttempts {
		return nil, fmt.Errorf("quiz %q: %w", attempt.quiz.ID, ErrAttemptsExhausted)
	}

	score, passed, questions := attempt.score()
	state.AttemptsMade++
	if score > state.BestScore {
		state.BestScore = score
	}
	state.Passed = state.Passed || passed
	record.QuizStates[attempt.quiz.ID] = state

	if passed {
		for _, ref := range flatten(course) {
			if ref.Lesson.Kind == catalog.KindQuiz && ref.Lesson.QuizID == attempt.quiz.ID {
				record.CompletedLessons[ref.Lesson.ID] = true
			}
		}
	}
	justCompleted := recompute(course, record)
	if err := e.store.Save(ctx, record); err != nil {
		return nil, err
	}
	if err := e.fireCompleted(ctx, justCompleted, course, record); err != nil {
		return nil, err
	}

	attempt.phase = PhaseSubmitted
	attempt.used = state.AttemptsMade
	attempt.result = &QuizResult{
		Score:        score,
		Passed:       passed,
		PassedEver:   state.Passed,
		BestScore:    state.BestScore,
		AttemptsMade: state.AttemptsMade,
		AttemptsLeft: attempt.AttemptsLeft(),
		Questions:    questions,
	}
	return attempt.result, nil
}

// CourseOverview pairs a course with the learner's standing in it.
type CourseOverview struct {
	Course  catalog.CourseDefinition
	Started bool
	Percent int
	Done    bool
}

// Overviews joins the playable catalog with stored progress, for listings.
func (e *Engine) Overviews(ctx context.Context) ([]CourseOverview, error) {
	var result []CourseOverview
	for _, course := range e.catalog.PlayableCourses() {
		record, err := e.store.Get(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		overview := CourseOverview{Course: course}
		if record != nil {
			overview.Started = true
			overview.Percent = record.ProgressPercent
			overview.Done = record.IsCompleted
		}
		result = append(result, overview)
	}
	return result, nil
}

// completeLesson marks a lesson complete idempotently, saving and firing
// the completion event only when something changed.
func (e *Engine) completeLesson(ctx context.Context, course catalog.CourseDefinition, record *progress.LearnerProgress, lessonID string) error {
	if record.CompletedLessons[lessonID] {
		return nil
	}
	record.CompletedLessons[lessonID] = true
	justCompleted := recompute(course, record)
	if err := e.store.Save(ctx, record); err != nil {
		return err
	}
	return e.fireCompleted(ctx, justCompleted, course, record)
}

func (e *Engine) fireCompleted(ctx context.Context, justCompleted bool, course catalog.CourseDefinition, record *progress.LearnerProgress) error {
	if !justCompleted || e.onCompleted == nil {
		return nil
	}
	if err := e.onCompleted(ctx, course, record); err != nil {
		return fmt.Errorf("course completed hook: %w", err)
	}
	return nil
}

func courseReferencesQuiz(course catalog.CourseDefinition, quizID string) bool {
	if course.FinalQuizID == quizID {
		return true
	}
	for _, s := range course.Sections {
		for _, l := range s.Lessons {
			if l.Kind == catalog.KindQuiz && l.QuizID == quizID {
				return true
			}
		}
	}
	return false
}
