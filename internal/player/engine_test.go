package player

import (
	"context"
	"errors"
	"testing"

	"github.com/nauta-treinamentos/nauta/internal/catalog"
	"github.com/nauta-treinamentos/nauta/internal/progress"
)

// testCatalog builds a small two-section course with a mid-course quiz and a
// gating final quiz, plus degenerate shapes for the boundary cases.
func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	quizzes := []catalog.QuizDefinition{
		{
			ID: "q_mid", Title: "Mid quiz",
			Questions: []catalog.Question{
				{
					ID:              "q1",
					Options:         []catalog.Option{{ID: "optA"}, {ID: "optB"}},
					CorrectOptionID: "optA",
					Explanation:     "A is right",
				},
				{
					ID:              "q2",
					Options:         []catalog.Option{{ID: "optB"}, {ID: "optC"}},
					CorrectOptionID: "optB",
				},
			},
			PassingScore: 70, MaxAttempts: 3,
		},
		{
			ID: "q_final", Title: "Final quiz",
			Questions: []catalog.Question{
				{
					ID:              "f1",
					Options:         []catalog.Option{{ID: "optA"}, {ID: "optB"}},
					CorrectOptionID: "optA",
				},
			},
			PassingScore: 70, MaxAttempts: 3,
		},
		{
			ID: "q_empty", Title: "Empty quiz",
			PassingScore: 0, MaxAttempts: 3,
		},
	}
	courses := []catalog.CourseDefinition{
		{
			ID: "c1", Slug: "course-one", Name: "Course One",
			Sections: []catalog.Section{
				{ID: "s1", Lessons: []catalog.Lesson{
					{ID: "l1", Kind: catalog.KindVideo},
					{ID: "l2", Kind: catalog.KindText},
					{ID: "l3", Kind: catalog.KindQuiz, QuizID: "q_mid"},
				}},
				{ID: "s2", Lessons: []catalog.Lesson{
					{ID: "l4", Kind: catalog.KindVideo},
					{ID: "l5", Kind: catalog.KindQuiz, QuizID: "q_final"},
				}},
			},
			FinalQuizID: "q_final",
		},
		{
			ID: "c2", Slug: "thirds", Name: "Thirds",
			Sections: []catalog.Section{
				{ID: "s1", Lessons: []catalog.Lesson{
					{ID: "t1", Kind: catalog.KindVideo},
					{ID: "t2", Kind: catalog.KindVideo},
					{ID: "t3", Kind: catalog.KindVideo},
				}},
			},
		},
		{
			ID: "c_empty", Slug: "empty", Name: "Empty",
			Sections: []catalog.Section{
				{ID: "s1", Lessons: []catalog.Lesson{
					{ID: "e1", Kind: catalog.KindQuiz, QuizID: "q_empty"},
				}},
			},
		},
		{ID: "c0", Slug: "no-syllabus", Name: "No Syllabus"},
	}
	if err := catalog.Validate(courses, quizzes); err != nil {
		t.Fatalf("test catalog invalid: %v", err)
	}
	return catalog.New(courses, quizzes)
}

func newTestEngine(t *testing.T) (*Engine, *int) {
	t.Helper()
	completed := 0
	e := New(testCatalog(t), progress.NewMemoryStore())
	e.OnCourseCompleted(func(ctx context.Context, course catalog.CourseDefinition, record *progress.LearnerProgress) error {
		completed++
		return nil
	})
	return e, &completed
}

func TestNavigationOrderAndBoundaries(t *testing.T) {
	e, _ := newTestEngine(t)
	course, _ := e.Course("c1")

	first, ok := FirstLesson(course)
	if !ok || first.Lesson.ID != "l1" {
		t.Fatalf("FirstLesson = %+v, ok=%v", first, ok)
	}

	// Walk forward across the section boundary.
	want := []string{"l2", "l3", "l4", "l5"}
	ref := first
	for _, id := range want {
		next, ok := NextLesson(course, ref.SectionID, ref.Lesson.ID)
		if !ok {
			t.Fatalf("NextLesson after %s: ok=false", ref.Lesson.ID)
		}
		if next.Lesson.ID != id {
			t.Fatalf("NextLesson after %s = %s, want %s", ref.Lesson.ID, next.Lesson.ID, id)
		}
		ref = next
	}

	// No wraparound at either edge.
	if _, ok := NextLesson(course, "s2", "l5"); ok {
		t.Error("NextLesson at last lesson should be ok=false")
	}
	if _, ok := PreviousLesson(course, "s1", "l1"); ok {
		t.Error("PreviousLesson at first lesson should be ok=false")
	}

	prev, ok := PreviousLesson(course, "s2", "l4")
	if !ok || prev.Lesson.ID != "l3" {
		t.Errorf("PreviousLesson before l4 = %+v, ok=%v", prev, ok)
	}
}

func TestAdvanceCompletesCurrentLesson(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	result, err := e.Advance(ctx, "c1", "s1", "l1")
	if err != nil {
		t.Fatalf("Advance() error: %v", err)
	}
	if !result.OK || result.Ref.Lesson.ID != "l2" {
		t.Errorf("Advance landed on %+v, ok=%v", result.Ref, result.OK)
	}
	if !result.Record.CompletedLessons["l1"] {
		t.Error("advancing should complete the current lesson")
	}
	if result.Record.ProgressPercent != 20 {
		t.Errorf("percent after 1/5 = %d, want 20", result.Record.ProgressPercent)
	}

	// Advancing over the same lesson again changes nothing.
	result, err = e.Advance(ctx, "c1", "s1", "l1")
	if err != nil {
		t.Fatal(err)
	}
	if result.Record.CompletedCount() != 1 || result.Record.ProgressPercent != 20 {
		t.Errorf("repeat advance mutated the record: %+v", result.Record)
	}
}

func TestAdvanceAtTerminalLessonStillCompletes(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	// c2's last lesson is a video; advancing there goes nowhere but still
	// marks it complete.
	result, err := e.Advance(ctx, "c2", "s1", "t3")
	if err != nil {
		t.Fatalf("Advance() error: %v", err)
	}
	if result.OK {
		t.Error("Advance at terminal lesson should report ok=false")
	}
	if !result.Record.CompletedLessons["t3"] {
		t.Error("terminal lesson should still be marked complete")
	}
}

func TestAdvanceNeverCompletesQuizLessons(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	result, err := e.Advance(ctx, "c1", "s1", "l3")
	if err != nil {
		t.Fatal(err)
	}
	if !result.OK || result.Ref.Lesson.ID != "l4" {
		t.Errorf("Advance from quiz lesson = %+v", result.Ref)
	}
	if result.Record.CompletedLessons["l3"] {
		t.Error("quiz lesson must not be completed by navigation")
	}
}

func TestRetreatNeverCompletes(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	result, err := e.Retreat(ctx, "c1", "s1", "l2")
	if err != nil {
		t.Fatal(err)
	}
	if !result.OK || result.Ref.Lesson.ID != "l1" {
		t.Errorf("Retreat from l2 = %+v", result.Ref)
	}
	if result.Record.CompletedCount() != 0 {
		t.Error("retreating must not complete anything")
	}
}

func TestProgressPercentRounding(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	// 1/3 rounds to 33, 2/3 rounds to 67.
	record, err := e.ToggleLesson(ctx, "c2", "t1")
	if err != nil {
		t.Fatal(err)
	}
	if record.ProgressPercent != 33 {
		t.Errorf("1/3 = %d%%, want 33", record.ProgressPercent)
	}
	record, err = e.ToggleLesson(ctx, "c2", "t2")
	if err != nil {
		t.Fatal(err)
	}
	if record.ProgressPercent != 67 {
		t.Errorf("2/3 = %d%%, want 67", record.ProgressPercent)
	}
}

func TestZeroLessonCourse(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	record, err := e.EnsureProgress(ctx, "c0")
	if err != nil {
		t.Fatalf("EnsureProgress() error: %v", err)
	}
	if record.ProgressPercent != 0 || record.IsCompleted {
		t.Errorf("zero-lesson course record = %+v", record)
	}
}

func TestInvalidReferences(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	if _, err := e.Advance(ctx, "ghost", "s1", "l1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown course: err = %v, want ErrNotFound", err)
	}
	if _, err := e.Advance(ctx, "c1", "s2", "l1"); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("lesson under wrong section: err = %v, want ErrInvalidReference", err)
	}
	if _, err := e.ToggleLesson(ctx, "c1", "ghost"); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("unknown lesson: err = %v, want ErrInvalidReference", err)
	}
	if _, err := e.StartQuiz(ctx, "c1", "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown quiz: err = %v, want ErrNotFound", err)
	}
	// q_empty exists but belongs to c_empty, not c1.
	if _, err := e.StartQuiz(ctx, "c1", "q_empty"); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("foreign quiz: err = %v, want ErrInvalidReference", err)
	}
}

func TestSelectLesson(t *testing.T) {
	e, _ := newTestEngine(t)

	ref, err := e.SelectLesson("c1", "s2", "l4")
	if err != nil {
		t.Fatalf("SelectLesson() error: %v", err)
	}
	if ref.SectionID != "s2" || ref.Lesson.ID != "l4" {
		t.Errorf("SelectLesson() = %s/%s, want s2/l4", ref.SectionID, ref.Lesson.ID)
	}

	if _, err := e.SelectLesson("ghost", "s1", "l1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown course: err = %v, want ErrNotFound", err)
	}
	if _, err := e.SelectLesson("c1", "s1", "l4"); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("lesson under wrong section: err = %v, want ErrInvalidReference", err)
	}
}

func TestQuizScoringPassAndFail(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	// One of two correct: 50%, below the 70 threshold.
	attempt, err := e.StartQuiz(ctx, "c1", "q_mid")
	if err != nil {
		t.Fatal(err)
	}
	mustSelect(t, attempt, "q1", "optA")
	mustSelect(t, attempt, "q2", "optC")
	result, err := e.SubmitQuiz(ctx, attempt)
	if err != nil {
		t.Fatalf("SubmitQuiz() error: %v", err)
	}
	if result.Score != 50 || result.Passed {
		t.Errorf("result = %d%% passed=%v, want 50%% failed", result.Score, result.Passed)
	}
	if result.AttemptsMade != 1 || result.AttemptsLeft != 2 {
		t.Errorf("attempts = %d made / %d left, want 1/2", result.AttemptsMade, result.AttemptsLeft)
	}
	if attempt.Phase() != PhaseSubmitted {
		t.Error("attempt should be in the submitted phase")
	}

	// Per-question feedback and explanations.
	if len(result.Questions) != 2 {
		t.Fatalf("question results = %d, want 2", len(result.Questions))
	}
	if !result.Questions[0].Correct || result.Questions[0].Explanation != "A is right" {
		t.Errorf("q1 feedback = %+v", result.Questions[0])
	}
	if result.Questions[1].Correct || result.Questions[1].CorrectOptionID != "optB" {
		t.Errorf("q2 feedback = %+v", result.Questions[1])
	}

	// Retry, answer both correctly: 100%, pass, quiz lesson completed.
	if err := attempt.Retry(); err != nil {
		t.Fatalf("Retry() error: %v", err)
	}
	if attempt.Answered() != 0 || attempt.Result() != nil {
		t.Error("Retry should clear selections and the result")
	}
	mustSelect(t, attempt, "q1", "optA")
	mustSelect(t, attempt, "q2", "optB")
	result, err = e.SubmitQuiz(ctx, attempt)
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 100 || !result.Passed {
		t.Errorf("result = %d%% passed=%v, want 100%% passed", result.Score, result.Passed)
	}

	record, err := e.Progress(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if !record.CompletedLessons["l3"] {
		t.Error("passing should complete the quiz lesson")
	}
	state := record.QuizState("q_mid")
	if state.AttemptsMade != 2 || state.BestScore != 100 || !state.Passed {
		t.Errorf("quiz state = %+v", state)
	}
}

func TestUnansweredQuestionsCountWrong(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	attempt, _ := e.StartQuiz(ctx, "c1", "q_mid")
	mustSelect(t, attempt, "q1", "optA")
	result, err := e.SubmitQuiz(ctx, attempt)
	if err != nil {
		t.Fatal(err)
	}
	if result.Score != 50 {
		t.Errorf("score with one unanswered = %d, want 50", result.Score)
	}
	if result.Questions[1].SelectedOptionID != "" || result.Questions[1].Correct {
		t.Errorf("unanswered feedback = %+v", result.Questions[1])
	}
}

func TestSelectValidation(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	attempt, _ := e.StartQuiz(ctx, "c1", "q_mid")
	if err := attempt.Select("q1", "optZ"); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("foreign option: err = %v, want ErrInvalidReference", err)
	}
	if err := attempt.Select("ghost", "optA"); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("unknown question: err = %v, want ErrInvalidReference", err)
	}
	// Re-selection replaces the earlier choice.
	mustSelect(t, attempt, "q1", "optB")
	mustSelect(t, attempt, "q1", "optA")
	if selected, _ := attempt.Selection("q1"); selected != "optA" {
		t.Errorf("selection = %q, want optA", selected)
	}
	if attempt.Answered() != 1 {
		t.Errorf("Answered() = %d, want 1", attempt.Answered())
	}

	if _, err := e.SubmitQuiz(ctx, attempt); err != nil {
		t.Fatal(err)
	}
	if err := attempt.Select("q1", "optA"); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("select after submit: err = %v, want ErrInvalidReference", err)
	}
	if _, err := e.SubmitQuiz(ctx, attempt); !errors.Is(err, ErrInvalidReference) {
		t.Errorf("double submit: err = %v, want ErrInvalidReference", err)
	}
}

func TestAttemptCap(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	attempt, _ := e.StartQuiz(ctx, "c1", "q_mid")
	for i := 0; i < 3; i++ {
		mustSelect(t, attempt, "q1", "optB") // wrong on purpose
		if _, err := e.SubmitQuiz(ctx, attempt); err != nil {
			t.Fatalf("submit %d error: %v", i+1, err)
		}
		if i < 2 {
			if err := attempt.Retry(); err != nil {
				t.Fatalf("retry %d error: %v", i+1, err)
			}
		}
	}
	if attempt.AttemptsLeft() != 0 {
		t.Fatalf("AttemptsLeft() = %d, want 0", attempt.AttemptsLeft())
	}

	// Retry at the cap is refused.
	if err := attempt.Retry(); !errors.Is(err, ErrAttemptsExhausted) {
		t.Errorf("retry at cap: err = %v, want ErrAttemptsExhausted", err)
	}

	// A fourth submission through a fresh attempt is refused and records
	// nothing.
	before, _ := e.Progress(ctx, "c1")
	fresh, _ := e.StartQuiz(ctx, "c1", "q_mid")
	mustSelect(t, fresh, "q1", "optA")
	mustSelect(t, fresh, "q2", "optB")
	if _, err := e.SubmitQuiz(ctx, fresh); !errors.Is(err, ErrAttemptsExhausted) {
		t.Fatalf("submit past cap: err = %v, want ErrAttemptsExhausted", err)
	}
	after, _ := e.Progress(ctx, "c1")
	if after.QuizState("q_mid") != before.QuizState("q_mid") {
		t.Errorf("refused submission mutated quiz state: %+v -> %+v",
			before.QuizState("q_mid"), after.QuizState("q_mid"))
	}
	if fresh.Phase() != PhaseAnswering {
		t.Error("refused attempt should stay in the answering phase")
	}
}

func TestPassIsStickyAndBestScoreMonotone(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	// Pass first.
	attempt, _ := e.StartQuiz(ctx, "c1", "q_mid")
	mustSelect(t, attempt, "q1", "optA")
	mustSelect(t, attempt, "q2", "optB")
	if _, err := e.SubmitQuiz(ctx, attempt); err != nil {
		t.Fatal(err)
	}

	// Then fail: passed stays true, best score stays 100, lesson stays done.
	if err := attempt.Retry(); err != nil {
		t.Fatal(err)
	}
	mustSelect(t, attempt, "q1", "optB")
	result, err := e.SubmitQuiz(ctx, attempt)
	if err != nil {
		t.Fatal(err)
	}
	if result.Passed {
		t.Error("second attempt itself did not pass")
	}
	if !result.PassedEver || result.BestScore != 100 {
		t.Errorf("cumulative state = passedEver=%v best=%d, want true/100", result.PassedEver, result.BestScore)
	}
	record, _ := e.Progress(ctx, "c1")
	if !record.QuizState("q_mid").Passed || !record.CompletedLessons["l3"] {
		t.Error("a pass must stick across later failed attempts")
	}
}

func TestEmptyQuizNeverPasses(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	attempt, err := e.StartQuiz(ctx, "c_empty", "q_empty")
	if err != nil {
		t.Fatal(err)
	}
	result, err := e.SubmitQuiz(ctx, attempt)
	if err != nil {
		t.Fatal(err)
	}
	// Passing score is 0, but a zero-question quiz still scores 0 and fails.
	if result.Score != 0 || result.Passed {
		t.Errorf("empty quiz result = %+v, want score 0, failed", result)
	}
}

func TestCourseCompletionRequiresFinalQuiz(t *testing.T) {
	ctx := context.Background()
	e, completed := newTestEngine(t)

	// Complete every non-quiz lesson and pass the mid quiz.
	for _, step := range []struct{ section, lesson string }{
		{"s1", "l1"}, {"s1", "l2"}, {"s2", "l4"},
	} {
		if _, err := e.Advance(ctx, "c1", step.section, step.lesson); err != nil {
			t.Fatal(err)
		}
	}
	attempt, _ := e.StartQuiz(ctx, "c1", "q_mid")
	mustSelect(t, attempt, "q1", "optA")
	mustSelect(t, attempt, "q2", "optB")
	if _, err := e.SubmitQuiz(ctx, attempt); err != nil {
		t.Fatal(err)
	}

	record, _ := e.Progress(ctx, "c1")
	if record.ProgressPercent != 80 {
		t.Errorf("percent before final = %d, want 80", record.ProgressPercent)
	}
	if record.IsCompleted || *completed != 0 {
		t.Fatal("course must not complete before the final quiz is passed")
	}

	// Pass the final quiz: everything flips at once.
	final, _ := e.StartQuiz(ctx, "c1", "q_final")
	mustSelect(t, final, "f1", "optA")
	result, err := e.SubmitQuiz(ctx, final)
	if err != nil {
		t.Fatal(err)
	}
	if !result.Passed {
		t.Fatal("final quiz should have passed")
	}

	record, _ = e.Progress(ctx, "c1")
	if !record.IsCompleted || record.ProgressPercent != 100 {
		t.Errorf("final record = %d%% completed=%v", record.ProgressPercent, record.IsCompleted)
	}
	if *completed != 1 {
		t.Errorf("completion event fired %d times, want 1", *completed)
	}

	// Completing again via idempotent paths must not re-fire the event.
	if _, err := e.Advance(ctx, "c1", "s1", "l1"); err != nil {
		t.Fatal(err)
	}
	if *completed != 1 {
		t.Errorf("completion event re-fired: %d", *completed)
	}
}

func TestToggleLessonUnmarksCompletion(t *testing.T) {
	ctx := context.Background()
	e, completed := newTestEngine(t)

	// Drive c2 (no final quiz) to completion by toggling.
	for _, id := range []string{"t1", "t2"} {
		if _, err := e.ToggleLesson(ctx, "c2", id); err != nil {
			t.Fatal(err)
		}
	}
	record, err := e.ToggleLesson(ctx, "c2", "t3")
	if err != nil {
		t.Fatal(err)
	}
	if !record.IsCompleted || record.ProgressPercent != 100 {
		t.Fatalf("record after all toggles = %+v", record)
	}
	if *completed != 1 {
		t.Fatalf("completion event fired %d times, want 1", *completed)
	}

	// Untoggle one: completion is re-derived as false.
	record, err = e.ToggleLesson(ctx, "c2", "t2")
	if err != nil {
		t.Fatal(err)
	}
	if record.IsCompleted || record.ProgressPercent != 67 {
		t.Errorf("record after unmark = %d%% completed=%v, want 67%% false", record.ProgressPercent, record.IsCompleted)
	}
}

func TestOverviews(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	if _, err := e.Advance(ctx, "c1", "s1", "l1"); err != nil {
		t.Fatal(err)
	}
	overviews, err := e.Overviews(ctx)
	if err != nil {
		t.Fatal(err)
	}
	// c0 has no syllabus and is not playable.
	if len(overviews) != 3 {
		t.Fatalf("overviews = %d, want 3", len(overviews))
	}
	byID := make(map[string]CourseOverview)
	for _, o := range overviews {
		byID[o.Course.ID] = o
	}
	if o := byID["c1"]; !o.Started || o.Percent != 20 {
		t.Errorf("c1 overview = %+v", o)
	}
	if o := byID["c2"]; o.Started {
		t.Errorf("c2 overview = %+v, want not started", o)
	}
}

func TestResetProgress(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEngine(t)

	if _, err := e.Advance(ctx, "c1", "s1", "l1"); err != nil {
		t.Fatal(err)
	}
	if err := e.ResetProgress(ctx, "c1"); err != nil {
		t.Fatal(err)
	}
	record, err := e.Progress(ctx, "c1")
	if err != nil {
		t.Fatal(err)
	}
	if record != nil {
		t.Errorf("record after reset = %+v, want nil", record)
	}
	if err := e.ResetProgress(ctx, "ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("reset unknown course: err = %v, want ErrNotFound", err)
	}
}

func mustSelect(t *testing.T, attempt *Attempt, questionID, optionID string) {
	t.Helper()
	if err := attempt.Select(questionID, optionID); err != nil {
		t.Fatalf("Select(%s, %s) error: %v", questionID, optionID, err)
	}
}
