package catalog

import (
	"strings"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := Validate(seedCourses(), seedQuizzes()); err != nil {
		t.Fatalf("seed data failed validation: %v", err)
	}
}

func TestCourseLookup(t *testing.T) {
	c := Default()

	course, ok := c.Course("1")
	if !ok {
		t.Fatal("expected course 1 to exist")
	}
	if course.Name != "Segurança Offshore Essencial (CBSP)" {
		t.Errorf("unexpected course name: %q", course.Name)
	}
	if got := course.TotalLessons(); got != 8 {
		t.Errorf("TotalLessons() = %d, want 8", got)
	}
	if !course.Playable() {
		t.Error("course 1 should be playable")
	}

	if _, ok := c.Course("missing"); ok {
		t.Error("lookup of missing course should return ok=false")
	}
}

func TestCourseBySlug(t *testing.T) {
	c := Default()

	course, ok := c.CourseBySlug("nr05-cipa-comissao-interna")
	if !ok {
		t.Fatal("expected NR-05 course by slug")
	}
	if course.ID != "7" {
		t.Errorf("course ID = %q, want 7", course.ID)
	}

	if _, ok := c.CourseBySlug("no-such-slug"); ok {
		t.Error("missing slug should return ok=false")
	}
}

func TestQuizLookup(t *testing.T) {
	c := Default()

	quiz, ok := c.Quiz("finalQuiz_cbsp")
	if !ok {
		t.Fatal("expected final CBSP quiz")
	}
	if len(quiz.Questions) != 3 {
		t.Errorf("question count = %d, want 3", len(quiz.Questions))
	}
	if quiz.PassingScore != 70 || quiz.MaxAttempts != 3 {
		t.Errorf("policy = %d/%d, want 70/3", quiz.PassingScore, quiz.MaxAttempts)
	}

	if _, ok := c.Quiz("missing"); ok {
		t.Error("missing quiz should return ok=false")
	}
}

func TestPlayableCourses(t *testing.T) {
	playable := Default().PlayableCourses()
	if len(playable) != 2 {
		t.Fatalf("playable courses = %d, want 2", len(playable))
	}
	if playable[0].ID != "1" || playable[1].ID != "7" {
		t.Errorf("playable IDs = %q, %q; want 1, 7", playable[0].ID, playable[1].ID)
	}
}

func TestFindLesson(t *testing.T) {
	course, _ := Default().Course("1")

	lesson, ok := course.FindLesson("s1_cbsp", "l1_cbsp_mod1_aula4")
	if !ok {
		t.Fatal("expected lesson in s1_cbsp")
	}
	if lesson.Kind != KindQuiz || lesson.QuizID != "quiz1_cbsp_mod1" {
		t.Errorf("lesson = %+v, want quiz lesson for quiz1_cbsp_mod1", lesson)
	}

	// Right lesson, wrong section.
	if _, ok := course.FindLesson("s2_cbsp", "l1_cbsp_mod1_aula4"); ok {
		t.Error("lesson should not be found under a different section")
	}
	if !course.ContainsLesson("l2_cbsp_mod2_aula3") {
		t.Error("ContainsLesson should find lessons in any section")
	}
	if course.ContainsLesson("missing") {
		t.Error("ContainsLesson should miss unknown ids")
	}
}

func TestValidateCatchesBrokenReferences(t *testing.T) {
	tests := []struct {
		name    string
		courses []CourseDefinition
		quizzes []QuizDefinition
		want    string
	}{
		{
			name: "quiz lesson without quizId",
			courses: []CourseDefinition{{
				ID: "c1", Slug: "c1", Name: "C1",
				Sections: []Section{{ID: "s1", Lessons: []Lesson{
					{ID: "l1", Kind: KindQuiz},
				}}},
			}},
			want: "missing quizId",
		},
		{
			name: "quiz lesson referencing unknown quiz",
			courses: []CourseDefinition{{
				ID: "c1", Slug: "c1", Name: "C1",
				Sections: []Section{{ID: "s1", Lessons: []Lesson{
					{ID: "l1", Kind: KindQuiz, QuizID: "ghost"},
				}}},
			}},
			want: "nonexistent quiz",
		},
		{
			name: "correct option not among options",
			quizzes: []QuizDefinition{{
				ID: "q1", PassingScore: 70, MaxAttempts: 3,
				Questions: []Question{{
					ID:              "q1_1",
					Options:         []Option{{ID: "a"}, {ID: "b"}},
					CorrectOptionID: "c",
				}},
			}},
			want: "correctOptionId",
		},
		{
			name: "final quiz with no syllabus lesson",
			courses: []CourseDefinition{{
				ID: "c1", Slug: "c1", Name: "C1",
				Sections: []Section{{ID: "s1", Lessons: []Lesson{
					{ID: "l1", Kind: KindVideo},
				}}},
				FinalQuizID: "q1",
			}},
			quizzes: []QuizDefinition{{ID: "q1", PassingScore: 70, MaxAttempts: 3}},
			want:    "no quiz lesson",
		},
		{
			name: "duplicate lesson ids across sections",
			courses: []CourseDefinition{{
				ID: "c1", Slug: "c1", Name: "C1",
				Sections: []Section{
					{ID: "s1", Lessons: []Lesson{{ID: "l1", Kind: KindVideo}}},
					{ID: "s2", Lessons: []Lesson{{ID: "l1", Kind: KindText}}},
				},
			}},
			want: "duplicate lesson ID",
		},
		{
			name:    "non-positive maxAttempts",
			quizzes: []QuizDefinition{{ID: "q1", PassingScore: 70, MaxAttempts: 0}},
			want:    "maxAttempts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.courses, tt.quizzes)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	good := `{
		"courses": [{
			"id": "c1", "slug": "course-one", "name": "Course One", "category": "Test",
			"sections": [{
				"id": "s1", "title": "S1",
				"lessons": [
					{"id": "l1", "title": "L1", "kind": "video", "duration": "5 min"},
					{"id": "l2", "title": "L2", "kind": "quiz", "quizId": "q1"}
				]
			}],
			"finalQuizId": "q1"
		}],
		"quizzes": [{
			"id": "q1", "title": "Q1", "passingScore": 70, "maxAttempts": 3,
			"questions": [{
				"id": "q1_1", "text": "?",
				"options": [{"id": "a", "text": "A"}, {"id": "b", "text": "B"}],
				"correctOptionId": "a"
			}]
		}]
	}`
	c, err := Parse([]byte(good))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if _, ok := c.CourseBySlug("course-one"); !ok {
		t.Error("parsed catalog missing course-one")
	}

	if _, err := Parse([]byte(`{"courses": [{}]}`)); err == nil {
		t.Error("schema should reject a course without required fields")
	}
	if _, err := Parse([]byte(`not json`)); err == nil {
		t.Error("Parse should reject invalid JSON")
	}
	// Schema-valid but referentially broken.
	broken := `{
		"courses": [{
			"id": "c1", "slug": "c1", "name": "C1", "category": "Test",
			"sections": [{"id": "s1", "title": "S1", "lessons": [
				{"id": "l1", "title": "L1", "kind": "quiz", "quizId": "ghost"}
			]}]
		}]
	}`
	if _, err := Parse([]byte(broken)); err == nil {
		t.Error("Parse should reject dangling quiz references")
	}
}
