package catalog

// LessonKind identifies what a lesson contains.
type LessonKind string

const (
	KindVideo LessonKind = "video"
	KindText  LessonKind = "text"
	KindQuiz  LessonKind = "quiz"
)

// Icon returns the display icon for a lesson kind.
func (k LessonKind) Icon() string {
	switch k {
	case KindVideo:
		return "▶"
	case KindText:
		return "≡"
	case KindQuiz:
		return "?"
	default:
		return "·"
	}
}

// Option is one selectable answer for a question.
type Option struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Question is a single multiple-choice question within a quiz.
type Question struct {
	ID              string   `json:"id"`
	Text            string   `json:"text"`
	Options         []Option `json:"options"`
	CorrectOptionID string   `json:"correctOptionId"`
	Explanation     string   `json:"explanation,omitempty"`
}

// HasOption reports whether optionID belongs to this question's option list.
func (q Question) HasOption(optionID string) bool {
	for _, opt := range q.Options {
		if opt.ID == optionID {
			return true
		}
	}
	return false
}

// QuizDefinition is an immutable quiz with its scoring and retry policy.
// PassingScore is a percentage threshold (0-100); MaxAttempts caps scored
// submissions per learner.
type QuizDefinition struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Questions    []Question `json:"questions"`
	PassingScore int        `json:"passingScore"`
	MaxAttempts  int        `json:"maxAttempts"`
}

// Lesson is the atomic unit of course content.
// QuizID is set only when Kind is KindQuiz. Content holds the body of a
// text lesson; Duration is display-only metadata for video lessons.
type Lesson struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Kind     LessonKind `json:"kind"`
	Duration string     `json:"duration,omitempty"`
	Content  string     `json:"content,omitempty"`
	QuizID   string     `json:"quizId,omitempty"`
}

// Section is an ordered group of lessons. The slice order is the
// navigation order.
type Section struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Lessons []Lesson `json:"lessons"`
}

// CourseDefinition is an immutable catalog entry. Courses without sections
// appear in listings but cannot be played. FinalQuizID, when set, names the
// quiz that gates course completion.
type CourseDefinition struct {
	ID               string    `json:"id"`
	Slug             string    `json:"slug"`
	Name             string    `json:"name"`
	Category         string    `json:"category"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	Price            string    `json:"price,omitempty"`
	Duration         string    `json:"duration,omitempty"`
	Sections         []Section `json:"sections,omitempty"`
	FinalQuizID      string    `json:"finalQuizId,omitempty"`
}

// TotalLessons returns the lesson count summed over all sections.
func (c CourseDefinition) TotalLessons() int {
	n := 0
	for _, s := range c.Sections {
		n += len(s.Lessons)
	}
	return n
}

// Playable reports whether the course has at least one lesson to open.
func (c CourseDefinition) Playable() bool {
	return c.TotalLessons() > 0
}

// FindLesson returns the lesson with the given section and lesson ids.
func (c CourseDefinition) FindLesson(sectionID, lessonID string) (Lesson, bool) {
	for _, s := range c.Sections {
		if s.ID != sectionID {
			continue
		}
		for _, l := range s.Lessons {
			if l.ID == lessonID {
				return l, true
			}
		}
	}
	return Lesson{}, false
}

// ContainsLesson reports whether any section holds a lesson with the given id.
func (c CourseDefinition) ContainsLesson(lessonID string) bool {
	for _, s := range c.Sections {
		for _, l := range s.Lessons {
			if l.ID == lessonID {
				return true
			}
		}
	}
	return false
}
