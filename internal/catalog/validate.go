package catalog

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on a set of definitions.
// Returns a combined error describing all problems found, or nil if valid.
//
// Degenerate-but-harmless shapes (a course with zero lessons, a quiz with
// zero questions) are allowed here; the player guards them at runtime.
// Broken references are not.
func Validate(courses []CourseDefinition, quizzes []QuizDefinition) error {
	var errs []string

	quizIDs := make(map[string]bool, len(quizzes))
	for _, q := range quizzes {
		if quizIDs[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate quiz ID: %q", q.ID))
		}
		quizIDs[q.ID] = true

		if q.PassingScore < 0 || q.PassingScore > 100 {
			errs = append(errs, fmt.Sprintf("quiz %q: passingScore must be in [0, 100], got %d", q.ID, q.PassingScore))
		}
		if q.MaxAttempts <= 0 {
			errs = append(errs, fmt.Sprintf("quiz %q: maxAttempts must be > 0, got %d", q.ID, q.MaxAttempts))
		}

		questionIDs := make(map[string]bool, len(q.Questions))
		for _, question := range q.Questions {
			if questionIDs[question.ID] {
				errs = append(errs, fmt.Sprintf("quiz %q: duplicate question ID %q", q.ID, question.ID))
			}
			questionIDs[question.ID] = true

			optionIDs := make(map[string]bool, len(question.Options))
			for _, opt := range question.Options {
				if optionIDs[opt.ID] {
					errs = append(errs, fmt.Sprintf("quiz %q question %q: duplicate option ID %q", q.ID, question.ID, opt.ID))
				}
				optionIDs[opt.ID] = true
			}
			if !optionIDs[question.CorrectOptionID] {
				errs = append(errs, fmt.Sprintf("quiz %q question %q: correctOptionId %q is not one of its options", q.ID, question.ID, question.CorrectOptionID))
			}
		}
	}

	courseIDs := make(map[string]bool, len(courses))
	slugSet := make(map[string]bool, len(courses))
	for _, c := range courses {
		if courseIDs[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate course ID: %q", c.ID))
		}
		courseIDs[c.ID] = true

		if c.Slug != "" {
			if slugSet[c.Slug] {
				errs = append(errs, fmt.Sprintf("duplicate course slug: %q", c.Slug))
			}
			slugSet[c.Slug] = true
		}

		lessonIDs := make(map[string]bool)
		sectionIDs := make(map[string]bool, len(c.Sections))
		for _, s := range c.Sections {
			if sectionIDs[s.ID] {
				errs = append(errs, fmt.Sprintf("course %q: duplicate section ID %q", c.ID, s.ID))
			}
			sectionIDs[s.ID] = true

			for _, l := range s.Lessons {
				if lessonIDs[l.ID] {
					errs = append(errs, fmt.Sprintf("course %q: duplicate lesson ID %q", c.ID, l.ID))
				}
				lessonIDs[l.ID] = true

				switch l.Kind {
				case KindVideo, KindText:
					if l.QuizID != "" {
						errs = append(errs, fmt.Sprintf("course %q lesson %q: quizId set on a %s lesson", c.ID, l.ID, l.Kind))
					}
				case KindQuiz:
					if l.QuizID == "" {
						errs = append(errs, fmt.Sprintf("course %q lesson %q: quiz lesson missing quizId", c.ID, l.ID))
					} else if !quizIDs[l.QuizID] {
						errs = append(errs, fmt.Sprintf("course %q lesson %q: references nonexistent quiz %q", c.ID, l.ID, l.QuizID))
					}
				default:
					errs = append(errs, fmt.Sprintf("course %q lesson %q: unknown kind %q", c.ID, l.ID, l.Kind))
				}
			}
		}

		if c.FinalQuizID != "" {
			if !quizIDs[c.FinalQuizID] {
				errs = append(errs, fmt.Sprintf("course %q: finalQuizId references nonexistent quiz %q", c.ID, c.FinalQuizID))
			} else {
				// The final quiz must be reachable as a lesson, otherwise the
				// completion gate can never be satisfied.
				found := false
				for _, s := range c.Sections {
					for _, l := range s.Lessons {
						if l.Kind == KindQuiz && l.QuizID == c.FinalQuizID {
							found = true
						}
					}
				}
				if !found {
					errs = append(errs, fmt.Sprintf("course %q: final quiz %q has no quiz lesson in the syllabus", c.ID, c.FinalQuizID))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
