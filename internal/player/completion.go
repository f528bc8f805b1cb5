package player

import (
	"math"

	"github.com/nauta-treinamentos/nauta/internal/catalog"
	"github.com/nauta-treinamentos/nauta/internal/progress"
)

// roundPercent computes round(100 * part / whole), guarding whole == 0.
func roundPercent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(whole)))
}

// recompute re-derives ProgressPercent and IsCompleted from the record's
// completed-lesson set and quiz states. Completion requires every lesson
// complete and, when the course has a final quiz, that quiz passed.
//
// Returns true only on a false-to-true completion transition, so the caller
// can fire the course-completed event exactly once.
func recompute(course catalog.CourseDefinition, record *progress.LearnerProgress) (justCompleted bool) {
	total := course.TotalLessons()
	completed := 0
	for _, s := range course.Sections {
		for _, l := range s.Lessons {
			if record.CompletedLessons[l.ID] {
				completed++
			}
		}
	}

	record.ProgressPercent = roundPercent(completed, total)

	done := total > 0 && completed == total
	if done && course.FinalQuizID != "" {
		done = record.QuizState(course.FinalQuizID).Passed
	}

	justCompleted = done && !record.IsCompleted
	record.IsCompleted = done
	return justCompleted
}
