package player

import (
	"github.com/nauta-treinamentos/nauta/internal/catalog"
)

// LessonRef locates a lesson within its course.
type LessonRef struct {
	SectionID string
	Lesson    catalog.Lesson
}

// flatten returns the course's lessons in navigation order: sections in
// definition order, lessons in definition order within each section.
func flatten(course catalog.CourseDefinition) []LessonRef {
	var refs []LessonRef
	for _, s := range course.Sections {
		for _, l := range s.Lessons {
			refs = append(refs, LessonRef{SectionID: s.ID, Lesson: l})
		}
	}
	return refs
}

// indexOf returns the flattened position of a lesson, or -1.
func indexOf(refs []LessonRef, sectionID, lessonID string) int {
	for i, ref := range refs {
		if ref.SectionID == sectionID && ref.Lesson.ID == lessonID {
			return i
		}
	}
	return -1
}

// FirstLesson returns the first lesson of the course in navigation order.
func FirstLesson(course catalog.CourseDefinition) (LessonRef, bool) {
	refs := flatten(course)
	if len(refs) == 0 {
		return LessonRef{}, false
	}
	return refs[0], true
}

// NextLesson returns the lesson after the given one. At the last lesson it
// returns ok=false; there is no wraparound.
func NextLesson(course catalog.CourseDefinition, sectionID, lessonID string) (LessonRef, bool) {
	refs := flatten(course)
	i := indexOf(refs, sectionID, lessonID)
	if i < 0 || i+1 >= len(refs) {
		return LessonRef{}, false
	}
	return refs[i+1], true
}

// PreviousLesson returns the lesson before the given one. At the first
// lesson it returns ok=false.
func PreviousLesson(course catalog.CourseDefinition, sectionID, lessonID string) (LessonRef, bool) {
	refs := flatten(course)
	i := indexOf(refs, sectionID, lessonID)
	if i <= 0 {
		return LessonRef{}, false
	}
	return refs[i-1], true
}
