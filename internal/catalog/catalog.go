// Package catalog holds the immutable course and quiz definitions that the
// player operates on. Definitions are built once (from the embedded seed or
// a loaded JSON file), indexed by id, and never mutated afterwards.
package catalog

import (
	"slices"
	"sort"
)

// Catalog is a read-only index over course and quiz definitions.
type Catalog struct {
	courses   []CourseDefinition
	courseIDs map[string]*CourseDefinition
	slugs     map[string]*CourseDefinition
	quizzes   map[string]*QuizDefinition
}

// New builds a Catalog from the given definitions. The input slices are
// expected to pass Validate; New itself only indexes.
func New(courses []CourseDefinition, quizzes []QuizDefinition) *Catalog {
	c := &Catalog{
		courses:   courses,
		courseIDs: make(map[string]*CourseDefinition, len(courses)),
		slugs:     make(map[string]*CourseDefinition, len(courses)),
		quizzes:   make(map[string]*QuizDefinition, len(quizzes)),
	}
	for i := range c.courses {
		c.courseIDs[c.courses[i].ID] = &c.courses[i]
		c.slugs[c.courses[i].Slug] = &c.courses[i]
	}
	for i := range quizzes {
		c.quizzes[quizzes[i].ID] = &quizzes[i]
	}
	return c
}

// Course returns the course with the given id. Absence is a normal result,
// not an error.
func (c *Catalog) Course(id string) (CourseDefinition, bool) {
	course, ok := c.courseIDs[id]
	if !ok {
		return CourseDefinition{}, false
	}
	return *course, true
}

// CourseBySlug returns the course with the given URL slug.
func (c *Catalog) CourseBySlug(slug string) (CourseDefinition, bool) {
	course, ok := c.slugs[slug]
	if !ok {
		return CourseDefinition{}, false
	}
	return *course, true
}

// Quiz returns the quiz with the given id.
func (c *Catalog) Quiz(id string) (QuizDefinition, bool) {
	quiz, ok := c.quizzes[id]
	if !ok {
		return QuizDefinition{}, false
	}
	return *quiz, true
}

// Courses returns all courses in definition order.
func (c *Catalog) Courses() []CourseDefinition {
	return slices.Clone(c.courses)
}

// PlayableCourses returns the courses that have a syllabus, in definition order.
func (c *Catalog) PlayableCourses() []CourseDefinition {
	var result []CourseDefinition
	for _, course := range c.courses {
		if course.Playable() {
			result = append(result, course)
		}
	}
	return result
}

// Categories returns the distinct course categories, sorted.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var result []string
	for _, course := range c.courses {
		if course.Category == "" || seen[course.Category] {
			continue
		}
		seen[course.Category] = true
		result = append(result, course.Category)
	}
	sort.Strings(result)
	return result
}

// defaultCatalog is the package-level catalog seeded at init time.
var defaultCatalog = New(seedCourses(), seedQuizzes())

// Default returns the catalog built from the embedded seed data.
func Default() *Catalog {
	return defaultCatalog
}
