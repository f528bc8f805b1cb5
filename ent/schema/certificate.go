package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Certificate records a course-completion certificate. One per course; the
// unique constraint makes issuance idempotent.
type Certificate struct {
	ent.Schema
}

func (Certificate) Fields() []ent.Field {
	return []ent.Field{
		field.String("public_id").
			Unique().
			Comment("UUID shown to the learner"),
		field.String("course_id").
			Unique().
			Comment("Catalog id of the completed course"),
		field.String("course_name").
			Comment("Course name at issue time"),
		field.Time("issued_at").
			Default(time.Now).
			Comment("When the certificate was issued"),
	}
}
