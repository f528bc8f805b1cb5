package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord stores one learner's progress through one course.
type ProgressRecord struct {
	ent.Schema
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			Unique().
			Comment("Catalog id of the course"),
		field.JSON("data", map[string]any{}).
			Comment("Full progress record as JSON"),
		field.Int("progress_percent").
			Default(0).
			Comment("Denormalized percent for listings"),
		field.Bool("is_completed").
			Default(false).
			Comment("Denormalized completion flag for listings"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
