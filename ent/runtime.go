// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/nauta-treinamentos/nauta/ent/certificate"
	"github.com/nauta-treinamentos/nauta/ent/progressrecord"
	"github.com/nauta-treinamentos/nauta/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	certificateFields := schema.Certificate{}.Fields()
	_ = certificateFields
	// certificateDescIssuedAt is the schema descriptor for issued_at field.
	certificateDescIssuedAt := certificateFields[3].Descriptor()
	// certificate.DefaultIssuedAt holds the default value on creation for the issued_at field.
	certificate.DefaultIssuedAt = certificateDescIssuedAt.Default.(func() time.Time)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescProgressPercent is the schema descriptor for progress_percent field.
	progressrecordDescProgressPercent := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultProgressPercent holds the default value on creation for the progress_percent field.
	progressrecord.DefaultProgressPercent = progressrecordDescProgressPercent.Default.(int)
	// progressrecordDescIsCompleted is the schema descriptor for is_completed field.
	progressrecordDescIsCompleted := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultIsCompleted holds the default value on creation for the is_completed field.
	progressrecord.DefaultIsCompleted = progressrecordDescIsCompleted.Default.(bool)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
}
