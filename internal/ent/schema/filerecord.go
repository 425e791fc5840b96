package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/dataferry/dataferry/internal/ent/mixins"
)

// FileRecord holds the schema definition for the FileRecord entity.
// One record is the engine's belief that a specific dataset's file exists
// (or not) at a specific repository. Existence is only mutated by the
// reconciler (toward observed truth) and the deletion engine.
type FileRecord struct {
	ent.Schema
}

// Mixin of the FileRecord.
func (FileRecord) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
	}
}

// Fields of the FileRecord.
func (FileRecord) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("dataset_id", uuid.UUID{}),
		field.String("repository_id").
			GoType(ulid.ULID{}),
		field.String("relative_path").
			NotEmpty().
			Comment("Collection, optional revision segment and filename"),
		field.Bool("exists").
			Default(false),
		field.Enum("status").
			Values("none", "pending", "mismatch", "missing").
			Default("none").
			Comment("pending: transfer submitted but unconfirmed; mismatch: hash disagrees, re-verify; missing: no source copy found anywhere"),
	}
}

// Edges of the FileRecord.
func (FileRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("dataset", Dataset.Type).
			Ref("file_records").
			Unique().
			Required().
			Field("dataset_id"),
		edge.From("repository", Repository.Type).
			Ref("file_records").
			Unique().
			Required().
			Field("repository_id"),
	}
}

// Indexes of the FileRecord.
func (FileRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("dataset_id", "repository_id", "relative_path").
			Unique(),
		index.Fields("repository_id"),
		index.Fields("exists"),
		index.Fields("status"),
	}
}

// Annotations of the FileRecord.
func (FileRecord) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "file_records"},
	}
}
