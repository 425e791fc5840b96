package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/oklog/ulid/v2"

	"github.com/dataferry/dataferry/internal/ent/mixins"
)

// Repository holds the schema definition for the Repository entity.
// A repository is a named storage location: either a personal working copy
// (acquisition machine) or an authoritative server-class store.
type Repository struct {
	ent.Schema
}

// Mixin of the Repository.
func (Repository) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
	}
}

// Fields of the Repository.
func (Repository) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty(),
		field.String("root_path").
			Default("").
			Comment("Path prefix under the endpoint root"),
		field.String("endpoint_id").
			Default("").
			Comment("Opaque identifier used by the transfer backend"),
		field.Bool("is_personal").
			Default(false).
			Comment("True for node-local working copies, false for authoritative stores"),
		field.String("lab_id").
			GoType(ulid.ULID{}).
			Optional(),
	}
}

// Edges of the Repository.
func (Repository) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lab", Lab.Type).
			Ref("repositories").
			Unique().
			Field("lab_id"),
		edge.To("file_records", FileRecord.Type),
	}
}

// Indexes of the Repository.
func (Repository) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lab_id"),
		index.Fields("is_personal"),
	}
}

// Annotations of the Repository.
func (Repository) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "repositories"},
	}
}
