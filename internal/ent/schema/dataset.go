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

// Dataset holds the schema definition for the Dataset entity.
// A dataset is one logical file (or the head of a revision chain) that must
// exist redundantly across several repositories. Its UUID is embedded in
// remote-facing filenames so that filename collisions on shared authoritative
// storage can only happen for the exact same dataset.
type Dataset struct {
	ent.Schema
}

// Mixin of the Dataset.
func (Dataset) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.TimestampMixin{},
	}
}

// Fields of the Dataset.
func (Dataset) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),
		field.String("name").
			NotEmpty(),
		field.Int64("file_size").
			Optional().
			Nillable().
			Comment("Declared byte size, null until observed"),
		field.String("hash").
			Default(""),
		field.String("revision").
			Default(""),
		// Named is_default_revision so the generated predicate does not
		// collide with the revision field's DefaultRevision default value;
		// the column and JSON key stay default_revision.
		field.Bool("is_default_revision").
			StorageKey("default_revision").
			StructTag(`json:"default_revision,omitempty"`).
			Default(true),
		field.Bool("protected").
			Default(false).
			Comment("Protected datasets reject overwrite and purge"),
		field.UUID("parent_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Parent dataset for derived outputs"),
		field.String("lab_id").
			GoType(ulid.ULID{}).
			Optional(),
	}
}

// Edges of the Dataset.
func (Dataset) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("children", Dataset.Type).
			From("parent").
			Unique().
			Field("parent_id"),
		edge.From("lab", Lab.Type).
			Ref("datasets").
			Unique().
			Field("lab_id"),
		edge.To("file_records", FileRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Dataset.
func (Dataset) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("lab_id"),
		index.Fields("name"),
	}
}

// Annotations of the Dataset.
func (Dataset) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "datasets"},
	}
}
