package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/dataferry/dataferry/internal/ent/mixins"
)

// Lab holds the schema definition for the Lab entity.
// A lab owns repositories and datasets and is the unit of scoping for
// reconciliation and transfer passes.
type Lab struct {
	ent.Schema
}

// Mixin of the Lab.
func (Lab) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
	}
}

// Fields of the Lab.
func (Lab) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			NotEmpty(),
	}
}

// Edges of the Lab.
func (Lab) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("repositories", Repository.Type),
		edge.To("datasets", Dataset.Type),
	}
}

// Annotations of the Lab.
func (Lab) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "labs"},
	}
}
