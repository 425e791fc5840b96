// Code generated by ent, DO NOT EDIT.

package repository

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/dataferry/dataferry/internal/ent/generated/predicate"
	ulid "github.com/oklog/ulid/v2"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldUpdatedAt, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldName, v))
}

// RootPath applies equality check predicate on the "root_path" field. It's identical to RootPathEQ.
func RootPath(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldRootPath, v))
}

// EndpointID applies equality check predicate on the "endpoint_id" field. It's identical to EndpointIDEQ.
func EndpointID(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldEndpointID, v))
}

// IsPersonal applies equality check predicate on the "is_personal" field. It's identical to IsPersonalEQ.
func IsPersonal(v bool) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldIsPersonal, v))
}

// LabID applies equality check predicate on the "lab_id" field. It's identical to LabIDEQ.
func LabID(v ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldLabID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContainsFold(FieldName, v))
}

// RootPathEQ applies the EQ predicate on the "root_path" field.
func RootPathEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldRootPath, v))
}

// RootPathNEQ applies the NEQ predicate on the "root_path" field.
func RootPathNEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldRootPath, v))
}

// RootPathIn applies the In predicate on the "root_path" field.
func RootPathIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldRootPath, vs...))
}

// RootPathNotIn applies the NotIn predicate on the "root_path" field.
func RootPathNotIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldRootPath, vs...))
}

// RootPathGT applies the GT predicate on the "root_path" field.
func RootPathGT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldRootPath, v))
}

// RootPathGTE applies the GTE predicate on the "root_path" field.
func RootPathGTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldRootPath, v))
}

// RootPathLT applies the LT predicate on the "root_path" field.
func RootPathLT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldRootPath, v))
}

// RootPathLTE applies the LTE predicate on the "root_path" field.
func RootPathLTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldRootPath, v))
}

// RootPathContains applies the Contains predicate on the "root_path" field.
func RootPathContains(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContains(FieldRootPath, v))
}

// RootPathHasPrefix applies the HasPrefix predicate on the "root_path" field.
func RootPathHasPrefix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasPrefix(FieldRootPath, v))
}

// RootPathHasSuffix applies the HasSuffix predicate on the "root_path" field.
func RootPathHasSuffix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasSuffix(FieldRootPath, v))
}

// RootPathEqualFold applies the EqualFold predicate on the "root_path" field.
func RootPathEqualFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEqualFold(FieldRootPath, v))
}

// RootPathContainsFold applies the ContainsFold predicate on the "root_path" field.
func RootPathContainsFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContainsFold(FieldRootPath, v))
}

// EndpointIDEQ applies the EQ predicate on the "endpoint_id" field.
func EndpointIDEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldEndpointID, v))
}

// EndpointIDNEQ applies the NEQ predicate on the "endpoint_id" field.
func EndpointIDNEQ(v string) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldEndpointID, v))
}

// EndpointIDIn applies the In predicate on the "endpoint_id" field.
func EndpointIDIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldEndpointID, vs...))
}

// EndpointIDNotIn applies the NotIn predicate on the "endpoint_id" field.
func EndpointIDNotIn(vs ...string) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldEndpointID, vs...))
}

// EndpointIDGT applies the GT predicate on the "endpoint_id" field.
func EndpointIDGT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldEndpointID, v))
}

// EndpointIDGTE applies the GTE predicate on the "endpoint_id" field.
func EndpointIDGTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldEndpointID, v))
}

// EndpointIDLT applies the LT predicate on the "endpoint_id" field.
func EndpointIDLT(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldEndpointID, v))
}

// EndpointIDLTE applies the LTE predicate on the "endpoint_id" field.
func EndpointIDLTE(v string) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldEndpointID, v))
}

// EndpointIDContains applies the Contains predicate on the "endpoint_id" field.
func EndpointIDContains(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContains(FieldEndpointID, v))
}

// EndpointIDHasPrefix applies the HasPrefix predicate on the "endpoint_id" field.
func EndpointIDHasPrefix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasPrefix(FieldEndpointID, v))
}

// EndpointIDHasSuffix applies the HasSuffix predicate on the "endpoint_id" field.
func EndpointIDHasSuffix(v string) predicate.Repository {
	return predicate.Repository(sql.FieldHasSuffix(FieldEndpointID, v))
}

// EndpointIDEqualFold applies the EqualFold predicate on the "endpoint_id" field.
func EndpointIDEqualFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldEqualFold(FieldEndpointID, v))
}

// EndpointIDContainsFold applies the ContainsFold predicate on the "endpoint_id" field.
func EndpointIDContainsFold(v string) predicate.Repository {
	return predicate.Repository(sql.FieldContainsFold(FieldEndpointID, v))
}

// IsPersonalEQ applies the EQ predicate on the "is_personal" field.
func IsPersonalEQ(v bool) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldIsPersonal, v))
}

// IsPersonalNEQ applies the NEQ predicate on the "is_personal" field.
func IsPersonalNEQ(v bool) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldIsPersonal, v))
}

// LabIDEQ applies the EQ predicate on the "lab_id" field.
func LabIDEQ(v ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldEQ(FieldLabID, v))
}

// LabIDNEQ applies the NEQ predicate on the "lab_id" field.
func LabIDNEQ(v ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldNEQ(FieldLabID, v))
}

// LabIDIn applies the In predicate on the "lab_id" field.
func LabIDIn(vs ...ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldIn(FieldLabID, vs...))
}

// LabIDNotIn applies the NotIn predicate on the "lab_id" field.
func LabIDNotIn(vs ...ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldNotIn(FieldLabID, vs...))
}

// LabIDGT applies the GT predicate on the "lab_id" field.
func LabIDGT(v ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldGT(FieldLabID, v))
}

// LabIDGTE applies the GTE predicate on the "lab_id" field.
func LabIDGTE(v ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldGTE(FieldLabID, v))
}

// LabIDLT applies the LT predicate on the "lab_id" field.
func LabIDLT(v ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldLT(FieldLabID, v))
}

// LabIDLTE applies the LTE predicate on the "lab_id" field.
func LabIDLTE(v ulid.ULID) predicate.Repository {
	return predicate.Repository(sql.FieldLTE(FieldLabID, v))
}

// LabIDContains applies the Contains predicate on the "lab_id" field.
func LabIDContains(v ulid.ULID) predicate.Repository {
	vc := v.String()
	return predicate.Repository(sql.FieldContains(FieldLabID, vc))
}

// LabIDHasPrefix applies the HasPrefix predicate on the "lab_id" field.
func LabIDHasPrefix(v ulid.ULID) predicate.Repository {
	vc := v.String()
	return predicate.Repository(sql.FieldHasPrefix(FieldLabID, vc))
}

// LabIDHasSuffix applies the HasSuffix predicate on the "lab_id" field.
func LabIDHasSuffix(v ulid.ULID) predicate.Repository {
	vc := v.String()
	return predicate.Repository(sql.FieldHasSuffix(FieldLabID, vc))
}

// LabIDIsNil applies the IsNil predicate on the "lab_id" field.
func LabIDIsNil() predicate.Repository {
	return predicate.Repository(sql.FieldIsNull(FieldLabID))
}

// LabIDNotNil applies the NotNil predicate on the "lab_id" field.
func LabIDNotNil() predicate.Repository {
	return predicate.Repository(sql.FieldNotNull(FieldLabID))
}

// LabIDEqualFold applies the EqualFold predicate on the "lab_id" field.
func LabIDEqualFold(v ulid.ULID) predicate.Repository {
	vc := v.String()
	return predicate.Repository(sql.FieldEqualFold(FieldLabID, vc))
}

// LabIDContainsFold applies the ContainsFold predicate on the "lab_id" field.
func LabIDContainsFold(v ulid.ULID) predicate.Repository {
	vc := v.String()
	return predicate.Repository(sql.FieldContainsFold(FieldLabID, vc))
}

// HasLab applies the HasEdge predicate on the "lab" edge.
func HasLab() predicate.Repository {
	return predicate.Repository(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LabTable, LabColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLabWith applies the HasEdge predicate on the "lab" edge with a given conditions (other predicates).
func HasLabWith(preds ...predicate.Lab) predicate.Repository {
	return predicate.Repository(func(s *sql.Selector) {
		step := newLabStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFileRecords applies the HasEdge predicate on the "file_records" edge.
func HasFileRecords() predicate.Repository {
	return predicate.Repository(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FileRecordsTable, FileRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileRecordsWith applies the HasEdge predicate on the "file_records" edge with a given conditions (other predicates).
func HasFileRecordsWith(preds ...predicate.FileRecord) predicate.Repository {
	return predicate.Repository(func(s *sql.Selector) {
		step := newFileRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Repository) predicate.Repository {
	return predicate.Repository(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Repository) predicate.Repository {
	return predicate.Repository(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Repository) predicate.Repository {
	return predicate.Repository(sql.NotPredicates(p))
}
