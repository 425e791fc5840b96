// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dataferry/dataferry/internal/ent/generated/dataset"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	"github.com/dataferry/dataferry/internal/ent/generated/predicate"
	"github.com/google/uuid"
	ulid "github.com/oklog/ulid/v2"
)

// DatasetUpdate is the builder for updating Dataset entities.
type DatasetUpdate struct {
	config
	hooks    []Hook
	mutation *DatasetMutation
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdate) Where(ps ...predicate.Dataset) *DatasetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DatasetUpdate) SetUpdatedAt(v time.Time) *DatasetUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DatasetUpdate) SetName(v string) *DatasetUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableName(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DatasetUpdate) SetFileSize(v int64) *DatasetUpdate {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableFileSize(v *int64) *DatasetUpdate {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DatasetUpdate) AddFileSize(v int64) *DatasetUpdate {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *DatasetUpdate) ClearFileSize() *DatasetUpdate {
	_u.mutation.ClearFileSize()
	return _u
}

// SetHash sets the "hash" field.
func (_u *DatasetUpdate) SetHash(v string) *DatasetUpdate {
	_u.mutation.SetHash(v)
	return _u
}

// SetNillableHash sets the "hash" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableHash(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetHash(*v)
	}
	return _u
}

// SetRevision sets the "revision" field.
func (_u *DatasetUpdate) SetRevision(v string) *DatasetUpdate {
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableRevision(v *string) *DatasetUpdate {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// SetIsDefaultRevision sets the "is_default_revision" field.
func (_u *DatasetUpdate) SetIsDefaultRevision(v bool) *DatasetUpdate {
	_u.mutation.SetIsDefaultRevision(v)
	return _u
}

// SetNillableIsDefaultRevision sets the "is_default_revision" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableIsDefaultRevision(v *bool) *DatasetUpdate {
	if v != nil {
		_u.SetIsDefaultRevision(*v)
	}
	return _u
}

// SetProtected sets the "protected" field.
func (_u *DatasetUpdate) SetProtected(v bool) *DatasetUpdate {
	_u.mutation.SetProtected(v)
	return _u
}

// SetNillableProtected sets the "protected" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableProtected(v *bool) *DatasetUpdate {
	if v != nil {
		_u.SetProtected(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *DatasetUpdate) SetParentID(v uuid.UUID) *DatasetUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableParentID(v *uuid.UUID) *DatasetUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *DatasetUpdate) ClearParentID() *DatasetUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetLabID sets the "lab_id" field.
func (_u *DatasetUpdate) SetLabID(v ulid.ULID) *DatasetUpdate {
	_u.mutation.SetLabID(v)
	return _u
}

// SetNillableLabID sets the "lab_id" field if the given value is not nil.
func (_u *DatasetUpdate) SetNillableLabID(v *ulid.ULID) *DatasetUpdate {
	if v != nil {
		_u.SetLabID(*v)
	}
	return _u
}

// ClearLabID clears the value of the "lab_id" field.
func (_u *DatasetUpdate) ClearLabID() *DatasetUpdate {
	_u.mutation.ClearLabID()
	return _u
}

// SetParent sets the "parent" edge to the Dataset entity.
func (_u *DatasetUpdate) SetParent(v *Dataset) *DatasetUpdate {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Dataset entity by IDs.
func (_u *DatasetUpdate) AddChildIDs(ids ...uuid.UUID) *DatasetUpdate {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Dataset entity.
func (_u *DatasetUpdate) AddChildren(v ...*Dataset) *DatasetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// SetLab sets the "lab" edge to the Lab entity.
func (_u *DatasetUpdate) SetLab(v *Lab) *DatasetUpdate {
	return _u.SetLabID(v.ID)
}

// AddFileRecordIDs adds the "file_records" edge to the FileRecord entity by IDs.
func (_u *DatasetUpdate) AddFileRecordIDs(ids ...ulid.ULID) *DatasetUpdate {
	_u.mutation.AddFileRecordIDs(ids...)
	return _u
}

// AddFileRecords adds the "file_records" edges to the FileRecord entity.
func (_u *DatasetUpdate) AddFileRecords(v ...*FileRecord) *DatasetUpdate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileRecordIDs(ids...)
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdate) Mutation() *DatasetMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the Dataset entity.
func (_u *DatasetUpdate) ClearParent() *DatasetUpdate {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Dataset entity.
func (_u *DatasetUpdate) ClearChildren() *DatasetUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Dataset entities by IDs.
func (_u *DatasetUpdate) RemoveChildIDs(ids ...uuid.UUID) *DatasetUpdate {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Dataset entities.
func (_u *DatasetUpdate) RemoveChildren(v ...*Dataset) *DatasetUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearLab clears the "lab" edge to the Lab entity.
func (_u *DatasetUpdate) ClearLab() *DatasetUpdate {
	_u.mutation.ClearLab()
	return _u
}

// ClearFileRecords clears all "file_records" edges to the FileRecord entity.
func (_u *DatasetUpdate) ClearFileRecords() *DatasetUpdate {
	_u.mutation.ClearFileRecords()
	return _u
}

// RemoveFileRecordIDs removes the "file_records" edge to FileRecord entities by IDs.
func (_u *DatasetUpdate) RemoveFileRecordIDs(ids ...ulid.ULID) *DatasetUpdate {
	_u.mutation.RemoveFileRecordIDs(ids...)
	return _u
}

// RemoveFileRecords removes "file_records" edges to FileRecord entities.
func (_u *DatasetUpdate) RemoveFileRecords(v ...*FileRecord) *DatasetUpdate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DatasetUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DatasetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DatasetUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dataset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dataset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dataset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(dataset.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(dataset.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(dataset.FieldFileSize, field.TypeInt64)
	}
	if value, ok := _u.mutation.Hash(); ok {
		_spec.SetField(dataset.FieldHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(dataset.FieldRevision, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefaultRevision(); ok {
		_spec.SetField(dataset.FieldIsDefaultRevision, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Protected(); ok {
		_spec.SetField(dataset.FieldProtected, field.TypeBool, value)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataset.ParentTable,
			Columns: []string{dataset.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataset.ParentTable,
			Columns: []string{dataset.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.ChildrenTable,
			Columns: []string{dataset.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.ChildrenTable,
			Columns: []string{dataset.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.ChildrenTable,
			Columns: []string{dataset.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LabCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataset.LabTable,
			Columns: []string{dataset.LabColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lab.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataset.LabTable,
			Columns: []string{dataset.LabColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lab.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.FileRecordsTable,
			Columns: []string{dataset.FileRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFileRecordsIDs(); len(nodes) > 0 && !_u.mutation.FileRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.FileRecordsTable,
			Columns: []string{dataset.FileRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.FileRecordsTable,
			Columns: []string{dataset.FileRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DatasetUpdateOne is the builder for updating a single Dataset entity.
type DatasetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DatasetMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DatasetUpdateOne) SetUpdatedAt(v time.Time) *DatasetUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *DatasetUpdateOne) SetName(v string) *DatasetUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableName(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetFileSize sets the "file_size" field.
func (_u *DatasetUpdateOne) SetFileSize(v int64) *DatasetUpdateOne {
	_u.mutation.ResetFileSize()
	_u.mutation.SetFileSize(v)
	return _u
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableFileSize(v *int64) *DatasetUpdateOne {
	if v != nil {
		_u.SetFileSize(*v)
	}
	return _u
}

// AddFileSize adds value to the "file_size" field.
func (_u *DatasetUpdateOne) AddFileSize(v int64) *DatasetUpdateOne {
	_u.mutation.AddFileSize(v)
	return _u
}

// ClearFileSize clears the value of the "file_size" field.
func (_u *DatasetUpdateOne) ClearFileSize() *DatasetUpdateOne {
	_u.mutation.ClearFileSize()
	return _u
}

// SetHash sets the "hash" field.
func (_u *DatasetUpdateOne) SetHash(v string) *DatasetUpdateOne {
	_u.mutation.SetHash(v)
	return _u
}

// SetNillableHash sets the "hash" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableHash(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetHash(*v)
	}
	return _u
}

// SetRevision sets the "revision" field.
func (_u *DatasetUpdateOne) SetRevision(v string) *DatasetUpdateOne {
	_u.mutation.SetRevision(v)
	return _u
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableRevision(v *string) *DatasetUpdateOne {
	if v != nil {
		_u.SetRevision(*v)
	}
	return _u
}

// SetIsDefaultRevision sets the "is_default_revision" field.
func (_u *DatasetUpdateOne) SetIsDefaultRevision(v bool) *DatasetUpdateOne {
	_u.mutation.SetIsDefaultRevision(v)
	return _u
}

// SetNillableIsDefaultRevision sets the "is_default_revision" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableIsDefaultRevision(v *bool) *DatasetUpdateOne {
	if v != nil {
		_u.SetIsDefaultRevision(*v)
	}
	return _u
}

// SetProtected sets the "protected" field.
func (_u *DatasetUpdateOne) SetProtected(v bool) *DatasetUpdateOne {
	_u.mutation.SetProtected(v)
	return _u
}

// SetNillableProtected sets the "protected" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableProtected(v *bool) *DatasetUpdateOne {
	if v != nil {
		_u.SetProtected(*v)
	}
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *DatasetUpdateOne) SetParentID(v uuid.UUID) *DatasetUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableParentID(v *uuid.UUID) *DatasetUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *DatasetUpdateOne) ClearParentID() *DatasetUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetLabID sets the "lab_id" field.
func (_u *DatasetUpdateOne) SetLabID(v ulid.ULID) *DatasetUpdateOne {
	_u.mutation.SetLabID(v)
	return _u
}

// SetNillableLabID sets the "lab_id" field if the given value is not nil.
func (_u *DatasetUpdateOne) SetNillableLabID(v *ulid.ULID) *DatasetUpdateOne {
	if v != nil {
		_u.SetLabID(*v)
	}
	return _u
}

// ClearLabID clears the value of the "lab_id" field.
func (_u *DatasetUpdateOne) ClearLabID() *DatasetUpdateOne {
	_u.mutation.ClearLabID()
	return _u
}

// SetParent sets the "parent" edge to the Dataset entity.
func (_u *DatasetUpdateOne) SetParent(v *Dataset) *DatasetUpdateOne {
	return _u.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Dataset entity by IDs.
func (_u *DatasetUpdateOne) AddChildIDs(ids ...uuid.UUID) *DatasetUpdateOne {
	_u.mutation.AddChildIDs(ids...)
	return _u
}

// AddChildren adds the "children" edges to the Dataset entity.
func (_u *DatasetUpdateOne) AddChildren(v ...*Dataset) *DatasetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddChildIDs(ids...)
}

// SetLab sets the "lab" edge to the Lab entity.
func (_u *DatasetUpdateOne) SetLab(v *Lab) *DatasetUpdateOne {
	return _u.SetLabID(v.ID)
}

// AddFileRecordIDs adds the "file_records" edge to the FileRecord entity by IDs.
func (_u *DatasetUpdateOne) AddFileRecordIDs(ids ...ulid.ULID) *DatasetUpdateOne {
	_u.mutation.AddFileRecordIDs(ids...)
	return _u
}

// AddFileRecords adds the "file_records" edges to the FileRecord entity.
func (_u *DatasetUpdateOne) AddFileRecords(v ...*FileRecord) *DatasetUpdateOne {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileRecordIDs(ids...)
}

// Mutation returns the DatasetMutation object of the builder.
func (_u *DatasetUpdateOne) Mutation() *DatasetMutation {
	return _u.mutation
}

// ClearParent clears the "parent" edge to the Dataset entity.
func (_u *DatasetUpdateOne) ClearParent() *DatasetUpdateOne {
	_u.mutation.ClearParent()
	return _u
}

// ClearChildren clears all "children" edges to the Dataset entity.
func (_u *DatasetUpdateOne) ClearChildren() *DatasetUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// RemoveChildIDs removes the "children" edge to Dataset entities by IDs.
func (_u *DatasetUpdateOne) RemoveChildIDs(ids ...uuid.UUID) *DatasetUpdateOne {
	_u.mutation.RemoveChildIDs(ids...)
	return _u
}

// RemoveChildren removes "children" edges to Dataset entities.
func (_u *DatasetUpdateOne) RemoveChildren(v ...*Dataset) *DatasetUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveChildIDs(ids...)
}

// ClearLab clears the "lab" edge to the Lab entity.
func (_u *DatasetUpdateOne) ClearLab() *DatasetUpdateOne {
	_u.mutation.ClearLab()
	return _u
}

// ClearFileRecords clears all "file_records" edges to the FileRecord entity.
func (_u *DatasetUpdateOne) ClearFileRecords() *DatasetUpdateOne {
	_u.mutation.ClearFileRecords()
	return _u
}

// RemoveFileRecordIDs removes the "file_records" edge to FileRecord entities by IDs.
func (_u *DatasetUpdateOne) RemoveFileRecordIDs(ids ...ulid.ULID) *DatasetUpdateOne {
	_u.mutation.RemoveFileRecordIDs(ids...)
	return _u
}

// RemoveFileRecords removes "file_records" edges to FileRecord entities.
func (_u *DatasetUpdateOne) RemoveFileRecords(v ...*FileRecord) *DatasetUpdateOne {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileRecordIDs(ids...)
}

// Where appends a list predicates to the DatasetUpdate builder.
func (_u *DatasetUpdateOne) Where(ps ...predicate.Dataset) *DatasetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DatasetUpdateOne) Select(field string, fields ...string) *DatasetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Dataset entity.
func (_u *DatasetUpdateOne) Save(ctx context.Context) (*Dataset, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DatasetUpdateOne) SaveX(ctx context.Context) *Dataset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DatasetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DatasetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DatasetUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := dataset.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DatasetUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	return nil
}

func (_u *DatasetUpdateOne) sqlSave(ctx context.Context) (_node *Dataset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dataset.Table, dataset.Columns, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Dataset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dataset.FieldID)
		for _, f := range fields {
			if !dataset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != dataset.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(dataset.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(dataset.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.FileSize(); ok {
		_spec.SetField(dataset.FieldFileSize, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedFileSize(); ok {
		_spec.AddField(dataset.FieldFileSize, field.TypeInt64, value)
	}
	if _u.mutation.FileSizeCleared() {
		_spec.ClearField(dataset.FieldFileSize, field.TypeInt64)
	}
	if value, ok := _u.mutation.Hash(); ok {
		_spec.SetField(dataset.FieldHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Revision(); ok {
		_spec.SetField(dataset.FieldRevision, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsDefaultRevision(); ok {
		_spec.SetField(dataset.FieldIsDefaultRevision, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Protected(); ok {
		_spec.SetField(dataset.FieldProtected, field.TypeBool, value)
	}
	if _u.mutation.ParentCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataset.ParentTable,
			Columns: []string{dataset.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ParentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataset.ParentTable,
			Columns: []string{dataset.ParentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.ChildrenTable,
			Columns: []string{dataset.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedChildrenIDs(); len(nodes) > 0 && !_u.mutation.ChildrenCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.ChildrenTable,
			Columns: []string{dataset.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ChildrenIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.ChildrenTable,
			Columns: []string{dataset.ChildrenColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LabCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataset.LabTable,
			Columns: []string{dataset.LabColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lab.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dataset.LabTable,
			Columns: []string{dataset.LabColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lab.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FileRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.FileRecordsTable,
			Columns: []string{dataset.FileRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFileRecordsIDs(); len(nodes) > 0 && !_u.mutation.FileRecordsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.FileRecordsTable,
			Columns: []string{dataset.FileRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   dataset.FileRecordsTable,
			Columns: []string{dataset.FileRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Dataset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dataset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
