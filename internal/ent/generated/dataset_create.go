// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dataferry/dataferry/internal/ent/generated/dataset"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	"github.com/google/uuid"
	ulid "github.com/oklog/ulid/v2"
)

// DatasetCreate is the builder for creating a Dataset entity.
type DatasetCreate struct {
	config
	mutation *DatasetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *DatasetCreate) SetCreatedAt(v time.Time) *DatasetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableCreatedAt(v *time.Time) *DatasetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DatasetCreate) SetUpdatedAt(v time.Time) *DatasetCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableUpdatedAt(v *time.Time) *DatasetCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *DatasetCreate) SetName(v string) *DatasetCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetFileSize sets the "file_size" field.
func (_c *DatasetCreate) SetFileSize(v int64) *DatasetCreate {
	_c.mutation.SetFileSize(v)
	return _c
}

// SetNillableFileSize sets the "file_size" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableFileSize(v *int64) *DatasetCreate {
	if v != nil {
		_c.SetFileSize(*v)
	}
	return _c
}

// SetHash sets the "hash" field.
func (_c *DatasetCreate) SetHash(v string) *DatasetCreate {
	_c.mutation.SetHash(v)
	return _c
}

// SetNillableHash sets the "hash" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableHash(v *string) *DatasetCreate {
	if v != nil {
		_c.SetHash(*v)
	}
	return _c
}

// SetRevision sets the "revision" field.
func (_c *DatasetCreate) SetRevision(v string) *DatasetCreate {
	_c.mutation.SetRevision(v)
	return _c
}

// SetNillableRevision sets the "revision" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableRevision(v *string) *DatasetCreate {
	if v != nil {
		_c.SetRevision(*v)
	}
	return _c
}

// SetIsDefaultRevision sets the "is_default_revision" field.
func (_c *DatasetCreate) SetIsDefaultRevision(v bool) *DatasetCreate {
	_c.mutation.SetIsDefaultRevision(v)
	return _c
}

// SetNillableIsDefaultRevision sets the "is_default_revision" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableIsDefaultRevision(v *bool) *DatasetCreate {
	if v != nil {
		_c.SetIsDefaultRevision(*v)
	}
	return _c
}

// SetProtected sets the "protected" field.
func (_c *DatasetCreate) SetProtected(v bool) *DatasetCreate {
	_c.mutation.SetProtected(v)
	return _c
}

// SetNillableProtected sets the "protected" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableProtected(v *bool) *DatasetCreate {
	if v != nil {
		_c.SetProtected(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *DatasetCreate) SetParentID(v uuid.UUID) *DatasetCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableParentID(v *uuid.UUID) *DatasetCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetLabID sets the "lab_id" field.
func (_c *DatasetCreate) SetLabID(v ulid.ULID) *DatasetCreate {
	_c.mutation.SetLabID(v)
	return _c
}

// SetNillableLabID sets the "lab_id" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableLabID(v *ulid.ULID) *DatasetCreate {
	if v != nil {
		_c.SetLabID(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DatasetCreate) SetID(v uuid.UUID) *DatasetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DatasetCreate) SetNillableID(v *uuid.UUID) *DatasetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetParent sets the "parent" edge to the Dataset entity.
func (_c *DatasetCreate) SetParent(v *Dataset) *DatasetCreate {
	return _c.SetParentID(v.ID)
}

// AddChildIDs adds the "children" edge to the Dataset entity by IDs.
func (_c *DatasetCreate) AddChildIDs(ids ...uuid.UUID) *DatasetCreate {
	_c.mutation.AddChildIDs(ids...)
	return _c
}

// AddChildren adds the "children" edges to the Dataset entity.
func (_c *DatasetCreate) AddChildren(v ...*Dataset) *DatasetCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddChildIDs(ids...)
}

// SetLab sets the "lab" edge to the Lab entity.
func (_c *DatasetCreate) SetLab(v *Lab) *DatasetCreate {
	return _c.SetLabID(v.ID)
}

// AddFileRecordIDs adds the "file_records" edge to the FileRecord entity by IDs.
func (_c *DatasetCreate) AddFileRecordIDs(ids ...ulid.ULID) *DatasetCreate {
	_c.mutation.AddFileRecordIDs(ids...)
	return _c
}

// AddFileRecords adds the "file_records" edges to the FileRecord entity.
func (_c *DatasetCreate) AddFileRecords(v ...*FileRecord) *DatasetCreate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFileRecordIDs(ids...)
}

// Mutation returns the DatasetMutation object of the builder.
func (_c *DatasetCreate) Mutation() *DatasetMutation {
	return _c.mutation
}

// Save creates the Dataset in the database.
func (_c *DatasetCreate) Save(ctx context.Context) (*Dataset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DatasetCreate) SaveX(ctx context.Context) *Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DatasetCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := dataset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := dataset.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Hash(); !ok {
		v := dataset.DefaultHash
		_c.mutation.SetHash(v)
	}
	if _, ok := _c.mutation.Revision(); !ok {
		v := dataset.DefaultRevision
		_c.mutation.SetRevision(v)
	}
	if _, ok := _c.mutation.IsDefaultRevision(); !ok {
		v := dataset.DefaultIsDefaultRevision
		_c.mutation.SetIsDefaultRevision(v)
	}
	if _, ok := _c.mutation.Protected(); !ok {
		v := dataset.DefaultProtected
		_c.mutation.SetProtected(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := dataset.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DatasetCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Dataset.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "Dataset.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`generated: missing required field "Dataset.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := dataset.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "Dataset.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Hash(); !ok {
		return &ValidationError{Name: "hash", err: errors.New(`generated: missing required field "Dataset.hash"`)}
	}
	if _, ok := _c.mutation.Revision(); !ok {
		return &ValidationError{Name: "revision", err: errors.New(`generated: missing required field "Dataset.revision"`)}
	}
	if _, ok := _c.mutation.IsDefaultRevision(); !ok {
		return &ValidationError{Name: "is_default_revision", err: errors.New(`generated: missing required field "Dataset.is_default_revision"`)}
	}
	if _, ok := _c.mutation.Protected(); !ok {
		return &ValidationError{Name: "protected", err: errors.New(`generated: missing required field "Dataset.protected"`)}
	}
	return nil
}

func (_c *DatasetCreate) sqlSave(ctx context.Context) (*Dataset, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DatasetCreate) createSpec() (*Dataset, *sqlgraph.CreateSpec) {
	var (
		_node = &Dataset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dataset.Table, sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(dataset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(dataset.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(dataset.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.FileSize(); ok {
		_spec.SetField(dataset.FieldFileSize, field.TypeInt64, value)
		_node.FileSize = &value
	}
	if value, ok := _c.mutation.Hash(); ok {
		_spec.SetField(dataset.FieldHash, field.TypeString, value)
		_node.Hash = value
	}
	if value, ok := _c.mutation.Revision(); ok {
		_spec.SetField(dataset.FieldRevision, field.TypeString, value)
		_node.Revision = value
	}
	if value, ok := _c.mutation.IsDefaultRevision(); ok {
		_spec.SetField(dataset.FieldIsDefaultRevision, field.TypeBool, value)
		_node.IsDefaultRevision = value
	}
	if value, ok := _c.mutation.Protected(); ok {
		_spec.SetField(dataset.FieldProtected, field.TypeBool, value)
		_node.Protected = value
	}
	if nodes := _c.mutation.ParentIDs(); len(nodes) > 0 {
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
		_node.ParentID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ChildrenIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LabIDs(); len(nodes) > 0 {
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
		_node.LabID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FileRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Dataset.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DatasetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DatasetCreate) OnConflict(opts ...sql.ConflictOption) *DatasetUpsertOne {
	_c.conflict = opts
	return &DatasetUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Dataset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DatasetCreate) OnConflictColumns(columns ...string) *DatasetUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DatasetUpsertOne{
		create: _c,
	}
}

type (
	// DatasetUpsertOne is the builder for "upsert"-ing
	//  one Dataset node.
	DatasetUpsertOne struct {
		create *DatasetCreate
	}

	// DatasetUpsert is the "OnConflict" setter.
	DatasetUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *DatasetUpsert) SetUpdatedAt(v time.Time) *DatasetUpsert {
	u.Set(dataset.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateUpdatedAt() *DatasetUpsert {
	u.SetExcluded(dataset.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *DatasetUpsert) SetName(v string) *DatasetUpsert {
	u.Set(dataset.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateName() *DatasetUpsert {
	u.SetExcluded(dataset.FieldName)
	return u
}

// SetFileSize sets the "file_size" field.
func (u *DatasetUpsert) SetFileSize(v int64) *DatasetUpsert {
	u.Set(dataset.FieldFileSize, v)
	return u
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateFileSize() *DatasetUpsert {
	u.SetExcluded(dataset.FieldFileSize)
	return u
}

// AddFileSize adds v to the "file_size" field.
func (u *DatasetUpsert) AddFileSize(v int64) *DatasetUpsert {
	u.Add(dataset.FieldFileSize, v)
	return u
}

// ClearFileSize clears the value of the "file_size" field.
func (u *DatasetUpsert) ClearFileSize() *DatasetUpsert {
	u.SetNull(dataset.FieldFileSize)
	return u
}

// SetHash sets the "hash" field.
func (u *DatasetUpsert) SetHash(v string) *DatasetUpsert {
	u.Set(dataset.FieldHash, v)
	return u
}

// UpdateHash sets the "hash" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateHash() *DatasetUpsert {
	u.SetExcluded(dataset.FieldHash)
	return u
}

// SetRevision sets the "revision" field.
func (u *DatasetUpsert) SetRevision(v string) *DatasetUpsert {
	u.Set(dataset.FieldRevision, v)
	return u
}

// UpdateRevision sets the "revision" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateRevision() *DatasetUpsert {
	u.SetExcluded(dataset.FieldRevision)
	return u
}

// SetIsDefaultRevision sets the "is_default_revision" field.
func (u *DatasetUpsert) SetIsDefaultRevision(v bool) *DatasetUpsert {
	u.Set(dataset.FieldIsDefaultRevision, v)
	return u
}

// UpdateIsDefaultRevision sets the "is_default_revision" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateIsDefaultRevision() *DatasetUpsert {
	u.SetExcluded(dataset.FieldIsDefaultRevision)
	return u
}

// SetProtected sets the "protected" field.
func (u *DatasetUpsert) SetProtected(v bool) *DatasetUpsert {
	u.Set(dataset.FieldProtected, v)
	return u
}

// UpdateProtected sets the "protected" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateProtected() *DatasetUpsert {
	u.SetExcluded(dataset.FieldProtected)
	return u
}

// SetParentID sets the "parent_id" field.
func (u *DatasetUpsert) SetParentID(v uuid.UUID) *DatasetUpsert {
	u.Set(dataset.FieldParentID, v)
	return u
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateParentID() *DatasetUpsert {
	u.SetExcluded(dataset.FieldParentID)
	return u
}

// ClearParentID clears the value of the "parent_id" field.
func (u *DatasetUpsert) ClearParentID() *DatasetUpsert {
	u.SetNull(dataset.FieldParentID)
	return u
}

// SetLabID sets the "lab_id" field.
func (u *DatasetUpsert) SetLabID(v ulid.ULID) *DatasetUpsert {
	u.Set(dataset.FieldLabID, v)
	return u
}

// UpdateLabID sets the "lab_id" field to the value that was provided on create.
func (u *DatasetUpsert) UpdateLabID() *DatasetUpsert {
	u.SetExcluded(dataset.FieldLabID)
	return u
}

// ClearLabID clears the value of the "lab_id" field.
func (u *DatasetUpsert) ClearLabID() *DatasetUpsert {
	u.SetNull(dataset.FieldLabID)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Dataset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dataset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DatasetUpsertOne) UpdateNewValues() *DatasetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dataset.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(dataset.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Dataset.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DatasetUpsertOne) Ignore() *DatasetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DatasetUpsertOne) DoNothing() *DatasetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DatasetCreate.OnConflict
// documentation for more info.
func (u *DatasetUpsertOne) Update(set func(*DatasetUpsert)) *DatasetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DatasetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DatasetUpsertOne) SetUpdatedAt(v time.Time) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateUpdatedAt() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *DatasetUpsertOne) SetName(v string) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateName() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateName()
	})
}

// SetFileSize sets the "file_size" field.
func (u *DatasetUpsertOne) SetFileSize(v int64) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *DatasetUpsertOne) AddFileSize(v int64) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateFileSize() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateFileSize()
	})
}

// ClearFileSize clears the value of the "file_size" field.
func (u *DatasetUpsertOne) ClearFileSize() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearFileSize()
	})
}

// SetHash sets the "hash" field.
func (u *DatasetUpsertOne) SetHash(v string) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetHash(v)
	})
}

// UpdateHash sets the "hash" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateHash() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateHash()
	})
}

// SetRevision sets the "revision" field.
func (u *DatasetUpsertOne) SetRevision(v string) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetRevision(v)
	})
}

// UpdateRevision sets the "revision" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateRevision() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateRevision()
	})
}

// SetIsDefaultRevision sets the "is_default_revision" field.
func (u *DatasetUpsertOne) SetIsDefaultRevision(v bool) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetIsDefaultRevision(v)
	})
}

// UpdateIsDefaultRevision sets the "is_default_revision" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateIsDefaultRevision() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateIsDefaultRevision()
	})
}

// SetProtected sets the "protected" field.
func (u *DatasetUpsertOne) SetProtected(v bool) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetProtected(v)
	})
}

// UpdateProtected sets the "protected" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateProtected() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateProtected()
	})
}

// SetParentID sets the "parent_id" field.
func (u *DatasetUpsertOne) SetParentID(v uuid.UUID) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateParentID() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *DatasetUpsertOne) ClearParentID() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearParentID()
	})
}

// SetLabID sets the "lab_id" field.
func (u *DatasetUpsertOne) SetLabID(v ulid.ULID) *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.SetLabID(v)
	})
}

// UpdateLabID sets the "lab_id" field to the value that was provided on create.
func (u *DatasetUpsertOne) UpdateLabID() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateLabID()
	})
}

// ClearLabID clears the value of the "lab_id" field.
func (u *DatasetUpsertOne) ClearLabID() *DatasetUpsertOne {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearLabID()
	})
}

// Exec executes the query.
func (u *DatasetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for DatasetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DatasetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DatasetUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: DatasetUpsertOne.ID is not supported by MySQL driver. Use DatasetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DatasetUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DatasetCreateBulk is the builder for creating many Dataset entities in bulk.
type DatasetCreateBulk struct {
	config
	err      error
	builders []*DatasetCreate
	conflict []sql.ConflictOption
}

// Save creates the Dataset entities in the database.
func (_c *DatasetCreateBulk) Save(ctx context.Context) ([]*Dataset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Dataset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DatasetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DatasetCreateBulk) SaveX(ctx context.Context) []*Dataset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DatasetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DatasetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Dataset.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DatasetUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *DatasetCreateBulk) OnConflict(opts ...sql.ConflictOption) *DatasetUpsertBulk {
	_c.conflict = opts
	return &DatasetUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Dataset.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DatasetCreateBulk) OnConflictColumns(columns ...string) *DatasetUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DatasetUpsertBulk{
		create: _c,
	}
}

// DatasetUpsertBulk is the builder for "upsert"-ing
// a bulk of Dataset nodes.
type DatasetUpsertBulk struct {
	create *DatasetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Dataset.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dataset.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DatasetUpsertBulk) UpdateNewValues() *DatasetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dataset.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(dataset.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Dataset.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DatasetUpsertBulk) Ignore() *DatasetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DatasetUpsertBulk) DoNothing() *DatasetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DatasetCreateBulk.OnConflict
// documentation for more info.
func (u *DatasetUpsertBulk) Update(set func(*DatasetUpsert)) *DatasetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DatasetUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DatasetUpsertBulk) SetUpdatedAt(v time.Time) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateUpdatedAt() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *DatasetUpsertBulk) SetName(v string) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateName() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateName()
	})
}

// SetFileSize sets the "file_size" field.
func (u *DatasetUpsertBulk) SetFileSize(v int64) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetFileSize(v)
	})
}

// AddFileSize adds v to the "file_size" field.
func (u *DatasetUpsertBulk) AddFileSize(v int64) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.AddFileSize(v)
	})
}

// UpdateFileSize sets the "file_size" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateFileSize() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateFileSize()
	})
}

// ClearFileSize clears the value of the "file_size" field.
func (u *DatasetUpsertBulk) ClearFileSize() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearFileSize()
	})
}

// SetHash sets the "hash" field.
func (u *DatasetUpsertBulk) SetHash(v string) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetHash(v)
	})
}

// UpdateHash sets the "hash" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateHash() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateHash()
	})
}

// SetRevision sets the "revision" field.
func (u *DatasetUpsertBulk) SetRevision(v string) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetRevision(v)
	})
}

// UpdateRevision sets the "revision" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateRevision() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateRevision()
	})
}

// SetIsDefaultRevision sets the "is_default_revision" field.
func (u *DatasetUpsertBulk) SetIsDefaultRevision(v bool) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetIsDefaultRevision(v)
	})
}

// UpdateIsDefaultRevision sets the "is_default_revision" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateIsDefaultRevision() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateIsDefaultRevision()
	})
}

// SetProtected sets the "protected" field.
func (u *DatasetUpsertBulk) SetProtected(v bool) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetProtected(v)
	})
}

// UpdateProtected sets the "protected" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateProtected() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateProtected()
	})
}

// SetParentID sets the "parent_id" field.
func (u *DatasetUpsertBulk) SetParentID(v uuid.UUID) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetParentID(v)
	})
}

// UpdateParentID sets the "parent_id" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateParentID() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateParentID()
	})
}

// ClearParentID clears the value of the "parent_id" field.
func (u *DatasetUpsertBulk) ClearParentID() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearParentID()
	})
}

// SetLabID sets the "lab_id" field.
func (u *DatasetUpsertBulk) SetLabID(v ulid.ULID) *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.SetLabID(v)
	})
}

// UpdateLabID sets the "lab_id" field to the value that was provided on create.
func (u *DatasetUpsertBulk) UpdateLabID() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.UpdateLabID()
	})
}

// ClearLabID clears the value of the "lab_id" field.
func (u *DatasetUpsertBulk) ClearLabID() *DatasetUpsertBulk {
	return u.Update(func(s *DatasetUpsert) {
		s.ClearLabID()
	})
}

// Exec executes the query.
func (u *DatasetUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the DatasetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for DatasetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DatasetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
