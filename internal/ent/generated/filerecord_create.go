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
	"github.com/dataferry/dataferry/internal/ent/generated/repository"
	"github.com/google/uuid"
	ulid "github.com/oklog/ulid/v2"
)

// FileRecordCreate is the builder for creating a FileRecord entity.
type FileRecordCreate struct {
	config
	mutation *FileRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *FileRecordCreate) SetCreatedAt(v time.Time) *FileRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FileRecordCreate) SetNillableCreatedAt(v *time.Time) *FileRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FileRecordCreate) SetUpdatedAt(v time.Time) *FileRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FileRecordCreate) SetNillableUpdatedAt(v *time.Time) *FileRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDatasetID sets the "dataset_id" field.
func (_c *FileRecordCreate) SetDatasetID(v uuid.UUID) *FileRecordCreate {
	_c.mutation.SetDatasetID(v)
	return _c
}

// SetRepositoryID sets the "repository_id" field.
func (_c *FileRecordCreate) SetRepositoryID(v ulid.ULID) *FileRecordCreate {
	_c.mutation.SetRepositoryID(v)
	return _c
}

// SetRelativePath sets the "relative_path" field.
func (_c *FileRecordCreate) SetRelativePath(v string) *FileRecordCreate {
	_c.mutation.SetRelativePath(v)
	return _c
}

// SetExists sets the "exists" field.
func (_c *FileRecordCreate) SetExists(v bool) *FileRecordCreate {
	_c.mutation.SetExists(v)
	return _c
}

// SetNillableExists sets the "exists" field if the given value is not nil.
func (_c *FileRecordCreate) SetNillableExists(v *bool) *FileRecordCreate {
	if v != nil {
		_c.SetExists(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *FileRecordCreate) SetStatus(v filerecord.Status) *FileRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *FileRecordCreate) SetNillableStatus(v *filerecord.Status) *FileRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FileRecordCreate) SetID(v ulid.ULID) *FileRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FileRecordCreate) SetNillableID(v *ulid.ULID) *FileRecordCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_c *FileRecordCreate) SetDataset(v *Dataset) *FileRecordCreate {
	return _c.SetDatasetID(v.ID)
}

// SetRepository sets the "repository" edge to the Repository entity.
func (_c *FileRecordCreate) SetRepository(v *Repository) *FileRecordCreate {
	return _c.SetRepositoryID(v.ID)
}

// Mutation returns the FileRecordMutation object of the builder.
func (_c *FileRecordCreate) Mutation() *FileRecordMutation {
	return _c.mutation
}

// Save creates the FileRecord in the database.
func (_c *FileRecordCreate) Save(ctx context.Context) (*FileRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FileRecordCreate) SaveX(ctx context.Context) *FileRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FileRecordCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := filerecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := filerecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Exists(); !ok {
		v := filerecord.DefaultExists
		_c.mutation.SetExists(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := filerecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := filerecord.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FileRecordCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "FileRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`generated: missing required field "FileRecord.updated_at"`)}
	}
	if _, ok := _c.mutation.DatasetID(); !ok {
		return &ValidationError{Name: "dataset_id", err: errors.New(`generated: missing required field "FileRecord.dataset_id"`)}
	}
	if _, ok := _c.mutation.RepositoryID(); !ok {
		return &ValidationError{Name: "repository_id", err: errors.New(`generated: missing required field "FileRecord.repository_id"`)}
	}
	if _, ok := _c.mutation.RelativePath(); !ok {
		return &ValidationError{Name: "relative_path", err: errors.New(`generated: missing required field "FileRecord.relative_path"`)}
	}
	if v, ok := _c.mutation.RelativePath(); ok {
		if err := filerecord.RelativePathValidator(v); err != nil {
			return &ValidationError{Name: "relative_path", err: fmt.Errorf(`generated: validator failed for field "FileRecord.relative_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Exists(); !ok {
		return &ValidationError{Name: "exists", err: errors.New(`generated: missing required field "FileRecord.exists"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`generated: missing required field "FileRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := filerecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "FileRecord.status": %w`, err)}
		}
	}
	if len(_c.mutation.DatasetIDs()) == 0 {
		return &ValidationError{Name: "dataset", err: errors.New(`generated: missing required edge "FileRecord.dataset"`)}
	}
	if len(_c.mutation.RepositoryIDs()) == 0 {
		return &ValidationError{Name: "repository", err: errors.New(`generated: missing required edge "FileRecord.repository"`)}
	}
	return nil
}

func (_c *FileRecordCreate) sqlSave(ctx context.Context) (*FileRecord, error) {
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
		if id, ok := _spec.ID.Value.(*ulid.ULID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FileRecordCreate) createSpec() (*FileRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &FileRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(filerecord.Table, sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(filerecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(filerecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.RelativePath(); ok {
		_spec.SetField(filerecord.FieldRelativePath, field.TypeString, value)
		_node.RelativePath = value
	}
	if value, ok := _c.mutation.Exists(); ok {
		_spec.SetField(filerecord.FieldExists, field.TypeBool, value)
		_node.Exists = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(filerecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if nodes := _c.mutation.DatasetIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   filerecord.DatasetTable,
			Columns: []string{filerecord.DatasetColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DatasetID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RepositoryIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   filerecord.RepositoryTable,
			Columns: []string{filerecord.RepositoryColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RepositoryID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FileRecord.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FileRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FileRecordCreate) OnConflict(opts ...sql.ConflictOption) *FileRecordUpsertOne {
	_c.conflict = opts
	return &FileRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FileRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FileRecordCreate) OnConflictColumns(columns ...string) *FileRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FileRecordUpsertOne{
		create: _c,
	}
}

type (
	// FileRecordUpsertOne is the builder for "upsert"-ing
	//  one FileRecord node.
	FileRecordUpsertOne struct {
		create *FileRecordCreate
	}

	// FileRecordUpsert is the "OnConflict" setter.
	FileRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *FileRecordUpsert) SetUpdatedAt(v time.Time) *FileRecordUpsert {
	u.Set(filerecord.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FileRecordUpsert) UpdateUpdatedAt() *FileRecordUpsert {
	u.SetExcluded(filerecord.FieldUpdatedAt)
	return u
}

// SetDatasetID sets the "dataset_id" field.
func (u *FileRecordUpsert) SetDatasetID(v uuid.UUID) *FileRecordUpsert {
	u.Set(filerecord.FieldDatasetID, v)
	return u
}

// UpdateDatasetID sets the "dataset_id" field to the value that was provided on create.
func (u *FileRecordUpsert) UpdateDatasetID() *FileRecordUpsert {
	u.SetExcluded(filerecord.FieldDatasetID)
	return u
}

// SetRepositoryID sets the "repository_id" field.
func (u *FileRecordUpsert) SetRepositoryID(v ulid.ULID) *FileRecordUpsert {
	u.Set(filerecord.FieldRepositoryID, v)
	return u
}

// UpdateRepositoryID sets the "repository_id" field to the value that was provided on create.
func (u *FileRecordUpsert) UpdateRepositoryID() *FileRecordUpsert {
	u.SetExcluded(filerecord.FieldRepositoryID)
	return u
}

// SetRelativePath sets the "relative_path" field.
func (u *FileRecordUpsert) SetRelativePath(v string) *FileRecordUpsert {
	u.Set(filerecord.FieldRelativePath, v)
	return u
}

// UpdateRelativePath sets the "relative_path" field to the value that was provided on create.
func (u *FileRecordUpsert) UpdateRelativePath() *FileRecordUpsert {
	u.SetExcluded(filerecord.FieldRelativePath)
	return u
}

// SetExists sets the "exists" field.
func (u *FileRecordUpsert) SetExists(v bool) *FileRecordUpsert {
	u.Set(filerecord.FieldExists, v)
	return u
}

// UpdateExists sets the "exists" field to the value that was provided on create.
func (u *FileRecordUpsert) UpdateExists() *FileRecordUpsert {
	u.SetExcluded(filerecord.FieldExists)
	return u
}

// SetStatus sets the "status" field.
func (u *FileRecordUpsert) SetStatus(v filerecord.Status) *FileRecordUpsert {
	u.Set(filerecord.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FileRecordUpsert) UpdateStatus() *FileRecordUpsert {
	u.SetExcluded(filerecord.FieldStatus)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.FileRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(filerecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FileRecordUpsertOne) UpdateNewValues() *FileRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(filerecord.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(filerecord.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FileRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *FileRecordUpsertOne) Ignore() *FileRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FileRecordUpsertOne) DoNothing() *FileRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FileRecordCreate.OnConflict
// documentation for more info.
func (u *FileRecordUpsertOne) Update(set func(*FileRecordUpsert)) *FileRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FileRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FileRecordUpsertOne) SetUpdatedAt(v time.Time) *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FileRecordUpsertOne) UpdateUpdatedAt() *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDatasetID sets the "dataset_id" field.
func (u *FileRecordUpsertOne) SetDatasetID(v uuid.UUID) *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetDatasetID(v)
	})
}

// UpdateDatasetID sets the "dataset_id" field to the value that was provided on create.
func (u *FileRecordUpsertOne) UpdateDatasetID() *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateDatasetID()
	})
}

// SetRepositoryID sets the "repository_id" field.
func (u *FileRecordUpsertOne) SetRepositoryID(v ulid.ULID) *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetRepositoryID(v)
	})
}

// UpdateRepositoryID sets the "repository_id" field to the value that was provided on create.
func (u *FileRecordUpsertOne) UpdateRepositoryID() *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateRepositoryID()
	})
}

// SetRelativePath sets the "relative_path" field.
func (u *FileRecordUpsertOne) SetRelativePath(v string) *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetRelativePath(v)
	})
}

// UpdateRelativePath sets the "relative_path" field to the value that was provided on create.
func (u *FileRecordUpsertOne) UpdateRelativePath() *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateRelativePath()
	})
}

// SetExists sets the "exists" field.
func (u *FileRecordUpsertOne) SetExists(v bool) *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetExists(v)
	})
}

// UpdateExists sets the "exists" field to the value that was provided on create.
func (u *FileRecordUpsertOne) UpdateExists() *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateExists()
	})
}

// SetStatus sets the "status" field.
func (u *FileRecordUpsertOne) SetStatus(v filerecord.Status) *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FileRecordUpsertOne) UpdateStatus() *FileRecordUpsertOne {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *FileRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for FileRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FileRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *FileRecordUpsertOne) ID(ctx context.Context) (id ulid.ULID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: FileRecordUpsertOne.ID is not supported by MySQL driver. Use FileRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *FileRecordUpsertOne) IDX(ctx context.Context) ulid.ULID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// FileRecordCreateBulk is the builder for creating many FileRecord entities in bulk.
type FileRecordCreateBulk struct {
	config
	err      error
	builders []*FileRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the FileRecord entities in the database.
func (_c *FileRecordCreateBulk) Save(ctx context.Context) ([]*FileRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FileRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FileRecordMutation)
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
func (_c *FileRecordCreateBulk) SaveX(ctx context.Context) []*FileRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FileRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FileRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.FileRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.FileRecordUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *FileRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *FileRecordUpsertBulk {
	_c.conflict = opts
	return &FileRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.FileRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *FileRecordCreateBulk) OnConflictColumns(columns ...string) *FileRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &FileRecordUpsertBulk{
		create: _c,
	}
}

// FileRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of FileRecord nodes.
type FileRecordUpsertBulk struct {
	create *FileRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.FileRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(filerecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *FileRecordUpsertBulk) UpdateNewValues() *FileRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(filerecord.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(filerecord.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.FileRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *FileRecordUpsertBulk) Ignore() *FileRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *FileRecordUpsertBulk) DoNothing() *FileRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the FileRecordCreateBulk.OnConflict
// documentation for more info.
func (u *FileRecordUpsertBulk) Update(set func(*FileRecordUpsert)) *FileRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&FileRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *FileRecordUpsertBulk) SetUpdatedAt(v time.Time) *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *FileRecordUpsertBulk) UpdateUpdatedAt() *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDatasetID sets the "dataset_id" field.
func (u *FileRecordUpsertBulk) SetDatasetID(v uuid.UUID) *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetDatasetID(v)
	})
}

// UpdateDatasetID sets the "dataset_id" field to the value that was provided on create.
func (u *FileRecordUpsertBulk) UpdateDatasetID() *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateDatasetID()
	})
}

// SetRepositoryID sets the "repository_id" field.
func (u *FileRecordUpsertBulk) SetRepositoryID(v ulid.ULID) *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetRepositoryID(v)
	})
}

// UpdateRepositoryID sets the "repository_id" field to the value that was provided on create.
func (u *FileRecordUpsertBulk) UpdateRepositoryID() *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateRepositoryID()
	})
}

// SetRelativePath sets the "relative_path" field.
func (u *FileRecordUpsertBulk) SetRelativePath(v string) *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetRelativePath(v)
	})
}

// UpdateRelativePath sets the "relative_path" field to the value that was provided on create.
func (u *FileRecordUpsertBulk) UpdateRelativePath() *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateRelativePath()
	})
}

// SetExists sets the "exists" field.
func (u *FileRecordUpsertBulk) SetExists(v bool) *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetExists(v)
	})
}

// UpdateExists sets the "exists" field to the value that was provided on create.
func (u *FileRecordUpsertBulk) UpdateExists() *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateExists()
	})
}

// SetStatus sets the "status" field.
func (u *FileRecordUpsertBulk) SetStatus(v filerecord.Status) *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *FileRecordUpsertBulk) UpdateStatus() *FileRecordUpsertBulk {
	return u.Update(func(s *FileRecordUpsert) {
		s.UpdateStatus()
	})
}

// Exec executes the query.
func (u *FileRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the FileRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for FileRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *FileRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
