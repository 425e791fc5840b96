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
	"github.com/dataferry/dataferry/internal/ent/generated/predicate"
	"github.com/dataferry/dataferry/internal/ent/generated/repository"
	"github.com/google/uuid"
	ulid "github.com/oklog/ulid/v2"
)

// FileRecordUpdate is the builder for updating FileRecord entities.
type FileRecordUpdate struct {
	config
	hooks    []Hook
	mutation *FileRecordMutation
}

// Where appends a list predicates to the FileRecordUpdate builder.
func (_u *FileRecordUpdate) Where(ps ...predicate.FileRecord) *FileRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FileRecordUpdate) SetUpdatedAt(v time.Time) *FileRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *FileRecordUpdate) SetDatasetID(v uuid.UUID) *FileRecordUpdate {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableDatasetID(v *uuid.UUID) *FileRecordUpdate {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetRepositoryID sets the "repository_id" field.
func (_u *FileRecordUpdate) SetRepositoryID(v ulid.ULID) *FileRecordUpdate {
	_u.mutation.SetRepositoryID(v)
	return _u
}

// SetNillableRepositoryID sets the "repository_id" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableRepositoryID(v *ulid.ULID) *FileRecordUpdate {
	if v != nil {
		_u.SetRepositoryID(*v)
	}
	return _u
}

// SetRelativePath sets the "relative_path" field.
func (_u *FileRecordUpdate) SetRelativePath(v string) *FileRecordUpdate {
	_u.mutation.SetRelativePath(v)
	return _u
}

// SetNillableRelativePath sets the "relative_path" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableRelativePath(v *string) *FileRecordUpdate {
	if v != nil {
		_u.SetRelativePath(*v)
	}
	return _u
}

// SetExists sets the "exists" field.
func (_u *FileRecordUpdate) SetExists(v bool) *FileRecordUpdate {
	_u.mutation.SetExists(v)
	return _u
}

// SetNillableExists sets the "exists" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableExists(v *bool) *FileRecordUpdate {
	if v != nil {
		_u.SetExists(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileRecordUpdate) SetStatus(v filerecord.Status) *FileRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileRecordUpdate) SetNillableStatus(v *filerecord.Status) *FileRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_u *FileRecordUpdate) SetDataset(v *Dataset) *FileRecordUpdate {
	return _u.SetDatasetID(v.ID)
}

// SetRepository sets the "repository" edge to the Repository entity.
func (_u *FileRecordUpdate) SetRepository(v *Repository) *FileRecordUpdate {
	return _u.SetRepositoryID(v.ID)
}

// Mutation returns the FileRecordMutation object of the builder.
func (_u *FileRecordUpdate) Mutation() *FileRecordMutation {
	return _u.mutation
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (_u *FileRecordUpdate) ClearDataset() *FileRecordUpdate {
	_u.mutation.ClearDataset()
	return _u
}

// ClearRepository clears the "repository" edge to the Repository entity.
func (_u *FileRecordUpdate) ClearRepository() *FileRecordUpdate {
	_u.mutation.ClearRepository()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FileRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FileRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FileRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := filerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileRecordUpdate) check() error {
	if v, ok := _u.mutation.RelativePath(); ok {
		if err := filerecord.RelativePathValidator(v); err != nil {
			return &ValidationError{Name: "relative_path", err: fmt.Errorf(`generated: validator failed for field "FileRecord.relative_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := filerecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "FileRecord.status": %w`, err)}
		}
	}
	if _u.mutation.DatasetCleared() && len(_u.mutation.DatasetIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "FileRecord.dataset"`)
	}
	if _u.mutation.RepositoryCleared() && len(_u.mutation.RepositoryIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "FileRecord.repository"`)
	}
	return nil
}

func (_u *FileRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filerecord.Table, filerecord.Columns, sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(filerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RelativePath(); ok {
		_spec.SetField(filerecord.FieldRelativePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exists(); ok {
		_spec.SetField(filerecord.FieldExists, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(filerecord.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.DatasetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RepositoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepositoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FileRecordUpdateOne is the builder for updating a single FileRecord entity.
type FileRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FileRecordMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FileRecordUpdateOne) SetUpdatedAt(v time.Time) *FileRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDatasetID sets the "dataset_id" field.
func (_u *FileRecordUpdateOne) SetDatasetID(v uuid.UUID) *FileRecordUpdateOne {
	_u.mutation.SetDatasetID(v)
	return _u
}

// SetNillableDatasetID sets the "dataset_id" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableDatasetID(v *uuid.UUID) *FileRecordUpdateOne {
	if v != nil {
		_u.SetDatasetID(*v)
	}
	return _u
}

// SetRepositoryID sets the "repository_id" field.
func (_u *FileRecordUpdateOne) SetRepositoryID(v ulid.ULID) *FileRecordUpdateOne {
	_u.mutation.SetRepositoryID(v)
	return _u
}

// SetNillableRepositoryID sets the "repository_id" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableRepositoryID(v *ulid.ULID) *FileRecordUpdateOne {
	if v != nil {
		_u.SetRepositoryID(*v)
	}
	return _u
}

// SetRelativePath sets the "relative_path" field.
func (_u *FileRecordUpdateOne) SetRelativePath(v string) *FileRecordUpdateOne {
	_u.mutation.SetRelativePath(v)
	return _u
}

// SetNillableRelativePath sets the "relative_path" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableRelativePath(v *string) *FileRecordUpdateOne {
	if v != nil {
		_u.SetRelativePath(*v)
	}
	return _u
}

// SetExists sets the "exists" field.
func (_u *FileRecordUpdateOne) SetExists(v bool) *FileRecordUpdateOne {
	_u.mutation.SetExists(v)
	return _u
}

// SetNillableExists sets the "exists" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableExists(v *bool) *FileRecordUpdateOne {
	if v != nil {
		_u.SetExists(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *FileRecordUpdateOne) SetStatus(v filerecord.Status) *FileRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *FileRecordUpdateOne) SetNillableStatus(v *filerecord.Status) *FileRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDataset sets the "dataset" edge to the Dataset entity.
func (_u *FileRecordUpdateOne) SetDataset(v *Dataset) *FileRecordUpdateOne {
	return _u.SetDatasetID(v.ID)
}

// SetRepository sets the "repository" edge to the Repository entity.
func (_u *FileRecordUpdateOne) SetRepository(v *Repository) *FileRecordUpdateOne {
	return _u.SetRepositoryID(v.ID)
}

// Mutation returns the FileRecordMutation object of the builder.
func (_u *FileRecordUpdateOne) Mutation() *FileRecordMutation {
	return _u.mutation
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (_u *FileRecordUpdateOne) ClearDataset() *FileRecordUpdateOne {
	_u.mutation.ClearDataset()
	return _u
}

// ClearRepository clears the "repository" edge to the Repository entity.
func (_u *FileRecordUpdateOne) ClearRepository() *FileRecordUpdateOne {
	_u.mutation.ClearRepository()
	return _u
}

// Where appends a list predicates to the FileRecordUpdate builder.
func (_u *FileRecordUpdateOne) Where(ps ...predicate.FileRecord) *FileRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FileRecordUpdateOne) Select(field string, fields ...string) *FileRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FileRecord entity.
func (_u *FileRecordUpdateOne) Save(ctx context.Context) (*FileRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FileRecordUpdateOne) SaveX(ctx context.Context) *FileRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FileRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FileRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FileRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := filerecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FileRecordUpdateOne) check() error {
	if v, ok := _u.mutation.RelativePath(); ok {
		if err := filerecord.RelativePathValidator(v); err != nil {
			return &ValidationError{Name: "relative_path", err: fmt.Errorf(`generated: validator failed for field "FileRecord.relative_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := filerecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`generated: validator failed for field "FileRecord.status": %w`, err)}
		}
	}
	if _u.mutation.DatasetCleared() && len(_u.mutation.DatasetIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "FileRecord.dataset"`)
	}
	if _u.mutation.RepositoryCleared() && len(_u.mutation.RepositoryIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "FileRecord.repository"`)
	}
	return nil
}

func (_u *FileRecordUpdateOne) sqlSave(ctx context.Context) (_node *FileRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(filerecord.Table, filerecord.Columns, sqlgraph.NewFieldSpec(filerecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "FileRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, filerecord.FieldID)
		for _, f := range fields {
			if !filerecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != filerecord.FieldID {
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
		_spec.SetField(filerecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.RelativePath(); ok {
		_spec.SetField(filerecord.FieldRelativePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exists(); ok {
		_spec.SetField(filerecord.FieldExists, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(filerecord.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.DatasetCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DatasetIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RepositoryCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepositoryIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &FileRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{filerecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
