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
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	"github.com/dataferry/dataferry/internal/ent/generated/predicate"
	"github.com/dataferry/dataferry/internal/ent/generated/repository"
	ulid "github.com/oklog/ulid/v2"
)

// RepositoryUpdate is the builder for updating Repository entities.
type RepositoryUpdate struct {
	config
	hooks    []Hook
	mutation *RepositoryMutation
}

// Where appends a list predicates to the RepositoryUpdate builder.
func (_u *RepositoryUpdate) Where(ps ...predicate.Repository) *RepositoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RepositoryUpdate) SetUpdatedAt(v time.Time) *RepositoryUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *RepositoryUpdate) SetName(v string) *RepositoryUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableName(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRootPath sets the "root_path" field.
func (_u *RepositoryUpdate) SetRootPath(v string) *RepositoryUpdate {
	_u.mutation.SetRootPath(v)
	return _u
}

// SetNillableRootPath sets the "root_path" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableRootPath(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetRootPath(*v)
	}
	return _u
}

// SetEndpointID sets the "endpoint_id" field.
func (_u *RepositoryUpdate) SetEndpointID(v string) *RepositoryUpdate {
	_u.mutation.SetEndpointID(v)
	return _u
}

// SetNillableEndpointID sets the "endpoint_id" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableEndpointID(v *string) *RepositoryUpdate {
	if v != nil {
		_u.SetEndpointID(*v)
	}
	return _u
}

// SetIsPersonal sets the "is_personal" field.
func (_u *RepositoryUpdate) SetIsPersonal(v bool) *RepositoryUpdate {
	_u.mutation.SetIsPersonal(v)
	return _u
}

// SetNillableIsPersonal sets the "is_personal" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableIsPersonal(v *bool) *RepositoryUpdate {
	if v != nil {
		_u.SetIsPersonal(*v)
	}
	return _u
}

// SetLabID sets the "lab_id" field.
func (_u *RepositoryUpdate) SetLabID(v ulid.ULID) *RepositoryUpdate {
	_u.mutation.SetLabID(v)
	return _u
}

// SetNillableLabID sets the "lab_id" field if the given value is not nil.
func (_u *RepositoryUpdate) SetNillableLabID(v *ulid.ULID) *RepositoryUpdate {
	if v != nil {
		_u.SetLabID(*v)
	}
	return _u
}

// ClearLabID clears the value of the "lab_id" field.
func (_u *RepositoryUpdate) ClearLabID() *RepositoryUpdate {
	_u.mutation.ClearLabID()
	return _u
}

// SetLab sets the "lab" edge to the Lab entity.
func (_u *RepositoryUpdate) SetLab(v *Lab) *RepositoryUpdate {
	return _u.SetLabID(v.ID)
}

// AddFileRecordIDs adds the "file_records" edge to the FileRecord entity by IDs.
func (_u *RepositoryUpdate) AddFileRecordIDs(ids ...ulid.ULID) *RepositoryUpdate {
	_u.mutation.AddFileRecordIDs(ids...)
	return _u
}

// AddFileRecords adds the "file_records" edges to the FileRecord entity.
func (_u *RepositoryUpdate) AddFileRecords(v ...*FileRecord) *RepositoryUpdate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileRecordIDs(ids...)
}

// Mutation returns the RepositoryMutation object of the builder.
func (_u *RepositoryUpdate) Mutation() *RepositoryMutation {
	return _u.mutation
}

// ClearLab clears the "lab" edge to the Lab entity.
func (_u *RepositoryUpdate) ClearLab() *RepositoryUpdate {
	_u.mutation.ClearLab()
	return _u
}

// ClearFileRecords clears all "file_records" edges to the FileRecord entity.
func (_u *RepositoryUpdate) ClearFileRecords() *RepositoryUpdate {
	_u.mutation.ClearFileRecords()
	return _u
}

// RemoveFileRecordIDs removes the "file_records" edge to FileRecord entities by IDs.
func (_u *RepositoryUpdate) RemoveFileRecordIDs(ids ...ulid.ULID) *RepositoryUpdate {
	_u.mutation.RemoveFileRecordIDs(ids...)
	return _u
}

// RemoveFileRecords removes "file_records" edges to FileRecord entities.
func (_u *RepositoryUpdate) RemoveFileRecords(v ...*FileRecord) *RepositoryUpdate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RepositoryUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepositoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RepositoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepositoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RepositoryUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := repository.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RepositoryUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := repository.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "Repository.name": %w`, err)}
		}
	}
	return nil
}

func (_u *RepositoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(repository.Table, repository.Columns, sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(repository.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(repository.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RootPath(); ok {
		_spec.SetField(repository.FieldRootPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndpointID(); ok {
		_spec.SetField(repository.FieldEndpointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPersonal(); ok {
		_spec.SetField(repository.FieldIsPersonal, field.TypeBool, value)
	}
	if _u.mutation.LabCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   repository.LabTable,
			Columns: []string{repository.LabColumn},
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
			Table:   repository.LabTable,
			Columns: []string{repository.LabColumn},
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
			Table:   repository.FileRecordsTable,
			Columns: []string{repository.FileRecordsColumn},
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
			Table:   repository.FileRecordsTable,
			Columns: []string{repository.FileRecordsColumn},
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
			Table:   repository.FileRecordsTable,
			Columns: []string{repository.FileRecordsColumn},
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
			err = &NotFoundError{repository.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RepositoryUpdateOne is the builder for updating a single Repository entity.
type RepositoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RepositoryMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RepositoryUpdateOne) SetUpdatedAt(v time.Time) *RepositoryUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *RepositoryUpdateOne) SetName(v string) *RepositoryUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableName(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetRootPath sets the "root_path" field.
func (_u *RepositoryUpdateOne) SetRootPath(v string) *RepositoryUpdateOne {
	_u.mutation.SetRootPath(v)
	return _u
}

// SetNillableRootPath sets the "root_path" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableRootPath(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetRootPath(*v)
	}
	return _u
}

// SetEndpointID sets the "endpoint_id" field.
func (_u *RepositoryUpdateOne) SetEndpointID(v string) *RepositoryUpdateOne {
	_u.mutation.SetEndpointID(v)
	return _u
}

// SetNillableEndpointID sets the "endpoint_id" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableEndpointID(v *string) *RepositoryUpdateOne {
	if v != nil {
		_u.SetEndpointID(*v)
	}
	return _u
}

// SetIsPersonal sets the "is_personal" field.
func (_u *RepositoryUpdateOne) SetIsPersonal(v bool) *RepositoryUpdateOne {
	_u.mutation.SetIsPersonal(v)
	return _u
}

// SetNillableIsPersonal sets the "is_personal" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableIsPersonal(v *bool) *RepositoryUpdateOne {
	if v != nil {
		_u.SetIsPersonal(*v)
	}
	return _u
}

// SetLabID sets the "lab_id" field.
func (_u *RepositoryUpdateOne) SetLabID(v ulid.ULID) *RepositoryUpdateOne {
	_u.mutation.SetLabID(v)
	return _u
}

// SetNillableLabID sets the "lab_id" field if the given value is not nil.
func (_u *RepositoryUpdateOne) SetNillableLabID(v *ulid.ULID) *RepositoryUpdateOne {
	if v != nil {
		_u.SetLabID(*v)
	}
	return _u
}

// ClearLabID clears the value of the "lab_id" field.
func (_u *RepositoryUpdateOne) ClearLabID() *RepositoryUpdateOne {
	_u.mutation.ClearLabID()
	return _u
}

// SetLab sets the "lab" edge to the Lab entity.
func (_u *RepositoryUpdateOne) SetLab(v *Lab) *RepositoryUpdateOne {
	return _u.SetLabID(v.ID)
}

// AddFileRecordIDs adds the "file_records" edge to the FileRecord entity by IDs.
func (_u *RepositoryUpdateOne) AddFileRecordIDs(ids ...ulid.ULID) *RepositoryUpdateOne {
	_u.mutation.AddFileRecordIDs(ids...)
	return _u
}

// AddFileRecords adds the "file_records" edges to the FileRecord entity.
func (_u *RepositoryUpdateOne) AddFileRecords(v ...*FileRecord) *RepositoryUpdateOne {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFileRecordIDs(ids...)
}

// Mutation returns the RepositoryMutation object of the builder.
func (_u *RepositoryUpdateOne) Mutation() *RepositoryMutation {
	return _u.mutation
}

// ClearLab clears the "lab" edge to the Lab entity.
func (_u *RepositoryUpdateOne) ClearLab() *RepositoryUpdateOne {
	_u.mutation.ClearLab()
	return _u
}

// ClearFileRecords clears all "file_records" edges to the FileRecord entity.
func (_u *RepositoryUpdateOne) ClearFileRecords() *RepositoryUpdateOne {
	_u.mutation.ClearFileRecords()
	return _u
}

// RemoveFileRecordIDs removes the "file_records" edge to FileRecord entities by IDs.
func (_u *RepositoryUpdateOne) RemoveFileRecordIDs(ids ...ulid.ULID) *RepositoryUpdateOne {
	_u.mutation.RemoveFileRecordIDs(ids...)
	return _u
}

// RemoveFileRecords removes "file_records" edges to FileRecord entities.
func (_u *RepositoryUpdateOne) RemoveFileRecords(v ...*FileRecord) *RepositoryUpdateOne {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFileRecordIDs(ids...)
}

// Where appends a list predicates to the RepositoryUpdate builder.
func (_u *RepositoryUpdateOne) Where(ps ...predicate.Repository) *RepositoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RepositoryUpdateOne) Select(field string, fields ...string) *RepositoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Repository entity.
func (_u *RepositoryUpdateOne) Save(ctx context.Context) (*Repository, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RepositoryUpdateOne) SaveX(ctx context.Context) *Repository {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RepositoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RepositoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RepositoryUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := repository.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RepositoryUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := repository.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "Repository.name": %w`, err)}
		}
	}
	return nil
}

func (_u *RepositoryUpdateOne) sqlSave(ctx context.Context) (_node *Repository, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(repository.Table, repository.Columns, sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Repository.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, repository.FieldID)
		for _, f := range fields {
			if !repository.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != repository.FieldID {
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
		_spec.SetField(repository.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(repository.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RootPath(); ok {
		_spec.SetField(repository.FieldRootPath, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndpointID(); ok {
		_spec.SetField(repository.FieldEndpointID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsPersonal(); ok {
		_spec.SetField(repository.FieldIsPersonal, field.TypeBool, value)
	}
	if _u.mutation.LabCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   repository.LabTable,
			Columns: []string{repository.LabColumn},
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
			Table:   repository.LabTable,
			Columns: []string{repository.LabColumn},
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
			Table:   repository.FileRecordsTable,
			Columns: []string{repository.FileRecordsColumn},
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
			Table:   repository.FileRecordsTable,
			Columns: []string{repository.FileRecordsColumn},
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
			Table:   repository.FileRecordsTable,
			Columns: []string{repository.FileRecordsColumn},
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
	_node = &Repository{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{repository.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
