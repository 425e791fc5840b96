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
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	"github.com/dataferry/dataferry/internal/ent/generated/predicate"
	"github.com/dataferry/dataferry/internal/ent/generated/repository"
	"github.com/google/uuid"
	ulid "github.com/oklog/ulid/v2"
)

// LabUpdate is the builder for updating Lab entities.
type LabUpdate struct {
	config
	hooks    []Hook
	mutation *LabMutation
}

// Where appends a list predicates to the LabUpdate builder.
func (_u *LabUpdate) Where(ps ...predicate.Lab) *LabUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabUpdate) SetUpdatedAt(v time.Time) *LabUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *LabUpdate) SetName(v string) *LabUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LabUpdate) SetNillableName(v *string) *LabUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddRepositoryIDs adds the "repositories" edge to the Repository entity by IDs.
func (_u *LabUpdate) AddRepositoryIDs(ids ...ulid.ULID) *LabUpdate {
	_u.mutation.AddRepositoryIDs(ids...)
	return _u
}

// AddRepositories adds the "repositories" edges to the Repository entity.
func (_u *LabUpdate) AddRepositories(v ...*Repository) *LabUpdate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRepositoryIDs(ids...)
}

// AddDatasetIDs adds the "datasets" edge to the Dataset entity by IDs.
func (_u *LabUpdate) AddDatasetIDs(ids ...uuid.UUID) *LabUpdate {
	_u.mutation.AddDatasetIDs(ids...)
	return _u
}

// AddDatasets adds the "datasets" edges to the Dataset entity.
func (_u *LabUpdate) AddDatasets(v ...*Dataset) *LabUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDatasetIDs(ids...)
}

// Mutation returns the LabMutation object of the builder.
func (_u *LabUpdate) Mutation() *LabMutation {
	return _u.mutation
}

// ClearRepositories clears all "repositories" edges to the Repository entity.
func (_u *LabUpdate) ClearRepositories() *LabUpdate {
	_u.mutation.ClearRepositories()
	return _u
}

// RemoveRepositoryIDs removes the "repositories" edge to Repository entities by IDs.
func (_u *LabUpdate) RemoveRepositoryIDs(ids ...ulid.ULID) *LabUpdate {
	_u.mutation.RemoveRepositoryIDs(ids...)
	return _u
}

// RemoveRepositories removes "repositories" edges to Repository entities.
func (_u *LabUpdate) RemoveRepositories(v ...*Repository) *LabUpdate {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRepositoryIDs(ids...)
}

// ClearDatasets clears all "datasets" edges to the Dataset entity.
func (_u *LabUpdate) ClearDatasets() *LabUpdate {
	_u.mutation.ClearDatasets()
	return _u
}

// RemoveDatasetIDs removes the "datasets" edge to Dataset entities by IDs.
func (_u *LabUpdate) RemoveDatasetIDs(ids ...uuid.UUID) *LabUpdate {
	_u.mutation.RemoveDatasetIDs(ids...)
	return _u
}

// RemoveDatasets removes "datasets" edges to Dataset entities.
func (_u *LabUpdate) RemoveDatasets(v ...*Dataset) *LabUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDatasetIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LabUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LabUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lab.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lab.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "Lab.name": %w`, err)}
		}
	}
	return nil
}

func (_u *LabUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lab.Table, lab.Columns, sqlgraph.NewFieldSpec(lab.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lab.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lab.FieldName, field.TypeString, value)
	}
	if _u.mutation.RepositoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.RepositoriesTable,
			Columns: []string{lab.RepositoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepositoriesIDs(); len(nodes) > 0 && !_u.mutation.RepositoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.RepositoriesTable,
			Columns: []string{lab.RepositoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepositoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.RepositoriesTable,
			Columns: []string{lab.RepositoriesColumn},
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
	if _u.mutation.DatasetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.DatasetsTable,
			Columns: []string{lab.DatasetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDatasetsIDs(); len(nodes) > 0 && !_u.mutation.DatasetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.DatasetsTable,
			Columns: []string{lab.DatasetsColumn},
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
	if nodes := _u.mutation.DatasetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.DatasetsTable,
			Columns: []string{lab.DatasetsColumn},
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
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lab.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LabUpdateOne is the builder for updating a single Lab entity.
type LabUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LabMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LabUpdateOne) SetUpdatedAt(v time.Time) *LabUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *LabUpdateOne) SetName(v string) *LabUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *LabUpdateOne) SetNillableName(v *string) *LabUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// AddRepositoryIDs adds the "repositories" edge to the Repository entity by IDs.
func (_u *LabUpdateOne) AddRepositoryIDs(ids ...ulid.ULID) *LabUpdateOne {
	_u.mutation.AddRepositoryIDs(ids...)
	return _u
}

// AddRepositories adds the "repositories" edges to the Repository entity.
func (_u *LabUpdateOne) AddRepositories(v ...*Repository) *LabUpdateOne {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRepositoryIDs(ids...)
}

// AddDatasetIDs adds the "datasets" edge to the Dataset entity by IDs.
func (_u *LabUpdateOne) AddDatasetIDs(ids ...uuid.UUID) *LabUpdateOne {
	_u.mutation.AddDatasetIDs(ids...)
	return _u
}

// AddDatasets adds the "datasets" edges to the Dataset entity.
func (_u *LabUpdateOne) AddDatasets(v ...*Dataset) *LabUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDatasetIDs(ids...)
}

// Mutation returns the LabMutation object of the builder.
func (_u *LabUpdateOne) Mutation() *LabMutation {
	return _u.mutation
}

// ClearRepositories clears all "repositories" edges to the Repository entity.
func (_u *LabUpdateOne) ClearRepositories() *LabUpdateOne {
	_u.mutation.ClearRepositories()
	return _u
}

// RemoveRepositoryIDs removes the "repositories" edge to Repository entities by IDs.
func (_u *LabUpdateOne) RemoveRepositoryIDs(ids ...ulid.ULID) *LabUpdateOne {
	_u.mutation.RemoveRepositoryIDs(ids...)
	return _u
}

// RemoveRepositories removes "repositories" edges to Repository entities.
func (_u *LabUpdateOne) RemoveRepositories(v ...*Repository) *LabUpdateOne {
	ids := make([]ulid.ULID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRepositoryIDs(ids...)
}

// ClearDatasets clears all "datasets" edges to the Dataset entity.
func (_u *LabUpdateOne) ClearDatasets() *LabUpdateOne {
	_u.mutation.ClearDatasets()
	return _u
}

// RemoveDatasetIDs removes the "datasets" edge to Dataset entities by IDs.
func (_u *LabUpdateOne) RemoveDatasetIDs(ids ...uuid.UUID) *LabUpdateOne {
	_u.mutation.RemoveDatasetIDs(ids...)
	return _u
}

// RemoveDatasets removes "datasets" edges to Dataset entities.
func (_u *LabUpdateOne) RemoveDatasets(v ...*Dataset) *LabUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDatasetIDs(ids...)
}

// Where appends a list predicates to the LabUpdate builder.
func (_u *LabUpdateOne) Where(ps ...predicate.Lab) *LabUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LabUpdateOne) Select(field string, fields ...string) *LabUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Lab entity.
func (_u *LabUpdateOne) Save(ctx context.Context) (*Lab, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LabUpdateOne) SaveX(ctx context.Context) *Lab {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LabUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LabUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LabUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lab.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LabUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := lab.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`generated: validator failed for field "Lab.name": %w`, err)}
		}
	}
	return nil
}

func (_u *LabUpdateOne) sqlSave(ctx context.Context) (_node *Lab, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lab.Table, lab.Columns, sqlgraph.NewFieldSpec(lab.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "Lab.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lab.FieldID)
		for _, f := range fields {
			if !lab.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != lab.FieldID {
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
		_spec.SetField(lab.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(lab.FieldName, field.TypeString, value)
	}
	if _u.mutation.RepositoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.RepositoriesTable,
			Columns: []string{lab.RepositoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRepositoriesIDs(); len(nodes) > 0 && !_u.mutation.RepositoriesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.RepositoriesTable,
			Columns: []string{lab.RepositoriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(repository.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RepositoriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.RepositoriesTable,
			Columns: []string{lab.RepositoriesColumn},
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
	if _u.mutation.DatasetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.DatasetsTable,
			Columns: []string{lab.DatasetsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dataset.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDatasetsIDs(); len(nodes) > 0 && !_u.mutation.DatasetsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.DatasetsTable,
			Columns: []string{lab.DatasetsColumn},
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
	if nodes := _u.mutation.DatasetsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   lab.DatasetsTable,
			Columns: []string{lab.DatasetsColumn},
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
	_node = &Lab{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lab.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
