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
	"github.com/dataferry/dataferry/internal/ent/generated/event"
	ulid "github.com/oklog/ulid/v2"
)

// EventCreate is the builder for creating a Event entity.
type EventCreate struct {
	config
	mutation *EventMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetType sets the "type" field.
func (_c *EventCreate) SetType(v string) *EventCreate {
	_c.mutation.SetType(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *EventCreate) SetMessage(v string) *EventCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *EventCreate) SetNillableMessage(v *string) *EventCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetSubjectType sets the "subject_type" field.
func (_c *EventCreate) SetSubjectType(v event.SubjectType) *EventCreate {
	_c.mutation.SetSubjectType(v)
	return _c
}

// SetNillableSubjectType sets the "subject_type" field if the given value is not nil.
func (_c *EventCreate) SetNillableSubjectType(v *event.SubjectType) *EventCreate {
	if v != nil {
		_c.SetSubjectType(*v)
	}
	return _c
}

// SetSubjectID sets the "subject_id" field.
func (_c *EventCreate) SetSubjectID(v string) *EventCreate {
	_c.mutation.SetSubjectID(v)
	return _c
}

// SetNillableSubjectID sets the "subject_id" field if the given value is not nil.
func (_c *EventCreate) SetNillableSubjectID(v *string) *EventCreate {
	if v != nil {
		_c.SetSubjectID(*v)
	}
	return _c
}

// SetRepositoryName sets the "repository_name" field.
func (_c *EventCreate) SetRepositoryName(v string) *EventCreate {
	_c.mutation.SetRepositoryName(v)
	return _c
}

// SetNillableRepositoryName sets the "repository_name" field if the given value is not nil.
func (_c *EventCreate) SetNillableRepositoryName(v *string) *EventCreate {
	if v != nil {
		_c.SetRepositoryName(*v)
	}
	return _c
}

// SetDetails sets the "details" field.
func (_c *EventCreate) SetDetails(v string) *EventCreate {
	_c.mutation.SetDetails(v)
	return _c
}

// SetNillableDetails sets the "details" field if the given value is not nil.
func (_c *EventCreate) SetNillableDetails(v *string) *EventCreate {
	if v != nil {
		_c.SetDetails(*v)
	}
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *EventCreate) SetTimestamp(v time.Time) *EventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EventCreate) SetCreatedAt(v time.Time) *EventCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetID sets the "id" field.
func (_c *EventCreate) SetID(v ulid.ULID) *EventCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EventCreate) SetNillableID(v *ulid.ULID) *EventCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EventMutation object of the builder.
func (_c *EventCreate) Mutation() *EventMutation {
	return _c.mutation
}

// Save creates the Event in the database.
func (_c *EventCreate) Save(ctx context.Context) (*Event, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EventCreate) SaveX(ctx context.Context) *Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EventCreate) defaults() {
	if _, ok := _c.mutation.Message(); !ok {
		v := event.DefaultMessage
		_c.mutation.SetMessage(v)
	}
	if _, ok := _c.mutation.SubjectType(); !ok {
		v := event.DefaultSubjectType
		_c.mutation.SetSubjectType(v)
	}
	if _, ok := _c.mutation.RepositoryName(); !ok {
		v := event.DefaultRepositoryName
		_c.mutation.SetRepositoryName(v)
	}
	if _, ok := _c.mutation.Details(); !ok {
		v := event.DefaultDetails
		_c.mutation.SetDetails(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := event.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EventCreate) check() error {
	if _, ok := _c.mutation.GetType(); !ok {
		return &ValidationError{Name: "type", err: errors.New(`generated: missing required field "Event.type"`)}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`generated: missing required field "Event.message"`)}
	}
	if _, ok := _c.mutation.SubjectType(); !ok {
		return &ValidationError{Name: "subject_type", err: errors.New(`generated: missing required field "Event.subject_type"`)}
	}
	if v, ok := _c.mutation.SubjectType(); ok {
		if err := event.SubjectTypeValidator(v); err != nil {
			return &ValidationError{Name: "subject_type", err: fmt.Errorf(`generated: validator failed for field "Event.subject_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RepositoryName(); !ok {
		return &ValidationError{Name: "repository_name", err: errors.New(`generated: missing required field "Event.repository_name"`)}
	}
	if _, ok := _c.mutation.Details(); !ok {
		return &ValidationError{Name: "details", err: errors.New(`generated: missing required field "Event.details"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`generated: missing required field "Event.timestamp"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Event.created_at"`)}
	}
	return nil
}

func (_c *EventCreate) sqlSave(ctx context.Context) (*Event, error) {
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

func (_c *EventCreate) createSpec() (*Event, *sqlgraph.CreateSpec) {
	var (
		_node = &Event{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(event.Table, sqlgraph.NewFieldSpec(event.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.GetType(); ok {
		_spec.SetField(event.FieldType, field.TypeString, value)
		_node.Type = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(event.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.SubjectType(); ok {
		_spec.SetField(event.FieldSubjectType, field.TypeEnum, value)
		_node.SubjectType = value
	}
	if value, ok := _c.mutation.SubjectID(); ok {
		_spec.SetField(event.FieldSubjectID, field.TypeString, value)
		_node.SubjectID = &value
	}
	if value, ok := _c.mutation.RepositoryName(); ok {
		_spec.SetField(event.FieldRepositoryName, field.TypeString, value)
		_node.RepositoryName = value
	}
	if value, ok := _c.mutation.Details(); ok {
		_spec.SetField(event.FieldDetails, field.TypeString, value)
		_node.Details = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(event.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(event.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.Create().
//		SetType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreate) OnConflict(opts ...sql.ConflictOption) *EventUpsertOne {
	_c.conflict = opts
	return &EventUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreate) OnConflictColumns(columns ...string) *EventUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertOne{
		create: _c,
	}
}

type (
	// EventUpsertOne is the builder for "upsert"-ing
	//  one Event node.
	EventUpsertOne struct {
		create *EventCreate
	}

	// EventUpsert is the "OnConflict" setter.
	EventUpsert struct {
		*sql.UpdateSet
	}
)

// SetType sets the "type" field.
func (u *EventUpsert) SetType(v string) *EventUpsert {
	u.Set(event.FieldType, v)
	return u
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EventUpsert) UpdateType() *EventUpsert {
	u.SetExcluded(event.FieldType)
	return u
}

// SetMessage sets the "message" field.
func (u *EventUpsert) SetMessage(v string) *EventUpsert {
	u.Set(event.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *EventUpsert) UpdateMessage() *EventUpsert {
	u.SetExcluded(event.FieldMessage)
	return u
}

// SetSubjectType sets the "subject_type" field.
func (u *EventUpsert) SetSubjectType(v event.SubjectType) *EventUpsert {
	u.Set(event.FieldSubjectType, v)
	return u
}

// UpdateSubjectType sets the "subject_type" field to the value that was provided on create.
func (u *EventUpsert) UpdateSubjectType() *EventUpsert {
	u.SetExcluded(event.FieldSubjectType)
	return u
}

// SetSubjectID sets the "subject_id" field.
func (u *EventUpsert) SetSubjectID(v string) *EventUpsert {
	u.Set(event.FieldSubjectID, v)
	return u
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *EventUpsert) UpdateSubjectID() *EventUpsert {
	u.SetExcluded(event.FieldSubjectID)
	return u
}

// ClearSubjectID clears the value of the "subject_id" field.
func (u *EventUpsert) ClearSubjectID() *EventUpsert {
	u.SetNull(event.FieldSubjectID)
	return u
}

// SetRepositoryName sets the "repository_name" field.
func (u *EventUpsert) SetRepositoryName(v string) *EventUpsert {
	u.Set(event.FieldRepositoryName, v)
	return u
}

// UpdateRepositoryName sets the "repository_name" field to the value that was provided on create.
func (u *EventUpsert) UpdateRepositoryName() *EventUpsert {
	u.SetExcluded(event.FieldRepositoryName)
	return u
}

// SetDetails sets the "details" field.
func (u *EventUpsert) SetDetails(v string) *EventUpsert {
	u.Set(event.FieldDetails, v)
	return u
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *EventUpsert) UpdateDetails() *EventUpsert {
	u.SetExcluded(event.FieldDetails)
	return u
}

// SetTimestamp sets the "timestamp" field.
func (u *EventUpsert) SetTimestamp(v time.Time) *EventUpsert {
	u.Set(event.FieldTimestamp, v)
	return u
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *EventUpsert) UpdateTimestamp() *EventUpsert {
	u.SetExcluded(event.FieldTimestamp)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *EventUpsert) SetCreatedAt(v time.Time) *EventUpsert {
	u.Set(event.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EventUpsert) UpdateCreatedAt() *EventUpsert {
	u.SetExcluded(event.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertOne) UpdateNewValues() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(event.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EventUpsertOne) Ignore() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertOne) DoNothing() *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreate.OnConflict
// documentation for more info.
func (u *EventUpsertOne) Update(set func(*EventUpsert)) *EventUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *EventUpsertOne) SetType(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateType() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateType()
	})
}

// SetMessage sets the "message" field.
func (u *EventUpsertOne) SetMessage(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateMessage() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMessage()
	})
}

// SetSubjectType sets the "subject_type" field.
func (u *EventUpsertOne) SetSubjectType(v event.SubjectType) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetSubjectType(v)
	})
}

// UpdateSubjectType sets the "subject_type" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateSubjectType() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSubjectType()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *EventUpsertOne) SetSubjectID(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateSubjectID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSubjectID()
	})
}

// ClearSubjectID clears the value of the "subject_id" field.
func (u *EventUpsertOne) ClearSubjectID() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.ClearSubjectID()
	})
}

// SetRepositoryName sets the "repository_name" field.
func (u *EventUpsertOne) SetRepositoryName(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetRepositoryName(v)
	})
}

// UpdateRepositoryName sets the "repository_name" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateRepositoryName() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRepositoryName()
	})
}

// SetDetails sets the "details" field.
func (u *EventUpsertOne) SetDetails(v string) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateDetails() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDetails()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *EventUpsertOne) SetTimestamp(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateTimestamp() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTimestamp()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EventUpsertOne) SetCreatedAt(v time.Time) *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EventUpsertOne) UpdateCreatedAt() *EventUpsertOne {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for EventCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EventUpsertOne) ID(ctx context.Context) (id ulid.ULID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("generated: EventUpsertOne.ID is not supported by MySQL driver. Use EventUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EventUpsertOne) IDX(ctx context.Context) ulid.ULID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EventCreateBulk is the builder for creating many Event entities in bulk.
type EventCreateBulk struct {
	config
	err      error
	builders []*EventCreate
	conflict []sql.ConflictOption
}

// Save creates the Event entities in the database.
func (_c *EventCreateBulk) Save(ctx context.Context) ([]*Event, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Event, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EventMutation)
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
func (_c *EventCreateBulk) SaveX(ctx context.Context) []*Event {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Event.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EventUpsert) {
//			SetType(v+v).
//		}).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflict(opts ...sql.ConflictOption) *EventUpsertBulk {
	_c.conflict = opts
	return &EventUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EventCreateBulk) OnConflictColumns(columns ...string) *EventUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EventUpsertBulk{
		create: _c,
	}
}

// EventUpsertBulk is the builder for "upsert"-ing
// a bulk of Event nodes.
type EventUpsertBulk struct {
	create *EventCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(event.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EventUpsertBulk) UpdateNewValues() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(event.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Event.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EventUpsertBulk) Ignore() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EventUpsertBulk) DoNothing() *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EventCreateBulk.OnConflict
// documentation for more info.
func (u *EventUpsertBulk) Update(set func(*EventUpsert)) *EventUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EventUpsert{UpdateSet: update})
	}))
	return u
}

// SetType sets the "type" field.
func (u *EventUpsertBulk) SetType(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetType(v)
	})
}

// UpdateType sets the "type" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateType() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateType()
	})
}

// SetMessage sets the "message" field.
func (u *EventUpsertBulk) SetMessage(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateMessage() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateMessage()
	})
}

// SetSubjectType sets the "subject_type" field.
func (u *EventUpsertBulk) SetSubjectType(v event.SubjectType) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetSubjectType(v)
	})
}

// UpdateSubjectType sets the "subject_type" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateSubjectType() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSubjectType()
	})
}

// SetSubjectID sets the "subject_id" field.
func (u *EventUpsertBulk) SetSubjectID(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetSubjectID(v)
	})
}

// UpdateSubjectID sets the "subject_id" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateSubjectID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateSubjectID()
	})
}

// ClearSubjectID clears the value of the "subject_id" field.
func (u *EventUpsertBulk) ClearSubjectID() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.ClearSubjectID()
	})
}

// SetRepositoryName sets the "repository_name" field.
func (u *EventUpsertBulk) SetRepositoryName(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetRepositoryName(v)
	})
}

// UpdateRepositoryName sets the "repository_name" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateRepositoryName() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateRepositoryName()
	})
}

// SetDetails sets the "details" field.
func (u *EventUpsertBulk) SetDetails(v string) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetDetails(v)
	})
}

// UpdateDetails sets the "details" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateDetails() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateDetails()
	})
}

// SetTimestamp sets the "timestamp" field.
func (u *EventUpsertBulk) SetTimestamp(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetTimestamp(v)
	})
}

// UpdateTimestamp sets the "timestamp" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateTimestamp() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateTimestamp()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *EventUpsertBulk) SetCreatedAt(v time.Time) *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *EventUpsertBulk) UpdateCreatedAt() *EventUpsertBulk {
	return u.Update(func(s *EventUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *EventUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("generated: OnConflict was set for builder %d. Set it on the EventCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("generated: missing options for EventCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EventUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
