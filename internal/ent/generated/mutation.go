// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dataferry/dataferry/internal/ent/generated/dataset"
	"github.com/dataferry/dataferry/internal/ent/generated/event"
	"github.com/dataferry/dataferry/internal/ent/generated/filerecord"
	"github.com/dataferry/dataferry/internal/ent/generated/lab"
	"github.com/dataferry/dataferry/internal/ent/generated/predicate"
	"github.com/dataferry/dataferry/internal/ent/generated/repository"
	"github.com/google/uuid"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeDataset    = "Dataset"
	TypeEvent      = "Event"
	TypeFileRecord = "FileRecord"
	TypeLab        = "Lab"
	TypeRepository = "Repository"
)

// DatasetMutation represents an operation that mutates the Dataset nodes in the graph.
type DatasetMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	created_at          *time.Time
	updated_at          *time.Time
	name                *string
	file_size           *int64
	addfile_size        *int64
	hash                *string
	revision            *string
	is_default_revision *bool
	protected           *bool
	clearedFields       map[string]struct{}
	parent              *uuid.UUID
	clearedparent       bool
	children            map[uuid.UUID]struct{}
	removedchildren     map[uuid.UUID]struct{}
	clearedchildren     bool
	lab                 *ulid.ULID
	clearedlab          bool
	file_records        map[ulid.ULID]struct{}
	removedfile_records map[ulid.ULID]struct{}
	clearedfile_records bool
	done                bool
	oldValue            func(context.Context) (*Dataset, error)
	predicates          []predicate.Dataset
}

var _ ent.Mutation = (*DatasetMutation)(nil)

// datasetOption allows management of the mutation configuration using functional options.
type datasetOption func(*DatasetMutation)

// newDatasetMutation creates new mutation for the Dataset entity.
func newDatasetMutation(c config, op Op, opts ...datasetOption) *DatasetMutation {
	m := &DatasetMutation{
		config:        c,
		op:            op,
		typ:           TypeDataset,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDatasetID sets the ID field of the mutation.
func withDatasetID(id uuid.UUID) datasetOption {
	return func(m *DatasetMutation) {
		var (
			err   error
			once  sync.Once
			value *Dataset
		)
		m.oldValue = func(ctx context.Context) (*Dataset, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Dataset.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDataset sets the old Dataset of the mutation.
func withDataset(node *Dataset) datasetOption {
	return func(m *DatasetMutation) {
		m.oldValue = func(context.Context) (*Dataset, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DatasetMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DatasetMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Dataset entities.
func (m *DatasetMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DatasetMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DatasetMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Dataset.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *DatasetMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DatasetMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DatasetMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DatasetMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DatasetMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DatasetMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *DatasetMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *DatasetMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *DatasetMutation) ResetName() {
	m.name = nil
}

// SetFileSize sets the "file_size" field.
func (m *DatasetMutation) SetFileSize(i int64) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *DatasetMutation) FileSize() (r int64, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldFileSize(ctx context.Context) (v *int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *DatasetMutation) AddFileSize(i int64) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *DatasetMutation) AddedFileSize() (r int64, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ClearFileSize clears the value of the "file_size" field.
func (m *DatasetMutation) ClearFileSize() {
	m.file_size = nil
	m.addfile_size = nil
	m.clearedFields[dataset.FieldFileSize] = struct{}{}
}

// FileSizeCleared returns if the "file_size" field was cleared in this mutation.
func (m *DatasetMutation) FileSizeCleared() bool {
	_, ok := m.clearedFields[dataset.FieldFileSize]
	return ok
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *DatasetMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
	delete(m.clearedFields, dataset.FieldFileSize)
}

// SetHash sets the "hash" field.
func (m *DatasetMutation) SetHash(s string) {
	m.hash = &s
}

// Hash returns the value of the "hash" field in the mutation.
func (m *DatasetMutation) Hash() (r string, exists bool) {
	v := m.hash
	if v == nil {
		return
	}
	return *v, true
}

// OldHash returns the old "hash" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHash: %w", err)
	}
	return oldValue.Hash, nil
}

// ResetHash resets all changes to the "hash" field.
func (m *DatasetMutation) ResetHash() {
	m.hash = nil
}

// SetRevision sets the "revision" field.
func (m *DatasetMutation) SetRevision(s string) {
	m.revision = &s
}

// Revision returns the value of the "revision" field in the mutation.
func (m *DatasetMutation) Revision() (r string, exists bool) {
	v := m.revision
	if v == nil {
		return
	}
	return *v, true
}

// OldRevision returns the old "revision" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldRevision(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRevision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRevision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRevision: %w", err)
	}
	return oldValue.Revision, nil
}

// ResetRevision resets all changes to the "revision" field.
func (m *DatasetMutation) ResetRevision() {
	m.revision = nil
}

// SetIsDefaultRevision sets the "is_default_revision" field.
func (m *DatasetMutation) SetIsDefaultRevision(b bool) {
	m.is_default_revision = &b
}

// IsDefaultRevision returns the value of the "is_default_revision" field in the mutation.
func (m *DatasetMutation) IsDefaultRevision() (r bool, exists bool) {
	v := m.is_default_revision
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDefaultRevision returns the old "is_default_revision" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldIsDefaultRevision(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDefaultRevision is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDefaultRevision requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDefaultRevision: %w", err)
	}
	return oldValue.IsDefaultRevision, nil
}

// ResetIsDefaultRevision resets all changes to the "is_default_revision" field.
func (m *DatasetMutation) ResetIsDefaultRevision() {
	m.is_default_revision = nil
}

// SetProtected sets the "protected" field.
func (m *DatasetMutation) SetProtected(b bool) {
	m.protected = &b
}

// Protected returns the value of the "protected" field in the mutation.
func (m *DatasetMutation) Protected() (r bool, exists bool) {
	v := m.protected
	if v == nil {
		return
	}
	return *v, true
}

// OldProtected returns the old "protected" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldProtected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProtected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProtected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProtected: %w", err)
	}
	return oldValue.Protected, nil
}

// ResetProtected resets all changes to the "protected" field.
func (m *DatasetMutation) ResetProtected() {
	m.protected = nil
}

// SetParentID sets the "parent_id" field.
func (m *DatasetMutation) SetParentID(u uuid.UUID) {
	m.parent = &u
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *DatasetMutation) ParentID() (r uuid.UUID, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldParentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *DatasetMutation) ClearParentID() {
	m.parent = nil
	m.clearedFields[dataset.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *DatasetMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[dataset.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *DatasetMutation) ResetParentID() {
	m.parent = nil
	delete(m.clearedFields, dataset.FieldParentID)
}

// SetLabID sets the "lab_id" field.
func (m *DatasetMutation) SetLabID(u ulid.ULID) {
	m.lab = &u
}

// LabID returns the value of the "lab_id" field in the mutation.
func (m *DatasetMutation) LabID() (r ulid.ULID, exists bool) {
	v := m.lab
	if v == nil {
		return
	}
	return *v, true
}

// OldLabID returns the old "lab_id" field's value of the Dataset entity.
// If the Dataset object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DatasetMutation) OldLabID(ctx context.Context) (v ulid.ULID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabID: %w", err)
	}
	return oldValue.LabID, nil
}

// ClearLabID clears the value of the "lab_id" field.
func (m *DatasetMutation) ClearLabID() {
	m.lab = nil
	m.clearedFields[dataset.FieldLabID] = struct{}{}
}

// LabIDCleared returns if the "lab_id" field was cleared in this mutation.
func (m *DatasetMutation) LabIDCleared() bool {
	_, ok := m.clearedFields[dataset.FieldLabID]
	return ok
}

// ResetLabID resets all changes to the "lab_id" field.
func (m *DatasetMutation) ResetLabID() {
	m.lab = nil
	delete(m.clearedFields, dataset.FieldLabID)
}

// ClearParent clears the "parent" edge to the Dataset entity.
func (m *DatasetMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[dataset.FieldParentID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the Dataset entity was cleared.
func (m *DatasetMutation) ParentCleared() bool {
	return m.ParentIDCleared() || m.clearedparent
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *DatasetMutation) ParentIDs() (ids []uuid.UUID) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *DatasetMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the Dataset entity by ids.
func (m *DatasetMutation) AddChildIDs(ids ...uuid.UUID) {
	if m.children == nil {
		m.children = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the Dataset entity.
func (m *DatasetMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the Dataset entity was cleared.
func (m *DatasetMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the Dataset entity by IDs.
func (m *DatasetMutation) RemoveChildIDs(ids ...uuid.UUID) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the Dataset entity.
func (m *DatasetMutation) RemovedChildrenIDs() (ids []uuid.UUID) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *DatasetMutation) ChildrenIDs() (ids []uuid.UUID) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *DatasetMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// ClearLab clears the "lab" edge to the Lab entity.
func (m *DatasetMutation) ClearLab() {
	m.clearedlab = true
	m.clearedFields[dataset.FieldLabID] = struct{}{}
}

// LabCleared reports if the "lab" edge to the Lab entity was cleared.
func (m *DatasetMutation) LabCleared() bool {
	return m.LabIDCleared() || m.clearedlab
}

// LabIDs returns the "lab" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LabID instead. It exists only for internal usage by the builders.
func (m *DatasetMutation) LabIDs() (ids []ulid.ULID) {
	if id := m.lab; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLab resets all changes to the "lab" edge.
func (m *DatasetMutation) ResetLab() {
	m.lab = nil
	m.clearedlab = false
}

// AddFileRecordIDs adds the "file_records" edge to the FileRecord entity by ids.
func (m *DatasetMutation) AddFileRecordIDs(ids ...ulid.ULID) {
	if m.file_records == nil {
		m.file_records = make(map[ulid.ULID]struct{})
	}
	for i := range ids {
		m.file_records[ids[i]] = struct{}{}
	}
}

// ClearFileRecords clears the "file_records" edge to the FileRecord entity.
func (m *DatasetMutation) ClearFileRecords() {
	m.clearedfile_records = true
}

// FileRecordsCleared reports if the "file_records" edge to the FileRecord entity was cleared.
func (m *DatasetMutation) FileRecordsCleared() bool {
	return m.clearedfile_records
}

// RemoveFileRecordIDs removes the "file_records" edge to the FileRecord entity by IDs.
func (m *DatasetMutation) RemoveFileRecordIDs(ids ...ulid.ULID) {
	if m.removedfile_records == nil {
		m.removedfile_records = make(map[ulid.ULID]struct{})
	}
	for i := range ids {
		delete(m.file_records, ids[i])
		m.removedfile_records[ids[i]] = struct{}{}
	}
}

// RemovedFileRecords returns the removed IDs of the "file_records" edge to the FileRecord entity.
func (m *DatasetMutation) RemovedFileRecordsIDs() (ids []ulid.ULID) {
	for id := range m.removedfile_records {
		ids = append(ids, id)
	}
	return
}

// FileRecordsIDs returns the "file_records" edge IDs in the mutation.
func (m *DatasetMutation) FileRecordsIDs() (ids []ulid.ULID) {
	for id := range m.file_records {
		ids = append(ids, id)
	}
	return
}

// ResetFileRecords resets all changes to the "file_records" edge.
func (m *DatasetMutation) ResetFileRecords() {
	m.file_records = nil
	m.clearedfile_records = false
	m.removedfile_records = nil
}

// Where appends a list predicates to the DatasetMutation builder.
func (m *DatasetMutation) Where(ps ...predicate.Dataset) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DatasetMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DatasetMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Dataset, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DatasetMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DatasetMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Dataset).
func (m *DatasetMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DatasetMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, dataset.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, dataset.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, dataset.FieldName)
	}
	if m.file_size != nil {
		fields = append(fields, dataset.FieldFileSize)
	}
	if m.hash != nil {
		fields = append(fields, dataset.FieldHash)
	}
	if m.revision != nil {
		fields = append(fields, dataset.FieldRevision)
	}
	if m.is_default_revision != nil {
		fields = append(fields, dataset.FieldIsDefaultRevision)
	}
	if m.protected != nil {
		fields = append(fields, dataset.FieldProtected)
	}
	if m.parent != nil {
		fields = append(fields, dataset.FieldParentID)
	}
	if m.lab != nil {
		fields = append(fields, dataset.FieldLabID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DatasetMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dataset.FieldCreatedAt:
		return m.CreatedAt()
	case dataset.FieldUpdatedAt:
		return m.UpdatedAt()
	case dataset.FieldName:
		return m.Name()
	case dataset.FieldFileSize:
		return m.FileSize()
	case dataset.FieldHash:
		return m.Hash()
	case dataset.FieldRevision:
		return m.Revision()
	case dataset.FieldIsDefaultRevision:
		return m.IsDefaultRevision()
	case dataset.FieldProtected:
		return m.Protected()
	case dataset.FieldParentID:
		return m.ParentID()
	case dataset.FieldLabID:
		return m.LabID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DatasetMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dataset.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case dataset.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case dataset.FieldName:
		return m.OldName(ctx)
	case dataset.FieldFileSize:
		return m.OldFileSize(ctx)
	case dataset.FieldHash:
		return m.OldHash(ctx)
	case dataset.FieldRevision:
		return m.OldRevision(ctx)
	case dataset.FieldIsDefaultRevision:
		return m.OldIsDefaultRevision(ctx)
	case dataset.FieldProtected:
		return m.OldProtected(ctx)
	case dataset.FieldParentID:
		return m.OldParentID(ctx)
	case dataset.FieldLabID:
		return m.OldLabID(ctx)
	}
	return nil, fmt.Errorf("unknown Dataset field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dataset.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case dataset.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case dataset.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case dataset.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case dataset.FieldHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHash(v)
		return nil
	case dataset.FieldRevision:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRevision(v)
		return nil
	case dataset.FieldIsDefaultRevision:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDefaultRevision(v)
		return nil
	case dataset.FieldProtected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProtected(v)
		return nil
	case dataset.FieldParentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case dataset.FieldLabID:
		v, ok := value.(ulid.ULID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabID(v)
		return nil
	}
	return fmt.Errorf("unknown Dataset field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DatasetMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, dataset.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DatasetMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dataset.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DatasetMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dataset.FieldFileSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown Dataset numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DatasetMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dataset.FieldFileSize) {
		fields = append(fields, dataset.FieldFileSize)
	}
	if m.FieldCleared(dataset.FieldParentID) {
		fields = append(fields, dataset.FieldParentID)
	}
	if m.FieldCleared(dataset.FieldLabID) {
		fields = append(fields, dataset.FieldLabID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DatasetMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DatasetMutation) ClearField(name string) error {
	switch name {
	case dataset.FieldFileSize:
		m.ClearFileSize()
		return nil
	case dataset.FieldParentID:
		m.ClearParentID()
		return nil
	case dataset.FieldLabID:
		m.ClearLabID()
		return nil
	}
	return fmt.Errorf("unknown Dataset nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DatasetMutation) ResetField(name string) error {
	switch name {
	case dataset.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case dataset.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case dataset.FieldName:
		m.ResetName()
		return nil
	case dataset.FieldFileSize:
		m.ResetFileSize()
		return nil
	case dataset.FieldHash:
		m.ResetHash()
		return nil
	case dataset.FieldRevision:
		m.ResetRevision()
		return nil
	case dataset.FieldIsDefaultRevision:
		m.ResetIsDefaultRevision()
		return nil
	case dataset.FieldProtected:
		m.ResetProtected()
		return nil
	case dataset.FieldParentID:
		m.ResetParentID()
		return nil
	case dataset.FieldLabID:
		m.ResetLabID()
		return nil
	}
	return fmt.Errorf("unknown Dataset field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DatasetMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.parent != nil {
		edges = append(edges, dataset.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, dataset.EdgeChildren)
	}
	if m.lab != nil {
		edges = append(edges, dataset.EdgeLab)
	}
	if m.file_records != nil {
		edges = append(edges, dataset.EdgeFileRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DatasetMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dataset.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case dataset.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case dataset.EdgeLab:
		if id := m.lab; id != nil {
			return []ent.Value{*id}
		}
	case dataset.EdgeFileRecords:
		ids := make([]ent.Value, 0, len(m.file_records))
		for id := range m.file_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DatasetMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedchildren != nil {
		edges = append(edges, dataset.EdgeChildren)
	}
	if m.removedfile_records != nil {
		edges = append(edges, dataset.EdgeFileRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DatasetMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case dataset.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case dataset.EdgeFileRecords:
		ids := make([]ent.Value, 0, len(m.removedfile_records))
		for id := range m.removedfile_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DatasetMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedparent {
		edges = append(edges, dataset.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, dataset.EdgeChildren)
	}
	if m.clearedlab {
		edges = append(edges, dataset.EdgeLab)
	}
	if m.clearedfile_records {
		edges = append(edges, dataset.EdgeFileRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DatasetMutation) EdgeCleared(name string) bool {
	switch name {
	case dataset.EdgeParent:
		return m.clearedparent
	case dataset.EdgeChildren:
		return m.clearedchildren
	case dataset.EdgeLab:
		return m.clearedlab
	case dataset.EdgeFileRecords:
		return m.clearedfile_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DatasetMutation) ClearEdge(name string) error {
	switch name {
	case dataset.EdgeParent:
		m.ClearParent()
		return nil
	case dataset.EdgeLab:
		m.ClearLab()
		return nil
	}
	return fmt.Errorf("unknown Dataset unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DatasetMutation) ResetEdge(name string) error {
	switch name {
	case dataset.EdgeParent:
		m.ResetParent()
		return nil
	case dataset.EdgeChildren:
		m.ResetChildren()
		return nil
	case dataset.EdgeLab:
		m.ResetLab()
		return nil
	case dataset.EdgeFileRecords:
		m.ResetFileRecords()
		return nil
	}
	return fmt.Errorf("unknown Dataset edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op              Op
	typ             string
	id              *ulid.ULID
	_type           *string
	message         *string
	subject_type    *event.SubjectType
	subject_id      *string
	repository_name *string
	details         *string
	timestamp       *time.Time
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Event, error)
	predicates      []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id ulid.ULID) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetType sets the "type" field.
func (m *EventMutation) SetType(s string) {
	m._type = &s
}

// GetType returns the value of the "type" field in the mutation.
func (m *EventMutation) GetType() (r string, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *EventMutation) ResetType() {
	m._type = nil
}

// SetMessage sets the "message" field.
func (m *EventMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *EventMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ResetMessage resets all changes to the "message" field.
func (m *EventMutation) ResetMessage() {
	m.message = nil
}

// SetSubjectType sets the "subject_type" field.
func (m *EventMutation) SetSubjectType(et event.SubjectType) {
	m.subject_type = &et
}

// SubjectType returns the value of the "subject_type" field in the mutation.
func (m *EventMutation) SubjectType() (r event.SubjectType, exists bool) {
	v := m.subject_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectType returns the old "subject_type" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSubjectType(ctx context.Context) (v event.SubjectType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectType: %w", err)
	}
	return oldValue.SubjectType, nil
}

// ResetSubjectType resets all changes to the "subject_type" field.
func (m *EventMutation) ResetSubjectType() {
	m.subject_type = nil
}

// SetSubjectID sets the "subject_id" field.
func (m *EventMutation) SetSubjectID(s string) {
	m.subject_id = &s
}

// SubjectID returns the value of the "subject_id" field in the mutation.
func (m *EventMutation) SubjectID() (r string, exists bool) {
	v := m.subject_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectID returns the old "subject_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldSubjectID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectID: %w", err)
	}
	return oldValue.SubjectID, nil
}

// ClearSubjectID clears the value of the "subject_id" field.
func (m *EventMutation) ClearSubjectID() {
	m.subject_id = nil
	m.clearedFields[event.FieldSubjectID] = struct{}{}
}

// SubjectIDCleared returns if the "subject_id" field was cleared in this mutation.
func (m *EventMutation) SubjectIDCleared() bool {
	_, ok := m.clearedFields[event.FieldSubjectID]
	return ok
}

// ResetSubjectID resets all changes to the "subject_id" field.
func (m *EventMutation) ResetSubjectID() {
	m.subject_id = nil
	delete(m.clearedFields, event.FieldSubjectID)
}

// SetRepositoryName sets the "repository_name" field.
func (m *EventMutation) SetRepositoryName(s string) {
	m.repository_name = &s
}

// RepositoryName returns the value of the "repository_name" field in the mutation.
func (m *EventMutation) RepositoryName() (r string, exists bool) {
	v := m.repository_name
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositoryName returns the old "repository_name" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldRepositoryName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositoryName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositoryName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositoryName: %w", err)
	}
	return oldValue.RepositoryName, nil
}

// ResetRepositoryName resets all changes to the "repository_name" field.
func (m *EventMutation) ResetRepositoryName() {
	m.repository_name = nil
}

// SetDetails sets the "details" field.
func (m *EventMutation) SetDetails(s string) {
	m.details = &s
}

// Details returns the value of the "details" field in the mutation.
func (m *EventMutation) Details() (r string, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldDetails(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ResetDetails resets all changes to the "details" field.
func (m *EventMutation) ResetDetails() {
	m.details = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *EventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *EventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *EventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m._type != nil {
		fields = append(fields, event.FieldType)
	}
	if m.message != nil {
		fields = append(fields, event.FieldMessage)
	}
	if m.subject_type != nil {
		fields = append(fields, event.FieldSubjectType)
	}
	if m.subject_id != nil {
		fields = append(fields, event.FieldSubjectID)
	}
	if m.repository_name != nil {
		fields = append(fields, event.FieldRepositoryName)
	}
	if m.details != nil {
		fields = append(fields, event.FieldDetails)
	}
	if m.timestamp != nil {
		fields = append(fields, event.FieldTimestamp)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldType:
		return m.GetType()
	case event.FieldMessage:
		return m.Message()
	case event.FieldSubjectType:
		return m.SubjectType()
	case event.FieldSubjectID:
		return m.SubjectID()
	case event.FieldRepositoryName:
		return m.RepositoryName()
	case event.FieldDetails:
		return m.Details()
	case event.FieldTimestamp:
		return m.Timestamp()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldType:
		return m.OldType(ctx)
	case event.FieldMessage:
		return m.OldMessage(ctx)
	case event.FieldSubjectType:
		return m.OldSubjectType(ctx)
	case event.FieldSubjectID:
		return m.OldSubjectID(ctx)
	case event.FieldRepositoryName:
		return m.OldRepositoryName(ctx)
	case event.FieldDetails:
		return m.OldDetails(ctx)
	case event.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case event.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case event.FieldSubjectType:
		v, ok := value.(event.SubjectType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectType(v)
		return nil
	case event.FieldSubjectID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectID(v)
		return nil
	case event.FieldRepositoryName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositoryName(v)
		return nil
	case event.FieldDetails:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case event.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldSubjectID) {
		fields = append(fields, event.FieldSubjectID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldSubjectID:
		m.ClearSubjectID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldType:
		m.ResetType()
		return nil
	case event.FieldMessage:
		m.ResetMessage()
		return nil
	case event.FieldSubjectType:
		m.ResetSubjectType()
		return nil
	case event.FieldSubjectID:
		m.ResetSubjectID()
		return nil
	case event.FieldRepositoryName:
		m.ResetRepositoryName()
		return nil
	case event.FieldDetails:
		m.ResetDetails()
		return nil
	case event.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// FileRecordMutation represents an operation that mutates the FileRecord nodes in the graph.
type FileRecordMutation struct {
	config
	op                Op
	typ               string
	id                *ulid.ULID
	created_at        *time.Time
	updated_at        *time.Time
	relative_path     *string
	exists            *bool
	status            *filerecord.Status
	clearedFields     map[string]struct{}
	dataset           *uuid.UUID
	cleareddataset    bool
	repository        *ulid.ULID
	clearedrepository bool
	done              bool
	oldValue          func(context.Context) (*FileRecord, error)
	predicates        []predicate.FileRecord
}

var _ ent.Mutation = (*FileRecordMutation)(nil)

// filerecordOption allows management of the mutation configuration using functional options.
type filerecordOption func(*FileRecordMutation)

// newFileRecordMutation creates new mutation for the FileRecord entity.
func newFileRecordMutation(c config, op Op, opts ...filerecordOption) *FileRecordMutation {
	m := &FileRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeFileRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withFileRecordID sets the ID field of the mutation.
func withFileRecordID(id ulid.ULID) filerecordOption {
	return func(m *FileRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *FileRecord
		)
		m.oldValue = func(ctx context.Context) (*FileRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().FileRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withFileRecord sets the old FileRecord of the mutation.
func withFileRecord(node *FileRecord) filerecordOption {
	return func(m *FileRecordMutation) {
		m.oldValue = func(context.Context) (*FileRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m FileRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m FileRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of FileRecord entities.
func (m *FileRecordMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *FileRecordMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *FileRecordMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().FileRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *FileRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *FileRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *FileRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *FileRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *FileRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *FileRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDatasetID sets the "dataset_id" field.
func (m *FileRecordMutation) SetDatasetID(u uuid.UUID) {
	m.dataset = &u
}

// DatasetID returns the value of the "dataset_id" field in the mutation.
func (m *FileRecordMutation) DatasetID() (r uuid.UUID, exists bool) {
	v := m.dataset
	if v == nil {
		return
	}
	return *v, true
}

// OldDatasetID returns the old "dataset_id" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldDatasetID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDatasetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDatasetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDatasetID: %w", err)
	}
	return oldValue.DatasetID, nil
}

// ResetDatasetID resets all changes to the "dataset_id" field.
func (m *FileRecordMutation) ResetDatasetID() {
	m.dataset = nil
}

// SetRepositoryID sets the "repository_id" field.
func (m *FileRecordMutation) SetRepositoryID(u ulid.ULID) {
	m.repository = &u
}

// RepositoryID returns the value of the "repository_id" field in the mutation.
func (m *FileRecordMutation) RepositoryID() (r ulid.ULID, exists bool) {
	v := m.repository
	if v == nil {
		return
	}
	return *v, true
}

// OldRepositoryID returns the old "repository_id" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldRepositoryID(ctx context.Context) (v ulid.ULID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepositoryID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepositoryID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepositoryID: %w", err)
	}
	return oldValue.RepositoryID, nil
}

// ResetRepositoryID resets all changes to the "repository_id" field.
func (m *FileRecordMutation) ResetRepositoryID() {
	m.repository = nil
}

// SetRelativePath sets the "relative_path" field.
func (m *FileRecordMutation) SetRelativePath(s string) {
	m.relative_path = &s
}

// RelativePath returns the value of the "relative_path" field in the mutation.
func (m *FileRecordMutation) RelativePath() (r string, exists bool) {
	v := m.relative_path
	if v == nil {
		return
	}
	return *v, true
}

// OldRelativePath returns the old "relative_path" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldRelativePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelativePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelativePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelativePath: %w", err)
	}
	return oldValue.RelativePath, nil
}

// ResetRelativePath resets all changes to the "relative_path" field.
func (m *FileRecordMutation) ResetRelativePath() {
	m.relative_path = nil
}

// SetExists sets the "exists" field.
func (m *FileRecordMutation) SetExists(b bool) {
	m.exists = &b
}

// Exists returns the value of the "exists" field in the mutation.
func (m *FileRecordMutation) Exists() (r bool, exists bool) {
	v := m.exists
	if v == nil {
		return
	}
	return *v, true
}

// OldExists returns the old "exists" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldExists(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExists is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExists requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExists: %w", err)
	}
	return oldValue.Exists, nil
}

// ResetExists resets all changes to the "exists" field.
func (m *FileRecordMutation) ResetExists() {
	m.exists = nil
}

// SetStatus sets the "status" field.
func (m *FileRecordMutation) SetStatus(f filerecord.Status) {
	m.status = &f
}

// Status returns the value of the "status" field in the mutation.
func (m *FileRecordMutation) Status() (r filerecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the FileRecord entity.
// If the FileRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *FileRecordMutation) OldStatus(ctx context.Context) (v filerecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *FileRecordMutation) ResetStatus() {
	m.status = nil
}

// ClearDataset clears the "dataset" edge to the Dataset entity.
func (m *FileRecordMutation) ClearDataset() {
	m.cleareddataset = true
	m.clearedFields[filerecord.FieldDatasetID] = struct{}{}
}

// DatasetCleared reports if the "dataset" edge to the Dataset entity was cleared.
func (m *FileRecordMutation) DatasetCleared() bool {
	return m.cleareddataset
}

// DatasetIDs returns the "dataset" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DatasetID instead. It exists only for internal usage by the builders.
func (m *FileRecordMutation) DatasetIDs() (ids []uuid.UUID) {
	if id := m.dataset; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDataset resets all changes to the "dataset" edge.
func (m *FileRecordMutation) ResetDataset() {
	m.dataset = nil
	m.cleareddataset = false
}

// ClearRepository clears the "repository" edge to the Repository entity.
func (m *FileRecordMutation) ClearRepository() {
	m.clearedrepository = true
	m.clearedFields[filerecord.FieldRepositoryID] = struct{}{}
}

// RepositoryCleared reports if the "repository" edge to the Repository entity was cleared.
func (m *FileRecordMutation) RepositoryCleared() bool {
	return m.clearedrepository
}

// RepositoryIDs returns the "repository" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RepositoryID instead. It exists only for internal usage by the builders.
func (m *FileRecordMutation) RepositoryIDs() (ids []ulid.ULID) {
	if id := m.repository; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRepository resets all changes to the "repository" edge.
func (m *FileRecordMutation) ResetRepository() {
	m.repository = nil
	m.clearedrepository = false
}

// Where appends a list predicates to the FileRecordMutation builder.
func (m *FileRecordMutation) Where(ps ...predicate.FileRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the FileRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *FileRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.FileRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *FileRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *FileRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (FileRecord).
func (m *FileRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *FileRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, filerecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, filerecord.FieldUpdatedAt)
	}
	if m.dataset != nil {
		fields = append(fields, filerecord.FieldDatasetID)
	}
	if m.repository != nil {
		fields = append(fields, filerecord.FieldRepositoryID)
	}
	if m.relative_path != nil {
		fields = append(fields, filerecord.FieldRelativePath)
	}
	if m.exists != nil {
		fields = append(fields, filerecord.FieldExists)
	}
	if m.status != nil {
		fields = append(fields, filerecord.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *FileRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case filerecord.FieldCreatedAt:
		return m.CreatedAt()
	case filerecord.FieldUpdatedAt:
		return m.UpdatedAt()
	case filerecord.FieldDatasetID:
		return m.DatasetID()
	case filerecord.FieldRepositoryID:
		return m.RepositoryID()
	case filerecord.FieldRelativePath:
		return m.RelativePath()
	case filerecord.FieldExists:
		return m.Exists()
	case filerecord.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *FileRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case filerecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case filerecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case filerecord.FieldDatasetID:
		return m.OldDatasetID(ctx)
	case filerecord.FieldRepositoryID:
		return m.OldRepositoryID(ctx)
	case filerecord.FieldRelativePath:
		return m.OldRelativePath(ctx)
	case filerecord.FieldExists:
		return m.OldExists(ctx)
	case filerecord.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown FileRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case filerecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case filerecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case filerecord.FieldDatasetID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDatasetID(v)
		return nil
	case filerecord.FieldRepositoryID:
		v, ok := value.(ulid.ULID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepositoryID(v)
		return nil
	case filerecord.FieldRelativePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelativePath(v)
		return nil
	case filerecord.FieldExists:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExists(v)
		return nil
	case filerecord.FieldStatus:
		v, ok := value.(filerecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown FileRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *FileRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *FileRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *FileRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown FileRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *FileRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *FileRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *FileRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown FileRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *FileRecordMutation) ResetField(name string) error {
	switch name {
	case filerecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case filerecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case filerecord.FieldDatasetID:
		m.ResetDatasetID()
		return nil
	case filerecord.FieldRepositoryID:
		m.ResetRepositoryID()
		return nil
	case filerecord.FieldRelativePath:
		m.ResetRelativePath()
		return nil
	case filerecord.FieldExists:
		m.ResetExists()
		return nil
	case filerecord.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown FileRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *FileRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.dataset != nil {
		edges = append(edges, filerecord.EdgeDataset)
	}
	if m.repository != nil {
		edges = append(edges, filerecord.EdgeRepository)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *FileRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case filerecord.EdgeDataset:
		if id := m.dataset; id != nil {
			return []ent.Value{*id}
		}
	case filerecord.EdgeRepository:
		if id := m.repository; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *FileRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *FileRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *FileRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareddataset {
		edges = append(edges, filerecord.EdgeDataset)
	}
	if m.clearedrepository {
		edges = append(edges, filerecord.EdgeRepository)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *FileRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case filerecord.EdgeDataset:
		return m.cleareddataset
	case filerecord.EdgeRepository:
		return m.clearedrepository
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *FileRecordMutation) ClearEdge(name string) error {
	switch name {
	case filerecord.EdgeDataset:
		m.ClearDataset()
		return nil
	case filerecord.EdgeRepository:
		m.ClearRepository()
		return nil
	}
	return fmt.Errorf("unknown FileRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *FileRecordMutation) ResetEdge(name string) error {
	switch name {
	case filerecord.EdgeDataset:
		m.ResetDataset()
		return nil
	case filerecord.EdgeRepository:
		m.ResetRepository()
		return nil
	}
	return fmt.Errorf("unknown FileRecord edge %s", name)
}

// LabMutation represents an operation that mutates the Lab nodes in the graph.
type LabMutation struct {
	config
	op                  Op
	typ                 string
	id                  *ulid.ULID
	created_at          *time.Time
	updated_at          *time.Time
	name                *string
	clearedFields       map[string]struct{}
	repositories        map[ulid.ULID]struct{}
	removedrepositories map[ulid.ULID]struct{}
	clearedrepositories bool
	datasets            map[uuid.UUID]struct{}
	removeddatasets     map[uuid.UUID]struct{}
	cleareddatasets     bool
	done                bool
	oldValue            func(context.Context) (*Lab, error)
	predicates          []predicate.Lab
}

var _ ent.Mutation = (*LabMutation)(nil)

// labOption allows management of the mutation configuration using functional options.
type labOption func(*LabMutation)

// newLabMutation creates new mutation for the Lab entity.
func newLabMutation(c config, op Op, opts ...labOption) *LabMutation {
	m := &LabMutation{
		config:        c,
		op:            op,
		typ:           TypeLab,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabID sets the ID field of the mutation.
func withLabID(id ulid.ULID) labOption {
	return func(m *LabMutation) {
		var (
			err   error
			once  sync.Once
			value *Lab
		)
		m.oldValue = func(ctx context.Context) (*Lab, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lab.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLab sets the old Lab of the mutation.
func withLab(node *Lab) labOption {
	return func(m *LabMutation) {
		m.oldValue = func(context.Context) (*Lab, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lab entities.
func (m *LabMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lab.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *LabMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LabMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lab entity.
// If the Lab object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LabMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *LabMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *LabMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Lab entity.
// If the Lab object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *LabMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *LabMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *LabMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Lab entity.
// If the Lab object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *LabMutation) ResetName() {
	m.name = nil
}

// AddRepositoryIDs adds the "repositories" edge to the Repository entity by ids.
func (m *LabMutation) AddRepositoryIDs(ids ...ulid.ULID) {
	if m.repositories == nil {
		m.repositories = make(map[ulid.ULID]struct{})
	}
	for i := range ids {
		m.repositories[ids[i]] = struct{}{}
	}
}

// ClearRepositories clears the "repositories" edge to the Repository entity.
func (m *LabMutation) ClearRepositories() {
	m.clearedrepositories = true
}

// RepositoriesCleared reports if the "repositories" edge to the Repository entity was cleared.
func (m *LabMutation) RepositoriesCleared() bool {
	return m.clearedrepositories
}

// RemoveRepositoryIDs removes the "repositories" edge to the Repository entity by IDs.
func (m *LabMutation) RemoveRepositoryIDs(ids ...ulid.ULID) {
	if m.removedrepositories == nil {
		m.removedrepositories = make(map[ulid.ULID]struct{})
	}
	for i := range ids {
		delete(m.repositories, ids[i])
		m.removedrepositories[ids[i]] = struct{}{}
	}
}

// RemovedRepositories returns the removed IDs of the "repositories" edge to the Repository entity.
func (m *LabMutation) RemovedRepositoriesIDs() (ids []ulid.ULID) {
	for id := range m.removedrepositories {
		ids = append(ids, id)
	}
	return
}

// RepositoriesIDs returns the "repositories" edge IDs in the mutation.
func (m *LabMutation) RepositoriesIDs() (ids []ulid.ULID) {
	for id := range m.repositories {
		ids = append(ids, id)
	}
	return
}

// ResetRepositories resets all changes to the "repositories" edge.
func (m *LabMutation) ResetRepositories() {
	m.repositories = nil
	m.clearedrepositories = false
	m.removedrepositories = nil
}

// AddDatasetIDs adds the "datasets" edge to the Dataset entity by ids.
func (m *LabMutation) AddDatasetIDs(ids ...uuid.UUID) {
	if m.datasets == nil {
		m.datasets = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.datasets[ids[i]] = struct{}{}
	}
}

// ClearDatasets clears the "datasets" edge to the Dataset entity.
func (m *LabMutation) ClearDatasets() {
	m.cleareddatasets = true
}

// DatasetsCleared reports if the "datasets" edge to the Dataset entity was cleared.
func (m *LabMutation) DatasetsCleared() bool {
	return m.cleareddatasets
}

// RemoveDatasetIDs removes the "datasets" edge to the Dataset entity by IDs.
func (m *LabMutation) RemoveDatasetIDs(ids ...uuid.UUID) {
	if m.removeddatasets == nil {
		m.removeddatasets = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.datasets, ids[i])
		m.removeddatasets[ids[i]] = struct{}{}
	}
}

// RemovedDatasets returns the removed IDs of the "datasets" edge to the Dataset entity.
func (m *LabMutation) RemovedDatasetsIDs() (ids []uuid.UUID) {
	for id := range m.removeddatasets {
		ids = append(ids, id)
	}
	return
}

// DatasetsIDs returns the "datasets" edge IDs in the mutation.
func (m *LabMutation) DatasetsIDs() (ids []uuid.UUID) {
	for id := range m.datasets {
		ids = append(ids, id)
	}
	return
}

// ResetDatasets resets all changes to the "datasets" edge.
func (m *LabMutation) ResetDatasets() {
	m.datasets = nil
	m.cleareddatasets = false
	m.removeddatasets = nil
}

// Where appends a list predicates to the LabMutation builder.
func (m *LabMutation) Where(ps ...predicate.Lab) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lab, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lab).
func (m *LabMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.created_at != nil {
		fields = append(fields, lab.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, lab.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, lab.FieldName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lab.FieldCreatedAt:
		return m.CreatedAt()
	case lab.FieldUpdatedAt:
		return m.UpdatedAt()
	case lab.FieldName:
		return m.Name()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lab.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case lab.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case lab.FieldName:
		return m.OldName(ctx)
	}
	return nil, fmt.Errorf("unknown Lab field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lab.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case lab.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case lab.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	}
	return fmt.Errorf("unknown Lab field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lab numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Lab nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabMutation) ResetField(name string) error {
	switch name {
	case lab.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case lab.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case lab.FieldName:
		m.ResetName()
		return nil
	}
	return fmt.Errorf("unknown Lab field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.repositories != nil {
		edges = append(edges, lab.EdgeRepositories)
	}
	if m.datasets != nil {
		edges = append(edges, lab.EdgeDatasets)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lab.EdgeRepositories:
		ids := make([]ent.Value, 0, len(m.repositories))
		for id := range m.repositories {
			ids = append(ids, id)
		}
		return ids
	case lab.EdgeDatasets:
		ids := make([]ent.Value, 0, len(m.datasets))
		for id := range m.datasets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedrepositories != nil {
		edges = append(edges, lab.EdgeRepositories)
	}
	if m.removeddatasets != nil {
		edges = append(edges, lab.EdgeDatasets)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lab.EdgeRepositories:
		ids := make([]ent.Value, 0, len(m.removedrepositories))
		for id := range m.removedrepositories {
			ids = append(ids, id)
		}
		return ids
	case lab.EdgeDatasets:
		ids := make([]ent.Value, 0, len(m.removeddatasets))
		for id := range m.removeddatasets {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedrepositories {
		edges = append(edges, lab.EdgeRepositories)
	}
	if m.cleareddatasets {
		edges = append(edges, lab.EdgeDatasets)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabMutation) EdgeCleared(name string) bool {
	switch name {
	case lab.EdgeRepositories:
		return m.clearedrepositories
	case lab.EdgeDatasets:
		return m.cleareddatasets
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Lab unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabMutation) ResetEdge(name string) error {
	switch name {
	case lab.EdgeRepositories:
		m.ResetRepositories()
		return nil
	case lab.EdgeDatasets:
		m.ResetDatasets()
		return nil
	}
	return fmt.Errorf("unknown Lab edge %s", name)
}

// RepositoryMutation represents an operation that mutates the Repository nodes in the graph.
type RepositoryMutation struct {
	config
	op                  Op
	typ                 string
	id                  *ulid.ULID
	created_at          *time.Time
	updated_at          *time.Time
	name                *string
	root_path           *string
	endpoint_id         *string
	is_personal         *bool
	clearedFields       map[string]struct{}
	lab                 *ulid.ULID
	clearedlab          bool
	file_records        map[ulid.ULID]struct{}
	removedfile_records map[ulid.ULID]struct{}
	clearedfile_records bool
	done                bool
	oldValue            func(context.Context) (*Repository, error)
	predicates          []predicate.Repository
}

var _ ent.Mutation = (*RepositoryMutation)(nil)

// repositoryOption allows management of the mutation configuration using functional options.
type repositoryOption func(*RepositoryMutation)

// newRepositoryMutation creates new mutation for the Repository entity.
func newRepositoryMutation(c config, op Op, opts ...repositoryOption) *RepositoryMutation {
	m := &RepositoryMutation{
		config:        c,
		op:            op,
		typ:           TypeRepository,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRepositoryID sets the ID field of the mutation.
func withRepositoryID(id ulid.ULID) repositoryOption {
	return func(m *RepositoryMutation) {
		var (
			err   error
			once  sync.Once
			value *Repository
		)
		m.oldValue = func(ctx context.Context) (*Repository, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Repository.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRepository sets the old Repository of the mutation.
func withRepository(node *Repository) repositoryOption {
	return func(m *RepositoryMutation) {
		m.oldValue = func(context.Context) (*Repository, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RepositoryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RepositoryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("generated: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Repository entities.
func (m *RepositoryMutation) SetID(id ulid.ULID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RepositoryMutation) ID() (id ulid.ULID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RepositoryMutation) IDs(ctx context.Context) ([]ulid.ULID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []ulid.ULID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Repository.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *RepositoryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RepositoryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RepositoryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *RepositoryMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *RepositoryMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *RepositoryMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *RepositoryMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *RepositoryMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *RepositoryMutation) ResetName() {
	m.name = nil
}

// SetRootPath sets the "root_path" field.
func (m *RepositoryMutation) SetRootPath(s string) {
	m.root_path = &s
}

// RootPath returns the value of the "root_path" field in the mutation.
func (m *RepositoryMutation) RootPath() (r string, exists bool) {
	v := m.root_path
	if v == nil {
		return
	}
	return *v, true
}

// OldRootPath returns the old "root_path" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldRootPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootPath: %w", err)
	}
	return oldValue.RootPath, nil
}

// ResetRootPath resets all changes to the "root_path" field.
func (m *RepositoryMutation) ResetRootPath() {
	m.root_path = nil
}

// SetEndpointID sets the "endpoint_id" field.
func (m *RepositoryMutation) SetEndpointID(s string) {
	m.endpoint_id = &s
}

// EndpointID returns the value of the "endpoint_id" field in the mutation.
func (m *RepositoryMutation) EndpointID() (r string, exists bool) {
	v := m.endpoint_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEndpointID returns the old "endpoint_id" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldEndpointID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndpointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndpointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndpointID: %w", err)
	}
	return oldValue.EndpointID, nil
}

// ResetEndpointID resets all changes to the "endpoint_id" field.
func (m *RepositoryMutation) ResetEndpointID() {
	m.endpoint_id = nil
}

// SetIsPersonal sets the "is_personal" field.
func (m *RepositoryMutation) SetIsPersonal(b bool) {
	m.is_personal = &b
}

// IsPersonal returns the value of the "is_personal" field in the mutation.
func (m *RepositoryMutation) IsPersonal() (r bool, exists bool) {
	v := m.is_personal
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPersonal returns the old "is_personal" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldIsPersonal(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPersonal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPersonal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPersonal: %w", err)
	}
	return oldValue.IsPersonal, nil
}

// ResetIsPersonal resets all changes to the "is_personal" field.
func (m *RepositoryMutation) ResetIsPersonal() {
	m.is_personal = nil
}

// SetLabID sets the "lab_id" field.
func (m *RepositoryMutation) SetLabID(u ulid.ULID) {
	m.lab = &u
}

// LabID returns the value of the "lab_id" field in the mutation.
func (m *RepositoryMutation) LabID() (r ulid.ULID, exists bool) {
	v := m.lab
	if v == nil {
		return
	}
	return *v, true
}

// OldLabID returns the old "lab_id" field's value of the Repository entity.
// If the Repository object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RepositoryMutation) OldLabID(ctx context.Context) (v ulid.ULID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabID: %w", err)
	}
	return oldValue.LabID, nil
}

// ClearLabID clears the value of the "lab_id" field.
func (m *RepositoryMutation) ClearLabID() {
	m.lab = nil
	m.clearedFields[repository.FieldLabID] = struct{}{}
}

// LabIDCleared returns if the "lab_id" field was cleared in this mutation.
func (m *RepositoryMutation) LabIDCleared() bool {
	_, ok := m.clearedFields[repository.FieldLabID]
	return ok
}

// ResetLabID resets all changes to the "lab_id" field.
func (m *RepositoryMutation) ResetLabID() {
	m.lab = nil
	delete(m.clearedFields, repository.FieldLabID)
}

// ClearLab clears the "lab" edge to the Lab entity.
func (m *RepositoryMutation) ClearLab() {
	m.clearedlab = true
	m.clearedFields[repository.FieldLabID] = struct{}{}
}

// LabCleared reports if the "lab" edge to the Lab entity was cleared.
func (m *RepositoryMutation) LabCleared() bool {
	return m.LabIDCleared() || m.clearedlab
}

// LabIDs returns the "lab" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LabID instead. It exists only for internal usage by the builders.
func (m *RepositoryMutation) LabIDs() (ids []ulid.ULID) {
	if id := m.lab; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLab resets all changes to the "lab" edge.
func (m *RepositoryMutation) ResetLab() {
	m.lab = nil
	m.clearedlab = false
}

// AddFileRecordIDs adds the "file_records" edge to the FileRecord entity by ids.
func (m *RepositoryMutation) AddFileRecordIDs(ids ...ulid.ULID) {
	if m.file_records == nil {
		m.file_records = make(map[ulid.ULID]struct{})
	}
	for i := range ids {
		m.file_records[ids[i]] = struct{}{}
	}
}

// ClearFileRecords clears the "file_records" edge to the FileRecord entity.
func (m *RepositoryMutation) ClearFileRecords() {
	m.clearedfile_records = true
}

// FileRecordsCleared reports if the "file_records" edge to the FileRecord entity was cleared.
func (m *RepositoryMutation) FileRecordsCleared() bool {
	return m.clearedfile_records
}

// RemoveFileRecordIDs removes the "file_records" edge to the FileRecord entity by IDs.
func (m *RepositoryMutation) RemoveFileRecordIDs(ids ...ulid.ULID) {
	if m.removedfile_records == nil {
		m.removedfile_records = make(map[ulid.ULID]struct{})
	}
	for i := range ids {
		delete(m.file_records, ids[i])
		m.removedfile_records[ids[i]] = struct{}{}
	}
}

// RemovedFileRecords returns the removed IDs of the "file_records" edge to the FileRecord entity.
func (m *RepositoryMutation) RemovedFileRecordsIDs() (ids []ulid.ULID) {
	for id := range m.removedfile_records {
		ids = append(ids, id)
	}
	return
}

// FileRecordsIDs returns the "file_records" edge IDs in the mutation.
func (m *RepositoryMutation) FileRecordsIDs() (ids []ulid.ULID) {
	for id := range m.file_records {
		ids = append(ids, id)
	}
	return
}

// ResetFileRecords resets all changes to the "file_records" edge.
func (m *RepositoryMutation) ResetFileRecords() {
	m.file_records = nil
	m.clearedfile_records = false
	m.removedfile_records = nil
}

// Where appends a list predicates to the RepositoryMutation builder.
func (m *RepositoryMutation) Where(ps ...predicate.Repository) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RepositoryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RepositoryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Repository, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RepositoryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RepositoryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Repository).
func (m *RepositoryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RepositoryMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.created_at != nil {
		fields = append(fields, repository.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, repository.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, repository.FieldName)
	}
	if m.root_path != nil {
		fields = append(fields, repository.FieldRootPath)
	}
	if m.endpoint_id != nil {
		fields = append(fields, repository.FieldEndpointID)
	}
	if m.is_personal != nil {
		fields = append(fields, repository.FieldIsPersonal)
	}
	if m.lab != nil {
		fields = append(fields, repository.FieldLabID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RepositoryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case repository.FieldCreatedAt:
		return m.CreatedAt()
	case repository.FieldUpdatedAt:
		return m.UpdatedAt()
	case repository.FieldName:
		return m.Name()
	case repository.FieldRootPath:
		return m.RootPath()
	case repository.FieldEndpointID:
		return m.EndpointID()
	case repository.FieldIsPersonal:
		return m.IsPersonal()
	case repository.FieldLabID:
		return m.LabID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RepositoryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case repository.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case repository.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case repository.FieldName:
		return m.OldName(ctx)
	case repository.FieldRootPath:
		return m.OldRootPath(ctx)
	case repository.FieldEndpointID:
		return m.OldEndpointID(ctx)
	case repository.FieldIsPersonal:
		return m.OldIsPersonal(ctx)
	case repository.FieldLabID:
		return m.OldLabID(ctx)
	}
	return nil, fmt.Errorf("unknown Repository field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case repository.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case repository.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case repository.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case repository.FieldRootPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootPath(v)
		return nil
	case repository.FieldEndpointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndpointID(v)
		return nil
	case repository.FieldIsPersonal:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPersonal(v)
		return nil
	case repository.FieldLabID:
		v, ok := value.(ulid.ULID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabID(v)
		return nil
	}
	return fmt.Errorf("unknown Repository field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RepositoryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RepositoryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RepositoryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Repository numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RepositoryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(repository.FieldLabID) {
		fields = append(fields, repository.FieldLabID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RepositoryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RepositoryMutation) ClearField(name string) error {
	switch name {
	case repository.FieldLabID:
		m.ClearLabID()
		return nil
	}
	return fmt.Errorf("unknown Repository nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RepositoryMutation) ResetField(name string) error {
	switch name {
	case repository.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case repository.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case repository.FieldName:
		m.ResetName()
		return nil
	case repository.FieldRootPath:
		m.ResetRootPath()
		return nil
	case repository.FieldEndpointID:
		m.ResetEndpointID()
		return nil
	case repository.FieldIsPersonal:
		m.ResetIsPersonal()
		return nil
	case repository.FieldLabID:
		m.ResetLabID()
		return nil
	}
	return fmt.Errorf("unknown Repository field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RepositoryMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.lab != nil {
		edges = append(edges, repository.EdgeLab)
	}
	if m.file_records != nil {
		edges = append(edges, repository.EdgeFileRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RepositoryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case repository.EdgeLab:
		if id := m.lab; id != nil {
			return []ent.Value{*id}
		}
	case repository.EdgeFileRecords:
		ids := make([]ent.Value, 0, len(m.file_records))
		for id := range m.file_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RepositoryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedfile_records != nil {
		edges = append(edges, repository.EdgeFileRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RepositoryMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case repository.EdgeFileRecords:
		ids := make([]ent.Value, 0, len(m.removedfile_records))
		for id := range m.removedfile_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RepositoryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlab {
		edges = append(edges, repository.EdgeLab)
	}
	if m.clearedfile_records {
		edges = append(edges, repository.EdgeFileRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RepositoryMutation) EdgeCleared(name string) bool {
	switch name {
	case repository.EdgeLab:
		return m.clearedlab
	case repository.EdgeFileRecords:
		return m.clearedfile_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RepositoryMutation) ClearEdge(name string) error {
	switch name {
	case repository.EdgeLab:
		m.ClearLab()
		return nil
	}
	return fmt.Errorf("unknown Repository unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RepositoryMutation) ResetEdge(name string) error {
	switch name {
	case repository.EdgeLab:
		m.ResetLab()
		return nil
	case repository.EdgeFileRecords:
		m.ResetFileRecords()
		return nil
	}
	return fmt.Errorf("unknown Repository edge %s", name)
}
