// Code generated by ent, DO NOT EDIT.

package dataset

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the dataset type in the database.
	Label = "dataset"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldFileSize holds the string denoting the file_size field in the database.
	FieldFileSize = "file_size"
	// FieldHash holds the string denoting the hash field in the database.
	FieldHash = "hash"
	// FieldRevision holds the string denoting the revision field in the database.
	FieldRevision = "revision"
	// FieldIsDefaultRevision holds the string denoting the is_default_revision field in the database.
	FieldIsDefaultRevision = "default_revision"
	// FieldProtected holds the string denoting the protected field in the database.
	FieldProtected = "protected"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldLabID holds the string denoting the lab_id field in the database.
	FieldLabID = "lab_id"
	// EdgeParent holds the string denoting the parent edge name in mutations.
	EdgeParent = "parent"
	// EdgeChildren holds the string denoting the children edge name in mutations.
	EdgeChildren = "children"
	// EdgeLab holds the string denoting the lab edge name in mutations.
	EdgeLab = "lab"
	// EdgeFileRecords holds the string denoting the file_records edge name in mutations.
	EdgeFileRecords = "file_records"
	// Table holds the table name of the dataset in the database.
	Table = "datasets"
	// ParentTable is the table that holds the parent relation/edge.
	ParentTable = "datasets"
	// ParentColumn is the table column denoting the parent relation/edge.
	ParentColumn = "parent_id"
	// ChildrenTable is the table that holds the children relation/edge.
	ChildrenTable = "datasets"
	// ChildrenColumn is the table column denoting the children relation/edge.
	ChildrenColumn = "parent_id"
	// LabTable is the table that holds the lab relation/edge.
	LabTable = "datasets"
	// LabInverseTable is the table name for the Lab entity.
	// It exists in this package in order to avoid circular dependency with the "lab" package.
	LabInverseTable = "labs"
	// LabColumn is the table column denoting the lab relation/edge.
	LabColumn = "lab_id"
	// FileRecordsTable is the table that holds the file_records relation/edge.
	FileRecordsTable = "file_records"
	// FileRecordsInverseTable is the table name for the FileRecord entity.
	// It exists in this package in order to avoid circular dependency with the "filerecord" package.
	FileRecordsInverseTable = "file_records"
	// FileRecordsColumn is the table column denoting the file_records relation/edge.
	FileRecordsColumn = "dataset_id"
)

// Columns holds all SQL columns for dataset fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldFileSize,
	FieldHash,
	FieldRevision,
	FieldIsDefaultRevision,
	FieldProtected,
	FieldParentID,
	FieldLabID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultHash holds the default value on creation for the "hash" field.
	DefaultHash string
	// DefaultRevision holds the default value on creation for the "revision" field.
	DefaultRevision string
	// DefaultIsDefaultRevision holds the default value on creation for the "is_default_revision" field.
	DefaultIsDefaultRevision bool
	// DefaultProtected holds the default value on creation for the "protected" field.
	DefaultProtected bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Dataset queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByFileSize orders the results by the file_size field.
func ByFileSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSize, opts...).ToFunc()
}

// ByHash orders the results by the hash field.
func ByHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHash, opts...).ToFunc()
}

// ByRevision orders the results by the revision field.
func ByRevision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRevision, opts...).ToFunc()
}

// ByIsDefaultRevision orders the results by the is_default_revision field.
func ByIsDefaultRevision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsDefaultRevision, opts...).ToFunc()
}

// ByProtected orders the results by the protected field.
func ByProtected(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtected, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByLabID orders the results by the lab_id field.
func ByLabID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabID, opts...).ToFunc()
}

// ByParentField orders the results by parent field.
func ByParentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newParentStep(), sql.OrderByField(field, opts...))
	}
}

// ByChildrenCount orders the results by children count.
func ByChildrenCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChildrenStep(), opts...)
	}
}

// ByChildren orders the results by children terms.
func ByChildren(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChildrenStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByLabField orders the results by lab field.
func ByLabField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLabStep(), sql.OrderByField(field, opts...))
	}
}

// ByFileRecordsCount orders the results by file_records count.
func ByFileRecordsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFileRecordsStep(), opts...)
	}
}

// ByFileRecords orders the results by file_records terms.
func ByFileRecords(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileRecordsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newParentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ParentTable, ParentColumn),
	)
}
func newChildrenStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(Table, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChildrenTable, ChildrenColumn),
	)
}
func newLabStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LabInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LabTable, LabColumn),
	)
}
func newFileRecordsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileRecordsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FileRecordsTable, FileRecordsColumn),
	)
}
