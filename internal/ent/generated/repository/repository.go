// Code generated by ent, DO NOT EDIT.

package repository

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// Label holds the string label denoting the repository type in the database.
	Label = "repository"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldRootPath holds the string denoting the root_path field in the database.
	FieldRootPath = "root_path"
	// FieldEndpointID holds the string denoting the endpoint_id field in the database.
	FieldEndpointID = "endpoint_id"
	// FieldIsPersonal holds the string denoting the is_personal field in the database.
	FieldIsPersonal = "is_personal"
	// FieldLabID holds the string denoting the lab_id field in the database.
	FieldLabID = "lab_id"
	// EdgeLab holds the string denoting the lab edge name in mutations.
	EdgeLab = "lab"
	// EdgeFileRecords holds the string denoting the file_records edge name in mutations.
	EdgeFileRecords = "file_records"
	// Table holds the table name of the repository in the database.
	Table = "repositories"
	// LabTable is the table that holds the lab relation/edge.
	LabTable = "repositories"
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
	FileRecordsColumn = "repository_id"
)

// Columns holds all SQL columns for repository fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldName,
	FieldRootPath,
	FieldEndpointID,
	FieldIsPersonal,
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
	// DefaultRootPath holds the default value on creation for the "root_path" field.
	DefaultRootPath string
	// DefaultEndpointID holds the default value on creation for the "endpoint_id" field.
	DefaultEndpointID string
	// DefaultIsPersonal holds the default value on creation for the "is_personal" field.
	DefaultIsPersonal bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ULID
)

// OrderOption defines the ordering options for the Repository queries.
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

// ByRootPath orders the results by the root_path field.
func ByRootPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRootPath, opts...).ToFunc()
}

// ByEndpointID orders the results by the endpoint_id field.
func ByEndpointID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndpointID, opts...).ToFunc()
}

// ByIsPersonal orders the results by the is_personal field.
func ByIsPersonal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPersonal, opts...).ToFunc()
}

// ByLabID orders the results by the lab_id field.
func ByLabID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLabID, opts...).ToFunc()
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
